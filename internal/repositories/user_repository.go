package repositories

import (
	"errors"

	"gorm.io/gorm"

	"skillconnect/internal/models"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository interface {
	Create(db *gorm.DB, user *models.User) error
	FindByID(db *gorm.DB, id string) (*models.User, error)
	FindByIDWithRelations(db *gorm.DB, id string) (*models.User, error)
	FindByEmail(db *gorm.DB, email string) (*models.User, error)
	FindAll(db *gorm.DB) ([]models.User, error)
	Update(db *gorm.DB, user *models.User) error
	ReplaceSkills(db *gorm.DB, user *models.User, skills []models.Skill) error
	Delete(db *gorm.DB, id string) error
}

type userRepository struct{}

func NewUserRepository() UserRepository {
	return &userRepository{}
}

func (r *userRepository) Create(db *gorm.DB, user *models.User) error {
	return db.Create(user).Error
}

func (r *userRepository) FindByID(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByIDWithRelations(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	err := db.
		Preload("Skills").
		Preload("Reviews").
		First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	if err := db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindAll(db *gorm.DB) ([]models.User, error) {
	var users []models.User
	err := db.
		Preload("Skills").
		Preload("Reviews").
		Find(&users).Error
	return users, err
}

func (r *userRepository) Update(db *gorm.DB, user *models.User) error {
	return db.Save(user).Error
}

// ReplaceSkills rewrites the user_skills join rows for the user.
func (r *userRepository) ReplaceSkills(db *gorm.DB, user *models.User, skills []models.Skill) error {
	return db.Model(user).Association("Skills").Replace(skills)
}

func (r *userRepository) Delete(db *gorm.DB, id string) error {
	return db.Delete(&models.User{}, "id = ?", id).Error
}
