package repositories

import (
	"errors"

	"gorm.io/gorm"

	"skillconnect/internal/models"
)

var ErrSkillNotFound = errors.New("skill not found")

type SkillRepository interface {
	Create(db *gorm.DB, skill *models.Skill) error
	FindByID(db *gorm.DB, id string) (*models.Skill, error)
	FindByName(db *gorm.DB, name string) (*models.Skill, error)
	FindByIDs(db *gorm.DB, ids []string) ([]models.Skill, error)
	FindAll(db *gorm.DB) ([]models.Skill, error)
	Update(db *gorm.DB, skill *models.Skill) error
	Delete(db *gorm.DB, id string) error
}

type skillRepository struct{}

func NewSkillRepository() SkillRepository {
	return &skillRepository{}
}

func (r *skillRepository) Create(db *gorm.DB, skill *models.Skill) error {
	return db.Create(skill).Error
}

func (r *skillRepository) FindByID(db *gorm.DB, id string) (*models.Skill, error) {
	var skill models.Skill
	if err := db.First(&skill, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, err
	}
	return &skill, nil
}

func (r *skillRepository) FindByName(db *gorm.DB, name string) (*models.Skill, error) {
	var skill models.Skill
	if err := db.First(&skill, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, err
	}
	return &skill, nil
}

func (r *skillRepository) FindByIDs(db *gorm.DB, ids []string) ([]models.Skill, error) {
	var skills []models.Skill
	err := db.Where("id IN ?", ids).Find(&skills).Error
	return skills, err
}

func (r *skillRepository) FindAll(db *gorm.DB) ([]models.Skill, error) {
	var skills []models.Skill
	err := db.Order("name").Find(&skills).Error
	return skills, err
}

func (r *skillRepository) Update(db *gorm.DB, skill *models.Skill) error {
	return db.Save(skill).Error
}

// Delete removes the skill and its join rows so no user or job keeps a
// reference to a skill that no longer exists.
func (r *skillRepository) Delete(db *gorm.DB, id string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM user_skills WHERE skill_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM job_categories WHERE skill_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Skill{}, "id = ?", id).Error
	})
}
