package repositories

import (
	"errors"

	"gorm.io/gorm"

	"skillconnect/internal/models"
)

var ErrReviewNotFound = errors.New("review not found")

type ReviewRepository interface {
	Create(db *gorm.DB, review *models.Review) error
	FindByID(db *gorm.DB, id string) (*models.Review, error)
	FindByReviewee(db *gorm.DB, revieweeID string) ([]models.Review, error)
	CountByReviewee(db *gorm.DB, revieweeID string) (int64, error)
}

type reviewRepository struct{}

func NewReviewRepository() ReviewRepository {
	return &reviewRepository{}
}

func (r *reviewRepository) Create(db *gorm.DB, review *models.Review) error {
	return db.Create(review).Error
}

func (r *reviewRepository) FindByID(db *gorm.DB, id string) (*models.Review, error) {
	var review models.Review
	if err := db.First(&review, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) FindByReviewee(db *gorm.DB, revieweeID string) ([]models.Review, error) {
	var reviews []models.Review
	err := db.Where("reviewee_id = ?", revieweeID).Order("created_at DESC").Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepository) CountByReviewee(db *gorm.DB, revieweeID string) (int64, error) {
	var count int64
	err := db.Model(&models.Review{}).Where("reviewee_id = ?", revieweeID).Count(&count).Error
	return count, err
}
