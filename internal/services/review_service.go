package services

import (
	"gorm.io/gorm"

	"skillconnect/internal/models"
	"skillconnect/internal/repositories"
	"skillconnect/internal/services/dto"
	"skillconnect/pkg/apperrors"
)

type ReviewService interface {
	CreateReview(reviewerID string, req *dto.CreateReviewRequest) (*models.Review, error)
	GetReviewsForUser(revieweeID string) ([]models.Review, error)
}

type reviewService struct {
	db         *gorm.DB
	reviewRepo repositories.ReviewRepository
	userRepo   repositories.UserRepository
}

func NewReviewService(
	db *gorm.DB,
	reviewRepo repositories.ReviewRepository,
	userRepo repositories.UserRepository,
) ReviewService {
	return &reviewService{
		db:         db,
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
	}
}

// CreateReview persists the review and folds the new rating into the
// reviewee's average as a running weighted mean over the previous count:
// newAvg = (oldAvg*oldCount + rating) / (oldCount + 1).
func (s *reviewService) CreateReview(reviewerID string, req *dto.CreateReviewRequest) (*models.Review, error) {
	if reviewerID == req.RevieweeID {
		return nil, apperrors.NewBadRequestError("You cannot review yourself.")
	}

	reviewee, err := s.userRepo.FindByID(s.db, req.RevieweeID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.NewNotFoundError("review", "Reviewee not found.")
		}
		return nil, err
	}
	if _, err := s.userRepo.FindByID(s.db, reviewerID); err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.NewNotFoundError("review", "Reviewer not found.")
		}
		return nil, err
	}

	review := &models.Review{
		ReviewerID: reviewerID,
		RevieweeID: req.RevieweeID,
		Rating:     req.Rating,
		Title:      req.Title,
		ReviewText: req.ReviewText,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		oldCount, err := s.reviewRepo.CountByReviewee(tx, req.RevieweeID)
		if err != nil {
			return err
		}

		if err := s.reviewRepo.Create(tx, review); err != nil {
			return err
		}

		reviewee.AvgRating = (reviewee.AvgRating*float64(oldCount) + float64(req.Rating)) / float64(oldCount+1)
		return s.userRepo.Update(tx, reviewee)
	})
	if err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) GetReviewsForUser(revieweeID string) ([]models.Review, error) {
	if _, err := s.userRepo.FindByID(s.db, revieweeID); err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.NewNotFoundError("review", "User not found.")
		}
		return nil, err
	}
	return s.reviewRepo.FindByReviewee(s.db, revieweeID)
}
