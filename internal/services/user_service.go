package services

import (
	"gorm.io/gorm"

	"skillconnect/internal/auth"
	"skillconnect/internal/models"
	"skillconnect/internal/repositories"
	"skillconnect/internal/services/dto"
	"skillconnect/pkg/apperrors"
)

type UserService interface {
	Register(req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
	GetProfile(userID string) (*models.User, error)
	UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*models.User, error)
	GetUserSkills(userID string) ([]dto.SkillRef, error)
	GetAllUsers() ([]models.User, error)
	DeleteUser(userID string) error
}

type userService struct {
	db        *gorm.DB
	userRepo  repositories.UserRepository
	skillRepo repositories.SkillRepository
}

func NewUserService(
	db *gorm.DB,
	userRepo repositories.UserRepository,
	skillRepo repositories.SkillRepository,
) UserService {
	return &userService{
		db:        db,
		userRepo:  userRepo,
		skillRepo: skillRepo,
	}
}

func (s *userService) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if !models.ValidUserRole(models.UserRole(req.Role)) {
		return nil, apperrors.NewBadRequestError("Invalid role specified.")
	}
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	if _, err := s.userRepo.FindByEmail(s.db, req.Email); err == nil {
		return nil, apperrors.NewConflictError("user", "User already exists.")
	} else if err != repositories.ErrUserNotFound {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         models.UserRole(req.Role),
		AvgRating:    1,
	}
	if req.Bio != "" {
		user.Bio = &req.Bio
	}
	if req.Location != "" {
		user.Location = &req.Location
	}

	if err := s.userRepo.Create(s.db, user); err != nil {
		return nil, err
	}

	return s.buildAuthResponse(user)
}

func (s *userService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(s.db, req.Email)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.New(apperrors.CodeInvalidCredentials, "auth", "Invalid email or password.", 401)
		}
		return nil, err
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.New(apperrors.CodeInvalidCredentials, "auth", "Invalid email or password.", 401)
	}

	return s.buildAuthResponse(user)
}

func (s *userService) GetProfile(userID string) (*models.User, error) {
	user, err := s.userRepo.FindByIDWithRelations(s.db, userID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.NewNotFoundError("user", "User not found.")
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.userRepo.FindByID(s.db, userID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.NewNotFoundError("user", "User not found.")
		}
		return nil, err
	}

	if req.Skills != nil {
		skills, err := s.skillRepo.FindByIDs(s.db, req.Skills)
		if err != nil {
			return nil, err
		}
		if len(skills) != len(req.Skills) {
			return nil, apperrors.NewBadRequestError("Some skill IDs are invalid.")
		}
		if err := s.userRepo.ReplaceSkills(s.db, user, skills); err != nil {
			return nil, err
		}
	}

	if req.Bio != nil {
		user.Bio = req.Bio
	}
	if req.ProfilePicture != nil {
		user.ProfilePicture = req.ProfilePicture
	}
	if req.Location != nil {
		user.Location = req.Location
	}

	if err := s.userRepo.Update(s.db, user); err != nil {
		return nil, err
	}
	return s.userRepo.FindByIDWithRelations(s.db, userID)
}

func (s *userService) GetUserSkills(userID string) ([]dto.SkillRef, error) {
	user, err := s.userRepo.FindByIDWithRelations(s.db, userID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.NewNotFoundError("user", "User not found.")
		}
		return nil, err
	}

	refs := make([]dto.SkillRef, 0, len(user.Skills))
	for _, skill := range user.Skills {
		refs = append(refs, dto.SkillRef{ID: skill.ID, Name: skill.Name})
	}
	return refs, nil
}

func (s *userService) GetAllUsers() ([]models.User, error) {
	return s.userRepo.FindAll(s.db)
}

func (s *userService) DeleteUser(userID string) error {
	if _, err := s.userRepo.FindByID(s.db, userID); err != nil {
		if err == repositories.ErrUserNotFound {
			return apperrors.NewNotFoundError("user", "User not found.")
		}
		return err
	}
	return s.userRepo.Delete(s.db, userID)
}

func (s *userService) buildAuthResponse(user *models.User) (*dto.AuthResponse, error) {
	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
		Token: token,
	}, nil
}
