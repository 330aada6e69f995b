package services

import (
	"strings"

	"gorm.io/gorm"

	"skillconnect/internal/models"
	"skillconnect/internal/repositories"
	"skillconnect/internal/services/dto"
	"skillconnect/pkg/apperrors"
)

type SkillService interface {
	CreateSkill(req *dto.SkillRequest) (*models.Skill, error)
	GetSkill(skillID string) (*models.Skill, error)
	GetAllSkills() ([]models.Skill, error)
	UpdateSkill(skillID string, req *dto.SkillRequest) (*models.Skill, error)
	DeleteSkill(skillID string) error
}

type skillService struct {
	db        *gorm.DB
	skillRepo repositories.SkillRepository
}

func NewSkillService(db *gorm.DB, skillRepo repositories.SkillRepository) SkillService {
	return &skillService{
		db:        db,
		skillRepo: skillRepo,
	}
}

func (s *skillService) CreateSkill(req *dto.SkillRequest) (*models.Skill, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewBadRequestError("Skill name is required.")
	}

	if _, err := s.skillRepo.FindByName(s.db, name); err == nil {
		return nil, apperrors.NewConflictError("skill", "Skill already exists.")
	} else if err != repositories.ErrSkillNotFound {
		return nil, err
	}

	skill := &models.Skill{Name: name}
	if err := s.skillRepo.Create(s.db, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

func (s *skillService) GetSkill(skillID string) (*models.Skill, error) {
	skill, err := s.skillRepo.FindByID(s.db, skillID)
	if err != nil {
		if err == repositories.ErrSkillNotFound {
			return nil, apperrors.NewNotFoundError("skill", "Skill not found.")
		}
		return nil, err
	}
	return skill, nil
}

func (s *skillService) GetAllSkills() ([]models.Skill, error) {
	return s.skillRepo.FindAll(s.db)
}

func (s *skillService) UpdateSkill(skillID string, req *dto.SkillRequest) (*models.Skill, error) {
	skill, err := s.skillRepo.FindByID(s.db, skillID)
	if err != nil {
		if err == repositories.ErrSkillNotFound {
			return nil, apperrors.NewNotFoundError("skill", "Skill not found.")
		}
		return nil, err
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		skill.Name = name
	}

	if err := s.skillRepo.Update(s.db, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

// DeleteSkill removes the skill; the repository clears the join rows so user
// profiles and job categories never point at a deleted skill.
func (s *skillService) DeleteSkill(skillID string) error {
	if _, err := s.skillRepo.FindByID(s.db, skillID); err != nil {
		if err == repositories.ErrSkillNotFound {
			return apperrors.NewNotFoundError("skill", "Skill not found.")
		}
		return err
	}
	return s.skillRepo.Delete(s.db, skillID)
}
