package validator

import (
	"log"

	"github.com/go-playground/validator/v10"

	"skillconnect/internal/models"
)

// registerCustomRules installs the enum rules built on internal/models.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup error.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-budget-type", validateBudgetType)
	mustRegister("is-experience-level", validateExperienceLevel)
	mustRegister("is-job-status", validateJobStatus)
	mustRegister("is-submission-status", validateSubmissionStatus)
}

// Empty values pass; 'required' handles presence separately.

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ValidUserRole(models.UserRole(value))
}

func validateBudgetType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ValidBudgetType(models.BudgetType(value))
}

func validateExperienceLevel(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ValidExperienceLevel(models.ExperienceLevel(value))
}

func validateJobStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ValidJobStatus(models.JobStatus(value))
}

func validateSubmissionStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ValidSubmissionStatus(models.SubmissionStatus(value))
}
