package services

// ServiceContainer holds every application service.
type ServiceContainer struct {
	UserService       UserService
	JobService        JobService
	ProposalService   ProposalService
	SubmissionService SubmissionService
	ReviewService     ReviewService
	SkillService      SkillService
	EmailService      EmailService
}
