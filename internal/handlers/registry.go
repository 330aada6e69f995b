package handlers

type AppHandlers struct {
	UserHandler       *UserHandler
	JobHandler        *JobHandler
	ProposalHandler   *ProposalHandler
	SubmissionHandler *SubmissionHandler
	ReviewHandler     *ReviewHandler
	SkillHandler      *SkillHandler
	EmailHandler      *EmailHandler
}
