package models

type UserRole string
type BudgetType string
type ExperienceLevel string
type JobStatus string
type ProposalStatus string
type SubmissionStatus string

const (
	UserRoleFreelancer UserRole = "freelancer"
	UserRoleClient     UserRole = "client"
	UserRoleAdmin      UserRole = "admin"

	BudgetTypeFixed  BudgetType = "Fixed"
	BudgetTypeHourly BudgetType = "Hourly"

	ExperienceLevelEntry        ExperienceLevel = "Entry"
	ExperienceLevelIntermediate ExperienceLevel = "Intermediate"
	ExperienceLevelExpert       ExperienceLevel = "Expert"

	JobStatusOpen       JobStatus = "Open"
	JobStatusInProgress JobStatus = "In Progress"
	JobStatusCompleted  JobStatus = "Completed"
	JobStatusCancelled  JobStatus = "Cancelled"

	ProposalStatusPending  ProposalStatus = "pending"
	ProposalStatusAccepted ProposalStatus = "accepted"
	ProposalStatusRejected ProposalStatus = "rejected"

	SubmissionStatusPending  SubmissionStatus = "Pending"
	SubmissionStatusComplete SubmissionStatus = "Complete"
)

// jobTransitions is the allowed (from, to) set for Job.Status. Completed and
// Cancelled are terminal.
var jobTransitions = map[JobStatus][]JobStatus{
	JobStatusOpen:       {JobStatusInProgress, JobStatusCancelled},
	JobStatusInProgress: {JobStatusCompleted, JobStatusCancelled},
	JobStatusCompleted:  {},
	JobStatusCancelled:  {},
}

// ValidJobStatus reports whether s is a known job status.
func ValidJobStatus(s JobStatus) bool {
	_, ok := jobTransitions[s]
	return ok
}

// CanTransitionJob reports whether a job may move from one status to another.
// A same-status update is treated as a no-op and allowed.
func CanTransitionJob(from, to JobStatus) bool {
	if from == to {
		return ValidJobStatus(to)
	}
	for _, next := range jobTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func ValidUserRole(r UserRole) bool {
	switch r {
	case UserRoleFreelancer, UserRoleClient, UserRoleAdmin:
		return true
	}
	return false
}

func ValidBudgetType(b BudgetType) bool {
	return b == BudgetTypeFixed || b == BudgetTypeHourly
}

func ValidExperienceLevel(e ExperienceLevel) bool {
	switch e {
	case ExperienceLevelEntry, ExperienceLevelIntermediate, ExperienceLevelExpert:
		return true
	}
	return false
}

func ValidSubmissionStatus(s SubmissionStatus) bool {
	return s == SubmissionStatusPending || s == SubmissionStatusComplete
}
