package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillconnect/internal/models"
	"skillconnect/internal/services/dto"
	"skillconnect/pkg/apperrors"
)

func submitTestProposal(t *testing.T, svc ProposalService, jobID, freelancerID string) *models.Proposal {
	t.Helper()

	proposal, err := svc.SubmitProposal(freelancerID, &dto.SubmitProposalRequest{
		JobID:           jobID,
		BudgetType:      string(models.BudgetTypeFixed),
		BudgetAmount:    floatPtr(450),
		CoverLetterText: "I have shipped a dozen of these.",
	})
	require.NoError(t, err)
	return proposal
}

func TestSubmitProposalIncrementsCounter(t *testing.T) {
	db := newTestDB(t)
	svc := newTestProposalService(db)

	provider := createTestUser(t, db, "provider", models.UserRoleClient)
	job := createTestJob(t, db, provider.ID)

	for i, name := range []string{"alice", "bob", "carol"} {
		freelancer := createTestUser(t, db, name, models.UserRoleFreelancer)
		submitTestProposal(t, svc, job.ID, freelancer.ID)

		var got models.Job
		require.NoError(t, db.First(&got, "id = ?", job.ID).Error)
		assert.Equal(t, i+1, got.ProposalsCount)
	}

	var count int64
	require.NoError(t, db.Model(&models.Proposal{}).Where("job_id = ?", job.ID).Count(&count).Error)
	assert.EqualValues(t, 3, count)
}

func TestSubmitProposalDuplicateRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newTestProposalService(db)

	provider := createTestUser(t, db, "provider", models.UserRoleClient)
	freelancer := createTestUser(t, db, "alice", models.UserRoleFreelancer)
	job := createTestJob(t, db, provider.ID)

	submitTestProposal(t, svc, job.ID, freelancer.ID)

	_, err := svc.SubmitProposal(freelancer.ID, &dto.SubmitProposalRequest{
		JobID:           job.ID,
		BudgetType:      string(models.BudgetTypeFixed),
		BudgetAmount:    floatPtr(400),
		CoverLetterText: "Trying again with a lower bid.",
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 409, appErr.HTTPCode)

	// Counter untouched by the rejected attempt.
	var got models.Job
	require.NoError(t, db.First(&got, "id = ?", job.ID).Error)
	assert.Equal(t, 1, got.ProposalsCount)
}

func TestSubmitProposalBudgetConsistency(t *testing.T) {
	db := newTestDB(t)
	svc := newTestProposalService(db)

	provider := createTestUser(t, db, "provider", models.UserRoleClient)
	freelancer := createTestUser(t, db, "alice", models.UserRoleFreelancer)
	job := createTestJob(t, db, provider.ID)

	cases := []struct {
		name string
		req  dto.SubmitProposalRequest
	}{
		{"fixed without amount", dto.SubmitProposalRequest{
			JobID:            job.ID,
			BudgetType:       string(models.BudgetTypeFixed),
			BudgetHourlyRate: floatPtr(50),
			CoverLetterText:  "Cover letter long enough.",
		}},
		{"hourly without rate", dto.SubmitProposalRequest{
			JobID:           job.ID,
			BudgetType:      string(models.BudgetTypeHourly),
			BudgetAmount:    floatPtr(400),
			CoverLetterText: "Cover letter long enough.",
		}},
		{"negative amount", dto.SubmitProposalRequest{
			JobID:           job.ID,
			BudgetType:      string(models.BudgetTypeFixed),
			BudgetAmount:    floatPtr(-10),
			CoverLetterText: "Cover letter long enough.",
		}},
		{"unknown budget type", dto.SubmitProposalRequest{
			JobID:           job.ID,
			BudgetType:      "Retainer",
			BudgetAmount:    floatPtr(400),
			CoverLetterText: "Cover letter long enough.",
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.SubmitProposal(freelancer.ID, &tc.req)
			require.Error(t, err)

			appErr, ok := apperrors.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, 400, appErr.HTTPCode)
		})
	}
}

func TestSubmitProposalJobMissing(t *testing.T) {
	db := newTestDB(t)
	svc := newTestProposalService(db)

	freelancer := createTestUser(t, db, "alice", models.UserRoleFreelancer)

	_, err := svc.SubmitProposal(freelancer.ID, &dto.SubmitProposalRequest{
		JobID:           "no-such-job",
		BudgetType:      string(models.BudgetTypeFixed),
		BudgetAmount:    floatPtr(100),
		CoverLetterText: "Cover letter long enough.",
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestDeleteProposalDecrementsCounter(t *testing.T) {
	db := newTestDB(t)
	svc := newTestProposalService(db)

	provider := createTestUser(t, db, "provider", models.UserRoleClient)
	freelancer := createTestUser(t, db, "alice", models.UserRoleFreelancer)
	job := createTestJob(t, db, provider.ID)

	proposal := submitTestProposal(t, svc, job.ID, freelancer.ID)

	require.NoError(t, svc.DeleteProposal(proposal.ID, job.ID, freelancer.ID))

	var got models.Job
	require.NoError(t, db.First(&got, "id = ?", job.ID).Error)
	assert.Equal(t, 0, got.ProposalsCount)

	var count int64
	require.NoError(t, db.Model(&models.Proposal{}).Where("job_id = ?", job.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestDeleteProposalCounterFloorsAtZero(t *testing.T) {
	db := newTestDB(t)
	svc := newTestProposalService(db)

	provider := createTestUser(t, db, "provider", models.UserRoleClient)
	freelancer := createTestUser(t, db, "alice", models.UserRoleFreelancer)
	job := createTestJob(t, db, provider.ID)

	proposal := submitTestProposal(t, svc, job.ID, freelancer.ID)

	// Force the counter out of sync, then delete.
	require.NoError(t, db.Model(&models.Job{}).Where("id = ?", job.ID).
		UpdateColumn("proposals_count", 0).Error)

	require.NoError(t, svc.DeleteProposal(proposal.ID, job.ID, freelancer.ID))

	var got models.Job
	require.NoError(t, db.First(&got, "id = ?", job.ID).Error)
	assert.Equal(t, 0, got.ProposalsCount)
}

func TestProposalOwnershipEnforced(t *testing.T) {
	db := newTestDB(t)
	svc := newTestProposalService(db)

	provider := createTestUser(t, db, "provider", models.UserRoleClient)
	owner := createTestUser(t, db, "alice", models.UserRoleFreelancer)
	intruder := createTestUser(t, db, "mallory", models.UserRoleFreelancer)
	job := createTestJob(t, db, provider.ID)

	proposal := submitTestProposal(t, svc, job.ID, owner.ID)

	_, err := svc.UpdateProposal(proposal.ID, intruder.ID, &dto.UpdateProposalRequest{
		CoverLetterText: strPtr("Hijacked cover letter text."),
	})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.HTTPCode)

	err = svc.DeleteProposal(proposal.ID, job.ID, intruder.ID)
	require.Error(t, err)
	appErr, ok = apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.HTTPCode)
}

func TestUpdateProposalSwitchesBudgetType(t *testing.T) {
	db := newTestDB(t)
	svc := newTestProposalService(db)

	provider := createTestUser(t, db, "provider", models.UserRoleClient)
	freelancer := createTestUser(t, db, "alice", models.UserRoleFreelancer)
	job := createTestJob(t, db, provider.ID)

	proposal := submitTestProposal(t, svc, job.ID, freelancer.ID)

	updated, err := svc.UpdateProposal(proposal.ID, freelancer.ID, &dto.UpdateProposalRequest{
		BudgetType:       strPtr(string(models.BudgetTypeHourly)),
		BudgetHourlyRate: floatPtr(65),
	})
	require.NoError(t, err)

	assert.Equal(t, models.BudgetTypeHourly, updated.BudgetType)
	require.NotNil(t, updated.BudgetHourlyRate)
	assert.Equal(t, 65.0, *updated.BudgetHourlyRate)
	assert.Nil(t, updated.BudgetAmount)
}

func TestAcceptProposal(t *testing.T) {
	db := newTestDB(t)
	svc := newTestProposalService(db)

	provider := createTestUser(t, db, "provider", models.UserRoleClient)
	alice := createTestUser(t, db, "alice", models.UserRoleFreelancer)
	bob := createTestUser(t, db, "bob", models.UserRoleFreelancer)
	job := createTestJob(t, db, provider.ID)

	accepted := submitTestProposal(t, svc, job.ID, alice.ID)
	sibling := submitTestProposal(t, svc, job.ID, bob.ID)

	// Only the provider may accept.
	_, err := svc.AcceptProposal(accepted.ID, job.ID, alice.ID)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.HTTPCode)

	got, err := svc.AcceptProposal(accepted.ID, job.ID, provider.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ProposalStatusAccepted, got.Status)

	var jobAfter models.Job
	require.NoError(t, db.First(&jobAfter, "id = ?", job.ID).Error)
	assert.Equal(t, models.JobStatusInProgress, jobAfter.Status)
	require.NotNil(t, jobAfter.FreelancerID)
	assert.Equal(t, alice.ID, *jobAfter.FreelancerID)

	var siblingAfter models.Proposal
	require.NoError(t, db.First(&siblingAfter, "id = ?", sibling.ID).Error)
	assert.Equal(t, models.ProposalStatusRejected, siblingAfter.Status)

	// Job is no longer Open, so a second accept is rejected.
	_, err = svc.AcceptProposal(sibling.ID, job.ID, provider.ID)
	require.Error(t, err)
	appErr, ok = apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestGetJobsAppliedTo(t *testing.T) {
	db := newTestDB(t)
	svc := newTestProposalService(db)

	provider := createTestUser(t, db, "provider", models.UserRoleClient)
	freelancer := createTestUser(t, db, "alice", models.UserRoleFreelancer)
	jobA := createTestJob(t, db, provider.ID)
	jobB := createTestJob(t, db, provider.ID)

	submitTestProposal(t, svc, jobA.ID, freelancer.ID)
	submitTestProposal(t, svc, jobB.ID, freelancer.ID)

	applied, err := svc.GetJobsAppliedTo(freelancer.ID)
	require.NoError(t, err)
	require.Len(t, applied, 2)

	ids := []string{applied[0].JobID, applied[1].JobID}
	assert.Contains(t, ids, jobA.ID)
	assert.Contains(t, ids, jobB.ID)
}
