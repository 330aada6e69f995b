package app

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"skillconnect/database"
	"skillconnect/internal/config"
	"skillconnect/internal/logger"
	"skillconnect/internal/models"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	cfg.Server.Env = "test"
	config.AppConfig = cfg
	logger.Init(cfg.Server.Env)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	return SetupRouter(cfg, db)
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

type authResult struct {
	ID    string `json:"id"`
	Token string `json:"token"`
}

func registerUser(t *testing.T, router *gin.Engine, name, role string) authResult {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/api/users/register", "", gin.H{
		"name":     name,
		"email":    name + "@example.com",
		"password": "sup3rsecret",
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var res authResult
	decode(t, rec, &res)
	require.NotEmpty(t, res.Token)
	return res
}

// TestMarketplaceFlow walks the happy path end to end over HTTP: register both
// parties, post a job, bid on it, accept the bid, deliver the work.
func TestMarketplaceFlow(t *testing.T) {
	router := newTestRouter(t)

	provider := registerUser(t, router, "provider", "client")
	freelancer := registerUser(t, router, "alice", "freelancer")

	// Provider posts a job.
	rec := doJSON(t, router, http.MethodPost, "/api/jobs", "", gin.H{
		"title":           "Build a REST API",
		"description":     "Implement the backend for our marketplace.",
		"budgetType":      "Fixed",
		"budgetAmount":    1500,
		"deadline":        time.Now().Add(30 * 24 * time.Hour).Format(time.RFC3339),
		"experienceLevel": "Intermediate",
		"jobProviderId":   provider.ID,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var job models.Job
	decode(t, rec, &job)
	require.NotEmpty(t, job.ID)
	assert.Equal(t, models.JobStatusOpen, job.Status)

	// Unauthenticated proposal is rejected.
	rec = doJSON(t, router, http.MethodPost, "/api/proposals", "", gin.H{
		"jobId":           job.ID,
		"budgetType":      "Fixed",
		"budgetAmount":    1400,
		"coverLetterText": "I can deliver this in three weeks.",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// Freelancer bids.
	rec = doJSON(t, router, http.MethodPost, "/api/proposals", freelancer.Token, gin.H{
		"jobId":           job.ID,
		"budgetType":      "Fixed",
		"budgetAmount":    1400,
		"coverLetterText": "I can deliver this in three weeks.",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var proposal models.Proposal
	decode(t, rec, &proposal)
	require.NotEmpty(t, proposal.ID)

	// The job counter reflects the bid.
	rec = doJSON(t, router, http.MethodGet, "/api/jobs/"+job.ID, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var jobAfterBid models.Job
	decode(t, rec, &jobAfterBid)
	assert.Equal(t, 1, jobAfterBid.ProposalsCount)

	// A duplicate bid is a conflict.
	rec = doJSON(t, router, http.MethodPost, "/api/proposals", freelancer.Token, gin.H{
		"jobId":           job.ID,
		"budgetType":      "Fixed",
		"budgetAmount":    1300,
		"coverLetterText": "Second attempt with a lower bid.",
	})
	require.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())

	// Only the provider can accept; the freelancer trying is forbidden.
	acceptPath := "/api/proposals/" + job.ID + "/" + proposal.ID + "/accept"
	rec = doJSON(t, router, http.MethodPut, acceptPath, freelancer.Token, nil)
	require.Equal(t, http.StatusForbidden, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodPut, acceptPath, provider.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/api/jobs/"+job.ID, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var jobAfterAccept models.Job
	decode(t, rec, &jobAfterAccept)
	assert.Equal(t, models.JobStatusInProgress, jobAfterAccept.Status)
	require.NotNil(t, jobAfterAccept.FreelancerID)
	assert.Equal(t, freelancer.ID, *jobAfterAccept.FreelancerID)

	// Assigned freelancer delivers.
	rec = doJSON(t, router, http.MethodPost, "/api/submissions", freelancer.Token, gin.H{
		"jobId": job.ID,
		"title": "API delivered",
		"text":  "All endpoints implemented with tests.",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/api/submissions/"+job.ID, provider.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var submissions []models.Submission
	decode(t, rec, &submissions)
	require.Len(t, submissions, 1)
	assert.Equal(t, provider.ID, submissions[0].JobProviderID)

	// The freelancer sees the job in the applied list.
	rec = doJSON(t, router, http.MethodGet, "/api/proposals/applied/me", freelancer.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var applied struct {
		Success bool `json:"success"`
		Data    []struct {
			JobID string `json:"jobId"`
		} `json:"data"`
	}
	decode(t, rec, &applied)
	require.True(t, applied.Success)
	require.Len(t, applied.Data, 1)
	assert.Equal(t, job.ID, applied.Data[0].JobID)
}

// TestUserProfileIsPopulated covers the full profile shape: the endpoints
// must return bio and the preloaded skills, not just the id/name/email
// projection used when a user is embedded in another document.
func TestUserProfileIsPopulated(t *testing.T) {
	router := newTestRouter(t)

	user := registerUser(t, router, "dana", "freelancer")

	rec := doJSON(t, router, http.MethodPost, "/api/skills", "", gin.H{"name": "Go"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var skill models.Skill
	decode(t, rec, &skill)

	rec = doJSON(t, router, http.MethodPut, "/api/users/profile", user.Token, gin.H{
		"bio":    "Backend developer.",
		"skills": []string{skill.ID},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/api/users/profile", user.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var profile models.User
	decode(t, rec, &profile)
	require.NotNil(t, profile.Bio, "profile response must carry bio")
	assert.Equal(t, "Backend developer.", *profile.Bio)
	require.Len(t, profile.Skills, 1)
	assert.Equal(t, "Go", profile.Skills[0].Name)
	// The hash never leaves the server.
	assert.NotContains(t, rec.Body.String(), "passwordHash")

	rec = doJSON(t, router, http.MethodGet, "/api/users", user.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listing struct {
		Success bool          `json:"success"`
		Data    []models.User `json:"data"`
	}
	decode(t, rec, &listing)
	require.True(t, listing.Success)
	require.Len(t, listing.Data, 1)
	require.NotNil(t, listing.Data[0].Bio)
	assert.Len(t, listing.Data[0].Skills, 1)
}

func TestValidationErrorsOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	// Missing required fields.
	rec := doJSON(t, router, http.MethodPost, "/api/users/register", "", gin.H{
		"name": "incomplete",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Error struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	decode(t, rec, &body)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Contains(t, body.Error.Details, "email")
	assert.Contains(t, body.Error.Details, "password")
}

func TestJobListAndActiveRoutes(t *testing.T) {
	router := newTestRouter(t)

	provider := registerUser(t, router, "provider", "client")

	for _, title := range []string{"First job", "Second job"} {
		rec := doJSON(t, router, http.MethodPost, "/api/jobs", "", gin.H{
			"title":           title,
			"description":     "Enough description text here.",
			"budgetType":      "Fixed",
			"budgetAmount":    100,
			"deadline":        time.Now().Add(7 * 24 * time.Hour).Format(time.RFC3339),
			"experienceLevel": "Entry",
			"jobProviderId":   provider.ID,
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := doJSON(t, router, http.MethodGet, "/api/jobs?search=first", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var jobs []models.Job
	decode(t, rec, &jobs)
	require.Len(t, jobs, 1)
	assert.Equal(t, "First job", jobs[0].Title)

	// No job is In Progress yet.
	rec = doJSON(t, router, http.MethodGet, "/api/jobs/active", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var active []models.Job
	decode(t, rec, &active)
	assert.Empty(t, active)
}
