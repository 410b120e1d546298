package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/edustack/homework-help-api/internal/dto"
	"github.com/edustack/homework-help-api/internal/models"
	appErrors "github.com/edustack/homework-help-api/pkg/errors"
)

type jobRepoStub struct {
	created   []*models.HomeworkJob
	createErr error
	items     []models.HomeworkJob
	listErr   error
}

func (s *jobRepoStub) Create(ctx context.Context, job *models.HomeworkJob) error {
	s.created = append(s.created, job)
	return s.createErr
}

func (s *jobRepoStub) ListByUser(ctx context.Context, userID string, filter models.HomeworkJobFilter) ([]models.HomeworkJob, error) {
	return s.items, s.listErr
}

func TestHomeworkJobServiceCreateDefaults(t *testing.T) {
	repo := &jobRepoStub{}
	service := NewHomeworkJobService(repo, ownedRequest(), nil, zap.NewNop())

	job, err := service.Create(context.Background(), dto.CreateHomeworkJobInput{}, studentClaims())
	require.NoError(t, err)
	assert.Equal(t, models.JobTypeFullSolution, job.Type)
	assert.Equal(t, models.JobStatusCompleted, job.Status)
	assert.Nil(t, job.RequestID)
	require.NotNil(t, job.UserID)
	assert.Equal(t, "user-1", *job.UserID)
	require.Len(t, repo.created, 1)
}

func TestHomeworkJobServiceCreateRequiresAuth(t *testing.T) {
	service := NewHomeworkJobService(&jobRepoStub{}, ownedRequest(), nil, zap.NewNop())

	_, err := service.Create(context.Background(), dto.CreateHomeworkJobInput{}, nil)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErr.Code)
}

func TestHomeworkJobServiceCreateLinkedToOwnedRequest(t *testing.T) {
	repo := &jobRepoStub{}
	owner := ownedRequest()
	service := NewHomeworkJobService(repo, owner, nil, zap.NewNop())

	requestID := "req-1"
	jobType := models.JobTypeStepByStep
	job, err := service.Create(context.Background(), dto.CreateHomeworkJobInput{
		RequestID: &requestID,
		Type:      &jobType,
		Input:     models.JSONPayload{"question": "solve"},
	}, studentClaims())
	require.NoError(t, err)
	assert.Equal(t, 1, owner.calls)
	require.NotNil(t, job.RequestID)
	assert.Equal(t, "req-1", *job.RequestID)
	assert.Equal(t, models.JobTypeStepByStep, job.Type)
}

func TestHomeworkJobServiceCreateForeignRequest(t *testing.T) {
	repo := &jobRepoStub{}
	service := NewHomeworkJobService(repo, &ownershipStub{err: sql.ErrNoRows}, nil, zap.NewNop())

	requestID := "req-1"
	_, err := service.Create(context.Background(), dto.CreateHomeworkJobInput{RequestID: &requestID}, studentClaims())
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
	assert.Empty(t, repo.created)
}

func TestHomeworkJobServiceCreateInvalidType(t *testing.T) {
	service := NewHomeworkJobService(&jobRepoStub{}, ownedRequest(), nil, zap.NewNop())

	jobType := models.JobType("essay")
	_, err := service.Create(context.Background(), dto.CreateHomeworkJobInput{Type: &jobType}, studentClaims())
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestHomeworkJobServiceCreateFailedStatusRecorded(t *testing.T) {
	repo := &jobRepoStub{}
	service := NewHomeworkJobService(repo, ownedRequest(), nil, zap.NewNop())

	status := models.JobStatusFailed
	job, err := service.Create(context.Background(), dto.CreateHomeworkJobInput{Status: &status}, studentClaims())
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusFailed, job.Status)
}

func TestHomeworkJobServiceListCountsItems(t *testing.T) {
	repo := &jobRepoStub{items: []models.HomeworkJob{{ID: "job-1"}, {ID: "job-2"}}}
	service := NewHomeworkJobService(repo, ownedRequest(), nil, zap.NewNop())

	list, err := service.List(context.Background(), models.HomeworkJobFilter{}, studentClaims())
	require.NoError(t, err)
	assert.Equal(t, 2, list.Count)
	assert.Len(t, list.Items, list.Count)
}
