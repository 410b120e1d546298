package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/edustack/homework-help-api/internal/dto"
	"github.com/edustack/homework-help-api/internal/models"
	appErrors "github.com/edustack/homework-help-api/pkg/errors"
)

type homeworkJobStore interface {
	Create(ctx context.Context, job *models.HomeworkJob) error
	ListByUser(ctx context.Context, userID string, filter models.HomeworkJobFilter) ([]models.HomeworkJob, error)
}

// HomeworkJobService records AI generation attempts. The generation itself
// happens outside this service; jobs arrive with precomputed status and
// output and are immutable once written.
type HomeworkJobService struct {
	repo      homeworkJobStore
	requests  requestOwnershipResolver
	validator *validator.Validate
	logger    *zap.Logger
}

// NewHomeworkJobService constructs a HomeworkJobService instance.
func NewHomeworkJobService(repo homeworkJobStore, requests requestOwnershipResolver, validate *validator.Validate, logger *zap.Logger) *HomeworkJobService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HomeworkJobService{repo: repo, requests: requests, validator: validate, logger: logger}
}

// Create records a generation attempt, optionally linked to an owned request.
func (s *HomeworkJobService) Create(ctx context.Context, in dto.CreateHomeworkJobInput, claims *models.AuthClaims) (*models.HomeworkJob, error) {
	if claims == nil {
		return nil, appErrors.ErrUnauthorized
	}
	if err := s.validator.Struct(in); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid homework job payload")
	}

	jobType := models.JobTypeFullSolution
	if in.Type != nil {
		if !in.Type.Valid() {
			return nil, appErrors.Clone(appErrors.ErrValidation, "invalid jobType")
		}
		jobType = *in.Type
	}
	status := models.JobStatusCompleted
	if in.Status != nil {
		if !in.Status.Valid() {
			return nil, appErrors.Clone(appErrors.ErrValidation, "invalid status")
		}
		status = *in.Status
	}

	if in.RequestID != nil {
		if _, err := s.requests.FindByIDForUser(ctx, *in.RequestID, claims.UserID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, appErrors.Clone(appErrors.ErrNotFound, "homework request not found")
			}
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load homework request")
		}
	}

	userID := claims.UserID
	job := &models.HomeworkJob{
		ID:        uuid.NewString(),
		RequestID: in.RequestID,
		UserID:    &userID,
		Type:      jobType,
		Input:     in.Input,
		Output:    in.Output,
		Status:    status,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, job); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create homework job")
	}

	s.logger.Info("homework job recorded",
		zap.String("job_id", job.ID),
		zap.String("job_type", string(job.Type)),
		zap.String("status", string(job.Status)),
	)
	return job, nil
}

// List returns the caller's jobs with an optional exact request filter.
func (s *HomeworkJobService) List(ctx context.Context, filter models.HomeworkJobFilter, claims *models.AuthClaims) (*dto.HomeworkJobList, error) {
	if claims == nil {
		return nil, appErrors.ErrUnauthorized
	}

	items, err := s.repo.ListByUser(ctx, claims.UserID, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list homework jobs")
	}
	return &dto.HomeworkJobList{Items: items, Count: len(items)}, nil
}
