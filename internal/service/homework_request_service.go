package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/edustack/homework-help-api/internal/dto"
	"github.com/edustack/homework-help-api/internal/models"
	"github.com/edustack/homework-help-api/internal/repository"
	appErrors "github.com/edustack/homework-help-api/pkg/errors"
)

type homeworkRequestStore interface {
	Create(ctx context.Context, req *models.HomeworkRequest) error
	FindByIDForUser(ctx context.Context, id, userID string) (*models.HomeworkRequest, error)
	ListByUser(ctx context.Context, userID string, filter models.HomeworkRequestFilter) ([]models.HomeworkRequest, error)
	Update(ctx context.Context, id, userID string, upd repository.HomeworkRequestUpdate) (*models.HomeworkRequest, error)
}

// HomeworkRequestService provides the question submission use cases. Every
// method authenticates first and scopes reads and writes to the caller.
type HomeworkRequestService struct {
	repo      homeworkRequestStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewHomeworkRequestService constructs a HomeworkRequestService instance.
func NewHomeworkRequestService(repo homeworkRequestStore, validate *validator.Validate, logger *zap.Logger) *HomeworkRequestService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HomeworkRequestService{repo: repo, validator: validate, logger: logger}
}

// Create records a new student question with status open.
func (s *HomeworkRequestService) Create(ctx context.Context, in dto.CreateHomeworkRequestInput, claims *models.AuthClaims) (*models.HomeworkRequest, error) {
	if claims == nil {
		return nil, appErrors.ErrUnauthorized
	}
	if err := s.validator.Struct(in); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid homework request payload")
	}
	if strings.TrimSpace(in.QuestionText) == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "questionText is required")
	}

	now := time.Now().UTC()
	req := &models.HomeworkRequest{
		ID:           uuid.NewString(),
		UserID:       claims.UserID,
		Subject:      in.Subject,
		GradeLevel:   in.GradeLevel,
		Topic:        in.Topic,
		Title:        in.Title,
		QuestionText: in.QuestionText,
		Attachments:  in.Attachments,
		Status:       models.RequestStatusOpen,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create homework request")
	}

	s.logger.Info("homework request created",
		zap.String("request_id", req.ID),
		zap.String("user_id", req.UserID),
	)
	return req, nil
}

// Update applies a partial update to an owned request.
func (s *HomeworkRequestService) Update(ctx context.Context, id string, in dto.UpdateHomeworkRequestInput, claims *models.AuthClaims) (*models.HomeworkRequest, error) {
	if claims == nil {
		return nil, appErrors.ErrUnauthorized
	}
	if in.Empty() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "at least one field must be provided")
	}
	if err := s.validator.Struct(in); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid homework request payload")
	}
	if in.QuestionText != nil && strings.TrimSpace(*in.QuestionText) == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "questionText must not be empty")
	}
	if in.Status != nil && !in.Status.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid status")
	}

	if _, err := s.repo.FindByIDForUser(ctx, id, claims.UserID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "homework request not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load homework request")
	}

	req, err := s.repo.Update(ctx, id, claims.UserID, repository.HomeworkRequestUpdate{
		Subject:      in.Subject,
		GradeLevel:   in.GradeLevel,
		Topic:        in.Topic,
		Title:        in.Title,
		QuestionText: in.QuestionText,
		Attachments:  in.Attachments,
		Status:       in.Status,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "homework request not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update homework request")
	}
	return req, nil
}

// List returns the caller's requests with an optional exact status filter.
func (s *HomeworkRequestService) List(ctx context.Context, filter models.HomeworkRequestFilter, claims *models.AuthClaims) (*dto.HomeworkRequestList, error) {
	if claims == nil {
		return nil, appErrors.ErrUnauthorized
	}
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid status filter")
	}

	items, err := s.repo.ListByUser(ctx, claims.UserID, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list homework requests")
	}
	return &dto.HomeworkRequestList{Items: items, Count: len(items)}, nil
}
