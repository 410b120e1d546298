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

type homeworkResponseStore interface {
	Create(ctx context.Context, resp *models.HomeworkResponse) error
	FindByIDForRequest(ctx context.Context, id, requestID string) (*models.HomeworkResponse, error)
	ListByRequest(ctx context.Context, requestID string) ([]models.HomeworkResponse, error)
	Update(ctx context.Context, id, requestID string, upd repository.HomeworkResponseUpdate) (*models.HomeworkResponse, error)
}

type requestOwnershipResolver interface {
	FindByIDForUser(ctx context.Context, id, userID string) (*models.HomeworkRequest, error)
}

// HomeworkResponseService provides the answer use cases. Responses are
// always reached through the parent request, so ownership of the request is
// the precondition for everything here.
type HomeworkResponseService struct {
	repo      homeworkResponseStore
	requests  requestOwnershipResolver
	validator *validator.Validate
	logger    *zap.Logger
}

// NewHomeworkResponseService constructs a HomeworkResponseService instance.
func NewHomeworkResponseService(repo homeworkResponseStore, requests requestOwnershipResolver, validate *validator.Validate, logger *zap.Logger) *HomeworkResponseService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HomeworkResponseService{repo: repo, requests: requests, validator: validate, logger: logger}
}

// Add attaches a response to an owned request. A response inserted with
// isAccepted=true marks the parent answered in the same transaction.
func (s *HomeworkResponseService) Add(ctx context.Context, requestID string, in dto.AddHomeworkResponseInput, claims *models.AuthClaims) (*models.HomeworkResponse, error) {
	if claims == nil {
		return nil, appErrors.ErrUnauthorized
	}
	if err := s.validator.Struct(in); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid homework response payload")
	}
	if strings.TrimSpace(in.AnswerText) == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "answerText is required")
	}
	if in.Rating != nil && (*in.Rating < 1 || *in.Rating > 5) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "rating must be between 1 and 5")
	}
	source := models.SourceAI
	if in.Source != nil {
		if !in.Source.Valid() {
			return nil, appErrors.Clone(appErrors.ErrValidation, "invalid source")
		}
		source = *in.Source
	}

	if err := s.resolveRequest(ctx, requestID, claims.UserID); err != nil {
		return nil, err
	}

	resp := &models.HomeworkResponse{
		ID:         uuid.NewString(),
		RequestID:  requestID,
		Source:     source,
		AnswerText: in.AnswerText,
		Steps:      in.Steps,
		Rating:     in.Rating,
		Feedback:   in.Feedback,
		CreatedAt:  time.Now().UTC(),
	}
	if in.IsAccepted != nil {
		resp.IsAccepted = *in.IsAccepted
	}
	if source != models.SourceAI {
		responder := claims.UserID
		resp.ResponderID = &responder
	}

	if err := s.repo.Create(ctx, resp); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create homework response")
	}

	if resp.IsAccepted {
		s.logger.Info("homework request answered on insert",
			zap.String("request_id", requestID),
			zap.String("response_id", resp.ID),
		)
	}
	return resp, nil
}

// Update changes acceptance, rating or feedback on a response. Supplying
// isAccepted (either way) moves the parent request status with it; the
// status follows the last toggle, not an aggregate over sibling responses.
func (s *HomeworkResponseService) Update(ctx context.Context, requestID, id string, in dto.UpdateHomeworkResponseInput, claims *models.AuthClaims) (*models.HomeworkResponse, error) {
	if claims == nil {
		return nil, appErrors.ErrUnauthorized
	}
	if in.Empty() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "at least one field must be provided")
	}
	if err := s.validator.Struct(in); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid homework response payload")
	}
	if in.Rating != nil && (*in.Rating < 1 || *in.Rating > 5) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "rating must be between 1 and 5")
	}

	if err := s.resolveRequest(ctx, requestID, claims.UserID); err != nil {
		return nil, err
	}

	resp, err := s.repo.Update(ctx, id, requestID, repository.HomeworkResponseUpdate{
		IsAccepted: in.IsAccepted,
		Rating:     in.Rating,
		Feedback:   in.Feedback,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "homework response not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update homework response")
	}
	return resp, nil
}

// List returns all responses for an owned request.
func (s *HomeworkResponseService) List(ctx context.Context, requestID string, claims *models.AuthClaims) (*dto.HomeworkResponseList, error) {
	if claims == nil {
		return nil, appErrors.ErrUnauthorized
	}
	if err := s.resolveRequest(ctx, requestID, claims.UserID); err != nil {
		return nil, err
	}

	items, err := s.repo.ListByRequest(ctx, requestID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list homework responses")
	}
	return &dto.HomeworkResponseList{Items: items, Count: len(items)}, nil
}

func (s *HomeworkResponseService) resolveRequest(ctx context.Context, requestID, userID string) error {
	if _, err := s.requests.FindByIDForUser(ctx, requestID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "homework request not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load homework request")
	}
	return nil
}
