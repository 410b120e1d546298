package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edustack/homework-help-api/internal/dto"
	"github.com/edustack/homework-help-api/internal/models"
	appErrors "github.com/edustack/homework-help-api/pkg/errors"
	"github.com/edustack/homework-help-api/pkg/response"
)

type homeworkJobService interface {
	Create(ctx context.Context, in dto.CreateHomeworkJobInput, claims *models.AuthClaims) (*models.HomeworkJob, error)
	List(ctx context.Context, filter models.HomeworkJobFilter, claims *models.AuthClaims) (*dto.HomeworkJobList, error)
}

// HomeworkJobHandler exposes the generation-record endpoints.
type HomeworkJobHandler struct {
	service homeworkJobService
}

// NewHomeworkJobHandler builds a new handler.
func NewHomeworkJobHandler(service homeworkJobService) *HomeworkJobHandler {
	return &HomeworkJobHandler{service: service}
}

// Create godoc
// @Summary Record an AI generation attempt
// @Tags Homework Jobs
// @Accept json
// @Produce json
// @Param payload body dto.CreateHomeworkJobInput true "Job payload"
// @Success 201 {object} response.Envelope
// @Router /homework/jobs [post]
func (h *HomeworkJobHandler) Create(c *gin.Context) {
	claims := claimsFromContext(c)
	var in dto.CreateHomeworkJobInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid homework job payload"))
		return
	}
	job, err := h.service.Create(c.Request.Context(), in, claims)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, job)
}

// List godoc
// @Summary List the caller's generation records
// @Tags Homework Jobs
// @Produce json
// @Param requestId query string false "Exact parent request filter"
// @Success 200 {object} response.Envelope
// @Router /homework/jobs [get]
func (h *HomeworkJobHandler) List(c *gin.Context) {
	claims := claimsFromContext(c)
	filter := models.HomeworkJobFilter{}
	if raw := c.Query("requestId"); raw != "" {
		filter.RequestID = &raw
	}
	list, err := h.service.List(c.Request.Context(), filter, claims)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, list)
}
