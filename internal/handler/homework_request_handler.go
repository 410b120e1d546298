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

type homeworkRequestService interface {
	Create(ctx context.Context, in dto.CreateHomeworkRequestInput, claims *models.AuthClaims) (*models.HomeworkRequest, error)
	Update(ctx context.Context, id string, in dto.UpdateHomeworkRequestInput, claims *models.AuthClaims) (*models.HomeworkRequest, error)
	List(ctx context.Context, filter models.HomeworkRequestFilter, claims *models.AuthClaims) (*dto.HomeworkRequestList, error)
}

// HomeworkRequestHandler exposes the student question endpoints.
type HomeworkRequestHandler struct {
	service homeworkRequestService
}

// NewHomeworkRequestHandler builds a new handler.
func NewHomeworkRequestHandler(service homeworkRequestService) *HomeworkRequestHandler {
	return &HomeworkRequestHandler{service: service}
}

// Create godoc
// @Summary Submit a homework question
// @Tags Homework Requests
// @Accept json
// @Produce json
// @Param payload body dto.CreateHomeworkRequestInput true "Question payload"
// @Success 201 {object} response.Envelope
// @Router /homework/requests [post]
func (h *HomeworkRequestHandler) Create(c *gin.Context) {
	claims := claimsFromContext(c)
	var in dto.CreateHomeworkRequestInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid homework request payload"))
		return
	}
	req, err := h.service.Create(c.Request.Context(), in, claims)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, req)
}

// Update godoc
// @Summary Update a homework question
// @Tags Homework Requests
// @Accept json
// @Produce json
// @Param requestId path string true "Request ID"
// @Param payload body dto.UpdateHomeworkRequestInput true "Fields to change"
// @Success 200 {object} response.Envelope
// @Router /homework/requests/{requestId} [put]
func (h *HomeworkRequestHandler) Update(c *gin.Context) {
	claims := claimsFromContext(c)
	var in dto.UpdateHomeworkRequestInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid homework request payload"))
		return
	}
	req, err := h.service.Update(c.Request.Context(), c.Param("requestId"), in, claims)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, req)
}

// List godoc
// @Summary List the caller's homework questions
// @Tags Homework Requests
// @Produce json
// @Param status query string false "Exact status filter (open|answered|closed)"
// @Success 200 {object} response.Envelope
// @Router /homework/requests [get]
func (h *HomeworkRequestHandler) List(c *gin.Context) {
	claims := claimsFromContext(c)
	filter := models.HomeworkRequestFilter{}
	if raw := c.Query("status"); raw != "" {
		status := models.HomeworkRequestStatus(raw)
		filter.Status = &status
	}
	list, err := h.service.List(c.Request.Context(), filter, claims)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, list)
}
