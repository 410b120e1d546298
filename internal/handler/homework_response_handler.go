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

type homeworkResponseService interface {
	Add(ctx context.Context, requestID string, in dto.AddHomeworkResponseInput, claims *models.AuthClaims) (*models.HomeworkResponse, error)
	Update(ctx context.Context, requestID, id string, in dto.UpdateHomeworkResponseInput, claims *models.AuthClaims) (*models.HomeworkResponse, error)
	List(ctx context.Context, requestID string, claims *models.AuthClaims) (*dto.HomeworkResponseList, error)
}

// HomeworkResponseHandler exposes the answer endpoints.
type HomeworkResponseHandler struct {
	service homeworkResponseService
}

// NewHomeworkResponseHandler builds a new handler.
func NewHomeworkResponseHandler(service homeworkResponseService) *HomeworkResponseHandler {
	return &HomeworkResponseHandler{service: service}
}

// Add godoc
// @Summary Attach an answer to a homework question
// @Tags Homework Responses
// @Accept json
// @Produce json
// @Param requestId path string true "Request ID"
// @Param payload body dto.AddHomeworkResponseInput true "Answer payload"
// @Success 201 {object} response.Envelope
// @Router /homework/requests/{requestId}/responses [post]
func (h *HomeworkResponseHandler) Add(c *gin.Context) {
	claims := claimsFromContext(c)
	var in dto.AddHomeworkResponseInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid homework response payload"))
		return
	}
	resp, err := h.service.Add(c.Request.Context(), c.Param("requestId"), in, claims)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, resp)
}

// Update godoc
// @Summary Update acceptance, rating or feedback on an answer
// @Tags Homework Responses
// @Accept json
// @Produce json
// @Param requestId path string true "Request ID"
// @Param id path string true "Response ID"
// @Param payload body dto.UpdateHomeworkResponseInput true "Fields to change"
// @Success 200 {object} response.Envelope
// @Router /homework/requests/{requestId}/responses/{id} [put]
func (h *HomeworkResponseHandler) Update(c *gin.Context) {
	claims := claimsFromContext(c)
	var in dto.UpdateHomeworkResponseInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid homework response payload"))
		return
	}
	resp, err := h.service.Update(c.Request.Context(), c.Param("requestId"), c.Param("id"), in, claims)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp)
}

// List godoc
// @Summary List answers for a homework question
// @Tags Homework Responses
// @Produce json
// @Param requestId path string true "Request ID"
// @Success 200 {object} response.Envelope
// @Router /homework/requests/{requestId}/responses [get]
func (h *HomeworkResponseHandler) List(c *gin.Context) {
	claims := claimsFromContext(c)
	list, err := h.service.List(c.Request.Context(), c.Param("requestId"), claims)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, list)
}
