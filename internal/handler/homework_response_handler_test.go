package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edustack/homework-help-api/internal/dto"
	"github.com/edustack/homework-help-api/internal/models"
	appErrors "github.com/edustack/homework-help-api/pkg/errors"
)

type homeworkResponseServiceMock struct {
	addResp       *models.HomeworkResponse
	addErr        error
	updateResp    *models.HomeworkResponse
	updateErr     error
	listResp      *dto.HomeworkResponseList
	listErr       error
	seenRequestID string
	seenID        string
}

func (m *homeworkResponseServiceMock) Add(ctx context.Context, requestID string, in dto.AddHomeworkResponseInput, claims *models.AuthClaims) (*models.HomeworkResponse, error) {
	m.seenRequestID = requestID
	if m.addErr != nil {
		return nil, m.addErr
	}
	return m.addResp, nil
}

func (m *homeworkResponseServiceMock) Update(ctx context.Context, requestID, id string, in dto.UpdateHomeworkResponseInput, claims *models.AuthClaims) (*models.HomeworkResponse, error) {
	m.seenRequestID = requestID
	m.seenID = id
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	return m.updateResp, nil
}

func (m *homeworkResponseServiceMock) List(ctx context.Context, requestID string, claims *models.AuthClaims) (*dto.HomeworkResponseList, error) {
	m.seenRequestID = requestID
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.listResp, nil
}

func TestHomeworkResponseHandlerAdd(t *testing.T) {
	mock := &homeworkResponseServiceMock{addResp: &models.HomeworkResponse{ID: "resp-1", RequestID: "req-1", AnswerText: "4"}}
	handler := NewHomeworkResponseHandler(mock)

	body, _ := json.Marshal(dto.AddHomeworkResponseInput{AnswerText: "4"})
	c, w := testContext(t, http.MethodPost, "/homework/requests/req-1/responses", body)
	c.Params = gin.Params{{Key: "requestId", Value: "req-1"}}

	handler.Add(c)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "req-1", mock.seenRequestID)
}

func TestHomeworkResponseHandlerAddInvalidBody(t *testing.T) {
	handler := NewHomeworkResponseHandler(&homeworkResponseServiceMock{})

	c, w := testContext(t, http.MethodPost, "/homework/requests/req-1/responses", []byte(`{`))
	c.Params = gin.Params{{Key: "requestId", Value: "req-1"}}

	handler.Add(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHomeworkResponseHandlerUpdatePassesBothIDs(t *testing.T) {
	accepted := true
	mock := &homeworkResponseServiceMock{updateResp: &models.HomeworkResponse{ID: "resp-1", RequestID: "req-1", IsAccepted: true}}
	handler := NewHomeworkResponseHandler(mock)

	body, _ := json.Marshal(dto.UpdateHomeworkResponseInput{IsAccepted: &accepted})
	c, w := testContext(t, http.MethodPut, "/homework/requests/req-1/responses/resp-1", body)
	c.Params = gin.Params{{Key: "requestId", Value: "req-1"}, {Key: "id", Value: "resp-1"}}

	handler.Update(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "req-1", mock.seenRequestID)
	assert.Equal(t, "resp-1", mock.seenID)
}

func TestHomeworkResponseHandlerListForeignRequest(t *testing.T) {
	mock := &homeworkResponseServiceMock{listErr: appErrors.Clone(appErrors.ErrNotFound, "homework request not found")}
	handler := NewHomeworkResponseHandler(mock)

	c, w := testContext(t, http.MethodGet, "/homework/requests/req-other/responses", nil)
	c.Params = gin.Params{{Key: "requestId", Value: "req-other"}}

	handler.List(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.Equal(t, false, envelope["success"])
}
