package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edustack/homework-help-api/internal/models"
)

func responseRows(resp models.HomeworkResponse) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "request_id", "responder_id", "source", "answer_text", "steps", "is_accepted", "rating", "feedback", "created_at"}).
		AddRow(resp.ID, resp.RequestID, resp.ResponderID, resp.Source, resp.AnswerText, nil, resp.IsAccepted, resp.Rating, resp.Feedback, resp.CreatedAt)
}

func TestHomeworkResponseRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewHomeworkResponseRepository(db)

	now := time.Now().UTC()
	resp := &models.HomeworkResponse{
		ID:         "resp-1",
		RequestID:  "req-1",
		Source:     models.SourceAI,
		AnswerText: "Plants convert light into energy.",
		CreatedAt:  now,
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO homework_responses")).
		WithArgs("resp-1", "req-1", nil, models.SourceAI, "Plants convert light into energy.", nil, false, nil, nil, now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Create(context.Background(), resp))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHomeworkResponseRepositoryCreateAcceptedMarksRequestAnswered(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewHomeworkResponseRepository(db)

	now := time.Now().UTC()
	resp := &models.HomeworkResponse{
		ID:         "resp-1",
		RequestID:  "req-1",
		Source:     models.SourceAI,
		AnswerText: "answer",
		IsAccepted: true,
		CreatedAt:  now,
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO homework_responses")).
		WithArgs("resp-1", "req-1", nil, models.SourceAI, "answer", nil, true, nil, nil, now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE homework_requests SET status = $2, updated_at = $3 WHERE id = $1")).
		WithArgs("req-1", models.RequestStatusAnswered, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Create(context.Background(), resp))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHomeworkResponseRepositoryCreateRollsBackOnStatusFailure(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewHomeworkResponseRepository(db)

	resp := &models.HomeworkResponse{
		ID:         "resp-1",
		RequestID:  "req-1",
		Source:     models.SourceAI,
		AnswerText: "answer",
		IsAccepted: true,
		CreatedAt:  time.Now().UTC(),
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO homework_responses")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE homework_requests")).
		WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	err := repo.Create(context.Background(), resp)
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHomeworkResponseRepositoryFindByIDForRequestWrongParent(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewHomeworkResponseRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM homework_responses WHERE id = $1 AND request_id = $2")).
		WithArgs("resp-1", "req-other").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByIDForRequest(context.Background(), "resp-1", "req-other")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestHomeworkResponseRepositoryListByRequest(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewHomeworkResponseRepository(db)

	now := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta("FROM homework_responses WHERE request_id = $1 ORDER BY created_at ASC")).
		WithArgs("req-1").
		WillReturnRows(responseRows(models.HomeworkResponse{
			ID: "resp-1", RequestID: "req-1", Source: models.SourceAI,
			AnswerText: "a", CreatedAt: now,
		}))

	items, err := repo.ListByRequest(context.Background(), "req-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "resp-1", items[0].ID)
}

func TestHomeworkResponseRepositoryUpdateUnacceptReopensRequest(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewHomeworkResponseRepository(db)

	now := time.Now().UTC()
	accepted := false

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE homework_responses SET is_accepted = $1 WHERE id = $2 AND request_id = $3 RETURNING")).
		WithArgs(false, "resp-1", "req-1").
		WillReturnRows(responseRows(models.HomeworkResponse{
			ID: "resp-1", RequestID: "req-1", Source: models.SourceAI,
			AnswerText: "a", IsAccepted: false, CreatedAt: now,
		}))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE homework_requests SET status = $2, updated_at = $3 WHERE id = $1")).
		WithArgs("req-1", models.RequestStatusOpen, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	resp, err := repo.Update(context.Background(), "resp-1", "req-1", HomeworkResponseUpdate{IsAccepted: &accepted})
	require.NoError(t, err)
	assert.False(t, resp.IsAccepted)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHomeworkResponseRepositoryUpdateRatingOnly(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewHomeworkResponseRepository(db)

	now := time.Now().UTC()
	rating := 4

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE homework_responses SET rating = $1 WHERE id = $2 AND request_id = $3 RETURNING")).
		WithArgs(4, "resp-1", "req-1").
		WillReturnRows(responseRows(models.HomeworkResponse{
			ID: "resp-1", RequestID: "req-1", Source: models.SourceAI,
			AnswerText: "a", Rating: &rating, CreatedAt: now,
		}))
	mock.ExpectCommit()

	resp, err := repo.Update(context.Background(), "resp-1", "req-1", HomeworkResponseUpdate{Rating: &rating})
	require.NoError(t, err)
	require.NotNil(t, resp.Rating)
	assert.Equal(t, 4, *resp.Rating)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHomeworkResponseRepositoryUpdateMissingRow(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewHomeworkResponseRepository(db)

	feedback := "thanks"
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE homework_responses SET")).
		WithArgs("thanks", "resp-404", "req-1").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, err := repo.Update(context.Background(), "resp-404", "req-1", HomeworkResponseUpdate{Feedback: &feedback})
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
