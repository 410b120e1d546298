package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/edustack/homework-help-api/internal/models"
)

const homeworkResponseColumns = `id, request_id, responder_id, source, answer_text, steps, is_accepted, rating, feedback, created_at`

// HomeworkResponseRepository provides database access for answers, including
// the acceptance side effect on the parent request.
type HomeworkResponseRepository struct {
	db *sqlx.DB
}

// NewHomeworkResponseRepository creates a new instance of HomeworkResponseRepository.
func NewHomeworkResponseRepository(db *sqlx.DB) *HomeworkResponseRepository {
	return &HomeworkResponseRepository{db: db}
}

// Create inserts a response row. When the response is born accepted, the
// parent request is marked answered in the same transaction so no
// inconsistent intermediate state is ever visible.
func (r *HomeworkResponseRepository) Create(ctx context.Context, resp *models.HomeworkResponse) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin response transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const insertQuery = `INSERT INTO homework_responses (id, request_id, responder_id, source, answer_text, steps, is_accepted, rating, feedback, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	if _, err = tx.ExecContext(ctx, insertQuery,
		resp.ID, resp.RequestID, resp.ResponderID, resp.Source, resp.AnswerText,
		resp.Steps, resp.IsAccepted, resp.Rating, resp.Feedback, resp.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert homework response: %w", err)
	}

	if resp.IsAccepted {
		if err = setRequestStatus(ctx, tx, resp.RequestID, models.RequestStatusAnswered); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit homework response: %w", err)
	}
	return nil
}

// FindByIDForRequest returns the response matching both its own id and the
// parent request id. A response that exists under a different request yields
// sql.ErrNoRows.
func (r *HomeworkResponseRepository) FindByIDForRequest(ctx context.Context, id, requestID string) (*models.HomeworkResponse, error) {
	query := `SELECT ` + homeworkResponseColumns + ` FROM homework_responses WHERE id = $1 AND request_id = $2 LIMIT 1`
	var resp models.HomeworkResponse
	if err := r.db.GetContext(ctx, &resp, query, id, requestID); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find homework response: %w", err)
	}
	return &resp, nil
}

// ListByRequest returns all responses for a request, oldest first.
func (r *HomeworkResponseRepository) ListByRequest(ctx context.Context, requestID string) ([]models.HomeworkResponse, error) {
	query := `SELECT ` + homeworkResponseColumns + ` FROM homework_responses WHERE request_id = $1 ORDER BY created_at ASC`
	items := []models.HomeworkResponse{}
	if err := r.db.SelectContext(ctx, &items, query, requestID); err != nil {
		return nil, fmt.Errorf("list homework responses: %w", err)
	}
	return items, nil
}

// HomeworkResponseUpdate holds the mutable response fields. Nil means "leave untouched".
type HomeworkResponseUpdate struct {
	IsAccepted *bool
	Rating     *int
	Feedback   *string
}

// Update applies the supplied fields to a response scoped by id and parent
// request. When IsAccepted is supplied (true or false) the parent request
// status follows it within the same transaction: accepted marks the request
// answered, un-accepted reverts it to open. Missing rows yield sql.ErrNoRows.
func (r *HomeworkResponseRepository) Update(ctx context.Context, id, requestID string, upd HomeworkResponseUpdate) (resp *models.HomeworkResponse, err error) {
	sets := []string{}
	args := []interface{}{}
	set := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.IsAccepted != nil {
		set("is_accepted", *upd.IsAccepted)
	}
	if upd.Rating != nil {
		set("rating", *upd.Rating)
	}
	if upd.Feedback != nil {
		set("feedback", *upd.Feedback)
	}

	args = append(args, id, requestID)
	query := fmt.Sprintf(`UPDATE homework_responses SET %s WHERE id = $%d AND request_id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args)-1, len(args), homeworkResponseColumns)

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin response transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var row models.HomeworkResponse
	if err = tx.GetContext(ctx, &row, query, args...); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("update homework response: %w", err)
	}

	if upd.IsAccepted != nil {
		status := models.RequestStatusOpen
		if *upd.IsAccepted {
			status = models.RequestStatusAnswered
		}
		if err = setRequestStatus(ctx, tx, requestID, status); err != nil {
			return nil, err
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit homework response: %w", err)
	}
	return &row, nil
}

func setRequestStatus(ctx context.Context, tx *sqlx.Tx, requestID string, status models.HomeworkRequestStatus) error {
	const query = `UPDATE homework_requests SET status = $2, updated_at = $3 WHERE id = $1`
	if _, err := tx.ExecContext(ctx, query, requestID, status, time.Now().UTC()); err != nil {
		return fmt.Errorf("set homework request status: %w", err)
	}
	return nil
}
