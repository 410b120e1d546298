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

const homeworkRequestColumns = `id, user_id, subject, grade_level, topic, title, question_text, attachments, status, created_at, updated_at`

// HomeworkRequestRepository provides database access for student questions.
type HomeworkRequestRepository struct {
	db *sqlx.DB
}

// NewHomeworkRequestRepository creates a new instance of HomeworkRequestRepository.
func NewHomeworkRequestRepository(db *sqlx.DB) *HomeworkRequestRepository {
	return &HomeworkRequestRepository{db: db}
}

// Create inserts a fully built request row.
func (r *HomeworkRequestRepository) Create(ctx context.Context, req *models.HomeworkRequest) error {
	const query = `INSERT INTO homework_requests (id, user_id, subject, grade_level, topic, title, question_text, attachments, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	if _, err := r.db.ExecContext(ctx, query,
		req.ID, req.UserID, req.Subject, req.GradeLevel, req.Topic, req.Title,
		req.QuestionText, req.Attachments, req.Status, req.CreatedAt, req.UpdatedAt,
	); err != nil {
		return fmt.Errorf("insert homework request: %w", err)
	}
	return nil
}

// FindByIDForUser returns the request matching both id and owner. A row
// belonging to another user yields sql.ErrNoRows, exactly like a bogus id.
func (r *HomeworkRequestRepository) FindByIDForUser(ctx context.Context, id, userID string) (*models.HomeworkRequest, error) {
	query := `SELECT ` + homeworkRequestColumns + ` FROM homework_requests WHERE id = $1 AND user_id = $2 LIMIT 1`
	var req models.HomeworkRequest
	if err := r.db.GetContext(ctx, &req, query, id, userID); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find homework request: %w", err)
	}
	return &req, nil
}

// ListByUser returns all requests owned by the user, optionally filtered by status.
func (r *HomeworkRequestRepository) ListByUser(ctx context.Context, userID string, filter models.HomeworkRequestFilter) ([]models.HomeworkRequest, error) {
	query := strings.Builder{}
	query.WriteString(`SELECT ` + homeworkRequestColumns + ` FROM homework_requests WHERE user_id = $1`)

	args := []interface{}{userID}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		fmt.Fprintf(&query, " AND status = $%d", len(args))
	}
	query.WriteString(" ORDER BY created_at DESC")

	items := []models.HomeworkRequest{}
	if err := r.db.SelectContext(ctx, &items, query.String(), args...); err != nil {
		return nil, fmt.Errorf("list homework requests: %w", err)
	}
	return items, nil
}

// HomeworkRequestUpdate holds the mutable request fields. Nil means "leave untouched".
type HomeworkRequestUpdate struct {
	Subject      *string
	GradeLevel   *string
	Topic        *string
	Title        *string
	QuestionText *string
	Attachments  *models.AttachmentList
	Status       *models.HomeworkRequestStatus
}

// Update applies the supplied fields to the owner's row and refreshes
// updated_at, returning the new row. Missing or foreign rows yield sql.ErrNoRows.
func (r *HomeworkRequestRepository) Update(ctx context.Context, id, userID string, upd HomeworkRequestUpdate) (*models.HomeworkRequest, error) {
	sets := []string{}
	args := []interface{}{}
	set := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Subject != nil {
		set("subject", *upd.Subject)
	}
	if upd.GradeLevel != nil {
		set("grade_level", *upd.GradeLevel)
	}
	if upd.Topic != nil {
		set("topic", *upd.Topic)
	}
	if upd.Title != nil {
		set("title", *upd.Title)
	}
	if upd.QuestionText != nil {
		set("question_text", *upd.QuestionText)
	}
	if upd.Attachments != nil {
		set("attachments", *upd.Attachments)
	}
	if upd.Status != nil {
		set("status", *upd.Status)
	}
	set("updated_at", time.Now().UTC())

	args = append(args, id, userID)
	query := fmt.Sprintf(`UPDATE homework_requests SET %s WHERE id = $%d AND user_id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args)-1, len(args), homeworkRequestColumns)

	var req models.HomeworkRequest
	if err := r.db.GetContext(ctx, &req, query, args...); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("update homework request: %w", err)
	}
	return &req, nil
}
