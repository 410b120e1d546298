package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/edustack/homework-help-api/internal/models"
)

const homeworkJobColumns = `id, request_id, user_id, job_type, input, output, status, created_at`

// HomeworkJobRepository provides database access for generation-attempt records.
type HomeworkJobRepository struct {
	db *sqlx.DB
}

// NewHomeworkJobRepository creates a new instance of HomeworkJobRepository.
func NewHomeworkJobRepository(db *sqlx.DB) *HomeworkJobRepository {
	return &HomeworkJobRepository{db: db}
}

// Create inserts a job row. Jobs are immutable after creation.
func (r *HomeworkJobRepository) Create(ctx context.Context, job *models.HomeworkJob) error {
	const query = `INSERT INTO homework_jobs (id, request_id, user_id, job_type, input, output, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	if _, err := r.db.ExecContext(ctx, query,
		job.ID, job.RequestID, job.UserID, job.Type, job.Input, job.Output, job.Status, job.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert homework job: %w", err)
	}
	return nil
}

// ListByUser returns all jobs owned by the user, optionally filtered by parent request.
func (r *HomeworkJobRepository) ListByUser(ctx context.Context, userID string, filter models.HomeworkJobFilter) ([]models.HomeworkJob, error) {
	query := strings.Builder{}
	query.WriteString(`SELECT ` + homeworkJobColumns + ` FROM homework_jobs WHERE user_id = $1`)

	args := []interface{}{userID}
	if filter.RequestID != nil {
		args = append(args, *filter.RequestID)
		fmt.Fprintf(&query, " AND request_id = $%d", len(args))
	}
	query.WriteString(" ORDER BY created_at DESC")

	items := []models.HomeworkJob{}
	if err := r.db.SelectContext(ctx, &items, query.String(), args...); err != nil {
		return nil, fmt.Errorf("list homework jobs: %w", err)
	}
	return items, nil
}
