package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// HomeworkRequestStatus captures the lifecycle of a student question.
type HomeworkRequestStatus string

const (
	RequestStatusOpen     HomeworkRequestStatus = "open"
	RequestStatusAnswered HomeworkRequestStatus = "answered"
	RequestStatusClosed   HomeworkRequestStatus = "closed"
)

// Valid reports whether the status is a known value.
func (s HomeworkRequestStatus) Valid() bool {
	switch s {
	case RequestStatusOpen, RequestStatusAnswered, RequestStatusClosed:
		return true
	}
	return false
}

// ResponseSource enumerates where an answer came from.
type ResponseSource string

const (
	SourceAI      ResponseSource = "ai"
	SourceUser    ResponseSource = "user"
	SourceTeacher ResponseSource = "teacher"
	SourceOther   ResponseSource = "other"
)

// Valid reports whether the source is a known value.
func (s ResponseSource) Valid() bool {
	switch s {
	case SourceAI, SourceUser, SourceTeacher, SourceOther:
		return true
	}
	return false
}

// JobType enumerates supported AI generation flavors.
type JobType string

const (
	JobTypeExplanation  JobType = "explanation"
	JobTypeStepByStep   JobType = "step_by_step"
	JobTypeHintOnly     JobType = "hint_only"
	JobTypeFullSolution JobType = "full_solution"
	JobTypeOther        JobType = "other"
)

// Valid reports whether the job type is a known value.
func (t JobType) Valid() bool {
	switch t {
	case JobTypeExplanation, JobTypeStepByStep, JobTypeHintOnly, JobTypeFullSolution, JobTypeOther:
		return true
	}
	return false
}

// JobStatus records the outcome of a generation attempt. Jobs are written
// after the fact, so "completed" is the default.
type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
)

// Valid reports whether the job status is a known value.
func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusPending, JobStatusCompleted, JobStatusFailed:
		return true
	}
	return false
}

// JSONPayload stores an arbitrary JSON document in a JSONB column.
type JSONPayload map[string]interface{}

// Value marshals the payload for persistence. Nil payloads persist as NULL.
func (p JSONPayload) Value() (driver.Value, error) {
	if p == nil {
		return nil, nil
	}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal json payload: %w", err)
	}
	return data, nil
}

// Scan unmarshals JSONB payloads back into the map.
func (p *JSONPayload) Scan(value interface{}) error {
	data, err := jsonbBytes(value, "JSONPayload")
	if err != nil {
		return err
	}
	if data == nil {
		*p = nil
		return nil
	}
	if err := json.Unmarshal(data, p); err != nil {
		return fmt.Errorf("unmarshal json payload: %w", err)
	}
	return nil
}

// AttachmentList stores opaque attachment metadata entries as a JSONB array.
type AttachmentList []JSONPayload

// Value marshals the list for persistence. Nil lists persist as NULL.
func (a AttachmentList) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	data, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("marshal attachments: %w", err)
	}
	return data, nil
}

// Scan unmarshals a JSONB array back into the list.
func (a *AttachmentList) Scan(value interface{}) error {
	data, err := jsonbBytes(value, "AttachmentList")
	if err != nil {
		return err
	}
	if data == nil {
		*a = nil
		return nil
	}
	if err := json.Unmarshal(data, a); err != nil {
		return fmt.Errorf("unmarshal attachments: %w", err)
	}
	return nil
}

// Step is a single entry in a structured answer walkthrough.
type Step struct {
	Order   int    `json:"order,omitempty"`
	Title   string `json:"title,omitempty"`
	Content string `json:"content"`
}

// StepList stores the ordered answer steps as JSONB.
type StepList []Step

// Value marshals the steps for persistence. Nil lists persist as NULL.
func (s StepList) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal steps: %w", err)
	}
	return data, nil
}

// Scan unmarshals a JSONB array back into the step list.
func (s *StepList) Scan(value interface{}) error {
	data, err := jsonbBytes(value, "StepList")
	if err != nil {
		return err
	}
	if data == nil {
		*s = nil
		return nil
	}
	if err := json.Unmarshal(data, s); err != nil {
		return fmt.Errorf("unmarshal steps: %w", err)
	}
	return nil
}

func jsonbBytes(value interface{}, typeName string) ([]byte, error) {
	if value == nil {
		return nil, nil
	}
	switch v := value.(type) {
	case []byte:
		if len(v) == 0 {
			return nil, nil
		}
		return v, nil
	case string:
		if v == "" {
			return nil, nil
		}
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("unsupported type %T for %s", value, typeName)
	}
}

// HomeworkRequest is a student-submitted question.
type HomeworkRequest struct {
	ID           string                `db:"id" json:"id"`
	UserID       string                `db:"user_id" json:"user_id"`
	Subject      *string               `db:"subject" json:"subject,omitempty"`
	GradeLevel   *string               `db:"grade_level" json:"grade_level,omitempty"`
	Topic        *string               `db:"topic" json:"topic,omitempty"`
	Title        *string               `db:"title" json:"title,omitempty"`
	QuestionText string                `db:"question_text" json:"question_text"`
	Attachments  AttachmentList        `db:"attachments" json:"attachments,omitempty"`
	Status       HomeworkRequestStatus `db:"status" json:"status"`
	CreatedAt    time.Time             `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time             `db:"updated_at" json:"updated_at"`
}

// HomeworkResponse is an answer attached to a request. A request may carry
// any number of responses; at most one is typically accepted.
type HomeworkResponse struct {
	ID          string         `db:"id" json:"id"`
	RequestID   string         `db:"request_id" json:"request_id"`
	ResponderID *string        `db:"responder_id" json:"responder_id,omitempty"`
	Source      ResponseSource `db:"source" json:"source"`
	AnswerText  string         `db:"answer_text" json:"answer_text"`
	Steps       StepList       `db:"steps" json:"steps,omitempty"`
	IsAccepted  bool           `db:"is_accepted" json:"is_accepted"`
	Rating      *int           `db:"rating" json:"rating,omitempty"`
	Feedback    *string        `db:"feedback" json:"feedback,omitempty"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
}

// HomeworkJob records a single AI generation attempt. The generation work
// itself happens elsewhere; this row is a pure log entity.
type HomeworkJob struct {
	ID        string      `db:"id" json:"id"`
	RequestID *string     `db:"request_id" json:"request_id,omitempty"`
	UserID    *string     `db:"user_id" json:"user_id,omitempty"`
	Type      JobType     `db:"job_type" json:"job_type"`
	Input     JSONPayload `db:"input" json:"input,omitempty"`
	Output    JSONPayload `db:"output" json:"output,omitempty"`
	Status    JobStatus   `db:"status" json:"status"`
	CreatedAt time.Time   `db:"created_at" json:"created_at"`
}

// HomeworkRequestFilter narrows request listings.
type HomeworkRequestFilter struct {
	Status *HomeworkRequestStatus
}

// HomeworkJobFilter narrows job listings.
type HomeworkJobFilter struct {
	RequestID *string
}
