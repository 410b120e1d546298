package dto

import (
	"github.com/edustack/homework-help-api/internal/models"
)

// CreateHomeworkRequestInput captures POST /homework/requests payload.
type CreateHomeworkRequestInput struct {
	QuestionText string                `json:"questionText" validate:"required"`
	Subject      *string               `json:"subject,omitempty"`
	GradeLevel   *string               `json:"gradeLevel,omitempty"`
	Topic        *string               `json:"topic,omitempty"`
	Title        *string               `json:"title,omitempty"`
	Attachments  models.AttachmentList `json:"attachments,omitempty"`
}

// UpdateHomeworkRequestInput captures PUT /homework/requests/:id payload.
// Every field is optional; omitted fields are left untouched.
type UpdateHomeworkRequestInput struct {
	Subject      *string                       `json:"subject,omitempty"`
	GradeLevel   *string                       `json:"gradeLevel,omitempty"`
	Topic        *string                       `json:"topic,omitempty"`
	Title        *string                       `json:"title,omitempty"`
	QuestionText *string                       `json:"questionText,omitempty" validate:"omitempty,min=1"`
	Attachments  *models.AttachmentList        `json:"attachments,omitempty"`
	Status       *models.HomeworkRequestStatus `json:"status,omitempty"`
}

// Empty reports whether the update carries no fields at all.
func (in UpdateHomeworkRequestInput) Empty() bool {
	return in.Subject == nil &&
		in.GradeLevel == nil &&
		in.Topic == nil &&
		in.Title == nil &&
		in.QuestionText == nil &&
		in.Attachments == nil &&
		in.Status == nil
}

// AddHomeworkResponseInput captures POST /homework/requests/:requestId/responses payload.
type AddHomeworkResponseInput struct {
	AnswerText string                 `json:"answerText" validate:"required"`
	Steps      models.StepList        `json:"steps,omitempty"`
	IsAccepted *bool                  `json:"isAccepted,omitempty"`
	Rating     *int                   `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Feedback   *string                `json:"feedback,omitempty"`
	Source     *models.ResponseSource `json:"source,omitempty"`
}

// UpdateHomeworkResponseInput captures the mutable response fields.
type UpdateHomeworkResponseInput struct {
	IsAccepted *bool   `json:"isAccepted,omitempty"`
	Rating     *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Feedback   *string `json:"feedback,omitempty"`
}

// Empty reports whether the update carries no fields at all.
func (in UpdateHomeworkResponseInput) Empty() bool {
	return in.IsAccepted == nil && in.Rating == nil && in.Feedback == nil
}

// CreateHomeworkJobInput captures POST /homework/jobs payload. Jobs are
// recorded with precomputed status and output.
type CreateHomeworkJobInput struct {
	RequestID *string            `json:"requestId,omitempty"`
	Type      *models.JobType    `json:"jobType,omitempty"`
	Input     models.JSONPayload `json:"input,omitempty"`
	Output    models.JSONPayload `json:"output,omitempty"`
	Status    *models.JobStatus  `json:"status,omitempty"`
}

// HomeworkRequestList wraps request listings with their count.
type HomeworkRequestList struct {
	Items []models.HomeworkRequest `json:"items"`
	Count int                      `json:"count"`
}

// HomeworkResponseList wraps response listings with their count.
type HomeworkResponseList struct {
	Items []models.HomeworkResponse `json:"items"`
	Count int                       `json:"count"`
}

// HomeworkJobList wraps job listings with their count.
type HomeworkJobList struct {
	Items []models.HomeworkJob `json:"items"`
	Count int                  `json:"count"`
}
