package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "schoolku_backend/internals/features/assessments/assignment/model"
)

/* ===================== ASSIGNMENT ===================== */

type CreateAssignmentRequest struct {
	AssignmentTitle       string    `json:"assignment_title" validate:"required,min=2,max=150"`
	AssignmentStartDate   time.Time `json:"assignment_start_date" validate:"required"`
	AssignmentDueDate     time.Time `json:"assignment_due_date" validate:"required,gtfield=AssignmentStartDate"`
	AssignmentTotalPoints *float64  `json:"assignment_total_points" validate:"omitempty,gt=0"`
	AssignmentLessonID    uuid.UUID `json:"assignment_lesson_id" validate:"required"`
}

func (r CreateAssignmentRequest) ToModel() *model.AssignmentModel {
	return &model.AssignmentModel{
		AssignmentTitle:       strings.TrimSpace(r.AssignmentTitle),
		AssignmentStartDate:   r.AssignmentStartDate,
		AssignmentDueDate:     r.AssignmentDueDate,
		AssignmentTotalPoints: r.AssignmentTotalPoints,
		AssignmentLessonID:    r.AssignmentLessonID,
	}
}

type UpdateAssignmentRequest struct {
	AssignmentTitle       *string    `json:"assignment_title" validate:"omitempty,min=2,max=150"`
	AssignmentStartDate   *time.Time `json:"assignment_start_date" validate:"omitempty"`
	AssignmentDueDate     *time.Time `json:"assignment_due_date" validate:"omitempty"`
	AssignmentTotalPoints *float64   `json:"assignment_total_points" validate:"omitempty,gt=0"`
	AssignmentLessonID    *uuid.UUID `json:"assignment_lesson_id" validate:"omitempty"`
}

func (r *UpdateAssignmentRequest) ApplyToModel(m *model.AssignmentModel) {
	if r.AssignmentTitle != nil {
		m.AssignmentTitle = strings.TrimSpace(*r.AssignmentTitle)
	}
	if r.AssignmentStartDate != nil {
		m.AssignmentStartDate = *r.AssignmentStartDate
	}
	if r.AssignmentDueDate != nil {
		m.AssignmentDueDate = *r.AssignmentDueDate
	}
	if r.AssignmentTotalPoints != nil {
		m.AssignmentTotalPoints = r.AssignmentTotalPoints
	}
	if r.AssignmentLessonID != nil {
		m.AssignmentLessonID = *r.AssignmentLessonID
	}
}

type AssignmentResponse struct {
	AssignmentID          uuid.UUID `json:"assignment_id"`
	AssignmentTitle       string    `json:"assignment_title"`
	AssignmentStartDate   time.Time `json:"assignment_start_date"`
	AssignmentDueDate     time.Time `json:"assignment_due_date"`
	AssignmentTotalPoints *float64  `json:"assignment_total_points,omitempty"`
	AssignmentLessonID    uuid.UUID `json:"assignment_lesson_id"`
	AssignmentCreatedAt   time.Time `json:"assignment_created_at"`
}

func NewAssignmentResponse(m *model.AssignmentModel) *AssignmentResponse {
	if m == nil {
		return nil
	}
	return &AssignmentResponse{
		AssignmentID:          m.AssignmentID,
		AssignmentTitle:       m.AssignmentTitle,
		AssignmentStartDate:   m.AssignmentStartDate,
		AssignmentDueDate:     m.AssignmentDueDate,
		AssignmentTotalPoints: m.AssignmentTotalPoints,
		AssignmentLessonID:    m.AssignmentLessonID,
		AssignmentCreatedAt:   m.AssignmentCreatedAt,
	}
}
