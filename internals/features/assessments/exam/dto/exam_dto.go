package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "schoolku_backend/internals/features/assessments/exam/model"
)

/* ===================== EXAM ===================== */

type CreateExamRequest struct {
	ExamTitle     string    `json:"exam_title" validate:"required,min=2,max=150"`
	ExamStartTime time.Time `json:"exam_start_time" validate:"required"`
	ExamEndTime   time.Time `json:"exam_end_time" validate:"required,gtfield=ExamStartTime"`
	ExamLessonID  uuid.UUID `json:"exam_lesson_id" validate:"required"`
}

func (r CreateExamRequest) ToModel() *model.ExamModel {
	return &model.ExamModel{
		ExamTitle:     strings.TrimSpace(r.ExamTitle),
		ExamStartTime: r.ExamStartTime,
		ExamEndTime:   r.ExamEndTime,
		ExamLessonID:  r.ExamLessonID,
	}
}

type UpdateExamRequest struct {
	ExamTitle     *string    `json:"exam_title" validate:"omitempty,min=2,max=150"`
	ExamStartTime *time.Time `json:"exam_start_time" validate:"omitempty"`
	ExamEndTime   *time.Time `json:"exam_end_time" validate:"omitempty"`
	ExamLessonID  *uuid.UUID `json:"exam_lesson_id" validate:"omitempty"`
}

func (r *UpdateExamRequest) ApplyToModel(m *model.ExamModel) {
	if r.ExamTitle != nil {
		m.ExamTitle = strings.TrimSpace(*r.ExamTitle)
	}
	if r.ExamStartTime != nil {
		m.ExamStartTime = *r.ExamStartTime
	}
	if r.ExamEndTime != nil {
		m.ExamEndTime = *r.ExamEndTime
	}
	if r.ExamLessonID != nil {
		m.ExamLessonID = *r.ExamLessonID
	}
}

type ExamResponse struct {
	ExamID        uuid.UUID `json:"exam_id"`
	ExamTitle     string    `json:"exam_title"`
	ExamStartTime time.Time `json:"exam_start_time"`
	ExamEndTime   time.Time `json:"exam_end_time"`
	ExamLessonID  uuid.UUID `json:"exam_lesson_id"`
	ExamCreatedAt time.Time `json:"exam_created_at"`
}

func NewExamResponse(m *model.ExamModel) *ExamResponse {
	if m == nil {
		return nil
	}
	return &ExamResponse{
		ExamID:        m.ExamID,
		ExamTitle:     m.ExamTitle,
		ExamStartTime: m.ExamStartTime,
		ExamEndTime:   m.ExamEndTime,
		ExamLessonID:  m.ExamLessonID,
		ExamCreatedAt: m.ExamCreatedAt,
	}
}
