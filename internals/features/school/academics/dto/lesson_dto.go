package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "schoolku_backend/internals/features/school/academics/model"
)

/* ===================== LESSON ===================== */

type CreateLessonRequest struct {
	LessonName      string    `json:"lesson_name" validate:"required,min=2,max=100"`
	LessonDay       string    `json:"lesson_day" validate:"required,oneof=MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY"`
	LessonStartTime time.Time `json:"lesson_start_time" validate:"required"`
	LessonEndTime   time.Time `json:"lesson_end_time" validate:"required,gtfield=LessonStartTime"`
	LessonSubjectID uuid.UUID `json:"lesson_subject_id" validate:"required"`
	LessonClassID   uuid.UUID `json:"lesson_class_id" validate:"required"`
	LessonTeacherID uuid.UUID `json:"lesson_teacher_id" validate:"required"`
}

func (r CreateLessonRequest) ToModel() *model.LessonModel {
	return &model.LessonModel{
		LessonName:      strings.TrimSpace(r.LessonName),
		LessonDay:       r.LessonDay,
		LessonStartTime: r.LessonStartTime,
		LessonEndTime:   r.LessonEndTime,
		LessonSubjectID: r.LessonSubjectID,
		LessonClassID:   r.LessonClassID,
		LessonTeacherID: r.LessonTeacherID,
	}
}

type UpdateLessonRequest struct {
	LessonName      *string    `json:"lesson_name" validate:"omitempty,min=2,max=100"`
	LessonDay       *string    `json:"lesson_day" validate:"omitempty,oneof=MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY"`
	LessonStartTime *time.Time `json:"lesson_start_time" validate:"omitempty"`
	LessonEndTime   *time.Time `json:"lesson_end_time" validate:"omitempty"`
	LessonSubjectID *uuid.UUID `json:"lesson_subject_id" validate:"omitempty"`
	LessonClassID   *uuid.UUID `json:"lesson_class_id" validate:"omitempty"`
	LessonTeacherID *uuid.UUID `json:"lesson_teacher_id" validate:"omitempty"`
}

func (r *UpdateLessonRequest) ApplyToModel(m *model.LessonModel) {
	if r.LessonName != nil {
		m.LessonName = strings.TrimSpace(*r.LessonName)
	}
	if r.LessonDay != nil {
		m.LessonDay = *r.LessonDay
	}
	if r.LessonStartTime != nil {
		m.LessonStartTime = *r.LessonStartTime
	}
	if r.LessonEndTime != nil {
		m.LessonEndTime = *r.LessonEndTime
	}
	if r.LessonSubjectID != nil {
		m.LessonSubjectID = *r.LessonSubjectID
	}
	if r.LessonClassID != nil {
		m.LessonClassID = *r.LessonClassID
	}
	if r.LessonTeacherID != nil {
		m.LessonTeacherID = *r.LessonTeacherID
	}
}

type LessonResponse struct {
	LessonID        uuid.UUID `json:"lesson_id"`
	LessonName      string    `json:"lesson_name"`
	LessonDay       string    `json:"lesson_day"`
	LessonStartTime time.Time `json:"lesson_start_time"`
	LessonEndTime   time.Time `json:"lesson_end_time"`
	LessonSubjectID uuid.UUID `json:"lesson_subject_id"`
	LessonClassID   uuid.UUID `json:"lesson_class_id"`
	LessonTeacherID uuid.UUID `json:"lesson_teacher_id"`
	LessonCreatedAt time.Time `json:"lesson_created_at"`
}

func NewLessonResponse(m *model.LessonModel) *LessonResponse {
	if m == nil {
		return nil
	}
	return &LessonResponse{
		LessonID:        m.LessonID,
		LessonName:      m.LessonName,
		LessonDay:       m.LessonDay,
		LessonStartTime: m.LessonStartTime,
		LessonEndTime:   m.LessonEndTime,
		LessonSubjectID: m.LessonSubjectID,
		LessonClassID:   m.LessonClassID,
		LessonTeacherID: m.LessonTeacherID,
		LessonCreatedAt: m.LessonCreatedAt,
	}
}
