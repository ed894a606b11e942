package dto

import (
	"time"

	"github.com/google/uuid"

	model "schoolku_backend/internals/features/attendance/model"
)

/* ===================== ATTENDANCE ===================== */

type CreateAttendanceRequest struct {
	AttendanceDate      time.Time `json:"attendance_date" validate:"required"`
	AttendancePresent   *bool     `json:"attendance_present" validate:"required"`
	AttendanceStudentID uuid.UUID `json:"attendance_student_id" validate:"required"`
	AttendanceLessonID  uuid.UUID `json:"attendance_lesson_id" validate:"required"`
}

func (r CreateAttendanceRequest) ToModel() *model.AttendanceModel {
	return &model.AttendanceModel{
		AttendanceDate:      r.AttendanceDate,
		AttendancePresent:   r.AttendancePresent != nil && *r.AttendancePresent,
		AttendanceStudentID: r.AttendanceStudentID,
		AttendanceLessonID:  r.AttendanceLessonID,
	}
}

type UpdateAttendanceRequest struct {
	AttendancePresent *bool `json:"attendance_present" validate:"required"`
}

func (r *UpdateAttendanceRequest) ApplyToModel(m *model.AttendanceModel) {
	if r.AttendancePresent != nil {
		m.AttendancePresent = *r.AttendancePresent
	}
}

type AttendanceResponse struct {
	AttendanceID        uuid.UUID `json:"attendance_id"`
	AttendanceDate      time.Time `json:"attendance_date"`
	AttendancePresent   bool      `json:"attendance_present"`
	AttendanceStudentID uuid.UUID `json:"attendance_student_id"`
	AttendanceLessonID  uuid.UUID `json:"attendance_lesson_id"`
	AttendanceCreatedAt time.Time `json:"attendance_created_at"`
}

func NewAttendanceResponse(m *model.AttendanceModel) *AttendanceResponse {
	if m == nil {
		return nil
	}
	return &AttendanceResponse{
		AttendanceID:        m.AttendanceID,
		AttendanceDate:      m.AttendanceDate,
		AttendancePresent:   m.AttendancePresent,
		AttendanceStudentID: m.AttendanceStudentID,
		AttendanceLessonID:  m.AttendanceLessonID,
		AttendanceCreatedAt: m.AttendanceCreatedAt,
	}
}
