package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "schoolku_backend/internals/features/school/people/model"
)

/* ===================== STUDENT ===================== */

type CreateStudentRequest struct {
	StudentUserID   uuid.UUID `json:"student_user_id" validate:"required"`
	StudentName     string    `json:"student_name" validate:"required,min=2,max=100"`
	StudentSurname  string    `json:"student_surname" validate:"required,min=2,max=100"`
	StudentClassID  uuid.UUID `json:"student_class_id" validate:"required"`
	StudentGradeID  uuid.UUID `json:"student_grade_id" validate:"required"`
	StudentParentID uuid.UUID `json:"student_parent_id" validate:"required"`
}

func (r CreateStudentRequest) ToModel() *model.StudentModel {
	return &model.StudentModel{
		StudentUserID:   r.StudentUserID,
		StudentName:     strings.TrimSpace(r.StudentName),
		StudentSurname:  strings.TrimSpace(r.StudentSurname),
		StudentClassID:  r.StudentClassID,
		StudentGradeID:  r.StudentGradeID,
		StudentParentID: r.StudentParentID,
	}
}

type UpdateStudentRequest struct {
	StudentName     *string    `json:"student_name" validate:"omitempty,min=2,max=100"`
	StudentSurname  *string    `json:"student_surname" validate:"omitempty,min=2,max=100"`
	StudentClassID  *uuid.UUID `json:"student_class_id" validate:"omitempty"`
	StudentGradeID  *uuid.UUID `json:"student_grade_id" validate:"omitempty"`
	StudentParentID *uuid.UUID `json:"student_parent_id" validate:"omitempty"`
}

func (r *UpdateStudentRequest) ApplyToModel(m *model.StudentModel) {
	if r.StudentName != nil {
		m.StudentName = strings.TrimSpace(*r.StudentName)
	}
	if r.StudentSurname != nil {
		m.StudentSurname = strings.TrimSpace(*r.StudentSurname)
	}
	if r.StudentClassID != nil {
		m.StudentClassID = *r.StudentClassID
	}
	if r.StudentGradeID != nil {
		m.StudentGradeID = *r.StudentGradeID
	}
	if r.StudentParentID != nil {
		m.StudentParentID = *r.StudentParentID
	}
}

type StudentResponse struct {
	StudentID        uuid.UUID `json:"student_id"`
	StudentUserID    uuid.UUID `json:"student_user_id"`
	StudentName      string    `json:"student_name"`
	StudentSurname   string    `json:"student_surname"`
	StudentClassID   uuid.UUID `json:"student_class_id"`
	StudentGradeID   uuid.UUID `json:"student_grade_id"`
	StudentParentID  uuid.UUID `json:"student_parent_id"`
	StudentCreatedAt time.Time `json:"student_created_at"`
}

func NewStudentResponse(m *model.StudentModel) *StudentResponse {
	if m == nil {
		return nil
	}
	return &StudentResponse{
		StudentID:        m.StudentID,
		StudentUserID:    m.StudentUserID,
		StudentName:      m.StudentName,
		StudentSurname:   m.StudentSurname,
		StudentClassID:   m.StudentClassID,
		StudentGradeID:   m.StudentGradeID,
		StudentParentID:  m.StudentParentID,
		StudentCreatedAt: m.StudentCreatedAt,
	}
}
