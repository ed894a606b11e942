package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "schoolku_backend/internals/features/school/academics/model"
)

/* ===================== CLASS ===================== */

type CreateClassRequest struct {
	ClassName         string     `json:"class_name" validate:"required,min=1,max=50"`
	ClassCapacity     int        `json:"class_capacity" validate:"required,min=1,max=100"`
	ClassGradeID      uuid.UUID  `json:"class_grade_id" validate:"required"`
	ClassSupervisorID *uuid.UUID `json:"class_supervisor_id" validate:"omitempty"`
}

func (r CreateClassRequest) ToModel() *model.ClassModel {
	return &model.ClassModel{
		ClassName:         strings.TrimSpace(r.ClassName),
		ClassCapacity:     r.ClassCapacity,
		ClassGradeID:      r.ClassGradeID,
		ClassSupervisorID: r.ClassSupervisorID,
	}
}

type UpdateClassRequest struct {
	ClassName         *string    `json:"class_name" validate:"omitempty,min=1,max=50"`
	ClassCapacity     *int       `json:"class_capacity" validate:"omitempty,min=1,max=100"`
	ClassGradeID      *uuid.UUID `json:"class_grade_id" validate:"omitempty"`
	ClassSupervisorID *uuid.UUID `json:"class_supervisor_id" validate:"omitempty"`
}

func (r *UpdateClassRequest) ApplyToModel(m *model.ClassModel) {
	if r.ClassName != nil {
		m.ClassName = strings.TrimSpace(*r.ClassName)
	}
	if r.ClassCapacity != nil {
		m.ClassCapacity = *r.ClassCapacity
	}
	if r.ClassGradeID != nil {
		m.ClassGradeID = *r.ClassGradeID
	}
	if r.ClassSupervisorID != nil {
		m.ClassSupervisorID = r.ClassSupervisorID
	}
}

type ClassResponse struct {
	ClassID           uuid.UUID  `json:"class_id"`
	ClassName         string     `json:"class_name"`
	ClassCapacity     int        `json:"class_capacity"`
	ClassGradeID      uuid.UUID  `json:"class_grade_id"`
	ClassSupervisorID *uuid.UUID `json:"class_supervisor_id,omitempty"`
	ClassCreatedAt    time.Time  `json:"class_created_at"`
}

func NewClassResponse(m *model.ClassModel) *ClassResponse {
	if m == nil {
		return nil
	}
	return &ClassResponse{
		ClassID:           m.ClassID,
		ClassName:         m.ClassName,
		ClassCapacity:     m.ClassCapacity,
		ClassGradeID:      m.ClassGradeID,
		ClassSupervisorID: m.ClassSupervisorID,
		ClassCreatedAt:    m.ClassCreatedAt,
	}
}
