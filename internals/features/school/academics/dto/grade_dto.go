package dto

import (
	"time"

	"github.com/google/uuid"

	model "schoolku_backend/internals/features/school/academics/model"
)

/* ===================== GRADE ===================== */

type CreateGradeRequest struct {
	GradeLevel int `json:"grade_level" validate:"required,min=1,max=12"`
}

func (r CreateGradeRequest) ToModel() *model.GradeModel {
	return &model.GradeModel{GradeLevel: r.GradeLevel}
}

type UpdateGradeRequest struct {
	GradeLevel *int `json:"grade_level" validate:"omitempty,min=1,max=12"`
}

func (r *UpdateGradeRequest) ApplyToModel(m *model.GradeModel) {
	if r.GradeLevel != nil {
		m.GradeLevel = *r.GradeLevel
	}
}

type GradeResponse struct {
	GradeID        uuid.UUID `json:"grade_id"`
	GradeLevel     int       `json:"grade_level"`
	GradeCreatedAt time.Time `json:"grade_created_at"`
}

func NewGradeResponse(m *model.GradeModel) *GradeResponse {
	if m == nil {
		return nil
	}
	return &GradeResponse{
		GradeID:        m.GradeID,
		GradeLevel:     m.GradeLevel,
		GradeCreatedAt: m.GradeCreatedAt,
	}
}
