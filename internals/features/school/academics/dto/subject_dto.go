package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "schoolku_backend/internals/features/school/academics/model"
)

/* ===================== SUBJECT ===================== */

type CreateSubjectRequest struct {
	SubjectName string `json:"subject_name" validate:"required,min=2,max=100"`
}

func (r CreateSubjectRequest) ToModel() *model.SubjectModel {
	return &model.SubjectModel{SubjectName: strings.TrimSpace(r.SubjectName)}
}

type UpdateSubjectRequest struct {
	SubjectName *string `json:"subject_name" validate:"omitempty,min=2,max=100"`
}

func (r *UpdateSubjectRequest) ApplyToModel(m *model.SubjectModel) {
	if r.SubjectName != nil {
		m.SubjectName = strings.TrimSpace(*r.SubjectName)
	}
}

type SubjectResponse struct {
	SubjectID        uuid.UUID `json:"subject_id"`
	SubjectName      string    `json:"subject_name"`
	SubjectCreatedAt time.Time `json:"subject_created_at"`
}

func NewSubjectResponse(m *model.SubjectModel) *SubjectResponse {
	if m == nil {
		return nil
	}
	return &SubjectResponse{
		SubjectID:        m.SubjectID,
		SubjectName:      m.SubjectName,
		SubjectCreatedAt: m.SubjectCreatedAt,
	}
}
