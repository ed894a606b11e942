package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "schoolku_backend/internals/features/school/people/model"
)

/* ===================== PARENT ===================== */

type CreateParentRequest struct {
	ParentUserID  uuid.UUID `json:"parent_user_id" validate:"required"`
	ParentName    string    `json:"parent_name" validate:"required,min=2,max=100"`
	ParentSurname string    `json:"parent_surname" validate:"required,min=2,max=100"`
	ParentPhone   *string   `json:"parent_phone" validate:"omitempty,max=30"`
	ParentAddress *string   `json:"parent_address" validate:"omitempty,max=500"`
}

func (r CreateParentRequest) ToModel() *model.ParentModel {
	return &model.ParentModel{
		ParentUserID:  r.ParentUserID,
		ParentName:    strings.TrimSpace(r.ParentName),
		ParentSurname: strings.TrimSpace(r.ParentSurname),
		ParentPhone:   r.ParentPhone,
		ParentAddress: r.ParentAddress,
	}
}

type UpdateParentRequest struct {
	ParentName    *string `json:"parent_name" validate:"omitempty,min=2,max=100"`
	ParentSurname *string `json:"parent_surname" validate:"omitempty,min=2,max=100"`
	ParentPhone   *string `json:"parent_phone" validate:"omitempty,max=30"`
	ParentAddress *string `json:"parent_address" validate:"omitempty,max=500"`
}

func (r *UpdateParentRequest) ApplyToModel(m *model.ParentModel) {
	if r.ParentName != nil {
		m.ParentName = strings.TrimSpace(*r.ParentName)
	}
	if r.ParentSurname != nil {
		m.ParentSurname = strings.TrimSpace(*r.ParentSurname)
	}
	if r.ParentPhone != nil {
		m.ParentPhone = r.ParentPhone
	}
	if r.ParentAddress != nil {
		m.ParentAddress = r.ParentAddress
	}
}

type ParentResponse struct {
	ParentID        uuid.UUID `json:"parent_id"`
	ParentUserID    uuid.UUID `json:"parent_user_id"`
	ParentName      string    `json:"parent_name"`
	ParentSurname   string    `json:"parent_surname"`
	ParentPhone     *string   `json:"parent_phone,omitempty"`
	ParentAddress   *string   `json:"parent_address,omitempty"`
	ParentCreatedAt time.Time `json:"parent_created_at"`
}

func NewParentResponse(m *model.ParentModel) *ParentResponse {
	if m == nil {
		return nil
	}
	return &ParentResponse{
		ParentID:        m.ParentID,
		ParentUserID:    m.ParentUserID,
		ParentName:      m.ParentName,
		ParentSurname:   m.ParentSurname,
		ParentPhone:     m.ParentPhone,
		ParentAddress:   m.ParentAddress,
		ParentCreatedAt: m.ParentCreatedAt,
	}
}
