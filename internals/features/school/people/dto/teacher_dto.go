package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "schoolku_backend/internals/features/school/people/model"
)

/* ===================== TEACHER ===================== */

type CreateTeacherRequest struct {
	TeacherUserID  uuid.UUID `json:"teacher_user_id" validate:"required"`
	TeacherName    string    `json:"teacher_name" validate:"required,min=2,max=100"`
	TeacherSurname string    `json:"teacher_surname" validate:"required,min=2,max=100"`
	TeacherPhone   *string   `json:"teacher_phone" validate:"omitempty,max=30"`
	TeacherAddress *string   `json:"teacher_address" validate:"omitempty,max=500"`
}

func (r CreateTeacherRequest) ToModel() *model.TeacherModel {
	return &model.TeacherModel{
		TeacherUserID:  r.TeacherUserID,
		TeacherName:    strings.TrimSpace(r.TeacherName),
		TeacherSurname: strings.TrimSpace(r.TeacherSurname),
		TeacherPhone:   r.TeacherPhone,
		TeacherAddress: r.TeacherAddress,
	}
}

type UpdateTeacherRequest struct {
	TeacherName    *string `json:"teacher_name" validate:"omitempty,min=2,max=100"`
	TeacherSurname *string `json:"teacher_surname" validate:"omitempty,min=2,max=100"`
	TeacherPhone   *string `json:"teacher_phone" validate:"omitempty,max=30"`
	TeacherAddress *string `json:"teacher_address" validate:"omitempty,max=500"`
}

func (r *UpdateTeacherRequest) ApplyToModel(m *model.TeacherModel) {
	if r.TeacherName != nil {
		m.TeacherName = strings.TrimSpace(*r.TeacherName)
	}
	if r.TeacherSurname != nil {
		m.TeacherSurname = strings.TrimSpace(*r.TeacherSurname)
	}
	if r.TeacherPhone != nil {
		m.TeacherPhone = r.TeacherPhone
	}
	if r.TeacherAddress != nil {
		m.TeacherAddress = r.TeacherAddress
	}
}

type TeacherResponse struct {
	TeacherID        uuid.UUID `json:"teacher_id"`
	TeacherUserID    uuid.UUID `json:"teacher_user_id"`
	TeacherName      string    `json:"teacher_name"`
	TeacherSurname   string    `json:"teacher_surname"`
	TeacherPhone     *string   `json:"teacher_phone,omitempty"`
	TeacherAddress   *string   `json:"teacher_address,omitempty"`
	TeacherCreatedAt time.Time `json:"teacher_created_at"`
}

func NewTeacherResponse(m *model.TeacherModel) *TeacherResponse {
	if m == nil {
		return nil
	}
	return &TeacherResponse{
		TeacherID:        m.TeacherID,
		TeacherUserID:    m.TeacherUserID,
		TeacherName:      m.TeacherName,
		TeacherSurname:   m.TeacherSurname,
		TeacherPhone:     m.TeacherPhone,
		TeacherAddress:   m.TeacherAddress,
		TeacherCreatedAt: m.TeacherCreatedAt,
	}
}
