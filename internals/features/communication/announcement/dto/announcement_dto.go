package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	model "schoolku_backend/internals/features/communication/announcement/model"
)

/* ===================== ANNOUNCEMENT ===================== */

type CreateAnnouncementRequest struct {
	AnnouncementTitle       string     `json:"announcement_title" validate:"required,min=2,max=150"`
	AnnouncementDescription string     `json:"announcement_description" validate:"required,min=2"`
	AnnouncementDate        time.Time  `json:"announcement_date" validate:"required"`
	AnnouncementClassID     *uuid.UUID `json:"announcement_class_id" validate:"omitempty"`

	AnnouncementAudienceRoles []string `json:"announcement_audience_roles" validate:"omitempty,dive,oneof=admin teacher student parent"`
}

func (r CreateAnnouncementRequest) ToModel() *model.AnnouncementModel {
	return &model.AnnouncementModel{
		AnnouncementTitle:         strings.TrimSpace(r.AnnouncementTitle),
		AnnouncementDescription:   strings.TrimSpace(r.AnnouncementDescription),
		AnnouncementDate:          r.AnnouncementDate,
		AnnouncementClassID:       r.AnnouncementClassID,
		AnnouncementAudienceRoles: pq.StringArray(r.AnnouncementAudienceRoles),
	}
}

type UpdateAnnouncementRequest struct {
	AnnouncementTitle       *string    `json:"announcement_title" validate:"omitempty,min=2,max=150"`
	AnnouncementDescription *string    `json:"announcement_description" validate:"omitempty,min=2"`
	AnnouncementDate        *time.Time `json:"announcement_date" validate:"omitempty"`
	AnnouncementClassID     *uuid.UUID `json:"announcement_class_id" validate:"omitempty"`

	AnnouncementAudienceRoles *[]string `json:"announcement_audience_roles" validate:"omitempty,dive,oneof=admin teacher student parent"`
}

func (r *UpdateAnnouncementRequest) ApplyToModel(m *model.AnnouncementModel) {
	if r.AnnouncementTitle != nil {
		m.AnnouncementTitle = strings.TrimSpace(*r.AnnouncementTitle)
	}
	if r.AnnouncementDescription != nil {
		m.AnnouncementDescription = strings.TrimSpace(*r.AnnouncementDescription)
	}
	if r.AnnouncementDate != nil {
		m.AnnouncementDate = *r.AnnouncementDate
	}
	if r.AnnouncementClassID != nil {
		m.AnnouncementClassID = r.AnnouncementClassID
	}
	if r.AnnouncementAudienceRoles != nil {
		m.AnnouncementAudienceRoles = pq.StringArray(*r.AnnouncementAudienceRoles)
	}
}

type AnnouncementResponse struct {
	AnnouncementID            uuid.UUID  `json:"announcement_id"`
	AnnouncementTitle         string     `json:"announcement_title"`
	AnnouncementDescription   string     `json:"announcement_description"`
	AnnouncementDate          time.Time  `json:"announcement_date"`
	AnnouncementClassID       *uuid.UUID `json:"announcement_class_id,omitempty"`
	AnnouncementAudienceRoles []string   `json:"announcement_audience_roles,omitempty"`
	AnnouncementCreatedAt     time.Time  `json:"announcement_created_at"`
}

func NewAnnouncementResponse(m *model.AnnouncementModel) *AnnouncementResponse {
	if m == nil {
		return nil
	}
	return &AnnouncementResponse{
		AnnouncementID:            m.AnnouncementID,
		AnnouncementTitle:         m.AnnouncementTitle,
		AnnouncementDescription:   m.AnnouncementDescription,
		AnnouncementDate:          m.AnnouncementDate,
		AnnouncementClassID:       m.AnnouncementClassID,
		AnnouncementAudienceRoles: []string(m.AnnouncementAudienceRoles),
		AnnouncementCreatedAt:     m.AnnouncementCreatedAt,
	}
}
