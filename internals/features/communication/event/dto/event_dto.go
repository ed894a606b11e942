package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "schoolku_backend/internals/features/communication/event/model"
)

/* ===================== EVENT ===================== */

type CreateEventRequest struct {
	EventTitle       string         `json:"event_title" validate:"required,min=2,max=150"`
	EventDescription string         `json:"event_description" validate:"required,min=2"`
	EventStartTime   time.Time      `json:"event_start_time" validate:"required"`
	EventEndTime     time.Time      `json:"event_end_time" validate:"required,gtfield=EventStartTime"`
	EventClassID     *uuid.UUID     `json:"event_class_id" validate:"omitempty"`
	EventMetadata    map[string]any `json:"event_metadata" validate:"omitempty"`
}

func (r CreateEventRequest) ToModel() *model.EventModel {
	return &model.EventModel{
		EventTitle:       strings.TrimSpace(r.EventTitle),
		EventDescription: strings.TrimSpace(r.EventDescription),
		EventStartTime:   r.EventStartTime,
		EventEndTime:     r.EventEndTime,
		EventClassID:     r.EventClassID,
		EventMetadata:    datatypes.JSONMap(r.EventMetadata),
	}
}

type UpdateEventRequest struct {
	EventTitle       *string         `json:"event_title" validate:"omitempty,min=2,max=150"`
	EventDescription *string         `json:"event_description" validate:"omitempty,min=2"`
	EventStartTime   *time.Time      `json:"event_start_time" validate:"omitempty"`
	EventEndTime     *time.Time      `json:"event_end_time" validate:"omitempty"`
	EventClassID     *uuid.UUID      `json:"event_class_id" validate:"omitempty"`
	EventMetadata    *map[string]any `json:"event_metadata" validate:"omitempty"`
}

func (r *UpdateEventRequest) ApplyToModel(m *model.EventModel) {
	if r.EventTitle != nil {
		m.EventTitle = strings.TrimSpace(*r.EventTitle)
	}
	if r.EventDescription != nil {
		m.EventDescription = strings.TrimSpace(*r.EventDescription)
	}
	if r.EventStartTime != nil {
		m.EventStartTime = *r.EventStartTime
	}
	if r.EventEndTime != nil {
		m.EventEndTime = *r.EventEndTime
	}
	if r.EventClassID != nil {
		m.EventClassID = r.EventClassID
	}
	if r.EventMetadata != nil {
		m.EventMetadata = datatypes.JSONMap(*r.EventMetadata)
	}
}

type EventResponse struct {
	EventID          uuid.UUID      `json:"event_id"`
	EventTitle       string         `json:"event_title"`
	EventDescription string         `json:"event_description"`
	EventStartTime   time.Time      `json:"event_start_time"`
	EventEndTime     time.Time      `json:"event_end_time"`
	EventClassID     *uuid.UUID     `json:"event_class_id,omitempty"`
	EventMetadata    map[string]any `json:"event_metadata,omitempty"`
	EventCreatedAt   time.Time      `json:"event_created_at"`
}

func NewEventResponse(m *model.EventModel) *EventResponse {
	if m == nil {
		return nil
	}
	return &EventResponse{
		EventID:          m.EventID,
		EventTitle:       m.EventTitle,
		EventDescription: m.EventDescription,
		EventStartTime:   m.EventStartTime,
		EventEndTime:     m.EventEndTime,
		EventClassID:     m.EventClassID,
		EventMetadata:    map[string]any(m.EventMetadata),
		EventCreatedAt:   m.EventCreatedAt,
	}
}
