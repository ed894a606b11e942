package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	academicsModel "schoolku_backend/internals/features/school/academics/model"
)

// A NULL class id makes the event school-wide.
type EventModel struct {
	EventID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:event_id" json:"event_id"`
	EventTitle       string    `gorm:"size:150;not null;column:event_title" json:"event_title"`
	EventDescription string    `gorm:"type:text;not null;column:event_description" json:"event_description"`

	EventStartTime time.Time `gorm:"type:timestamptz;not null;column:event_start_time" json:"event_start_time"`
	EventEndTime   time.Time `gorm:"type:timestamptz;not null;column:event_end_time" json:"event_end_time"`

	EventClassID *uuid.UUID `gorm:"type:uuid;index;column:event_class_id" json:"event_class_id,omitempty"`

	// free-form organizer data (location, speaker, dress code, ...)
	EventMetadata datatypes.JSONMap `gorm:"type:jsonb;column:event_metadata" json:"event_metadata,omitempty"`

	EventCreatedAt time.Time      `gorm:"autoCreateTime;column:event_created_at" json:"event_created_at"`
	EventUpdatedAt time.Time      `gorm:"autoUpdateTime;column:event_updated_at" json:"event_updated_at"`
	EventDeletedAt gorm.DeletedAt `gorm:"column:event_deleted_at;index" json:"-"`

	Class *academicsModel.ClassModel `gorm:"foreignKey:EventClassID;references:ClassID;constraint:OnUpdate:RESTRICT,OnDelete:CASCADE" json:"-"`
}

func (EventModel) TableName() string { return "events" }
