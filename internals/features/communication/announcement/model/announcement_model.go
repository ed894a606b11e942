package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	academicsModel "schoolku_backend/internals/features/school/academics/model"
)

// A NULL class id makes the announcement school-wide.
type AnnouncementModel struct {
	AnnouncementID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:announcement_id" json:"announcement_id"`
	AnnouncementTitle       string    `gorm:"size:150;not null;column:announcement_title" json:"announcement_title"`
	AnnouncementDescription string    `gorm:"type:text;not null;column:announcement_description" json:"announcement_description"`
	AnnouncementDate        time.Time `gorm:"type:date;not null;column:announcement_date" json:"announcement_date"`

	AnnouncementClassID *uuid.UUID `gorm:"type:uuid;index;column:announcement_class_id" json:"announcement_class_id,omitempty"`

	// empty = visible to every role
	AnnouncementAudienceRoles pq.StringArray `gorm:"type:text[];column:announcement_audience_roles" json:"announcement_audience_roles,omitempty"`

	AnnouncementCreatedAt time.Time      `gorm:"autoCreateTime;column:announcement_created_at" json:"announcement_created_at"`
	AnnouncementUpdatedAt time.Time      `gorm:"autoUpdateTime;column:announcement_updated_at" json:"announcement_updated_at"`
	AnnouncementDeletedAt gorm.DeletedAt `gorm:"column:announcement_deleted_at;index" json:"-"`

	Class *academicsModel.ClassModel `gorm:"foreignKey:AnnouncementClassID;references:ClassID;constraint:OnUpdate:RESTRICT,OnDelete:CASCADE" json:"-"`
}

func (AnnouncementModel) TableName() string { return "announcements" }
