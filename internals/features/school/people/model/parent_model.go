package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ParentModel struct {
	ParentID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:parent_id" json:"parent_id"`
	ParentUserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:parent_user_id" json:"parent_user_id"`

	ParentName    string  `gorm:"size:100;not null;column:parent_name" json:"parent_name"`
	ParentSurname string  `gorm:"size:100;not null;column:parent_surname" json:"parent_surname"`
	ParentPhone   *string `gorm:"size:30;column:parent_phone" json:"parent_phone,omitempty"`
	ParentAddress *string `gorm:"type:text;column:parent_address" json:"parent_address,omitempty"`

	ParentCreatedAt time.Time      `gorm:"autoCreateTime;column:parent_created_at" json:"parent_created_at"`
	ParentUpdatedAt time.Time      `gorm:"autoUpdateTime;column:parent_updated_at" json:"parent_updated_at"`
	ParentDeletedAt gorm.DeletedAt `gorm:"column:parent_deleted_at;index" json:"-"`
}

func (ParentModel) TableName() string { return "parents" }
