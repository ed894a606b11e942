package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeacherModel struct {
	TeacherID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:teacher_id" json:"teacher_id"`
	TeacherUserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:teacher_user_id" json:"teacher_user_id"`

	TeacherName    string  `gorm:"size:100;not null;column:teacher_name" json:"teacher_name"`
	TeacherSurname string  `gorm:"size:100;not null;column:teacher_surname" json:"teacher_surname"`
	TeacherPhone   *string `gorm:"size:30;column:teacher_phone" json:"teacher_phone,omitempty"`
	TeacherAddress *string `gorm:"type:text;column:teacher_address" json:"teacher_address,omitempty"`

	TeacherCreatedAt time.Time      `gorm:"autoCreateTime;column:teacher_created_at" json:"teacher_created_at"`
	TeacherUpdatedAt time.Time      `gorm:"autoUpdateTime;column:teacher_updated_at" json:"teacher_updated_at"`
	TeacherDeletedAt gorm.DeletedAt `gorm:"column:teacher_deleted_at;index" json:"-"`
}

func (TeacherModel) TableName() string { return "teachers" }
