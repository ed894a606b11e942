package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubjectModel struct {
	SubjectID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:subject_id" json:"subject_id"`
	SubjectName string    `gorm:"size:100;not null;unique;column:subject_name" json:"subject_name"`

	SubjectCreatedAt time.Time      `gorm:"autoCreateTime;column:subject_created_at" json:"subject_created_at"`
	SubjectUpdatedAt time.Time      `gorm:"autoUpdateTime;column:subject_updated_at" json:"subject_updated_at"`
	SubjectDeletedAt gorm.DeletedAt `gorm:"column:subject_deleted_at;index" json:"-"`
}

func (SubjectModel) TableName() string { return "subjects" }
