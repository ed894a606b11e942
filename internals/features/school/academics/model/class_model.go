package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassModel struct {
	ClassID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:class_id" json:"class_id"`
	ClassName     string    `gorm:"size:50;not null;unique;column:class_name" json:"class_name"`
	ClassCapacity int       `gorm:"not null;column:class_capacity" json:"class_capacity"`

	ClassGradeID uuid.UUID `gorm:"type:uuid;not null;column:class_grade_id" json:"class_grade_id"`

	// supervising teacher; nullable until one is assigned
	ClassSupervisorID *uuid.UUID `gorm:"type:uuid;column:class_supervisor_id" json:"class_supervisor_id,omitempty"`

	ClassCreatedAt time.Time      `gorm:"autoCreateTime;column:class_created_at" json:"class_created_at"`
	ClassUpdatedAt time.Time      `gorm:"autoUpdateTime;column:class_updated_at" json:"class_updated_at"`
	ClassDeletedAt gorm.DeletedAt `gorm:"column:class_deleted_at;index" json:"-"`

	Grade *GradeModel `gorm:"foreignKey:ClassGradeID;references:GradeID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT" json:"-"`
}

func (ClassModel) TableName() string { return "classes" }
