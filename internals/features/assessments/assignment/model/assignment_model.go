package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	academicsModel "schoolku_backend/internals/features/school/academics/model"
)

type AssignmentModel struct {
	AssignmentID    uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:assignment_id" json:"assignment_id"`
	AssignmentTitle string    `gorm:"size:150;not null;column:assignment_title" json:"assignment_title"`

	AssignmentStartDate time.Time `gorm:"type:timestamptz;not null;column:assignment_start_date" json:"assignment_start_date"`
	AssignmentDueDate   time.Time `gorm:"type:timestamptz;not null;column:assignment_due_date" json:"assignment_due_date"`

	// NULL means the default 100-point scale applies
	AssignmentTotalPoints *float64 `gorm:"column:assignment_total_points" json:"assignment_total_points,omitempty"`

	AssignmentLessonID uuid.UUID `gorm:"type:uuid;not null;index;column:assignment_lesson_id" json:"assignment_lesson_id"`

	AssignmentCreatedAt time.Time      `gorm:"autoCreateTime;column:assignment_created_at" json:"assignment_created_at"`
	AssignmentUpdatedAt time.Time      `gorm:"autoUpdateTime;column:assignment_updated_at" json:"assignment_updated_at"`
	AssignmentDeletedAt gorm.DeletedAt `gorm:"column:assignment_deleted_at;index" json:"-"`

	Lesson *academicsModel.LessonModel `gorm:"foreignKey:AssignmentLessonID;references:LessonID;constraint:OnUpdate:RESTRICT,OnDelete:CASCADE" json:"-"`
}

func (AssignmentModel) TableName() string { return "assignments" }
