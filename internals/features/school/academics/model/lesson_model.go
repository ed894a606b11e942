package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LessonModel struct {
	LessonID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:lesson_id" json:"lesson_id"`
	LessonName string    `gorm:"size:100;not null;column:lesson_name" json:"lesson_name"`

	// MONDAY..FRIDAY
	LessonDay       string    `gorm:"type:varchar(10);not null;column:lesson_day" json:"lesson_day"`
	LessonStartTime time.Time `gorm:"type:timestamptz;not null;column:lesson_start_time" json:"lesson_start_time"`
	LessonEndTime   time.Time `gorm:"type:timestamptz;not null;column:lesson_end_time" json:"lesson_end_time"`

	LessonSubjectID uuid.UUID `gorm:"type:uuid;not null;column:lesson_subject_id" json:"lesson_subject_id"`
	LessonClassID   uuid.UUID `gorm:"type:uuid;not null;column:lesson_class_id" json:"lesson_class_id"`
	LessonTeacherID uuid.UUID `gorm:"type:uuid;not null;column:lesson_teacher_id" json:"lesson_teacher_id"`

	LessonCreatedAt time.Time      `gorm:"autoCreateTime;column:lesson_created_at" json:"lesson_created_at"`
	LessonUpdatedAt time.Time      `gorm:"autoUpdateTime;column:lesson_updated_at" json:"lesson_updated_at"`
	LessonDeletedAt gorm.DeletedAt `gorm:"column:lesson_deleted_at;index" json:"-"`

	Subject *SubjectModel `gorm:"foreignKey:LessonSubjectID;references:SubjectID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT" json:"-"`
	Class   *ClassModel   `gorm:"foreignKey:LessonClassID;references:ClassID;constraint:OnUpdate:RESTRICT,OnDelete:CASCADE" json:"-"`
}

func (LessonModel) TableName() string { return "lessons" }
