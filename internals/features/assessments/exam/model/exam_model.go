package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	academicsModel "schoolku_backend/internals/features/school/academics/model"
)

type ExamModel struct {
	ExamID    uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:exam_id" json:"exam_id"`
	ExamTitle string    `gorm:"size:150;not null;column:exam_title" json:"exam_title"`

	ExamStartTime time.Time `gorm:"type:timestamptz;not null;column:exam_start_time" json:"exam_start_time"`
	ExamEndTime   time.Time `gorm:"type:timestamptz;not null;column:exam_end_time" json:"exam_end_time"`

	ExamLessonID uuid.UUID `gorm:"type:uuid;not null;index;column:exam_lesson_id" json:"exam_lesson_id"`

	ExamCreatedAt time.Time      `gorm:"autoCreateTime;column:exam_created_at" json:"exam_created_at"`
	ExamUpdatedAt time.Time      `gorm:"autoUpdateTime;column:exam_updated_at" json:"exam_updated_at"`
	ExamDeletedAt gorm.DeletedAt `gorm:"column:exam_deleted_at;index" json:"-"`

	Lesson *academicsModel.LessonModel `gorm:"foreignKey:ExamLessonID;references:LessonID;constraint:OnUpdate:RESTRICT,OnDelete:CASCADE" json:"-"`
}

func (ExamModel) TableName() string { return "exams" }
