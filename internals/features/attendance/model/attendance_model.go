package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	academicsModel "schoolku_backend/internals/features/school/academics/model"
	peopleModel "schoolku_backend/internals/features/school/people/model"
)

type AttendanceModel struct {
	AttendanceID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_id" json:"attendance_id"`

	AttendanceDate    time.Time `gorm:"type:date;not null;column:attendance_date" json:"attendance_date"`
	AttendancePresent bool      `gorm:"not null;column:attendance_present" json:"attendance_present"`

	AttendanceStudentID uuid.UUID `gorm:"type:uuid;not null;index;column:attendance_student_id" json:"attendance_student_id"`
	AttendanceLessonID  uuid.UUID `gorm:"type:uuid;not null;index;column:attendance_lesson_id" json:"attendance_lesson_id"`

	AttendanceCreatedAt time.Time      `gorm:"autoCreateTime;column:attendance_created_at" json:"attendance_created_at"`
	AttendanceUpdatedAt time.Time      `gorm:"autoUpdateTime;column:attendance_updated_at" json:"attendance_updated_at"`
	AttendanceDeletedAt gorm.DeletedAt `gorm:"column:attendance_deleted_at;index" json:"-"`

	Student *peopleModel.StudentModel   `gorm:"foreignKey:AttendanceStudentID;references:StudentID;constraint:OnUpdate:RESTRICT,OnDelete:CASCADE" json:"-"`
	Lesson  *academicsModel.LessonModel `gorm:"foreignKey:AttendanceLessonID;references:LessonID;constraint:OnUpdate:RESTRICT,OnDelete:CASCADE" json:"-"`
}

func (AttendanceModel) TableName() string { return "attendances" }
