package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	academicsModel "schoolku_backend/internals/features/school/academics/model"
)

type StudentModel struct {
	StudentID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`
	StudentUserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:student_user_id" json:"student_user_id"`

	StudentName    string `gorm:"size:100;not null;column:student_name" json:"student_name"`
	StudentSurname string `gorm:"size:100;not null;column:student_surname" json:"student_surname"`

	StudentClassID  uuid.UUID `gorm:"type:uuid;not null;index;column:student_class_id" json:"student_class_id"`
	StudentGradeID  uuid.UUID `gorm:"type:uuid;not null;column:student_grade_id" json:"student_grade_id"`
	StudentParentID uuid.UUID `gorm:"type:uuid;not null;index;column:student_parent_id" json:"student_parent_id"`

	StudentCreatedAt time.Time      `gorm:"autoCreateTime;column:student_created_at" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"autoUpdateTime;column:student_updated_at" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"-"`

	Class  *academicsModel.ClassModel `gorm:"foreignKey:StudentClassID;references:ClassID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT" json:"-"`
	Grade  *academicsModel.GradeModel `gorm:"foreignKey:StudentGradeID;references:GradeID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT" json:"-"`
	Parent *ParentModel               `gorm:"foreignKey:StudentParentID;references:ParentID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT" json:"-"`
}

func (StudentModel) TableName() string { return "students" }
