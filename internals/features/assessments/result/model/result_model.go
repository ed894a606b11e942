package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	assignmentModel "schoolku_backend/internals/features/assessments/assignment/model"
	examModel "schoolku_backend/internals/features/assessments/exam/model"
	peopleModel "schoolku_backend/internals/features/school/people/model"
)

// A result belongs to exactly one assessment: exam or assignment,
// never both, never neither. Enforced by the check constraint and
// re-validated in the controller.
type ResultModel struct {
	ResultID    uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:result_id" json:"result_id"`
	ResultScore float64   `gorm:"not null;column:result_score" json:"result_score"`

	ResultStudentID    uuid.UUID  `gorm:"type:uuid;not null;index;column:result_student_id" json:"result_student_id"`
	ResultExamID       *uuid.UUID `gorm:"type:uuid;index;column:result_exam_id;check:chk_result_one_assessment,(result_exam_id IS NULL) <> (result_assignment_id IS NULL)" json:"result_exam_id,omitempty"`
	ResultAssignmentID *uuid.UUID `gorm:"type:uuid;index;column:result_assignment_id" json:"result_assignment_id,omitempty"`

	ResultCreatedAt time.Time      `gorm:"autoCreateTime;column:result_created_at" json:"result_created_at"`
	ResultUpdatedAt time.Time      `gorm:"autoUpdateTime;column:result_updated_at" json:"result_updated_at"`
	ResultDeletedAt gorm.DeletedAt `gorm:"column:result_deleted_at;index" json:"-"`

	Student    *peopleModel.StudentModel        `gorm:"foreignKey:ResultStudentID;references:StudentID;constraint:OnUpdate:RESTRICT,OnDelete:CASCADE" json:"-"`
	Exam       *examModel.ExamModel             `gorm:"foreignKey:ResultExamID;references:ExamID;constraint:OnUpdate:RESTRICT,OnDelete:CASCADE" json:"-"`
	Assignment *assignmentModel.AssignmentModel `gorm:"foreignKey:ResultAssignmentID;references:AssignmentID;constraint:OnUpdate:RESTRICT,OnDelete:CASCADE" json:"-"`
}

func (ResultModel) TableName() string { return "results" }
