// internals/features/school/academics/model/grade_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GradeModel is a grade level (1st grade, 2nd grade, ...), not a mark.
type GradeModel struct {
	GradeID    uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:grade_id" json:"grade_id"`
	GradeLevel int       `gorm:"not null;unique;column:grade_level" json:"grade_level"`

	GradeCreatedAt time.Time      `gorm:"autoCreateTime;column:grade_created_at" json:"grade_created_at"`
	GradeUpdatedAt time.Time      `gorm:"autoUpdateTime;column:grade_updated_at" json:"grade_updated_at"`
	GradeDeletedAt gorm.DeletedAt `gorm:"column:grade_deleted_at;index" json:"-"`
}

func (GradeModel) TableName() string { return "grades" }
