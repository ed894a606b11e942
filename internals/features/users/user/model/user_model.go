// internals/features/users/user/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_id" json:"user_id"`
	UserName     string    `gorm:"size:50;not null;column:user_name" json:"user_name"`
	UserEmail    string    `gorm:"size:255;unique;not null;column:user_email" json:"user_email"`
	UserPassword string    `gorm:"not null;column:user_password" json:"-"`

	// one of: admin | teacher | student | parent
	UserRole string `gorm:"type:varchar(20);not null;default:'student';column:user_role" json:"user_role"`

	UserIsActive bool `gorm:"not null;default:true;column:user_is_active" json:"user_is_active"`

	UserCreatedAt time.Time      `gorm:"autoCreateTime;column:user_created_at" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"autoUpdateTime;column:user_updated_at" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"-"`
}

func (UserModel) TableName() string { return "users" }
