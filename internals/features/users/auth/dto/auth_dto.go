package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "schoolku_backend/internals/features/users/user/model"
)

/* ===================== REQUESTS ===================== */

type RegisterRequest struct {
	UserName     string `json:"user_name" validate:"required,min=3,max=50"`
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required,min=8"`
	UserRole     string `json:"user_role" validate:"required,oneof=admin teacher student parent"`
}

func (r RegisterRequest) ToModel(hashedPassword string) *model.UserModel {
	return &model.UserModel{
		UserName:     strings.TrimSpace(r.UserName),
		UserEmail:    strings.ToLower(strings.TrimSpace(r.UserEmail)),
		UserPassword: hashedPassword,
		UserRole:     strings.ToLower(strings.TrimSpace(r.UserRole)),
		UserIsActive: true,
	}
}

type LoginRequest struct {
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required"`
}

/* ===================== RESPONSES ===================== */

type UserResponse struct {
	UserID       uuid.UUID `json:"user_id"`
	UserName     string    `json:"user_name"`
	UserEmail    string    `json:"user_email"`
	UserRole     string    `json:"user_role"`
	UserIsActive bool      `json:"user_is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewUserResponse(m *model.UserModel) *UserResponse {
	if m == nil {
		return nil
	}
	return &UserResponse{
		UserID:       m.UserID,
		UserName:     m.UserName,
		UserEmail:    m.UserEmail,
		UserRole:     m.UserRole,
		UserIsActive: m.UserIsActive,
		CreatedAt:    m.UserCreatedAt,
	}
}

type LoginResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token,omitempty"`
	User         *UserResponse `json:"user"`
}
