// internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "schoolku_backend/internals/features/users/auth/model"
	authDTO "schoolku_backend/internals/features/users/auth/dto"
	userModel "schoolku_backend/internals/features/users/user/model"
	helper "schoolku_backend/internals/helpers"
)

/* ========================== REFRESH TOKEN ========================== */
// POST /api/auth/refresh-token
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	// CSRF required on cookie-based endpoints
	if err := helper.CheckCSRFCookieHeader(c); err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}
	refreshCookie := helper.GetRefreshTokenFromCookie(c)
	if refreshCookie == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Missing refresh token")
	}

	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// Parse & validate the refresh JWT
	tok, err := jwt.Parse(refreshCookie, func(t *jwt.Token) (any, error) {
		return []byte(refreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	// The hash must be known to us
	h := ComputeRefreshHash(refreshCookie, refreshSecret)
	var row authModel.RefreshTokenModel
	err = db.WithContext(c.Context()).
		First(&row, "token = ? AND revoked_at IS NULL", h).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token unknown")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if time.Now().After(row.ExpiresAt) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token expired")
	}

	var user userModel.UserModel
	if err := db.WithContext(c.Context()).
		First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "User not found")
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated")
	}

	// ROTATE: drop the old hash before issuing a new pair
	if err := db.WithContext(c.Context()).
		Where("token = ?", h).
		Delete(&authModel.RefreshTokenModel{}).Error; err != nil {
		log.Printf("[refresh] delete old hash failed: %v", err)
	}

	access, refresh, err := issueTokenPair(db, c, &user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	setAuthCookies(c, access, refresh)

	return helper.JsonOK(c, "Token refreshed", authDTO.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         authDTO.NewUserResponse(&user),
	})
}
