// internals/features/users/auth/service/auth_service.go
package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	authModel "schoolku_backend/internals/features/users/auth/model"
	authDTO "schoolku_backend/internals/features/users/auth/dto"
	userModel "schoolku_backend/internals/features/users/user/model"
	helper "schoolku_backend/internals/helpers"
)

var validate = validator.New()

const (
	accessTTL  = 2 * time.Hour
	refreshTTL = 7 * 24 * time.Hour
)

/* ========================== REGISTER ========================== */
// POST /api/auth/register
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// email must be unique
	var count int64
	if err := db.Model(&userModel.UserModel{}).
		Where("user_email = ?", strings.ToLower(strings.TrimSpace(req.UserEmail))).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Email is already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	m := req.ToModel(string(hashed))
	if err := db.WithContext(c.Context()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helper.JsonCreated(c, "Register success", authDTO.NewUserResponse(m))
}

/* ========================== LOGIN ========================== */
// POST /api/auth/login
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user userModel.UserModel
	err := db.WithContext(c.Context()).
		First(&user, "user_email = ?", strings.ToLower(strings.TrimSpace(req.UserEmail))).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.UserPassword)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	access, refresh, err := issueTokenPair(db, c, &user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	setAuthCookies(c, access, refresh)

	return helper.JsonOK(c, "Login success", authDTO.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         authDTO.NewUserResponse(&user),
	})
}

/* ========================== LOGOUT ========================== */
// POST /api/auth/logout
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	raw := helper.GetRawAccessToken(c)
	if raw != "" {
		// blacklist until it would have expired anyway
		bl := authModel.TokenBlacklist{
			Token:     raw,
			ExpiredAt: time.Now().Add(accessTTL),
		}
		if err := db.WithContext(c.Context()).Create(&bl).Error; err != nil {
			log.Printf("[logout] blacklist insert failed: %v", err)
		}
	}

	if refresh := helper.GetRefreshTokenFromCookie(c); refresh != "" {
		if secret, err := getRefreshSecret(); err == nil {
			h := ComputeRefreshHash(refresh, secret)
			if err := db.WithContext(c.Context()).
				Where("token = ?", h).
				Delete(&authModel.RefreshTokenModel{}).Error; err != nil {
				log.Printf("[logout] refresh delete failed: %v", err)
			}
		}
	}

	clearAuthCookies(c)
	return helper.JsonOK(c, "Logout success", nil)
}

/* ========================== TOKEN PLUMBING ========================== */

func getJWTSecret() (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("JWT secret is not configured")
	}
	return configs.JWTSecret, nil
}

func getRefreshSecret() (string, error) {
	if configs.JWTRefreshSecret == "" {
		return "", errors.New("JWT refresh secret is not configured")
	}
	return configs.JWTRefreshSecret, nil
}

// ComputeRefreshHash: HMAC-SHA256 over the raw refresh JWT. Only
// the hash is persisted.
func ComputeRefreshHash(raw, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(raw))
	return hex.EncodeToString(mac.Sum(nil))
}

func buildAccessClaims(u *userModel.UserModel, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"id":        u.UserID.String(),
		"user_name": u.UserName,
		"role":      u.UserRole,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTL).Unix(),
	}
}

func buildRefreshClaims(userID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTL).Unix(),
	}
}

func issueTokenPair(db *gorm.DB, c *fiber.Ctx, u *userModel.UserModel) (access, refresh string, err error) {
	jwtSecret, err := getJWTSecret()
	if err != nil {
		return "", "", err
	}
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return "", "", err
	}

	now := time.Now().UTC()

	access, err = jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(u, now)).SignedString([]byte(jwtSecret))
	if err != nil {
		return "", "", errors.New("failed to sign access token")
	}
	refresh, err = jwt.NewWithClaims(jwt.SigningMethodHS256, buildRefreshClaims(u.UserID, now)).SignedString([]byte(refreshSecret))
	if err != nil {
		return "", "", errors.New("failed to sign refresh token")
	}

	row := &authModel.RefreshTokenModel{
		UserID:    u.UserID,
		Token:     ComputeRefreshHash(refresh, refreshSecret),
		ExpiresAt: now.Add(refreshTTL),
		UserAgent: strptr(c.Get("User-Agent")),
		IP:        strptr(c.IP()),
	}
	if err := db.WithContext(c.Context()).Create(row).Error; err != nil {
		return "", "", errors.New("failed to store refresh token")
	}
	return access, refresh, nil
}

func setAuthCookies(c *fiber.Ctx, access, refresh string) {
	secure := configs.GetEnv("COOKIE_SECURE", "true") == "true"
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    access,
		HTTPOnly: true,
		Secure:   secure,
		SameSite: "Lax",
		Expires:  time.Now().Add(accessTTL),
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refresh,
		HTTPOnly: true,
		Secure:   secure,
		SameSite: "Lax",
		Expires:  time.Now().Add(refreshTTL),
	})
	// double-submit CSRF token, readable by the frontend
	c.Cookie(&fiber.Cookie{
		Name:     "csrf_token",
		Value:    uuid.NewString(),
		HTTPOnly: false,
		Secure:   secure,
		SameSite: "Lax",
		Expires:  time.Now().Add(refreshTTL),
	})
}

func clearAuthCookies(c *fiber.Ctx) {
	for _, name := range []string{"access_token", "refresh_token", "csrf_token"} {
		c.Cookie(&fiber.Cookie{
			Name:    name,
			Value:   "",
			Expires: time.Now().Add(-time.Hour),
		})
	}
}

func strptr(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
