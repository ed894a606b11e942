package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Raw JWT stored on Locals by the auth middleware
const LocRawToken = "raw_token"

// GetRawAccessToken returns the access token from:
// 1) cookie "access_token"
// 2) Locals("raw_token") set by the middleware
// 3) Authorization header "Bearer <token>"
func GetRawAccessToken(c *fiber.Ctx) string {
	if v := strings.TrimSpace(c.Cookies("access_token")); v != "" {
		return v
	}
	if v, ok := c.Locals(LocRawToken).(string); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	const p = "Bearer "
	auth := c.Get("Authorization")
	if len(auth) > len(p) && strings.HasPrefix(auth, p) {
		return strings.TrimSpace(auth[len(p):])
	}
	return ""
}

func GetRefreshTokenFromCookie(c *fiber.Ctx) string {
	return strings.TrimSpace(c.Cookies("refresh_token"))
}

func SetRawAccessToken(c *fiber.Ctx, raw string) {
	if strings.TrimSpace(raw) != "" {
		c.Locals(LocRawToken, strings.TrimSpace(raw))
	}
}

// CheckCSRFCookieHeader: double-submit token check for cookie-based
// endpoints. Header X-CSRF-Token must equal cookie csrf_token.
func CheckCSRFCookieHeader(c *fiber.Ctx) error {
	csrfCookie := strings.TrimSpace(c.Cookies("csrf_token"))
	if csrfCookie == "" {
		return fiber.NewError(fiber.StatusForbidden, "CSRF token missing (cookie)")
	}
	csrfHeader := strings.TrimSpace(c.Get("X-CSRF-Token"))
	if csrfHeader == "" {
		return fiber.NewError(fiber.StatusForbidden, "CSRF token missing (header)")
	}
	if csrfCookie != csrfHeader {
		return fiber.NewError(fiber.StatusForbidden, "CSRF token mismatch")
	}
	return nil
}
