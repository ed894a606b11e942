package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"schoolku_backend/internals/helpers/scope"
)

// ScopeRequestContext builds the access-scope request context from the
// locals the auth middleware stored. A missing/invalid user id stays
// uuid.Nil; the composers treat that as default-deny.
func ScopeRequestContext(c *fiber.Ctx) scope.RequestContext {
	rc := scope.RequestContext{Role: GetRoleFromToken(c)}
	if id, err := GetUserIDFromToken(c); err == nil {
		rc.UserID = id
	}
	return rc
}

// ScopeParams collects the allow-listed query params for a composer.
// Empty values are dropped so composers never see blank filters.
func ScopeParams(c *fiber.Ctx, keys ...string) map[string]string {
	params := make(map[string]string, len(keys))
	for _, k := range keys {
		if v := strings.TrimSpace(c.Query(k)); v != "" {
			params[k] = v
		}
	}
	return params
}
