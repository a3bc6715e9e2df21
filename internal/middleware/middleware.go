package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
)

// Permissions checked against the X-User-Permissions header set by the
// gateway after authentication.
const (
	PermRequestRead   = "aris.request.read"
	PermRequestWrite  = "aris.request.write"
	PermEmployeeRead  = "aris.employee.read"
	PermEmployeeWrite = "aris.employee.write"
	PermAnalysisRun   = "aris.analysis.run"
	PermEmailSend     = "aris.email.send"
)

// RequirePermission guards a route behind a gateway-granted permission.
// Requests missing the user header entirely are treated as unauthenticated.
func RequirePermission(permission string) fiber.Handler {
	return func(c fiber.Ctx) error {
		userID := c.Get("X-User-ID")
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authentication required",
			})
		}

		if !hasPermission(c.Get("X-User-Permissions"), permission) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Insufficient permissions",
			})
		}

		return c.Next()
	}
}

func hasPermission(header, required string) bool {
	for _, p := range strings.Split(header, ",") {
		p = strings.TrimSpace(p)
		if p == required || p == "admin" {
			return true
		}
	}
	return false
}
