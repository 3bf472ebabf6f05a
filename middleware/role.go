package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	RoleAdmin   = "ADMIN"
	RoleStudent = "STUDENT"
)

// RoleHeader reads the client's X-Role toggle into the request context.
// It is a passthrough: the role picks which views a client renders, nothing
// is enforced server-side.
func RoleHeader(c *fiber.Ctx) error {
	role := strings.ToUpper(c.Get("X-Role"))
	if role != RoleAdmin {
		role = RoleStudent
	}
	c.Locals("role", role)
	return c.Next()
}
