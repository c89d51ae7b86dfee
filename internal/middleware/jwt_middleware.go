package middleware

import (
	"errors"
	"log/slog"
	"slices"
	"strings"

	"pasar/internal/models"
	"pasar/internal/repositories"
	"pasar/internal/services"

	"github.com/gofiber/fiber/v2"
)

// Keys under which the middleware stores request state in fiber.Ctx locals.
const (
	LocalExternalID = "external_id"
	LocalUser       = "user"
)

// AuthRequired is a Fiber middleware that checks for a valid bearer token and
// stores the external identity it carries.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authentication required",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header format must be 'Bearer <token>'",
			})
		}

		externalID, err := authService.ValidateToken(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
				"error":   err.Error(),
			})
		}

		c.Locals(LocalExternalID, externalID)
		return c.Next()
	}
}

// ResolveUser loads the user registered for the authenticated identity. It must
// run after AuthRequired.
func ResolveUser(userService *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := userService.Resolve(ExternalID(c))
		if err != nil {
			if errors.Is(err, repositories.ErrUserNotRegistered) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"message": "User not found",
				})
			}
			slog.Error("failed to resolve user", "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not resolve user",
			})
		}
		c.Locals(LocalUser, user)
		return c.Next()
	}
}

// RequireRole rejects users whose role is not listed. It must run after ResolveUser.
func RequireRole(roles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil || !slices.Contains(roles, user.Role) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Insufficient permissions",
			})
		}
		return c.Next()
	}
}

// ExternalID returns the identity stored by AuthRequired.
func ExternalID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalExternalID).(string)
	return id
}

// CurrentUser returns the user stored by ResolveUser, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(LocalUser).(*models.User)
	return user
}
