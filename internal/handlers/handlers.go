package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"regexp"
	"strings"

	"pasar/internal/middleware"
	"pasar/internal/models"
	"pasar/internal/repositories"
	"pasar/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Guards are the middleware chains that protect routes.
type Guards struct {
	Auth fiber.Handler // bearer token -> external identity
	User fiber.Handler // external identity -> registered user
}

// authenticated chains handler behind token validation only.
func (g Guards) authenticated(handler fiber.Handler) []fiber.Handler {
	return []fiber.Handler{g.Auth, handler}
}

// user chains handler behind a resolved user and, when roles are given, a role check.
func (g Guards) user(handler fiber.Handler, roles ...models.Role) []fiber.Handler {
	chain := []fiber.Handler{g.Auth, g.User}
	if len(roles) > 0 {
		chain = append(chain, middleware.RequireRole(roles...))
	}
	return append(chain, handler)
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// newValidator returns a validator that reports json field names and knows the "slug" rule.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// statusFor maps store and service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, repositories.ErrNotFound), errors.Is(err, repositories.ErrUserNotRegistered):
		return fiber.StatusNotFound
	case errors.Is(err, repositories.ErrInvalidArgument):
		return fiber.StatusBadRequest
	case errors.Is(err, repositories.ErrConflict),
		errors.Is(err, repositories.ErrInvalidTransition),
		errors.Is(err, repositories.ErrInsufficientStock):
		return fiber.StatusConflict
	case errors.Is(err, services.ErrForbidden):
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}

func respondError(c *fiber.Ctx, err error, message string) error {
	status := statusFor(err)
	if status == fiber.StatusInternalServerError {
		slog.Error(message, "path", c.Path(), "error", err)
	} else {
		slog.Debug(message, "path", c.Path(), "status", status, "error", err)
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   err.Error(),
	})
}

func invalidBody(c *fiber.Ctx, err error) error {
	slog.Debug("error parsing request body", "path", c.Path(), "error", err)
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Invalid request body",
		"error":   err.Error(),
	})
}

func validationFailed(c *fiber.Ctx, err error) error {
	errorMessages := make(map[string]string)
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
	} else {
		errorMessages["body"] = err.Error()
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}

func fieldInvalid(c *fiber.Ctx, field, reason string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  map[string]string{field: reason},
	})
}

// paramID parses a positive integer path parameter.
func paramID(c *fiber.Ctx, name string) (uint, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", repositories.ErrInvalidArgument, name)
	}
	return uint(id), nil
}
