package handlers

import (
	"pasar/internal/middleware"
	"pasar/internal/models"
	"pasar/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserHandler handles registration, profile and user administration.
type UserHandler struct {
	service  *services.UserService
	validate *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the user routes. Registration only needs a valid
// token since the caller has no local record yet.
func (h *UserHandler) RegisterRoutes(router fiber.Router, g Guards) {
	router.Post("/users", g.authenticated(h.HandleRegister)...)
	router.Get("/users/profile", g.user(h.HandleProfile)...)

	adminRoutes := router.Group("/admin")
	adminRoutes.Get("/users", g.user(h.HandleListUsers, models.RoleAdmin)...)
	adminRoutes.Put("/users/:id/role", g.user(h.HandleUpdateRole, models.RoleAdmin)...)
}

// RegisterRequest is the body of POST /users.
type RegisterRequest struct {
	Email string      `json:"email" validate:"required,email"`
	Name  string      `json:"name" validate:"required,max=100"`
	Role  models.Role `json:"role" validate:"omitempty,oneof=customer seller"`
}

type UpdateRoleRequest struct {
	Role models.Role `json:"role" validate:"required,oneof=customer seller admin"`
}

func (h *UserHandler) HandleRegister(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	user, err := h.service.Register(middleware.ExternalID(c), req.Email, req.Name, req.Role)
	if err != nil {
		return respondError(c, err, "Failed to register user")
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

func (h *UserHandler) HandleProfile(c *fiber.Ctx) error {
	return c.JSON(middleware.CurrentUser(c))
}

func (h *UserHandler) HandleListUsers(c *fiber.Ctx) error {
	users, err := h.service.ListUsers()
	if err != nil {
		return respondError(c, err, "Failed to fetch users")
	}
	return c.JSON(users)
}

func (h *UserHandler) HandleUpdateRole(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err, "Invalid user ID")
	}
	var req UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	user, err := h.service.UpdateRole(id, req.Role)
	if err != nil {
		return respondError(c, err, "Failed to update user role")
	}
	return c.JSON(user)
}
