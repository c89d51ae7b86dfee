package handlers

import (
	"pasar/internal/models"
	"pasar/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	service  *services.CatalogService
	validate *validator.Validate
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CatalogService) *CategoryHandler {
	return &CategoryHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the category routes.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router, g Guards) {
	categoryRoutes := router.Group("/categories")
	categoryRoutes.Get("/", h.HandleListCategories)
	categoryRoutes.Post("/", g.user(h.HandleCreateCategory, models.RoleAdmin)...)
}

// CreateCategoryRequest is the body of POST /categories.
type CreateCategoryRequest struct {
	Name string  `json:"name" validate:"required,max=100"`
	Slug string  `json:"slug" validate:"required,max=100,slug"`
	Icon *string `json:"icon" validate:"omitempty,max=64"`
}

func (h *CategoryHandler) HandleListCategories(c *fiber.Ctx) error {
	categories, err := h.service.ListCategories()
	if err != nil {
		return respondError(c, err, "Failed to fetch categories")
	}
	return c.JSON(categories)
}

func (h *CategoryHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var req CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	category := &models.Category{Name: req.Name, Slug: req.Slug, Icon: req.Icon}
	if err := h.service.CreateCategory(category); err != nil {
		return respondError(c, err, "Failed to create category")
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}
