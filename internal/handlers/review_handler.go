package handlers

import (
	"pasar/internal/middleware"
	"pasar/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ReviewHandler handles HTTP requests for product reviews.
type ReviewHandler struct {
	service  *services.ReviewService
	validate *validator.Validate
}

func NewReviewHandler(service *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		service:  service,
		validate: newValidator(),
	}
}

func (h *ReviewHandler) RegisterRoutes(router fiber.Router, g Guards) {
	router.Get("/products/:id/reviews", h.HandleListReviews)
	router.Post("/products/:id/reviews", g.user(h.HandleCreateReview)...)
}

type CreateReviewRequest struct {
	Rating  int     `json:"rating" validate:"required,min=1,max=5"`
	Comment *string `json:"comment" validate:"omitempty,max=2000"`
}

func (h *ReviewHandler) HandleListReviews(c *fiber.Ctx) error {
	productID, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err, "Invalid product ID")
	}
	reviews, err := h.service.ListReviews(productID)
	if err != nil {
		return respondError(c, err, "Failed to fetch reviews")
	}
	return c.JSON(reviews)
}

func (h *ReviewHandler) HandleCreateReview(c *fiber.Ctx) error {
	productID, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err, "Invalid product ID")
	}
	var req CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	review, err := h.service.AddReview(middleware.CurrentUser(c).ID, productID, req.Rating, req.Comment)
	if err != nil {
		return respondError(c, err, "Failed to create review")
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}
