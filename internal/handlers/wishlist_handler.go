package handlers

import (
	"pasar/internal/middleware"
	"pasar/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// WishlistHandler handles HTTP requests for the current user's wishlist.
type WishlistHandler struct {
	service  *services.WishlistService
	validate *validator.Validate
}

func NewWishlistHandler(service *services.WishlistService) *WishlistHandler {
	return &WishlistHandler{
		service:  service,
		validate: newValidator(),
	}
}

func (h *WishlistHandler) RegisterRoutes(router fiber.Router, g Guards) {
	wishlistRoutes := router.Group("/wishlist")
	wishlistRoutes.Get("/", g.user(h.HandleListWishlist)...)
	wishlistRoutes.Post("/", g.user(h.HandleAddToWishlist)...)
	wishlistRoutes.Delete("/:productId", g.user(h.HandleRemoveFromWishlist)...)
}

type AddToWishlistRequest struct {
	ProductID uint `json:"product_id" validate:"required"`
}

func (h *WishlistHandler) HandleListWishlist(c *fiber.Ctx) error {
	lines, err := h.service.List(middleware.CurrentUser(c).ID)
	if err != nil {
		return respondError(c, err, "Failed to fetch wishlist")
	}
	return c.JSON(lines)
}

func (h *WishlistHandler) HandleAddToWishlist(c *fiber.Ctx) error {
	var req AddToWishlistRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	entry, err := h.service.Add(middleware.CurrentUser(c).ID, req.ProductID)
	if err != nil {
		return respondError(c, err, "Failed to add to wishlist")
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (h *WishlistHandler) HandleRemoveFromWishlist(c *fiber.Ctx) error {
	productID, err := paramID(c, "productId")
	if err != nil {
		return respondError(c, err, "Invalid product ID")
	}
	if err := h.service.Remove(middleware.CurrentUser(c).ID, productID); err != nil {
		return respondError(c, err, "Failed to remove from wishlist")
	}
	return c.JSON(fiber.Map{"message": "Removed from wishlist"})
}
