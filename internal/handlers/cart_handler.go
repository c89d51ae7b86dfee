package handlers

import (
	"pasar/internal/middleware"
	"pasar/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the current user's cart.
type CartHandler struct {
	service  *services.CartService
	validate *validator.Validate
}

func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the cart routes. Every route needs a registered user.
func (h *CartHandler) RegisterRoutes(router fiber.Router, g Guards) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", g.user(h.HandleGetCart)...)
	cartRoutes.Post("/", g.user(h.HandleAddItem)...)
	cartRoutes.Delete("/", g.user(h.HandleClearCart)...)
	cartRoutes.Put("/:id", g.user(h.HandleUpdateItem)...)
	cartRoutes.Delete("/:id", g.user(h.HandleRemoveItem)...)
}

// AddToCartRequest is the body of POST /cart. Quantity defaults to 1.
type AddToCartRequest struct {
	ProductID uint `json:"product_id" validate:"required"`
	Quantity  *int `json:"quantity" validate:"omitempty,gte=1"`
}

type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	cart, err := h.service.GetCart(middleware.CurrentUser(c).ID)
	if err != nil {
		return respondError(c, err, "Failed to fetch cart")
	}
	return c.JSON(cart)
}

func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var req AddToCartRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	item, err := h.service.AddItem(middleware.CurrentUser(c).ID, req.ProductID, quantity)
	if err != nil {
		return respondError(c, err, "Failed to add item to cart")
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func (h *CartHandler) HandleUpdateItem(c *fiber.Ctx) error {
	itemID, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err, "Invalid cart item ID")
	}
	var req UpdateCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	item, err := h.service.SetQuantity(middleware.CurrentUser(c).ID, itemID, *req.Quantity)
	if err != nil {
		return respondError(c, err, "Failed to update cart item")
	}
	if item == nil {
		return c.JSON(fiber.Map{"message": "Item removed from cart"})
	}
	return c.JSON(item)
}

func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	itemID, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err, "Invalid cart item ID")
	}
	if err := h.service.RemoveItem(middleware.CurrentUser(c).ID, itemID); err != nil {
		return respondError(c, err, "Failed to remove cart item")
	}
	return c.JSON(fiber.Map{"message": "Item removed from cart"})
}

func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	if err := h.service.Clear(middleware.CurrentUser(c).ID); err != nil {
		return respondError(c, err, "Failed to clear cart")
	}
	return c.JSON(fiber.Map{"message": "Cart cleared"})
}
