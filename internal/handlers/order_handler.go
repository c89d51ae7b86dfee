package handlers

import (
	"pasar/internal/middleware"
	"pasar/internal/models"
	"pasar/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the order routes.
func (h *OrderHandler) RegisterRoutes(router fiber.Router, g Guards) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", g.user(h.HandleListOrders)...)
	orderRoutes.Get("/:id", g.user(h.HandleGetOrder)...)
	orderRoutes.Post("/", g.user(h.HandleCreateOrder)...)
	orderRoutes.Put("/:id/status", g.user(h.HandleUpdateOrderStatus)...)
}

// UpdateOrderStatusRequest is the body of PUT /orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" validate:"required"`
}

// HandleListOrders lists the caller's orders, or every order for admins.
func (h *OrderHandler) HandleListOrders(c *fiber.Ctx) error {
	orders, err := h.service.ListOrders(middleware.CurrentUser(c))
	if err != nil {
		return respondError(c, err, "Failed to fetch orders")
	}
	return c.JSON(orders)
}

func (h *OrderHandler) HandleGetOrder(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err, "Invalid order ID")
	}
	detail, err := h.service.GetOrder(middleware.CurrentUser(c), id)
	if err != nil {
		return respondError(c, err, "Order not found")
	}
	return c.JSON(detail)
}

func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var input services.PlaceOrderInput
	if err := c.BodyParser(&input); err != nil {
		return invalidBody(c, err)
	}
	if err := h.validate.Struct(input); err != nil {
		return validationFailed(c, err)
	}

	order, err := h.service.PlaceOrder(middleware.CurrentUser(c).ID, input)
	if err != nil {
		return respondError(c, err, "Failed to create order")
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

func (h *OrderHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err, "Invalid order ID")
	}
	var req UpdateOrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}
	if !req.Status.Valid() {
		return fieldInvalid(c, "status", "Unknown order status '"+string(req.Status)+"'")
	}

	order, err := h.service.UpdateOrderStatus(middleware.CurrentUser(c), id, req.Status)
	if err != nil {
		return respondError(c, err, "Failed to update order status")
	}
	return c.JSON(order)
}
