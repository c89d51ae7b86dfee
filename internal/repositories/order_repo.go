package repositories

import (
	"pasar/internal/models"
)

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	// ListOrders returns the orders of userID, or every order when userID is nil.
	ListOrders(userID *uint) ([]models.Order, error)
	GetOrder(id uint) (*models.Order, error)
	// CreateOrder writes order and items as one unit. Nothing is written if any
	// item fails validation.
	CreateOrder(order *models.Order, items []models.OrderItem) error
	UpdateOrderStatus(id uint, status models.OrderStatus) (*models.Order, error)
	ListOrderItems(orderID uint) ([]models.OrderLine, error)
}
