package services

import (
	"fmt"
	"log/slog"
	"time"

	"pasar/internal/models"
	"pasar/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EventPublisher delivers order events to interested consumers.
type EventPublisher interface {
	PublishOrderEvent(event models.OrderEvent) error
}

// OrderStore is what OrderService needs from the store.
type OrderStore interface {
	repositories.OrderRepository
	GetProduct(id uint) (*models.Product, error)
	ClearCart(userID uint) error
}

// LineItem is one requested line of a new order. A nil Price takes the
// product's current price as the snapshot.
type LineItem struct {
	ProductID uint             `json:"product_id" validate:"required"`
	Quantity  int              `json:"quantity" validate:"required,gte=1"`
	Price     *decimal.Decimal `json:"price"`
}

// PlaceOrderInput is the checkout request of a user.
type PlaceOrderInput struct {
	Items           []LineItem              `json:"items" validate:"required,min=1,dive"`
	ShippingAddress *models.ShippingAddress `json:"shipping_address" validate:"omitempty"`
	Total           decimal.Decimal         `json:"total"`
}

// OrderService handles business logic related to orders.
type OrderService struct {
	repo      OrderStore
	publisher EventPublisher
}

// NewOrderService creates a new OrderService. publisher may be nil.
func NewOrderService(repo OrderStore, publisher EventPublisher) *OrderService {
	return &OrderService{
		repo:      repo,
		publisher: publisher,
	}
}

// PlaceOrder creates an order with its items and then empties the user's cart.
// The order stands even if the cart can't be cleared.
func (s *OrderService) PlaceOrder(userID uint, input PlaceOrderInput) (*models.Order, error) {
	items := make([]models.OrderItem, 0, len(input.Items))
	computed := decimal.Zero
	for _, line := range input.Items {
		item := models.OrderItem{ProductID: line.ProductID, Quantity: line.Quantity}
		if line.Price != nil {
			item.Price = *line.Price
		} else {
			product, err := s.repo.GetProduct(line.ProductID)
			if err != nil {
				return nil, err
			}
			item.Price = product.Price
		}
		computed = computed.Add(item.Subtotal())
		items = append(items, item)
	}

	// The submitted total is what gets stored; a mismatch is only reported.
	if !computed.Equal(input.Total) {
		slog.Warn("order total differs from sum of items",
			"user_id", userID, "submitted", input.Total.String(), "computed", computed.String())
	}

	order := &models.Order{
		UserID:          userID,
		Total:           input.Total,
		ShippingAddress: input.ShippingAddress,
	}
	if err := s.repo.CreateOrder(order, items); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	slog.Info("order created", "order_id", order.ID, "user_id", userID, "items", len(items))

	if err := s.repo.ClearCart(userID); err != nil {
		slog.Error("failed to clear cart after order", "order_id", order.ID, "user_id", userID, "error", err)
	}

	s.publish(models.EventOrderCreated, order)
	return order, nil
}

// ListOrders returns every order for admins and the user's own orders otherwise.
func (s *OrderService) ListOrders(actor *models.User) ([]models.Order, error) {
	if actor.Role == models.RoleAdmin {
		return s.repo.ListOrders(nil)
	}
	return s.repo.ListOrders(&actor.ID)
}

// GetOrder returns an order with its lines. Only the buyer and admins may see it.
func (s *OrderService) GetOrder(actor *models.User, id uint) (*models.OrderDetail, error) {
	order, err := s.repo.GetOrder(id)
	if err != nil {
		return nil, err
	}
	if actor.Role != models.RoleAdmin && order.UserID != actor.ID {
		return nil, fmt.Errorf("%w: order %d belongs to another user", ErrForbidden, id)
	}
	lines, err := s.repo.ListOrderItems(id)
	if err != nil {
		return nil, err
	}
	return &models.OrderDetail{Order: *order, Items: lines}, nil
}

// UpdateOrderStatus moves an order along its lifecycle. Sellers and admins may
// apply any allowed transition; buyers may only cancel their own orders.
func (s *OrderService) UpdateOrderStatus(actor *models.User, id uint, status models.OrderStatus) (*models.Order, error) {
	if actor.Role == models.RoleCustomer {
		order, err := s.repo.GetOrder(id)
		if err != nil {
			return nil, err
		}
		if order.UserID != actor.ID || status != models.OrderCancelled {
			return nil, fmt.Errorf("%w: customers may only cancel their own orders", ErrForbidden)
		}
	}

	order, err := s.repo.UpdateOrderStatus(id, status)
	if err != nil {
		return nil, fmt.Errorf("failed to update order status for order %d: %w", id, err)
	}
	s.publish(models.EventOrderStatusChanged, order)
	return order, nil
}

func (s *OrderService) publish(eventType string, order *models.Order) {
	if s.publisher == nil {
		slog.Debug("event publisher is not configured, skipping", "type", eventType, "order_id", order.ID)
		return
	}
	event := models.OrderEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		OrderID:    order.ID,
		UserID:     order.UserID,
		Status:     order.Status,
		Total:      order.Total,
		OccurredAt: time.Now(),
	}
	if err := s.publisher.PublishOrderEvent(event); err != nil {
		slog.Warn("failed to publish order event", "type", eventType, "order_id", order.ID, "error", err)
	}
}
