package repositories

import (
	"fmt"
	"time"

	"pasar/internal/models"
)

// ListOrders returns the orders of a user, or all orders when userID is nil.
func (s *MemoryStore) ListOrders(userID *uint) ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]models.Order, 0)
	for o := range s.orders.all() {
		if userID == nil || o.UserID == *userID {
			orders = append(orders, o.Clone())
		}
	}
	return orders, nil
}

// GetOrder returns an order by its ID.
func (s *MemoryStore) GetOrder(id uint) (*models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders.get(id)
	if !ok {
		return nil, notFound("order", id)
	}
	c := o.Clone()
	return &c, nil
}

// CreateOrder validates every item, then writes the order, its items and the
// stock reservation under one lock. On error nothing has been written.
func (s *MemoryStore) CreateOrder(order *models.Order, items []models.OrderItem) error {
	if err := validateOrder(order, items); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users.get(order.UserID); !ok {
		return notFound("user", order.UserID)
	}
	for productID, units := range requestedUnits(items) {
		p, ok := s.products.get(productID)
		if !ok {
			return notFound("product", productID)
		}
		if !p.IsActive {
			return unavailable(productID)
		}
		if p.Stock < units {
			return fmt.Errorf("%w for product %s (requested: %d, available: %d)", ErrInsufficientStock, p.Name, units, p.Stock)
		}
	}

	now := time.Now()
	order.ID = s.orders.nextID()
	order.Status = models.OrderPending
	order.CreatedAt = now
	order.UpdatedAt = now
	row := order.Clone()
	s.orders.put(row.ID, &row)

	for i := range items {
		items[i].ID = s.orderItems.nextID()
		items[i].OrderID = order.ID
		item := items[i]
		s.orderItems.put(item.ID, &item)

		p, _ := s.products.get(item.ProductID)
		p.Stock -= item.Quantity
	}
	return nil
}

// UpdateOrderStatus moves an order to status if the transition is allowed.
// Cancelling releases the stock the order reserved.
func (s *MemoryStore) UpdateOrderStatus(id uint, status models.OrderStatus) (*models.Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown order status %q", ErrInvalidArgument, status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders.get(id)
	if !ok {
		return nil, notFound("order", id)
	}
	if !o.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, status)
	}

	if status == models.OrderCancelled {
		for item := range s.orderItems.all() {
			if item.OrderID != id {
				continue
			}
			if p, ok := s.products.get(item.ProductID); ok {
				p.Stock += item.Quantity
			}
		}
	}
	o.Status = status
	o.UpdatedAt = time.Now()
	c := o.Clone()
	return &c, nil
}

// ListOrderItems returns the lines of an order joined with their products.
func (s *MemoryStore) ListOrderItems(orderID uint) ([]models.OrderLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.orders.get(orderID); !ok {
		return nil, notFound("order", orderID)
	}
	lines := make([]models.OrderLine, 0)
	for item := range s.orderItems.all() {
		if item.OrderID != orderID {
			continue
		}
		p, ok := s.products.get(item.ProductID)
		if !ok {
			continue
		}
		lines = append(lines, models.OrderLine{OrderItem: *item, Product: p.Clone()})
	}
	return lines, nil
}
