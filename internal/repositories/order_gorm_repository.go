package repositories

import (
	"fmt"
	"maps"
	"slices"
	"time"

	"pasar/internal/models"

	"gorm.io/gorm"
)

// ListOrders retrieves the orders of a user, or every order when userID is nil.
func (s *GORMStore) ListOrders(userID *uint) ([]models.Order, error) {
	q := s.db.Order("id ASC")
	if userID != nil {
		q = q.Where("user_id = ?", *userID)
	}
	orders := make([]models.Order, 0)
	if err := q.Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// GetOrder retrieves an order by its ID.
func (s *GORMStore) GetOrder(id uint) (*models.Order, error) {
	var order models.Order
	if err := first(s.db, &order, "order", id); err != nil {
		return nil, err
	}
	return &order, nil
}

// CreateOrder writes the order, its items and the stock reservation in one transaction.
func (s *GORMStore) CreateOrder(order *models.Order, items []models.OrderItem) error {
	if err := validateOrder(order, items); err != nil {
		return err
	}
	units := requestedUnits(items)
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := exists(tx, &models.User{}, "user", order.UserID); err != nil {
			return err
		}
		for productID, n := range units {
			var p models.Product
			if err := first(tx, &p, "product", productID); err != nil {
				return err
			}
			if !p.IsActive {
				return unavailable(productID)
			}
			if p.Stock < n {
				return fmt.Errorf("%w for product %s (requested: %d, available: %d)", ErrInsufficientStock, p.Name, n, p.Stock)
			}
		}

		order.Status = models.OrderPending
		if err := tx.Create(order).Error; err != nil {
			return translate(err, "create order")
		}
		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return translate(err, "create order items")
		}
		// Conditional decrements in id order: a concurrent order that drained
		// the stock after the check above matches no row.
		for _, productID := range slices.Sorted(maps.Keys(units)) {
			n := units[productID]
			res := tx.Model(&models.Product{}).Where("id = ? AND stock >= ?", productID, n).
				Update("stock", gorm.Expr("stock - ?", n))
			if res.Error != nil {
				return fmt.Errorf("failed to reserve stock of product %d: %w", productID, res.Error)
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("%w for product %d (requested: %d)", ErrInsufficientStock, productID, n)
			}
		}
		return nil
	})
	if err != nil {
		order.ID = 0
		return err
	}
	return nil
}

// UpdateOrderStatus moves an order to status if the transition is allowed.
// Cancelling releases the stock the order reserved.
func (s *GORMStore) UpdateOrderStatus(id uint, status models.OrderStatus) (*models.Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown order status %q", ErrInvalidArgument, status)
	}
	var order models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := first(tx, &order, "order", id); err != nil {
			return err
		}
		if !order.Status.CanTransitionTo(status) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, status)
		}
		// Compare-and-set on the status so only one of two racing updates
		// applies, and only the winner releases stock.
		now := time.Now()
		res := tx.Model(&models.Order{}).Where("id = ? AND status = ?", id, order.Status).
			Updates(map[string]any{"status": status, "updated_at": now})
		if res.Error != nil {
			return fmt.Errorf("failed to update status of order %d: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: order %d changed concurrently", ErrInvalidTransition, id)
		}
		if status == models.OrderCancelled {
			var items []models.OrderItem
			if err := tx.Where("order_id = ?", id).Find(&items).Error; err != nil {
				return fmt.Errorf("failed to load items of order %d: %w", id, err)
			}
			for _, item := range items {
				err := tx.Model(&models.Product{}).Where("id = ?", item.ProductID).
					Update("stock", gorm.Expr("stock + ?", item.Quantity)).Error
				if err != nil {
					return fmt.Errorf("failed to release stock of product %d: %w", item.ProductID, err)
				}
			}
		}
		order.Status = status
		order.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ListOrderItems retrieves the lines of an order joined with their products.
func (s *GORMStore) ListOrderItems(orderID uint) ([]models.OrderLine, error) {
	if err := exists(s.db, &models.Order{}, "order", orderID); err != nil {
		return nil, err
	}
	var items []models.OrderItem
	if err := s.db.Where("order_id = ?", orderID).Order("id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list items of order %d: %w", orderID, err)
	}
	ids := make([]uint, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}
	products, err := loadProducts(s.db, ids)
	if err != nil {
		return nil, err
	}

	lines := make([]models.OrderLine, 0, len(items))
	for _, item := range items {
		if p, ok := products[item.ProductID]; ok {
			lines = append(lines, models.OrderLine{OrderItem: item, Product: p})
		}
	}
	return lines, nil
}
