package repositories

import (
	"fmt"

	"pasar/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListCart retrieves the cart rows of a user joined with their products.
func (s *GORMStore) ListCart(userID uint) ([]models.CartLine, error) {
	var items []models.CartItem
	if err := s.db.Where("user_id = ?", userID).Order("id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list cart of user %d: %w", userID, err)
	}
	ids := make([]uint, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}
	products, err := loadProducts(s.db, ids)
	if err != nil {
		return nil, err
	}

	lines := make([]models.CartLine, 0, len(items))
	for _, item := range items {
		if p, ok := products[item.ProductID]; ok {
			lines = append(lines, models.CartLine{CartItem: item, Product: p})
		}
	}
	return lines, nil
}

// GetCartItem retrieves a cart row by its ID.
func (s *GORMStore) GetCartItem(id uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := first(s.db, &item, "cart item", id); err != nil {
		return nil, err
	}
	return &item, nil
}

// AddToCart increments the (user, product) row when present, otherwise creates it.
func (s *GORMStore) AddToCart(userID, productID uint, quantity int) (*models.CartItem, error) {
	if err := validateQuantity(quantity); err != nil {
		return nil, err
	}
	var item models.CartItem
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := exists(tx, &models.User{}, "user", userID); err != nil {
			return err
		}
		var product models.Product
		if err := first(tx, &product, "product", productID); err != nil {
			return err
		}
		if !product.IsActive {
			return unavailable(productID)
		}

		// Upsert on the (user, product) index so concurrent first adds merge.
		row := models.CartItem{UserID: userID, ProductID: productID, Quantity: quantity}
		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"quantity": gorm.Expr("cart_items.quantity + excluded.quantity"),
			}),
		}).Create(&row).Error
		if err != nil {
			return translate(err, "add to cart")
		}
		if err := tx.Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error; err != nil {
			return fmt.Errorf("failed to load cart item: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateCartItem sets the quantity of a cart row.
func (s *GORMStore) UpdateCartItem(id uint, quantity int) (*models.CartItem, error) {
	if err := validateQuantity(quantity); err != nil {
		return nil, err
	}
	var item models.CartItem
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := first(tx, &item, "cart item", id); err != nil {
			return err
		}
		if err := tx.Model(&item).Update("quantity", quantity).Error; err != nil {
			return fmt.Errorf("failed to update cart item %d: %w", id, err)
		}
		item.Quantity = quantity
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// RemoveCartItem deletes a cart row.
func (s *GORMStore) RemoveCartItem(id uint) error {
	res := s.db.Delete(&models.CartItem{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete cart item %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound("cart item", id)
	}
	return nil
}

// ClearCart deletes every cart row of a user.
func (s *GORMStore) ClearCart(userID uint) error {
	if err := s.db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
		return fmt.Errorf("failed to clear cart of user %d: %w", userID, err)
	}
	return nil
}
