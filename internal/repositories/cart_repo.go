package repositories

import "pasar/internal/models"

// CartRepository defines the interface for cart data access.
type CartRepository interface {
	// ListCart joins each row with its product; rows whose product is gone are skipped.
	ListCart(userID uint) ([]models.CartLine, error)
	GetCartItem(id uint) (*models.CartItem, error)
	// AddToCart merges into the existing (user, product) row when there is one.
	AddToCart(userID, productID uint, quantity int) (*models.CartItem, error)
	UpdateCartItem(id uint, quantity int) (*models.CartItem, error)
	RemoveCartItem(id uint) error
	ClearCart(userID uint) error
}
