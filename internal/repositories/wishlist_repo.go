package repositories

import "pasar/internal/models"

// WishlistRepository defines the interface for wishlist data access.
type WishlistRepository interface {
	ListWishlist(userID uint) ([]models.WishlistLine, error)
	// AddToWishlist returns the existing entry when the pair is already present.
	AddToWishlist(userID, productID uint) (*models.WishlistEntry, error)
	RemoveFromWishlist(userID, productID uint) error
}
