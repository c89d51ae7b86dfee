package models

import "time"

// WishlistEntry marks a product a user wants to keep an eye on.
type WishlistEntry struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex:idx_wishlist_user_product;not null"`
	ProductID uint      `json:"product_id" gorm:"uniqueIndex:idx_wishlist_user_product;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// WishlistLine is a wishlist entry joined with its product.
type WishlistLine struct {
	WishlistEntry
	Product Product `json:"product"`
}
