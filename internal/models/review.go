package models

import "time"

// Review is a customer's rating of a product.
type Review struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	ProductID uint      `json:"product_id" gorm:"index;not null"`
	Rating    int       `json:"rating" gorm:"not null"`
	Comment   *string   `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// ReviewEntry is a review joined with its author.
type ReviewEntry struct {
	Review
	User User `json:"user"`
}
