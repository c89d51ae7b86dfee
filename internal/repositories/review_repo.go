package repositories

import "pasar/internal/models"

// ReviewRepository defines the interface for review data access.
type ReviewRepository interface {
	ListReviews(productID uint) ([]models.ReviewEntry, error)
	// CreateReview also refreshes the product's rating and review count.
	CreateReview(review *models.Review) error
}
