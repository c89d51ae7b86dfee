package services

import (
	"pasar/internal/models"
	"pasar/internal/repositories"
)

// ReviewService handles product reviews.
type ReviewService struct {
	repo repositories.ReviewRepository
}

// NewReviewService creates a new ReviewService.
func NewReviewService(repo repositories.ReviewRepository) *ReviewService {
	return &ReviewService{repo: repo}
}

// ListReviews returns the reviews of a product with their authors.
func (s *ReviewService) ListReviews(productID uint) ([]models.ReviewEntry, error) {
	return s.repo.ListReviews(productID)
}

// AddReview stores a review by userID; the product's rating follows.
func (s *ReviewService) AddReview(userID, productID uint, rating int, comment *string) (*models.Review, error) {
	review := &models.Review{
		UserID:    userID,
		ProductID: productID,
		Rating:    rating,
		Comment:   comment,
	}
	if err := s.repo.CreateReview(review); err != nil {
		return nil, err
	}
	return review, nil
}
