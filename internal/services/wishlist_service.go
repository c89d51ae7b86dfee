package services

import (
	"pasar/internal/models"
	"pasar/internal/repositories"
)

// WishlistService handles user wishlists.
type WishlistService struct {
	repo repositories.WishlistRepository
}

// NewWishlistService creates a new WishlistService.
func NewWishlistService(repo repositories.WishlistRepository) *WishlistService {
	return &WishlistService{repo: repo}
}

func (s *WishlistService) List(userID uint) ([]models.WishlistLine, error) {
	return s.repo.ListWishlist(userID)
}

func (s *WishlistService) Add(userID, productID uint) (*models.WishlistEntry, error) {
	return s.repo.AddToWishlist(userID, productID)
}

func (s *WishlistService) Remove(userID, productID uint) error {
	return s.repo.RemoveFromWishlist(userID, productID)
}
