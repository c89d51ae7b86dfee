package services

import (
	"fmt"

	"pasar/internal/models"
	"pasar/internal/repositories"
)

// CartService handles the shopping cart of a user.
type CartService struct {
	repo repositories.CartRepository
}

// NewCartService creates a new CartService.
func NewCartService(repo repositories.CartRepository) *CartService {
	return &CartService{repo: repo}
}

// GetCart returns the user's cart with a total computed from live prices.
func (s *CartService) GetCart(userID uint) (*models.Cart, error) {
	lines, err := s.repo.ListCart(userID)
	if err != nil {
		return nil, err
	}
	return &models.Cart{Items: lines, Total: models.CartTotal(lines)}, nil
}

// AddItem adds quantity units of a product, merging with an existing row.
func (s *CartService) AddItem(userID, productID uint, quantity int) (*models.CartItem, error) {
	return s.repo.AddToCart(userID, productID, quantity)
}

// SetQuantity sets the quantity of one of the user's cart rows. Zero or less
// removes the row; the returned item is nil in that case.
func (s *CartService) SetQuantity(userID, itemID uint, quantity int) (*models.CartItem, error) {
	if err := s.authorize(userID, itemID); err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, s.repo.RemoveCartItem(itemID)
	}
	return s.repo.UpdateCartItem(itemID, quantity)
}

// RemoveItem deletes one of the user's cart rows.
func (s *CartService) RemoveItem(userID, itemID uint) error {
	if err := s.authorize(userID, itemID); err != nil {
		return err
	}
	return s.repo.RemoveCartItem(itemID)
}

// Clear empties the user's cart.
func (s *CartService) Clear(userID uint) error {
	return s.repo.ClearCart(userID)
}

func (s *CartService) authorize(userID, itemID uint) error {
	item, err := s.repo.GetCartItem(itemID)
	if err != nil {
		return err
	}
	if item.UserID != userID {
		return fmt.Errorf("%w: cart item %d belongs to another user", ErrForbidden, itemID)
	}
	return nil
}
