package repositories

import (
	"time"

	"pasar/internal/models"
)

// ListCart returns the cart rows of a user joined with their products.
func (s *MemoryStore) ListCart(userID uint) ([]models.CartLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lines := make([]models.CartLine, 0)
	for item := range s.cartItems.all() {
		if item.UserID != userID {
			continue
		}
		p, ok := s.products.get(item.ProductID)
		if !ok {
			continue
		}
		lines = append(lines, models.CartLine{CartItem: *item, Product: p.Clone()})
	}
	return lines, nil
}

// GetCartItem returns a cart row by its ID.
func (s *MemoryStore) GetCartItem(id uint) (*models.CartItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.cartItems.get(id)
	if !ok {
		return nil, notFound("cart item", id)
	}
	c := *item
	return &c, nil
}

// AddToCart increments the (user, product) row when present, otherwise creates it.
func (s *MemoryStore) AddToCart(userID, productID uint, quantity int) (*models.CartItem, error) {
	if err := validateQuantity(quantity); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users.get(userID); !ok {
		return nil, notFound("user", userID)
	}
	p, ok := s.products.get(productID)
	if !ok {
		return nil, notFound("product", productID)
	}
	if !p.IsActive {
		return nil, unavailable(productID)
	}

	if existing, ok := s.cartItems.find(func(i *models.CartItem) bool {
		return i.UserID == userID && i.ProductID == productID
	}); ok {
		existing.Quantity += quantity
		c := *existing
		return &c, nil
	}

	item := &models.CartItem{
		ID:        s.cartItems.nextID(),
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: time.Now(),
	}
	s.cartItems.put(item.ID, item)
	c := *item
	return &c, nil
}

// UpdateCartItem sets the quantity of a cart row.
func (s *MemoryStore) UpdateCartItem(id uint, quantity int) (*models.CartItem, error) {
	if err := validateQuantity(quantity); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.cartItems.get(id)
	if !ok {
		return nil, notFound("cart item", id)
	}
	item.Quantity = quantity
	c := *item
	return &c, nil
}

// RemoveCartItem deletes a cart row.
func (s *MemoryStore) RemoveCartItem(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cartItems.delete(id) {
		return notFound("cart item", id)
	}
	return nil
}

// ClearCart deletes every cart row of a user. Clearing an empty cart is not an error.
func (s *MemoryStore) ClearCart(userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clearCartLocked(userID)
	return nil
}

func (s *MemoryStore) clearCartLocked(userID uint) {
	var ids []uint
	for item := range s.cartItems.all() {
		if item.UserID == userID {
			ids = append(ids, item.ID)
		}
	}
	for _, id := range ids {
		s.cartItems.delete(id)
	}
}
