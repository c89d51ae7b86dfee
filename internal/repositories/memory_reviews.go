package repositories

import (
	"fmt"
	"time"

	"pasar/internal/models"
)

// ListReviews returns the reviews of a product joined with their authors.
func (s *MemoryStore) ListReviews(productID uint) ([]models.ReviewEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]models.ReviewEntry, 0)
	for r := range s.reviews.all() {
		if r.ProductID != productID {
			continue
		}
		u, ok := s.users.get(r.UserID)
		if !ok {
			continue
		}
		entries = append(entries, models.ReviewEntry{Review: cloneReview(r), User: *u})
	}
	return entries, nil
}

// CreateReview stores a review and recomputes the product's rating and review count.
func (s *MemoryStore) CreateReview(review *models.Review) error {
	if err := validateRating(review.Rating); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users.get(review.UserID); !ok {
		return notFound("user", review.UserID)
	}
	p, ok := s.products.get(review.ProductID)
	if !ok {
		return notFound("product", review.ProductID)
	}

	review.ID = s.reviews.nextID()
	review.CreatedAt = time.Now()
	row := cloneReview(review)
	s.reviews.put(row.ID, &row)

	var ratings []int
	for r := range s.reviews.all() {
		if r.ProductID == review.ProductID {
			ratings = append(ratings, r.Rating)
		}
	}
	p.Rating = averageRating(ratings)
	p.ReviewCount = len(ratings)
	return nil
}

// ListWishlist returns the wishlist of a user joined with the products.
func (s *MemoryStore) ListWishlist(userID uint) ([]models.WishlistLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lines := make([]models.WishlistLine, 0)
	for w := range s.wishlist.all() {
		if w.UserID != userID {
			continue
		}
		p, ok := s.products.get(w.ProductID)
		if !ok {
			continue
		}
		lines = append(lines, models.WishlistLine{WishlistEntry: *w, Product: p.Clone()})
	}
	return lines, nil
}

// AddToWishlist adds a product to a user's wishlist. Adding it twice returns the
// first entry.
func (s *MemoryStore) AddToWishlist(userID, productID uint) (*models.WishlistEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users.get(userID); !ok {
		return nil, notFound("user", userID)
	}
	if _, ok := s.products.get(productID); !ok {
		return nil, notFound("product", productID)
	}
	if existing, ok := s.wishlist.find(func(w *models.WishlistEntry) bool {
		return w.UserID == userID && w.ProductID == productID
	}); ok {
		c := *existing
		return &c, nil
	}

	entry := &models.WishlistEntry{
		ID:        s.wishlist.nextID(),
		UserID:    userID,
		ProductID: productID,
		CreatedAt: time.Now(),
	}
	s.wishlist.put(entry.ID, entry)
	c := *entry
	return &c, nil
}

// RemoveFromWishlist deletes the (user, product) entry.
func (s *MemoryStore) RemoveFromWishlist(userID, productID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.wishlist.find(func(w *models.WishlistEntry) bool {
		return w.UserID == userID && w.ProductID == productID
	})
	if !ok {
		return fmt.Errorf("wishlist entry for product %d %w", productID, ErrNotFound)
	}
	s.wishlist.delete(entry.ID)
	return nil
}

func cloneReview(r *models.Review) models.Review {
	out := *r
	if r.Comment != nil {
		comment := *r.Comment
		out.Comment = &comment
	}
	return out
}
