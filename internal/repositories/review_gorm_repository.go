package repositories

import (
	"errors"
	"fmt"

	"pasar/internal/models"

	"gorm.io/gorm"
)

// ListReviews retrieves the reviews of a product joined with their authors.
func (s *GORMStore) ListReviews(productID uint) ([]models.ReviewEntry, error) {
	var reviews []models.Review
	if err := s.db.Where("product_id = ?", productID).Order("id ASC").Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to list reviews of product %d: %w", productID, err)
	}
	ids := make([]uint, 0, len(reviews))
	for _, r := range reviews {
		ids = append(ids, r.UserID)
	}
	users, err := loadUsers(s.db, ids)
	if err != nil {
		return nil, err
	}

	entries := make([]models.ReviewEntry, 0, len(reviews))
	for _, r := range reviews {
		if u, ok := users[r.UserID]; ok {
			entries = append(entries, models.ReviewEntry{Review: r, User: u})
		}
	}
	return entries, nil
}

// CreateReview stores a review and recomputes the product's rating and review
// count in the same transaction.
func (s *GORMStore) CreateReview(review *models.Review) error {
	if err := validateRating(review.Rating); err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := exists(tx, &models.User{}, "user", review.UserID); err != nil {
			return err
		}
		if err := exists(tx, &models.Product{}, "product", review.ProductID); err != nil {
			return err
		}
		if err := tx.Create(review).Error; err != nil {
			return translate(err, "create review")
		}

		var ratings []int
		if err := tx.Model(&models.Review{}).Where("product_id = ?", review.ProductID).Pluck("rating", &ratings).Error; err != nil {
			return fmt.Errorf("failed to load ratings of product %d: %w", review.ProductID, err)
		}
		err := tx.Model(&models.Product{}).Where("id = ?", review.ProductID).Updates(map[string]any{
			"rating":       averageRating(ratings),
			"review_count": len(ratings),
		}).Error
		if err != nil {
			return fmt.Errorf("failed to update rating of product %d: %w", review.ProductID, err)
		}
		return nil
	})
}

// ListWishlist retrieves the wishlist of a user joined with the products.
func (s *GORMStore) ListWishlist(userID uint) ([]models.WishlistLine, error) {
	var entries []models.WishlistEntry
	if err := s.db.Where("user_id = ?", userID).Order("id ASC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list wishlist of user %d: %w", userID, err)
	}
	ids := make([]uint, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ProductID)
	}
	products, err := loadProducts(s.db, ids)
	if err != nil {
		return nil, err
	}

	lines := make([]models.WishlistLine, 0, len(entries))
	for _, e := range entries {
		if p, ok := products[e.ProductID]; ok {
			lines = append(lines, models.WishlistLine{WishlistEntry: e, Product: p})
		}
	}
	return lines, nil
}

// AddToWishlist adds a product to a user's wishlist, returning the existing
// entry when it is already there.
func (s *GORMStore) AddToWishlist(userID, productID uint) (*models.WishlistEntry, error) {
	var entry models.WishlistEntry
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := exists(tx, &models.User{}, "user", userID); err != nil {
			return err
		}
		if err := exists(tx, &models.Product{}, "product", productID); err != nil {
			return err
		}
		err := tx.Where("user_id = ? AND product_id = ?", userID, productID).First(&entry).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to look up wishlist entry: %w", err)
		}
		entry = models.WishlistEntry{UserID: userID, ProductID: productID}
		if err := tx.Create(&entry).Error; err != nil {
			return translate(err, "add to wishlist")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// RemoveFromWishlist deletes the (user, product) entry.
func (s *GORMStore) RemoveFromWishlist(userID, productID uint) error {
	res := s.db.Where("user_id = ? AND product_id = ?", userID, productID).Delete(&models.WishlistEntry{})
	if res.Error != nil {
		return fmt.Errorf("failed to remove wishlist entry: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("wishlist entry for product %d %w", productID, ErrNotFound)
	}
	return nil
}
