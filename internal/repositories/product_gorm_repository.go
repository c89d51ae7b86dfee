package repositories

import (
	"fmt"

	"pasar/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListProducts retrieves active products matching filter.
func (s *GORMStore) ListProducts(filter ProductFilter) ([]models.Product, error) {
	q := s.db.Model(&models.Product{}).Where("is_active = ?", true)
	if filter.CategoryID != nil {
		q = q.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.SellerID != nil {
		q = q.Where("seller_id = ?", *filter.SellerID)
	}
	if filter.Search != "" {
		pattern := containsPattern(filter.Search)
		q = q.Where(`(LOWER(name) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\')`, pattern, pattern)
	}
	if filter.MinPrice != nil {
		q = q.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		q = q.Where("price <= ?", *filter.MaxPrice)
	}

	switch filter.SortBy {
	case SortPriceAsc:
		q = q.Order("price ASC").Order("id ASC")
	case SortPriceDesc:
		q = q.Order("price DESC").Order("id ASC")
	case SortRating:
		q = q.Order("rating DESC").Order("id ASC")
	case SortNewest:
		q = q.Order("created_at DESC").Order("id DESC")
	default:
		q = q.Order("id ASC")
	}

	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	products := make([]models.Product, 0)
	if err := q.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// ListFeaturedProducts retrieves every active, featured product.
func (s *GORMStore) ListFeaturedProducts() ([]models.Product, error) {
	products := make([]models.Product, 0)
	err := s.db.Where("is_active = ? AND is_featured = ?", true, true).Order("id ASC").Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list featured products: %w", err)
	}
	return products, nil
}

// ListProductsBySeller retrieves all products of a seller, active or not.
func (s *GORMStore) ListProductsBySeller(sellerID uint) ([]models.Product, error) {
	products := make([]models.Product, 0)
	if err := s.db.Where("seller_id = ?", sellerID).Order("id ASC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products of seller %d: %w", sellerID, err)
	}
	return products, nil
}

// GetProduct retrieves a single product by its ID, including inactive ones.
func (s *GORMStore) GetProduct(id uint) (*models.Product, error) {
	var product models.Product
	if err := first(s.db, &product, "product", id); err != nil {
		return nil, err
	}
	return &product, nil
}

// CreateProduct creates a new, active product with no reviews.
func (s *GORMStore) CreateProduct(product *models.Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := checkProductRefs(tx, product); err != nil {
			return err
		}
		product.IsActive = true
		product.Rating = decimal.Zero
		product.ReviewCount = 0
		if err := tx.Create(product).Error; err != nil {
			return translate(err, "create product")
		}
		return nil
	})
}

// UpdateProduct applies a partial update to a product.
func (s *GORMStore) UpdateProduct(id uint, patch models.ProductPatch) (*models.Product, error) {
	var product models.Product
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := first(tx, &product, "product", id); err != nil {
			return err
		}
		patch.Apply(&product)
		if err := validateProduct(&product); err != nil {
			return err
		}
		if err := checkProductRefs(tx, &product); err != nil {
			return err
		}
		if err := tx.Save(&product).Error; err != nil {
			return translate(err, "update product")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// DeactivateProduct clears the active flag of a product.
func (s *GORMStore) DeactivateProduct(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := first(tx, &product, "product", id); err != nil {
			return err
		}
		if err := tx.Model(&product).Update("is_active", false).Error; err != nil {
			return fmt.Errorf("failed to deactivate product %d: %w", id, err)
		}
		return nil
	})
}

// PurgeProduct deletes a product that no order item references.
func (s *GORMStore) PurgeProduct(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := exists(tx, &models.Product{}, "product", id); err != nil {
			return err
		}
		var refs int64
		if err := tx.Model(&models.OrderItem{}).Where("product_id = ?", id).Count(&refs).Error; err != nil {
			return fmt.Errorf("failed to check order references of product %d: %w", id, err)
		}
		if refs > 0 {
			return referencedByOrders(id)
		}
		if err := tx.Delete(&models.Product{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete product %d: %w", id, err)
		}
		return nil
	})
}

func checkProductRefs(tx *gorm.DB, p *models.Product) error {
	if p.CategoryID != nil {
		if err := exists(tx, &models.Category{}, "category", *p.CategoryID); err != nil {
			return err
		}
	}
	if p.SellerID != nil {
		if err := exists(tx, &models.User{}, "seller", *p.SellerID); err != nil {
			return err
		}
	}
	return nil
}
