package repositories

import (
	"time"

	"pasar/internal/models"

	"github.com/shopspring/decimal"
)

// ListProducts returns snapshots of active products matching filter.
func (s *MemoryStore) ListProducts(filter ProductFilter) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]models.Product, 0)
	for p := range s.products.all() {
		if p.IsActive && matchesFilter(p, filter) {
			products = append(products, p.Clone())
		}
	}
	sortProducts(products, filter.SortBy)
	return paginate(products, filter.Limit, filter.Offset), nil
}

// ListFeaturedProducts returns every active, featured product.
func (s *MemoryStore) ListFeaturedProducts() ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]models.Product, 0)
	for p := range s.products.all() {
		if p.IsActive && p.IsFeatured {
			products = append(products, p.Clone())
		}
	}
	return products, nil
}

// ListProductsBySeller returns all products of a seller, active or not.
func (s *MemoryStore) ListProductsBySeller(sellerID uint) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]models.Product, 0)
	for p := range s.products.all() {
		if p.SellerID != nil && *p.SellerID == sellerID {
			products = append(products, p.Clone())
		}
	}
	return products, nil
}

// GetProduct returns a product by its ID, including inactive ones.
func (s *MemoryStore) GetProduct(id uint) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products.get(id)
	if !ok {
		return nil, notFound("product", id)
	}
	c := p.Clone()
	return &c, nil
}

// CreateProduct adds a new, active product with no reviews.
func (s *MemoryStore) CreateProduct(product *models.Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkProductRefs(product); err != nil {
		return err
	}

	product.ID = s.products.nextID()
	product.IsActive = true
	product.Rating = decimal.Zero
	product.ReviewCount = 0
	product.CreatedAt = time.Now()
	row := product.Clone()
	s.products.put(row.ID, &row)
	return nil
}

// UpdateProduct applies a partial update to a product.
func (s *MemoryStore) UpdateProduct(id uint, patch models.ProductPatch) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.products.get(id)
	if !ok {
		return nil, notFound("product", id)
	}
	updated := current.Clone()
	patch.Apply(&updated)
	if err := validateProduct(&updated); err != nil {
		return nil, err
	}
	if err := s.checkProductRefs(&updated); err != nil {
		return nil, err
	}

	s.products.put(id, &updated)
	c := updated.Clone()
	return &c, nil
}

// DeactivateProduct clears the active flag of a product.
func (s *MemoryStore) DeactivateProduct(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products.get(id)
	if !ok {
		return notFound("product", id)
	}
	p.IsActive = false
	return nil
}

// PurgeProduct removes a product for good. Products referenced by an order item
// are kept so order history still joins.
func (s *MemoryStore) PurgeProduct(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products.get(id); !ok {
		return notFound("product", id)
	}
	if _, referenced := s.orderItems.find(func(i *models.OrderItem) bool { return i.ProductID == id }); referenced {
		return referencedByOrders(id)
	}
	s.products.delete(id)
	return nil
}

// checkProductRefs must be called with the lock held.
func (s *MemoryStore) checkProductRefs(p *models.Product) error {
	if p.CategoryID != nil {
		if _, ok := s.categories.get(*p.CategoryID); !ok {
			return notFound("category", *p.CategoryID)
		}
	}
	if p.SellerID != nil {
		if _, ok := s.users.get(*p.SellerID); !ok {
			return notFound("seller", *p.SellerID)
		}
	}
	return nil
}
