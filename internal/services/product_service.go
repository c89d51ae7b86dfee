package services

import (
	"fmt"

	"pasar/internal/models"
	"pasar/internal/repositories"
)

// CatalogStore is what CatalogService needs from the store.
type CatalogStore interface {
	repositories.CategoryRepository
	repositories.ProductRepository
}

// CatalogService handles business logic related to categories and products.
type CatalogService struct {
	repo CatalogStore
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo CatalogStore) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

// ListCategories retrieves all categories.
func (s *CatalogService) ListCategories() ([]models.Category, error) {
	return s.repo.ListCategories()
}

// CreateCategory creates a new category.
func (s *CatalogService) CreateCategory(category *models.Category) error {
	return s.repo.CreateCategory(category)
}

// ListProducts retrieves active products matching filter.
func (s *CatalogService) ListProducts(filter repositories.ProductFilter) ([]models.Product, error) {
	return s.repo.ListProducts(filter)
}

// ListFeaturedProducts retrieves the featured products.
func (s *CatalogService) ListFeaturedProducts() ([]models.Product, error) {
	return s.repo.ListFeaturedProducts()
}

// ListSellerProducts retrieves every product of a seller, active or not.
func (s *CatalogService) ListSellerProducts(sellerID uint) ([]models.Product, error) {
	return s.repo.ListProductsBySeller(sellerID)
}

// GetProduct retrieves a single product by its ID.
func (s *CatalogService) GetProduct(id uint) (*models.Product, error) {
	return s.repo.GetProduct(id)
}

// CreateProduct creates a new product on behalf of actor. Sellers always own
// what they list; admins may list for any seller.
func (s *CatalogService) CreateProduct(actor *models.User, product *models.Product) error {
	switch actor.Role {
	case models.RoleSeller:
		product.SellerID = &actor.ID
	case models.RoleAdmin:
	default:
		return fmt.Errorf("%w: only sellers and admins can list products", ErrForbidden)
	}
	return s.repo.CreateProduct(product)
}

// UpdateProduct applies a partial update if actor owns the product or is an admin.
func (s *CatalogService) UpdateProduct(actor *models.User, id uint, patch models.ProductPatch) (*models.Product, error) {
	if err := s.authorizeOwner(actor, id); err != nil {
		return nil, err
	}
	if actor.Role != models.RoleAdmin {
		// ownership can't be handed over by a seller
		patch.SellerID = nil
	}
	return s.repo.UpdateProduct(id, patch)
}

// DeleteProduct hides a product from the catalog. With purge set, an admin
// removes it entirely, which is refused while orders reference it.
func (s *CatalogService) DeleteProduct(actor *models.User, id uint, purge bool) error {
	if err := s.authorizeOwner(actor, id); err != nil {
		return err
	}
	if purge {
		if actor.Role != models.RoleAdmin {
			return fmt.Errorf("%w: only admins can purge products", ErrForbidden)
		}
		return s.repo.PurgeProduct(id)
	}
	return s.repo.DeactivateProduct(id)
}

func (s *CatalogService) authorizeOwner(actor *models.User, productID uint) error {
	product, err := s.repo.GetProduct(productID)
	if err != nil {
		return err
	}
	if actor.Role == models.RoleAdmin {
		return nil
	}
	if actor.Role == models.RoleSeller && product.SellerID != nil && *product.SellerID == actor.ID {
		return nil
	}
	return fmt.Errorf("%w: product %d belongs to another seller", ErrForbidden, productID)
}
