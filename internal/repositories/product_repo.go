package repositories

import (
	"pasar/internal/models"

	"github.com/shopspring/decimal"
)

// Sort orders understood by ListProducts.
const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortRating    = "rating"
	SortNewest    = "newest"
)

// ProductFilter narrows ListProducts. Zero values mean "no constraint"; all set
// fields are combined with AND. Limit <= 0 returns everything after Offset.
type ProductFilter struct {
	CategoryID *uint
	SellerID   *uint
	Search     string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	SortBy     string
	Limit      int
	Offset     int
}

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	// ListProducts returns active products matching filter.
	ListProducts(filter ProductFilter) ([]models.Product, error)
	ListFeaturedProducts() ([]models.Product, error)
	// ListProductsBySeller includes inactive products.
	ListProductsBySeller(sellerID uint) ([]models.Product, error)
	GetProduct(id uint) (*models.Product, error)
	CreateProduct(product *models.Product) error
	UpdateProduct(id uint, patch models.ProductPatch) (*models.Product, error)
	// DeactivateProduct hides a product from listings without removing it.
	DeactivateProduct(id uint) error
	// PurgeProduct removes a product that no order references.
	PurgeProduct(id uint) error
}
