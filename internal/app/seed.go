package app

import (
	"fmt"
	"log/slog"

	"pasar/internal/models"
	"pasar/internal/repositories"

	"github.com/shopspring/decimal"
)

func ptr[T any](v T) *T { return &v }

var seedCategories = []models.Category{
	{Name: "Electronics", Slug: "electronics", Icon: ptr("💻")},
	{Name: "Fashion", Slug: "fashion", Icon: ptr("👕")},
	{Name: "Home & Garden", Slug: "home-garden", Icon: ptr("🏠")},
	{Name: "Sports", Slug: "sports", Icon: ptr("⚽")},
	{Name: "Beauty", Slug: "beauty", Icon: ptr("💄")},
	{Name: "Kitchen", Slug: "kitchen", Icon: ptr("🍳")},
}

var seedUsers = []models.User{
	{Name: "Admin User", Email: "admin@example.com", Role: models.RoleAdmin, ExternalID: "admin123"},
	{Name: "John Seller", Email: "seller@example.com", Role: models.RoleSeller, ExternalID: "seller123"},
	{Name: "Jane Customer", Email: "customer@example.com", Role: models.RoleCustomer, ExternalID: "customer123"},
}

type seedProduct struct {
	product  models.Product
	category string
}

func seedProducts() []seedProduct {
	return []seedProduct{
		{
			category: "electronics",
			product: models.Product{
				Name:          "Premium Wireless Earbuds",
				Description:   "High-quality wireless earbuds with active noise cancellation.",
				Price:         decimal.RequireFromString("59.99"),
				OriginalPrice: ptr(decimal.RequireFromString("79.99")),
				Images:        []string{"https://images.unsplash.com/photo-1590658268037-6bf12165a8df?w=400&h=300"},
				Stock:         50,
				Tags:          []string{"wireless", "noise-cancellation", "premium"},
				Specifications: map[string]string{
					"Battery Life": "24 hours",
					"Driver Size":  "12mm",
					"Connectivity": "Bluetooth 5.0",
				},
				IsFeatured: true,
			},
		},
		{
			category: "electronics",
			product: models.Product{
				Name:          "Gaming Laptop",
				Description:   "High-performance gaming laptop with RTX graphics.",
				Price:         decimal.RequireFromString("1299.99"),
				OriginalPrice: ptr(decimal.RequireFromString("1499.99")),
				Images:        []string{"https://images.unsplash.com/photo-1603302576837-37561b2e2302?w=400&h=300"},
				Stock:         25,
				Tags:          []string{"gaming", "laptop", "RTX"},
				Specifications: map[string]string{
					"CPU":     "Intel i7",
					"GPU":     "RTX 3060",
					"RAM":     "16GB",
					"Storage": "512GB SSD",
				},
				IsFeatured: true,
			},
		},
		{
			category: "kitchen",
			product: models.Product{
				Name:        "Cast Iron Skillet",
				Description: "Pre-seasoned 12 inch skillet for stovetop and oven.",
				Price:       decimal.RequireFromString("34.50"),
				Images:      []string{"https://images.unsplash.com/photo-1590794056226-79ef3a8147e1?w=400&h=300"},
				Stock:       40,
				Tags:        []string{"cookware", "cast-iron"},
			},
		},
		{
			category: "sports",
			product: models.Product{
				Name:        "Yoga Mat",
				Description: "Non-slip 6mm exercise mat with carrying strap.",
				Price:       decimal.RequireFromString("24.99"),
				Images:      []string{"https://images.unsplash.com/photo-1601925260368-ae2f83cf8b7f?w=400&h=300"},
				Stock:       100,
				Tags:        []string{"fitness", "yoga"},
			},
		},
	}
}

// Seed loads the demo catalog and the admin, seller and customer accounts.
// A store that already has categories is left alone.
func Seed(store repositories.Store) error {
	existing, err := store.ListCategories()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		slog.Info("store already seeded, skipping", "categories", len(existing))
		return nil
	}

	categoryIDs := make(map[string]uint, len(seedCategories))
	for _, category := range seedCategories {
		if err := store.CreateCategory(&category); err != nil {
			return fmt.Errorf("category %s: %w", category.Slug, err)
		}
		categoryIDs[category.Slug] = category.ID
	}

	var sellerID uint
	for _, user := range seedUsers {
		if err := store.CreateUser(&user); err != nil {
			return fmt.Errorf("user %s: %w", user.ExternalID, err)
		}
		if user.Role == models.RoleSeller {
			sellerID = user.ID
		}
	}

	for _, seed := range seedProducts() {
		product := seed.product
		product.CategoryID = ptr(categoryIDs[seed.category])
		product.SellerID = ptr(sellerID)
		if err := store.CreateProduct(&product); err != nil {
			return fmt.Errorf("product %s: %w", product.Name, err)
		}
	}

	slog.Info("seeded store",
		"categories", len(seedCategories),
		"users", len(seedUsers),
		"products", len(seedProducts()),
	)
	return nil
}
