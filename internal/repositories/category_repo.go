package repositories

import "pasar/internal/models"

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	ListCategories() ([]models.Category, error)
	GetCategory(id uint) (*models.Category, error)
	CreateCategory(category *models.Category) error
}
