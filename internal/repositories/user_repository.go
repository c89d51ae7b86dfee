package repositories

import "pasar/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	GetUser(id uint) (*models.User, error)
	GetUserByExternalID(externalID string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	ListUsers() ([]models.User, error)
	CreateUser(user *models.User) error
	UpdateUserRole(id uint, role models.Role) (*models.User, error)
}
