package services

import (
	"errors"
	"fmt"

	"pasar/internal/models"
	"pasar/internal/repositories"
)

// ErrForbidden is returned when the acting user may not perform an operation.
var ErrForbidden = errors.New("forbidden")

// UserService handles registration and identity resolution.
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Register creates the user for an external identity. Admin accounts can only be
// granted by another admin.
func (s *UserService) Register(externalID, email, name string, role models.Role) (*models.User, error) {
	if role == models.RoleAdmin {
		return nil, fmt.Errorf("%w: admin role cannot be self-assigned", ErrForbidden)
	}
	user := &models.User{
		ExternalID: externalID,
		Email:      email,
		Name:       name,
		Role:       role,
	}
	if err := s.repo.CreateUser(user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return user, nil
}

// Resolve maps an external identity to its user.
func (s *UserService) Resolve(externalID string) (*models.User, error) {
	return s.repo.GetUserByExternalID(externalID)
}

// GetUser retrieves a user by its ID.
func (s *UserService) GetUser(id uint) (*models.User, error) {
	return s.repo.GetUser(id)
}

// ListUsers retrieves every user.
func (s *UserService) ListUsers() ([]models.User, error) {
	return s.repo.ListUsers()
}

// UpdateRole changes the role of a user.
func (s *UserService) UpdateRole(id uint, role models.Role) (*models.User, error) {
	return s.repo.UpdateUserRole(id, role)
}
