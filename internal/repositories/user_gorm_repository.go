package repositories

import (
	"errors"
	"fmt"

	"pasar/internal/models"

	"gorm.io/gorm"
)

// GetUser retrieves a user by its ID.
func (s *GORMStore) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := first(s.db, &user, "user", id); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByExternalID retrieves the user mapped to an identity-provider subject.
func (s *GORMStore) GetUserByExternalID(externalID string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "external_id = ?", externalID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("identity %q: %w", externalID, ErrUserNotRegistered)
		}
		return nil, fmt.Errorf("failed to get user by identity %q: %w", externalID, err)
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by email.
func (s *GORMStore) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user with email %s %w", email, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by email %s: %w", email, err)
	}
	return &user, nil
}

// ListUsers retrieves every user.
func (s *GORMStore) ListUsers() ([]models.User, error) {
	users := make([]models.User, 0)
	if err := s.db.Order("id ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// CreateUser creates a new user. ExternalID and Email must be unique.
func (s *GORMStore) CreateUser(user *models.User) error {
	if err := validateNewUser(user); err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("external_id = ?", user.ExternalID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check identity: %w", err)
		}
		if count > 0 {
			return fmt.Errorf("%w: identity %q already registered", ErrConflict, user.ExternalID)
		}
		if err := tx.Model(&models.User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check email: %w", err)
		}
		if count > 0 {
			return fmt.Errorf("%w: email %q already registered", ErrConflict, user.Email)
		}
		if err := tx.Create(user).Error; err != nil {
			return translate(err, "create user")
		}
		return nil
	})
}

// UpdateUserRole changes the role of a user.
func (s *GORMStore) UpdateUserRole(id uint, role models.Role) (*models.User, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidArgument, role)
	}
	var user models.User
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := first(tx, &user, "user", id); err != nil {
			return err
		}
		if err := tx.Model(&user).Update("role", role).Error; err != nil {
			return fmt.Errorf("failed to update role of user %d: %w", id, err)
		}
		user.Role = role
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListCategories retrieves every category.
func (s *GORMStore) ListCategories() ([]models.Category, error) {
	categories := make([]models.Category, 0)
	if err := s.db.Order("id ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// GetCategory retrieves a category by its ID.
func (s *GORMStore) GetCategory(id uint) (*models.Category, error) {
	var category models.Category
	if err := first(s.db, &category, "category", id); err != nil {
		return nil, err
	}
	return &category, nil
}

// CreateCategory creates a new category. Slugs are unique.
func (s *GORMStore) CreateCategory(category *models.Category) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Category{}).Where("slug = ?", category.Slug).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check slug: %w", err)
		}
		if count > 0 {
			return fmt.Errorf("%w: slug %q already in use", ErrConflict, category.Slug)
		}
		if err := tx.Create(category).Error; err != nil {
			return translate(err, "create category")
		}
		return nil
	})
}
