package repositories

import (
	"fmt"
	"sync"
	"time"

	"pasar/internal/models"
)

// MemoryStore is an in-memory implementation of Store. A single RWMutex guards
// every table, so a multi-row write (an order with its items, a cart merge) is
// never visible half done.
type MemoryStore struct {
	mu         sync.RWMutex
	users      *table[models.User]
	categories *table[models.Category]
	products   *table[models.Product]
	cartItems  *table[models.CartItem]
	orders     *table[models.Order]
	orderItems *table[models.OrderItem]
	reviews    *table[models.Review]
	wishlist   *table[models.WishlistEntry]
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:      newTable[models.User](),
		categories: newTable[models.Category](),
		products:   newTable[models.Product](),
		cartItems:  newTable[models.CartItem](),
		orders:     newTable[models.Order](),
		orderItems: newTable[models.OrderItem](),
		reviews:    newTable[models.Review](),
		wishlist:   newTable[models.WishlistEntry](),
	}
}

// GetUser returns a user by its ID.
func (s *MemoryStore) GetUser(id uint) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users.get(id)
	if !ok {
		return nil, notFound("user", id)
	}
	c := *user
	return &c, nil
}

// GetUserByExternalID returns the user mapped to an identity-provider subject.
func (s *MemoryStore) GetUserByExternalID(externalID string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users.find(func(u *models.User) bool { return u.ExternalID == externalID })
	if !ok {
		return nil, fmt.Errorf("identity %q: %w", externalID, ErrUserNotRegistered)
	}
	c := *user
	return &c, nil
}

// GetUserByEmail returns a user by email.
func (s *MemoryStore) GetUserByEmail(email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users.find(func(u *models.User) bool { return u.Email == email })
	if !ok {
		return nil, fmt.Errorf("user with email %s %w", email, ErrNotFound)
	}
	c := *user
	return &c, nil
}

// ListUsers returns every user.
func (s *MemoryStore) ListUsers() ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]models.User, 0, s.users.count())
	for u := range s.users.all() {
		users = append(users, *u)
	}
	return users, nil
}

// CreateUser adds a new user. ExternalID and Email must be unique.
func (s *MemoryStore) CreateUser(user *models.User) error {
	if err := validateNewUser(user); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users.find(func(u *models.User) bool { return u.ExternalID == user.ExternalID }); ok {
		return fmt.Errorf("%w: identity %q already registered", ErrConflict, user.ExternalID)
	}
	if _, ok := s.users.find(func(u *models.User) bool { return u.Email == user.Email }); ok {
		return fmt.Errorf("%w: email %q already registered", ErrConflict, user.Email)
	}

	user.ID = s.users.nextID()
	user.CreatedAt = time.Now()
	row := *user
	s.users.put(row.ID, &row)
	return nil
}

// UpdateUserRole changes the role of a user.
func (s *MemoryStore) UpdateUserRole(id uint, role models.Role) (*models.User, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidArgument, role)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users.get(id)
	if !ok {
		return nil, notFound("user", id)
	}
	user.Role = role
	c := *user
	return &c, nil
}

// ListCategories returns every category.
func (s *MemoryStore) ListCategories() ([]models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categories := make([]models.Category, 0, s.categories.count())
	for c := range s.categories.all() {
		categories = append(categories, cloneCategory(c))
	}
	return categories, nil
}

// GetCategory returns a category by its ID.
func (s *MemoryStore) GetCategory(id uint) (*models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	category, ok := s.categories.get(id)
	if !ok {
		return nil, notFound("category", id)
	}
	c := cloneCategory(category)
	return &c, nil
}

// CreateCategory adds a new category. Slugs are unique.
func (s *MemoryStore) CreateCategory(category *models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories.find(func(c *models.Category) bool { return c.Slug == category.Slug }); ok {
		return fmt.Errorf("%w: slug %q already in use", ErrConflict, category.Slug)
	}

	category.ID = s.categories.nextID()
	row := cloneCategory(category)
	s.categories.put(row.ID, &row)
	return nil
}

func cloneCategory(c *models.Category) models.Category {
	out := *c
	if c.Icon != nil {
		icon := *c.Icon
		out.Icon = &icon
	}
	return out
}
