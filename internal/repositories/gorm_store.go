package repositories

import (
	"errors"
	"fmt"
	"strings"

	"pasar/internal/models"

	"gorm.io/gorm"
)

// GORMStore is a GORM implementation of Store. Multi-row writes run in a
// transaction; unique indexes back the (user, product) and identity rules.
type GORMStore struct {
	db *gorm.DB
}

// NewGORMStore migrates the schema and returns a store backed by db.
func NewGORMStore(db *gorm.DB) (*GORMStore, error) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Review{},
		&models.WishlistEntry{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	return &GORMStore{db: db}, nil
}

// first loads the row with the given primary key into dest.
func first(db *gorm.DB, dest any, entity string, id uint) error {
	if err := db.First(dest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(entity, id)
		}
		return fmt.Errorf("failed to get %s by ID %d: %w", entity, id, err)
	}
	return nil
}

func exists(db *gorm.DB, model any, entity string, id uint) error {
	var count int64
	if err := db.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to look up %s %d: %w", entity, id, err)
	}
	if count == 0 {
		return notFound(entity, id)
	}
	return nil
}

// translate maps driver errors onto the store's error kinds.
func translate(err error, action string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %s: %v", ErrConflict, action, err)
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

func loadProducts(db *gorm.DB, ids []uint) (map[uint]models.Product, error) {
	byID := make(map[uint]models.Product, len(ids))
	if len(ids) == 0 {
		return byID, nil
	}
	var products []models.Product
	if err := db.Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	for _, p := range products {
		byID[p.ID] = p
	}
	return byID, nil
}

func loadUsers(db *gorm.DB, ids []uint) (map[uint]models.User, error) {
	byID := make(map[uint]models.User, len(ids))
	if len(ids) == 0 {
		return byID, nil
	}
	var users []models.User
	if err := db.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	for _, u := range users {
		byID[u.ID] = u
	}
	return byID, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern matching term anywhere in a lowercased column.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
}
