package services_test

import (
	"pasar/internal/models"
	"pasar/internal/repositories"

	"github.com/stretchr/testify/mock"
)

// MockOrderStore is a mock implementation of services.OrderStore
type MockOrderStore struct {
	mock.Mock
}

func (m *MockOrderStore) ListOrders(userID *uint) ([]models.Order, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderStore) GetOrder(id uint) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderStore) CreateOrder(order *models.Order, items []models.OrderItem) error {
	args := m.Called(order, items)
	return args.Error(0)
}

func (m *MockOrderStore) UpdateOrderStatus(id uint, status models.OrderStatus) (*models.Order, error) {
	args := m.Called(id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderStore) ListOrderItems(orderID uint) ([]models.OrderLine, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.OrderLine), args.Error(1)
}

func (m *MockOrderStore) GetProduct(id uint) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockOrderStore) ClearCart(userID uint) error {
	args := m.Called(userID)
	return args.Error(0)
}

// MockPublisher is a mock implementation of services.EventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishOrderEvent(event models.OrderEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

// MockCatalogStore is a mock implementation of services.CatalogStore
type MockCatalogStore struct {
	mock.Mock
}

func (m *MockCatalogStore) ListCategories() ([]models.Category, error) {
	args := m.Called()
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCatalogStore) GetCategory(id uint) (*models.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCatalogStore) CreateCategory(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCatalogStore) ListProducts(filter repositories.ProductFilter) ([]models.Product, error) {
	args := m.Called(filter)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockCatalogStore) ListFeaturedProducts() ([]models.Product, error) {
	args := m.Called()
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockCatalogStore) ListProductsBySeller(sellerID uint) ([]models.Product, error) {
	args := m.Called(sellerID)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockCatalogStore) GetProduct(id uint) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockCatalogStore) CreateProduct(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockCatalogStore) UpdateProduct(id uint, patch models.ProductPatch) (*models.Product, error) {
	args := m.Called(id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockCatalogStore) DeactivateProduct(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockCatalogStore) PurgeProduct(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}
