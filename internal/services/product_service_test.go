package services_test

import (
	"testing"

	"pasar/internal/models"
	"pasar/internal/repositories"
	"pasar/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func ownedBy(id uint) *models.Product {
	return &models.Product{ID: 5, Name: "Laptop", Price: money("1200"), SellerID: &id}
}

func TestCatalogService_ListProducts(t *testing.T) {
	store := new(MockCatalogStore)
	service := services.NewCatalogService(store)

	filter := repositories.ProductFilter{Search: "lap", SortBy: repositories.SortPriceAsc}
	store.On("ListProducts", filter).Return([]models.Product{*ownedBy(seller.ID)}, nil).Once()

	products, err := service.ListProducts(filter)
	require.NoError(t, err)
	assert.Len(t, products, 1)
	store.AssertExpectations(t)
}

func TestCatalogService_CreateProduct(t *testing.T) {
	store := new(MockCatalogStore)
	service := services.NewCatalogService(store)

	someoneElse := uint(77)
	store.On("CreateProduct", mock.MatchedBy(func(p *models.Product) bool {
		return p.SellerID != nil && *p.SellerID == seller.ID
	})).Return(nil).Once()
	err := service.CreateProduct(seller, &models.Product{Name: "Laptop", SellerID: &someoneElse})
	assert.NoError(t, err, "sellers always list as themselves")

	store.On("CreateProduct", mock.MatchedBy(func(p *models.Product) bool {
		return p.SellerID != nil && *p.SellerID == someoneElse
	})).Return(nil).Once()
	err = service.CreateProduct(admin, &models.Product{Name: "Laptop", SellerID: &someoneElse})
	assert.NoError(t, err, "admins list for any seller")

	err = service.CreateProduct(customer, &models.Product{Name: "Laptop"})
	assert.ErrorIs(t, err, services.ErrForbidden)

	store.AssertExpectations(t)
}

func TestCatalogService_UpdateProduct(t *testing.T) {
	store := new(MockCatalogStore)
	service := services.NewCatalogService(store)
	store.On("GetProduct", uint(5)).Return(ownedBy(seller.ID), nil)

	newSeller := uint(9)
	name := "Gaming Laptop"
	store.On("UpdateProduct", uint(5), models.ProductPatch{Name: &name}).Return(ownedBy(seller.ID), nil).Once()
	_, err := service.UpdateProduct(seller, 5, models.ProductPatch{Name: &name, SellerID: &newSeller})
	assert.NoError(t, err, "a seller's patch cannot hand over ownership")

	store.On("UpdateProduct", uint(5), models.ProductPatch{SellerID: &newSeller}).Return(ownedBy(newSeller), nil).Once()
	_, err = service.UpdateProduct(admin, 5, models.ProductPatch{SellerID: &newSeller})
	assert.NoError(t, err)

	other := &models.User{ID: 8, Role: models.RoleSeller}
	_, err = service.UpdateProduct(other, 5, models.ProductPatch{Name: &name})
	assert.ErrorIs(t, err, services.ErrForbidden)

	store.AssertExpectations(t)
}

func TestCatalogService_DeleteProduct(t *testing.T) {
	store := new(MockCatalogStore)
	service := services.NewCatalogService(store)
	store.On("GetProduct", uint(5)).Return(ownedBy(seller.ID), nil)
	store.On("GetProduct", uint(99)).Return(nil, repositories.ErrNotFound)

	store.On("DeactivateProduct", uint(5)).Return(nil).Once()
	assert.NoError(t, service.DeleteProduct(seller, 5, false))

	assert.ErrorIs(t, service.DeleteProduct(seller, 5, true), services.ErrForbidden, "only admins purge")

	store.On("PurgeProduct", uint(5)).Return(repositories.ErrConflict).Once()
	assert.ErrorIs(t, service.DeleteProduct(admin, 5, true), repositories.ErrConflict)

	assert.ErrorIs(t, service.DeleteProduct(customer, 5, false), services.ErrForbidden)
	assert.ErrorIs(t, service.DeleteProduct(admin, 99, false), repositories.ErrNotFound)

	store.AssertExpectations(t)
}
