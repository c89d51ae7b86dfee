package services_test

import (
	"testing"

	"pasar/internal/models"
	"pasar/internal/repositories"
	"pasar/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shop struct {
	store    *repositories.MemoryStore
	buyer    models.User
	other    models.User
	merchant models.User
	laptop   models.Product
	mouse    models.Product
}

func newShop(t *testing.T) *shop {
	t.Helper()
	s := &shop{
		store:    repositories.NewMemoryStore(),
		buyer:    models.User{ExternalID: "buyer", Email: "buyer@example.com", Name: "Buyer"},
		other:    models.User{ExternalID: "other", Email: "other@example.com", Name: "Other"},
		merchant: models.User{ExternalID: "merchant", Email: "merchant@example.com", Name: "Merchant", Role: models.RoleSeller},
	}
	for _, u := range []*models.User{&s.buyer, &s.other, &s.merchant} {
		require.NoError(t, s.store.CreateUser(u))
	}
	s.laptop = models.Product{Name: "Laptop", Price: money("1200"), Stock: 5, SellerID: &s.merchant.ID}
	s.mouse = models.Product{Name: "Mouse", Price: money("25"), Stock: 5, SellerID: &s.merchant.ID}
	require.NoError(t, s.store.CreateProduct(&s.laptop))
	require.NoError(t, s.store.CreateProduct(&s.mouse))
	return s
}

func TestCartService(t *testing.T) {
	s := newShop(t)
	service := services.NewCartService(s.store)

	laptopRow, err := service.AddItem(s.buyer.ID, s.laptop.ID, 1)
	require.NoError(t, err)
	_, err = service.AddItem(s.buyer.ID, s.mouse.ID, 2)
	require.NoError(t, err)

	cart, err := service.GetCart(s.buyer.ID)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 2)
	assert.Equal(t, "1250.00", cart.Total.StringFixed(2))

	_, err = s.store.UpdateProduct(s.mouse.ID, models.ProductPatch{Price: moneyPtr("30")})
	require.NoError(t, err)
	cart, err = service.GetCart(s.buyer.ID)
	require.NoError(t, err)
	assert.Equal(t, "1260.00", cart.Total.StringFixed(2), "the total follows live prices")

	_, err = service.SetQuantity(s.other.ID, laptopRow.ID, 3)
	assert.ErrorIs(t, err, services.ErrForbidden)
	assert.ErrorIs(t, service.RemoveItem(s.other.ID, laptopRow.ID), services.ErrForbidden)

	updated, err := service.SetQuantity(s.buyer.ID, laptopRow.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Quantity)

	removed, err := service.SetQuantity(s.buyer.ID, laptopRow.ID, 0)
	require.NoError(t, err)
	assert.Nil(t, removed, "zero quantity removes the row")

	cart, err = service.GetCart(s.buyer.ID)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)

	require.NoError(t, service.Clear(s.buyer.ID))
	cart, err = service.GetCart(s.buyer.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.True(t, cart.Total.IsZero())
}

func TestOrderService_CheckoutClearsCart(t *testing.T) {
	s := newShop(t)
	carts := services.NewCartService(s.store)
	orders := services.NewOrderService(s.store, nil)

	_, err := carts.AddItem(s.buyer.ID, s.mouse.ID, 2)
	require.NoError(t, err)

	order, err := orders.PlaceOrder(s.buyer.ID, services.PlaceOrderInput{
		Items: []services.LineItem{{ProductID: s.mouse.ID, Quantity: 2}},
		Total: money("50"),
	})
	require.NoError(t, err)
	assert.Equal(t, models.OrderPending, order.Status)

	cart, err := carts.GetCart(s.buyer.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	detail, err := orders.GetOrder(&s.buyer, order.ID)
	require.NoError(t, err)
	require.Len(t, detail.Items, 1)
	assert.True(t, detail.Items[0].Price.Equal(money("25")))
}

func TestReviewAndWishlistServices(t *testing.T) {
	s := newShop(t)
	reviews := services.NewReviewService(s.store)
	wishlist := services.NewWishlistService(s.store)

	comment := "Solid"
	review, err := reviews.AddReview(s.buyer.ID, s.laptop.ID, 4, &comment)
	require.NoError(t, err)
	assert.NotZero(t, review.ID)
	_, err = reviews.AddReview(s.other.ID, s.laptop.ID, 5, nil)
	require.NoError(t, err)

	entries, err := reviews.ListReviews(s.laptop.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	product, err := s.store.GetProduct(s.laptop.ID)
	require.NoError(t, err)
	assert.Equal(t, "4.50", product.Rating.StringFixed(2))

	_, err = reviews.AddReview(s.buyer.ID, s.laptop.ID, 9, nil)
	assert.ErrorIs(t, err, repositories.ErrInvalidArgument)

	_, err = wishlist.Add(s.buyer.ID, s.mouse.ID)
	require.NoError(t, err)
	lines, err := wishlist.List(s.buyer.ID)
	require.NoError(t, err)
	assert.Len(t, lines, 1)
	require.NoError(t, wishlist.Remove(s.buyer.ID, s.mouse.ID))
	assert.ErrorIs(t, wishlist.Remove(s.buyer.ID, s.mouse.ID), repositories.ErrNotFound)
}
