package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	all := []OrderStatus{OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled}
	allowed := map[OrderStatus][]OrderStatus{
		OrderPending:    {OrderProcessing, OrderCancelled},
		OrderProcessing: {OrderShipped, OrderCancelled},
		OrderShipped:    {OrderDelivered},
	}

	for _, from := range all {
		for _, to := range all {
			want := false
			for _, a := range allowed[from] {
				if a == to {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestOrderStatus_Valid(t *testing.T) {
	assert.True(t, OrderShipped.Valid())
	assert.False(t, OrderStatus("lost").Valid())
	assert.False(t, OrderStatus("").Valid())
}

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleSeller.Valid())
	assert.False(t, Role("root").Valid())
}

func TestCartTotal(t *testing.T) {
	lines := []CartLine{
		{CartItem: CartItem{Quantity: 2}, Product: Product{Price: decimal.RequireFromString("19.99")}},
		{CartItem: CartItem{Quantity: 1}, Product: Product{Price: decimal.RequireFromString("0.02")}},
	}
	assert.Equal(t, "40.00", CartTotal(lines).StringFixed(2))
	assert.True(t, CartTotal(nil).IsZero())
}

func TestOrderItem_Subtotal(t *testing.T) {
	item := OrderItem{Quantity: 3, Price: decimal.RequireFromString("1.10")}
	assert.Equal(t, "3.30", item.Subtotal().StringFixed(2))
}

func TestProductPatch_Apply(t *testing.T) {
	category := uint(1)
	p := Product{
		Name:       "Laptop",
		Price:      decimal.RequireFromString("1200"),
		CategoryID: &category,
		Tags:       []string{"a"},
		Stock:      3,
		IsActive:   true,
	}

	name := "Gaming Laptop"
	inactive := false
	ProductPatch{Name: &name, IsActive: &inactive, Tags: []string{}}.Apply(&p)

	assert.Equal(t, "Gaming Laptop", p.Name)
	assert.False(t, p.IsActive)
	assert.Empty(t, p.Tags, "a non-nil empty slice clears the field")
	assert.Equal(t, 3, p.Stock)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("1200")))
	assert.Equal(t, uint(1), *p.CategoryID)
}

func TestProduct_Clone(t *testing.T) {
	category := uint(1)
	p := Product{CategoryID: &category, Images: []string{"a"}, Specifications: map[string]string{"k": "v"}}
	c := p.Clone()
	*c.CategoryID = 2
	c.Images[0] = "b"
	c.Specifications["k"] = "w"

	assert.Equal(t, uint(1), *p.CategoryID)
	assert.Equal(t, "a", p.Images[0])
	assert.Equal(t, "v", p.Specifications["k"])
}

func TestProduct_JSONMoneyAsString(t *testing.T) {
	body, err := json.Marshal(Product{Name: "Mouse", Price: decimal.RequireFromString("25.50")})
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "25.5", out["price"])
	assert.Contains(t, out, "review_count")
	assert.Contains(t, out, "is_featured")
}
