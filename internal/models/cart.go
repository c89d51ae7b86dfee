package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is one (user, product) row of a shopping cart.
type CartItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex:idx_cart_user_product;not null"`
	ProductID uint      `json:"product_id" gorm:"uniqueIndex:idx_cart_user_product;not null"`
	Quantity  int       `json:"quantity" gorm:"not null;default:1"`
	CreatedAt time.Time `json:"created_at"`
}

// CartLine is a cart item joined with its live product.
type CartLine struct {
	CartItem
	Product Product `json:"product"`
}

// Cart is the materialised cart of one user.
type Cart struct {
	Items []CartLine      `json:"items"`
	Total decimal.Decimal `json:"total"`
}

// CartTotal sums live price times quantity over lines. It is computed on every
// read; prices are only frozen at checkout.
func CartTotal(lines []CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}
