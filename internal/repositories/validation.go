package repositories

import (
	"fmt"
	"strings"

	"pasar/internal/models"

	"github.com/shopspring/decimal"
)

const (
	minRating = 1
	maxRating = 5
)

func validateQuantity(quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("%w: quantity must be at least 1, got %d", ErrInvalidArgument, quantity)
	}
	return nil
}

func validateRating(rating int) error {
	if rating < minRating || rating > maxRating {
		return fmt.Errorf("%w: rating must be between %d and %d, got %d", ErrInvalidArgument, minRating, maxRating, rating)
	}
	return nil
}

func validateNewUser(user *models.User) error {
	if strings.TrimSpace(user.ExternalID) == "" {
		return fmt.Errorf("%w: external identity is required", ErrInvalidArgument)
	}
	if strings.TrimSpace(user.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidArgument)
	}
	if user.Role == "" {
		user.Role = models.RoleCustomer
	}
	if !user.Role.Valid() {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidArgument, user.Role)
	}
	return nil
}

func validateProduct(p *models.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: product name is required", ErrInvalidArgument)
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidArgument)
	}
	if p.OriginalPrice != nil && p.OriginalPrice.IsNegative() {
		return fmt.Errorf("%w: original price must not be negative", ErrInvalidArgument)
	}
	if p.Stock < 0 {
		return fmt.Errorf("%w: stock must not be negative", ErrInvalidArgument)
	}
	return nil
}

func validateOrderItem(item models.OrderItem) error {
	if err := validateQuantity(item.Quantity); err != nil {
		return err
	}
	if item.Price.IsNegative() {
		return fmt.Errorf("%w: price of product %d must not be negative", ErrInvalidArgument, item.ProductID)
	}
	return nil
}

func validateOrder(order *models.Order, items []models.OrderItem) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: an order needs at least one item", ErrInvalidArgument)
	}
	if order.Total.IsNegative() {
		return fmt.Errorf("%w: order total must not be negative", ErrInvalidArgument)
	}
	for _, item := range items {
		if err := validateOrderItem(item); err != nil {
			return err
		}
	}
	return nil
}

// requestedUnits sums quantities per product so repeated lines are checked against stock together.
func requestedUnits(items []models.OrderItem) map[uint]int {
	units := make(map[uint]int, len(items))
	for _, item := range items {
		units[item.ProductID] += item.Quantity
	}
	return units
}

// averageRating is the mean of ratings rounded to two places.
func averageRating(ratings []int) decimal.Decimal {
	if len(ratings) == 0 {
		return decimal.Zero
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return decimal.NewFromInt(int64(sum)).Div(decimal.NewFromInt(int64(len(ratings)))).Round(2)
}

func notFound(entity string, id uint) error {
	return fmt.Errorf("%s with ID %d %w", entity, id, ErrNotFound)
}

func unavailable(productID uint) error {
	return fmt.Errorf("%w: product %d is not available", ErrInvalidArgument, productID)
}

func referencedByOrders(productID uint) error {
	return fmt.Errorf("%w: product %d is referenced by orders", ErrConflict, productID)
}
