package repositories

import (
	"cmp"
	"slices"
	"strings"

	"pasar/internal/models"
)

func matchesFilter(p *models.Product, f ProductFilter) bool {
	if f.CategoryID != nil && (p.CategoryID == nil || *p.CategoryID != *f.CategoryID) {
		return false
	}
	if f.SellerID != nil && (p.SellerID == nil || *p.SellerID != *f.SellerID) {
		return false
	}
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			return false
		}
	}
	if f.MinPrice != nil && p.Price.LessThan(*f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && p.Price.GreaterThan(*f.MaxPrice) {
		return false
	}
	return true
}

// sortProducts orders products in place. Ties fall back to id ascending, except
// for newest where the later id wins. Unknown sort keys keep the input order.
func sortProducts(products []models.Product, sortBy string) {
	var less func(a, b models.Product) int
	switch sortBy {
	case SortPriceAsc:
		less = func(a, b models.Product) int {
			return cmp.Or(a.Price.Cmp(b.Price), cmp.Compare(a.ID, b.ID))
		}
	case SortPriceDesc:
		less = func(a, b models.Product) int {
			return cmp.Or(b.Price.Cmp(a.Price), cmp.Compare(a.ID, b.ID))
		}
	case SortRating:
		less = func(a, b models.Product) int {
			return cmp.Or(b.Rating.Cmp(a.Rating), cmp.Compare(a.ID, b.ID))
		}
	case SortNewest:
		less = func(a, b models.Product) int {
			return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), cmp.Compare(b.ID, a.ID))
		}
	default:
		return
	}
	slices.SortStableFunc(products, less)
}

// paginate applies offset then limit with slice semantics.
func paginate(products []models.Product, limit, offset int) []models.Product {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(products) {
		return []models.Product{}
	}
	products = products[offset:]
	if limit > 0 && limit < len(products) {
		products = products[:limit]
	}
	return products
}
