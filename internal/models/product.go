package models

import (
	"maps"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a listing in the catalog.
type Product struct {
	ID             uint              `json:"id" gorm:"primaryKey"`
	Name           string            `json:"name" gorm:"type:varchar(255);not null"`
	Description    string            `json:"description" gorm:"type:text;not null"`
	Price          decimal.Decimal   `json:"price" gorm:"type:decimal(10,2);not null"`
	OriginalPrice  *decimal.Decimal  `json:"original_price" gorm:"type:decimal(10,2)"`
	CategoryID     *uint             `json:"category_id" gorm:"index"`
	SellerID       *uint             `json:"seller_id" gorm:"index"`
	Images         []string          `json:"images" gorm:"serializer:json;type:text"`
	Rating         decimal.Decimal   `json:"rating" gorm:"type:decimal(3,2);not null;default:0"`
	ReviewCount    int               `json:"review_count" gorm:"not null;default:0"`
	Stock          int               `json:"stock" gorm:"not null;default:0"`
	Tags           []string          `json:"tags" gorm:"serializer:json;type:text"`
	Specifications map[string]string `json:"specifications" gorm:"serializer:json;type:text"`
	IsActive       bool              `json:"is_active" gorm:"not null"`
	IsFeatured     bool              `json:"is_featured" gorm:"not null"`
	CreatedAt      time.Time         `json:"created_at"`
}

// Clone returns a deep copy of p, so callers can't reach into stored slices or maps.
func (p Product) Clone() Product {
	c := p
	if p.OriginalPrice != nil {
		op := *p.OriginalPrice
		c.OriginalPrice = &op
	}
	c.CategoryID = cloneID(p.CategoryID)
	c.SellerID = cloneID(p.SellerID)
	c.Images = slices.Clone(p.Images)
	c.Tags = slices.Clone(p.Tags)
	if p.Specifications != nil {
		c.Specifications = maps.Clone(p.Specifications)
	}
	return c
}

// ProductPatch is a partial product update. Nil fields are left untouched.
// Rating and review count are derived from reviews and cannot be patched.
type ProductPatch struct {
	Name           *string           `json:"name" validate:"omitempty,min=1,max=255"`
	Description    *string           `json:"description"`
	Price          *decimal.Decimal  `json:"price"`
	OriginalPrice  *decimal.Decimal  `json:"original_price"`
	CategoryID     *uint             `json:"category_id"`
	SellerID       *uint             `json:"seller_id"`
	Images         []string          `json:"images" validate:"omitempty,dive,url"`
	Tags           []string          `json:"tags"`
	Specifications map[string]string `json:"specifications"`
	Stock          *int              `json:"stock" validate:"omitempty,gte=0"`
	IsActive       *bool             `json:"is_active"`
	IsFeatured     *bool             `json:"is_featured"`
}

// Apply copies the set fields of patch onto p.
func (patch ProductPatch) Apply(p *Product) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.OriginalPrice != nil {
		op := *patch.OriginalPrice
		p.OriginalPrice = &op
	}
	if patch.CategoryID != nil {
		p.CategoryID = cloneID(patch.CategoryID)
	}
	if patch.SellerID != nil {
		p.SellerID = cloneID(patch.SellerID)
	}
	if patch.Images != nil {
		p.Images = slices.Clone(patch.Images)
	}
	if patch.Tags != nil {
		p.Tags = slices.Clone(patch.Tags)
	}
	if patch.Specifications != nil {
		p.Specifications = maps.Clone(patch.Specifications)
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.IsActive != nil {
		p.IsActive = *patch.IsActive
	}
	if patch.IsFeatured != nil {
		p.IsFeatured = *patch.IsFeatured
	}
}

func cloneID(id *uint) *uint {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
