package models

// Category groups products for browsing.
type Category struct {
	ID   uint    `json:"id" gorm:"primaryKey"`
	Name string  `json:"name" gorm:"type:varchar(100);not null"`
	Slug string  `json:"slug" gorm:"uniqueIndex;type:varchar(100);not null"`
	Icon *string `json:"icon"`
}
