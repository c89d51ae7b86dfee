package models

import "time"

// Role is the access level of a user.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleSeller   Role = "seller"
	RoleAdmin    Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleSeller, RoleAdmin:
		return true
	}
	return false
}

// User represents a marketplace account. ExternalID is the subject issued by the
// identity provider; the store never sees credentials.
type User struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	ExternalID string    `json:"external_id" gorm:"uniqueIndex;type:varchar(128);not null"`
	Email      string    `json:"email" gorm:"uniqueIndex;type:varchar(255);not null"`
	Name       string    `json:"name" gorm:"type:varchar(255);not null"`
	Role       Role      `json:"role" gorm:"type:varchar(16);not null;default:customer"`
	CreatedAt  time.Time `json:"created_at"`
}
