package repositories

import "errors"

var (
	// ErrNotFound is returned when an id references no row.
	ErrNotFound = errors.New("not found")
	// ErrUserNotRegistered is returned when an external identity maps to no user.
	// Callers must be able to tell it apart from ErrNotFound.
	ErrUserNotRegistered = errors.New("user not registered")
	// ErrInvalidArgument is returned for malformed input such as a non-positive quantity.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrConflict is returned when a uniqueness rule or a reference guard would be violated.
	ErrConflict = errors.New("conflict")
	// ErrInvalidTransition is returned when an order status change is not allowed.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrInsufficientStock is returned when an order asks for more units than are in stock.
	ErrInsufficientStock = errors.New("insufficient stock")
)
