package domain

import "errors"

// Input and invariant violations.
var (
	ErrMissingField    = errors.New("required field is empty")
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
	ErrInvalidRating   = errors.New("rating must be between 0 and 5")
	ErrNilFood         = errors.New("food item is required")
	ErrInvalidUser     = errors.New("order must belong to a valid user")
	ErrEmptyOrder      = errors.New("order has no items")
	ErrUnknownFoodKind = errors.New("unknown food kind")
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
)

// Logical not-found results, distinct from store failures.
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrFoodNotFound   = errors.New("food not found")
	ErrOrderNotFound  = errors.New("order not found")
	ErrItemNotInOrder = errors.New("item not found in order")
)
