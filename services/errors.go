package services

import (
	"errors"
	"strconv"
	"strings"
)

var (
	ErrPlantNotFound      = errors.New("plant not found")
	ErrCartItemNotFound   = errors.New("cart item not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("email or password incorrect")
	ErrCartEmpty          = errors.New("cart is empty")
	ErrCartLineLimit      = errors.New("cart line quantity limit exceeded")
	ErrInvalidAction      = errors.New("action must be increase or decrease")
)

// InsufficientStockError reports how many units were actually on hand so
// the caller can tell the shopper. errors.Is(err, ErrInsufficientStock)
// still matches it.
type InsufficientStockError struct {
	Available int
}

func (e *InsufficientStockError) Error() string {
	return "insufficient stock: only " + strconv.Itoa(e.Available) + " available"
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// ValidationErrors carries every violation found in a request body so the
// client gets the full list, not just the first failure.
type ValidationErrors []string

func (v ValidationErrors) Error() string {
	return strings.Join(v, "; ")
}
