package service

import "errors"

var (
	ErrEmptyCart              = errors.New("cart is empty")
	ErrInvalidStateTransition = errors.New("quote is not in the required state")
	ErrForbidden              = errors.New("forbidden")
	ErrQuoteExpired           = errors.New("quote has expired")
	ErrInvalidPricing         = errors.New("pricing inputs yield an invalid total")
	ErrInvalidStatus          = errors.New("invalid order status")

	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
)
