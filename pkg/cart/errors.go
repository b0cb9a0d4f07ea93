package cart

import "errors"

var (
	// ErrAuthenticationRequired is returned by mutations attempted without an
	// authenticated session. No network request is made.
	ErrAuthenticationRequired = errors.New("cart.authentication_required")

	// ErrInvalidQuantity is returned when a mutation is given a quantity
	// below one.
	ErrInvalidQuantity = errors.New("cart.invalid_quantity")
)
