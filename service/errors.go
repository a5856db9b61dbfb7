package service

import "errors"

// Placement rejections are permanent and caller-correctable: a rejected
// request leaves the order store, trade log, and ledger untouched, and
// retrying the same request yields the same rejection.
var (
	ErrInvalidQuantity      = errors.New("quantity must be greater than 0")
	ErrUnknownInstrument    = errors.New("instrument not found")
	ErrMissingLimitPrice    = errors.New("price is required for LIMIT orders")
	ErrInsufficientHoldings = errors.New("insufficient holdings to sell")

	ErrOrderNotFound = errors.New("order not found")
)

// IsRejection reports whether err is one of the placement rejection reasons,
// as opposed to a query miss.
func IsRejection(err error) bool {
	return errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrUnknownInstrument) ||
		errors.Is(err, ErrMissingLimitPrice) ||
		errors.Is(err, ErrInsufficientHoldings)
}
