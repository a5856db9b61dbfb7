package models

// PlaceOrderRequest is the placement payload. Quantity and Price are
// validated by the execution engine so rejections carry the engine's own
// error taxonomy; the validator tags only guard the closed enum sets.
type PlaceOrderRequest struct {
	Symbol    string    `json:"symbol" validate:"required"`
	Side      Side      `json:"side" validate:"required,oneof=BUY SELL"`
	OrderType OrderType `json:"orderType" validate:"required,oneof=MARKET LIMIT"`
	Quantity  int       `json:"quantity"`
	Price     *float64  `json:"price,omitempty"`
}
