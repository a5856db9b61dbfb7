package models

import "time"

type Order struct {
	OrderID       int64       `json:"orderId"`
	Symbol        string      `json:"symbol"`
	Side          Side        `json:"side"`
	OrderType     OrderType   `json:"orderType"`
	Quantity      int         `json:"quantity"`
	Price         *float64    `json:"price,omitempty"` // requested price, LIMIT orders only
	ExecutedPrice float64     `json:"executedPrice"`
	Status        OrderStatus `json:"status"`
	Timestamp     time.Time   `json:"timestamp"` // UTC
}

// Trade is the immutable record of one executed order. OrderID is a
// back-reference for lookups, not an ownership relation.
type Trade struct {
	TradeID   int64     `json:"tradeId"`
	OrderID   int64     `json:"orderId"`
	Symbol    string    `json:"symbol"`
	Side      Side      `json:"side"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
	Timestamp time.Time `json:"timestamp"`
}

// Holding is a symbol's current position. AveragePrice is the weighted
// average cost rounded to 2 decimals; it is 0 whenever Quantity is 0.
type Holding struct {
	Symbol       string  `json:"symbol"`
	Quantity     int     `json:"quantity"`
	AveragePrice float64 `json:"averagePrice"`
}
