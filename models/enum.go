package models

type Side string
type OrderType string
type OrderStatus string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"

	OrderTypeMarket OrderType = "MARKET"
	OrderTypeLimit  OrderType = "LIMIT"

	// An order is created as PLACED and transitions to EXECUTED within the
	// same placement call. No other states are reachable.
	StatusPlaced   OrderStatus = "PLACED"
	StatusExecuted OrderStatus = "EXECUTED"
)
