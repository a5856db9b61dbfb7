package models

type PlaceOrderResponse struct {
	OrderID int64       `json:"orderId"`
	Status  OrderStatus `json:"status"`
}

// PortfolioEntry joins a Holding with the catalog's current price.
// CurrentValue = Quantity x LastTradedPrice, rounded to 2 decimals,
// recomputed on every query.
type PortfolioEntry struct {
	Symbol       string  `json:"symbol"`
	Quantity     int     `json:"quantity"`
	AveragePrice float64 `json:"averagePrice"`
	CurrentValue float64 `json:"currentValue"`
}
