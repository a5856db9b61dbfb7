package models

// Instrument is static reference data. Immutable for the lifetime of the
// process; LastTradedPrice is the price MARKET orders execute at.
type Instrument struct {
	Symbol          string  `json:"symbol"`
	Exchange        string  `json:"exchange"`
	InstrumentType  string  `json:"instrumentType"`
	LastTradedPrice float64 `json:"lastTradedPrice"`
}
