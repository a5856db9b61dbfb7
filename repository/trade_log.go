package repository

import "github.com/Sohan-bhatt/Bajaj-Trading-App-Prototype/models"

// TradeLog is the append-only sequence of executed trades.
type TradeLog struct {
	trades []models.Trade
}

func NewTradeLog() *TradeLog {
	return &TradeLog{}
}

// NextID returns the identifier the next appended trade must carry.
// Trade identifiers are 1-based and derived from the trade count.
func (l *TradeLog) NextID() int64 {
	return int64(len(l.trades)) + 1
}

func (l *TradeLog) Append(trade models.Trade) {
	l.trades = append(l.trades, trade)
}

// ListAll returns every trade in append order.
func (l *TradeLog) ListAll() []models.Trade {
	out := make([]models.Trade, len(l.trades))
	copy(out, l.trades)
	return out
}

func (l *TradeLog) Count() int {
	return len(l.trades)
}
