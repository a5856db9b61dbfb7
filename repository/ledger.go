package repository

import "github.com/Sohan-bhatt/Bajaj-Trading-App-Prototype/models"

// Ledger maps each traded symbol to its current holding. A holding is
// created on a symbol's first trade and listed in first-traded order from
// then on, even after the position closes back to zero.
type Ledger struct {
	holdings map[string]models.Holding
	symbols  []string
}

func NewLedger() *Ledger {
	return &Ledger{holdings: make(map[string]models.Holding)}
}

// Get returns the holding for a symbol, or a zero-quantity default for a
// symbol that has never traded. The default is not persisted.
func (l *Ledger) Get(symbol string) models.Holding {
	if h, ok := l.holdings[symbol]; ok {
		return h
	}
	return models.Holding{Symbol: symbol}
}

// Upsert stores the holding, registering the symbol on first write.
func (l *Ledger) Upsert(holding models.Holding) {
	if _, ok := l.holdings[holding.Symbol]; !ok {
		l.symbols = append(l.symbols, holding.Symbol)
	}
	l.holdings[holding.Symbol] = holding
}

// ListAll returns every holding in first-traded order.
func (l *Ledger) ListAll() []models.Holding {
	out := make([]models.Holding, 0, len(l.symbols))
	for _, sym := range l.symbols {
		out = append(out, l.holdings[sym])
	}
	return out
}
