package catalog

import "github.com/Sohan-bhatt/Bajaj-Trading-App-Prototype/models"

// Catalog is the read-only instrument reference data. It is fully populated
// at construction and never mutated, so it is safe for concurrent use
// without locking.
type Catalog struct {
	bySymbol map[string]models.Instrument
	ordered  []models.Instrument
}

var defaults = []models.Instrument{
	{Symbol: "AAPL", Exchange: "NASDAQ", InstrumentType: "EQUITY", LastTradedPrice: 190.25},
	{Symbol: "MSFT", Exchange: "NASDAQ", InstrumentType: "EQUITY", LastTradedPrice: 420.10},
	{Symbol: "TSLA", Exchange: "NASDAQ", InstrumentType: "EQUITY", LastTradedPrice: 245.80},
}

// New returns a catalog with the built-in instrument set.
func New() *Catalog {
	return NewFromInstruments(defaults)
}

// NewFromInstruments builds a catalog from an explicit instrument list,
// preserving list order for List.
func NewFromInstruments(instruments []models.Instrument) *Catalog {
	c := &Catalog{
		bySymbol: make(map[string]models.Instrument, len(instruments)),
		ordered:  make([]models.Instrument, 0, len(instruments)),
	}
	for _, inst := range instruments {
		if _, dup := c.bySymbol[inst.Symbol]; dup {
			continue
		}
		c.bySymbol[inst.Symbol] = inst
		c.ordered = append(c.ordered, inst)
	}
	return c
}

// Lookup reports the instrument for a symbol. Absence is signaled by the
// second return value; callers decide whether that is fatal.
func (c *Catalog) Lookup(symbol string) (models.Instrument, bool) {
	inst, ok := c.bySymbol[symbol]
	return inst, ok
}

// List returns all instruments in catalog order.
func (c *Catalog) List() []models.Instrument {
	out := make([]models.Instrument, len(c.ordered))
	copy(out, c.ordered)
	return out
}
