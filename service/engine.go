package service

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Sohan-bhatt/Bajaj-Trading-App-Prototype/models"
	"github.com/Sohan-bhatt/Bajaj-Trading-App-Prototype/repository"
)

// Catalog is the engine's read-only collaborator for instrument existence
// and last-traded-price lookups.
type Catalog interface {
	Lookup(symbol string) (models.Instrument, bool)
}

// TradePublisher receives each executed trade after the placement commits.
// Implementations must tolerate being called from concurrent placements.
type TradePublisher interface {
	Publish(ctx context.Context, trade models.Trade)
}

// Engine validates and executes orders against the three stores. Every
// order that passes validation executes immediately at a price fixed at
// placement time; there is no resting book, partial fill, or cancellation.
//
// A single RWMutex owns the stores and both sequence counters: placements
// take the write lock around the whole validate-then-mutate sequence, so
// two concurrent SELLs can never both pass the holdings check against a
// stale quantity. Queries take the read lock and observe a consistent
// snapshot.
type Engine struct {
	mu        sync.RWMutex
	catalog   Catalog
	orders    *repository.OrderStore
	trades    *repository.TradeLog
	ledger    *repository.Ledger
	orderSeq  int64
	publisher TradePublisher // optional, may be nil
}

func NewEngine(catalog Catalog, orders *repository.OrderStore, trades *repository.TradeLog, ledger *repository.Ledger, publisher TradePublisher) *Engine {
	return &Engine{
		catalog:   catalog,
		orders:    orders,
		trades:    trades,
		ledger:    ledger,
		publisher: publisher,
	}
}

// PlaceOrder validates the request, executes it, and records the order,
// trade, and holding update as one atomic unit. Rejections are returned as
// the sentinel errors in errors.go and leave no state behind.
func (e *Engine) PlaceOrder(ctx context.Context, req *models.PlaceOrderRequest) (*models.PlaceOrderResponse, error) {
	e.mu.Lock()
	order, trade, err := e.execute(req)
	e.mu.Unlock()
	if err != nil {
		return nil, err
	}

	// Published outside the lock; the placement is already committed.
	if e.publisher != nil {
		e.publisher.Publish(ctx, trade)
	}

	return &models.PlaceOrderResponse{OrderID: order.OrderID, Status: order.Status}, nil
}

// execute runs under the write lock. Validation order is fixed so rejection
// reporting is deterministic: quantity, symbol, limit price, holdings.
func (e *Engine) execute(req *models.PlaceOrderRequest) (models.Order, models.Trade, error) {
	if req.Quantity <= 0 {
		return models.Order{}, models.Trade{}, ErrInvalidQuantity
	}

	instrument, ok := e.catalog.Lookup(req.Symbol)
	if !ok {
		return models.Order{}, models.Trade{}, ErrUnknownInstrument
	}

	if req.OrderType == models.OrderTypeLimit && (req.Price == nil || *req.Price <= 0) {
		return models.Order{}, models.Trade{}, ErrMissingLimitPrice
	}

	if req.Side == models.SideSell {
		if e.ledger.Get(req.Symbol).Quantity < req.Quantity {
			return models.Order{}, models.Trade{}, ErrInsufficientHoldings
		}
	}

	// Executed price is fixed here and never recomputed: the supplied price
	// for LIMIT, the catalog's last traded price for MARKET.
	executedPrice := instrument.LastTradedPrice
	if req.OrderType == models.OrderTypeLimit {
		executedPrice = *req.Price
	}

	now := time.Now().UTC()

	e.orderSeq++
	order := models.Order{
		OrderID:       e.orderSeq,
		Symbol:        req.Symbol,
		Side:          req.Side,
		OrderType:     req.OrderType,
		Quantity:      req.Quantity,
		Price:         req.Price,
		ExecutedPrice: executedPrice,
		Status:        models.StatusPlaced,
		Timestamp:     now,
	}

	trade := models.Trade{
		TradeID:   e.trades.NextID(),
		OrderID:   order.OrderID,
		Symbol:    order.Symbol,
		Side:      order.Side,
		Quantity:  order.Quantity,
		Price:     executedPrice,
		Timestamp: now,
	}

	order.Status = models.StatusExecuted
	e.orders.Insert(order)
	e.trades.Append(trade)
	e.ledger.Upsert(applyTrade(e.ledger.Get(order.Symbol), trade))

	return order, trade, nil
}

// applyTrade folds one executed trade into a holding. BUY recomputes the
// weighted average cost rounded to 2 decimals; SELL reduces the quantity
// and resets the average cost to 0 when the position fully closes.
func applyTrade(holding models.Holding, trade models.Trade) models.Holding {
	qty := decimal.NewFromInt(int64(trade.Quantity))

	if trade.Side == models.SideBuy {
		oldCost := decimal.NewFromFloat(holding.AveragePrice).Mul(decimal.NewFromInt(int64(holding.Quantity)))
		newCost := oldCost.Add(decimal.NewFromFloat(trade.Price).Mul(qty))
		newQty := holding.Quantity + trade.Quantity
		holding.Quantity = newQty
		holding.AveragePrice = newCost.Div(decimal.NewFromInt(int64(newQty))).Round(2).InexactFloat64()
		return holding
	}

	holding.Quantity -= trade.Quantity
	if holding.Quantity <= 0 {
		holding.Quantity = 0
		holding.AveragePrice = 0
	}
	return holding
}

// GetOrder returns the order for an identifier, or ErrOrderNotFound.
func (e *Engine) GetOrder(ctx context.Context, orderID int64) (*models.Order, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	order, ok := e.orders.Get(orderID)
	if !ok {
		return nil, ErrOrderNotFound
	}
	return &order, nil
}

// ListTrades returns every executed trade in append order.
func (e *Engine) ListTrades(ctx context.Context) []models.Trade {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.trades.ListAll()
}

// GetPortfolio joins the ledger against the catalog, deriving each
// holding's current value from the last traded price at query time.
func (e *Engine) GetPortfolio(ctx context.Context) []models.PortfolioEntry {
	e.mu.RLock()
	defer e.mu.RUnlock()

	holdings := e.ledger.ListAll()
	out := make([]models.PortfolioEntry, 0, len(holdings))
	for _, h := range holdings {
		var ltp float64
		if inst, ok := e.catalog.Lookup(h.Symbol); ok {
			ltp = inst.LastTradedPrice
		}
		value := decimal.NewFromFloat(ltp).
			Mul(decimal.NewFromInt(int64(h.Quantity))).
			Round(2).
			InexactFloat64()
		out = append(out, models.PortfolioEntry{
			Symbol:       h.Symbol,
			Quantity:     h.Quantity,
			AveragePrice: h.AveragePrice,
			CurrentValue: value,
		})
	}
	return out
}
