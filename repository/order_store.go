// Package repository holds the three in-memory stores behind the execution
// engine: the order store, the trade log, and the position ledger. The
// stores carry no locking of their own; the engine serializes every access
// under a single lock so the four-part placement side effect stays atomic.
package repository

import "github.com/Sohan-bhatt/Bajaj-Trading-App-Prototype/models"

type OrderStore struct {
	orders map[int64]models.Order
}

func NewOrderStore() *OrderStore {
	return &OrderStore{orders: make(map[int64]models.Order)}
}

// Insert stores a new order. The engine's sequence generator guarantees the
// identifier is unused.
func (s *OrderStore) Insert(order models.Order) {
	s.orders[order.OrderID] = order
}

// Get looks up an order by identifier.
func (s *OrderStore) Get(orderID int64) (models.Order, bool) {
	order, ok := s.orders[orderID]
	return order, ok
}

// Count returns how many orders have been stored.
func (s *OrderStore) Count() int {
	return len(s.orders)
}
