package repository

import (
	"context"
	"sync"

	"cookieshop/internal/domain/entities"
	"cookieshop/internal/usecase/interfaces"
)

// OrderMemoryRepository keeps the order collection in process memory, with
// the same ID and locking discipline as CookieMemoryRepository. Orders are
// never deleted.
type OrderMemoryRepository struct {
	mu     sync.RWMutex
	orders map[int]entities.Order
	ids    []int // insertion order
	nextID int
}

var _ interfaces.IOrderRepository = (*OrderMemoryRepository)(nil)

func NewOrderMemoryRepository() *OrderMemoryRepository {
	return &OrderMemoryRepository{orders: make(map[int]entities.Order)}
}

func (r *OrderMemoryRepository) Create(_ context.Context, o entities.Order) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o.ID = r.nextID
	r.nextID++
	r.orders[o.ID] = o
	r.ids = append(r.ids, o.ID)
	return o, nil
}

func (r *OrderMemoryRepository) GetByID(_ context.Context, id int) (entities.Order, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[id]
	return o, ok, nil
}

// List returns all orders in insertion order.
func (r *OrderMemoryRepository) List(_ context.Context) ([]entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Order, 0, len(r.ids))
	for _, id := range r.ids {
		out = append(out, r.orders[id])
	}
	return out, nil
}

func (r *OrderMemoryRepository) Update(_ context.Context, o entities.Order) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[o.ID]; !ok {
		return false, nil
	}
	r.orders[o.ID] = o
	return true, nil
}
