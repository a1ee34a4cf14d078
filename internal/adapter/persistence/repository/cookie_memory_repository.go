package repository

import (
	"context"
	"sync"

	"cookieshop/internal/domain/entities"
	"cookieshop/internal/usecase/interfaces"
)

// CookieMemoryRepository keeps the cookie collection in process memory.
//
// The RWMutex serializes writers so the sequential ID counter and the
// insertion-order index stay consistent; reads (including the price lookups
// the order store performs) take the shared lock only, so a cross-collection
// total computation can never deadlock against a cookie write.
type CookieMemoryRepository struct {
	mu      sync.RWMutex
	cookies map[int]entities.Cookie
	ids     []int // insertion order
	nextID  int
}

var (
	_ interfaces.ICookieRepository  = (*CookieMemoryRepository)(nil)
	_ interfaces.ICookiePriceLookup = (*CookieMemoryRepository)(nil)
)

func NewCookieMemoryRepository() *CookieMemoryRepository {
	return &CookieMemoryRepository{cookies: make(map[int]entities.Cookie)}
}

// Create assigns the next sequential ID and inserts the cookie. IDs are never
// reused, even after Delete.
func (r *CookieMemoryRepository) Create(_ context.Context, c entities.Cookie) (entities.Cookie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.ID = r.nextID
	r.nextID++
	r.cookies[c.ID] = c
	r.ids = append(r.ids, c.ID)
	return c, nil
}

func (r *CookieMemoryRepository) GetByID(_ context.Context, id int) (entities.Cookie, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.cookies[id]
	return c, ok, nil
}

// List returns all cookies in insertion order.
func (r *CookieMemoryRepository) List(_ context.Context) ([]entities.Cookie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Cookie, 0, len(r.ids))
	for _, id := range r.ids {
		out = append(out, r.cookies[id])
	}
	return out, nil
}

func (r *CookieMemoryRepository) Update(_ context.Context, c entities.Cookie) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.cookies[c.ID]; !ok {
		return false, nil
	}
	r.cookies[c.ID] = c
	return true, nil
}

func (r *CookieMemoryRepository) Delete(_ context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.cookies[id]; !ok {
		return false, nil
	}
	delete(r.cookies, id)
	for i, existing := range r.ids {
		if existing == id {
			r.ids = append(r.ids[:i], r.ids[i+1:]...)
			break
		}
	}
	return true, nil
}

// PriceByID implements the read-only lookup the order store uses for totals.
func (r *CookieMemoryRepository) PriceByID(_ context.Context, id int) (float64, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.cookies[id]
	if !ok {
		return 0, false, nil
	}
	return c.Price, true, nil
}
