package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"cookieshop/internal/domain/entities"
	"cookieshop/internal/usecase/interfaces"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrUnknownStatus = errors.New("unknown order status")
)

// InvalidTransitionError reports a status change the transition table does
// not permit.
type InvalidTransitionError struct {
	From entities.OrderStatus
	To   entities.OrderStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot transition order from %s to %s", e.From, e.To)
}

// OrderFilter narrows the order listing. Nil bounds are open; an empty Status
// matches everything. Totals are only computed when a total bound is set, to
// avoid price lookups the request does not need.
type OrderFilter struct {
	Status   string
	MinDate  *time.Time
	MaxDate  *time.Time
	MinTotal *float64
	MaxTotal *float64
}

//go:generate mockgen -source=order_usecase.go -destination=../adapter/http/handlers/mocks/order_usecase_mock.go -package=mocks

// IOrderUseCase exposes the order store operations.

type IOrderUseCase interface {
	List(ctx context.Context, filter OrderFilter) ([]entities.Order, error)
	Create(ctx context.Context, cookiesAndQuantities map[int]int, deliverDate time.Time) (entities.Order, error)
	GetByID(ctx context.Context, id int) (entities.Order, error)
	PatchStatus(ctx context.Context, id int, status string) (entities.Order, error)
	TotalAmount(ctx context.Context, o entities.Order) float64
}

// OrderUseCase owns the order collection. It holds a read-only price lookup
// into the cookie collection for total-amount computation; it never mutates
// cookies.
type OrderUseCase struct {
	repo   interfaces.IOrderRepository
	prices interfaces.ICookiePriceLookup
	log    *zap.Logger
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, prices interfaces.ICookiePriceLookup, log *zap.Logger) *OrderUseCase {
	return &OrderUseCase{repo: repo, prices: prices, log: log}
}

// List returns the orders matching the filter in insertion order. The status
// filter is a case-insensitive exact match; date bounds are inclusive on the
// order date.
func (u *OrderUseCase) List(ctx context.Context, filter OrderFilter) ([]entities.Order, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	var statusFilter entities.OrderStatus
	filterByStatus := filter.Status != ""
	if filterByStatus {
		// An unrecognized status name matches nothing.
		statusFilter, _ = entities.ParseOrderStatus(filter.Status)
	}

	matched := make([]entities.Order, 0, len(all))
	for _, o := range all {
		if filterByStatus && o.Status != statusFilter {
			continue
		}
		if filter.MinDate != nil && o.OrderDate.Before(*filter.MinDate) {
			continue
		}
		if filter.MaxDate != nil && o.OrderDate.After(*filter.MaxDate) {
			continue
		}
		if filter.MinTotal != nil || filter.MaxTotal != nil {
			total := u.TotalAmount(ctx, o)
			if filter.MinTotal != nil && total < *filter.MinTotal {
				continue
			}
			if filter.MaxTotal != nil && total > *filter.MaxTotal {
				continue
			}
		}
		matched = append(matched, o)
	}
	return matched, nil
}

// Create stores a new order with the order date set to the current time and
// the status forced to PENDING. Referenced cookie IDs are not checked for
// existence.
func (u *OrderUseCase) Create(ctx context.Context, cookiesAndQuantities map[int]int, deliverDate time.Time) (entities.Order, error) {
	o, err := entities.NewOrder(cookiesAndQuantities, time.Now().UTC(), deliverDate, entities.StatusPending)
	if err != nil {
		return entities.Order{}, err
	}
	return u.repo.Create(ctx, o)
}

func (u *OrderUseCase) GetByID(ctx context.Context, id int) (entities.Order, error) {
	o, found, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if !found {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

// PatchStatus moves an order to a new status. The status name is resolved
// case-insensitively and the change must be permitted by the transition table.
func (u *OrderUseCase) PatchStatus(ctx context.Context, id int, status string) (entities.Order, error) {
	o, found, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if !found {
		return entities.Order{}, ErrOrderNotFound
	}

	newStatus, ok := entities.ParseOrderStatus(status)
	if !ok {
		return entities.Order{}, ErrUnknownStatus
	}
	if !entities.CanTransition(o.Status, newStatus) {
		return entities.Order{}, &InvalidTransitionError{From: o.Status, To: newStatus}
	}

	if err := o.SetStatus(newStatus); err != nil {
		return entities.Order{}, err
	}
	found, err = u.repo.Update(ctx, o)
	if err != nil {
		return entities.Order{}, err
	}
	if !found {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

// TotalAmount sums price*quantity over the order's line items, rounded to
// cents. Line items whose cookie cannot be resolved contribute zero; the
// failure is logged rather than raised so one stale reference does not fail
// a whole listing.
func (u *OrderUseCase) TotalAmount(ctx context.Context, o entities.Order) float64 {
	total := 0.0
	for cookieID, quantity := range o.CookiesAndQuantities {
		price, found, err := u.prices.PriceByID(ctx, cookieID)
		if err != nil {
			u.log.Warn("price lookup failed, skipping line item",
				zap.Int("order_id", o.ID), zap.Int("cookie_id", cookieID), zap.Error(err))
			continue
		}
		if !found {
			u.log.Warn("cookie not found, skipping line item",
				zap.Int("order_id", o.ID), zap.Int("cookie_id", cookieID))
			continue
		}
		total += price * float64(quantity)
	}
	return math.Round(total*100) / 100
}
