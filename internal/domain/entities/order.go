package entities

import (
	"fmt"
	"time"
)

// Order is a customer request for a set of cookies in given quantities.
//
// CookiesAndQuantities maps cookie ID to quantity. Keys are not required to
// reference existing cookies; orders hold weak references and no referential
// integrity is enforced at construction time.

type Order struct {
	ID                   int
	CookiesAndQuantities map[int]int
	OrderDate            time.Time
	DeliverDate          time.Time
	Status               OrderStatus
}

// NewOrder validates the order fields and returns an Order with no ID yet;
// the repository assigns the next sequential ID on insert.
func NewOrder(cookiesAndQuantities map[int]int, orderDate, deliverDate time.Time, status OrderStatus) (Order, error) {
	if err := validateCookiesAndQuantities(cookiesAndQuantities); err != nil {
		return Order{}, err
	}
	if err := validateOrderTimestamp("order date", orderDate); err != nil {
		return Order{}, err
	}
	if err := validateOrderTimestamp("deliver date", deliverDate); err != nil {
		return Order{}, err
	}
	if !status.Valid() {
		return Order{}, newValidationError("order status", fmt.Sprintf("must be a valid order status, got %q", status))
	}

	return Order{
		CookiesAndQuantities: cookiesAndQuantities,
		OrderDate:            orderDate,
		DeliverDate:          deliverDate,
		Status:               status,
	}, nil
}

func (o *Order) SetCookiesAndQuantities(cookiesAndQuantities map[int]int) error {
	if err := validateCookiesAndQuantities(cookiesAndQuantities); err != nil {
		return err
	}
	o.CookiesAndQuantities = cookiesAndQuantities
	return nil
}

func (o *Order) SetOrderDate(orderDate time.Time) error {
	if err := validateOrderTimestamp("order date", orderDate); err != nil {
		return err
	}
	o.OrderDate = orderDate
	return nil
}

func (o *Order) SetDeliverDate(deliverDate time.Time) error {
	if err := validateOrderTimestamp("deliver date", deliverDate); err != nil {
		return err
	}
	o.DeliverDate = deliverDate
	return nil
}

// SetStatus checks membership only. Transition legality is the state
// machine's job and is enforced by the order store, not here.
func (o *Order) SetStatus(status OrderStatus) error {
	if !status.Valid() {
		return newValidationError("order status", fmt.Sprintf("must be a valid order status, got %q", status))
	}
	o.Status = status
	return nil
}

func validateCookiesAndQuantities(cookiesAndQuantities map[int]int) error {
	if cookiesAndQuantities == nil {
		return newValidationError("cookies_and_quantities", "must be a mapping of cookie ID to quantity")
	}
	for id, quantity := range cookiesAndQuantities {
		if id < 0 {
			return newValidationError("cookies_and_quantities", fmt.Sprintf("cookie ID must be a non-negative integer, found %d", id))
		}
		if quantity < 0 {
			return newValidationError("cookies_and_quantities", fmt.Sprintf("quantity must be a non-negative integer, found %d for cookie ID %d", quantity, id))
		}
	}
	return nil
}

func validateOrderTimestamp(field string, t time.Time) error {
	if t.IsZero() {
		return newValidationError(field, "must be a valid timestamp")
	}
	return nil
}
