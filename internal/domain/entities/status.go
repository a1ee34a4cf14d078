package entities

import "strings"

// OrderStatus represents the lifecycle state of an Order.
//
// PENDING is the initial state, set by the order store at creation and never
// reachable by transition. DELIVERED and CANCELLED are terminal.

type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusCooking   OrderStatus = "COOKING"
	StatusShipping  OrderStatus = "SHIPPING"
	StatusDelivered OrderStatus = "DELIVERED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// ParseOrderStatus resolves a status name case-insensitively.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	status := OrderStatus(strings.ToUpper(strings.TrimSpace(s)))
	if !status.Valid() {
		return "", false
	}
	return status, true
}

// Valid reports whether the status is a member of the enumeration.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusCooking, StatusShipping, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Allowed state transitions. Anything not listed, including same-state, is
// rejected.
var transitions = map[OrderStatus]map[OrderStatus]bool{
	StatusPending:   {StatusCooking: true, StatusCancelled: true},
	StatusCooking:   {StatusShipping: true, StatusCancelled: true},
	StatusShipping:  {StatusDelivered: true, StatusCancelled: true},
	StatusDelivered: {},
	StatusCancelled: {},
}

// CanTransition reports whether moving from one status to another is legal.
func CanTransition(from, to OrderStatus) bool {
	next := transitions[from]
	return next != nil && next[to]
}
