package request

import (
	"errors"
	"time"
)

var ErrInvalidDeliverDate = errors.New("invalid deliver date")

// Timestamps cross the wire as ISO-8601. A trailing Z is accepted as UTC
// shorthand; a timestamp without an offset is taken as UTC.
const naiveTimestampLayout = "2006-01-02T15:04:05"

// ParseTimestamp parses an inbound ISO-8601 timestamp, normalized to UTC.
func ParseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(naiveTimestampLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// CreateOrderRequest is the POST /orders payload. The JSON object constraint
// forces string keys on the wire; the semantic key type is the integer cookie
// ID and decoding rejects non-numeric keys.
type CreateOrderRequest struct {
	CookiesAndQuantities map[int]int `json:"cookies_and_quantities"`
	DeliverDate          string      `json:"deliver_date" binding:"required"`
}

// ResolveDeliverDate parses the deliver date, normalized to UTC.
func (r CreateOrderRequest) ResolveDeliverDate() (time.Time, error) {
	t, err := ParseTimestamp(r.DeliverDate)
	if err != nil {
		return time.Time{}, ErrInvalidDeliverDate
	}
	return t, nil
}

// PatchOrderStatusRequest is the PATCH /orders/:id payload. Status is a
// pointer so a missing field (400) is distinguishable from an unrecognized
// value (404).
type PatchOrderStatusRequest struct {
	Status *string `json:"status"`
}
