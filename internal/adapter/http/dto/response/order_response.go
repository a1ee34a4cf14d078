package response

import (
	"time"

	"cookieshop/internal/domain/entities"
)

// Timestamps serialize as ISO-8601 with an explicit +00:00 UTC offset, never
// the Z shorthand. Sub-second precision is carried only when present.
const timestampLayout = "2006-01-02T15:04:05.999999-07:00"

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

type OrderResponse struct {
	ID                   int         `json:"id"`
	CookiesAndQuantities map[int]int `json:"cookies_and_quantities"`
	OrderDate            string      `json:"order_date"`
	DeliverDate          string      `json:"deliver_date"`
	Status               string      `json:"status"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:                   o.ID,
		CookiesAndQuantities: o.CookiesAndQuantities,
		OrderDate:            formatTimestamp(o.OrderDate),
		DeliverDate:          formatTimestamp(o.DeliverDate),
		Status:               string(o.Status),
	}
}

// FromOrders maps a listing; an empty result serializes as [] rather than
// null.
func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
