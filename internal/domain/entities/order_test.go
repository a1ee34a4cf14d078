package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	orderDate := time.Date(2025, 4, 20, 12, 0, 0, 0, time.UTC)
	deliverDate := time.Date(2025, 4, 21, 15, 30, 0, 0, time.UTC)

	t.Run("valid", func(t *testing.T) {
		o, err := NewOrder(map[int]int{0: 11, 1: 6}, orderDate, deliverDate, StatusPending)
		require.NoError(t, err)
		assert.Equal(t, map[int]int{0: 11, 1: 6}, o.CookiesAndQuantities)
		assert.Equal(t, orderDate, o.OrderDate)
		assert.Equal(t, deliverDate, o.DeliverDate)
		assert.Equal(t, StatusPending, o.Status)
	})

	t.Run("empty map is valid", func(t *testing.T) {
		_, err := NewOrder(map[int]int{}, orderDate, deliverDate, StatusPending)
		require.NoError(t, err)
	})

	t.Run("keys may reference cookies that do not exist", func(t *testing.T) {
		_, err := NewOrder(map[int]int{9999: 1}, orderDate, deliverDate, StatusPending)
		require.NoError(t, err)
	})

	cases := []struct {
		name        string
		cookies     map[int]int
		orderDate   time.Time
		deliverDate time.Time
		status      OrderStatus
	}{
		{name: "nil map", cookies: nil, orderDate: orderDate, deliverDate: deliverDate, status: StatusPending},
		{name: "negative key", cookies: map[int]int{-1: 2}, orderDate: orderDate, deliverDate: deliverDate, status: StatusPending},
		{name: "negative quantity", cookies: map[int]int{0: -2}, orderDate: orderDate, deliverDate: deliverDate, status: StatusPending},
		{name: "zero order date", cookies: map[int]int{}, orderDate: time.Time{}, deliverDate: deliverDate, status: StatusPending},
		{name: "zero deliver date", cookies: map[int]int{}, orderDate: orderDate, deliverDate: time.Time{}, status: StatusPending},
		{name: "bad status", cookies: map[int]int{}, orderDate: orderDate, deliverDate: deliverDate, status: OrderStatus("BAKING")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewOrder(tc.cookies, tc.orderDate, tc.deliverDate, tc.status)
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestOrderSetters(t *testing.T) {
	orderDate := time.Date(2025, 4, 20, 12, 0, 0, 0, time.UTC)
	deliverDate := time.Date(2025, 4, 21, 15, 30, 0, 0, time.UTC)
	o, err := NewOrder(map[int]int{0: 1}, orderDate, deliverDate, StatusPending)
	require.NoError(t, err)

	t.Run("set cookies and quantities", func(t *testing.T) {
		require.NoError(t, o.SetCookiesAndQuantities(map[int]int{2: 3}))
		assert.Equal(t, map[int]int{2: 3}, o.CookiesAndQuantities)

		assert.Error(t, o.SetCookiesAndQuantities(nil))
		assert.Error(t, o.SetCookiesAndQuantities(map[int]int{-1: 1}))
		assert.Equal(t, map[int]int{2: 3}, o.CookiesAndQuantities)
	})

	t.Run("set dates", func(t *testing.T) {
		later := deliverDate.Add(24 * time.Hour)
		require.NoError(t, o.SetOrderDate(later))
		require.NoError(t, o.SetDeliverDate(later))
		assert.Error(t, o.SetOrderDate(time.Time{}))
		assert.Error(t, o.SetDeliverDate(time.Time{}))
		assert.Equal(t, later, o.OrderDate)
		assert.Equal(t, later, o.DeliverDate)
	})

	t.Run("set status checks membership only", func(t *testing.T) {
		// No transition gate here: PENDING -> DELIVERED is fine at the
		// entity level, the order store enforces the state machine.
		require.NoError(t, o.SetStatus(StatusDelivered))
		assert.Equal(t, StatusDelivered, o.Status)

		assert.Error(t, o.SetStatus(OrderStatus("BAKING")))
		assert.Equal(t, StatusDelivered, o.Status)
	})
}
