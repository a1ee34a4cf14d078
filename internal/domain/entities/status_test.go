package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderStatus(t *testing.T) {
	for _, input := range []string{"PENDING", "pending", "Pending", " pending "} {
		status, ok := ParseOrderStatus(input)
		require.True(t, ok, "input %q", input)
		assert.Equal(t, StatusPending, status)
	}

	for _, input := range []string{"", "BAKING", "DONE", "pending cancel"} {
		_, ok := ParseOrderStatus(input)
		assert.False(t, ok, "input %q", input)
	}
}

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to OrderStatus }{
		{StatusPending, StatusCooking},
		{StatusPending, StatusCancelled},
		{StatusCooking, StatusShipping},
		{StatusCooking, StatusCancelled},
		{StatusShipping, StatusDelivered},
		{StatusShipping, StatusCancelled},
	}
	for _, tc := range allowed {
		assert.True(t, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}

	statuses := []OrderStatus{StatusPending, StatusCooking, StatusShipping, StatusDelivered, StatusCancelled}

	t.Run("terminal states have no outgoing transitions", func(t *testing.T) {
		for _, to := range statuses {
			assert.False(t, CanTransition(StatusDelivered, to), "DELIVERED -> %s", to)
			assert.False(t, CanTransition(StatusCancelled, to), "CANCELLED -> %s", to)
		}
	})

	t.Run("pending is never reachable", func(t *testing.T) {
		for _, from := range statuses {
			assert.False(t, CanTransition(from, StatusPending), "%s -> PENDING", from)
		}
	})

	t.Run("same-state transitions are rejected", func(t *testing.T) {
		for _, s := range statuses {
			assert.False(t, CanTransition(s, s), "%s -> %s", s, s)
		}
	})

	t.Run("skipping a step is rejected", func(t *testing.T) {
		assert.False(t, CanTransition(StatusPending, StatusShipping))
		assert.False(t, CanTransition(StatusPending, StatusDelivered))
		assert.False(t, CanTransition(StatusCooking, StatusDelivered))
	})

	t.Run("unknown status never transitions", func(t *testing.T) {
		assert.False(t, CanTransition(OrderStatus("BAKING"), StatusCooking))
	})
}
