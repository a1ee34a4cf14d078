package response

import (
	"testing"
	"time"

	"cookieshop/internal/domain/entities"
)

func TestFormatTimestamp(t *testing.T) {
	t.Run("utc renders with explicit offset", func(t *testing.T) {
		got := formatTimestamp(time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC))
		if got != "2026-03-05T09:00:00+00:00" {
			t.Fatalf("expected +00:00 offset, got %s", got)
		}
	})

	t.Run("non-utc input normalized to utc", func(t *testing.T) {
		loc := time.FixedZone("BRT", -3*60*60)
		got := formatTimestamp(time.Date(2026, 3, 5, 9, 0, 0, 0, loc))
		if got != "2026-03-05T12:00:00+00:00" {
			t.Fatalf("expected normalized UTC time, got %s", got)
		}
	})

	t.Run("sub-second precision carried when present", func(t *testing.T) {
		got := formatTimestamp(time.Date(2026, 3, 5, 9, 0, 0, 123456000, time.UTC))
		if got != "2026-03-05T09:00:00.123456+00:00" {
			t.Fatalf("unexpected rendering: %s", got)
		}
	})
}

func TestFromOrder(t *testing.T) {
	o := entities.Order{
		ID:                   3,
		CookiesAndQuantities: map[int]int{0: 11, 1: 6},
		OrderDate:            time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC),
		DeliverDate:          time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC),
		Status:               entities.StatusCooking,
	}

	got := FromOrder(o)
	if got.ID != 3 || got.Status != "COOKING" {
		t.Fatalf("unexpected response: %+v", got)
	}
	if got.OrderDate != "2026-03-01T12:30:00+00:00" || got.DeliverDate != "2026-03-05T09:00:00+00:00" {
		t.Fatalf("unexpected dates: %+v", got)
	}
	if got.CookiesAndQuantities[0] != 11 || got.CookiesAndQuantities[1] != 6 {
		t.Fatalf("unexpected quantities: %+v", got.CookiesAndQuantities)
	}
}

func TestFromOrders_Empty(t *testing.T) {
	got := FromOrders(nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", got)
	}
}
