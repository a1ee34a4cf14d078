package interfaces

import "context"

//go:generate mockgen -source=price_lookup_interface.go -destination=mocks/price_lookup_mock.go -package=mock_interfaces

// ICookiePriceLookup is the read-only capability the order store uses to
// resolve cookie prices when computing order totals. The order use case holds
// this instead of the whole cookie store so the dependency between the two
// collections stays one-way.
type ICookiePriceLookup interface {
	// PriceByID returns the current price of the cookie, or found=false when
	// no cookie with that ID exists.
	PriceByID(ctx context.Context, id int) (price float64, found bool, err error)
}
