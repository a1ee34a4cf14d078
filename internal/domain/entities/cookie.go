package entities

import (
	"fmt"
	"math"
	"strings"
)

// ValidationError reports a malformed or out-of-range field on entity
// construction or mutation. Handlers surface it as a 400.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func newValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// Cookie is a sellable product of the shop.
//
// Invariants:
//   - ID is assigned once by the repository and never reused, even after delete.
//   - Name and Description are never empty.
//   - Price is non-negative and always stored rounded to cents.
//   - InventoryCount is non-negative.

type Cookie struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Price          float64 `json:"price"`
	InventoryCount int     `json:"inventory_count"`
}

// NewCookie validates the product fields and returns a Cookie with no ID yet;
// the repository assigns the next sequential ID on insert.
func NewCookie(name, description string, price float64, inventoryCount int) (Cookie, error) {
	if err := validateCookieName(name); err != nil {
		return Cookie{}, err
	}
	if err := validateCookieDescription(description); err != nil {
		return Cookie{}, err
	}
	if err := validateCookiePrice(price); err != nil {
		return Cookie{}, err
	}
	if err := validateCookieInventory(inventoryCount); err != nil {
		return Cookie{}, err
	}

	return Cookie{
		Name:           name,
		Description:    description,
		Price:          roundCents(price),
		InventoryCount: inventoryCount,
	}, nil
}

func (c *Cookie) SetName(name string) error {
	if err := validateCookieName(name); err != nil {
		return err
	}
	c.Name = name
	return nil
}

func (c *Cookie) SetDescription(description string) error {
	if err := validateCookieDescription(description); err != nil {
		return err
	}
	c.Description = description
	return nil
}

func (c *Cookie) SetPrice(price float64) error {
	if err := validateCookiePrice(price); err != nil {
		return err
	}
	c.Price = roundCents(price)
	return nil
}

func (c *Cookie) SetInventoryCount(inventoryCount int) error {
	if err := validateCookieInventory(inventoryCount); err != nil {
		return err
	}
	c.InventoryCount = inventoryCount
	return nil
}

// CookieUpdate carries an optional subset of mutable Cookie fields.
// An empty Name/Description or a nil Price/InventoryCount means "not provided"
// rather than a validation failure.
type CookieUpdate struct {
	Name           string
	Description    string
	Price          *float64
	InventoryCount *int
}

// Update applies the provided fields and reports whether anything was applied.
// All provided fields are validated before any of them is written, so a
// failed update leaves the cookie unchanged.
func (c *Cookie) Update(u CookieUpdate) (bool, error) {
	if u.Price != nil {
		if err := validateCookiePrice(*u.Price); err != nil {
			return false, err
		}
	}
	if u.InventoryCount != nil {
		if err := validateCookieInventory(*u.InventoryCount); err != nil {
			return false, err
		}
	}

	updated := false
	if u.Name != "" {
		c.Name = u.Name
		updated = true
	}
	if u.Description != "" {
		c.Description = u.Description
		updated = true
	}
	if u.Price != nil {
		c.Price = roundCents(*u.Price)
		updated = true
	}
	if u.InventoryCount != nil {
		c.InventoryCount = *u.InventoryCount
		updated = true
	}
	return updated, nil
}

// IsOutOfStock reports whether the shop has no inventory left for this cookie.
func (c Cookie) IsOutOfStock() bool {
	return c.InventoryCount == 0
}

func validateCookieName(name string) error {
	if strings.TrimSpace(name) == "" {
		return newValidationError("cookie name", "must be a non-empty string")
	}
	return nil
}

func validateCookieDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return newValidationError("cookie description", "must be a non-empty string")
	}
	return nil
}

func validateCookiePrice(price float64) error {
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return newValidationError("cookie price", "must be a non-negative number")
	}
	return nil
}

func validateCookieInventory(inventoryCount int) error {
	if inventoryCount < 0 {
		return newValidationError("cookie inventory count", "must be a non-negative integer")
	}
	return nil
}

// roundCents rounds a monetary amount to two decimal places.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
