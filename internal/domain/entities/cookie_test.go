package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCookie(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		c, err := NewCookie("Chocolate Chip", "A regular chocolate chip cookie", 2.99, 100)
		require.NoError(t, err)
		assert.Equal(t, "Chocolate Chip", c.Name)
		assert.Equal(t, "A regular chocolate chip cookie", c.Description)
		assert.Equal(t, 2.99, c.Price)
		assert.Equal(t, 100, c.InventoryCount)
	})

	t.Run("price rounded to cents", func(t *testing.T) {
		c, err := NewCookie("Sugar Cookie", "A regular sugar cookie", 1.005, 10)
		require.NoError(t, err)
		assert.Equal(t, 1.0, c.Price)

		c, err = NewCookie("Sugar Cookie", "A regular sugar cookie", 2.999, 10)
		require.NoError(t, err)
		assert.Equal(t, 3.0, c.Price)
	})

	t.Run("zero price and inventory are valid", func(t *testing.T) {
		c, err := NewCookie("Freebie", "On the house", 0, 0)
		require.NoError(t, err)
		assert.Equal(t, 0.0, c.Price)
		assert.True(t, c.IsOutOfStock())
	})

	cases := []struct {
		name           string
		cookieName     string
		description    string
		price          float64
		inventoryCount int
	}{
		{name: "empty name", cookieName: "", description: "d", price: 1, inventoryCount: 1},
		{name: "blank name", cookieName: "   ", description: "d", price: 1, inventoryCount: 1},
		{name: "empty description", cookieName: "n", description: "", price: 1, inventoryCount: 1},
		{name: "negative price", cookieName: "n", description: "d", price: -0.01, inventoryCount: 1},
		{name: "negative inventory", cookieName: "n", description: "d", price: 1, inventoryCount: -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCookie(tc.cookieName, tc.description, tc.price, tc.inventoryCount)
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestCookieSetters(t *testing.T) {
	c, err := NewCookie("Snickerdoodle", "Cinnamon sugar", 1.50, 5)
	require.NoError(t, err)

	require.NoError(t, c.SetName("Gingersnap"))
	assert.Equal(t, "Gingersnap", c.Name)

	require.NoError(t, c.SetDescription("Spicy"))
	assert.Equal(t, "Spicy", c.Description)

	require.NoError(t, c.SetPrice(2.005))
	assert.Equal(t, 2.0, c.Price)

	require.NoError(t, c.SetInventoryCount(0))
	assert.Equal(t, 0, c.InventoryCount)

	t.Run("failed setter leaves value unchanged", func(t *testing.T) {
		assert.Error(t, c.SetName(""))
		assert.Equal(t, "Gingersnap", c.Name)

		assert.Error(t, c.SetPrice(-1))
		assert.Equal(t, 2.0, c.Price)

		assert.Error(t, c.SetInventoryCount(-5))
		assert.Equal(t, 0, c.InventoryCount)
	})
}

func TestCookieUpdate(t *testing.T) {
	newCookie := func(t *testing.T) Cookie {
		c, err := NewCookie("Oatmeal", "With raisins", 1.25, 10)
		require.NoError(t, err)
		return c
	}

	t.Run("applies provided fields only", func(t *testing.T) {
		c := newCookie(t)
		price := 3.99
		inventory := 42
		updated, err := c.Update(CookieUpdate{Price: &price, InventoryCount: &inventory})
		require.NoError(t, err)
		assert.True(t, updated)
		assert.Equal(t, "Oatmeal", c.Name)
		assert.Equal(t, "With raisins", c.Description)
		assert.Equal(t, 3.99, c.Price)
		assert.Equal(t, 42, c.InventoryCount)
	})

	t.Run("empty strings and nil numbers mean not provided", func(t *testing.T) {
		c := newCookie(t)
		updated, err := c.Update(CookieUpdate{Name: "", Description: ""})
		require.NoError(t, err)
		assert.False(t, updated)
		assert.Equal(t, "Oatmeal", c.Name)
	})

	t.Run("zero price is provided", func(t *testing.T) {
		c := newCookie(t)
		price := 0.0
		updated, err := c.Update(CookieUpdate{Price: &price})
		require.NoError(t, err)
		assert.True(t, updated)
		assert.Equal(t, 0.0, c.Price)
	})

	t.Run("invalid field rejects whole update", func(t *testing.T) {
		c := newCookie(t)
		price := -1.0
		updated, err := c.Update(CookieUpdate{Name: "Changed", Price: &price})
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.False(t, updated)
		assert.Equal(t, "Oatmeal", c.Name)
		assert.Equal(t, 1.25, c.Price)
	})
}

func TestCookieIsOutOfStock(t *testing.T) {
	c, err := NewCookie("Shortbread", "Buttery", 2.00, 1)
	require.NoError(t, err)
	assert.False(t, c.IsOutOfStock())

	require.NoError(t, c.SetInventoryCount(0))
	assert.True(t, c.IsOutOfStock())
}
