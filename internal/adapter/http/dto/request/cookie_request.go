package request

import "cookieshop/internal/domain/entities"

// CreateCookieRequest is the POST /cookies payload. Price and InventoryCount
// are pointers so that a legitimate zero is distinguishable from a missing
// field.
type CreateCookieRequest struct {
	Name           string   `json:"name" binding:"required"`
	Description    string   `json:"description" binding:"required"`
	Price          *float64 `json:"price" binding:"required"`
	InventoryCount *int     `json:"inventory_count" binding:"required"`
}

// PatchCookieRequest is the PATCH /cookies/:id payload. Every field is
// optional: an absent or empty name/description and an absent price/inventory
// mean "leave unchanged".
type PatchCookieRequest struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Price          *float64 `json:"price"`
	InventoryCount *int     `json:"inventory_count"`
}

func (r PatchCookieRequest) ToUpdate() entities.CookieUpdate {
	return entities.CookieUpdate{
		Name:           r.Name,
		Description:    r.Description,
		Price:          r.Price,
		InventoryCount: r.InventoryCount,
	}
}
