package response

import "cookieshop/internal/domain/entities"

type CookieResponse struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Price          float64 `json:"price"`
	InventoryCount int     `json:"inventory_count"`
}

func FromCookie(c entities.Cookie) CookieResponse {
	return CookieResponse{
		ID:             c.ID,
		Name:           c.Name,
		Description:    c.Description,
		Price:          c.Price,
		InventoryCount: c.InventoryCount,
	}
}

// FromCookies maps a listing; an empty result serializes as [] rather than
// null.
func FromCookies(cookies []entities.Cookie) []CookieResponse {
	out := make([]CookieResponse, 0, len(cookies))
	for _, c := range cookies {
		out = append(out, FromCookie(c))
	}
	return out
}
