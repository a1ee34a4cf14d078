package interfaces

import (
	"context"

	"cookieshop/internal/domain/entities"
)

//go:generate mockgen -source=cookie_repository_interface.go -destination=mocks/cookie_repository_mock.go -package=mock_interfaces

// ICookieRepository abstracts the in-memory cookie collection.
//
// The repository owns the ID counter: Create assigns the next sequential ID
// under the same lock as the insertion, and IDs are never reused after Delete.
// List returns cookies in insertion order.

type ICookieRepository interface {
	Create(ctx context.Context, c entities.Cookie) (entities.Cookie, error)
	GetByID(ctx context.Context, id int) (entities.Cookie, bool, error)
	List(ctx context.Context) ([]entities.Cookie, error)
	Update(ctx context.Context, c entities.Cookie) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}
