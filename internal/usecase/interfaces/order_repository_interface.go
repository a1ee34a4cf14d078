package interfaces

import (
	"context"

	"cookieshop/internal/domain/entities"
)

//go:generate mockgen -source=order_repository_interface.go -destination=mocks/order_repository_mock.go -package=mock_interfaces

// IOrderRepository abstracts the in-memory order collection.
//
// Same ID discipline as ICookieRepository. There is no Delete: order removal
// is not part of the shop's surface.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id int) (entities.Order, bool, error)
	List(ctx context.Context) ([]entities.Order, error)
	Update(ctx context.Context, o entities.Order) (bool, error)
}
