package sales

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/groph-shop/internal/domain"
	"github.com/fsdevblog/groph-shop/internal/service"
)

// OrderServicer интерфейс исключительно для моков.
type OrderServicer interface {
	Purchase(ctx context.Context, username string, itemID int64, quantity int) (*service.PurchaseReceipt, error)
}

type WishlistServicer interface {
	Add(ctx context.Context, username string, itemID int64) (*domain.WishlistItem, error)
	Remove(ctx context.Context, username string, itemID int64) error
}

// HealthChecker проба доступности удаленного сервиса.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// DBPinger проверка соединения с локальной базой. Реализуется pgxpool.Pool.
type DBPinger interface {
	Ping(ctx context.Context) error
}
