package inventory

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/groph-shop/internal/domain"
	"github.com/fsdevblog/groph-shop/internal/repository/repoargs"
)

// ItemServicer интерфейс исключительно для моков.
type ItemServicer interface {
	Create(ctx context.Context, args repoargs.CreateItem) (*domain.Item, error)
	Update(ctx context.Context, itemID int64, args repoargs.UpdateItem) (*domain.Item, error)
	Delete(ctx context.Context, itemID int64) error
	GetByID(ctx context.Context, itemID int64) (*domain.Item, error)
	GetAll(ctx context.Context) ([]domain.Item, error)
	GetByCategory(ctx context.Context, category string) ([]domain.Item, error)
	AddStock(ctx context.Context, itemID int64, quantity int) (int, error)
	RemoveStock(ctx context.Context, itemID int64, quantity int) (int, error)
}

type DBPinger interface {
	Ping(ctx context.Context) error
}
