package reviews

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/groph-shop/internal/domain"
	"github.com/fsdevblog/groph-shop/internal/repository/repoargs"
	"github.com/fsdevblog/groph-shop/internal/transport/upstream/customerdir"
	"github.com/fsdevblog/groph-shop/internal/transport/upstream/invstore"
)

// ReviewServicer интерфейс исключительно для моков.
type ReviewServicer interface {
	Create(ctx context.Context, args repoargs.CreateReview) (*domain.Review, error)
	Update(ctx context.Context, reviewID int64, args repoargs.UpdateReview) (*domain.Review, error)
	Flag(ctx context.Context, reviewID int64) (*domain.Review, error)
	Approve(ctx context.Context, reviewID int64) (*domain.Review, error)
	Delete(ctx context.Context, reviewID int64) error
	GetByID(ctx context.Context, reviewID int64) (*domain.Review, error)
	GetByItemID(ctx context.Context, itemID int64) ([]domain.Review, error)
	GetByCustomerID(ctx context.Context, customerID int64) ([]domain.Review, error)
}

// CustomerDirectory разрешение текущего пользователя в идентификатор клиента.
type CustomerDirectory interface {
	LookupCustomer(ctx context.Context, username string) (*customerdir.CustomerView, error)
	Health(ctx context.Context) error
}

// InventoryStore проверка существования товара перед записью отзыва.
type InventoryStore interface {
	GetItem(ctx context.Context, itemID int64) (*invstore.ItemView, error)
	Health(ctx context.Context) error
}

type DBPinger interface {
	Ping(ctx context.Context) error
}
