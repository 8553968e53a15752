package customers

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/groph-shop/internal/domain"
	"github.com/fsdevblog/groph-shop/internal/repository/repoargs"
	"github.com/fsdevblog/groph-shop/internal/service"
	"github.com/shopspring/decimal"
)

// CustomerServicer интерфейс исключительно для моков.
type CustomerServicer interface {
	Register(ctx context.Context, args service.RegisterCustomerArgs) (*domain.Customer, error)
	Login(ctx context.Context, username, password string) (*domain.Customer, string, error)
	GetByUsername(ctx context.Context, username string) (*domain.Customer, error)
	GetAll(ctx context.Context) ([]domain.Customer, error)
	Update(ctx context.Context, username string, args repoargs.UpdateCustomer) (*domain.Customer, error)
	ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error
	Delete(ctx context.Context, username string) error
	CreditWallet(ctx context.Context, username string, amount decimal.Decimal) (decimal.Decimal, error)
	DebitWallet(ctx context.Context, username string, amount decimal.Decimal) (decimal.Decimal, error)
}

// OrderLister заказы клиента из локального реестра покупок.
type OrderLister interface {
	GetByCustomerID(ctx context.Context, customerID int64) ([]domain.Order, error)
}

type WishlistLister interface {
	GetByCustomerID(ctx context.Context, customerID int64) ([]domain.WishlistItem, error)
}

type DBPinger interface {
	Ping(ctx context.Context) error
}
