package service

import (
	"context"

	"github.com/fsdevblog/groph-shop/internal/domain"
	"github.com/fsdevblog/groph-shop/internal/repository/repoargs"
	"github.com/fsdevblog/groph-shop/internal/transport/upstream/customerdir"
	"github.com/fsdevblog/groph-shop/internal/transport/upstream/invstore"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

// CustomerDirectory удаленный сервис клиентов: чтение профиля и списание средств.
type CustomerDirectory interface {
	LookupCustomer(ctx context.Context, username string) (*customerdir.CustomerView, error)
	DebitWallet(ctx context.Context, username string, amount decimal.Decimal) error
}

// InventoryStore удаленный сервис склада: чтение карточки товара и списание остатка.
type InventoryStore interface {
	GetItem(ctx context.Context, itemID int64) (*invstore.ItemView, error)
	RemoveStock(ctx context.Context, itemID int64, quantity int) error
}

type CustomerRepository interface {
	Create(ctx context.Context, args repoargs.CreateCustomer) (*domain.Customer, error)
	FindByUsername(ctx context.Context, username string) (*domain.Customer, error)
	GetAll(ctx context.Context) ([]domain.Customer, error)
	Update(ctx context.Context, username string, args repoargs.UpdateCustomer) (*domain.Customer, error)
	UpdatePassword(ctx context.Context, username string, passwordHash string) error
	Delete(ctx context.Context, username string) error
	CreditWallet(ctx context.Context, username string, amount decimal.Decimal) (decimal.Decimal, error)
	DebitWallet(ctx context.Context, username string, amount decimal.Decimal) (decimal.Decimal, error)
}

type ItemRepository interface {
	Create(ctx context.Context, args repoargs.CreateItem) (*domain.Item, error)
	Update(ctx context.Context, itemID int64, args repoargs.UpdateItem) (*domain.Item, error)
	Delete(ctx context.Context, itemID int64) error
	FindByID(ctx context.Context, itemID int64) (*domain.Item, error)
	GetAll(ctx context.Context) ([]domain.Item, error)
	GetByCategory(ctx context.Context, category string) ([]domain.Item, error)
	AddStock(ctx context.Context, itemID int64, quantity int) (int, error)
	RemoveStock(ctx context.Context, itemID int64, quantity int) (int, error)
}

type OrderRepository interface {
	Create(ctx context.Context, customerID, itemID int64, quantity int) (*domain.Order, error)
	GetByCustomerID(ctx context.Context, customerID int64) ([]domain.Order, error)
}

type WishlistRepository interface {
	Add(ctx context.Context, customerID, itemID int64) (*domain.WishlistItem, error)
	Remove(ctx context.Context, customerID, itemID int64) error
	Find(ctx context.Context, customerID, itemID int64) (*domain.WishlistItem, error)
	GetByCustomerID(ctx context.Context, customerID int64) ([]domain.WishlistItem, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, args repoargs.CreateReview) (*domain.Review, error)
	Update(ctx context.Context, reviewID int64, args repoargs.UpdateReview) (*domain.Review, error)
	UpdateStatus(ctx context.Context, reviewID int64, status domain.ReviewStatusType) (*domain.Review, error)
	Delete(ctx context.Context, reviewID int64) error
	FindByID(ctx context.Context, reviewID int64) (*domain.Review, error)
	GetByItemID(ctx context.Context, itemID int64) ([]domain.Review, error)
	GetByCustomerID(ctx context.Context, customerID int64) ([]domain.Review, error)
}
