package service

import (
	"context"
	"errors"
	"net/http"

	"github.com/fsdevblog/groph-shop/internal/domain"
	"github.com/fsdevblog/groph-shop/internal/repository/repoargs"
	"github.com/fsdevblog/groph-shop/internal/transport/upstream/invstore"
	"github.com/fsdevblog/groph-shop/pkg/uow"
)

// WishlistService список желаний клиента. Хранится локально в сервисе продаж,
// клиент и товар разрешаются через удаленные сервисы по тем же клиентам, что и покупка.
type WishlistService struct {
	uow          uow.UOW
	wishlistRepo WishlistRepository
	customers    CustomerDirectory
	inventory    InventoryStore
}

func NewWishlistService(u uow.UOW, customers CustomerDirectory, inventory InventoryStore) (*WishlistService, error) {
	wishlistRepo, repoErr :=
		uow.GetRepositoryAs[WishlistRepository](u, uow.RepositoryName(repoargs.WishlistRepoName))
	if repoErr != nil {
		return nil, repoErr
	}
	return &WishlistService{
		uow:          u,
		wishlistRepo: wishlistRepo,
		customers:    customers,
		inventory:    inventory,
	}, nil
}

// Add добавляет товар в список желаний. Существование товара проверяется в сервисе
// склада, несуществующий идентификатор дает ErrItemNotFound.
func (s *WishlistService) Add(ctx context.Context, username string, itemID int64) (*domain.WishlistItem, error) {
	customer, custErr := s.customers.LookupCustomer(ctx, username)
	if custErr != nil {
		return nil, domain.NewUpstreamError("customer-service", custErr)
	}

	item, itemErr := s.inventory.GetItem(ctx, itemID)
	if itemErr != nil {
		var statusErr *invstore.StatusCodeError
		if errors.As(itemErr, &statusErr) && statusErr.Code == http.StatusNotFound {
			return nil, domain.ErrItemNotFound
		}
		return nil, domain.NewUpstreamError("inventory-service", itemErr)
	}

	entry, addErr := s.wishlistRepo.Add(ctx, customer.ID, item.ID)
	if addErr != nil {
		return nil, addErr //nolint:wrapcheck
	}
	return entry, nil
}

func (s *WishlistService) Remove(ctx context.Context, username string, itemID int64) error {
	customer, custErr := s.customers.LookupCustomer(ctx, username)
	if custErr != nil {
		return domain.NewUpstreamError("customer-service", custErr)
	}
	return s.wishlistRepo.Remove(ctx, customer.ID, itemID) //nolint:wrapcheck
}

func (s *WishlistService) GetByUsername(ctx context.Context, username string) ([]domain.WishlistItem, error) {
	customer, custErr := s.customers.LookupCustomer(ctx, username)
	if custErr != nil {
		return nil, domain.NewUpstreamError("customer-service", custErr)
	}
	entries, err := s.wishlistRepo.GetByCustomerID(ctx, customer.ID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return entries, nil
}
