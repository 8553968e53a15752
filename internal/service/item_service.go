package service

import (
	"context"

	"github.com/fsdevblog/groph-shop/internal/domain"
	"github.com/fsdevblog/groph-shop/internal/repository/repoargs"
	"github.com/fsdevblog/groph-shop/pkg/uow"
)

type ItemService struct {
	uow      uow.UOW
	itemRepo ItemRepository
}

func NewItemService(u uow.UOW) (*ItemService, error) {
	itemRepo, repoErr := uow.GetRepositoryAs[ItemRepository](u, uow.RepositoryName(repoargs.ItemRepoName))
	if repoErr != nil {
		return nil, repoErr
	}
	return &ItemService{
		uow:      u,
		itemRepo: itemRepo,
	}, nil
}

func (s *ItemService) Create(ctx context.Context, args repoargs.CreateItem) (*domain.Item, error) {
	item, err := s.itemRepo.Create(ctx, args)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return item, nil
}

func (s *ItemService) Update(ctx context.Context, itemID int64, args repoargs.UpdateItem) (*domain.Item, error) {
	item, err := s.itemRepo.Update(ctx, itemID, args)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return item, nil
}

func (s *ItemService) Delete(ctx context.Context, itemID int64) error {
	return s.itemRepo.Delete(ctx, itemID) //nolint:wrapcheck
}

func (s *ItemService) GetByID(ctx context.Context, itemID int64) (*domain.Item, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return item, nil
}

func (s *ItemService) GetAll(ctx context.Context) ([]domain.Item, error) {
	items, err := s.itemRepo.GetAll(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return items, nil
}

func (s *ItemService) GetByCategory(ctx context.Context, category string) ([]domain.Item, error) {
	items, err := s.itemRepo.GetByCategory(ctx, category)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return items, nil
}

// AddStock увеличивает остаток товара. Возвращает новое значение остатка.
func (s *ItemService) AddStock(ctx context.Context, itemID int64, quantity int) (int, error) {
	if quantity <= 0 {
		return 0, domain.ErrInvalidQuantity
	}
	stock, err := s.itemRepo.AddStock(ctx, itemID, quantity)
	if err != nil {
		return 0, err //nolint:wrapcheck
	}
	return stock, nil
}

// RemoveStock уменьшает остаток товара. Проверку достаточности остатка выполняет
// репозиторий атомарным запросом - на нее полагается сервис продаж при параллельных покупках.
func (s *ItemService) RemoveStock(ctx context.Context, itemID int64, quantity int) (int, error) {
	if quantity <= 0 {
		return 0, domain.ErrInvalidQuantity
	}
	stock, err := s.itemRepo.RemoveStock(ctx, itemID, quantity)
	if err != nil {
		return 0, err //nolint:wrapcheck
	}
	return stock, nil
}
