package service

import (
	"testing"
	"time"

	"github.com/fsdevblog/groph-shop/internal/domain"
	"github.com/fsdevblog/groph-shop/internal/repository/repoargs"
	"github.com/fsdevblog/groph-shop/internal/service/mocks"
	"github.com/fsdevblog/groph-shop/pkg/uow"
	uowmocks "github.com/fsdevblog/groph-shop/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ItemServiceTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockUOW      *uowmocks.MockUOW
	mockItemRepo *mocks.MockItemRepository
	itemService  *ItemService
}

func TestItemServiceSuite(t *testing.T) {
	suite.Run(t, new(ItemServiceTestSuite))
}

func (s *ItemServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockItemRepo = mocks.NewMockItemRepository(s.mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.ItemRepoName)).
		Return(s.mockItemRepo, nil).AnyTimes()

	itemService, servErr := NewItemService(s.mockUOW)
	s.Require().NoError(servErr)
	s.itemService = itemService
}

func (s *ItemServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *ItemServiceTestSuite) TestCreate() {
	args := repoargs.CreateItem{
		Name:         "Laptop",
		Category:     "electronics",
		Description:  "15 inch",
		PricePerItem: decimal.NewFromInt(999),
		StockCount:   10,
	}
	created := domain.Item{
		ID:           1,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
		Name:         args.Name,
		Category:     args.Category,
		Description:  args.Description,
		PricePerItem: args.PricePerItem,
		StockCount:   args.StockCount,
	}

	s.mockItemRepo.EXPECT().
		Create(gomock.Any(), args).
		Return(&created, nil)

	item, err := s.itemService.Create(s.T().Context(), args)

	s.Require().NoError(err)
	s.Equal(&created, item)
}

func (s *ItemServiceTestSuite) TestGetByID() {
	saved := domain.Item{ID: 1, Name: "Laptop", Category: "electronics"}

	s.mockItemRepo.EXPECT().
		FindByID(gomock.Any(), int64(1)).
		Return(&saved, nil)
	s.mockItemRepo.EXPECT().
		FindByID(gomock.Any(), int64(99)).
		Return(nil, domain.ErrRecordNotFound)

	cases := []struct {
		name    string
		itemID  int64
		wantErr error
	}{
		{name: "ok", itemID: 1},
		{name: "not found", itemID: 99, wantErr: domain.ErrRecordNotFound},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			item, err := s.itemService.GetByID(s.T().Context(), t.itemID)

			if t.wantErr != nil {
				s.Require().ErrorIs(err, t.wantErr)
				return
			}

			s.Require().NoError(err)
			s.Equal(&saved, item)
		})
	}
}

func (s *ItemServiceTestSuite) TestGetByCategory() {
	items := []domain.Item{
		{ID: 1, Name: "Laptop", Category: "electronics"},
		{ID: 2, Name: "Phone", Category: "electronics"},
	}

	s.mockItemRepo.EXPECT().
		GetByCategory(gomock.Any(), "electronics").
		Return(items, nil)

	result, err := s.itemService.GetByCategory(s.T().Context(), "electronics")

	s.Require().NoError(err)
	s.Len(result, 2)
}

func (s *ItemServiceTestSuite) TestAddStock() {
	s.mockItemRepo.EXPECT().
		AddStock(gomock.Any(), int64(1), 5).
		Return(15, nil)

	cases := []struct {
		name      string
		quantity  int
		wantStock int
		wantErr   error
	}{
		{name: "ok", quantity: 5, wantStock: 15},
		{name: "zero quantity", quantity: 0, wantErr: domain.ErrInvalidQuantity},
		{name: "negative quantity", quantity: -1, wantErr: domain.ErrInvalidQuantity},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			stock, err := s.itemService.AddStock(s.T().Context(), 1, t.quantity)

			if t.wantErr != nil {
				s.Require().ErrorIs(err, t.wantErr)
				return
			}

			s.Require().NoError(err)
			s.Equal(t.wantStock, stock)
		})
	}
}

func (s *ItemServiceTestSuite) TestRemoveStock() {
	s.mockItemRepo.EXPECT().
		RemoveStock(gomock.Any(), int64(1), 5).
		Return(5, nil)
	s.mockItemRepo.EXPECT().
		RemoveStock(gomock.Any(), int64(1), 100).
		Return(0, domain.ErrInsufficientStock)

	cases := []struct {
		name      string
		quantity  int
		wantStock int
		wantErr   error
	}{
		{name: "ok", quantity: 5, wantStock: 5},
		{name: "not enough stock", quantity: 100, wantErr: domain.ErrInsufficientStock},
		{name: "zero quantity", quantity: 0, wantErr: domain.ErrInvalidQuantity},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			stock, err := s.itemService.RemoveStock(s.T().Context(), 1, t.quantity)

			if t.wantErr != nil {
				s.Require().ErrorIs(err, t.wantErr)
				return
			}

			s.Require().NoError(err)
			s.Equal(t.wantStock, stock)
		})
	}
}
