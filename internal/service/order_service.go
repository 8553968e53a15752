package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fsdevblog/groph-shop/internal/domain"
	"github.com/fsdevblog/groph-shop/internal/repository/repoargs"
	"github.com/fsdevblog/groph-shop/internal/transport/upstream/invstore"
	"github.com/fsdevblog/groph-shop/pkg/uow"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// OrderService оркестрирует покупку: последовательность удаленных эффектов плюс одна
// локальная запись, без распределенной транзакции.
//
// Порядок шагов фиксирован и ограничивает множество достижимых рассогласований при
// частичном отказе: остаток проверяется до баланса, списание средств идет до списания
// остатка, запись заказа - последней. Средства могут быть списаны без заказа (этот отказ
// всегда виден вызывающему), но остаток никогда не списывается без успешного списания
// средств. Повторных попыток нет - любой отказ удаленного вызова терминален для запроса.
type OrderService struct {
	uow          uow.UOW
	orderRepo    OrderRepository
	wishlistRepo WishlistRepository
	customers    CustomerDirectory
	inventory    InventoryStore
	l            *logrus.Entry
}

func NewOrderService(
	u uow.UOW,
	customers CustomerDirectory,
	inventory InventoryStore,
	l *logrus.Logger,
) (*OrderService, error) {
	orderRepo, orderRepoErr := uow.GetRepositoryAs[OrderRepository](u, uow.RepositoryName(repoargs.OrderRepoName))
	if orderRepoErr != nil {
		return nil, orderRepoErr
	}
	wishlistRepo, wishlistRepoErr :=
		uow.GetRepositoryAs[WishlistRepository](u, uow.RepositoryName(repoargs.WishlistRepoName))
	if wishlistRepoErr != nil {
		return nil, wishlistRepoErr
	}
	return &OrderService{
		uow:          u,
		orderRepo:    orderRepo,
		wishlistRepo: wishlistRepo,
		customers:    customers,
		inventory:    inventory,
		l: l.WithFields(logrus.Fields{
			"component": "sales",
			"module":    "order_service",
		}),
	}, nil
}

type PurchaseReceipt struct {
	OrderID int64
	Message string
}

// Purchase выполняет покупку quantity единиц товара itemID от имени username.
//
// Возвращаемые ошибки:
//   - domain.ErrInvalidQuantity - количество не положительное, ни одного удаленного вызова не сделано;
//   - domain.ErrItemNotFound - товар отсутствует на складе (404 от сервиса склада);
//   - domain.ErrInsufficientStock / domain.ErrInsufficientFunds - предусловия не прошли,
//     остаток проверяется раньше баланса;
//   - *domain.UpstreamError - отказ удаленного вызова. Если отказало списание остатка уже
//     после списания средств, система остается в рассогласованном состоянии (средства списаны,
//     остаток не тронут, заказа нет) - это известное ограничение best-effort схемы, отказ
//     всегда отдается вызывающему и никогда не маскируется под успех;
//   - *domain.PersistenceError - заказ не записан, хотя удаленные эффекты применены.
func (s *OrderService) Purchase(
	ctx context.Context,
	username string,
	itemID int64,
	quantity int,
) (*PurchaseReceipt, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	customer, customerErr := s.customers.LookupCustomer(ctx, username)
	if customerErr != nil {
		return nil, domain.NewUpstreamError("customer-service", errors.Wrap(customerErr, "lookup customer"))
	}

	item, itemErr := s.inventory.GetItem(ctx, itemID)
	if itemErr != nil {
		var scErr *invstore.StatusCodeError
		if errors.As(itemErr, &scErr) && scErr.Code == http.StatusNotFound {
			return nil, domain.ErrItemNotFound
		}
		return nil, domain.NewUpstreamError("inventory-service", errors.Wrap(itemErr, "get item"))
	}

	totalCost := item.PricePerItem.Mul(decimal.NewFromInt(int64(quantity)))

	// Порядок проверок фиксирован: сначала остаток, затем баланс.
	if item.StockCount < quantity {
		return nil, domain.ErrInsufficientStock
	}
	if customer.Wallet.LessThan(totalCost) {
		return nil, domain.ErrInsufficientFunds
	}

	if debitErr := s.customers.DebitWallet(ctx, username, totalCost); debitErr != nil {
		// Ни одного эффекта не применено: остаток не тронут, заказа нет.
		return nil, domain.NewUpstreamError("customer-service", errors.Wrap(debitErr, "debit wallet"))
	}

	if stockErr := s.inventory.RemoveStock(ctx, itemID, quantity); stockErr != nil {
		// Средства уже списаны. Компенсации нет, рассогласование фиксируется в логе
		// и отдается вызывающему как ошибка.
		s.l.WithError(stockErr).WithFields(logrus.Fields{
			"username": username,
			"itemID":   itemID,
			"quantity": quantity,
			"debited":  totalCost,
		}).Error("stock decrement failed after successful wallet debit")
		return nil, domain.NewUpstreamError("inventory-service", errors.Wrap(stockErr, "remove stock"))
	}

	var order *domain.Order
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		var createErr error
		order, createErr = repo.Create(c, customer.ID, item.ID, quantity)
		return createErr //nolint:wrapcheck
	})
	if txErr != nil {
		// Удаленные эффекты применены, локальной записи нет. Тоже рассогласование,
		// и тоже видимое вызывающему.
		s.l.WithError(txErr).WithFields(logrus.Fields{
			"username": username,
			"itemID":   itemID,
		}).Error("order ledger write failed after remote effects were applied")
		return nil, domain.NewPersistenceError(txErr)
	}

	// Шаг вне основной последовательности: чистка списка желаний выполняется только после
	// записи заказа и не влияет на результат покупки.
	s.cleanupWishlist(ctx, customer.ID, item.ID)

	return &PurchaseReceipt{
		OrderID: order.ID,
		Message: fmt.Sprintf("%s successfully purchased %d unit(s) of %s.", customer.Username, quantity, item.Name),
	}, nil
}

func (s *OrderService) cleanupWishlist(ctx context.Context, customerID, itemID int64) {
	if err := s.wishlistRepo.Remove(ctx, customerID, itemID); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return
		}
		s.l.WithError(err).WithFields(logrus.Fields{
			"customerID": customerID,
			"itemID":     itemID,
		}).Warn("wishlist cleanup after purchase failed")
	}
}

// GetByCustomerID возвращает заказы клиента отсортированные по дате создания по убыванию.
func (s *OrderService) GetByCustomerID(ctx context.Context, customerID int64) ([]domain.Order, error) {
	orders, err := s.orderRepo.GetByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return orders, nil
}
