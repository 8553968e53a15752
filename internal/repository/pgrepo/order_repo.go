package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-shop/internal/domain"
	"github.com/fsdevblog/groph-shop/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const orderColumns = `id, created_at, customer_id, item_id, quantity`

// OrderRepository журнал покупок. Только вставка и чтение, завершенные заказы не изменяются.
type OrderRepository struct {
	db uow.DBTX
}

func NewOrderRepository(db uow.DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, customerID, itemID int64, quantity int) (*domain.Order, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO orders (customer_id, item_id, quantity)
		VALUES ($1, $2, $3)
		RETURNING `+orderColumns,
		customerID, itemID, quantity,
	)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "creating order for customer %d item %d", customerID, itemID)
	}
	return order, nil
}

// GetByCustomerID возвращает заказы клиента отсортированные по дате создания по убыванию.
func (r *OrderRepository) GetByCustomerID(ctx context.Context, customerID int64) ([]domain.Order, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+orderColumns+` FROM orders WHERE customer_id = $1 ORDER BY created_at DESC`,
		customerID,
	)
	if err != nil {
		return nil, convertErr(err, "getting orders by customerID %d", customerID)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, scanErr := scanOrder(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning order")
		}
		orders = append(orders, *order)
	}
	return orders, convertErr(rows.Err(), "getting orders by customerID %d", customerID)
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	if err := row.Scan(&o.ID, &o.CreatedAt, &o.CustomerID, &o.ItemID, &o.Quantity); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &o, nil
}
