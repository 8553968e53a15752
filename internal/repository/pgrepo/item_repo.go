package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-shop/internal/domain"
	"github.com/fsdevblog/groph-shop/internal/repository/repoargs"
	"github.com/fsdevblog/groph-shop/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const itemColumns = `id, created_at, updated_at, name, category, description, price_per_item, stock_count`

type ItemRepository struct {
	db uow.DBTX
}

func NewItemRepository(db uow.DBTX) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) Create(ctx context.Context, args repoargs.CreateItem) (*domain.Item, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO inventory_items (name, category, description, price_per_item, stock_count)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+itemColumns,
		args.Name, args.Category, args.Description, args.PricePerItem, args.StockCount,
	)
	item, err := scanItem(row)
	if err != nil {
		return nil, convertErr(err, "creating item `%s`", args.Name)
	}
	return item, nil
}

func (r *ItemRepository) Update(ctx context.Context, itemID int64, args repoargs.UpdateItem) (*domain.Item, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE inventory_items
		SET name = $2, category = $3, description = $4, price_per_item = $5, stock_count = $6, updated_at = now()
		WHERE id = $1
		RETURNING `+itemColumns,
		itemID, args.Name, args.Category, args.Description, args.PricePerItem, args.StockCount,
	)
	item, err := scanItem(row)
	if err != nil {
		return nil, convertErr(err, "updating item with id %d", itemID)
	}
	return item, nil
}

func (r *ItemRepository) Delete(ctx context.Context, itemID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM inventory_items WHERE id = $1`, itemID)
	if err != nil {
		return convertErr(err, "deleting item with id %d", itemID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "deleting item with id %d", itemID)
	}
	return nil
}

func (r *ItemRepository) FindByID(ctx context.Context, itemID int64) (*domain.Item, error) {
	row := r.db.QueryRow(ctx, `SELECT `+itemColumns+` FROM inventory_items WHERE id = $1`, itemID)
	item, err := scanItem(row)
	if err != nil {
		return nil, convertErr(err, "finding item by id %d", itemID)
	}
	return item, nil
}

func (r *ItemRepository) GetAll(ctx context.Context) ([]domain.Item, error) {
	return r.queryItems(ctx, `SELECT `+itemColumns+` FROM inventory_items ORDER BY id`)
}

func (r *ItemRepository) GetByCategory(ctx context.Context, category string) ([]domain.Item, error) {
	return r.queryItems(ctx, `SELECT `+itemColumns+` FROM inventory_items WHERE category = $1 ORDER BY id`, category)
}

// AddStock атомарно увеличивает остаток. Возвращает новое значение остатка.
func (r *ItemRepository) AddStock(ctx context.Context, itemID int64, quantity int) (int, error) {
	var stock int
	err := r.db.QueryRow(ctx, `
		UPDATE inventory_items SET stock_count = stock_count + $2, updated_at = now()
		WHERE id = $1
		RETURNING stock_count`,
		itemID, quantity,
	).Scan(&stock)
	if err != nil {
		return 0, convertErr(err, "adding stock for item with id %d", itemID)
	}
	return stock, nil
}

// RemoveStock атомарно уменьшает остаток. Достаточность проверяется тем же UPDATE,
// параллельные покупки не могут увести остаток в минус.
// Возвращает domain.ErrInsufficientStock при нехватке товара.
func (r *ItemRepository) RemoveStock(ctx context.Context, itemID int64, quantity int) (int, error) {
	var stock int
	err := r.db.QueryRow(ctx, `
		UPDATE inventory_items SET stock_count = stock_count - $2, updated_at = now()
		WHERE id = $1 AND stock_count >= $2
		RETURNING stock_count`,
		itemID, quantity,
	).Scan(&stock)
	if err == nil {
		return stock, nil
	}
	if convErr := convertErr(err, "removing stock for item with id %d", itemID); !isNotFound(convErr) {
		return 0, convErr
	}

	// UPDATE не нашел строку: либо товара нет, либо не хватило остатка.
	if _, findErr := r.FindByID(ctx, itemID); findErr != nil {
		return 0, findErr
	}
	return 0, domain.ErrInsufficientStock
}

func (r *ItemRepository) queryItems(ctx context.Context, sql string, args ...any) ([]domain.Item, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, convertErr(err, "getting items")
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		item, scanErr := scanItem(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning item")
		}
		items = append(items, *item)
	}
	return items, convertErr(rows.Err(), "getting items")
}

func scanItem(row pgx.Row) (*domain.Item, error) {
	var i domain.Item
	err := row.Scan(
		&i.ID, &i.CreatedAt, &i.UpdatedAt, &i.Name, &i.Category,
		&i.Description, &i.PricePerItem, &i.StockCount,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &i, nil
}
