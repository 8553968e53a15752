package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-shop/internal/domain"
	"github.com/fsdevblog/groph-shop/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const wishlistColumns = `id, created_at, customer_id, item_id`

type WishlistRepository struct {
	db uow.DBTX
}

func NewWishlistRepository(db uow.DBTX) *WishlistRepository {
	return &WishlistRepository{db: db}
}

func (r *WishlistRepository) Add(ctx context.Context, customerID, itemID int64) (*domain.WishlistItem, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO wishlist (customer_id, item_id)
		VALUES ($1, $2)
		RETURNING `+wishlistColumns,
		customerID, itemID,
	)
	entry, err := scanWishlistItem(row)
	if err != nil {
		return nil, convertErr(err, "adding item %d to wishlist of customer %d", itemID, customerID)
	}
	return entry, nil
}

// Remove удаляет позицию из списка желаний. Если позиции не было, возвращает
// domain.ErrRecordNotFound.
func (r *WishlistRepository) Remove(ctx context.Context, customerID, itemID int64) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM wishlist WHERE customer_id = $1 AND item_id = $2`,
		customerID, itemID,
	)
	if err != nil {
		return convertErr(err, "removing item %d from wishlist of customer %d", itemID, customerID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "removing item %d from wishlist of customer %d", itemID, customerID)
	}
	return nil
}

func (r *WishlistRepository) Find(ctx context.Context, customerID, itemID int64) (*domain.WishlistItem, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+wishlistColumns+` FROM wishlist WHERE customer_id = $1 AND item_id = $2`,
		customerID, itemID,
	)
	entry, err := scanWishlistItem(row)
	if err != nil {
		return nil, convertErr(err, "finding wishlist item %d of customer %d", itemID, customerID)
	}
	return entry, nil
}

func (r *WishlistRepository) GetByCustomerID(ctx context.Context, customerID int64) ([]domain.WishlistItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+wishlistColumns+` FROM wishlist WHERE customer_id = $1 ORDER BY created_at DESC`,
		customerID,
	)
	if err != nil {
		return nil, convertErr(err, "getting wishlist of customer %d", customerID)
	}
	defer rows.Close()

	var entries []domain.WishlistItem
	for rows.Next() {
		entry, scanErr := scanWishlistItem(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning wishlist item")
		}
		entries = append(entries, *entry)
	}
	return entries, convertErr(rows.Err(), "getting wishlist of customer %d", customerID)
}

func scanWishlistItem(row pgx.Row) (*domain.WishlistItem, error) {
	var w domain.WishlistItem
	if err := row.Scan(&w.ID, &w.CreatedAt, &w.CustomerID, &w.ItemID); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &w, nil
}
