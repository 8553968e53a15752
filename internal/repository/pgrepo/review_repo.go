package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-shop/internal/domain"
	"github.com/fsdevblog/groph-shop/internal/repository/repoargs"
	"github.com/fsdevblog/groph-shop/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const reviewColumns = `id, created_at, updated_at, customer_id, item_id, rating, comment, status`

type ReviewRepository struct {
	db uow.DBTX
}

func NewReviewRepository(db uow.DBTX) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, args repoargs.CreateReview) (*domain.Review, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO reviews (customer_id, item_id, rating, comment, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+reviewColumns,
		args.CustomerID, args.ItemID, args.Rating, args.Comment, args.Status,
	)
	review, err := scanReview(row)
	if err != nil {
		return nil, convertErr(err, "creating review for item %d", args.ItemID)
	}
	return review, nil
}

func (r *ReviewRepository) Update(ctx context.Context, reviewID int64, args repoargs.UpdateReview) (*domain.Review, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE reviews SET rating = $2, comment = $3, updated_at = now()
		WHERE id = $1
		RETURNING `+reviewColumns,
		reviewID, args.Rating, args.Comment,
	)
	review, err := scanReview(row)
	if err != nil {
		return nil, convertErr(err, "updating review with id %d", reviewID)
	}
	return review, nil
}

func (r *ReviewRepository) UpdateStatus(
	ctx context.Context,
	reviewID int64,
	status domain.ReviewStatusType,
) (*domain.Review, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE reviews SET status = $2, updated_at = now()
		WHERE id = $1
		RETURNING `+reviewColumns,
		reviewID, status,
	)
	review, err := scanReview(row)
	if err != nil {
		return nil, convertErr(err, "updating status of review with id %d", reviewID)
	}
	return review, nil
}

func (r *ReviewRepository) Delete(ctx context.Context, reviewID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, reviewID)
	if err != nil {
		return convertErr(err, "deleting review with id %d", reviewID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "deleting review with id %d", reviewID)
	}
	return nil
}

func (r *ReviewRepository) FindByID(ctx context.Context, reviewID int64) (*domain.Review, error) {
	row := r.db.QueryRow(ctx, `SELECT `+reviewColumns+` FROM reviews WHERE id = $1`, reviewID)
	review, err := scanReview(row)
	if err != nil {
		return nil, convertErr(err, "finding review by id %d", reviewID)
	}
	return review, nil
}

func (r *ReviewRepository) GetByItemID(ctx context.Context, itemID int64) ([]domain.Review, error) {
	return r.queryReviews(ctx,
		`SELECT `+reviewColumns+` FROM reviews WHERE item_id = $1 ORDER BY created_at DESC`, itemID)
}

func (r *ReviewRepository) GetByCustomerID(ctx context.Context, customerID int64) ([]domain.Review, error) {
	return r.queryReviews(ctx,
		`SELECT `+reviewColumns+` FROM reviews WHERE customer_id = $1 ORDER BY created_at DESC`, customerID)
}

func (r *ReviewRepository) queryReviews(ctx context.Context, sql string, args ...any) ([]domain.Review, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, convertErr(err, "getting reviews")
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		review, scanErr := scanReview(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning review")
		}
		reviews = append(reviews, *review)
	}
	return reviews, convertErr(rows.Err(), "getting reviews")
}

func scanReview(row pgx.Row) (*domain.Review, error) {
	var rv domain.Review
	err := row.Scan(
		&rv.ID, &rv.CreatedAt, &rv.UpdatedAt, &rv.CustomerID, &rv.ItemID,
		&rv.Rating, &rv.Comment, &rv.Status,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &rv, nil
}
