package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-shop/internal/domain"
	"github.com/fsdevblog/groph-shop/internal/repository/repoargs"
	"github.com/fsdevblog/groph-shop/pkg/uow"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const customerColumns = `id, created_at, updated_at, fullname, username, password,
	age, address, gender, marital_status, wallet, role`

type CustomerRepository struct {
	db uow.DBTX
}

func NewCustomerRepository(db uow.DBTX) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(ctx context.Context, args repoargs.CreateCustomer) (*domain.Customer, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO customers (fullname, username, password, age, address, gender, marital_status, wallet, role)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+customerColumns,
		args.FullName, args.Username, args.Password, args.Age,
		args.Address, args.Gender, args.MaritalStatus, args.Wallet, args.Role,
	)
	customer, err := scanCustomer(row)
	if err != nil {
		return nil, convertErr(err, "creating customer `%s`", args.Username)
	}
	return customer, nil
}

func (r *CustomerRepository) FindByUsername(ctx context.Context, username string) (*domain.Customer, error) {
	row := r.db.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE username = $1`, username)
	customer, err := scanCustomer(row)
	if err != nil {
		return nil, convertErr(err, "finding customer by username `%s`", username)
	}
	return customer, nil
}

func (r *CustomerRepository) GetAll(ctx context.Context) ([]domain.Customer, error) {
	rows, err := r.db.Query(ctx, `SELECT `+customerColumns+` FROM customers ORDER BY id`)
	if err != nil {
		return nil, convertErr(err, "getting customers")
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		customer, scanErr := scanCustomer(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning customer")
		}
		customers = append(customers, *customer)
	}
	return customers, convertErr(rows.Err(), "getting customers")
}

func (r *CustomerRepository) Update(
	ctx context.Context,
	username string,
	args repoargs.UpdateCustomer,
) (*domain.Customer, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE customers
		SET fullname = $2, age = $3, address = $4, gender = $5, marital_status = $6, updated_at = now()
		WHERE username = $1
		RETURNING `+customerColumns,
		username, args.FullName, args.Age, args.Address, args.Gender, args.MaritalStatus,
	)
	customer, err := scanCustomer(row)
	if err != nil {
		return nil, convertErr(err, "updating customer `%s`", username)
	}
	return customer, nil
}

func (r *CustomerRepository) UpdatePassword(ctx context.Context, username string, passwordHash string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE customers SET password = $2, updated_at = now() WHERE username = $1`,
		username, passwordHash,
	)
	if err != nil {
		return convertErr(err, "updating password for `%s`", username)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "updating password for `%s`", username)
	}
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, username string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM customers WHERE username = $1`, username)
	if err != nil {
		return convertErr(err, "deleting customer `%s`", username)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "deleting customer `%s`", username)
	}
	return nil
}

// CreditWallet атомарно увеличивает баланс кошелька. Возвращает новый баланс.
func (r *CustomerRepository) CreditWallet(
	ctx context.Context,
	username string,
	amount decimal.Decimal,
) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := r.db.QueryRow(ctx, `
		UPDATE customers SET wallet = wallet + $2, updated_at = now()
		WHERE username = $1
		RETURNING wallet`,
		username, amount,
	).Scan(&balance)
	if err != nil {
		return decimal.Zero, convertErr(err, "crediting wallet of `%s`", username)
	}
	return balance, nil
}

// DebitWallet атомарно списывает средства с кошелька. Проверка достаточности баланса
// выполняется тем же UPDATE, параллельные списания не могут увести баланс в минус.
// Возвращает domain.ErrInsufficientFunds при нехватке средств.
func (r *CustomerRepository) DebitWallet(
	ctx context.Context,
	username string,
	amount decimal.Decimal,
) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := r.db.QueryRow(ctx, `
		UPDATE customers SET wallet = wallet - $2, updated_at = now()
		WHERE username = $1 AND wallet >= $2
		RETURNING wallet`,
		username, amount,
	).Scan(&balance)
	if err == nil {
		return balance, nil
	}
	if convErr := convertErr(err, "debiting wallet of `%s`", username); !isNotFound(convErr) {
		return decimal.Zero, convErr
	}

	// UPDATE не нашел строку: либо клиента нет, либо не хватило средств.
	if _, findErr := r.FindByUsername(ctx, username); findErr != nil {
		return decimal.Zero, findErr
	}
	return decimal.Zero, domain.ErrInsufficientFunds
}

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(
		&c.ID, &c.CreatedAt, &c.UpdatedAt, &c.FullName, &c.Username, &c.Password,
		&c.Age, &c.Address, &c.Gender, &c.MaritalStatus, &c.Wallet, &c.Role,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &c, nil
}
