package repoargs

import (
	"github.com/fsdevblog/groph-shop/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateCustomer struct {
	FullName      string
	Username      string
	Password      string
	Age           int
	Address       string
	Gender        string
	MaritalStatus string
	Wallet        decimal.Decimal
	Role          domain.RoleType
}

type UpdateCustomer struct {
	FullName      string
	Age           int
	Address       string
	Gender        string
	MaritalStatus string
}
