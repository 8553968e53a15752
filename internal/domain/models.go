package domain

import (
	"github.com/shopspring/decimal"

	"time"
)

type Customer struct {
	ID            int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
	FullName      string
	Username      string
	Password      string
	Age           int
	Address       string
	Gender        string
	MaritalStatus string
	Wallet        decimal.Decimal
	Role          RoleType
}

type Item struct {
	ID           int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Name         string
	Category     string
	Description  string
	PricePerItem decimal.Decimal
	StockCount   int
}

// Order неизменяемая запись о совершенной покупке. Создается строго после того как
// списание средств и резервирование товара подтверждены владеющими сервисами.
type Order struct {
	ID         int64
	CreatedAt  time.Time
	CustomerID int64
	ItemID     int64
	Quantity   int
}

type WishlistItem struct {
	ID         int64
	CreatedAt  time.Time
	CustomerID int64
	ItemID     int64
}

type Review struct {
	ID         int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
	CustomerID int64
	ItemID     int64
	Rating     int
	Comment    string
	Status     ReviewStatusType
}
