package repoargs

import "github.com/shopspring/decimal"

type CreateItem struct {
	Name         string
	Category     string
	Description  string
	PricePerItem decimal.Decimal
	StockCount   int
}

type UpdateItem struct {
	Name         string
	Category     string
	Description  string
	PricePerItem decimal.Decimal
	StockCount   int
}
