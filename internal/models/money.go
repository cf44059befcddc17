package models

import "github.com/shopspring/decimal"

func init() {
	// Денежные поля отдаются в JSON числами, а не строками.
	decimal.MarshalJSONWithoutQuotes = true
}
