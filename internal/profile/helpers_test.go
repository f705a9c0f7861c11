package profile

import "github.com/shopspring/decimal"

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}
