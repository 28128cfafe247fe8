// Package money does currency arithmetic in decimal and rounds to cents
// before handing values back as float64 for storage.
package money

import "github.com/shopspring/decimal"

func FromFloat(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

// Times returns price × qty.
func Times(price float64, qty int) decimal.Decimal {
	return decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(qty)))
}

// Float rounds to two places.
func Float(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}

func Sum(values ...float64) float64 {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromFloat(v))
	}
	return Float(total)
}
