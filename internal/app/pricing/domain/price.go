package domain

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// RoundPrice rounds a price to 2 decimal places using half-up rounding.
// Prices produced by the engine are never negative in the percentage paths,
// and decimal.Round rounds half away from zero, which is half-up for
// non-negative values. Rounding happens exactly once, at the very end of a
// calculation; every intermediate step keeps full precision.
func RoundPrice(p decimal.Decimal) decimal.Decimal {
	return p.Round(2)
}

// PriceRatio returns newPrice / basePrice at full precision.
// Used by RELATIVE conflict resolution to rescale overrides.
func PriceRatio(newPrice, basePrice decimal.Decimal) (decimal.Decimal, error) {
	if basePrice.IsZero() {
		return decimal.Zero, ErrInvalidBasePrice
	}
	return newPrice.Div(basePrice), nil
}
