package repo

import (
	"math/big"

	"cloud.google.com/go/spanner"
	"github.com/shopspring/decimal"
)

// Spanner NUMERIC carries 9 fractional digits; prices round-trip through
// big.Rat at that precision.
const numericScale = 9

func ratToDecimal(r *big.Rat) decimal.Decimal {
	return decimal.NewFromBigRat(r, numericScale)
}

func decimalToRat(d decimal.Decimal) big.Rat {
	return *d.Rat()
}

func nullNumericToDecimal(n spanner.NullNumeric) *decimal.Decimal {
	if !n.Valid {
		return nil
	}
	d := decimal.NewFromBigRat(&n.Numeric, numericScale)
	return &d
}

func decimalToNullNumeric(d *decimal.Decimal) spanner.NullNumeric {
	if d == nil {
		return spanner.NullNumeric{}
	}
	return spanner.NullNumeric{Numeric: *d.Rat(), Valid: true}
}

func nullString(s string) spanner.NullString {
	return spanner.NullString{StringVal: s, Valid: s != ""}
}
