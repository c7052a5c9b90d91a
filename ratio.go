package fra

import (
	"math"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CurrentRatio returns current assets over current liabilities, as a
// percentage rounded to one decimal.
//
// With no current liabilities the ratio is Unbounded when there are current
// assets, and 0 otherwise.
func CurrentRatio(currentAssets, currentLiabilities Amount) Percent {
	return ratio(currentAssets, currentLiabilities)
}

// DebtRatio returns total debt over equity, as a percentage rounded to one
// decimal, with the same zero equity rule as CurrentRatio.
func DebtRatio(totalDebt, equity Amount) Percent {
	return ratio(totalDebt, equity)
}

func ratio(num, den Amount) Percent {
	if den.IsZero() {
		if num.IsPositive() {
			return Unbounded
		}
		return 0
	}
	// decimal rounding is half away from zero, that is half-up for the
	// non-negative values we have here.
	r := num.value.Div(den.value).Mul(hundred).Round(1)
	f := r.InexactFloat64()
	if math.IsInf(f, 1) {
		// stays encodable as a JSON number.
		return Percent(math.MaxFloat64)
	}
	return Percent(f)
}
