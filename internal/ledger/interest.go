package ledger

import (
	"github.com/shopspring/decimal"
)

var daysInYear = decimal.NewFromInt(365)

// ComputeMonthlyInterest accrues interest over every day of month.
//
// For each day the end-of-day balance is multiplied by the rate of the rule
// in effect on that day (zero when no rule applies) and divided by 100. The
// sum is divided by 365 and only that final value is rounded to 2 places,
// half away from zero. Nothing is written; crediting is the caller's job.
func ComputeMonthlyInterest(txns []Transaction, month Month, rates RateLookup) decimal.Decimal {
	sorted := make([]Transaction, len(txns))
	copy(sorted, txns)
	SortCanonical(sorted)

	first, last := month.First(), month.Last()
	annualized := decimal.Zero
	eod := decimal.Zero
	next := 0

	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		for next < len(sorted) && !sorted[next].Date.After(day) {
			eod = eod.Add(sorted[next].Signed())
			next++
		}

		rate := decimal.Zero
		if rule, ok := rates.LatestOnOrBefore(day); ok {
			rate = rule.RatePercent
		}

		annualized = annualized.Add(eod.Mul(rate).Div(hundred))
	}

	return annualized.Div(daysInYear).Round(2)
}
