package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceUpTo sums the signed amounts of every transaction dated on or
// before date.
func BalanceUpTo(txns []Transaction, date time.Time) decimal.Decimal {
	balance := decimal.Zero
	for _, txn := range txns {
		if !txn.Date.After(date) {
			balance = balance.Add(txn.Signed())
		}
	}
	return balance
}

// CheckRunningBalance walks txns in canonical order and fails as soon as the
// running balance drops below zero. txns is not modified.
func CheckRunningBalance(txns []Transaction) error {
	sorted := make([]Transaction, len(txns))
	copy(sorted, txns)
	SortCanonical(sorted)

	running := decimal.Zero
	for _, txn := range sorted {
		running = running.Add(txn.Signed())
		if running.IsNegative() {
			return ErrInsufficientBalance
		}
	}
	return nil
}
