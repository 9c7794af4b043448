package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-ledger/internal/ledger"
	"github.com/carson-networks/bank-ledger/internal/storage"
)

// CreditMonthlyInterest computes the interest of one month and, when it is
// positive, credits it as an Interest transaction on the last day of the
// month. Running it twice for the same month can credit twice: the second
// run sees the first credit in its balances.
type CreditMonthlyInterest struct {
	AccountID string
	Month     ledger.Month

	// Set by Perform.
	Interest     decimal.Decimal
	Credited     bool
	Transactions []ledger.Transaction

	IAction
}

func (c *CreditMonthlyInterest) Perform(ctx context.Context, store *storage.Storage) error {
	acc, ok := store.Accounts.Find(c.AccountID)
	if !ok {
		return ledger.ErrAccountNotFound
	}

	txns := acc.Transactions()
	c.Interest = ledger.ComputeMonthlyInterest(txns, c.Month, store.Rules)

	if err := ctx.Err(); err != nil {
		return err
	}

	if c.Interest.IsPositive() {
		acc.Append(ledger.NewTransaction(c.Month.Last(), "", ledger.TransactionTypeInterest, c.Interest))
		c.Credited = true
		txns = acc.Transactions()
	}

	c.Transactions = txns
	return nil
}
