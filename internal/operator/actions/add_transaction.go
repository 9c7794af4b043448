package actions

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-ledger/internal/ledger"
	"github.com/carson-networks/bank-ledger/internal/storage"
)

// AddTransaction admits one user transaction into an account. Inputs are
// already validated; Perform applies the account-level rules.
type AddTransaction struct {
	AccountID string
	Date      time.Time
	Type      ledger.TransactionType
	Amount    decimal.Decimal

	// Set by Perform. TransactionID is set as soon as an id is consumed,
	// even when the transaction is then rejected.
	TransactionID string
	Transactions  []ledger.Transaction

	IAction
}

func (a *AddTransaction) Perform(ctx context.Context, store *storage.Storage) error {
	acc := store.Accounts.GetOrCreate(a.AccountID)

	if acc.Len() == 0 && a.Type == ledger.TransactionTypeWithdrawal {
		return ledger.ErrFirstTransactionWithdrawal
	}

	// The id is spent here; a rejection below does not give it back.
	a.TransactionID = store.Accounts.NextTransactionID(a.Date, a.AccountID)
	candidate := ledger.NewTransaction(a.Date, a.TransactionID, a.Type, a.Amount)

	simulated := append(acc.Transactions(), candidate)
	if err := ledger.CheckRunningBalance(simulated); err != nil {
		return err
	}

	// The caller stops waiting once ctx is done; do not commit behind it.
	if err := ctx.Err(); err != nil {
		return err
	}

	acc.Append(candidate)
	a.Transactions = acc.Transactions()
	return nil
}
