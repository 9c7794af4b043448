package account

import (
	"time"

	"github.com/carson-networks/bank-ledger/internal/ledger"
)

func (t *AccountsTable) GetOrCreate(id string) *ledger.Account {
	if acc, ok := t.Find(id); ok {
		return acc
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	// Another caller may have created it between the two locks.
	if acc, ok := t.accounts[id]; ok {
		return acc
	}

	acc := ledger.NewAccount(id)
	t.accounts[id] = acc
	return acc
}

func (t *AccountsTable) NextTransactionID(date time.Time, accountID string) string {
	return ledger.TransactionID(date, t.sequence.Next(date, accountID))
}
