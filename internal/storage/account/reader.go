package account

import (
	"github.com/carson-networks/bank-ledger/internal/ledger"
)

func (t *AccountsTable) Find(id string) (*ledger.Account, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	acc, ok := t.accounts[id]
	return acc, ok
}
