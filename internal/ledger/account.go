package ledger

import "sync"

// Account owns the transactions of one account id. Transactions are only
// ever appended.
type Account struct {
	ID string

	mu           sync.RWMutex
	transactions []Transaction
}

func NewAccount(id string) *Account {
	return &Account{ID: id}
}

// Transactions returns a copy of the transactions in canonical order.
func (a *Account) Transactions() []Transaction {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]Transaction, len(a.transactions))
	copy(out, a.transactions)
	SortCanonical(out)
	return out
}

func (a *Account) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.transactions)
}

// Append commits a transaction. Callers validate before appending.
func (a *Account) Append(txn Transaction) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.transactions = append(a.transactions, txn)
}
