package account

import (
	"sync"

	"github.com/carson-networks/bank-ledger/internal/ledger"
)

// AccountsTable is the in-memory account store.
type AccountsTable struct {
	mu       sync.RWMutex
	accounts map[string]*ledger.Account
	sequence *Sequence
}

// Ensure AccountsTable implements IAccountTable at compile time.
var _ IAccountTable = (*AccountsTable)(nil)

func NewAccountsTable(scope SequenceScope) *AccountsTable {
	return &AccountsTable{
		accounts: make(map[string]*ledger.Account),
		sequence: NewSequence(scope),
	}
}
