package account

import (
	"time"

	"github.com/carson-networks/bank-ledger/internal/ledger"
)

// SequenceScope selects what a transaction id counter is keyed by.
type SequenceScope string

const (
	// SequenceScopeGlobal shares one counter per date across all accounts.
	SequenceScopeGlobal SequenceScope = "global"
	// SequenceScopeAccount keeps a counter per date and account.
	SequenceScopeAccount SequenceScope = "account"
)

// IAccountTable defines the account store operations.
// This abstraction allows swapping the implementation without changing callers.
type IAccountTable interface {
	// GetOrCreate returns the account for id, creating an empty one first if needed.
	GetOrCreate(id string) *ledger.Account
	// Find returns the account for id, or false if it was never referenced.
	Find(id string) (*ledger.Account, bool)
	// NextTransactionID consumes the next sequence number for date and
	// returns the formatted id. Consumed numbers are never returned again.
	NextTransactionID(date time.Time, accountID string) string
}
