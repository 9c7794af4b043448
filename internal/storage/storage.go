package storage

import (
	"github.com/carson-networks/bank-ledger/internal/config"
	"github.com/carson-networks/bank-ledger/internal/storage/account"
	"github.com/carson-networks/bank-ledger/internal/storage/interestrule"
)

// Storage is the process-wide state container. It is built once at startup
// and handed to every component that needs it.
type Storage struct {
	Accounts account.IAccountTable
	Rules    interestrule.IRuleTable
}

func NewStorage(env *config.Config) *Storage {
	return &Storage{
		Accounts: account.NewAccountsTable(account.SequenceScope(env.SequenceScope)),
		Rules:    interestrule.NewRulesTable(),
	}
}
