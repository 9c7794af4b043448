package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-ledger/internal/ledger"
)

// Account is a read-only view of an account and its transactions in
// canonical order.
type Account struct {
	ID           string
	Transactions []Transaction
}

// Transaction represents a transaction in the service layer.
type Transaction struct {
	Date   time.Time
	ID     string
	Type   ledger.TransactionType
	Amount decimal.Decimal
}

func accountFromLedger(id string, txns []ledger.Transaction) *Account {
	converted := make([]Transaction, len(txns))
	for i, txn := range txns {
		converted[i] = Transaction{
			Date:   txn.Date,
			ID:     txn.ID,
			Type:   txn.Type,
			Amount: txn.Amount,
		}
	}
	return &Account{ID: id, Transactions: converted}
}
