package ledger

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the kind of a ledger movement.
type TransactionType int8

const (
	TransactionTypeDeposit TransactionType = iota
	TransactionTypeWithdrawal
	TransactionTypeInterest
)

// ParseTransactionType maps a user supplied code (D or W, any case) to a type.
// Interest is system generated and has no user code.
func ParseTransactionType(code string) (TransactionType, error) {
	switch strings.ToUpper(code) {
	case "D":
		return TransactionTypeDeposit, nil
	case "W":
		return TransactionTypeWithdrawal, nil
	default:
		return 0, ErrInvalidTypeCode
	}
}

// Code is the single character used in rendered tables.
func (t TransactionType) Code() string {
	switch t {
	case TransactionTypeDeposit:
		return "D"
	case TransactionTypeWithdrawal:
		return "W"
	case TransactionTypeInterest:
		return "I"
	default:
		return "?"
	}
}

// Transaction is an immutable ledger entry. Amount is always positive; the
// sign comes from Type.
type Transaction struct {
	Date   time.Time
	ID     string
	Type   TransactionType
	Amount decimal.Decimal
}

// NewTransaction builds a transaction with the amount rounded half away from
// zero to 2 fractional digits.
func NewTransaction(date time.Time, id string, txType TransactionType, amount decimal.Decimal) Transaction {
	return Transaction{
		Date:   date,
		ID:     id,
		Type:   txType,
		Amount: amount.Round(2),
	}
}

// Signed returns the amount with the sign implied by the transaction type.
func (t Transaction) Signed() decimal.Decimal {
	switch t.Type {
	case TransactionTypeDeposit, TransactionTypeInterest:
		return t.Amount
	case TransactionTypeWithdrawal:
		return t.Amount.Neg()
	default:
		return decimal.Zero
	}
}

// TransactionID formats a user transaction id as <date>-<sequence>.
func TransactionID(date time.Time, sequence int) string {
	return fmt.Sprintf("%s-%02d", FormatDate(date), sequence)
}

// CompareCanonical orders by date, then by id. Entries that tie on both keep
// their insertion order when sorted with SortCanonical.
func CompareCanonical(a, b Transaction) int {
	if c := a.Date.Compare(b.Date); c != 0 {
		return c
	}
	return strings.Compare(a.ID, b.ID)
}

// SortCanonical sorts txns in place in canonical order.
func SortCanonical(txns []Transaction) {
	slices.SortStableFunc(txns, CompareCanonical)
}
