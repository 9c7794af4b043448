package transaction

import (
	"context"
	"io"

	"github.com/carson-networks/bank-ledger/internal/handlers/v1/response"
	"github.com/carson-networks/bank-ledger/internal/logging"
	"github.com/carson-networks/bank-ledger/internal/service"
)

type transactionAdder interface {
	AddTransaction(ctx context.Context, dateText, accountID, typeCode, amountText string) (*service.Account, error)
}

type accountPrinter interface {
	PrintAccountAll(ctx context.Context, accountID string) (string, error)
}

// AddTransactionHandler handles "<Date> <Account> <Type> <Amount>" lines.
type AddTransactionHandler struct {
	transactions transactionAdder
	statements   accountPrinter
}

// NewAddTransactionHandler creates a new AddTransactionHandler.
func NewAddTransactionHandler(transactions transactionAdder, statements accountPrinter) *AddTransactionHandler {
	return &AddTransactionHandler{
		transactions: transactions,
		statements:   statements,
	}
}

// Handler records the transaction and prints every transaction of the
// account. Rejections are printed and returned.
func (h *AddTransactionHandler) Handler(ctx context.Context, w io.Writer, fields []string, logData *logging.LogData) error {
	if len(fields) != 4 {
		response.WriteError(w, response.ErrInvalidFormat)
		return response.ErrInvalidFormat
	}

	logData.AddData("accountID", fields[1])

	acc, err := h.transactions.AddTransaction(ctx, fields[0], fields[1], fields[2], fields[3])
	if err != nil {
		response.WriteError(w, err)
		return err
	}
	logData.AddData("transactionCount", len(acc.Transactions))

	text, err := h.statements.PrintAccountAll(ctx, acc.ID)
	if err != nil {
		response.WriteError(w, err)
		return err
	}

	response.WriteText(w, text)
	return nil
}
