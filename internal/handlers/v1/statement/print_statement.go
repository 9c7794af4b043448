package statement

import (
	"context"
	"io"

	"github.com/carson-networks/bank-ledger/internal/handlers/v1/response"
	"github.com/carson-networks/bank-ledger/internal/logging"
)

type monthlyPrinter interface {
	PrintMonthly(ctx context.Context, accountID, yearMonth string) (string, error)
}

// PrintStatementHandler handles "<Account> <Year><Month>" lines.
type PrintStatementHandler struct {
	statements monthlyPrinter
}

// NewPrintStatementHandler creates a new PrintStatementHandler.
func NewPrintStatementHandler(statements monthlyPrinter) *PrintStatementHandler {
	return &PrintStatementHandler{statements: statements}
}

func (h *PrintStatementHandler) Handler(ctx context.Context, w io.Writer, fields []string, logData *logging.LogData) error {
	if len(fields) != 2 {
		response.WriteError(w, response.ErrInvalidFormat)
		return response.ErrInvalidFormat
	}

	logData.AddData("accountID", fields[0])
	logData.AddData("month", fields[1])

	text, err := h.statements.PrintMonthly(ctx, fields[0], fields[1])
	if err != nil {
		response.WriteError(w, err)
		return err
	}

	response.WriteText(w, text)
	return nil
}
