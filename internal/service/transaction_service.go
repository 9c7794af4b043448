package service

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/bank-ledger/internal/ledger"
	"github.com/carson-networks/bank-ledger/internal/operator"
	"github.com/carson-networks/bank-ledger/internal/operator/actions"
)

// TransactionService validates and records deposits and withdrawals.
type TransactionService struct {
	operator *operator.OperatorDelegator
	logger   *logrus.Logger
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(op *operator.OperatorDelegator, logger *logrus.Logger) *TransactionService {
	return &TransactionService{operator: op, logger: logger}
}

// AddTransaction validates the raw input and admits the transaction.
//
// Checks run in a fixed order and the first failure is returned: date,
// account, amount, type code. Only then is the account touched: it is
// created if new, a first withdrawal is refused, an id is consumed from the
// per-date sequence, and the transaction is committed only if no prefix of
// the resulting history goes below zero. A rejection after the id was
// consumed does not give the id back.
func (s *TransactionService) AddTransaction(ctx context.Context, dateText, accountID, typeCode, amountText string) (*Account, error) {
	date, err := ledger.ParseDate(dateText)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(accountID) == "" {
		return nil, ledger.ErrMissingAccount
	}

	amount, err := ledger.ParseAmount(amountText)
	if err != nil {
		return nil, err
	}

	// Checked last so a bad code never creates the account.
	txType, err := ledger.ParseTransactionType(typeCode)
	if err != nil {
		return nil, err
	}

	action := &actions.AddTransaction{
		AccountID: accountID,
		Date:      date,
		Type:      txType,
		Amount:    amount,
	}

	if err := s.operator.Process(ctx, accountID, action); err != nil {
		fields := logrus.Fields{"accountID": accountID}
		// On a context error the action may still be running.
		if !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
			fields["transactionID"] = action.TransactionID
		}
		s.logger.WithError(err).WithFields(fields).Info("TransactionService.AddTransaction.rejected")
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"accountID":     accountID,
		"transactionID": action.TransactionID,
		"type":          txType.Code(),
		"amount":        amount.StringFixed(2),
	}).Debug("TransactionService.AddTransaction.committed")

	return accountFromLedger(accountID, action.Transactions), nil
}
