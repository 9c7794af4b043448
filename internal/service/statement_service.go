package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/bank-ledger/internal/ledger"
	"github.com/carson-networks/bank-ledger/internal/operator"
	"github.com/carson-networks/bank-ledger/internal/operator/actions"
	"github.com/carson-networks/bank-ledger/internal/storage"
)

// StatementService renders account statements.
//
// PrintMonthly is not read-only: it credits the month's interest to the
// account before rendering, and a repeated call may credit again.
type StatementService struct {
	storage  *storage.Storage
	operator *operator.OperatorDelegator
	logger   *logrus.Logger
}

// NewStatementService creates a new StatementService.
func NewStatementService(store *storage.Storage, op *operator.OperatorDelegator, logger *logrus.Logger) *StatementService {
	return &StatementService{
		storage:  store,
		operator: op,
		logger:   logger,
	}
}

// PrintAccountAll renders every transaction of the account without balances.
func (s *StatementService) PrintAccountAll(ctx context.Context, accountID string) (string, error) {
	acc, ok := s.storage.Accounts.Find(accountID)
	if !ok {
		return "", ledger.ErrAccountNotFound
	}

	return RenderAccountAll(acc.ID, acc.Transactions()), nil
}

// PrintMonthly credits the interest of yearMonth (YYYYMM) when positive and
// renders the month's transactions with running balances.
func (s *StatementService) PrintMonthly(ctx context.Context, accountID, yearMonth string) (string, error) {
	month, err := ledger.ParseMonth(yearMonth)
	if err != nil {
		return "", err
	}

	action := &actions.CreditMonthlyInterest{
		AccountID: accountID,
		Month:     month,
	}

	if err := s.operator.Process(ctx, accountID, action); err != nil {
		return "", err
	}

	if action.Credited {
		s.logger.WithFields(logrus.Fields{
			"accountID": accountID,
			"month":     month.String(),
			"interest":  action.Interest.StringFixed(2),
		}).Info("StatementService.PrintMonthly.credited")
	}

	return RenderMonthly(accountID, month, action.Transactions), nil
}
