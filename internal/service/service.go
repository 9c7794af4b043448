package service

import (
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/bank-ledger/internal/operator"
	"github.com/carson-networks/bank-ledger/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Transaction  *TransactionService
	InterestRule *InterestRuleService
	Statement    *StatementService
}

// NewService wires the services to one storage and one operator. Account
// mutations go through op so they are serialized per account.
func NewService(store *storage.Storage, op *operator.OperatorDelegator, logger *logrus.Logger) *Service {
	return &Service{
		Transaction:  NewTransactionService(op, logger),
		InterestRule: NewInterestRuleService(store),
		Statement:    NewStatementService(store, op, logger),
	}
}
