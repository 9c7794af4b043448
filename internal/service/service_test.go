package service

import (
	"testing"

	"github.com/sirupsen/logrus/hooks/test"

	"github.com/carson-networks/bank-ledger/internal/config"
	"github.com/carson-networks/bank-ledger/internal/operator"
	"github.com/carson-networks/bank-ledger/internal/storage"
)

func newTestService(t *testing.T) (*Service, *storage.Storage, *test.Hook) {
	t.Helper()
	return newTestServiceWithScope(t, config.SequenceScopeGlobal)
}

func newTestServiceWithScope(t *testing.T, scope string) (*Service, *storage.Storage, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	store := storage.NewStorage(&config.Config{SequenceScope: scope})
	op := operator.NewOperatorDelegator(store, 4, 64)
	op.Start()
	t.Cleanup(op.Stop)
	return NewService(store, op, logger), store, hook
}
