package actions

import (
	"context"

	"github.com/carson-networks/bank-ledger/internal/storage"
)

// IAction is a unit of work performed by an operator against storage.
// Results are exposed as fields on the concrete action after Perform returns.
type IAction interface {
	Perform(ctx context.Context, store *storage.Storage) error
}
