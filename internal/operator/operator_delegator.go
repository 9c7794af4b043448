package operator

import (
	"context"
	"errors"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/carson-networks/bank-ledger/internal/operator/actions"
	"github.com/carson-networks/bank-ledger/internal/storage"
)

var ErrStopped = errors.New("operator stopped")

// OperatorDelegator owns one queue per worker and routes every action by
// key. All actions for the same key land on the same worker, so they never
// interleave; different keys proceed in parallel.
type OperatorDelegator struct {
	storage  *storage.Storage
	queues   []chan ActionItem
	wg       sync.WaitGroup
	stopOnce sync.Once

	mu      sync.RWMutex
	stopped bool
}

func NewOperatorDelegator(s *storage.Storage, numWorkers int, queueSize int) *OperatorDelegator {
	if numWorkers < 1 {
		numWorkers = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}

	queues := make([]chan ActionItem, numWorkers)
	for i := range queues {
		queues[i] = make(chan ActionItem, queueSize)
	}

	return &OperatorDelegator{
		storage: s,
		queues:  queues,
	}
}

func (d *OperatorDelegator) Start() {
	for _, queue := range d.queues {
		d.wg.Add(1)
		op := NewOperator(d.storage, queue)
		go func() {
			defer d.wg.Done()
			op.Run()
		}()
	}
}

// Stop closes every queue and waits for the workers to drain them.
func (d *OperatorDelegator) Stop() {
	d.stopOnce.Do(func() {
		d.mu.Lock()
		d.stopped = true
		for _, queue := range d.queues {
			close(queue)
		}
		d.mu.Unlock()

		d.wg.Wait()
	})
}

// Process runs action on the worker that owns key and waits for it to finish.
func (d *OperatorDelegator) Process(ctx context.Context, key string, action actions.IAction) error {
	respCh := make(chan ActionItemResponse, 1)
	item := ActionItem{
		ctx:      ctx,
		action:   action,
		response: respCh,
	}

	if err := d.enqueue(ctx, key, item); err != nil {
		return err
	}

	select {
	case resp := <-respCh:
		return resp.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *OperatorDelegator) enqueue(ctx context.Context, key string, item ActionItem) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.stopped {
		return ErrStopped
	}

	select {
	case d.shard(key) <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *OperatorDelegator) shard(key string) chan ActionItem {
	return d.queues[xxhash.Sum64String(key)%uint64(len(d.queues))]
}
