package operator

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/bank-ledger/internal/config"
	"github.com/carson-networks/bank-ledger/internal/storage"
)

// funcAction adapts a func to actions.IAction.
type funcAction func(ctx context.Context, store *storage.Storage) error

func (f funcAction) Perform(ctx context.Context, store *storage.Storage) error {
	return f(ctx, store)
}

func newTestDelegator(t *testing.T, workers int) *OperatorDelegator {
	t.Helper()
	store := storage.NewStorage(&config.Config{SequenceScope: config.SequenceScopeGlobal})
	d := NewOperatorDelegator(store, workers, 16)
	d.Start()
	t.Cleanup(d.Stop)
	return d
}

func TestProcess_ReturnsActionError(t *testing.T) {
	d := newTestDelegator(t, 2)

	err := d.Process(context.Background(), "AC001", funcAction(func(ctx context.Context, store *storage.Storage) error {
		return errors.New("rejected")
	}))

	assert.EqualError(t, err, "rejected")
}

func TestProcess_PassesStorage(t *testing.T) {
	d := newTestDelegator(t, 1)

	err := d.Process(context.Background(), "AC001", funcAction(func(ctx context.Context, store *storage.Storage) error {
		store.Accounts.GetOrCreate("AC001")
		return nil
	}))

	require.NoError(t, err)
	_, ok := d.storage.Accounts.Find("AC001")
	assert.True(t, ok)
}

func TestProcess_SameKeyNeverOverlaps(t *testing.T) {
	d := newTestDelegator(t, 4)

	var active, maxActive int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := d.Process(context.Background(), "AC001", funcAction(func(ctx context.Context, store *storage.Storage) error {
				n := atomic.AddInt32(&active, 1)
				for {
					m := atomic.LoadInt32(&maxActive)
					if n <= m || atomic.CompareAndSwapInt32(&maxActive, m, n) {
						break
					}
				}
				time.Sleep(time.Millisecond)
				atomic.AddInt32(&active, -1)
				return nil
			}))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&maxActive))
}

func TestProcess_AfterStop(t *testing.T) {
	d := newTestDelegator(t, 1)
	d.Stop()
	d.Stop()

	err := d.Process(context.Background(), "AC001", funcAction(func(ctx context.Context, store *storage.Storage) error {
		return nil
	}))

	assert.ErrorIs(t, err, ErrStopped)
}

func TestProcess_CancelledContextSkipsAction(t *testing.T) {
	d := newTestDelegator(t, 1)

	release := make(chan struct{})
	started := make(chan struct{})
	go func() {
		_ = d.Process(context.Background(), "AC001", funcAction(func(ctx context.Context, store *storage.Storage) error {
			close(started)
			<-release
			return nil
		}))
	}()
	<-started

	ctx, cancel := context.WithCancel(context.Background())
	var ran atomic.Bool
	done := make(chan error, 1)
	go func() {
		done <- d.Process(ctx, "AC001", funcAction(func(ctx context.Context, store *storage.Storage) error {
			ran.Store(true)
			return nil
		}))
	}()

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
	close(release)
	d.Stop()
	assert.False(t, ran.Load())
}
