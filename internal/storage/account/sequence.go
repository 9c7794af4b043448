package account

import (
	"sync"
	"time"

	"github.com/carson-networks/bank-ledger/internal/ledger"
)

// Sequence hands out per-date counters starting at 1. Read and increment
// happen under one lock so concurrent callers never see the same value.
type Sequence struct {
	scope SequenceScope

	mu       sync.Mutex
	counters map[sequenceKey]int
}

type sequenceKey struct {
	date      string
	accountID string
}

func NewSequence(scope SequenceScope) *Sequence {
	if scope != SequenceScopeAccount {
		scope = SequenceScopeGlobal
	}
	return &Sequence{
		scope:    scope,
		counters: make(map[sequenceKey]int),
	}
}

func (s *Sequence) Next(date time.Time, accountID string) int {
	key := sequenceKey{date: ledger.FormatDate(date)}
	if s.scope == SequenceScopeAccount {
		key.accountID = accountID
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters[key]++
	return s.counters[key]
}
