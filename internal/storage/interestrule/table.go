package interestrule

import (
	"sort"
	"sync"
	"time"

	"github.com/carson-networks/bank-ledger/internal/ledger"
)

// RulesTable keeps rules sorted by effective date so lookups are a binary search.
type RulesTable struct {
	mu    sync.RWMutex
	rules []ledger.InterestRule
}

// Ensure RulesTable implements IRuleTable at compile time.
var _ IRuleTable = (*RulesTable)(nil)

func NewRulesTable() *RulesTable {
	return &RulesTable{}
}

func (t *RulesTable) Upsert(rule ledger.InterestRule) {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := sort.Search(len(t.rules), func(i int) bool {
		return !t.rules[i].EffectiveDate.Before(rule.EffectiveDate)
	})

	if i < len(t.rules) && t.rules[i].EffectiveDate.Equal(rule.EffectiveDate) {
		t.rules[i] = rule
		return
	}

	t.rules = append(t.rules, ledger.InterestRule{})
	copy(t.rules[i+1:], t.rules[i:])
	t.rules[i] = rule
}

func (t *RulesTable) AllOrdered() []ledger.InterestRule {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]ledger.InterestRule, len(t.rules))
	copy(out, t.rules)
	return out
}

func (t *RulesTable) LatestOnOrBefore(date time.Time) (ledger.InterestRule, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	i := sort.Search(len(t.rules), func(i int) bool {
		return t.rules[i].EffectiveDate.After(date)
	})
	if i == 0 {
		return ledger.InterestRule{}, false
	}
	return t.rules[i-1], true
}
