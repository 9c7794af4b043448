package interestrule

import (
	"time"

	"github.com/carson-networks/bank-ledger/internal/ledger"
)

// IRuleTable defines the interest rule store operations. Rules are keyed by
// effective date; at most one rule exists per date.
//
//go:generate mockery --name IRuleTable --inpackage --with-expecter --filename mock_IRuleTable.go
type IRuleTable interface {
	// Upsert stores rule, replacing any rule with the same effective date.
	Upsert(rule ledger.InterestRule)
	// AllOrdered returns every rule ascending by effective date.
	AllOrdered() []ledger.InterestRule
	// LatestOnOrBefore returns the rule with the greatest effective date <= date.
	LatestOnOrBefore(date time.Time) (ledger.InterestRule, bool)
}
