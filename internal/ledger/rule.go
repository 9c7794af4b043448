package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// InterestRule is an annual rate effective from EffectiveDate until a rule
// with a later date supersedes it.
type InterestRule struct {
	EffectiveDate time.Time
	RuleID        string
	RatePercent   decimal.Decimal
}

// RateLookup finds the rule with the greatest effective date on or before date.
type RateLookup interface {
	LatestOnOrBefore(date time.Time) (InterestRule, bool)
}
