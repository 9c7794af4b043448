package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-ledger/internal/ledger"
)

// InterestRule represents an interest rule in the service layer.
type InterestRule struct {
	EffectiveDate time.Time
	RuleID        string
	RatePercent   decimal.Decimal
}

func interestRuleFromLedger(rule ledger.InterestRule) InterestRule {
	return InterestRule{
		EffectiveDate: rule.EffectiveDate,
		RuleID:        rule.RuleID,
		RatePercent:   rule.RatePercent,
	}
}
