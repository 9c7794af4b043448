package service

import (
	"context"
	"strings"

	"github.com/carson-networks/bank-ledger/internal/ledger"
	"github.com/carson-networks/bank-ledger/internal/storage"
)

// InterestRuleService validates and stores effective-dated interest rules.
type InterestRuleService struct {
	storage *storage.Storage
}

// NewInterestRuleService creates a new InterestRuleService.
func NewInterestRuleService(store *storage.Storage) *InterestRuleService {
	return &InterestRuleService{storage: store}
}

// UpsertRule stores a rule, replacing any rule with the same effective date.
// The rate is stored rounded to 2 places.
func (s *InterestRuleService) UpsertRule(ctx context.Context, dateText, ruleID, rateText string) error {
	date, err := ledger.ParseDate(dateText)
	if err != nil {
		return err
	}

	if strings.TrimSpace(ruleID) == "" {
		return ledger.ErrMissingRuleID
	}

	rate, err := ledger.ParseRate(rateText)
	if err != nil {
		return err
	}

	s.storage.Rules.Upsert(ledger.InterestRule{
		EffectiveDate: date,
		RuleID:        ruleID,
		RatePercent:   rate,
	})
	return nil
}

// ListOrdered returns every rule ascending by effective date.
func (s *InterestRuleService) ListOrdered(ctx context.Context) []InterestRule {
	rules := s.storage.Rules.AllOrdered()

	converted := make([]InterestRule, len(rules))
	for i, rule := range rules {
		converted[i] = interestRuleFromLedger(rule)
	}
	return converted
}
