package interestrule

import (
	"context"
	"io"

	"github.com/carson-networks/bank-ledger/internal/handlers/v1/response"
	"github.com/carson-networks/bank-ledger/internal/logging"
	"github.com/carson-networks/bank-ledger/internal/service"
)

type ruleService interface {
	UpsertRule(ctx context.Context, dateText, ruleID, rateText string) error
	ListOrdered(ctx context.Context) []service.InterestRule
}

// UpsertRuleHandler handles "<Date> <RuleId> <Rate in %>" lines.
type UpsertRuleHandler struct {
	rules ruleService
}

// NewUpsertRuleHandler creates a new UpsertRuleHandler.
func NewUpsertRuleHandler(rules ruleService) *UpsertRuleHandler {
	return &UpsertRuleHandler{rules: rules}
}

// Handler stores the rule and prints the full rule table.
func (h *UpsertRuleHandler) Handler(ctx context.Context, w io.Writer, fields []string, logData *logging.LogData) error {
	if len(fields) != 3 {
		response.WriteError(w, response.ErrInvalidFormat)
		return response.ErrInvalidFormat
	}

	logData.AddData("ruleID", fields[1])

	if err := h.rules.UpsertRule(ctx, fields[0], fields[1], fields[2]); err != nil {
		response.WriteError(w, err)
		return err
	}

	rules := h.rules.ListOrdered(ctx)
	logData.AddData("ruleCount", len(rules))

	response.WriteText(w, service.RenderInterestRules(rules))
	return nil
}
