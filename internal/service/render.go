package service

import (
	"fmt"
	"strings"

	"github.com/carson-networks/bank-ledger/internal/ledger"
)

const (
	accountAllHeader    = "| Date     | Txn Id      | Type | Amount |"
	monthlyHeader       = "| Date     | Txn Id      | Type | Amount | Balance |"
	interestRulesHeader = "| Date     | RuleId | Rate (%) |"
)

// Column widths are minimums: longer ids widen the row, nothing is truncated.

// RenderAccountAll renders txns, already in canonical order, without balances.
func RenderAccountAll(accountID string, txns []ledger.Transaction) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Account: %s\n", accountID)
	sb.WriteString(accountAllHeader + "\n")

	for _, txn := range txns {
		fmt.Fprintf(&sb, "| %s | %-12s| %s    | %6s |\n",
			ledger.FormatDate(txn.Date), txn.ID, txn.Type.Code(), txn.Amount.StringFixed(2))
	}

	return sb.String()
}

// RenderMonthly renders the transactions of month with a running balance
// that starts from the balance at the end of the previous day.
func RenderMonthly(accountID string, month ledger.Month, txns []ledger.Transaction) string {
	first, last := month.First(), month.Last()

	var sb strings.Builder
	fmt.Fprintf(&sb, "Account: %s\n", accountID)
	sb.WriteString(monthlyHeader + "\n")

	running := ledger.BalanceUpTo(txns, first.AddDate(0, 0, -1))
	for _, txn := range txns {
		if txn.Date.Before(first) || txn.Date.After(last) {
			continue
		}

		running = running.Add(txn.Signed())
		fmt.Fprintf(&sb, "| %s | %-12s| %s    | %6s | %7s |\n",
			ledger.FormatDate(txn.Date), txn.ID, txn.Type.Code(), txn.Amount.StringFixed(2), running.StringFixed(2))
	}

	return sb.String()
}

// RenderInterestRules renders rules in the order given.
func RenderInterestRules(rules []InterestRule) string {
	var sb strings.Builder
	sb.WriteString("Interest rules:\n")
	sb.WriteString(interestRulesHeader + "\n")

	for _, rule := range rules {
		fmt.Fprintf(&sb, "| %s | %-6s | %8s |\n",
			ledger.FormatDate(rule.EffectiveDate), rule.RuleID, rule.RatePercent.StringFixed(2))
	}

	return sb.String()
}
