package ledger

import "errors"

// Validation and business-rule failures. All of them are returned, none of
// them leave the ledger or the rule store partially updated.
var (
	ErrInvalidDate                = errors.New("date must be in YYYYMMdd")
	ErrInvalidMonth               = errors.New("month must be YYYYMM")
	ErrMissingAccount             = errors.New("account is required")
	ErrMissingRuleID              = errors.New("ruleId is required")
	ErrInvalidAmount              = errors.New("amount must be > 0 with up to 2 decimals")
	ErrInvalidRate                = errors.New("rate must be > 0 and < 100")
	ErrInvalidTypeCode            = errors.New("type must be D or W")
	ErrFirstTransactionWithdrawal = errors.New("first transaction cannot be withdrawal")
	ErrInsufficientBalance        = errors.New("balance cannot go below 0")
	ErrAccountNotFound            = errors.New("account not found")
)
