package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OpeningBalance is the persistence model for the opening_balances table.
// account_id carries a unique constraint: one seed per account.
type OpeningBalance struct {
	OpeningBalanceID string          `db:"opening_balance_id"`
	AccountID        string          `db:"account_id"`
	DebitAmount      decimal.Decimal `db:"debit_amount"`
	CreditAmount     decimal.Decimal `db:"credit_amount"`
	OpeningDate      time.Time       `db:"opening_date"`
	FiscalYear       int             `db:"fiscal_year"`
	AuditFields
}
