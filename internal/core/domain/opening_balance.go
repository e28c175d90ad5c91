package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OpeningBalance is the one-time seed record for an account, distinct from
// ongoing journal activity. At most one exists per account.
type OpeningBalance struct {
	OpeningBalanceID string          `json:"openingBalanceID"` // Primary key (UUID)
	AccountID        string          `json:"accountID"`        // Unique per account
	DebitAmount      decimal.Decimal `json:"debitAmount"`
	CreditAmount     decimal.Decimal `json:"creditAmount"`
	OpeningDate      time.Time       `json:"openingDate"`
	FiscalYear       int             `json:"fiscalYear"`
	AuditFields
}

// Net returns debit minus credit, the raw net of the seed record.
func (o OpeningBalance) Net() decimal.Decimal {
	return o.DebitAmount.Sub(o.CreditAmount)
}

// SignedNet returns the balance effect of the record under the account's
// normal-balance convention, so opening balances flow through the same
// projection arithmetic as ordinary postings.
func (o OpeningBalance) SignedNet(normal NormalBalance) decimal.Decimal {
	if normal == DebitNormal {
		return o.DebitAmount.Sub(o.CreditAmount)
	}
	return o.CreditAmount.Sub(o.DebitAmount)
}
