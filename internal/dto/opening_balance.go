package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/furnish-erp/ledger_backend/internal/core/domain"
	"github.com/furnish-erp/ledger_backend/internal/utils/pagination"
)

// SetOpeningBalanceRequest seeds an account's opening balance. Callers may
// supply debit/credit amounts explicitly, or BalanceAmount as shorthand: a
// positive value lands on the account's normal side.
type SetOpeningBalanceRequest struct {
	AccountID     string           `json:"accountID" binding:"required"`
	DebitAmount   *decimal.Decimal `json:"debitAmount"`
	CreditAmount  *decimal.Decimal `json:"creditAmount"`
	BalanceAmount *decimal.Decimal `json:"balanceAmount"`
	OpeningDate   time.Time        `json:"openingDate" binding:"required"`
}

// UpdateOpeningBalanceRequest corrects an existing seed.
type UpdateOpeningBalanceRequest struct {
	DebitAmount  *decimal.Decimal `json:"debitAmount"`
	CreditAmount *decimal.Decimal `json:"creditAmount"`
	OpeningDate  *time.Time       `json:"openingDate"`
}

// OpeningBalanceResponse is the API shape of an opening balance record.
type OpeningBalanceResponse struct {
	OpeningBalanceID string          `json:"openingBalanceID"`
	AccountID        string          `json:"accountID"`
	DebitAmount      decimal.Decimal `json:"debitAmount"`
	CreditAmount     decimal.Decimal `json:"creditAmount"`
	NetAmount        decimal.Decimal `json:"netAmount"`
	OpeningDate      time.Time       `json:"openingDate"`
	FiscalYear       int             `json:"fiscalYear"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// ToOpeningBalanceResponse converts a domain record.
func ToOpeningBalanceResponse(ob *domain.OpeningBalance) OpeningBalanceResponse {
	return OpeningBalanceResponse{
		OpeningBalanceID: ob.OpeningBalanceID,
		AccountID:        ob.AccountID,
		DebitAmount:      ob.DebitAmount,
		CreditAmount:     ob.CreditAmount,
		NetAmount:        ob.Net(),
		OpeningDate:      ob.OpeningDate,
		FiscalYear:       ob.FiscalYear,
		CreatedAt:        ob.CreatedAt,
	}
}

// ListOpeningBalancesResponse wraps one page of opening balances.
type ListOpeningBalancesResponse struct {
	OpeningBalances []OpeningBalanceResponse `json:"openingBalances"`
	Pagination      pagination.Meta          `json:"pagination"`
}
