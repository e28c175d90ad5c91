package dto

import (
	"github.com/shopspring/decimal"

	"github.com/furnish-erp/ledger_backend/internal/core/domain"
)

// BalancingType names the direction of an auto-balance correction.
type BalancingType string

const (
	BalancingCreditEquity BalancingType = "CREDIT_EQUITY"
	BalancingDebitEquity  BalancingType = "DEBIT_EQUITY"
)

// AutoBalanceResponse reports the balance-sheet aggregates and, when a
// correction was posted, the corrective entry's details.
type AutoBalanceResponse struct {
	Assets      decimal.Decimal `json:"assets"`
	Liabilities decimal.Decimal `json:"liabilities"`
	Equity      decimal.Decimal `json:"equity"`
	Variance    decimal.Decimal `json:"variance"`
	Balanced    bool            `json:"balanced"`

	JournalEntryID   string           `json:"journalEntryID,omitempty"`
	NewEquityBalance *decimal.Decimal `json:"newEquityBalance,omitempty"`
	BalancingType    BalancingType    `json:"balancingType,omitempty"`
}

// BalanceSheetResponse is the read-only balance-sheet summary.
type BalanceSheetResponse struct {
	Assets      decimal.Decimal `json:"assets"`
	Liabilities decimal.Decimal `json:"liabilities"`
	Equity      decimal.Decimal `json:"equity"`
	Variance    decimal.Decimal `json:"variance"`
}

// ToBalanceSheetResponse converts the domain summary.
func ToBalanceSheetResponse(s domain.BalanceSheetSummary) BalanceSheetResponse {
	return BalanceSheetResponse{
		Assets:      s.Assets,
		Liabilities: s.Liabilities,
		Equity:      s.Equity,
		Variance:    s.Variance(),
	}
}

// TrialBalanceResponse lists per-account balances plus the side totals.
type TrialBalanceResponse struct {
	Rows        []domain.TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal          `json:"totalDebit"`
	TotalCredit decimal.Decimal          `json:"totalCredit"`
}
