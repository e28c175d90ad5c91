package domain

import "github.com/shopspring/decimal"

// BalanceSheetSummary holds the aggregate balances used by the auto-balancer
// and the balance-sheet report.
type BalanceSheetSummary struct {
	Assets      decimal.Decimal `json:"assets"`
	Liabilities decimal.Decimal `json:"liabilities"`
	Equity      decimal.Decimal `json:"equity"`
}

// Variance returns assets - (liabilities + equity), the drift of the
// fundamental accounting identity. Zero in a correctly maintained ledger.
func (s BalanceSheetSummary) Variance() decimal.Decimal {
	return s.Assets.Sub(s.Liabilities.Add(s.Equity))
}

// TrialBalanceRow is one account's totals in the trial balance report.
type TrialBalanceRow struct {
	AccountID     string          `json:"accountID"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	AccountType   AccountType     `json:"accountType"`
	NormalBalance NormalBalance   `json:"normalBalance"`
	Balance       decimal.Decimal `json:"balance"`
}
