package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// AccountSubtype refines the type for report grouping only; the ledger core
// never branches on it.
type AccountSubtype string

const (
	CurrentAsset      AccountSubtype = "CURRENT_ASSET"
	FixedAsset        AccountSubtype = "FIXED_ASSET"
	CurrentLiability  AccountSubtype = "CURRENT_LIABILITY"
	LongTermLiability AccountSubtype = "LONG_TERM_LIABILITY"
	Capital           AccountSubtype = "CAPITAL"
	OperatingRevenue  AccountSubtype = "OPERATING_REVENUE"
	OperatingExpense  AccountSubtype = "OPERATING_EXPENSE"
)

// NormalBalance is the side (debit or credit) that increases an account.
type NormalBalance string

const (
	DebitNormal  NormalBalance = "DEBIT"
	CreditNormal NormalBalance = "CREDIT"
)

// NormalBalanceFor returns the conventional normal balance side for an
// account type (ASSET/EXPENSE are debit-normal, the rest credit-normal).
func NormalBalanceFor(t AccountType) NormalBalance {
	if t == Asset || t == Expense {
		return DebitNormal
	}
	return CreditNormal
}

// Account is a node in the chart of accounts.
// CurrentBalance is mutated only by the posting path (the balance projector);
// no other component may write it.
type Account struct {
	AccountID      string          `json:"accountID"`      // Primary key (UUID)
	Code           string          `json:"code"`           // Short unique human key, e.g. "1010"
	Name           string          `json:"name"`           // User-visible name
	AccountType    AccountType     `json:"accountType"`    // ASSET, LIABILITY, ...
	Subtype        AccountSubtype  `json:"subtype"`        // Report grouping only
	NormalBalance  NormalBalance   `json:"normalBalance"`  // Side that increases the account
	Description    string          `json:"description"`    // Nullable user description
	OpeningBalance decimal.Decimal `json:"openingBalance"` // Set once by the opening balance loader
	CurrentBalance decimal.Decimal `json:"currentBalance"` // opening balance + signed sum of posted lines
	IsActive       bool            `json:"isActive"`       // Soft delete flag; never physically removed
	AuditFields
}

// AccountDefaults supplies the fields used when an account is lazily
// materialized by the first business event that needs it.
type AccountDefaults struct {
	Name          string
	AccountType   AccountType
	Subtype       AccountSubtype
	NormalBalance NormalBalance
	Description   string
}
