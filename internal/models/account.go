package models

import (
	"github.com/shopspring/decimal"
)

// AccountType mirrors domain.AccountType for persistence.
type AccountType string

// AccountSubtype mirrors domain.AccountSubtype for persistence.
type AccountSubtype string

// NormalBalance mirrors domain.NormalBalance for persistence.
type NormalBalance string

// Account is the persistence model for the accounts table.
// current_balance is written only inside the posting transaction.
type Account struct {
	AccountID      string          `db:"account_id"`
	Code           string          `db:"code"` // Unique
	Name           string          `db:"name"`
	AccountType    AccountType     `db:"account_type"`
	Subtype        AccountSubtype  `db:"subtype"`
	NormalBalance  NormalBalance   `db:"normal_balance"`
	Description    string          `db:"description"`
	OpeningBalance decimal.Decimal `db:"opening_balance"`
	CurrentBalance decimal.Decimal `db:"current_balance"`
	IsActive       bool            `db:"is_active"`
	AuditFields
}
