package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/furnish-erp/ledger_backend/internal/core/domain"
	"github.com/furnish-erp/ledger_backend/internal/utils/pagination"
)

// CreateAccountRequest defines the data needed to create a new account.
// NormalBalance may be omitted; it defaults from the account type
// (ASSET/EXPENSE debit-normal, the rest credit-normal).
type CreateAccountRequest struct {
	Code          string                `json:"code" binding:"required"`
	Name          string                `json:"name" binding:"required"`
	AccountType   domain.AccountType    `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	Subtype       domain.AccountSubtype `json:"subtype"`
	NormalBalance domain.NormalBalance  `json:"normalBalance" binding:"omitempty,oneof=DEBIT CREDIT"`
	Description   string                `json:"description"`
}

// UpdateAccountRequest defines the fields allowed for updating an account.
// Pointers distinguish zero-value updates from fields not provided.
type UpdateAccountRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

// AccountResponse mirrors domain.Account for API output.
type AccountResponse struct {
	AccountID      string                `json:"accountID"`
	Code           string                `json:"code"`
	Name           string                `json:"name"`
	AccountType    domain.AccountType    `json:"accountType"`
	Subtype        domain.AccountSubtype `json:"subtype"`
	NormalBalance  domain.NormalBalance  `json:"normalBalance"`
	Description    string                `json:"description"`
	OpeningBalance decimal.Decimal       `json:"openingBalance"`
	CurrentBalance decimal.Decimal       `json:"currentBalance"`
	IsActive       bool                  `json:"isActive"`
	CreatedAt      time.Time             `json:"createdAt"`
	LastUpdatedAt  time.Time             `json:"lastUpdatedAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:      acc.AccountID,
		Code:           acc.Code,
		Name:           acc.Name,
		AccountType:    acc.AccountType,
		Subtype:        acc.Subtype,
		NormalBalance:  acc.NormalBalance,
		Description:    acc.Description,
		OpeningBalance: acc.OpeningBalance,
		CurrentBalance: acc.CurrentBalance,
		IsActive:       acc.IsActive,
		CreatedAt:      acc.CreatedAt,
		LastUpdatedAt:  acc.LastUpdatedAt,
	}
}

// ListAccountsResponse wraps one page of accounts.
type ListAccountsResponse struct {
	Accounts   []AccountResponse `json:"accounts"`
	Pagination pagination.Meta   `json:"pagination"`
}

// ToListAccountsResponse converts a page of domain accounts.
func ToListAccountsResponse(accounts []domain.Account, meta pagination.Meta) ListAccountsResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return ListAccountsResponse{Accounts: res, Pagination: meta}
}
