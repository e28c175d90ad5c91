package services

import (
	"context"

	"github.com/furnish-erp/ledger_backend/internal/core/domain"
	"github.com/furnish-erp/ledger_backend/internal/dto"
	"github.com/furnish-erp/ledger_backend/internal/utils/pagination"
)

// AccountSvcFacade is the account registry surface consumed by handlers and
// by the other ledger services.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error)
	// GetAccount resolves an account by id, falling back to code lookup.
	GetAccount(ctx context.Context, idOrCode string) (*domain.Account, error)
	// EnsureAccount returns the account with the given code, creating it with
	// the supplied defaults when absent. Every lazy materialization point in
	// the system goes through here so it stays auditable.
	EnsureAccount(ctx context.Context, code string, defaults domain.AccountDefaults, userID string) (*domain.Account, error)
	ListAccounts(ctx context.Context, params pagination.Params) (*dto.ListAccountsResponse, error)
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error)
	DeactivateAccount(ctx context.Context, accountID string, userID string) error
}

// JournalSvcFacade is the journal entry store surface. This is the one
// integration point business-event collaborators (invoices, payments,
// investments) call: "create a POSTED entry with these lines".
type JournalSvcFacade interface {
	CreateEntry(ctx context.Context, req dto.CreateEntryRequest, creatorUserID string) (*domain.JournalEntry, error)
	PostEntry(ctx context.Context, entryID string, userID string) (*domain.JournalEntry, error)
	GetEntry(ctx context.Context, entryID string) (*domain.JournalEntry, error)
	GetEntryBySourceDocument(ctx context.Context, docType domain.SourceDocumentType, docID string) (*domain.JournalEntry, error)
	ListEntries(ctx context.Context, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error)
	ListAccountLines(ctx context.Context, accountID string, params pagination.Params) (*dto.ListLinesResponse, error)
	UpdateEntry(ctx context.Context, entryID string, req dto.UpdateEntryRequest, userID string) (*domain.JournalEntry, error)
	DeleteEntry(ctx context.Context, entryID string) error
}

// OpeningBalanceSvcFacade is the opening balance loader surface.
type OpeningBalanceSvcFacade interface {
	SetOpeningBalance(ctx context.Context, req dto.SetOpeningBalanceRequest, userID string) (*domain.OpeningBalance, error)
	GetOpeningBalanceByAccount(ctx context.Context, accountID string) (*domain.OpeningBalance, error)
	ListOpeningBalances(ctx context.Context, params pagination.Params) (*dto.ListOpeningBalancesResponse, error)
	UpdateOpeningBalance(ctx context.Context, id string, req dto.UpdateOpeningBalanceRequest, userID string) (*domain.OpeningBalance, error)
	DeleteOpeningBalance(ctx context.Context, id string, userID string) error
}

// AutoBalanceSvcFacade runs the balance-sheet reconciliation. A deliberate
// administrative action, never scheduled.
type AutoBalanceSvcFacade interface {
	Run(ctx context.Context, userID string) (*dto.AutoBalanceResponse, error)
}

// ReportingSvcFacade serves the read-only ledger aggregates.
type ReportingSvcFacade interface {
	BalanceSheet(ctx context.Context) (*dto.BalanceSheetResponse, error)
	TrialBalance(ctx context.Context) (*dto.TrialBalanceResponse, error)
}

// ServiceContainer bundles the service facades for route registration.
type ServiceContainer struct {
	Account        AccountSvcFacade
	Journal        JournalSvcFacade
	OpeningBalance OpeningBalanceSvcFacade
	AutoBalance    AutoBalanceSvcFacade
	Reporting      ReportingSvcFacade
}
