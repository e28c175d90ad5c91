package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/furnish-erp/ledger_backend/internal/core/domain"
)

// EntryFilter narrows ListEntries results. Zero values mean "no filter".
type EntryFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Reference string
	Status    *domain.EntryStatus
}

// JournalRepository defines persistence operations for journal entries and
// their lines. All multi-row writes are single database transactions; the
// journal number is reserved from a sequence inside the insert transaction
// so concurrent writers cannot collide.
type JournalRepository interface {
	// SaveEntry persists the header and its lines atomically and returns the
	// assigned journal number. When the entry is created directly POSTED,
	// balanceChanges carries the signed per-account deltas to apply; for a
	// DRAFT entry it must be nil and no balance is touched.
	SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine, balanceChanges map[string]decimal.Decimal) (string, error)

	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)
	FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error)
	FindEntryBySourceDocument(ctx context.Context, docType domain.SourceDocumentType, docID string) (*domain.JournalEntry, error)

	// ListEntries returns one page ordered by entry_date DESC, journal_number
	// DESC, plus the total row count for the filter.
	ListEntries(ctx context.Context, filter EntryFilter, limit, offset int) ([]domain.JournalEntry, int64, error)

	// ListLinesByAccountID returns posted lines touching one account, newest
	// first, with the running balance recorded at post time.
	ListLinesByAccountID(ctx context.Context, accountID string, limit, offset int) ([]domain.JournalLine, int64, error)

	// PostEntry transitions a DRAFT entry to POSTED and applies its balance
	// effects in one transaction. Re-verifies the balance law at the commit
	// point and is idempotent: posting an already-posted entry returns the
	// entry unchanged without reapplying deltas.
	PostEntry(ctx context.Context, entryID string, userID string, now time.Time) (*domain.JournalEntry, error)

	// UpdateEntryHeader rewrites header fields of a DRAFT entry. Fails with
	// ErrConflict if the entry is POSTED.
	UpdateEntryHeader(ctx context.Context, entry domain.JournalEntry) error

	// ReplaceLines swaps the full line set of a DRAFT entry (delete-all,
	// re-insert) and updates the header totals atomically.
	ReplaceLines(ctx context.Context, entryID string, lines []domain.JournalLine, totalDebit, totalCredit decimal.Decimal, userID string, now time.Time) error

	// DeleteEntry removes a DRAFT entry; lines cascade. Fails with
	// ErrConflict if the entry is POSTED.
	DeleteEntry(ctx context.Context, entryID string) error
}
