package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus mirrors domain.EntryStatus for persistence.
type EntryStatus string

// JournalEntry is the persistence model for the journal_entries table.
type JournalEntry struct {
	EntryID            string          `db:"entry_id"`
	JournalNumber      string          `db:"journal_number"` // Unique, sequence-backed
	EntryDate          time.Time       `db:"entry_date"`
	ReferenceNumber    string          `db:"reference_number"`
	Description        string          `db:"description"`
	SourceDocumentType string          `db:"source_document_type"`
	SourceDocumentID   string          `db:"source_document_id"`
	Status             EntryStatus     `db:"status"`
	TotalDebit         decimal.Decimal `db:"total_debit"`
	TotalCredit        decimal.Decimal `db:"total_credit"`
	PostedAt           *time.Time      `db:"posted_at"`
	AuditFields
}

// JournalLine is the persistence model for the journal_entry_lines table.
// Rows cascade-delete with their owning entry.
type JournalLine struct {
	LineID         string          `db:"line_id"`
	EntryID        string          `db:"entry_id"`
	LineNumber     int             `db:"line_number"`
	AccountID      string          `db:"account_id"`
	DebitAmount    decimal.Decimal `db:"debit_amount"`
	CreditAmount   decimal.Decimal `db:"credit_amount"`
	Description    string          `db:"description"`
	Reference      string          `db:"reference"`
	RunningBalance decimal.Decimal `db:"running_balance"`
	AuditFields
}
