package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/furnish-erp/ledger_backend/internal/apperrors"
)

// EntryStatus indicates the lifecycle state of a journal entry.
type EntryStatus string

const (
	Draft  EntryStatus = "DRAFT"
	Posted EntryStatus = "POSTED"
)

// SourceDocumentType is the closed set of business documents a journal entry
// may reference. The ledger stores the tag and an opaque id; it never
// dereferences them.
type SourceDocumentType string

const (
	SourceInvoice           SourceDocumentType = "INVOICE"
	SourcePayment           SourceDocumentType = "PAYMENT"
	SourceSupplierPayment   SourceDocumentType = "SUPPLIER_PAYMENT"
	SourceInvestment        SourceDocumentType = "INVESTMENT"
	SourceWithdrawal        SourceDocumentType = "WITHDRAWAL"
	SourceOpeningBalance    SourceDocumentType = "OPENING_BALANCE"
	SourceBalanceAdjustment SourceDocumentType = "BALANCE_ADJUSTMENT"
	SourceManual            SourceDocumentType = "MANUAL"
)

// JournalEntry is an atomic, dated financial event composed of at least two
// lines. Once posted, the entry and its lines are immutable; corrections go
// through an explicit offsetting entry.
type JournalEntry struct {
	EntryID            string             `json:"entryID"`       // Primary key (UUID)
	JournalNumber      string             `json:"journalNumber"` // Zero-padded global sequence, e.g. "000001"
	EntryDate          time.Time          `json:"entryDate"`
	ReferenceNumber    string             `json:"referenceNumber"` // Free-form cross reference
	Description        string             `json:"description"`
	SourceDocumentType SourceDocumentType `json:"sourceDocumentType"`
	SourceDocumentID   string             `json:"sourceDocumentID"`
	Status             EntryStatus        `json:"status"`
	TotalDebit         decimal.Decimal    `json:"totalDebit"`
	TotalCredit        decimal.Decimal    `json:"totalCredit"`
	PostedAt           *time.Time         `json:"postedAt"` // Idempotency guard for posting
	Lines              []JournalLine      `json:"lines,omitempty"`
	AuditFields
}

// JournalLine is one leg of a journal entry. Exactly one of DebitAmount and
// CreditAmount is strictly positive; the other is zero.
type JournalLine struct {
	LineID       string          `json:"lineID"`  // Primary key (UUID)
	EntryID      string          `json:"entryID"` // FK -> JournalEntry (owning side)
	LineNumber   int             `json:"lineNumber"`
	AccountID    string          `json:"accountID"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
	Description  string          `json:"description"`
	Reference    string          `json:"reference"`
	// RunningBalance is the account balance immediately after this line was
	// posted. Set by the repository at post time, zero for draft lines.
	RunningBalance decimal.Decimal `json:"runningBalance"`
	AuditFields
}

// IsDebit reports whether the line is a debit leg.
func (l JournalLine) IsDebit() bool {
	return l.DebitAmount.IsPositive()
}

// Amount returns the magnitude of the line, whichever side it is on.
func (l JournalLine) Amount() decimal.Decimal {
	if l.IsDebit() {
		return l.DebitAmount
	}
	return l.CreditAmount
}

// Validate checks the single-sidedness invariant: exactly one of debit and
// credit set, strictly positive, the other zero.
func (l JournalLine) Validate() error {
	debitSet := l.DebitAmount.IsPositive()
	creditSet := l.CreditAmount.IsPositive()
	if l.DebitAmount.IsNegative() || l.CreditAmount.IsNegative() {
		return fmt.Errorf("%w: line amounts must not be negative (account %s)", apperrors.ErrValidation, l.AccountID)
	}
	if debitSet == creditSet {
		return fmt.Errorf("%w: line must have exactly one of debit or credit set to a positive amount (account %s)", apperrors.ErrValidation, l.AccountID)
	}
	if l.AccountID == "" {
		return fmt.Errorf("%w: line is missing an account id", apperrors.ErrValidation)
	}
	return nil
}

// IsPosted reports whether the entry has been posted.
func (e JournalEntry) IsPosted() bool {
	return e.Status == Posted
}
