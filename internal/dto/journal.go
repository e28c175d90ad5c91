package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/furnish-erp/ledger_backend/internal/core/domain"
	"github.com/furnish-erp/ledger_backend/internal/utils/pagination"
)

// CreateLineRequest is one leg of a new journal entry. Exactly one of
// DebitAmount and CreditAmount must be a positive amount.
type CreateLineRequest struct {
	AccountID    string           `json:"accountID" binding:"required"`
	DebitAmount  *decimal.Decimal `json:"debitAmount" binding:"omitempty,dgt0"`
	CreditAmount *decimal.Decimal `json:"creditAmount" binding:"omitempty,dgt0"`
	Description  string           `json:"description"`
	Reference    string           `json:"reference"`
}

// CreateEntryRequest defines a new journal entry with its lines. Status
// defaults to DRAFT; business events that post immediately pass POSTED.
type CreateEntryRequest struct {
	EntryDate          time.Time                 `json:"entryDate" binding:"required"`
	ReferenceNumber    string                    `json:"referenceNumber"`
	Description        string                    `json:"description"`
	SourceDocumentType domain.SourceDocumentType `json:"sourceDocumentType" binding:"omitempty,oneof=INVOICE PAYMENT SUPPLIER_PAYMENT INVESTMENT WITHDRAWAL OPENING_BALANCE BALANCE_ADJUSTMENT MANUAL"`
	SourceDocumentID   string                    `json:"sourceDocumentID"`
	Status             domain.EntryStatus        `json:"status" binding:"omitempty,oneof=DRAFT POSTED"`
	Lines              []CreateLineRequest       `json:"lines" binding:"required,min=2,dive"`
}

// UpdateEntryRequest updates a DRAFT entry. When Lines is non-nil the whole
// line set is replaced and re-validated for balance.
type UpdateEntryRequest struct {
	EntryDate       *time.Time          `json:"entryDate"`
	ReferenceNumber *string             `json:"referenceNumber"`
	Description     *string             `json:"description"`
	Lines           []CreateLineRequest `json:"lines" binding:"omitempty,min=2,dive"`
}

// ListEntriesParams are the query parameters for listing journal entries.
type ListEntriesParams struct {
	pagination.Params
	StartDate *time.Time          `form:"startDate" time_format:"2006-01-02"`
	EndDate   *time.Time          `form:"endDate" time_format:"2006-01-02"`
	Reference string              `form:"reference"`
	Status    *domain.EntryStatus `form:"status"`
}

// LineResponse is the API shape of a journal line.
type LineResponse struct {
	LineID         string          `json:"lineID"`
	LineNumber     int             `json:"lineNumber"`
	AccountID      string          `json:"accountID"`
	DebitAmount    decimal.Decimal `json:"debitAmount"`
	CreditAmount   decimal.Decimal `json:"creditAmount"`
	Description    string          `json:"description"`
	Reference      string          `json:"reference"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// EntryResponse is the API shape of a journal entry.
type EntryResponse struct {
	EntryID            string                    `json:"entryID"`
	JournalNumber      string                    `json:"journalNumber"`
	EntryDate          time.Time                 `json:"entryDate"`
	ReferenceNumber    string                    `json:"referenceNumber"`
	Description        string                    `json:"description"`
	SourceDocumentType domain.SourceDocumentType `json:"sourceDocumentType,omitempty"`
	SourceDocumentID   string                    `json:"sourceDocumentID,omitempty"`
	Status             domain.EntryStatus        `json:"status"`
	TotalDebit         decimal.Decimal           `json:"totalDebit"`
	TotalCredit        decimal.Decimal           `json:"totalCredit"`
	PostedAt           *time.Time                `json:"postedAt,omitempty"`
	Lines              []LineResponse            `json:"lines,omitempty"`
	CreatedAt          time.Time                 `json:"createdAt"`
}

// ToLineResponse converts a domain line.
func ToLineResponse(l *domain.JournalLine) LineResponse {
	return LineResponse{
		LineID:         l.LineID,
		LineNumber:     l.LineNumber,
		AccountID:      l.AccountID,
		DebitAmount:    l.DebitAmount,
		CreditAmount:   l.CreditAmount,
		Description:    l.Description,
		Reference:      l.Reference,
		RunningBalance: l.RunningBalance,
	}
}

// ToEntryResponse converts a domain entry with whatever lines it carries.
func ToEntryResponse(e *domain.JournalEntry) EntryResponse {
	resp := EntryResponse{
		EntryID:            e.EntryID,
		JournalNumber:      e.JournalNumber,
		EntryDate:          e.EntryDate,
		ReferenceNumber:    e.ReferenceNumber,
		Description:        e.Description,
		SourceDocumentType: e.SourceDocumentType,
		SourceDocumentID:   e.SourceDocumentID,
		Status:             e.Status,
		TotalDebit:         e.TotalDebit,
		TotalCredit:        e.TotalCredit,
		PostedAt:           e.PostedAt,
		CreatedAt:          e.CreatedAt,
	}
	if len(e.Lines) > 0 {
		resp.Lines = make([]LineResponse, len(e.Lines))
		for i := range e.Lines {
			resp.Lines[i] = ToLineResponse(&e.Lines[i])
		}
	}
	return resp
}

// ListEntriesResponse wraps one page of entries.
type ListEntriesResponse struct {
	Entries    []EntryResponse `json:"entries"`
	Pagination pagination.Meta `json:"pagination"`
}

// ListLinesResponse wraps one page of account ledger lines.
type ListLinesResponse struct {
	Lines      []LineResponse  `json:"lines"`
	Pagination pagination.Meta `json:"pagination"`
}
