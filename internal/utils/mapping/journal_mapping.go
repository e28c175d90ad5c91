package mapping

import (
	"github.com/furnish-erp/ledger_backend/internal/core/domain"
	"github.com/furnish-erp/ledger_backend/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry to a model JournalEntry.
// Lines are mapped separately; the header never embeds them in the model.
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:            d.EntryID,
		JournalNumber:      d.JournalNumber,
		EntryDate:          d.EntryDate,
		ReferenceNumber:    d.ReferenceNumber,
		Description:        d.Description,
		SourceDocumentType: string(d.SourceDocumentType),
		SourceDocumentID:   d.SourceDocumentID,
		Status:             models.EntryStatus(d.Status),
		TotalDebit:         d.TotalDebit,
		TotalCredit:        d.TotalCredit,
		PostedAt:           d.PostedAt,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalEntry converts a model JournalEntry to a domain JournalEntry.
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:            m.EntryID,
		JournalNumber:      m.JournalNumber,
		EntryDate:          m.EntryDate,
		ReferenceNumber:    m.ReferenceNumber,
		Description:        m.Description,
		SourceDocumentType: domain.SourceDocumentType(m.SourceDocumentType),
		SourceDocumentID:   m.SourceDocumentID,
		Status:             domain.EntryStatus(m.Status),
		TotalDebit:         m.TotalDebit,
		TotalCredit:        m.TotalCredit,
		PostedAt:           m.PostedAt,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelJournalLine converts a domain JournalLine to a model JournalLine.
func ToModelJournalLine(d domain.JournalLine) models.JournalLine {
	return models.JournalLine{
		LineID:         d.LineID,
		EntryID:        d.EntryID,
		LineNumber:     d.LineNumber,
		AccountID:      d.AccountID,
		DebitAmount:    d.DebitAmount,
		CreditAmount:   d.CreditAmount,
		Description:    d.Description,
		Reference:      d.Reference,
		RunningBalance: d.RunningBalance,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalLine converts a model JournalLine to a domain JournalLine.
func ToDomainJournalLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:         m.LineID,
		EntryID:        m.EntryID,
		LineNumber:     m.LineNumber,
		AccountID:      m.AccountID,
		DebitAmount:    m.DebitAmount,
		CreditAmount:   m.CreditAmount,
		Description:    m.Description,
		Reference:      m.Reference,
		RunningBalance: m.RunningBalance,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainJournalLineSlice converts a slice of model JournalLines to domain lines.
func ToDomainJournalLineSlice(ms []models.JournalLine) []domain.JournalLine {
	ds := make([]domain.JournalLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJournalLine(m)
	}
	return ds
}
