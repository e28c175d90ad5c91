package mapping

import (
	"github.com/furnish-erp/ledger_backend/internal/core/domain"
	"github.com/furnish-erp/ledger_backend/internal/models"
)

// ToModelOpeningBalance converts a domain OpeningBalance to its model.
func ToModelOpeningBalance(d domain.OpeningBalance) models.OpeningBalance {
	return models.OpeningBalance{
		OpeningBalanceID: d.OpeningBalanceID,
		AccountID:        d.AccountID,
		DebitAmount:      d.DebitAmount,
		CreditAmount:     d.CreditAmount,
		OpeningDate:      d.OpeningDate,
		FiscalYear:       d.FiscalYear,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainOpeningBalance converts a model OpeningBalance to its domain form.
func ToDomainOpeningBalance(m models.OpeningBalance) domain.OpeningBalance {
	return domain.OpeningBalance{
		OpeningBalanceID: m.OpeningBalanceID,
		AccountID:        m.AccountID,
		DebitAmount:      m.DebitAmount,
		CreditAmount:     m.CreditAmount,
		OpeningDate:      m.OpeningDate,
		FiscalYear:       m.FiscalYear,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}
