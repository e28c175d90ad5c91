package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/furnish-erp/ledger_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	journalRepo := newPgxJournalRepository(dbPool, accountRepo)
	openingBalanceRepo := newPgxOpeningBalanceRepository(dbPool, accountRepo)
	reportingRepo := newPgxReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo:        accountRepo,
		JournalRepo:        journalRepo,
		OpeningBalanceRepo: openingBalanceRepo,
		ReportingRepo:      reportingRepo,
	}
}
