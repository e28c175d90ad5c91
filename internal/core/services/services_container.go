package services

import (
	portsrepo "github.com/furnish-erp/ledger_backend/internal/core/ports/repositories"
	portssvc "github.com/furnish-erp/ledger_backend/internal/core/ports/services"
	"github.com/furnish-erp/ledger_backend/internal/platform/config"
)

// NewServiceContainer wires repositories into the ledger services.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.AccountRepo)
	container.Journal = NewJournalService(repos.JournalRepo, repos.AccountRepo)
	container.OpeningBalance = NewOpeningBalanceService(repos.OpeningBalanceRepo, repos.AccountRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo)
	container.AutoBalance = NewAutoBalanceService(repos.ReportingRepo, container.Account, container.Journal, AutoBalanceConfig{
		EquityAccountCode:     cfg.EquityAccountCode,
		AdjustmentAccountCode: cfg.AdjustmentAccountCode,
	})

	return container
}
