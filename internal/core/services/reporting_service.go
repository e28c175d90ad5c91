package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/furnish-erp/ledger_backend/internal/core/domain"
	portsrepo "github.com/furnish-erp/ledger_backend/internal/core/ports/repositories"
	portssvc "github.com/furnish-erp/ledger_backend/internal/core/ports/services"
	"github.com/furnish-erp/ledger_backend/internal/dto"
)

// reportingService serves read-only aggregates over the account registry.
type reportingService struct {
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// BalanceSheet returns per-type totals and the identity variance.
func (s *reportingService) BalanceSheet(ctx context.Context) (*dto.BalanceSheetResponse, error) {
	summary, err := s.reportingRepo.SumBalancesByType(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate balances: %w", err)
	}
	resp := dto.ToBalanceSheetResponse(summary)
	return &resp, nil
}

// TrialBalance returns per-account balances with debit/credit side totals.
func (s *reportingService) TrialBalance(ctx context.Context) (*dto.TrialBalanceResponse, error) {
	rows, err := s.reportingRepo.TrialBalance(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build trial balance: %w", err)
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, row := range rows {
		if row.NormalBalance == domain.DebitNormal {
			totalDebit = totalDebit.Add(row.Balance)
		} else {
			totalCredit = totalCredit.Add(row.Balance)
		}
	}

	return &dto.TrialBalanceResponse{
		Rows:        rows,
		TotalDebit:  totalDebit,
		TotalCredit: totalCredit,
	}, nil
}
