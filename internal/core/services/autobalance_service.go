package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/furnish-erp/ledger_backend/internal/core/domain"
	portsrepo "github.com/furnish-erp/ledger_backend/internal/core/ports/repositories"
	portssvc "github.com/furnish-erp/ledger_backend/internal/core/ports/services"
	"github.com/furnish-erp/ledger_backend/internal/dto"
	"github.com/furnish-erp/ledger_backend/internal/middleware"
	"github.com/furnish-erp/ledger_backend/internal/utils/accounting"
)

// AutoBalanceConfig names the accounts the corrective entry is written
// against. Both are lazily materialized on first use.
type AutoBalanceConfig struct {
	EquityAccountCode     string
	AdjustmentAccountCode string
}

// autoBalanceService detects and corrects drift of the fundamental identity
// Assets = Liabilities + Equity at the whole-ledger level. This is a blunt
// reconciliation tool: it nets all drift into equity regardless of cause,
// and can mask real bookkeeping bugs (e.g. a missing receivable). Invoke it
// deliberately as an administrative action; it is never scheduled.
type autoBalanceService struct {
	reportingRepo portsrepo.ReportingRepository
	accountSvc    portssvc.AccountSvcFacade
	journalSvc    portssvc.JournalSvcFacade
	cfg           AutoBalanceConfig
}

// NewAutoBalanceService creates a new auto-balance service.
func NewAutoBalanceService(reportingRepo portsrepo.ReportingRepository, accountSvc portssvc.AccountSvcFacade, journalSvc portssvc.JournalSvcFacade, cfg AutoBalanceConfig) portssvc.AutoBalanceSvcFacade {
	return &autoBalanceService{
		reportingRepo: reportingRepo,
		accountSvc:    accountSvc,
		journalSvc:    journalSvc,
		cfg:           cfg,
	}
}

var _ portssvc.AutoBalanceSvcFacade = (*autoBalanceService)(nil)

// Run computes the balance-sheet variance and, when it exceeds the
// tolerance, posts a single corrective entry through the normal journal
// path: the equity leg absorbs the variance, the offset leg lands on the
// Balance Adjustment expense account so the identity moves by exactly the
// missing amount.
func (s *autoBalanceService) Run(ctx context.Context, userID string) (*dto.AutoBalanceResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	summary, err := s.reportingRepo.SumBalancesByType(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate balances: %w", err)
	}

	variance := summary.Variance()
	resp := &dto.AutoBalanceResponse{
		Assets:      summary.Assets,
		Liabilities: summary.Liabilities,
		Equity:      summary.Equity,
		Variance:    variance,
	}

	if variance.Abs().LessThan(accounting.Tolerance) {
		resp.Balanced = true
		logger.Info("Balance sheet already balanced", slog.String("variance", variance.String()))
		return resp, nil
	}

	equityAcc, err := s.accountSvc.EnsureAccount(ctx, s.cfg.EquityAccountCode, domain.AccountDefaults{
		Name:          "Owner's Equity",
		AccountType:   domain.Equity,
		Subtype:       domain.Capital,
		NormalBalance: domain.CreditNormal,
		Description:   "Owner's equity; absorbs balance-sheet corrections",
	}, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve equity account: %w", err)
	}

	adjustmentAcc, err := s.accountSvc.EnsureAccount(ctx, s.cfg.AdjustmentAccountCode, domain.AccountDefaults{
		Name:          "Balance Adjustment",
		AccountType:   domain.Expense,
		Subtype:       domain.OperatingExpense,
		NormalBalance: domain.DebitNormal,
		Description:   "Offset leg for balance-sheet corrections",
	}, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve adjustment account: %w", err)
	}

	amount := variance.Abs()
	var equityLine, adjustmentLine dto.CreateLineRequest
	if variance.IsPositive() {
		// Assets exceed liabilities + equity: credit equity by the variance.
		resp.BalancingType = dto.BalancingCreditEquity
		equityLine = dto.CreateLineRequest{
			AccountID:    equityAcc.AccountID,
			CreditAmount: &amount,
			Description:  "Balance sheet correction",
		}
		adjustmentLine = dto.CreateLineRequest{
			AccountID:   adjustmentAcc.AccountID,
			DebitAmount: &amount,
			Description: "Balance sheet correction offset",
		}
	} else {
		resp.BalancingType = dto.BalancingDebitEquity
		equityLine = dto.CreateLineRequest{
			AccountID:   equityAcc.AccountID,
			DebitAmount: &amount,
			Description: "Balance sheet correction",
		}
		adjustmentLine = dto.CreateLineRequest{
			AccountID:    adjustmentAcc.AccountID,
			CreditAmount: &amount,
			Description:  "Balance sheet correction offset",
		}
	}

	entry, err := s.journalSvc.CreateEntry(ctx, dto.CreateEntryRequest{
		EntryDate:          time.Now().UTC(),
		Description:        fmt.Sprintf("Automatic balance sheet correction: variance %s", variance.String()),
		SourceDocumentType: domain.SourceBalanceAdjustment,
		Status:             domain.Posted,
		Lines:              []dto.CreateLineRequest{adjustmentLine, equityLine},
	}, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to post corrective entry: %w", err)
	}

	resp.JournalEntryID = entry.EntryID

	// Re-read the equity account for its balance after the correction.
	updatedEquity, err := s.accountSvc.GetAccount(ctx, equityAcc.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to re-read equity account: %w", err)
	}
	newBalance := updatedEquity.CurrentBalance
	resp.NewEquityBalance = &newBalance

	logger.Info("Balance sheet corrected",
		slog.String("variance", variance.String()),
		slog.String("journal_entry_id", entry.EntryID),
		slog.String("balancing_type", string(resp.BalancingType)),
	)
	return resp, nil
}
