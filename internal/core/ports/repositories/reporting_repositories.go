package repositories

import (
	"context"

	"github.com/furnish-erp/ledger_backend/internal/core/domain"
)

// ReportingRepository aggregates account balances for the auto-balancer and
// the balance-sheet/trial-balance reads. Read-only.
type ReportingRepository interface {
	// SumBalancesByType sums current_balance over active accounts grouped by
	// account type for the ASSET, LIABILITY and EQUITY sides.
	SumBalancesByType(ctx context.Context) (domain.BalanceSheetSummary, error)

	// TrialBalance returns per-account balances for all active accounts,
	// ordered by code.
	TrialBalance(ctx context.Context) ([]domain.TrialBalanceRow, error)
}
