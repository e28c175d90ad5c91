package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/furnish-erp/ledger_backend/internal/core/domain"
	portsrepo "github.com/furnish-erp/ledger_backend/internal/core/ports/repositories"
)

type PgxReportingRepository struct {
	BaseRepository
}

// newPgxReportingRepository creates a new read-only repository for balance aggregates.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxReportingRepository implements portsrepo.ReportingRepository
var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// SumBalancesByType sums current balances of active accounts per account type.
// Types with no accounts contribute zero.
func (r *PgxReportingRepository) SumBalancesByType(ctx context.Context) (domain.BalanceSheetSummary, error) {
	query := `
		SELECT account_type, COALESCE(SUM(current_balance), 0)
		FROM accounts
		WHERE is_active = TRUE
		GROUP BY account_type;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return domain.BalanceSheetSummary{}, fmt.Errorf("failed to query balance sums by type: %w", err)
	}
	defer rows.Close()

	summary := domain.BalanceSheetSummary{
		Assets:      decimal.Zero,
		Liabilities: decimal.Zero,
		Equity:      decimal.Zero,
	}
	for rows.Next() {
		var accountType domain.AccountType
		var sum decimal.Decimal
		if err := rows.Scan(&accountType, &sum); err != nil {
			return domain.BalanceSheetSummary{}, fmt.Errorf("failed to scan balance sum row: %w", err)
		}
		switch accountType {
		case domain.Asset:
			summary.Assets = sum
		case domain.Liability:
			summary.Liabilities = sum
		case domain.Equity:
			summary.Equity = sum
		}
		// REVENUE and EXPENSE sums are not part of the balance sheet identity here
	}

	if err := rows.Err(); err != nil {
		return domain.BalanceSheetSummary{}, fmt.Errorf("error iterating balance sum rows: %w", err)
	}

	return summary, nil
}

// TrialBalance returns per-account balances for all active accounts ordered by code.
func (r *PgxReportingRepository) TrialBalance(ctx context.Context) ([]domain.TrialBalanceRow, error) {
	query := `
		SELECT account_id, code, name, account_type, normal_balance, current_balance
		FROM accounts
		WHERE is_active = TRUE
		ORDER BY code;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query trial balance: %w", err)
	}
	defer rows.Close()

	results := []domain.TrialBalanceRow{}
	for rows.Next() {
		var row domain.TrialBalanceRow
		if err := rows.Scan(
			&row.AccountID,
			&row.Code,
			&row.Name,
			&row.AccountType,
			&row.NormalBalance,
			&row.Balance,
		); err != nil {
			return nil, fmt.Errorf("failed to scan trial balance row: %w", err)
		}
		results = append(results, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trial balance rows: %w", err)
	}

	return results, nil
}
