package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/furnish-erp/ledger_backend/internal/core/domain"
)

// OpeningBalanceRepository defines persistence for one-time account seeds.
// Each write pairs the record mutation with the corresponding account balance
// adjustment in a single transaction; the signed delta is computed by the
// service under the account's normal-balance convention.
type OpeningBalanceRepository interface {
	// SaveOpeningBalance inserts the seed and advances the account's opening
	// and current balances by delta. Fails with ErrConflict if a seed already
	// exists for the account.
	SaveOpeningBalance(ctx context.Context, ob domain.OpeningBalance, delta decimal.Decimal) error

	FindOpeningBalanceByID(ctx context.Context, id string) (*domain.OpeningBalance, error)
	FindOpeningBalanceByAccountID(ctx context.Context, accountID string) (*domain.OpeningBalance, error)
	ListOpeningBalances(ctx context.Context, limit, offset int) ([]domain.OpeningBalance, int64, error)

	// UpdateOpeningBalance rewrites the seed and adjusts the account by the
	// difference between old and new signed nets (never the full new value).
	UpdateOpeningBalance(ctx context.Context, ob domain.OpeningBalance, delta decimal.Decimal) error

	// DeleteOpeningBalance removes the seed after reversing its balance
	// effect by the given (already negated) delta.
	DeleteOpeningBalance(ctx context.Context, id string, accountID string, delta decimal.Decimal, userID string, now time.Time) error
}
