package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/furnish-erp/ledger_backend/internal/core/domain"
)

// AccountRepository defines persistence operations for the chart of accounts.
//
// ApplyBalanceDeltasInTx is the only write path for current_balance and must
// run inside the posting (or opening-balance) transaction with the touched
// rows already locked via FindAccountsByIDsForUpdate.
type AccountRepository interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	FindAccountByCode(ctx context.Context, code string) (*domain.Account, error)
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)
	ListAccounts(ctx context.Context, limit, offset int) ([]domain.Account, int64, error)
	UpdateAccount(ctx context.Context, account domain.Account) error
	DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error

	// FindAccountsByIDsForUpdate locks the account rows for the duration of
	// the surrounding transaction. Fails with ErrNotFound if any id is missing.
	FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error)

	// ApplyBalanceDeltasInTx adds each signed delta to the account's
	// current_balance. Sign conventions are resolved by the caller.
	ApplyBalanceDeltasInTx(ctx context.Context, tx pgx.Tx, deltas map[string]decimal.Decimal, userID string, now time.Time) error

	// ApplyOpeningBalanceInTx advances both opening_balance and
	// current_balance by the given signed delta, keeping the balance
	// invariant free of special cases for opening seeds.
	ApplyOpeningBalanceInTx(ctx context.Context, tx pgx.Tx, accountID string, delta decimal.Decimal, userID string, now time.Time) error
}
