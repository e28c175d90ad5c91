package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/furnish-erp/ledger_backend/internal/apperrors"
	"github.com/furnish-erp/ledger_backend/internal/core/domain"
	portsrepo "github.com/furnish-erp/ledger_backend/internal/core/ports/repositories"
	"github.com/furnish-erp/ledger_backend/internal/models"
	"github.com/furnish-erp/ledger_backend/internal/utils/mapping"
)

const openingBalanceColumns = `opening_balance_id, account_id, debit_amount, credit_amount, opening_date, fiscal_year, created_at, created_by, last_updated_at, last_updated_by`

type PgxOpeningBalanceRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountRepository
}

// newPgxOpeningBalanceRepository creates a new repository for opening balance data.
func newPgxOpeningBalanceRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountRepository) portsrepo.OpeningBalanceRepository {
	return &PgxOpeningBalanceRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

// Ensure PgxOpeningBalanceRepository implements portsrepo.OpeningBalanceRepository
var _ portsrepo.OpeningBalanceRepository = (*PgxOpeningBalanceRepository)(nil)

func scanOpeningBalance(row pgx.Row) (models.OpeningBalance, error) {
	var m models.OpeningBalance
	err := row.Scan(
		&m.OpeningBalanceID,
		&m.AccountID,
		&m.DebitAmount,
		&m.CreditAmount,
		&m.OpeningDate,
		&m.FiscalYear,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveOpeningBalance inserts the seed and advances the account's opening and
// current balances by delta, all within one transaction.
func (r *PgxOpeningBalanceRepository) SaveOpeningBalance(ctx context.Context, ob domain.OpeningBalance, delta decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	modelOB := mapping.ToModelOpeningBalance(ob)

	// Lock the account row before touching its balances
	if _, err := r.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, []string{ob.AccountID}); err != nil {
		return err
	}

	query := `
		INSERT INTO opening_balances (` + openingBalanceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, query,
		modelOB.OpeningBalanceID,
		modelOB.AccountID,
		modelOB.DebitAmount,
		modelOB.CreditAmount,
		modelOB.OpeningDate,
		modelOB.FiscalYear,
		modelOB.CreatedAt,
		modelOB.CreatedBy,
		modelOB.LastUpdatedAt,
		modelOB.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // Unique violation on account_id
				return fmt.Errorf("%w: opening balance already exists for account %s", apperrors.ErrConflict, ob.AccountID)
			}
		}
		return fmt.Errorf("failed to save opening balance for account %s: %w", ob.AccountID, err)
	}

	if err := r.accountRepo.ApplyOpeningBalanceInTx(ctx, tx, ob.AccountID, delta, ob.CreatedBy, ob.CreatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// FindOpeningBalanceByID retrieves an opening balance record by its ID.
func (r *PgxOpeningBalanceRepository) FindOpeningBalanceByID(ctx context.Context, id string) (*domain.OpeningBalance, error) {
	query := `
		SELECT ` + openingBalanceColumns + `
		FROM opening_balances
		WHERE opening_balance_id = $1;
	`
	m, err := scanOpeningBalance(r.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find opening balance by ID %s: %w", id, err)
	}

	d := mapping.ToDomainOpeningBalance(m)
	return &d, nil
}

// FindOpeningBalanceByAccountID retrieves the seed for one account.
func (r *PgxOpeningBalanceRepository) FindOpeningBalanceByAccountID(ctx context.Context, accountID string) (*domain.OpeningBalance, error) {
	query := `
		SELECT ` + openingBalanceColumns + `
		FROM opening_balances
		WHERE account_id = $1;
	`
	m, err := scanOpeningBalance(r.Pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find opening balance for account %s: %w", accountID, err)
	}

	d := mapping.ToDomainOpeningBalance(m)
	return &d, nil
}

// ListOpeningBalances retrieves a page of opening balances ordered by opening
// date, together with the total row count.
func (r *PgxOpeningBalanceRepository) ListOpeningBalances(ctx context.Context, limit, offset int) ([]domain.OpeningBalance, int64, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM opening_balances;`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count opening balances: %w", err)
	}

	query := `
		SELECT ` + openingBalanceColumns + `
		FROM opening_balances
		ORDER BY opening_date DESC, created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query opening balances: %w", err)
	}
	defer rows.Close()

	results := []domain.OpeningBalance{}
	for rows.Next() {
		m, err := scanOpeningBalance(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan opening balance row: %w", err)
		}
		results = append(results, mapping.ToDomainOpeningBalance(m))
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating opening balance rows: %w", err)
	}

	return results, total, nil
}

// UpdateOpeningBalance rewrites the seed and adjusts the account by the
// difference between the old and new signed nets.
func (r *PgxOpeningBalanceRepository) UpdateOpeningBalance(ctx context.Context, ob domain.OpeningBalance, delta decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := r.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, []string{ob.AccountID}); err != nil {
		return err
	}

	modelOB := mapping.ToModelOpeningBalance(ob)
	query := `
		UPDATE opening_balances
		SET debit_amount = $2, credit_amount = $3, opening_date = $4, fiscal_year = $5, last_updated_at = $6, last_updated_by = $7
		WHERE opening_balance_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query,
		modelOB.OpeningBalanceID,
		modelOB.DebitAmount,
		modelOB.CreditAmount,
		modelOB.OpeningDate,
		modelOB.FiscalYear,
		modelOB.LastUpdatedAt,
		modelOB.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update opening balance %s: %w", modelOB.OpeningBalanceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := r.accountRepo.ApplyOpeningBalanceInTx(ctx, tx, ob.AccountID, delta, ob.LastUpdatedBy, ob.LastUpdatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// DeleteOpeningBalance removes the seed after reversing its balance effect.
// delta is the already-negated signed net of the record being removed.
func (r *PgxOpeningBalanceRepository) DeleteOpeningBalance(ctx context.Context, id string, accountID string, delta decimal.Decimal, userID string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := r.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, []string{accountID}); err != nil {
		return err
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM opening_balances WHERE opening_balance_id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete opening balance %s: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := r.accountRepo.ApplyOpeningBalanceInTx(ctx, tx, accountID, delta, userID, now); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}
