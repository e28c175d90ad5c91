package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/furnish-erp/ledger_backend/internal/apperrors"
	"github.com/furnish-erp/ledger_backend/internal/core/domain"
	portsrepo "github.com/furnish-erp/ledger_backend/internal/core/ports/repositories"
	"github.com/furnish-erp/ledger_backend/internal/models"
	"github.com/furnish-erp/ledger_backend/internal/utils/accounting"
	"github.com/furnish-erp/ledger_backend/internal/utils/mapping"
)

const entryColumns = `entry_id, journal_number, entry_date, reference_number, description, source_document_type, source_document_id, status, total_debit, total_credit, posted_at, created_at, created_by, last_updated_at, last_updated_by`

const lineColumns = `line_id, entry_id, line_number, account_id, debit_amount, credit_amount, description, reference, running_balance, created_at, created_by, last_updated_at, last_updated_by`

type PgxJournalRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountRepository
}

// newPgxJournalRepository creates a new repository for journal entry and line data.
func newPgxJournalRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountRepository) portsrepo.JournalRepository {
	return &PgxJournalRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepository
var _ portsrepo.JournalRepository = (*PgxJournalRepository)(nil)

func scanEntry(row pgx.Row) (models.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(
		&m.EntryID,
		&m.JournalNumber,
		&m.EntryDate,
		&m.ReferenceNumber,
		&m.Description,
		&m.SourceDocumentType,
		&m.SourceDocumentID,
		&m.Status,
		&m.TotalDebit,
		&m.TotalCredit,
		&m.PostedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func scanLine(row pgx.Row) (models.JournalLine, error) {
	var m models.JournalLine
	err := row.Scan(
		&m.LineID,
		&m.EntryID,
		&m.LineNumber,
		&m.AccountID,
		&m.DebitAmount,
		&m.CreditAmount,
		&m.Description,
		&m.Reference,
		&m.RunningBalance,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveEntry persists an entry header and its lines within a DB transaction and
// returns the assigned journal number. The number is reserved from a sequence
// inside the same transaction, so concurrent writers cannot collide. When the
// entry is created directly POSTED, account balances are updated and per-line
// running balances are recorded under row locks.
func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine, balanceChanges map[string]decimal.Decimal) (string, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return "", err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	now := entry.CreatedAt // Use consistent time from entry
	userID := entry.CreatedBy

	// 1. Reserve the journal number from the sequence
	var seq int64
	if err := tx.QueryRow(ctx, `SELECT nextval('journal_entry_number_seq');`).Scan(&seq); err != nil {
		return "", apperrors.NewAppError(500, "failed to reserve journal number", err)
	}
	journalNumber := fmt.Sprintf("%06d", seq)

	// 2. Insert the entry header
	modelEntry := mapping.ToModelJournalEntry(entry)
	modelEntry.JournalNumber = journalNumber
	entryQuery := `
		INSERT INTO journal_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err = tx.Exec(ctx, entryQuery,
		modelEntry.EntryID,
		modelEntry.JournalNumber,
		modelEntry.EntryDate,
		modelEntry.ReferenceNumber,
		modelEntry.Description,
		modelEntry.SourceDocumentType,
		modelEntry.SourceDocumentID,
		modelEntry.Status,
		modelEntry.TotalDebit,
		modelEntry.TotalCredit,
		modelEntry.PostedAt,
		modelEntry.CreatedAt,
		modelEntry.CreatedBy,
		modelEntry.LastUpdatedAt,
		modelEntry.LastUpdatedBy,
	)
	if err != nil {
		return "", apperrors.NewAppError(500, "failed to insert journal entry "+modelEntry.EntryID, err)
	}

	// 3. For a direct POSTED entry, lock accounts, apply the balance deltas
	// and project per-line running balances. For a DRAFT, balances stay
	// untouched and running balances stay zero.
	var plan *accounting.PostingPlan
	if entry.Status == domain.Posted {
		accountIDs := make([]string, 0, len(balanceChanges))
		for accID := range balanceChanges {
			accountIDs = append(accountIDs, accID)
		}

		lockedAccounts, err := r.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, accountIDs)
		if err != nil {
			return "", apperrors.NewAppError(500, "failed to lock accounts for update", err)
		}

		if err := r.accountRepo.ApplyBalanceDeltasInTx(ctx, tx, balanceChanges, userID, now); err != nil {
			return "", apperrors.NewAppError(500, "failed to update account balances", err)
		}

		plan, err = accounting.ProjectPosting(lines, lockedAccounts)
		if err != nil {
			return "", apperrors.NewAppError(500, "failed to project balances for entry "+modelEntry.EntryID, err)
		}
	}

	// 4. Prepare and insert line rows, carrying running balances forward in
	// line-number order for posted entries
	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO journal_entry_lines (` + lineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	for i, line := range lines {
		modelLine := mapping.ToModelJournalLine(line)
		modelLine.EntryID = modelEntry.EntryID
		modelLine.CreatedAt = now
		modelLine.LastUpdatedAt = now
		modelLine.CreatedBy = userID
		modelLine.LastUpdatedBy = userID

		if plan != nil {
			modelLine.RunningBalance = plan.RunningBalances[i]
		}

		batch.Queue(lineQuery,
			modelLine.LineID,
			modelLine.EntryID,
			modelLine.LineNumber,
			modelLine.AccountID,
			modelLine.DebitAmount,
			modelLine.CreditAmount,
			modelLine.Description,
			modelLine.Reference,
			modelLine.RunningBalance,
			modelLine.CreatedAt,
			modelLine.CreatedBy,
			modelLine.LastUpdatedAt,
			modelLine.LastUpdatedBy,
		)
	}

	// 5. Send the batch of line inserts
	br := tx.SendBatch(ctx, batch)
	err = br.Close() // Important: close the batch results to check for errors in each command
	if err != nil {
		return "", apperrors.NewAppError(500, "failed to execute line batch for entry "+modelEntry.EntryID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return "", apperrors.NewAppError(500, "failed to commit transaction for entry "+modelEntry.EntryID, err)
	}

	return journalNumber, nil
}

// FindEntryByID retrieves a journal entry header by its ID.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM journal_entries
		WHERE entry_id = $1;
	`
	modelEntry, err := scanEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find journal entry by ID "+entryID, err)
	}

	domainEntry := mapping.ToDomainJournalEntry(modelEntry)
	return &domainEntry, nil
}

// FindLinesByEntryID retrieves all lines for a specific entry in line order.
func (r *PgxJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error) {
	query := `
		SELECT ` + lineColumns + `
		FROM journal_entry_lines
		WHERE entry_id = $1
		ORDER BY line_number;
	`
	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for entry "+entryID, err)
	}
	defer rows.Close()

	lines := []models.JournalLine{}
	for rows.Next() {
		m, err := scanLine(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan line row for entry "+entryID, err)
		}
		lines = append(lines, m)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating line rows for entry "+entryID, err)
	}

	return mapping.ToDomainJournalLineSlice(lines), nil
}

// FindEntryBySourceDocument retrieves the most recent entry that references a
// given source document.
func (r *PgxJournalRepository) FindEntryBySourceDocument(ctx context.Context, docType domain.SourceDocumentType, docID string) (*domain.JournalEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM journal_entries
		WHERE source_document_type = $1 AND source_document_id = $2
		ORDER BY created_at DESC
		LIMIT 1;
	`
	modelEntry, err := scanEntry(r.Pool.QueryRow(ctx, query, string(docType), docID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find journal entry for source document "+docID, err)
	}

	domainEntry := mapping.ToDomainJournalEntry(modelEntry)
	return &domainEntry, nil
}

// buildEntryFilter translates an EntryFilter into a WHERE clause and args.
func buildEntryFilter(filter portsrepo.EntryFilter) (string, []interface{}) {
	clauses := []string{}
	args := []interface{}{}

	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		clauses = append(clauses, "entry_date >= $"+strconv.Itoa(len(args)))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		clauses = append(clauses, "entry_date <= $"+strconv.Itoa(len(args)))
	}
	if filter.Reference != "" {
		args = append(args, "%"+filter.Reference+"%")
		clauses = append(clauses, "reference_number ILIKE $"+strconv.Itoa(len(args)))
	}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		clauses = append(clauses, "status = $"+strconv.Itoa(len(args)))
	}

	where := ""
	for i, c := range clauses {
		if i == 0 {
			where = "WHERE " + c
		} else {
			where += " AND " + c
		}
	}
	return where, args
}

// ListEntries retrieves a filtered page of entries ordered newest first,
// together with the total row count for the filter.
func (r *PgxJournalRepository) ListEntries(ctx context.Context, filter portsrepo.EntryFilter, limit, offset int) ([]domain.JournalEntry, int64, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	where, args := buildEntryFilter(filter)

	var total int64
	countQuery := `SELECT COUNT(*) FROM journal_entries ` + where + `;`
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count journal entries", err)
	}

	query := `
		SELECT ` + entryColumns + `
		FROM journal_entries
		` + where + `
		ORDER BY entry_date DESC, journal_number DESC
		LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2) + `;`
	args = append(args, limit, offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to query journal entries", err)
	}
	defer rows.Close()

	entries := []domain.JournalEntry{}
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, 0, apperrors.NewAppError(500, "failed to scan journal entry row", err)
		}
		entries = append(entries, mapping.ToDomainJournalEntry(m))
	}

	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "error iterating journal entry rows", err)
	}

	return entries, total, nil
}

// ListLinesByAccountID retrieves a page of posted lines touching one account,
// newest first, together with the total matching row count.
func (r *PgxJournalRepository) ListLinesByAccountID(ctx context.Context, accountID string, limit, offset int) ([]domain.JournalLine, int64, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var total int64
	countQuery := `
		SELECT COUNT(*)
		FROM journal_entry_lines l
		JOIN journal_entries e ON l.entry_id = e.entry_id
		WHERE l.account_id = $1 AND e.status = 'POSTED';
	`
	if err := r.Pool.QueryRow(ctx, countQuery, accountID).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count lines for account "+accountID, err)
	}

	query := `
		SELECT l.line_id, l.entry_id, l.line_number, l.account_id, l.debit_amount, l.credit_amount, l.description, l.reference, l.running_balance, l.created_at, l.created_by, l.last_updated_at, l.last_updated_by
		FROM journal_entry_lines l
		JOIN journal_entries e ON l.entry_id = e.entry_id
		WHERE l.account_id = $1 AND e.status = 'POSTED'
		ORDER BY e.entry_date DESC, e.journal_number DESC, l.line_number DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, accountID, limit, offset)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to query lines for account "+accountID, err)
	}
	defer rows.Close()

	lines := []models.JournalLine{}
	for rows.Next() {
		m, err := scanLine(rows)
		if err != nil {
			return nil, 0, apperrors.NewAppError(500, "failed to scan line row for account "+accountID, err)
		}
		lines = append(lines, m)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "error iterating line rows for account "+accountID, err)
	}

	return mapping.ToDomainJournalLineSlice(lines), total, nil
}

// PostEntry transitions a DRAFT entry to POSTED and applies its balance
// effects within one transaction. Posting an already-posted entry returns
// the entry unchanged: posted_at acts as the idempotency guard and the
// deltas are never reapplied.
func (r *PgxJournalRepository) PostEntry(ctx context.Context, entryID string, userID string, now time.Time) (*domain.JournalEntry, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	// Lock the header row so a concurrent post of the same entry waits here
	// and then takes the idempotent path.
	headerQuery := `
		SELECT ` + entryColumns + `
		FROM journal_entries
		WHERE entry_id = $1
		FOR UPDATE;
	`
	modelEntry, err := scanEntry(tx.QueryRow(ctx, headerQuery, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to lock journal entry "+entryID, err)
	}

	entry := mapping.ToDomainJournalEntry(modelEntry)
	lines, err := r.findLinesInTx(ctx, tx, entryID)
	if err != nil {
		return nil, err
	}

	// posted_at is the idempotency guard; the balance law is re-verified at
	// the commit point for drafts.
	needsPosting, err := accounting.NeedsPosting(entry.PostedAt, lines)
	if err != nil {
		return nil, err
	}
	if !needsPosting {
		if err := r.Commit(ctx, tx); err != nil {
			return nil, err
		}
		entry.Lines = lines
		return &entry, nil
	}

	accountIDSet := make(map[string]bool)
	accountIDs := []string{}
	for _, line := range lines {
		if !accountIDSet[line.AccountID] {
			accountIDSet[line.AccountID] = true
			accountIDs = append(accountIDs, line.AccountID)
		}
	}

	lockedAccounts, err := r.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, accountIDs)
	if err != nil {
		return nil, err
	}

	plan, err := accounting.ProjectPosting(lines, lockedAccounts)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to project balances for entry "+entryID, err)
	}
	for i := range lines {
		lines[i].RunningBalance = plan.RunningBalances[i]
	}

	if err := r.accountRepo.ApplyBalanceDeltasInTx(ctx, tx, plan.BalanceChanges, userID, now); err != nil {
		return nil, apperrors.NewAppError(500, "failed to update account balances for entry "+entryID, err)
	}

	// Record the running balance each line produced
	batch := &pgx.Batch{}
	lineUpdateQuery := `
		UPDATE journal_entry_lines
		SET running_balance = $2, last_updated_at = $3, last_updated_by = $4
		WHERE line_id = $1;
	`
	for _, line := range lines {
		batch.Queue(lineUpdateQuery, line.LineID, line.RunningBalance, now, userID)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to update running balances for entry "+entryID, err)
	}

	headerUpdateQuery := `
		UPDATE journal_entries
		SET status = $2, posted_at = $3, last_updated_at = $4, last_updated_by = $5
		WHERE entry_id = $1;
	`
	if _, err := tx.Exec(ctx, headerUpdateQuery, entryID, string(domain.Posted), now, now, userID); err != nil {
		return nil, apperrors.NewAppError(500, "failed to mark entry "+entryID+" as posted", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, apperrors.NewAppError(500, "failed to commit posting of entry "+entryID, err)
	}

	entry.Status = domain.Posted
	entry.PostedAt = &now
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = userID
	entry.Lines = lines
	return &entry, nil
}

func (r *PgxJournalRepository) findLinesInTx(ctx context.Context, tx pgx.Tx, entryID string) ([]domain.JournalLine, error) {
	query := `
		SELECT ` + lineColumns + `
		FROM journal_entry_lines
		WHERE entry_id = $1
		ORDER BY line_number;
	`
	rows, err := tx.Query(ctx, query, entryID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for entry "+entryID, err)
	}
	defer rows.Close()

	lines := []models.JournalLine{}
	for rows.Next() {
		m, err := scanLine(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan line row for entry "+entryID, err)
		}
		lines = append(lines, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating line rows for entry "+entryID, err)
	}

	return mapping.ToDomainJournalLineSlice(lines), nil
}

// UpdateEntryHeader rewrites header fields of a DRAFT entry.
func (r *PgxJournalRepository) UpdateEntryHeader(ctx context.Context, entry domain.JournalEntry) error {
	modelEntry := mapping.ToModelJournalEntry(entry)

	query := `
		UPDATE journal_entries
		SET entry_date = $2,
		    reference_number = $3,
		    description = $4,
		    last_updated_at = $5,
		    last_updated_by = $6
		WHERE entry_id = $1 AND status = 'DRAFT';
	`
	// Status, totals and source document links are not updated here.

	cmdTag, err := r.Pool.Exec(ctx, query,
		modelEntry.EntryID,
		modelEntry.EntryDate,
		modelEntry.ReferenceNumber,
		modelEntry.Description,
		modelEntry.LastUpdatedAt,
		modelEntry.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to execute update entry "+modelEntry.EntryID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return r.classifyMissedWrite(ctx, modelEntry.EntryID)
	}

	return nil
}

// ReplaceLines swaps the full line set of a DRAFT entry and updates the
// header totals atomically.
func (r *PgxJournalRepository) ReplaceLines(ctx context.Context, entryID string, lines []domain.JournalLine, totalDebit, totalCredit decimal.Decimal, userID string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var status models.EntryStatus
	lockQuery := `SELECT status FROM journal_entries WHERE entry_id = $1 FOR UPDATE;`
	if err := tx.QueryRow(ctx, lockQuery, entryID).Scan(&status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return apperrors.NewAppError(500, "failed to lock journal entry "+entryID, err)
	}
	if status == models.EntryStatus(domain.Posted) {
		return fmt.Errorf("%w: journal entry %s is posted and cannot be modified", apperrors.ErrConflict, entryID)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM journal_entry_lines WHERE entry_id = $1;`, entryID); err != nil {
		return apperrors.NewAppError(500, "failed to delete lines for entry "+entryID, err)
	}

	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO journal_entry_lines (` + lineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	for _, line := range lines {
		modelLine := mapping.ToModelJournalLine(line)
		modelLine.EntryID = entryID
		modelLine.CreatedAt = now
		modelLine.LastUpdatedAt = now
		modelLine.CreatedBy = userID
		modelLine.LastUpdatedBy = userID

		batch.Queue(lineQuery,
			modelLine.LineID,
			modelLine.EntryID,
			modelLine.LineNumber,
			modelLine.AccountID,
			modelLine.DebitAmount,
			modelLine.CreditAmount,
			modelLine.Description,
			modelLine.Reference,
			modelLine.RunningBalance,
			modelLine.CreatedAt,
			modelLine.CreatedBy,
			modelLine.LastUpdatedAt,
			modelLine.LastUpdatedBy,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert replacement lines for entry "+entryID, err)
	}

	totalsQuery := `
		UPDATE journal_entries
		SET total_debit = $2, total_credit = $3, last_updated_at = $4, last_updated_by = $5
		WHERE entry_id = $1;
	`
	if _, err := tx.Exec(ctx, totalsQuery, entryID, totalDebit, totalCredit, now, userID); err != nil {
		return apperrors.NewAppError(500, "failed to update totals for entry "+entryID, err)
	}

	return r.Commit(ctx, tx)
}

// DeleteEntry removes a DRAFT entry; its lines cascade.
func (r *PgxJournalRepository) DeleteEntry(ctx context.Context, entryID string) error {
	query := `DELETE FROM journal_entries WHERE entry_id = $1 AND status = 'DRAFT';`

	cmdTag, err := r.Pool.Exec(ctx, query, entryID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete journal entry "+entryID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return r.classifyMissedWrite(ctx, entryID)
	}

	return nil
}

// classifyMissedWrite distinguishes "entry does not exist" from "entry exists
// but is posted" after a guarded write affected zero rows.
func (r *PgxJournalRepository) classifyMissedWrite(ctx context.Context, entryID string) error {
	existing, err := r.FindEntryByID(ctx, entryID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.ErrNotFound
	} else if err != nil {
		return apperrors.NewAppError(500, "failed to check entry status for "+entryID, err)
	}
	if existing.IsPosted() {
		return fmt.Errorf("%w: journal entry %s is posted and cannot be modified", apperrors.ErrConflict, entryID)
	}
	return apperrors.ErrNotFound
}
