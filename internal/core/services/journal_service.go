package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/furnish-erp/ledger_backend/internal/apperrors"
	"github.com/furnish-erp/ledger_backend/internal/core/domain"
	portsrepo "github.com/furnish-erp/ledger_backend/internal/core/ports/repositories"
	portssvc "github.com/furnish-erp/ledger_backend/internal/core/ports/services"
	"github.com/furnish-erp/ledger_backend/internal/dto"
	"github.com/furnish-erp/ledger_backend/internal/middleware"
	"github.com/furnish-erp/ledger_backend/internal/utils/accounting"
	"github.com/furnish-erp/ledger_backend/internal/utils/pagination"
)

var (
	// ErrEntryPosted rejects mutation of a posted entry. Corrections go
	// through an explicit offsetting entry, never in-place edits.
	ErrEntryPosted = fmt.Errorf("%w: posted journal entries are immutable", apperrors.ErrConflict)
)

// journalService provides journal entry creation, validation, posting and
// retrieval. All balance effects flow through the repository's posting
// transaction; the service computes the signed deltas.
type journalService struct {
	journalRepo portsrepo.JournalRepository
	accountRepo portsrepo.AccountRepository
}

// NewJournalService creates a new journal service.
func NewJournalService(journalRepo portsrepo.JournalRepository, accountRepo portsrepo.AccountRepository) portssvc.JournalSvcFacade {
	return &journalService{
		journalRepo: journalRepo,
		accountRepo: accountRepo,
	}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// buildLines converts request lines to domain lines with 1-based line numbers.
func buildLines(entryID string, reqLines []dto.CreateLineRequest, userID string, now time.Time) []domain.JournalLine {
	lines := make([]domain.JournalLine, len(reqLines))
	for i, lr := range reqLines {
		debit := decimal.Zero
		credit := decimal.Zero
		if lr.DebitAmount != nil {
			debit = *lr.DebitAmount
		}
		if lr.CreditAmount != nil {
			credit = *lr.CreditAmount
		}
		lines[i] = domain.JournalLine{
			LineID:       uuid.NewString(),
			EntryID:      entryID,
			LineNumber:   i + 1,
			AccountID:    lr.AccountID,
			DebitAmount:  debit,
			CreditAmount: credit,
			Description:  lr.Description,
			Reference:    lr.Reference,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}
	}
	return lines
}

// validateAndResolveAccounts checks line invariants and the balance law,
// fetches the referenced accounts and confirms they exist and are active.
// Returns the accounts map and the entry's debit/credit totals.
func (s *journalService) validateAndResolveAccounts(ctx context.Context, lines []domain.JournalLine) (map[string]domain.Account, decimal.Decimal, decimal.Decimal, error) {
	if err := accounting.ValidateLines(lines); err != nil {
		return nil, decimal.Zero, decimal.Zero, err
	}

	totalDebit, totalCredit := accounting.SumLines(lines)
	if err := accounting.CheckBalanced(totalDebit, totalCredit); err != nil {
		return nil, decimal.Zero, decimal.Zero, err
	}

	accountIDs := make([]string, 0, len(lines))
	seen := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.AccountID]; !ok {
			seen[line.AccountID] = struct{}{}
			accountIDs = append(accountIDs, line.AccountID)
		}
	}

	accountsMap, err := s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
	if err != nil {
		return nil, decimal.Zero, decimal.Zero, fmt.Errorf("failed to fetch accounts: %w", err)
	}
	for _, id := range accountIDs {
		acc, found := accountsMap[id]
		if !found {
			return nil, decimal.Zero, decimal.Zero, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, id)
		}
		if !acc.IsActive {
			return nil, decimal.Zero, decimal.Zero, fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, id)
		}
	}

	return accountsMap, totalDebit, totalCredit, nil
}

// calculateBalanceChanges nets the signed deltas per account for a line set.
func calculateBalanceChanges(lines []domain.JournalLine, accounts map[string]domain.Account) (map[string]decimal.Decimal, error) {
	changes := make(map[string]decimal.Decimal)
	for _, line := range lines {
		acc := accounts[line.AccountID]
		signed, err := accounting.SignedAmount(line, acc.NormalBalance)
		if err != nil {
			return nil, fmt.Errorf("internal error calculating balance changes: %w", err)
		}
		changes[line.AccountID] = changes[line.AccountID].Add(signed)
	}
	return changes, nil
}

// CreateEntry validates and persists a new journal entry with its lines.
// The header and all lines are written in one transaction; the journal
// number comes from a database sequence reserved inside that transaction.
func (s *journalService) CreateEntry(ctx context.Context, req dto.CreateEntryRequest, creatorUserID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	entryID := uuid.NewString()
	lines := buildLines(entryID, req.Lines, creatorUserID, now)

	accountsMap, totalDebit, totalCredit, err := s.validateAndResolveAccounts(ctx, lines)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = domain.Draft
	}
	sourceType := req.SourceDocumentType
	if sourceType == "" {
		sourceType = domain.SourceManual
	}

	entry := domain.JournalEntry{
		EntryID:            entryID,
		EntryDate:          req.EntryDate,
		ReferenceNumber:    req.ReferenceNumber,
		Description:        req.Description,
		SourceDocumentType: sourceType,
		SourceDocumentID:   req.SourceDocumentID,
		Status:             status,
		TotalDebit:         totalDebit,
		TotalCredit:        totalCredit,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	// Only a direct POSTED creation touches balances.
	var balanceChanges map[string]decimal.Decimal
	if status == domain.Posted {
		entry.PostedAt = &now
		balanceChanges, err = calculateBalanceChanges(lines, accountsMap)
		if err != nil {
			return nil, err
		}
	}

	journalNumber, err := s.journalRepo.SaveEntry(ctx, entry, lines, balanceChanges)
	if err != nil {
		logger.Error("Failed to save journal entry", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}
	entry.JournalNumber = journalNumber
	entry.Lines = lines

	logger.Info("Journal entry created",
		slog.String("entry_id", entry.EntryID),
		slog.String("journal_number", journalNumber),
		slog.String("status", string(status)),
	)
	return &entry, nil
}

// PostEntry transitions a DRAFT entry to POSTED and applies its balance
// effects. Idempotent: reposting an already-posted entry returns it
// unchanged without reapplying deltas.
func (s *journalService) PostEntry(ctx context.Context, entryID string, userID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.journalRepo.PostEntry(ctx, entryID, userID, time.Now().UTC())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrUnbalanced) {
			return nil, err
		}
		logger.Error("Failed to post journal entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to post journal entry %s: %w", entryID, err)
	}

	logger.Info("Journal entry posted", slog.String("entry_id", entryID), slog.String("journal_number", entry.JournalNumber))
	return entry, nil
}

// GetEntry retrieves a journal entry with its lines.
func (s *journalService) GetEntry(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	lines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve lines for entry %s: %w", entryID, err)
	}
	entry.Lines = lines
	return entry, nil
}

// GetEntryBySourceDocument looks up the entry created for a business
// document. The ledger never dereferences the document itself.
func (s *journalService) GetEntryBySourceDocument(ctx context.Context, docType domain.SourceDocumentType, docID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryBySourceDocument(ctx, docType, docID)
	if err != nil {
		return nil, err
	}
	lines, err := s.journalRepo.FindLinesByEntryID(ctx, entry.EntryID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve lines for entry %s: %w", entry.EntryID, err)
	}
	entry.Lines = lines
	return entry, nil
}

// ListEntries returns one page of entries matching the filters, ordered by
// entry date then journal number, both descending.
func (s *journalService) ListEntries(ctx context.Context, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	params.Normalize()

	filter := portsrepo.EntryFilter{
		StartDate: params.StartDate,
		EndDate:   params.EndDate,
		Reference: params.Reference,
		Status:    params.Status,
	}

	entries, total, err := s.journalRepo.ListEntries(ctx, filter, params.Limit, params.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve journal entries: %w", err)
	}

	responses := make([]dto.EntryResponse, len(entries))
	for i := range entries {
		responses[i] = dto.ToEntryResponse(&entries[i])
	}

	return &dto.ListEntriesResponse{
		Entries:    responses,
		Pagination: pagination.NewMeta(params.Params, total),
	}, nil
}

// ListAccountLines returns the posted lines touching one account, newest
// first, with the running balance recorded at post time.
func (s *journalService) ListAccountLines(ctx context.Context, accountID string, params pagination.Params) (*dto.ListLinesResponse, error) {
	params.Normalize()

	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return nil, err
	}

	lines, total, err := s.journalRepo.ListLinesByAccountID(ctx, accountID, params.Limit, params.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve lines for account %s: %w", accountID, err)
	}

	responses := make([]dto.LineResponse, len(lines))
	for i := range lines {
		responses[i] = dto.ToLineResponse(&lines[i])
	}

	return &dto.ListLinesResponse{
		Lines:      responses,
		Pagination: pagination.NewMeta(params, total),
	}, nil
}

// UpdateEntry edits a DRAFT entry. Supplying lines replaces the whole line
// set (delete-all, re-insert) with full re-validation. POSTED entries are
// immutable and reject any payload.
func (s *journalService) UpdateEntry(ctx context.Context, entryID string, req dto.UpdateEntryRequest, userID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.IsPosted() {
		return nil, ErrEntryPosted
	}

	now := time.Now().UTC()

	// Validate the replacement line set before touching the header so a
	// rejected payload leaves the entry exactly as it was.
	var newLines []domain.JournalLine
	var totalDebit, totalCredit decimal.Decimal
	if req.Lines != nil {
		newLines = buildLines(entryID, req.Lines, userID, now)
		_, totalDebit, totalCredit, err = s.validateAndResolveAccounts(ctx, newLines)
		if err != nil {
			return nil, err
		}
	}

	headerUpdated := false
	if req.EntryDate != nil {
		entry.EntryDate = *req.EntryDate
		headerUpdated = true
	}
	if req.ReferenceNumber != nil {
		entry.ReferenceNumber = *req.ReferenceNumber
		headerUpdated = true
	}
	if req.Description != nil {
		entry.Description = *req.Description
		headerUpdated = true
	}

	if headerUpdated {
		entry.LastUpdatedAt = now
		entry.LastUpdatedBy = userID
		if err := s.journalRepo.UpdateEntryHeader(ctx, *entry); err != nil {
			logger.Error("Failed to update entry header", slog.String("error", err.Error()), slog.String("entry_id", entryID))
			return nil, err
		}
	}

	if req.Lines != nil {
		if err := s.journalRepo.ReplaceLines(ctx, entryID, newLines, totalDebit, totalCredit, userID, now); err != nil {
			logger.Error("Failed to replace entry lines", slog.String("error", err.Error()), slog.String("entry_id", entryID))
			return nil, err
		}
		entry.TotalDebit = totalDebit
		entry.TotalCredit = totalCredit
		entry.Lines = newLines
	} else {
		lines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
		if err != nil {
			return nil, fmt.Errorf("failed to retrieve lines for entry %s: %w", entryID, err)
		}
		entry.Lines = lines
	}

	logger.Info("Journal entry updated", slog.String("entry_id", entryID))
	return entry, nil
}

// DeleteEntry removes a DRAFT entry and its lines. POSTED entries reject
// deletion; issue an offsetting entry instead.
func (s *journalService) DeleteEntry(ctx context.Context, entryID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return err
	}
	if entry.IsPosted() {
		return ErrEntryPosted
	}

	if err := s.journalRepo.DeleteEntry(ctx, entryID); err != nil {
		logger.Error("Failed to delete journal entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return err
	}

	logger.Info("Journal entry deleted", slog.String("entry_id", entryID))
	return nil
}
