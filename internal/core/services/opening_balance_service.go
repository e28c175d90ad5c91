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
	"github.com/furnish-erp/ledger_backend/internal/utils/pagination"
)

// openingBalanceService seeds account balances once, before ordinary journal
// activity. The seed flows through the same signed-amount convention as
// postings, so the balance invariant holds without a special case.
type openingBalanceService struct {
	openingRepo portsrepo.OpeningBalanceRepository
	accountRepo portsrepo.AccountRepository
}

// NewOpeningBalanceService creates a new opening balance service.
func NewOpeningBalanceService(openingRepo portsrepo.OpeningBalanceRepository, accountRepo portsrepo.AccountRepository) portssvc.OpeningBalanceSvcFacade {
	return &openingBalanceService{
		openingRepo: openingRepo,
		accountRepo: accountRepo,
	}
}

var _ portssvc.OpeningBalanceSvcFacade = (*openingBalanceService)(nil)

// resolveAmounts turns the request's debit/credit/balance shorthand into an
// explicit debit and credit pair. A positive BalanceAmount lands on the
// account's normal side, a negative one on the opposite side.
func resolveAmounts(req dto.SetOpeningBalanceRequest, normal domain.NormalBalance) (debit, credit decimal.Decimal, err error) {
	debit = decimal.Zero
	credit = decimal.Zero

	if req.BalanceAmount != nil {
		if req.DebitAmount != nil || req.CreditAmount != nil {
			return debit, credit, fmt.Errorf("%w: supply either balanceAmount or debit/credit amounts, not both", apperrors.ErrValidation)
		}
		amount := *req.BalanceAmount
		side := normal
		if amount.IsNegative() {
			amount = amount.Abs()
			if normal == domain.DebitNormal {
				side = domain.CreditNormal
			} else {
				side = domain.DebitNormal
			}
		}
		if side == domain.DebitNormal {
			debit = amount
		} else {
			credit = amount
		}
		return debit, credit, nil
	}

	if req.DebitAmount != nil {
		debit = *req.DebitAmount
	}
	if req.CreditAmount != nil {
		credit = *req.CreditAmount
	}
	if debit.IsNegative() || credit.IsNegative() {
		return debit, credit, fmt.Errorf("%w: opening balance amounts must not be negative", apperrors.ErrValidation)
	}
	if debit.IsZero() && credit.IsZero() {
		return debit, credit, fmt.Errorf("%w: opening balance requires a debit, credit or balance amount", apperrors.ErrValidation)
	}
	return debit, credit, nil
}

// SetOpeningBalance seeds an account's opening balance. Fails with a
// conflict if a seed already exists for the account; corrections go through
// the update path.
func (s *openingBalanceService) SetOpeningBalance(ctx context.Context, req dto.SetOpeningBalanceRequest, userID string) (*domain.OpeningBalance, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, req.AccountID)
	if err != nil {
		return nil, err
	}

	existing, err := s.openingRepo.FindOpeningBalanceByAccountID(ctx, req.AccountID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing opening balance: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: opening balance already exists for account %s", apperrors.ErrConflict, req.AccountID)
	}

	debit, credit, err := resolveAmounts(req, account.NormalBalance)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	ob := domain.OpeningBalance{
		OpeningBalanceID: uuid.NewString(),
		AccountID:        req.AccountID,
		DebitAmount:      debit,
		CreditAmount:     credit,
		OpeningDate:      req.OpeningDate,
		FiscalYear:       req.OpeningDate.Year(),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	delta := ob.SignedNet(account.NormalBalance)
	if err := s.openingRepo.SaveOpeningBalance(ctx, ob, delta); err != nil {
		if errors.Is(err, apperrors.ErrConflict) || errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: opening balance already exists for account %s", apperrors.ErrConflict, req.AccountID)
		}
		logger.Error("Failed to save opening balance", slog.String("error", err.Error()), slog.String("account_id", req.AccountID))
		return nil, fmt.Errorf("failed to save opening balance: %w", err)
	}

	logger.Info("Opening balance set",
		slog.String("account_id", req.AccountID),
		slog.String("net", ob.Net().String()),
		slog.Int("fiscal_year", ob.FiscalYear),
	)
	return &ob, nil
}

// GetOpeningBalanceByAccount returns the seed for an account, if any.
func (s *openingBalanceService) GetOpeningBalanceByAccount(ctx context.Context, accountID string) (*domain.OpeningBalance, error) {
	return s.openingRepo.FindOpeningBalanceByAccountID(ctx, accountID)
}

// ListOpeningBalances returns one page of seed records.
func (s *openingBalanceService) ListOpeningBalances(ctx context.Context, params pagination.Params) (*dto.ListOpeningBalancesResponse, error) {
	params.Normalize()

	records, total, err := s.openingRepo.ListOpeningBalances(ctx, params.Limit, params.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list opening balances: %w", err)
	}

	responses := make([]dto.OpeningBalanceResponse, len(records))
	for i := range records {
		responses[i] = dto.ToOpeningBalanceResponse(&records[i])
	}
	return &dto.ListOpeningBalancesResponse{
		OpeningBalances: responses,
		Pagination:      pagination.NewMeta(params, total),
	}, nil
}

// UpdateOpeningBalance corrects an existing seed. The account balance moves
// by the difference between the old and new signed nets, never by the full
// new value, so the invariant stays consistent.
func (s *openingBalanceService) UpdateOpeningBalance(ctx context.Context, id string, req dto.UpdateOpeningBalanceRequest, userID string) (*domain.OpeningBalance, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	ob, err := s.openingRepo.FindOpeningBalanceByID(ctx, id)
	if err != nil {
		return nil, err
	}
	account, err := s.accountRepo.FindAccountByID(ctx, ob.AccountID)
	if err != nil {
		return nil, err
	}

	oldSigned := ob.SignedNet(account.NormalBalance)

	if req.DebitAmount != nil {
		if req.DebitAmount.IsNegative() {
			return nil, fmt.Errorf("%w: opening balance amounts must not be negative", apperrors.ErrValidation)
		}
		ob.DebitAmount = *req.DebitAmount
	}
	if req.CreditAmount != nil {
		if req.CreditAmount.IsNegative() {
			return nil, fmt.Errorf("%w: opening balance amounts must not be negative", apperrors.ErrValidation)
		}
		ob.CreditAmount = *req.CreditAmount
	}
	if req.OpeningDate != nil {
		ob.OpeningDate = *req.OpeningDate
		ob.FiscalYear = req.OpeningDate.Year()
	}

	now := time.Now().UTC()
	ob.LastUpdatedAt = now
	ob.LastUpdatedBy = userID

	delta := ob.SignedNet(account.NormalBalance).Sub(oldSigned)
	if err := s.openingRepo.UpdateOpeningBalance(ctx, *ob, delta); err != nil {
		logger.Error("Failed to update opening balance", slog.String("error", err.Error()), slog.String("opening_balance_id", id))
		return nil, fmt.Errorf("failed to update opening balance: %w", err)
	}

	logger.Info("Opening balance updated",
		slog.String("opening_balance_id", id),
		slog.String("delta", delta.String()),
	)
	return ob, nil
}

// DeleteOpeningBalance reverses the seed's balance effect and removes the
// record. Used only alongside a full re-initialization of an account.
func (s *openingBalanceService) DeleteOpeningBalance(ctx context.Context, id string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	ob, err := s.openingRepo.FindOpeningBalanceByID(ctx, id)
	if err != nil {
		return err
	}
	account, err := s.accountRepo.FindAccountByID(ctx, ob.AccountID)
	if err != nil {
		return err
	}

	delta := ob.SignedNet(account.NormalBalance).Neg()
	if err := s.openingRepo.DeleteOpeningBalance(ctx, id, ob.AccountID, delta, userID, time.Now().UTC()); err != nil {
		logger.Error("Failed to delete opening balance", slog.String("error", err.Error()), slog.String("opening_balance_id", id))
		return fmt.Errorf("failed to delete opening balance: %w", err)
	}

	logger.Info("Opening balance deleted", slog.String("opening_balance_id", id), slog.String("account_id", ob.AccountID))
	return nil
}
