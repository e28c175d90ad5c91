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

// accountService is the source of truth for account classification and
// current balances. It never writes current_balance itself; that happens
// only inside posting transactions in the repository layer.
type accountService struct {
	accountRepo portsrepo.AccountRepository
}

// NewAccountService creates a new account service.
func NewAccountService(accountRepo portsrepo.AccountRepository) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount creates a new account in the chart of accounts.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.accountRepo.FindAccountByCode(ctx, req.Code)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing account code: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: account with code %s already exists", apperrors.ErrDuplicate, req.Code)
	}

	normal := req.NormalBalance
	if normal == "" {
		normal = domain.NormalBalanceFor(req.AccountType)
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:      uuid.NewString(),
		Code:           req.Code,
		Name:           req.Name,
		AccountType:    req.AccountType,
		Subtype:        req.Subtype,
		NormalBalance:  normal,
		Description:    req.Description,
		OpeningBalance: decimal.Zero,
		CurrentBalance: decimal.Zero,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		logger.Error("Failed to save account", slog.String("error", err.Error()), slog.String("code", req.Code))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	logger.Info("Account created", slog.String("account_id", account.AccountID), slog.String("code", account.Code))
	return &account, nil
}

// GetAccount resolves an account by id first, then by code. Callers hold
// either depending on where the reference came from.
func (s *accountService) GetAccount(ctx context.Context, idOrCode string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, idOrCode)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to find account %s: %w", idOrCode, err)
	}
	account, err = s.accountRepo.FindAccountByCode(ctx, idOrCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by code %s: %w", idOrCode, err)
	}
	return account, nil
}

// EnsureAccount returns the account with the given code, creating it from
// the supplied defaults when absent. Some accounts (e.g. Accounts Payable)
// are materialized by the first business event that needs them.
func (s *accountService) EnsureAccount(ctx context.Context, code string, defaults domain.AccountDefaults, userID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByCode(ctx, code)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up account code %s: %w", code, err)
	}

	normal := defaults.NormalBalance
	if normal == "" {
		normal = domain.NormalBalanceFor(defaults.AccountType)
	}

	now := time.Now().UTC()
	created := domain.Account{
		AccountID:      uuid.NewString(),
		Code:           code,
		Name:           defaults.Name,
		AccountType:    defaults.AccountType,
		Subtype:        defaults.Subtype,
		NormalBalance:  normal,
		Description:    defaults.Description,
		OpeningBalance: decimal.Zero,
		CurrentBalance: decimal.Zero,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, created); err != nil {
		// A concurrent caller may have created the code between the lookup
		// and the insert; the unique constraint resolves the race.
		if errors.Is(err, apperrors.ErrDuplicate) {
			return s.accountRepo.FindAccountByCode(ctx, code)
		}
		logger.Error("Failed to materialize account", slog.String("error", err.Error()), slog.String("code", code))
		return nil, fmt.Errorf("failed to materialize account %s: %w", code, err)
	}

	logger.Info("Account lazily materialized", slog.String("account_id", created.AccountID), slog.String("code", code))
	return &created, nil
}

// ListAccounts returns a page of active accounts.
func (s *accountService) ListAccounts(ctx context.Context, params pagination.Params) (*dto.ListAccountsResponse, error) {
	params.Normalize()

	accounts, total, err := s.accountRepo.ListAccounts(ctx, params.Limit, params.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	resp := dto.ToListAccountsResponse(accounts, pagination.NewMeta(params, total))
	return &resp, nil
}

// UpdateAccount updates name, description or active flag of an account.
func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Name != nil {
		account.Name = *req.Name
		updated = true
	}
	if req.Description != nil {
		account.Description = *req.Description
		updated = true
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
		updated = true
	}
	if !updated {
		return account, nil
	}

	account.LastUpdatedAt = time.Now().UTC()
	account.LastUpdatedBy = userID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		logger.Error("Failed to update account", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to update account: %w", err)
	}
	return account, nil
}

// DeactivateAccount soft-deletes an account. Accounts are never physically
// removed; history keeps referencing them.
func (s *accountService) DeactivateAccount(ctx context.Context, accountID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.accountRepo.DeactivateAccount(ctx, accountID, userID, time.Now().UTC()); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		logger.Error("Failed to deactivate account", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return fmt.Errorf("failed to deactivate account %s: %w", accountID, err)
	}

	logger.Info("Account deactivated", slog.String("account_id", accountID))
	return nil
}
