package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/furnish-erp/ledger_backend/internal/apperrors"
	"github.com/furnish-erp/ledger_backend/internal/core/domain"
	portsrepo "github.com/furnish-erp/ledger_backend/internal/core/ports/repositories"
	portssvc "github.com/furnish-erp/ledger_backend/internal/core/ports/services"
	"github.com/furnish-erp/ledger_backend/internal/core/services"
	"github.com/furnish-erp/ledger_backend/internal/dto"
	"github.com/furnish-erp/ledger_backend/internal/utils/pagination"
)

// MockAccountRepository is a mock type for the AccountRepository interface
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepository = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, limit, offset int) ([]domain.Account, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Account), args.Get(1).(int64), args.Error(2)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error {
	args := m.Called(ctx, accountID, userID, now)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, tx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ApplyBalanceDeltasInTx(ctx context.Context, tx pgx.Tx, deltas map[string]decimal.Decimal, userID string, now time.Time) error {
	args := m.Called(ctx, tx, deltas, userID, now)
	return args.Error(0)
}

func (m *MockAccountRepository) ApplyOpeningBalanceInTx(ctx context.Context, tx pgx.Tx, accountID string, delta decimal.Decimal, userID string, now time.Time) error {
	args := m.Called(ctx, tx, accountID, delta, userID, now)
	return args.Error(0)
}

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  portssvc.AccountSvcFacade
	ctx      context.Context
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockRepo)
	suite.ctx = context.Background()
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	req := dto.CreateAccountRequest{
		Code:        "1010",
		Name:        "Cash",
		AccountType: domain.Asset,
		Subtype:     domain.CurrentAsset,
	}

	suite.mockRepo.On("FindAccountByCode", suite.ctx, "1010").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveAccount", suite.ctx, mock.MatchedBy(func(acc domain.Account) bool {
		return acc.Code == "1010" &&
			acc.NormalBalance == domain.DebitNormal &&
			acc.IsActive &&
			acc.CurrentBalance.IsZero()
	})).Return(nil).Once()

	account, err := suite.service.CreateAccount(suite.ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Equal("Cash", account.Name)
	suite.Equal(domain.DebitNormal, account.NormalBalance)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DefaultsCreditNormal() {
	req := dto.CreateAccountRequest{
		Code:        "2010",
		Name:        "Accounts Payable",
		AccountType: domain.Liability,
	}

	suite.mockRepo.On("FindAccountByCode", suite.ctx, "2010").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveAccount", suite.ctx, mock.MatchedBy(func(acc domain.Account) bool {
		return acc.NormalBalance == domain.CreditNormal
	})).Return(nil).Once()

	account, err := suite.service.CreateAccount(suite.ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.CreditNormal, account.NormalBalance)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicateCode() {
	existing := &domain.Account{AccountID: "acc-1", Code: "1010"}
	suite.mockRepo.On("FindAccountByCode", suite.ctx, "1010").Return(existing, nil).Once()

	req := dto.CreateAccountRequest{Code: "1010", Name: "Cash", AccountType: domain.Asset}
	account, err := suite.service.CreateAccount(suite.ctx, req, "user-1")

	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount")
}

func (suite *AccountServiceTestSuite) TestGetAccount_ByID() {
	account := &domain.Account{AccountID: "acc-1", Code: "1010"}
	suite.mockRepo.On("FindAccountByID", suite.ctx, "acc-1").Return(account, nil).Once()

	got, err := suite.service.GetAccount(suite.ctx, "acc-1")

	suite.Require().NoError(err)
	suite.Equal(account, got)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindAccountByCode")
}

func (suite *AccountServiceTestSuite) TestGetAccount_FallsBackToCode() {
	account := &domain.Account{AccountID: "acc-1", Code: "1010"}
	suite.mockRepo.On("FindAccountByID", suite.ctx, "1010").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("FindAccountByCode", suite.ctx, "1010").Return(account, nil).Once()

	got, err := suite.service.GetAccount(suite.ctx, "1010")

	suite.Require().NoError(err)
	suite.Equal("acc-1", got.AccountID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccount_NotFound() {
	suite.mockRepo.On("FindAccountByID", suite.ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("FindAccountByCode", suite.ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.GetAccount(suite.ctx, "missing")

	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AccountServiceTestSuite) TestEnsureAccount_ExistingReturnedUnchanged() {
	account := &domain.Account{AccountID: "acc-eq", Code: "3000", AccountType: domain.Equity}
	suite.mockRepo.On("FindAccountByCode", suite.ctx, "3000").Return(account, nil).Once()

	got, err := suite.service.EnsureAccount(suite.ctx, "3000", domain.AccountDefaults{}, "user-1")

	suite.Require().NoError(err)
	suite.Equal(account, got)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount")
}

func (suite *AccountServiceTestSuite) TestEnsureAccount_Materializes() {
	defaults := domain.AccountDefaults{
		Name:        "Owner's Equity",
		AccountType: domain.Equity,
		Subtype:     domain.Capital,
	}
	suite.mockRepo.On("FindAccountByCode", suite.ctx, "3000").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveAccount", suite.ctx, mock.MatchedBy(func(acc domain.Account) bool {
		return acc.Code == "3000" && acc.NormalBalance == domain.CreditNormal && acc.IsActive
	})).Return(nil).Once()

	got, err := suite.service.EnsureAccount(suite.ctx, "3000", defaults, "user-1")

	suite.Require().NoError(err)
	suite.Equal("Owner's Equity", got.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestEnsureAccount_ConcurrentCreateRefetches() {
	winner := &domain.Account{AccountID: "acc-eq", Code: "3000"}
	suite.mockRepo.On("FindAccountByCode", suite.ctx, "3000").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveAccount", suite.ctx, mock.Anything).Return(fmt.Errorf("%w: code taken", apperrors.ErrDuplicate)).Once()
	suite.mockRepo.On("FindAccountByCode", suite.ctx, "3000").Return(winner, nil).Once()

	got, err := suite.service.EnsureAccount(suite.ctx, "3000", domain.AccountDefaults{AccountType: domain.Equity}, "user-1")

	suite.Require().NoError(err)
	suite.Equal("acc-eq", got.AccountID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestListAccounts() {
	accounts := []domain.Account{
		{AccountID: "acc-1", Code: "1010"},
		{AccountID: "acc-2", Code: "2010"},
	}
	suite.mockRepo.On("ListAccounts", suite.ctx, 20, 0).Return(accounts, int64(2), nil).Once()

	resp, err := suite.service.ListAccounts(suite.ctx, pagination.Params{Page: 1, Limit: 20})

	suite.Require().NoError(err)
	suite.Len(resp.Accounts, 2)
	suite.Equal(int64(2), resp.Pagination.Total)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_NoFieldsIsNoop() {
	account := &domain.Account{AccountID: "acc-1", Code: "1010", Name: "Cash"}
	suite.mockRepo.On("FindAccountByID", suite.ctx, "acc-1").Return(account, nil).Once()

	got, err := suite.service.UpdateAccount(suite.ctx, "acc-1", dto.UpdateAccountRequest{}, "user-1")

	suite.Require().NoError(err)
	suite.Equal("Cash", got.Name)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAccount")
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_Success() {
	account := &domain.Account{AccountID: "acc-1", Code: "1010", Name: "Cash"}
	newName := "Petty Cash"
	suite.mockRepo.On("FindAccountByID", suite.ctx, "acc-1").Return(account, nil).Once()
	suite.mockRepo.On("UpdateAccount", suite.ctx, mock.MatchedBy(func(acc domain.Account) bool {
		return acc.Name == "Petty Cash" && acc.LastUpdatedBy == "user-1"
	})).Return(nil).Once()

	got, err := suite.service.UpdateAccount(suite.ctx, "acc-1", dto.UpdateAccountRequest{Name: &newName}, "user-1")

	suite.Require().NoError(err)
	suite.Equal("Petty Cash", got.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount_NotFound() {
	suite.mockRepo.On("DeactivateAccount", suite.ctx, "missing", "user-1", mock.AnythingOfType("time.Time")).
		Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeactivateAccount(suite.ctx, "missing", "user-1")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount_Success() {
	suite.mockRepo.On("DeactivateAccount", suite.ctx, "acc-1", "user-1", mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	err := suite.service.DeactivateAccount(suite.ctx, "acc-1", "user-1")

	suite.NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

func TestToAccountResponse(t *testing.T) {
	acc := domain.Account{
		AccountID:      "acc-1",
		Code:           "1010",
		Name:           "Cash",
		AccountType:    domain.Asset,
		NormalBalance:  domain.DebitNormal,
		CurrentBalance: decimal.NewFromInt(250),
		IsActive:       true,
	}
	resp := dto.ToAccountResponse(&acc)
	assert.Equal(t, "acc-1", resp.AccountID)
	assert.True(t, resp.CurrentBalance.Equal(decimal.NewFromInt(250)))
	assert.True(t, resp.IsActive)
}
