package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/furnish-erp/ledger_backend/internal/core/domain"
	portsrepo "github.com/furnish-erp/ledger_backend/internal/core/ports/repositories"
	portssvc "github.com/furnish-erp/ledger_backend/internal/core/ports/services"
	"github.com/furnish-erp/ledger_backend/internal/core/services"
	"github.com/furnish-erp/ledger_backend/internal/dto"
	"github.com/furnish-erp/ledger_backend/internal/utils/pagination"
)

// MockReportingRepository is a mock type for the ReportingRepository interface
type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) SumBalancesByType(ctx context.Context) (domain.BalanceSheetSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.BalanceSheetSummary), args.Error(1)
}

func (m *MockReportingRepository) TrialBalance(ctx context.Context) ([]domain.TrialBalanceRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TrialBalanceRow), args.Error(1)
}

// MockAccountService is a mock type for the AccountSvcFacade interface
type MockAccountService struct {
	mock.Mock
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccount(ctx context.Context, idOrCode string) (*domain.Account, error) {
	args := m.Called(ctx, idOrCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) EnsureAccount(ctx context.Context, code string, defaults domain.AccountDefaults, userID string) (*domain.Account, error) {
	args := m.Called(ctx, code, defaults, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, params pagination.Params) (*dto.ListAccountsResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListAccountsResponse), args.Error(1)
}

func (m *MockAccountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) DeactivateAccount(ctx context.Context, accountID string, userID string) error {
	args := m.Called(ctx, accountID, userID)
	return args.Error(0)
}

// MockJournalService is a mock type for the JournalSvcFacade interface
type MockJournalService struct {
	mock.Mock
}

var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)

func (m *MockJournalService) CreateEntry(ctx context.Context, req dto.CreateEntryRequest, creatorUserID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) PostEntry(ctx context.Context, entryID string, userID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) GetEntry(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) GetEntryBySourceDocument(ctx context.Context, docType domain.SourceDocumentType, docID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, docType, docID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) ListEntries(ctx context.Context, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListEntriesResponse), args.Error(1)
}

func (m *MockJournalService) ListAccountLines(ctx context.Context, accountID string, params pagination.Params) (*dto.ListLinesResponse, error) {
	args := m.Called(ctx, accountID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListLinesResponse), args.Error(1)
}

func (m *MockJournalService) UpdateEntry(ctx context.Context, entryID string, req dto.UpdateEntryRequest, userID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) DeleteEntry(ctx context.Context, entryID string) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}

type AutoBalanceServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	mockAccountSvc    *MockAccountService
	mockJournalSvc    *MockJournalService
	service           portssvc.AutoBalanceSvcFacade
	ctx               context.Context

	equityAccount     domain.Account
	adjustmentAccount domain.Account
}

func (suite *AutoBalanceServiceTestSuite) SetupTest() {
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.mockAccountSvc = new(MockAccountService)
	suite.mockJournalSvc = new(MockJournalService)
	suite.service = services.NewAutoBalanceService(
		suite.mockReportingRepo,
		suite.mockAccountSvc,
		suite.mockJournalSvc,
		services.AutoBalanceConfig{EquityAccountCode: "3000", AdjustmentAccountCode: "5999"},
	)
	suite.ctx = context.Background()

	suite.equityAccount = domain.Account{
		AccountID:     "acc-eq",
		Code:          "3000",
		Name:          "Owner's Equity",
		AccountType:   domain.Equity,
		NormalBalance: domain.CreditNormal,
		IsActive:      true,
	}
	suite.adjustmentAccount = domain.Account{
		AccountID:     "acc-adj",
		Code:          "5999",
		Name:          "Balance Adjustment",
		AccountType:   domain.Expense,
		NormalBalance: domain.DebitNormal,
		IsActive:      true,
	}
}

func (suite *AutoBalanceServiceTestSuite) TestRun_AlreadyBalanced() {
	summary := domain.BalanceSheetSummary{
		Assets:      decimal.NewFromInt(1000),
		Liabilities: decimal.NewFromInt(400),
		Equity:      decimal.NewFromInt(600),
	}
	suite.mockReportingRepo.On("SumBalancesByType", suite.ctx).Return(summary, nil).Once()

	resp, err := suite.service.Run(suite.ctx, "user-1")

	suite.Require().NoError(err)
	suite.True(resp.Balanced)
	suite.True(resp.Variance.IsZero())
	suite.Empty(resp.JournalEntryID)
	suite.mockJournalSvc.AssertNotCalled(suite.T(), "CreateEntry")
	suite.mockAccountSvc.AssertNotCalled(suite.T(), "EnsureAccount")
}

func (suite *AutoBalanceServiceTestSuite) TestRun_VarianceWithinToleranceIsBalanced() {
	summary := domain.BalanceSheetSummary{
		Assets:      decimal.RequireFromString("1000.005"),
		Liabilities: decimal.NewFromInt(400),
		Equity:      decimal.NewFromInt(600),
	}
	suite.mockReportingRepo.On("SumBalancesByType", suite.ctx).Return(summary, nil).Once()

	resp, err := suite.service.Run(suite.ctx, "user-1")

	suite.Require().NoError(err)
	suite.True(resp.Balanced)
	suite.mockJournalSvc.AssertNotCalled(suite.T(), "CreateEntry")
}

func (suite *AutoBalanceServiceTestSuite) TestRun_PositiveVarianceCreditsEquity() {
	summary := domain.BalanceSheetSummary{
		Assets:      decimal.NewFromInt(1200),
		Liabilities: decimal.NewFromInt(400),
		Equity:      decimal.NewFromInt(600),
	}
	variance := decimal.NewFromInt(200)

	suite.mockReportingRepo.On("SumBalancesByType", suite.ctx).Return(summary, nil).Once()
	suite.mockAccountSvc.On("EnsureAccount", suite.ctx, "3000",
		mock.MatchedBy(func(d domain.AccountDefaults) bool { return d.AccountType == domain.Equity }),
		"user-1",
	).Return(&suite.equityAccount, nil).Once()
	suite.mockAccountSvc.On("EnsureAccount", suite.ctx, "5999",
		mock.MatchedBy(func(d domain.AccountDefaults) bool { return d.AccountType == domain.Expense }),
		"user-1",
	).Return(&suite.adjustmentAccount, nil).Once()

	entry := &domain.JournalEntry{EntryID: "entry-fix", Status: domain.Posted}
	suite.mockJournalSvc.On("CreateEntry", suite.ctx,
		mock.MatchedBy(func(req dto.CreateEntryRequest) bool {
			if req.Status != domain.Posted || req.SourceDocumentType != domain.SourceBalanceAdjustment {
				return false
			}
			if len(req.Lines) != 2 {
				return false
			}
			adj, eq := req.Lines[0], req.Lines[1]
			return adj.AccountID == "acc-adj" &&
				adj.DebitAmount != nil && adj.DebitAmount.Equal(variance) &&
				eq.AccountID == "acc-eq" &&
				eq.CreditAmount != nil && eq.CreditAmount.Equal(variance)
		}),
		"user-1",
	).Return(entry, nil).Once()

	corrected := suite.equityAccount
	corrected.CurrentBalance = decimal.NewFromInt(800)
	suite.mockAccountSvc.On("GetAccount", suite.ctx, "acc-eq").Return(&corrected, nil).Once()

	resp, err := suite.service.Run(suite.ctx, "user-1")

	suite.Require().NoError(err)
	suite.False(resp.Balanced)
	suite.Equal(dto.BalancingCreditEquity, resp.BalancingType)
	suite.Equal("entry-fix", resp.JournalEntryID)
	suite.Require().NotNil(resp.NewEquityBalance)
	suite.True(resp.NewEquityBalance.Equal(decimal.NewFromInt(800)))
	suite.mockJournalSvc.AssertExpectations(suite.T())
	suite.mockAccountSvc.AssertExpectations(suite.T())
}

func (suite *AutoBalanceServiceTestSuite) TestRun_NegativeVarianceDebitsEquity() {
	summary := domain.BalanceSheetSummary{
		Assets:      decimal.NewFromInt(900),
		Liabilities: decimal.NewFromInt(400),
		Equity:      decimal.NewFromInt(600),
	}
	amount := decimal.NewFromInt(100)

	suite.mockReportingRepo.On("SumBalancesByType", suite.ctx).Return(summary, nil).Once()
	suite.mockAccountSvc.On("EnsureAccount", suite.ctx, "3000", mock.Anything, "user-1").
		Return(&suite.equityAccount, nil).Once()
	suite.mockAccountSvc.On("EnsureAccount", suite.ctx, "5999", mock.Anything, "user-1").
		Return(&suite.adjustmentAccount, nil).Once()

	entry := &domain.JournalEntry{EntryID: "entry-fix", Status: domain.Posted}
	suite.mockJournalSvc.On("CreateEntry", suite.ctx,
		mock.MatchedBy(func(req dto.CreateEntryRequest) bool {
			if len(req.Lines) != 2 {
				return false
			}
			adj, eq := req.Lines[0], req.Lines[1]
			return adj.CreditAmount != nil && adj.CreditAmount.Equal(amount) &&
				eq.DebitAmount != nil && eq.DebitAmount.Equal(amount)
		}),
		"user-1",
	).Return(entry, nil).Once()
	suite.mockAccountSvc.On("GetAccount", suite.ctx, "acc-eq").Return(&suite.equityAccount, nil).Once()

	resp, err := suite.service.Run(suite.ctx, "user-1")

	suite.Require().NoError(err)
	suite.Equal(dto.BalancingDebitEquity, resp.BalancingType)
	suite.mockJournalSvc.AssertExpectations(suite.T())
}

func TestAutoBalanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AutoBalanceServiceTestSuite))
}
