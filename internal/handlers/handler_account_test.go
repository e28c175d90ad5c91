package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/furnish-erp/ledger_backend/internal/apperrors"
	"github.com/furnish-erp/ledger_backend/internal/core/domain"
	portssvc "github.com/furnish-erp/ledger_backend/internal/core/ports/services"
	"github.com/furnish-erp/ledger_backend/internal/dto"
	"github.com/furnish-erp/ledger_backend/internal/handlers"
	"github.com/furnish-erp/ledger_backend/internal/platform/config"
	"github.com/furnish-erp/ledger_backend/internal/utils/pagination"
)

// --- Mock AccountService ---
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

type AccountHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockAccountService
}

func (suite *AccountHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockService = new(MockAccountService)

	container := &portssvc.ServiceContainer{Account: suite.mockService}
	noLimit := func(c *gin.Context) { c.Next() }

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, &config.Config{}, container, noLimit)
}

func (suite *AccountHandlerTestSuite) performRequest(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Actor-ID", "user-1")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_Success() {
	reqBody := dto.CreateAccountRequest{
		Code:        "1010",
		Name:        "Cash",
		AccountType: domain.Asset,
	}
	created := &domain.Account{
		AccountID:     "acc-1",
		Code:          "1010",
		Name:          "Cash",
		AccountType:   domain.Asset,
		NormalBalance: domain.DebitNormal,
		IsActive:      true,
	}
	suite.mockService.On("CreateAccount", mock.Anything, reqBody, "user-1").Return(created, nil).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/accounts", reqBody)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("acc-1", resp.AccountID)
	suite.Equal(domain.DebitNormal, resp.NormalBalance)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_DuplicateCode() {
	reqBody := dto.CreateAccountRequest{
		Code:        "1010",
		Name:        "Cash",
		AccountType: domain.Asset,
	}
	suite.mockService.On("CreateAccount", mock.Anything, reqBody, "user-1").
		Return(nil, fmt.Errorf("%w: account with code 1010 already exists", apperrors.ErrDuplicate)).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/accounts", reqBody)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_InvalidBody() {
	w := suite.performRequest(http.MethodPost, "/api/v1/accounts", map[string]string{"name": "no code or type"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateAccount")
}

func (suite *AccountHandlerTestSuite) TestGetAccount_Found() {
	account := &domain.Account{
		AccountID:      "acc-1",
		Code:           "1010",
		Name:           "Cash",
		AccountType:    domain.Asset,
		CurrentBalance: decimal.NewFromInt(500),
	}
	suite.mockService.On("GetAccount", mock.Anything, "acc-1").Return(account, nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/accounts/acc-1", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.CurrentBalance.Equal(decimal.NewFromInt(500)))
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestGetAccount_NotFound() {
	suite.mockService.On("GetAccount", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/accounts/missing", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestListAccounts() {
	resp := &dto.ListAccountsResponse{
		Accounts: []dto.AccountResponse{
			{AccountID: "acc-1", Code: "1010"},
			{AccountID: "acc-2", Code: "2010"},
		},
		Pagination: pagination.Meta{Page: 1, Limit: 20, Total: 2, TotalPages: 1},
	}
	suite.mockService.On("ListAccounts", mock.Anything, pagination.Params{Page: 1, Limit: 20}).Return(resp, nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/accounts", nil)

	suite.Equal(http.StatusOK, w.Code)
	var got dto.ListAccountsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Len(got.Accounts, 2)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestUpdateAccount_NotFound() {
	name := "Renamed"
	reqBody := dto.UpdateAccountRequest{Name: &name}
	suite.mockService.On("UpdateAccount", mock.Anything, "missing", reqBody, "user-1").
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.performRequest(http.MethodPut, "/api/v1/accounts/missing", reqBody)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestDeactivateAccount_Success() {
	suite.mockService.On("DeactivateAccount", mock.Anything, "acc-1", "user-1").Return(nil).Once()

	w := suite.performRequest(http.MethodDelete, "/api/v1/accounts/acc-1", nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestDeactivateAccount_AlreadyInactive() {
	suite.mockService.On("DeactivateAccount", mock.Anything, "acc-1", "user-1").
		Return(fmt.Errorf("%w: account acc-1 is already inactive", apperrors.ErrConflict)).Once()

	w := suite.performRequest(http.MethodDelete, "/api/v1/accounts/acc-1", nil)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func TestAccountHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}
