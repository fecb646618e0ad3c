package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apierrors "vaultbank/internal/errors"
	"vaultbank/internal/models"
	"vaultbank/internal/services"
	"vaultbank/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// BankHandlerSuite defines the test suite for BankHandler
type BankHandlerSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	ledger  *service_mocks.MockLedgerServiceInterface
	handler *BankHandler
	echo    *echo.Echo
}

// SetupTest runs before each test in the suite
func (s *BankHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ledger = service_mocks.NewMockLedgerServiceInterface(s.ctrl)
	s.handler = NewBankHandler(s.ledger)
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
}

// TearDownTest runs after each test in the suite
func (s *BankHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestBankHandlerSuite runs the test suite
func TestBankHandlerSuite(t *testing.T) {
	suite.Run(t, new(BankHandlerSuite))
}

// createContext creates an echo context for testing
func (s *BankHandlerSuite) createContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return s.echo.NewContext(req, rec), rec
}

func (s *BankHandlerSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	return response.Error.Code
}

func (s *BankHandlerSuite) TestDeposit() {
	accountID := uuid.New()
	amount := decimal.RequireFromString("25.50")
	account := &models.Account{
		ID:      accountID,
		UserID:  uuid.New(),
		Balance: decimal.RequireFromString("125.50"),
		Open:    true,
	}

	s.ledger.EXPECT().Deposit(accountID, "main", amount).Return(account, nil)

	c, rec := s.createContext(http.MethodPost, "/accounts/"+accountID.String()+"/deposits",
		`{"vault_name":"main","amount":"25.50"}`)
	c.SetParamNames("accountId")
	c.SetParamValues(accountID.String())

	s.NoError(s.handler.Deposit(c))
	s.Equal(http.StatusCreated, rec.Code)

	var response SuccessResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	data := response.Data.(map[string]interface{})
	s.Equal("125.50", data["balance"])
}

func (s *BankHandlerSuite) TestDeposit_InvalidAccountID() {
	c, rec := s.createContext(http.MethodPost, "/accounts/not-a-uuid/deposits",
		`{"vault_name":"main","amount":"25.50"}`)
	c.SetParamNames("accountId")
	c.SetParamValues("not-a-uuid")

	s.NoError(s.handler.Deposit(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(apierrors.ValidationInvalidFormat), s.errorCode(rec))
}

func (s *BankHandlerSuite) TestDeposit_MissingFields() {
	accountID := uuid.New()
	c, rec := s.createContext(http.MethodPost, "/accounts/"+accountID.String()+"/deposits",
		`{"amount":"25.50"}`)
	c.SetParamNames("accountId")
	c.SetParamValues(accountID.String())

	s.NoError(s.handler.Deposit(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(apierrors.ValidationGeneral), s.errorCode(rec))
}

func (s *BankHandlerSuite) TestDeposit_MalformedAmount() {
	accountID := uuid.New()
	c, rec := s.createContext(http.MethodPost, "/accounts/"+accountID.String()+"/deposits",
		`{"vault_name":"main","amount":"twelve"}`)
	c.SetParamNames("accountId")
	c.SetParamValues(accountID.String())

	s.NoError(s.handler.Deposit(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(apierrors.ValidationInvalidAmount), s.errorCode(rec))
}

func (s *BankHandlerSuite) TestDeposit_NegativeAmount() {
	accountID := uuid.New()
	c, rec := s.createContext(http.MethodPost, "/accounts/"+accountID.String()+"/deposits",
		`{"vault_name":"main","amount":"-5.00"}`)
	c.SetParamNames("accountId")
	c.SetParamValues(accountID.String())

	s.NoError(s.handler.Deposit(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(apierrors.ValidationInvalidAmount), s.errorCode(rec))
}

func (s *BankHandlerSuite) TestDeposit_AccountNotFound() {
	accountID := uuid.New()
	s.ledger.EXPECT().Deposit(accountID, "main", gomock.Any()).
		Return(nil, services.ErrAccountNotFound)

	c, rec := s.createContext(http.MethodPost, "/accounts/"+accountID.String()+"/deposits",
		`{"vault_name":"main","amount":"25.50"}`)
	c.SetParamNames("accountId")
	c.SetParamValues(accountID.String())

	s.NoError(s.handler.Deposit(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal(string(apierrors.AccountNotFound), s.errorCode(rec))
}

func (s *BankHandlerSuite) TestWithdraw() {
	accountID := uuid.New()
	amount := decimal.RequireFromString("40.00")
	account := &models.Account{
		ID:      accountID,
		UserID:  uuid.New(),
		Balance: decimal.RequireFromString("60.00"),
		Open:    true,
	}

	s.ledger.EXPECT().Withdraw(accountID, "main", amount).Return(account, nil)

	c, rec := s.createContext(http.MethodPost, "/accounts/"+accountID.String()+"/withdrawals",
		`{"vault_name":"main","amount":"40.00"}`)
	c.SetParamNames("accountId")
	c.SetParamValues(accountID.String())

	s.NoError(s.handler.Withdraw(c))
	s.Equal(http.StatusCreated, rec.Code)
}

func (s *BankHandlerSuite) TestWithdraw_InadequateFunds() {
	accountID := uuid.New()
	s.ledger.EXPECT().Withdraw(accountID, "main", gomock.Any()).
		Return(nil, services.ErrInadequateFunds)

	c, rec := s.createContext(http.MethodPost, "/accounts/"+accountID.String()+"/withdrawals",
		`{"vault_name":"main","amount":"100.01"}`)
	c.SetParamNames("accountId")
	c.SetParamValues(accountID.String())

	s.NoError(s.handler.Withdraw(c))
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Equal(string(apierrors.AccountInsufficientBalance), s.errorCode(rec))
}

func (s *BankHandlerSuite) TestWithdraw_VaultNotFound() {
	accountID := uuid.New()
	s.ledger.EXPECT().Withdraw(accountID, "missing", gomock.Any()).
		Return(nil, services.ErrVaultNotFound)

	c, rec := s.createContext(http.MethodPost, "/accounts/"+accountID.String()+"/withdrawals",
		`{"vault_name":"missing","amount":"40.00"}`)
	c.SetParamNames("accountId")
	c.SetParamValues(accountID.String())

	s.NoError(s.handler.Withdraw(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal(string(apierrors.VaultNotFound), s.errorCode(rec))
}

func (s *BankHandlerSuite) TestSendFunds() {
	senderID := uuid.New()
	receiverID := uuid.New()
	amount := decimal.RequireFromString("30.00")
	transaction := &models.AccountTransaction{
		ID:         uuid.New(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Amount:     amount,
	}

	s.ledger.EXPECT().SendFunds(senderID, receiverID, amount).Return(transaction, nil)

	c, rec := s.createContext(http.MethodPost, "/transfers",
		`{"sender_id":"`+senderID.String()+`","receiver_id":"`+receiverID.String()+`","amount":"30.00"}`)

	s.NoError(s.handler.SendFunds(c))
	s.Equal(http.StatusCreated, rec.Code)

	var response SuccessResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	data := response.Data.(map[string]interface{})
	s.Equal("30.00", data["amount"])
}

func (s *BankHandlerSuite) TestSendFunds_ReceiverNotFound() {
	senderID := uuid.New()
	receiverID := uuid.New()
	s.ledger.EXPECT().SendFunds(senderID, receiverID, gomock.Any()).
		Return(nil, services.ErrAccountNotFound)

	c, rec := s.createContext(http.MethodPost, "/transfers",
		`{"sender_id":"`+senderID.String()+`","receiver_id":"`+receiverID.String()+`","amount":"30.00"}`)

	s.NoError(s.handler.SendFunds(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal(string(apierrors.AccountNotFound), s.errorCode(rec))
}

func (s *BankHandlerSuite) TestSendFunds_MissingReceiver() {
	senderID := uuid.New()
	c, rec := s.createContext(http.MethodPost, "/transfers",
		`{"sender_id":"`+senderID.String()+`","amount":"30.00"}`)

	s.NoError(s.handler.SendFunds(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(apierrors.ValidationGeneral), s.errorCode(rec))
}
