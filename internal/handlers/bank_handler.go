package handlers

import (
	"errors"
	"net/http"

	"vaultbank/internal/dto"
	apierrors "vaultbank/internal/errors"
	"vaultbank/internal/repositories"
	"vaultbank/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// BankHandler handles deposit, withdrawal and transfer requests
type BankHandler struct {
	ledger services.LedgerServiceInterface
}

// NewBankHandler creates a new bank handler
func NewBankHandler(ledger services.LedgerServiceInterface) *BankHandler {
	return &BankHandler{ledger: ledger}
}

// Deposit moves funds into an account and its backing vault
// POST /accounts/:accountId/deposits
func (h *BankHandler) Deposit(c echo.Context) error {
	accountID, err := uuid.Parse(c.Param("accountId"))
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid account ID"))
	}

	var req dto.DepositRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidAmount)
	}

	account, err := h.ledger.Deposit(accountID, req.VaultName, amount)
	if err != nil {
		return sendLedgerError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{Data: dto.NewAccountResponse(account)})
}

// Withdraw moves funds out of an account and its backing vault
// POST /accounts/:accountId/withdrawals
func (h *BankHandler) Withdraw(c echo.Context) error {
	accountID, err := uuid.Parse(c.Param("accountId"))
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid account ID"))
	}

	var req dto.WithdrawRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidAmount)
	}

	account, err := h.ledger.Withdraw(accountID, req.VaultName, amount)
	if err != nil {
		return sendLedgerError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{Data: dto.NewAccountResponse(account)})
}

// SendFunds transfers funds between two accounts
// POST /transfers
func (h *BankHandler) SendFunds(c echo.Context) error {
	var req dto.SendFundsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidAmount)
	}

	transaction, err := h.ledger.SendFunds(req.SenderID, req.ReceiverID, amount)
	if err != nil {
		return sendLedgerError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{Data: dto.NewAccountTransactionResponse(transaction)})
}

// bindAndValidate binds the request body and runs struct validation,
// responding with a validation error itself when either fails
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat)
	}
	if err := c.Validate(req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}
	return nil
}

// parseAmount parses a positive decimal amount from its wire form
func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, err
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, services.ErrInvalidAmount
	}
	return amount, nil
}

// sendLedgerError maps ledger service sentinels onto API error codes
func sendLedgerError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidAmount):
		return SendError(c, apierrors.ValidationInvalidAmount)
	case errors.Is(err, services.ErrInadequateFunds):
		return SendError(c, apierrors.AccountInsufficientBalance)
	case errors.Is(err, services.ErrAccountNotFound):
		return SendError(c, apierrors.AccountNotFound)
	case errors.Is(err, repositories.ErrAccountClosed):
		return SendError(c, apierrors.AccountClosed)
	case errors.Is(err, services.ErrVaultNotFound):
		return SendError(c, apierrors.VaultNotFound)
	case errors.Is(err, services.ErrLoanNotFound):
		return SendError(c, apierrors.LoanNotFound)
	case errors.Is(err, services.ErrLoanPaymentNotFound):
		return SendError(c, apierrors.LoanPaymentNotFound)
	default:
		return SendSystemError(c, err)
	}
}
