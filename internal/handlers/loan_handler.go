package handlers

import (
	"errors"
	"net/http"

	"vaultbank/internal/dto"
	apierrors "vaultbank/internal/errors"
	"vaultbank/internal/models"
	"vaultbank/internal/repositories"
	"vaultbank/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// LoanHandler handles loan disbursement, accrual, scheduling and repayment
// requests
type LoanHandler struct {
	loanRepo     repositories.LoanRepositoryInterface
	ledger       services.LedgerServiceInterface
	amortization services.LoanAmortizationServiceInterface
	repayment    services.LoanRepaymentServiceInterface
}

// NewLoanHandler creates a new loan handler
func NewLoanHandler(
	loanRepo repositories.LoanRepositoryInterface,
	ledger services.LedgerServiceInterface,
	amortization services.LoanAmortizationServiceInterface,
	repayment services.LoanRepaymentServiceInterface,
) *LoanHandler {
	return &LoanHandler{
		loanRepo:     loanRepo,
		ledger:       ledger,
		amortization: amortization,
		repayment:    repayment,
	}
}

// Disburse pays the loan principal out of its vault into the borrower's
// account
// POST /loans/:loanId/disburse
func (h *LoanHandler) Disburse(c echo.Context) error {
	loan, err := h.loadLoan(c)
	if loan == nil {
		return err
	}

	var req dto.DisburseLoanRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.ledger.DisburseLoan(loan, req.AccountID); err != nil {
		return sendLedgerError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    dto.NewLoanResponse(loan),
		Message: "loan disbursed",
	})
}

// Accrue computes and persists the loan's accrued interest for the period
// POST /loans/:loanId/accrue
func (h *LoanHandler) Accrue(c echo.Context) error {
	loan, err := h.loadLoan(c)
	if loan == nil {
		return err
	}

	updated, err := h.amortization.Accrue(loan)
	if err != nil {
		return sendLoanError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: dto.NewLoanResponse(updated)})
}

// NextPayment returns the loan's next due schedule entry, creating or
// refreshing it as needed
// GET /loans/:loanId/next-payment
func (h *LoanHandler) NextPayment(c echo.Context) error {
	loan, err := h.loadLoan(c)
	if loan == nil {
		return err
	}

	payment, err := h.amortization.GetNextLoanPayment(loan)
	if err != nil {
		return sendLoanError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: dto.NewLoanPaymentResponse(payment)})
}

// Pay settles a due schedule entry from the paying account
// POST /loan-payments/:paymentId/pay
func (h *LoanHandler) Pay(c echo.Context) error {
	paymentID, err := uuid.Parse(c.Param("paymentId"))
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid payment ID"))
	}

	var req dto.PayLoanPaymentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	payment, err := h.repayment.PayLoanPaymentDue(paymentID, req.AccountID)
	if err != nil {
		return sendLoanError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: dto.NewLoanPaymentResponse(payment)})
}

// loadLoan parses the loan id from the path and loads the loan, replying
// with the appropriate error itself when either step fails
func (h *LoanHandler) loadLoan(c echo.Context) (*models.Loan, error) {
	loanID, err := uuid.Parse(c.Param("loanId"))
	if err != nil {
		return nil, SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid loan ID"))
	}

	loan, err := h.loanRepo.GetByID(loanID)
	if err != nil {
		if errors.Is(err, repositories.ErrLoanNotFound) {
			return nil, SendError(c, apierrors.LoanNotFound)
		}
		return nil, SendSystemError(c, err)
	}
	return loan, nil
}

// sendLoanError maps loan service sentinels onto API error codes
func sendLoanError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidDate):
		return SendError(c, apierrors.LoanScheduleExhausted, apierrors.WithDetails(err.Error()))
	case errors.Is(err, repositories.ErrLoanPaymentSettled):
		return SendError(c, apierrors.LoanPaymentSettled)
	case errors.Is(err, repositories.ErrLoanOverpaid):
		return SendError(c, apierrors.LoanRepaymentTooLarge)
	default:
		return sendLedgerError(c, err)
	}
}
