package services

import (
	"time"

	"vaultbank/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Calendar supplies the current date. It is injected rather than read from a
// global clock so amortization arithmetic stays deterministic under test.
type Calendar interface {
	CurrentDate() time.Time
}

// LedgerServiceInterface moves money between accounts and vaults, recording
// an immutable bank transaction for every movement
type LedgerServiceInterface interface {
	Deposit(accountID uuid.UUID, vaultName string, amount decimal.Decimal) (*models.Account, error)
	Withdraw(accountID uuid.UUID, vaultName string, amount decimal.Decimal) (*models.Account, error)
	SendFunds(senderID, receiverID uuid.UUID, amount decimal.Decimal) (*models.AccountTransaction, error)
	DisburseLoan(loan *models.Loan, accountID uuid.UUID) error
}

// LoanAmortizationServiceInterface builds and refreshes the next due
// schedule entry from loan state and the current date
type LoanAmortizationServiceInterface interface {
	CreateNextLoanPayment(loan *models.Loan) (*models.LoanPayment, error)
	GetNextLoanPayment(loan *models.Loan) (*models.LoanPayment, error)
	UpdateLoanPayment(loan *models.Loan, paymentID uuid.UUID) (*models.LoanPayment, error)
	Accrue(loan *models.Loan) (*models.Loan, error)
}

// LoanRepaymentServiceInterface applies a due schedule entry against an
// account and drives the loan's active to paid transition
type LoanRepaymentServiceInterface interface {
	PayLoanPaymentDue(paymentID, accountID uuid.UUID) (*models.LoanPayment, error)
}

// MetricsRecorderInterface records operational metrics for ledger and loan
// operations
type MetricsRecorderInterface interface {
	RecordLedgerOperation(operation, status string)
	ObserveLedgerAmount(operation string, amount decimal.Decimal)
	RecordRepayment(status string)
	RecordAccrual()
}
