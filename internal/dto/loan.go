package dto

import (
	"time"

	"vaultbank/internal/models"

	"github.com/google/uuid"
)

// DisburseLoanRequest is the body for paying a loan's principal out to an
// account
type DisburseLoanRequest struct {
	AccountID uuid.UUID `json:"account_id" validate:"required"`
}

// PayLoanPaymentRequest is the body for settling a due schedule entry
type PayLoanPaymentRequest struct {
	AccountID uuid.UUID `json:"account_id" validate:"required"`
}

// LoanResponse is the wire representation of a loan
type LoanResponse struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"user_id"`
	VaultName        string    `json:"vault_name"`
	OrigPrincipal    string    `json:"orig_principal"`
	Balance          string    `json:"balance"`
	AccruedInterest  string    `json:"accrued_interest"`
	InterestRate     string    `json:"interest_rate"`
	PaymentFrequency int       `json:"payment_frequency"`
	IssueDate        time.Time `json:"issue_date"`
	MaturityDate     time.Time `json:"maturity_date"`
	State            string    `json:"state"`
}

// NewLoanResponse converts a loan model to its wire representation
func NewLoanResponse(loan *models.Loan) LoanResponse {
	return LoanResponse{
		ID:               loan.ID,
		UserID:           loan.UserID,
		VaultName:        loan.VaultName,
		OrigPrincipal:    loan.OrigPrincipal.StringFixed(2),
		Balance:          loan.Balance.StringFixed(2),
		AccruedInterest:  loan.AccruedInterest.StringFixed(2),
		InterestRate:     loan.InterestRate.String(),
		PaymentFrequency: loan.PaymentFrequency,
		IssueDate:        loan.IssueDate,
		MaturityDate:     loan.MaturityDate,
		State:            loan.State,
	}
}

// LoanPaymentResponse is the wire representation of a schedule entry
type LoanPaymentResponse struct {
	ID                     uuid.UUID  `json:"id"`
	LoanID                 uuid.UUID  `json:"loan_id"`
	PrincipalDue           string     `json:"principal_due"`
	InterestDue            string     `json:"interest_due"`
	DueDate                time.Time  `json:"due_date"`
	Settled                bool       `json:"settled"`
	PrincipalTransactionID *uuid.UUID `json:"principal_transaction_id,omitempty"`
	InterestTransactionID  *uuid.UUID `json:"interest_transaction_id,omitempty"`
}

// NewLoanPaymentResponse converts a schedule entry model to its wire
// representation
func NewLoanPaymentResponse(payment *models.LoanPayment) LoanPaymentResponse {
	return LoanPaymentResponse{
		ID:                     payment.ID,
		LoanID:                 payment.LoanID,
		PrincipalDue:           payment.PrincipalDue.StringFixed(2),
		InterestDue:            payment.InterestDue.StringFixed(2),
		DueDate:                payment.DueDate,
		Settled:                payment.Settled(),
		PrincipalTransactionID: payment.PrincipalTransactionID,
		InterestTransactionID:  payment.InterestTransactionID,
	}
}
