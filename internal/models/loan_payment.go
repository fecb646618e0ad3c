package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// LoanPayment is one entry of a loan's amortization schedule. Dues are
// refreshed until the payment settles; settling stamps the two bank
// transaction ids, after which the row is never touched again. DueDate never
// exceeds the owning loan's maturity date.
type LoanPayment struct {
	ID                     uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	LoanID                 uuid.UUID       `gorm:"type:uuid;not null;index" json:"loan_id"`
	PrincipalDue           decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"principal_due"`
	InterestDue            decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"interest_due"`
	DueDate                time.Time       `gorm:"not null;index" json:"due_date"`
	PrincipalTransactionID *uuid.UUID      `gorm:"type:uuid" json:"principal_transaction_id,omitempty"`
	InterestTransactionID  *uuid.UUID      `gorm:"type:uuid" json:"interest_transaction_id,omitempty"`
	CreatedAt              time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt              time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for LoanPayment
func (p *LoanPayment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}

	return p.Validate()
}

// BeforeUpdate hook for LoanPayment
func (p *LoanPayment) BeforeUpdate(tx *gorm.DB) error {
	p.UpdatedAt = time.Now()
	return nil
}

// Validate validates the loan payment fields
func (p *LoanPayment) Validate() error {
	if p.LoanID == uuid.Nil {
		return errors.New("loan ID is required")
	}

	if p.PrincipalDue.LessThan(decimal.Zero) {
		return errors.New("principal due cannot be negative")
	}

	if p.InterestDue.LessThan(decimal.Zero) {
		return errors.New("interest due cannot be negative")
	}

	if p.DueDate.IsZero() {
		return errors.New("due date is required")
	}

	return nil
}

// Settled returns true once both repayment transactions have been recorded
func (p *LoanPayment) Settled() bool {
	return p.PrincipalTransactionID != nil && p.InterestTransactionID != nil
}

// TotalDue returns the combined principal and interest due
func (p *LoanPayment) TotalDue() decimal.Decimal {
	return p.PrincipalDue.Add(p.InterestDue)
}

// TableName returns the table name for LoanPayment
func (p *LoanPayment) TableName() string {
	return "loan_payments"
}
