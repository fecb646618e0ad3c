package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	BankTransactionTypeDeposit            = "deposit"
	BankTransactionTypeWithdraw           = "withdraw"
	BankTransactionTypePrincipalRepayment = "principal_repayment"
	BankTransactionTypeInterestRepayment  = "interest_repayment"
)

var (
	ErrInvalidBankTransactionType = errors.New("invalid bank transaction type")
	ErrInvalidTransactionAmount   = errors.New("transaction amount cannot be negative")
)

// BankTransaction is the immutable audit record for a movement between an
// account and a vault. Rows are created inside the same unit of work as the
// balance mutation they describe and are never updated or deleted.
type BankTransaction struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	AccountID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"account_id"`
	VaultName       string          `gorm:"type:varchar(50);not null;index" json:"vault_name"`
	TransactionType string          `gorm:"type:varchar(30);not null" json:"transaction_type"`
	Amount          decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	CreatedAt       time.Time       `gorm:"not null;index" json:"created_at"`
}

// BeforeCreate hook for BankTransaction
func (t *BankTransaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}

	return t.Validate()
}

// Validate validates the bank transaction fields
func (t *BankTransaction) Validate() error {
	if t.AccountID == uuid.Nil {
		return errors.New("account ID is required")
	}

	if t.VaultName == "" {
		return errors.New("vault name is required")
	}

	if !IsValidBankTransactionType(t.TransactionType) {
		return ErrInvalidBankTransactionType
	}

	// A zero amount is legal: an interest repayment row is still recorded
	// when no interest has accrued.
	if t.Amount.LessThan(decimal.Zero) {
		return ErrInvalidTransactionAmount
	}

	return nil
}

// TableName returns the table name for BankTransaction
func (t *BankTransaction) TableName() string {
	return "bank_transactions"
}

// IsValidBankTransactionType checks if the bank transaction type is valid
func IsValidBankTransactionType(transactionType string) bool {
	switch transactionType {
	case BankTransactionTypeDeposit, BankTransactionTypeWithdraw,
		BankTransactionTypePrincipalRepayment, BankTransactionTypeInterestRepayment:
		return true
	default:
		return false
	}
}
