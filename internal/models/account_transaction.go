package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AccountTransaction is the immutable record of a peer-to-peer transfer.
// The movement is zero-sum: the sender loses exactly what the receiver
// gains, and no vault is involved.
type AccountTransaction struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	SenderID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"sender_id"`
	ReceiverID uuid.UUID       `gorm:"type:uuid;not null;index" json:"receiver_id"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	CreatedAt  time.Time       `gorm:"not null;index" json:"created_at"`
}

// BeforeCreate hook for AccountTransaction
func (t *AccountTransaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}

	return t.Validate()
}

// Validate validates the account transaction fields
func (t *AccountTransaction) Validate() error {
	if t.SenderID == uuid.Nil {
		return errors.New("sender ID is required")
	}

	if t.ReceiverID == uuid.Nil {
		return errors.New("receiver ID is required")
	}

	if t.SenderID == t.ReceiverID {
		return errors.New("sender and receiver must differ")
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidTransactionAmount
	}

	return nil
}

// TableName returns the table name for AccountTransaction
func (t *AccountTransaction) TableName() string {
	return "account_transactions"
}
