package dto

import (
	"time"

	"vaultbank/internal/models"

	"github.com/google/uuid"
)

// DepositRequest is the body for depositing into an account
type DepositRequest struct {
	VaultName string `json:"vault_name" validate:"required"`
	Amount    string `json:"amount" validate:"required"`
}

// WithdrawRequest is the body for withdrawing from an account
type WithdrawRequest struct {
	VaultName string `json:"vault_name" validate:"required"`
	Amount    string `json:"amount" validate:"required"`
}

// SendFundsRequest is the body for a peer-to-peer transfer
type SendFundsRequest struct {
	SenderID   uuid.UUID `json:"sender_id" validate:"required"`
	ReceiverID uuid.UUID `json:"receiver_id" validate:"required"`
	Amount     string    `json:"amount" validate:"required"`
}

// AccountResponse is the wire representation of an account
type AccountResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	AccountType string    `json:"account_type"`
	Balance     string    `json:"balance"`
	Open        bool      `json:"open"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewAccountResponse converts an account model to its wire representation
func NewAccountResponse(account *models.Account) AccountResponse {
	return AccountResponse{
		ID:          account.ID,
		UserID:      account.UserID,
		AccountType: account.AccountType,
		Balance:     account.Balance.StringFixed(2),
		Open:        account.Open,
		CreatedAt:   account.CreatedAt,
	}
}

// AccountTransactionResponse is the wire representation of a peer transfer
type AccountTransactionResponse struct {
	ID         uuid.UUID `json:"id"`
	SenderID   uuid.UUID `json:"sender_id"`
	ReceiverID uuid.UUID `json:"receiver_id"`
	Amount     string    `json:"amount"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewAccountTransactionResponse converts a transfer model to its wire
// representation
func NewAccountTransactionResponse(transaction *models.AccountTransaction) AccountTransactionResponse {
	return AccountTransactionResponse{
		ID:         transaction.ID,
		SenderID:   transaction.SenderID,
		ReceiverID: transaction.ReceiverID,
		Amount:     transaction.Amount.StringFixed(2),
		CreatedAt:  transaction.CreatedAt,
	}
}
