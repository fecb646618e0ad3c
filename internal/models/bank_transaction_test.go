package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBankTransaction_Validate(t *testing.T) {
	accountID := uuid.New()

	tests := []struct {
		name        string
		transaction BankTransaction
		wantErr     bool
	}{
		{
			name: "valid deposit",
			transaction: BankTransaction{
				AccountID:       accountID,
				VaultName:       "main",
				TransactionType: BankTransactionTypeDeposit,
				Amount:          decimal.NewFromFloat(25.00),
			},
			wantErr: false,
		},
		{
			name: "zero interest repayment is legal",
			transaction: BankTransaction{
				AccountID:       accountID,
				VaultName:       "main",
				TransactionType: BankTransactionTypeInterestRepayment,
				Amount:          decimal.Zero,
			},
			wantErr: false,
		},
		{
			name: "negative amount",
			transaction: BankTransaction{
				AccountID:       accountID,
				VaultName:       "main",
				TransactionType: BankTransactionTypeWithdraw,
				Amount:          decimal.NewFromInt(-5),
			},
			wantErr: true,
		},
		{
			name: "missing account",
			transaction: BankTransaction{
				VaultName:       "main",
				TransactionType: BankTransactionTypeDeposit,
				Amount:          decimal.NewFromInt(5),
			},
			wantErr: true,
		},
		{
			name: "missing vault",
			transaction: BankTransaction{
				AccountID:       accountID,
				TransactionType: BankTransactionTypeDeposit,
				Amount:          decimal.NewFromInt(5),
			},
			wantErr: true,
		},
		{
			name: "unknown type",
			transaction: BankTransaction{
				AccountID:       accountID,
				VaultName:       "main",
				TransactionType: "refund",
				Amount:          decimal.NewFromInt(5),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.transaction.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
