package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccount_Validate(t *testing.T) {
	validUserID := uuid.New()

	tests := []struct {
		name    string
		account Account
		wantErr bool
	}{
		{
			name: "valid checking account",
			account: Account{
				UserID:      validUserID,
				AccountType: AccountTypeChecking,
				Balance:     decimal.NewFromFloat(1000.50),
				Open:        true,
			},
			wantErr: false,
		},
		{
			name: "valid savings account",
			account: Account{
				UserID:      validUserID,
				AccountType: AccountTypeSavings,
				Balance:     decimal.Zero,
				Open:        true,
			},
			wantErr: false,
		},
		{
			name: "missing user ID",
			account: Account{
				AccountType: AccountTypeChecking,
				Balance:     decimal.Zero,
				Open:        true,
			},
			wantErr: true,
		},
		{
			name: "unknown account type",
			account: Account{
				UserID:      validUserID,
				AccountType: "credit",
				Balance:     decimal.Zero,
				Open:        true,
			},
			wantErr: true,
		},
		{
			name: "negative balance",
			account: Account{
				UserID:      validUserID,
				AccountType: AccountTypeChecking,
				Balance:     decimal.NewFromInt(-1),
				Open:        true,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.account.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAccount_Credit(t *testing.T) {
	account := Account{
		UserID:      uuid.New(),
		AccountType: AccountTypeChecking,
		Balance:     decimal.NewFromFloat(100.00),
		Open:        true,
	}

	require.NoError(t, account.Credit(decimal.NewFromFloat(50.25)))
	assert.True(t, decimal.NewFromFloat(150.25).Equal(account.Balance))

	err := account.Credit(decimal.Zero)
	assert.Error(t, err)

	err = account.Credit(decimal.NewFromInt(-10))
	assert.Error(t, err)

	account.Open = false
	err = account.Credit(decimal.NewFromInt(10))
	assert.ErrorIs(t, err, ErrAccountClosed)
}

func TestAccount_Debit(t *testing.T) {
	account := Account{
		UserID:      uuid.New(),
		AccountType: AccountTypeChecking,
		Balance:     decimal.NewFromFloat(100.00),
		Open:        true,
	}

	require.NoError(t, account.Debit(decimal.NewFromFloat(40.00)))
	assert.True(t, decimal.NewFromFloat(60.00).Equal(account.Balance))

	// Debiting to exactly zero is allowed
	require.NoError(t, account.Debit(decimal.NewFromFloat(60.00)))
	assert.True(t, account.Balance.IsZero())

	err := account.Debit(decimal.NewFromFloat(0.01))
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	account.Open = false
	err = account.Debit(decimal.NewFromFloat(0.01))
	assert.ErrorIs(t, err, ErrAccountClosed)
}
