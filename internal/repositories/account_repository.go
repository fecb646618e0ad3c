package repositories

import (
	"errors"
	"fmt"

	"vaultbank/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrAccountClosed     = errors.New("account is closed")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// accountRepository implements AccountRepositoryInterface
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) AccountRepositoryInterface {
	return &accountRepository{db: db}
}

// Create creates a new account
func (r *accountRepository) Create(account *models.Account) error {
	if err := r.db.Create(account).Error; err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// GetByID retrieves an account by ID
func (r *accountRepository) GetByID(id uuid.UUID) (*models.Account, error) {
	account := &models.Account{}
	if err := r.db.First(account, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

// GetByUserID retrieves all accounts for a user
func (r *accountRepository) GetByUserID(userID uuid.UUID) ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to get accounts for user: %w", err)
	}
	return accounts, nil
}

// Increment adds the amount to the account balance and returns the updated
// account. Must run inside the caller's unit of work when paired with other
// writes.
func (r *accountRepository) Increment(id uuid.UUID, amount decimal.Decimal) (*models.Account, error) {
	account, err := r.lockByID(id)
	if err != nil {
		return nil, err
	}

	if err := account.Credit(amount); err != nil {
		if errors.Is(err, models.ErrAccountClosed) {
			return nil, ErrAccountClosed
		}
		return nil, err
	}

	if err := r.db.Model(account).Update("balance", account.Balance).Error; err != nil {
		return nil, fmt.Errorf("failed to credit account: %w", err)
	}
	return account, nil
}

// Decrement subtracts the amount from the account balance and returns the
// updated account. The write is refused rather than letting the balance go
// negative, which closes the check-then-act gap between a caller's funds
// check and the decrement.
func (r *accountRepository) Decrement(id uuid.UUID, amount decimal.Decimal) (*models.Account, error) {
	account, err := r.lockByID(id)
	if err != nil {
		return nil, err
	}

	if err := account.Debit(amount); err != nil {
		switch {
		case errors.Is(err, models.ErrInsufficientFunds):
			return nil, ErrInsufficientFunds
		case errors.Is(err, models.ErrAccountClosed):
			return nil, ErrAccountClosed
		default:
			return nil, err
		}
	}

	if err := r.db.Model(account).Update("balance", account.Balance).Error; err != nil {
		return nil, fmt.Errorf("failed to debit account: %w", err)
	}
	return account, nil
}

// lockByID loads the account row with a row-level lock so concurrent balance
// mutations serialize on the same row
func (r *accountRepository) lockByID(id uuid.UUID) (*models.Account, error) {
	account := &models.Account{}
	if err := r.db.Set("gorm:query_option", "FOR UPDATE").
		First(account, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to lock account: %w", err)
	}
	return account, nil
}
