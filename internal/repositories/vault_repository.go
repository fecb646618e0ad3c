package repositories

import (
	"errors"
	"fmt"

	"vaultbank/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrVaultNotFound    = errors.New("vault not found")
	ErrVaultNameExists  = errors.New("vault name already exists")
	ErrNonPositiveDelta = errors.New("amount must be positive")
)

// vaultRepository implements VaultRepositoryInterface
type vaultRepository struct {
	db *gorm.DB
}

// NewVaultRepository creates a new vault repository
func NewVaultRepository(db *gorm.DB) VaultRepositoryInterface {
	return &vaultRepository{db: db}
}

// Create creates a new vault
func (r *vaultRepository) Create(vault *models.Vault) error {
	if err := vault.Validate(); err != nil {
		return err
	}
	if err := r.db.Create(vault).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrVaultNameExists
		}
		return fmt.Errorf("failed to create vault: %w", err)
	}
	return nil
}

// GetByName retrieves a vault by name
func (r *vaultRepository) GetByName(name string) (*models.Vault, error) {
	var vault models.Vault
	if err := r.db.Where("vault_name = ?", name).First(&vault).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVaultNotFound
		}
		return nil, fmt.Errorf("failed to get vault: %w", err)
	}
	return &vault, nil
}

// Increment adds the amount to the vault balance
func (r *vaultRepository) Increment(name string, amount decimal.Decimal) (*models.Vault, error) {
	return r.adjust(name, amount)
}

// Decrement subtracts the amount from the vault balance. A vault is a
// bank-side aggregate and is allowed to run negative; conservation is
// tracked through the bank transaction records.
func (r *vaultRepository) Decrement(name string, amount decimal.Decimal) (*models.Vault, error) {
	return r.adjust(name, amount.Neg())
}

func (r *vaultRepository) adjust(name string, delta decimal.Decimal) (*models.Vault, error) {
	if delta.IsZero() {
		return nil, ErrNonPositiveDelta
	}

	var vault models.Vault
	if err := r.db.Set("gorm:query_option", "FOR UPDATE").
		Where("vault_name = ?", name).First(&vault).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVaultNotFound
		}
		return nil, fmt.Errorf("failed to lock vault: %w", err)
	}

	vault.Balance = vault.Balance.Add(delta)
	if err := r.db.Model(&vault).Update("balance", vault.Balance).Error; err != nil {
		return nil, fmt.Errorf("failed to update vault balance: %w", err)
	}
	return &vault, nil
}
