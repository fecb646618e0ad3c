package repositories

import (
	"fmt"

	"vaultbank/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// bankTransactionRepository implements BankTransactionRepositoryInterface
type bankTransactionRepository struct {
	db *gorm.DB
}

// NewBankTransactionRepository creates a new bank transaction repository
func NewBankTransactionRepository(db *gorm.DB) BankTransactionRepositoryInterface {
	return &bankTransactionRepository{db: db}
}

// Create records a bank transaction. Records are append-only.
func (r *bankTransactionRepository) Create(transaction *models.BankTransaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create bank transaction: %w", err)
	}
	return nil
}

// GetByAccountID retrieves all bank transactions for an account, newest first
func (r *bankTransactionRepository) GetByAccountID(accountID uuid.UUID) ([]models.BankTransaction, error) {
	var transactions []models.BankTransaction
	if err := r.db.Where("account_id = ?", accountID).
		Order("created_at DESC").Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get bank transactions: %w", err)
	}
	return transactions, nil
}

// GetByVaultName retrieves all bank transactions against a vault, newest first
func (r *bankTransactionRepository) GetByVaultName(vaultName string) ([]models.BankTransaction, error) {
	var transactions []models.BankTransaction
	if err := r.db.Where("vault_name = ?", vaultName).
		Order("created_at DESC").Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get vault transactions: %w", err)
	}
	return transactions, nil
}
