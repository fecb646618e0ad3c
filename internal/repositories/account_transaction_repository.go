package repositories

import (
	"fmt"

	"vaultbank/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// accountTransactionRepository implements AccountTransactionRepositoryInterface
type accountTransactionRepository struct {
	db *gorm.DB
}

// NewAccountTransactionRepository creates a new account transaction repository
func NewAccountTransactionRepository(db *gorm.DB) AccountTransactionRepositoryInterface {
	return &accountTransactionRepository{db: db}
}

// Create records a peer transfer. Records are append-only.
func (r *accountTransactionRepository) Create(transaction *models.AccountTransaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create account transaction: %w", err)
	}
	return nil
}

// GetByAccountID retrieves transfers where the account is sender or
// receiver, newest first
func (r *accountTransactionRepository) GetByAccountID(accountID uuid.UUID) ([]models.AccountTransaction, error) {
	var transactions []models.AccountTransaction
	if err := r.db.Where("sender_id = ? OR receiver_id = ?", accountID, accountID).
		Order("created_at DESC").Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get account transactions: %w", err)
	}
	return transactions, nil
}
