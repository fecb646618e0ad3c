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
	ErrLoanNotFound = errors.New("loan not found")
	ErrLoanOverpaid = errors.New("payment exceeds remaining loan balance")
	ErrInvalidState = errors.New("invalid loan state")
)

// loanRepository implements LoanRepositoryInterface
type loanRepository struct {
	db *gorm.DB
}

// NewLoanRepository creates a new loan repository
func NewLoanRepository(db *gorm.DB) LoanRepositoryInterface {
	return &loanRepository{db: db}
}

// Create creates a new loan
func (r *loanRepository) Create(loan *models.Loan) error {
	if err := r.db.Create(loan).Error; err != nil {
		return fmt.Errorf("failed to create loan: %w", err)
	}
	return nil
}

// GetByID retrieves a loan by ID
func (r *loanRepository) GetByID(id uuid.UUID) (*models.Loan, error) {
	loan := &models.Loan{}
	if err := r.db.First(loan, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLoanNotFound
		}
		return nil, fmt.Errorf("failed to get loan: %w", err)
	}
	return loan, nil
}

// GetByUserID retrieves all loans for a user
func (r *loanRepository) GetByUserID(userID uuid.UUID) ([]models.Loan, error) {
	var loans []models.Loan
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&loans).Error; err != nil {
		return nil, fmt.Errorf("failed to get loans for user: %w", err)
	}
	return loans, nil
}

// Decrement reduces the loan balance by the amount and returns the updated
// loan. The balance is never allowed to go negative.
func (r *loanRepository) Decrement(id uuid.UUID, amount decimal.Decimal) (*models.Loan, error) {
	loan, err := r.lockByID(id)
	if err != nil {
		return nil, err
	}

	if loan.Balance.LessThan(amount) {
		return nil, ErrLoanOverpaid
	}

	loan.Balance = loan.Balance.Sub(amount)
	if err := r.db.Model(loan).Update("balance", loan.Balance).Error; err != nil {
		return nil, fmt.Errorf("failed to decrement loan balance: %w", err)
	}
	return loan, nil
}

// SetAccruedInterest persists a freshly computed accrued interest figure
func (r *loanRepository) SetAccruedInterest(id uuid.UUID, amount decimal.Decimal) (*models.Loan, error) {
	loan, err := r.lockByID(id)
	if err != nil {
		return nil, err
	}

	loan.AccruedInterest = amount
	if err := r.db.Model(loan).Update("accrued_interest", loan.AccruedInterest).Error; err != nil {
		return nil, fmt.Errorf("failed to set accrued interest: %w", err)
	}
	return loan, nil
}

// SetState moves the loan to the given state
func (r *loanRepository) SetState(id uuid.UUID, state string) (*models.Loan, error) {
	if !models.IsValidLoanState(state) {
		return nil, ErrInvalidState
	}

	loan, err := r.lockByID(id)
	if err != nil {
		return nil, err
	}

	loan.State = state
	if err := r.db.Model(loan).Update("state", loan.State).Error; err != nil {
		return nil, fmt.Errorf("failed to set loan state: %w", err)
	}
	return loan, nil
}

// lockByID loads the loan row with a row-level lock
func (r *loanRepository) lockByID(id uuid.UUID) (*models.Loan, error) {
	loan := &models.Loan{}
	if err := r.db.Set("gorm:query_option", "FOR UPDATE").
		First(loan, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLoanNotFound
		}
		return nil, fmt.Errorf("failed to lock loan: %w", err)
	}
	return loan, nil
}
