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
	ErrLoanPaymentNotFound = errors.New("loan payment not found")
	ErrLoanPaymentSettled  = errors.New("loan payment already settled")
)

// loanPaymentRepository implements LoanPaymentRepositoryInterface
type loanPaymentRepository struct {
	db *gorm.DB
}

// NewLoanPaymentRepository creates a new loan payment repository
func NewLoanPaymentRepository(db *gorm.DB) LoanPaymentRepositoryInterface {
	return &loanPaymentRepository{db: db}
}

// Create creates a new schedule entry
func (r *loanPaymentRepository) Create(payment *models.LoanPayment) error {
	if err := r.db.Create(payment).Error; err != nil {
		return fmt.Errorf("failed to create loan payment: %w", err)
	}
	return nil
}

// GetByID retrieves a loan payment by ID
func (r *loanPaymentRepository) GetByID(id uuid.UUID) (*models.LoanPayment, error) {
	payment := &models.LoanPayment{}
	if err := r.db.First(payment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLoanPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get loan payment: %w", err)
	}
	return payment, nil
}

// GetOpenByLoanID retrieves the loan's earliest unsettled schedule entry
func (r *loanPaymentRepository) GetOpenByLoanID(loanID uuid.UUID) (*models.LoanPayment, error) {
	var payment models.LoanPayment
	if err := r.db.
		Where("loan_id = ? AND principal_transaction_id IS NULL AND interest_transaction_id IS NULL", loanID).
		Order("due_date ASC").First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLoanPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get open loan payment: %w", err)
	}
	return &payment, nil
}

// GetLastPaid retrieves the loan's most recently settled schedule entry
func (r *loanPaymentRepository) GetLastPaid(loanID uuid.UUID) (*models.LoanPayment, error) {
	var payment models.LoanPayment
	if err := r.db.
		Where("loan_id = ? AND principal_transaction_id IS NOT NULL AND interest_transaction_id IS NOT NULL", loanID).
		Order("due_date DESC").First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLoanPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get last paid loan payment: %w", err)
	}
	return &payment, nil
}

// SetDues refreshes the principal and interest components of an unsettled
// schedule entry. The due date is deliberately left untouched.
func (r *loanPaymentRepository) SetDues(id uuid.UUID, principalDue, interestDue decimal.Decimal) (*models.LoanPayment, error) {
	payment, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	if payment.Settled() {
		return nil, ErrLoanPaymentSettled
	}

	payment.PrincipalDue = principalDue
	payment.InterestDue = interestDue
	if err := r.db.Model(payment).Updates(map[string]interface{}{
		"principal_due": payment.PrincipalDue,
		"interest_due":  payment.InterestDue,
	}).Error; err != nil {
		return nil, fmt.Errorf("failed to set loan payment dues: %w", err)
	}
	return payment, nil
}

// SetTransactionIDs stamps the schedule entry with the repayment transaction
// ids, marking it settled. The stamp happens once; a settled entry is
// immutable.
func (r *loanPaymentRepository) SetTransactionIDs(id uuid.UUID, principalTxID, interestTxID uuid.UUID) (*models.LoanPayment, error) {
	payment, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	if payment.Settled() {
		return nil, ErrLoanPaymentSettled
	}

	payment.PrincipalTransactionID = &principalTxID
	payment.InterestTransactionID = &interestTxID
	if err := r.db.Model(payment).Updates(map[string]interface{}{
		"principal_transaction_id": payment.PrincipalTransactionID,
		"interest_transaction_id":  payment.InterestTransactionID,
	}).Error; err != nil {
		return nil, fmt.Errorf("failed to set loan payment transaction ids: %w", err)
	}
	return payment, nil
}
