package repositories

import (
	"vaultbank/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserRepositoryInterface defines the contract for user repository operations.
// User management proper lives outside this service; only the lookups needed
// by the ledger are exposed here.
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}

// AccountRepositoryInterface defines the contract for account repository operations
type AccountRepositoryInterface interface {
	Create(account *models.Account) error
	GetByID(id uuid.UUID) (*models.Account, error)
	GetByUserID(userID uuid.UUID) ([]models.Account, error)
	Increment(id uuid.UUID, amount decimal.Decimal) (*models.Account, error)
	Decrement(id uuid.UUID, amount decimal.Decimal) (*models.Account, error)
}

// VaultRepositoryInterface defines the contract for vault repository operations
type VaultRepositoryInterface interface {
	Create(vault *models.Vault) error
	GetByName(name string) (*models.Vault, error)
	Increment(name string, amount decimal.Decimal) (*models.Vault, error)
	Decrement(name string, amount decimal.Decimal) (*models.Vault, error)
}

// BankTransactionRepositoryInterface defines the contract for the immutable
// account-to-vault audit records. There are deliberately no update or delete
// operations.
type BankTransactionRepositoryInterface interface {
	Create(transaction *models.BankTransaction) error
	GetByAccountID(accountID uuid.UUID) ([]models.BankTransaction, error)
	GetByVaultName(vaultName string) ([]models.BankTransaction, error)
}

// AccountTransactionRepositoryInterface defines the contract for peer
// transfer records
type AccountTransactionRepositoryInterface interface {
	Create(transaction *models.AccountTransaction) error
	GetByAccountID(accountID uuid.UUID) ([]models.AccountTransaction, error)
}

// LoanRepositoryInterface defines the contract for loan repository operations
type LoanRepositoryInterface interface {
	Create(loan *models.Loan) error
	GetByID(id uuid.UUID) (*models.Loan, error)
	GetByUserID(userID uuid.UUID) ([]models.Loan, error)
	Decrement(id uuid.UUID, amount decimal.Decimal) (*models.Loan, error)
	SetAccruedInterest(id uuid.UUID, amount decimal.Decimal) (*models.Loan, error)
	SetState(id uuid.UUID, state string) (*models.Loan, error)
}

// LoanPaymentRepositoryInterface defines the contract for amortization
// schedule entries
type LoanPaymentRepositoryInterface interface {
	Create(payment *models.LoanPayment) error
	GetByID(id uuid.UUID) (*models.LoanPayment, error)
	GetOpenByLoanID(loanID uuid.UUID) (*models.LoanPayment, error)
	GetLastPaid(loanID uuid.UUID) (*models.LoanPayment, error)
	SetDues(id uuid.UUID, principalDue, interestDue decimal.Decimal) (*models.LoanPayment, error)
	SetTransactionIDs(id uuid.UUID, principalTxID, interestTxID uuid.UUID) (*models.LoanPayment, error)
}
