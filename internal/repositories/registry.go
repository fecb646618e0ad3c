package repositories

import (
	"gorm.io/gorm"
)

// Registry bundles one repository per entity, all bound to the same database
// handle. A registry built from a transaction handle scopes every repository
// call to that transaction.
type Registry struct {
	Users               UserRepositoryInterface
	Accounts            AccountRepositoryInterface
	Vaults              VaultRepositoryInterface
	BankTransactions    BankTransactionRepositoryInterface
	AccountTransactions AccountTransactionRepositoryInterface
	Loans               LoanRepositoryInterface
	LoanPayments        LoanPaymentRepositoryInterface
}

// NewRegistry creates a registry of repositories over the given handle
func NewRegistry(db *gorm.DB) *Registry {
	return &Registry{
		Users:               NewUserRepository(db),
		Accounts:            NewAccountRepository(db),
		Vaults:              NewVaultRepository(db),
		BankTransactions:    NewBankTransactionRepository(db),
		AccountTransactions: NewAccountTransactionRepository(db),
		Loans:               NewLoanRepository(db),
		LoanPayments:        NewLoanPaymentRepository(db),
	}
}

// TxRunnerInterface is the scoped unit of work: every repository call made
// through the registry passed to the closure commits atomically with the
// rest, or not at all. Returning an error (or panicking) rolls the whole
// scope back.
type TxRunnerInterface interface {
	RunInTransaction(fn func(repos *Registry) error) error
}

// txRunner implements TxRunnerInterface on a gorm database transaction
type txRunner struct {
	db *gorm.DB
}

// NewTxRunner creates a transaction runner over the given database
func NewTxRunner(db *gorm.DB) TxRunnerInterface {
	return &txRunner{db: db}
}

// RunInTransaction executes fn with a transaction-scoped registry
func (r *txRunner) RunInTransaction(fn func(repos *Registry) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewRegistry(tx))
	})
}
