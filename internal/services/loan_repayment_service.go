package services

import (
	"log/slog"

	"vaultbank/internal/models"
	"vaultbank/internal/repositories"

	"github.com/google/uuid"
)

// loanRepaymentService implements LoanRepaymentServiceInterface. Applying a
// payment touches five entities; all of it happens inside one unit of work.
type loanRepaymentService struct {
	repos   *repositories.Registry
	tx      repositories.TxRunnerInterface
	metrics MetricsRecorderInterface
	logger  *slog.Logger
}

// NewLoanRepaymentService creates a loan repayment service
func NewLoanRepaymentService(
	repos *repositories.Registry,
	tx repositories.TxRunnerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) LoanRepaymentServiceInterface {
	return &loanRepaymentService{
		repos:   repos,
		tx:      tx,
		metrics: metrics,
		logger:  logger,
	}
}

// PayLoanPaymentDue settles a schedule entry from the paying account:
// records the principal and interest repayment transactions, moves the total
// from the account into the loan's vault, reduces the loan balance by the
// same total and stamps the entry with both transaction ids. The loan flips
// to paid exactly when its balance reaches zero. Any failure rolls the whole
// scope back with no partial effects.
func (s *loanRepaymentService) PayLoanPaymentDue(paymentID, accountID uuid.UUID) (*models.LoanPayment, error) {
	payment, err := s.repos.LoanPayments.GetByID(paymentID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	loan, err := s.repos.Loans.GetByID(payment.LoanID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	if _, err := s.repos.Accounts.GetByID(accountID); err != nil {
		return nil, mapRepositoryError(err)
	}

	err = s.tx.RunInTransaction(func(r *repositories.Registry) error {
		principalTx := &models.BankTransaction{
			AccountID:       accountID,
			VaultName:       loan.VaultName,
			TransactionType: models.BankTransactionTypePrincipalRepayment,
			Amount:          payment.PrincipalDue,
		}
		if err := r.BankTransactions.Create(principalTx); err != nil {
			return err
		}

		interestTx := &models.BankTransaction{
			AccountID:       accountID,
			VaultName:       loan.VaultName,
			TransactionType: models.BankTransactionTypeInterestRepayment,
			Amount:          payment.InterestDue,
		}
		if err := r.BankTransactions.Create(interestTx); err != nil {
			return err
		}

		total := payment.TotalDue()

		if _, err := r.Accounts.Decrement(accountID, total); err != nil {
			return err
		}

		if _, err := r.Vaults.Increment(loan.VaultName, total); err != nil {
			return err
		}

		// The closing payment's dues carry interest on top of the full
		// remaining principal; the reduction is clamped so the balance lands
		// exactly on zero instead of tripping the overpayment guard.
		reduction := total
		if reduction.GreaterThan(loan.Balance) {
			reduction = loan.Balance
		}

		var err error
		if loan, err = r.Loans.Decrement(loan.ID, reduction); err != nil {
			return err
		}

		if payment, err = r.LoanPayments.SetTransactionIDs(paymentID, principalTx.ID, interestTx.ID); err != nil {
			return err
		}

		if loan.Balance.IsZero() {
			if loan, err = r.Loans.SetState(loan.ID, models.LoanStatePaid); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		s.metrics.RecordRepayment("failure")
		return nil, mapRepositoryError(err)
	}

	s.metrics.RecordRepayment("success")
	s.logger.Info("loan payment settled",
		"loan_id", loan.ID, "payment_id", payment.ID,
		"total", payment.TotalDue(), "loan_state", loan.State)
	return payment, nil
}
