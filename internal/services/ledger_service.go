package services

import (
	"errors"
	"fmt"
	"log/slog"

	"vaultbank/internal/models"
	"vaultbank/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInadequateFunds     = errors.New("inadequate funds")
	ErrAccountNotFound     = errors.New("account not found")
	ErrVaultNotFound       = errors.New("vault not found")
	ErrLoanNotFound        = errors.New("loan not found")
	ErrLoanPaymentNotFound = errors.New("loan payment not found")
)

// ledgerService implements LedgerServiceInterface. Every multi-entity
// mutation runs inside a single unit of work: the audit record and both
// balance updates commit together or not at all.
type ledgerService struct {
	repos   *repositories.Registry
	tx      repositories.TxRunnerInterface
	metrics MetricsRecorderInterface
	logger  *slog.Logger
}

// NewLedgerService creates a ledger service
func NewLedgerService(
	repos *repositories.Registry,
	tx repositories.TxRunnerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) LedgerServiceInterface {
	return &ledgerService{
		repos:   repos,
		tx:      tx,
		metrics: metrics,
		logger:  logger,
	}
}

// Deposit moves funds into an account and its backing vault. Deposits cannot
// fail on funds, so there is no pre-check.
func (s *ledgerService) Deposit(accountID uuid.UUID, vaultName string, amount decimal.Decimal) (*models.Account, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	var account *models.Account
	err := s.tx.RunInTransaction(func(r *repositories.Registry) error {
		if err := r.BankTransactions.Create(&models.BankTransaction{
			AccountID:       accountID,
			VaultName:       vaultName,
			TransactionType: models.BankTransactionTypeDeposit,
			Amount:          amount,
		}); err != nil {
			return err
		}

		var err error
		if account, err = r.Accounts.Increment(accountID, amount); err != nil {
			return err
		}

		_, err = r.Vaults.Increment(vaultName, amount)
		return err
	})
	if err != nil {
		s.metrics.RecordLedgerOperation("deposit", "failure")
		return nil, mapRepositoryError(err)
	}

	s.metrics.RecordLedgerOperation("deposit", "success")
	s.metrics.ObserveLedgerAmount("deposit", amount)
	s.logger.Info("deposit completed",
		"account_id", accountID, "vault", vaultName, "amount", amount)
	return account, nil
}

// Withdraw moves funds out of an account and its backing vault. The funds
// check happens before any write; the account decrement enforces the same
// floor again at write time.
func (s *ledgerService) Withdraw(accountID uuid.UUID, vaultName string, amount decimal.Decimal) (*models.Account, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	current, err := s.repos.Accounts.GetByID(accountID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	if current.Balance.LessThan(amount) {
		return nil, ErrInadequateFunds
	}

	var account *models.Account
	err = s.tx.RunInTransaction(func(r *repositories.Registry) error {
		if err := r.BankTransactions.Create(&models.BankTransaction{
			AccountID:       accountID,
			VaultName:       vaultName,
			TransactionType: models.BankTransactionTypeWithdraw,
			Amount:          amount,
		}); err != nil {
			return err
		}

		var err error
		if account, err = r.Accounts.Decrement(accountID, amount); err != nil {
			return err
		}

		_, err = r.Vaults.Decrement(vaultName, amount)
		return err
	})
	if err != nil {
		s.metrics.RecordLedgerOperation("withdraw", "failure")
		return nil, mapRepositoryError(err)
	}

	s.metrics.RecordLedgerOperation("withdraw", "success")
	s.metrics.ObserveLedgerAmount("withdraw", amount)
	s.logger.Info("withdrawal completed",
		"account_id", accountID, "vault", vaultName, "amount", amount)
	return account, nil
}

// SendFunds transfers funds between two accounts. The movement is zero-sum
// and recorded as a single account transaction.
func (s *ledgerService) SendFunds(senderID, receiverID uuid.UUID, amount decimal.Decimal) (*models.AccountTransaction, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	sender, err := s.repos.Accounts.GetByID(senderID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	if sender.Balance.LessThan(amount) {
		return nil, ErrInadequateFunds
	}

	transaction := &models.AccountTransaction{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Amount:     amount,
	}
	err = s.tx.RunInTransaction(func(r *repositories.Registry) error {
		if err := r.AccountTransactions.Create(transaction); err != nil {
			return err
		}

		if _, err := r.Accounts.Increment(receiverID, amount); err != nil {
			return err
		}

		_, err := r.Accounts.Decrement(senderID, amount)
		return err
	})
	if err != nil {
		s.metrics.RecordLedgerOperation("send_funds", "failure")
		return nil, mapRepositoryError(err)
	}

	s.metrics.RecordLedgerOperation("send_funds", "success")
	s.metrics.ObserveLedgerAmount("send_funds", amount)
	s.logger.Info("funds sent",
		"sender_id", senderID, "receiver_id", receiverID, "amount", amount)
	return transaction, nil
}

// DisburseLoan pays the loan's original principal out of its vault into the
// borrower's account. Validating that the account belongs to the borrower is
// the caller's responsibility.
func (s *ledgerService) DisburseLoan(loan *models.Loan, accountID uuid.UUID) error {
	err := s.tx.RunInTransaction(func(r *repositories.Registry) error {
		if _, err := r.Vaults.Decrement(loan.VaultName, loan.OrigPrincipal); err != nil {
			return err
		}

		_, err := r.Accounts.Increment(accountID, loan.OrigPrincipal)
		return err
	})
	if err != nil {
		s.metrics.RecordLedgerOperation("disburse_loan", "failure")
		return mapRepositoryError(err)
	}

	s.metrics.RecordLedgerOperation("disburse_loan", "success")
	s.metrics.ObserveLedgerAmount("disburse_loan", loan.OrigPrincipal)
	s.logger.Info("loan disbursed",
		"loan_id", loan.ID, "account_id", accountID, "amount", loan.OrigPrincipal)
	return nil
}

// mapRepositoryError converts repository sentinels into the service's error
// vocabulary at the call boundary; anything unrecognized passes through as a
// system failure, already wrapped by the repository.
func mapRepositoryError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrAccountNotFound):
		return ErrAccountNotFound
	case errors.Is(err, repositories.ErrVaultNotFound):
		return ErrVaultNotFound
	case errors.Is(err, repositories.ErrLoanNotFound):
		return ErrLoanNotFound
	case errors.Is(err, repositories.ErrLoanPaymentNotFound):
		return ErrLoanPaymentNotFound
	case errors.Is(err, repositories.ErrInsufficientFunds):
		return ErrInadequateFunds
	case errors.Is(err, repositories.ErrLoanPaymentSettled),
		errors.Is(err, repositories.ErrLoanOverpaid),
		errors.Is(err, repositories.ErrAccountClosed):
		// Business refusals, not storage failures; passed through untouched
		// so callers can keep discriminating on the sentinel.
		return err
	default:
		return fmt.Errorf("storage failure: %w", err)
	}
}
