package services

import (
	"log/slog"
	"testing"
	"time"

	"vaultbank/internal/database"
	"vaultbank/internal/models"
	"vaultbank/internal/repositories"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// LoanRepaymentServiceSuite exercises repayment against a real database: the
// whole settlement is one unit of work and the suite checks both the
// committed and the rolled-back shapes
type LoanRepaymentServiceSuite struct {
	suite.Suite
	db       *database.DB
	registry *repositories.Registry
	service  LoanRepaymentServiceInterface
	testUser *models.User
	account  *models.Account
	vault    *models.Vault
	loan     *models.Loan
}

// SetupTest runs before each test in the suite
func (s *LoanRepaymentServiceSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.registry = repositories.NewRegistry(s.db.DB)
	s.service = NewLoanRepaymentService(
		s.registry,
		repositories.NewTxRunner(s.db.DB),
		NewLedgerMetrics(prometheus.NewRegistry()),
		slog.Default(),
	)

	s.testUser = database.CreateTestUser(s.T(), s.db, "borrower@example.com")
	s.account = database.CreateTestAccount(s.T(), s.db, s.testUser, decimal.RequireFromString("500.00"))
	s.vault = database.CreateTestVault(s.T(), s.db, "main", decimal.RequireFromString("1000.00"))

	issued := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.loan = database.CreateTestLoan(s.T(), s.db, s.testUser, s.vault,
		decimal.RequireFromString("1200.00"), decimal.RequireFromString("0.1200"),
		issued, issued.AddDate(1, 0, 0))
}

// TearDownTest runs after each test in the suite
func (s *LoanRepaymentServiceSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestLoanRepaymentServiceSuite runs the test suite
func TestLoanRepaymentServiceSuite(t *testing.T) {
	suite.Run(t, new(LoanRepaymentServiceSuite))
}

func (s *LoanRepaymentServiceSuite) createPayment(principal, interest string) *models.LoanPayment {
	payment := &models.LoanPayment{
		LoanID:       s.loan.ID,
		PrincipalDue: decimal.RequireFromString(principal),
		InterestDue:  decimal.RequireFromString(interest),
		DueDate:      time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	s.Require().NoError(s.registry.LoanPayments.Create(payment))
	return payment
}

func (s *LoanRepaymentServiceSuite) TestPayLoanPaymentDue() {
	payment := s.createPayment("100.00", "12.00")

	settled, err := s.service.PayLoanPaymentDue(payment.ID, s.account.ID)
	s.NoError(err)
	s.True(settled.Settled())

	// Account pays the combined total
	account, err := s.registry.Accounts.GetByID(s.account.ID)
	s.NoError(err)
	s.True(decimal.RequireFromString("388.00").Equal(account.Balance))

	// The vault receives it
	vault, err := s.registry.Vaults.GetByName(s.vault.Name)
	s.NoError(err)
	s.True(decimal.RequireFromString("1112.00").Equal(vault.Balance))

	// The loan balance drops by the same total and stays active
	loan, err := s.registry.Loans.GetByID(s.loan.ID)
	s.NoError(err)
	s.True(decimal.RequireFromString("1088.00").Equal(loan.Balance))
	s.Equal(models.LoanStateActive, loan.State)

	// Both repayment records exist with the right types
	transactions, err := s.registry.BankTransactions.GetByAccountID(s.account.ID)
	s.NoError(err)
	s.Require().Len(transactions, 2)
	types := []string{transactions[0].TransactionType, transactions[1].TransactionType}
	s.Contains(types, models.BankTransactionTypePrincipalRepayment)
	s.Contains(types, models.BankTransactionTypeInterestRepayment)
}

func (s *LoanRepaymentServiceSuite) TestPayLoanPaymentDue_ZeroInterest() {
	payment := s.createPayment("100.00", "0.00")

	settled, err := s.service.PayLoanPaymentDue(payment.ID, s.account.ID)
	s.NoError(err)
	s.True(settled.Settled())

	// The interest repayment row is still recorded at zero
	transactions, err := s.registry.BankTransactions.GetByAccountID(s.account.ID)
	s.NoError(err)
	s.Len(transactions, 2)
}

func (s *LoanRepaymentServiceSuite) TestPayLoanPaymentDue_FinalPaymentFlipsToPaid() {
	// Shrink the loan so one payment clears it
	_, err := s.registry.Loans.Decrement(s.loan.ID, decimal.RequireFromString("1100.00"))
	s.Require().NoError(err)

	payment := s.createPayment("100.00", "0.00")

	_, err = s.service.PayLoanPaymentDue(payment.ID, s.account.ID)
	s.NoError(err)

	loan, err := s.registry.Loans.GetByID(s.loan.ID)
	s.NoError(err)
	s.True(loan.Balance.IsZero())
	s.Equal(models.LoanStatePaid, loan.State)
}

func (s *LoanRepaymentServiceSuite) TestPayLoanPaymentDue_FinalPaymentWithInterest() {
	// Balance 100; the closing payment carries interest on top of the full
	// remaining principal, so the dues total exceeds what is left
	_, err := s.registry.Loans.Decrement(s.loan.ID, decimal.RequireFromString("1100.00"))
	s.Require().NoError(err)

	payment := s.createPayment("100.00", "1.00")

	settled, err := s.service.PayLoanPaymentDue(payment.ID, s.account.ID)
	s.NoError(err)
	s.True(settled.Settled())

	// The loan still settles and flips to paid
	loan, err := s.registry.Loans.GetByID(s.loan.ID)
	s.NoError(err)
	s.True(loan.Balance.IsZero())
	s.Equal(models.LoanStatePaid, loan.State)

	// The account pays the full total and the vault receives it
	account, err := s.registry.Accounts.GetByID(s.account.ID)
	s.NoError(err)
	s.True(decimal.RequireFromString("399.00").Equal(account.Balance))

	vault, err := s.registry.Vaults.GetByName(s.vault.Name)
	s.NoError(err)
	s.True(decimal.RequireFromString("1101.00").Equal(vault.Balance))
}

func (s *LoanRepaymentServiceSuite) TestPayLoanPaymentDue_InterestDoesNotTriggerPaid() {
	// Balance 100, payment covers 88 principal + 12 interest: the loan
	// balance drops by the full 100 but does not reach zero from 188
	_, err := s.registry.Loans.Decrement(s.loan.ID, decimal.RequireFromString("1012.00"))
	s.Require().NoError(err)

	payment := s.createPayment("88.00", "12.00")

	_, err = s.service.PayLoanPaymentDue(payment.ID, s.account.ID)
	s.NoError(err)

	loan, err := s.registry.Loans.GetByID(s.loan.ID)
	s.NoError(err)
	s.True(decimal.RequireFromString("88.00").Equal(loan.Balance))
	s.Equal(models.LoanStateActive, loan.State)
}

func (s *LoanRepaymentServiceSuite) TestPayLoanPaymentDue_InadequateFunds_NoPartialEffects() {
	payment := s.createPayment("490.00", "12.00")

	_, err := s.service.PayLoanPaymentDue(payment.ID, s.account.ID)
	s.ErrorIs(err, ErrInadequateFunds)

	// Nothing moved and nothing was recorded
	account, err := s.registry.Accounts.GetByID(s.account.ID)
	s.NoError(err)
	s.True(decimal.RequireFromString("500.00").Equal(account.Balance))

	vault, err := s.registry.Vaults.GetByName(s.vault.Name)
	s.NoError(err)
	s.True(decimal.RequireFromString("1000.00").Equal(vault.Balance))

	loan, err := s.registry.Loans.GetByID(s.loan.ID)
	s.NoError(err)
	s.True(decimal.RequireFromString("1200.00").Equal(loan.Balance))

	transactions, err := s.registry.BankTransactions.GetByAccountID(s.account.ID)
	s.NoError(err)
	s.Empty(transactions)

	reloaded, err := s.registry.LoanPayments.GetByID(payment.ID)
	s.NoError(err)
	s.False(reloaded.Settled())
}

func (s *LoanRepaymentServiceSuite) TestPayLoanPaymentDue_AlreadySettled() {
	payment := s.createPayment("100.00", "12.00")

	_, err := s.service.PayLoanPaymentDue(payment.ID, s.account.ID)
	s.Require().NoError(err)

	// Settling the same entry again is refused inside the scope and rolls
	// back the second set of writes
	_, err = s.service.PayLoanPaymentDue(payment.ID, s.account.ID)
	s.ErrorIs(err, repositories.ErrLoanPaymentSettled)

	account, err := s.registry.Accounts.GetByID(s.account.ID)
	s.NoError(err)
	s.True(decimal.RequireFromString("388.00").Equal(account.Balance))
}

func (s *LoanRepaymentServiceSuite) TestPayLoanPaymentDue_UnknownPayment() {
	_, err := s.service.PayLoanPaymentDue(uuid.New(), s.account.ID)
	s.ErrorIs(err, ErrLoanPaymentNotFound)
}

func (s *LoanRepaymentServiceSuite) TestPayLoanPaymentDue_UnknownAccount() {
	payment := s.createPayment("100.00", "12.00")

	_, err := s.service.PayLoanPaymentDue(payment.ID, uuid.New())
	s.ErrorIs(err, ErrAccountNotFound)
}
