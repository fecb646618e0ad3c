package repositories

import (
	"testing"
	"time"

	"vaultbank/internal/database"
	"vaultbank/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// LoanRepositorySuite defines the test suite for LoanRepository
type LoanRepositorySuite struct {
	suite.Suite
	db       *database.DB
	repo     LoanRepositoryInterface
	testUser *models.User
	vault    *models.Vault
}

// SetupTest runs before each test in the suite
func (s *LoanRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewLoanRepository(s.db.DB)
	s.testUser = database.CreateTestUser(s.T(), s.db, "borrower@example.com")
	s.vault = database.CreateTestVault(s.T(), s.db, "main", decimal.NewFromFloat(10000.00))
}

// TearDownTest runs after each test in the suite
func (s *LoanRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestLoanRepositorySuite runs the test suite
func TestLoanRepositorySuite(t *testing.T) {
	suite.Run(t, new(LoanRepositorySuite))
}

func (s *LoanRepositorySuite) newLoan() *models.Loan {
	issued := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return database.CreateTestLoan(s.T(), s.db, s.testUser, s.vault,
		decimal.RequireFromString("1200.00"), decimal.RequireFromString("0.1200"),
		issued, issued.AddDate(1, 0, 0))
}

func (s *LoanRepositorySuite) TestCreate_DefaultsBalanceAndState() {
	loan := s.newLoan()

	s.NotEqual(uuid.Nil, loan.ID)
	s.True(decimal.RequireFromString("1200.00").Equal(loan.Balance))
	s.Equal(models.LoanStateActive, loan.State)
}

func (s *LoanRepositorySuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(uuid.New())
	s.ErrorIs(err, ErrLoanNotFound)
}

func (s *LoanRepositorySuite) TestGetByUserID() {
	s.newLoan()
	s.newLoan()

	loans, err := s.repo.GetByUserID(s.testUser.ID)
	s.NoError(err)
	s.Len(loans, 2)
}

func (s *LoanRepositorySuite) TestDecrement() {
	loan := s.newLoan()

	updated, err := s.repo.Decrement(loan.ID, decimal.RequireFromString("100.00"))
	s.NoError(err)
	s.True(decimal.RequireFromString("1100.00").Equal(updated.Balance))
}

func (s *LoanRepositorySuite) TestDecrement_ToExactlyZero() {
	loan := s.newLoan()

	updated, err := s.repo.Decrement(loan.ID, decimal.RequireFromString("1200.00"))
	s.NoError(err)
	s.True(updated.Balance.IsZero())
	// Decrement never flips the state; that is the repayment service's call
	s.Equal(models.LoanStateActive, updated.State)
}

func (s *LoanRepositorySuite) TestDecrement_Overpaid() {
	loan := s.newLoan()

	_, err := s.repo.Decrement(loan.ID, decimal.RequireFromString("1200.01"))
	s.ErrorIs(err, ErrLoanOverpaid)

	reloaded, err := s.repo.GetByID(loan.ID)
	s.NoError(err)
	s.True(decimal.RequireFromString("1200.00").Equal(reloaded.Balance))
}

func (s *LoanRepositorySuite) TestSetAccruedInterest() {
	loan := s.newLoan()

	updated, err := s.repo.SetAccruedInterest(loan.ID, decimal.RequireFromString("12.00"))
	s.NoError(err)
	s.True(decimal.RequireFromString("12.00").Equal(updated.AccruedInterest))

	// Re-accrual replaces rather than adds
	updated, err = s.repo.SetAccruedInterest(loan.ID, decimal.RequireFromString("11.00"))
	s.NoError(err)
	s.True(decimal.RequireFromString("11.00").Equal(updated.AccruedInterest))
}

func (s *LoanRepositorySuite) TestSetState() {
	loan := s.newLoan()

	updated, err := s.repo.SetState(loan.ID, models.LoanStatePaid)
	s.NoError(err)
	s.Equal(models.LoanStatePaid, updated.State)
}

func (s *LoanRepositorySuite) TestSetState_Invalid() {
	loan := s.newLoan()

	_, err := s.repo.SetState(loan.ID, "defaulted")
	s.ErrorIs(err, ErrInvalidState)
}
