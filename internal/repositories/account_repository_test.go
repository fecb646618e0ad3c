package repositories

import (
	"testing"

	"vaultbank/internal/database"
	"vaultbank/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// AccountRepositorySuite defines the test suite for AccountRepository
type AccountRepositorySuite struct {
	suite.Suite
	db       *database.DB
	repo     AccountRepositoryInterface
	testUser *models.User
}

// SetupTest runs before each test in the suite
func (s *AccountRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewAccountRepository(s.db.DB)
	s.testUser = database.CreateTestUser(s.T(), s.db, "test@example.com")
}

// TearDownTest runs after each test in the suite
func (s *AccountRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestAccountRepositorySuite runs the test suite
func TestAccountRepositorySuite(t *testing.T) {
	suite.Run(t, new(AccountRepositorySuite))
}

func (s *AccountRepositorySuite) TestCreate() {
	account := &models.Account{
		UserID:      s.testUser.ID,
		AccountType: models.AccountTypeChecking,
		Balance:     decimal.NewFromFloat(1000.00),
		Open:        true,
	}

	err := s.repo.Create(account)
	s.NoError(err)
	s.NotEqual(uuid.Nil, account.ID)
	s.NotZero(account.CreatedAt)
	s.NotZero(account.UpdatedAt)
}

func (s *AccountRepositorySuite) TestGetByID() {
	account := database.CreateTestAccount(s.T(), s.db, s.testUser, decimal.NewFromFloat(250.00))

	found, err := s.repo.GetByID(account.ID)
	s.NoError(err)
	s.Equal(account.ID, found.ID)
	s.True(decimal.NewFromFloat(250.00).Equal(found.Balance))
}

func (s *AccountRepositorySuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(uuid.New())
	s.ErrorIs(err, ErrAccountNotFound)
}

func (s *AccountRepositorySuite) TestGetByUserID() {
	database.CreateTestAccount(s.T(), s.db, s.testUser, decimal.NewFromFloat(100.00))
	database.CreateTestAccount(s.T(), s.db, s.testUser, decimal.NewFromFloat(200.00))

	accounts, err := s.repo.GetByUserID(s.testUser.ID)
	s.NoError(err)
	s.Len(accounts, 2)
}

func (s *AccountRepositorySuite) TestIncrement() {
	account := database.CreateTestAccount(s.T(), s.db, s.testUser, decimal.NewFromFloat(100.00))

	updated, err := s.repo.Increment(account.ID, decimal.NewFromFloat(49.99))
	s.NoError(err)
	s.True(decimal.NewFromFloat(149.99).Equal(updated.Balance))

	// The new balance is persisted, not just returned
	reloaded, err := s.repo.GetByID(account.ID)
	s.NoError(err)
	s.True(decimal.NewFromFloat(149.99).Equal(reloaded.Balance))
}

func (s *AccountRepositorySuite) TestIncrement_ClosedAccount() {
	account := database.CreateTestAccount(s.T(), s.db, s.testUser, decimal.NewFromFloat(100.00))
	s.NoError(s.db.Model(account).Update("open", false).Error)

	_, err := s.repo.Increment(account.ID, decimal.NewFromFloat(10.00))
	s.ErrorIs(err, ErrAccountClosed)
}

func (s *AccountRepositorySuite) TestDecrement() {
	account := database.CreateTestAccount(s.T(), s.db, s.testUser, decimal.NewFromFloat(100.00))

	updated, err := s.repo.Decrement(account.ID, decimal.NewFromFloat(40.00))
	s.NoError(err)
	s.True(decimal.NewFromFloat(60.00).Equal(updated.Balance))
}

func (s *AccountRepositorySuite) TestDecrement_ToExactlyZero() {
	account := database.CreateTestAccount(s.T(), s.db, s.testUser, decimal.NewFromFloat(75.00))

	updated, err := s.repo.Decrement(account.ID, decimal.NewFromFloat(75.00))
	s.NoError(err)
	s.True(updated.Balance.IsZero())
}

func (s *AccountRepositorySuite) TestDecrement_InsufficientFunds() {
	account := database.CreateTestAccount(s.T(), s.db, s.testUser, decimal.NewFromFloat(10.00))

	_, err := s.repo.Decrement(account.ID, decimal.NewFromFloat(10.01))
	s.ErrorIs(err, ErrInsufficientFunds)

	// Balance untouched after the refusal
	reloaded, err := s.repo.GetByID(account.ID)
	s.NoError(err)
	s.True(decimal.NewFromFloat(10.00).Equal(reloaded.Balance))
}

func (s *AccountRepositorySuite) TestDecrement_NotFound() {
	_, err := s.repo.Decrement(uuid.New(), decimal.NewFromFloat(1.00))
	s.ErrorIs(err, ErrAccountNotFound)
}
