package services

import (
	"log/slog"
	"testing"
	"time"

	"vaultbank/internal/models"
	"vaultbank/internal/repositories"
	"vaultbank/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// LoanAmortizationServiceSuite defines the test suite for the amortization
// engine. Repositories are mocked; the schedule arithmetic is the subject.
type LoanAmortizationServiceSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	loanRepo    *repository_mocks.MockLoanRepositoryInterface
	paymentRepo *repository_mocks.MockLoanPaymentRepositoryInterface
	calendar    FixedCalendar
	service     LoanAmortizationServiceInterface
	loan        *models.Loan
}

// SetupTest runs before each test in the suite
func (s *LoanAmortizationServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.loanRepo = repository_mocks.NewMockLoanRepositoryInterface(s.ctrl)
	s.paymentRepo = repository_mocks.NewMockLoanPaymentRepositoryInterface(s.ctrl)
	s.calendar = FixedCalendar{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	s.service = NewLoanAmortizationService(
		s.loanRepo, s.paymentRepo, s.calendar,
		NewLedgerMetrics(prometheus.NewRegistry()), slog.Default())

	issued := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.loan = &models.Loan{
		ID:               uuid.New(),
		UserID:           uuid.New(),
		VaultName:        "main",
		OrigPrincipal:    decimal.RequireFromString("1200.00"),
		Balance:          decimal.RequireFromString("1200.00"),
		AccruedInterest:  decimal.RequireFromString("12.00"),
		InterestRate:     decimal.RequireFromString("0.1200"),
		PaymentFrequency: 1,
		IssueDate:        issued,
		MaturityDate:     issued.AddDate(1, 0, 0),
		State:            models.LoanStateActive,
	}
}

// TearDownTest runs after each test in the suite
func (s *LoanAmortizationServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestLoanAmortizationServiceSuite runs the test suite
func TestLoanAmortizationServiceSuite(t *testing.T) {
	suite.Run(t, new(LoanAmortizationServiceSuite))
}

func (s *LoanAmortizationServiceSuite) TestCreateNextLoanPayment_FirstEntry() {
	s.paymentRepo.EXPECT().GetLastPaid(s.loan.ID).
		Return(nil, repositories.ErrLoanPaymentNotFound)
	s.paymentRepo.EXPECT().Create(gomock.Any()).DoAndReturn(
		func(payment *models.LoanPayment) error {
			payment.ID = uuid.New()
			return nil
		})

	payment, err := s.service.CreateNextLoanPayment(s.loan)
	s.NoError(err)

	// First due date is one frequency past the issue date
	s.True(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC).Equal(payment.DueDate))
	// 12 periods remain: 1200 / 12
	s.True(decimal.RequireFromString("100.00").Equal(payment.PrincipalDue))
	// Interest due is whatever has accrued, not recomputed
	s.True(decimal.RequireFromString("12.00").Equal(payment.InterestDue))
}

func (s *LoanAmortizationServiceSuite) TestCreateNextLoanPayment_AdvancesFromLastPaid() {
	lastPaid := &models.LoanPayment{
		ID:      uuid.New(),
		LoanID:  s.loan.ID,
		DueDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}
	s.paymentRepo.EXPECT().GetLastPaid(s.loan.ID).Return(lastPaid, nil)
	s.paymentRepo.EXPECT().Create(gomock.Any()).Return(nil)

	payment, err := s.service.CreateNextLoanPayment(s.loan)
	s.NoError(err)
	s.True(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC).Equal(payment.DueDate))
}

func (s *LoanAmortizationServiceSuite) TestCreateNextLoanPayment_QuarterlyFrequency() {
	s.loan.PaymentFrequency = 3
	s.paymentRepo.EXPECT().GetLastPaid(s.loan.ID).
		Return(nil, repositories.ErrLoanPaymentNotFound)
	s.paymentRepo.EXPECT().Create(gomock.Any()).Return(nil)

	payment, err := s.service.CreateNextLoanPayment(s.loan)
	s.NoError(err)
	s.True(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC).Equal(payment.DueDate))
	// 12 months left in 3-month periods: 4 periods of 300
	s.True(decimal.RequireFromString("300.00").Equal(payment.PrincipalDue))
}

func (s *LoanAmortizationServiceSuite) TestCreateNextLoanPayment_MonthEndIssueDate() {
	s.loan.IssueDate = time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	s.loan.MaturityDate = time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
	s.paymentRepo.EXPECT().GetLastPaid(s.loan.ID).
		Return(nil, repositories.ErrLoanPaymentNotFound)
	s.paymentRepo.EXPECT().Create(gomock.Any()).Return(nil)

	payment, err := s.service.CreateNextLoanPayment(s.loan)
	s.NoError(err)
	// The day clamps to the end of February instead of spilling into March
	s.True(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC).Equal(payment.DueDate))
}

func (s *LoanAmortizationServiceSuite) TestCreateNextLoanPayment_PastMaturity() {
	lastPaid := &models.LoanPayment{
		ID:      uuid.New(),
		LoanID:  s.loan.ID,
		DueDate: s.loan.MaturityDate,
	}
	s.paymentRepo.EXPECT().GetLastPaid(s.loan.ID).Return(lastPaid, nil)

	_, err := s.service.CreateNextLoanPayment(s.loan)
	s.ErrorIs(err, ErrInvalidDate)
}

func (s *LoanAmortizationServiceSuite) TestGetNextLoanPayment_CreatesWhenNoneOpen() {
	s.paymentRepo.EXPECT().GetOpenByLoanID(s.loan.ID).
		Return(nil, repositories.ErrLoanPaymentNotFound)
	s.paymentRepo.EXPECT().GetLastPaid(s.loan.ID).
		Return(nil, repositories.ErrLoanPaymentNotFound)
	s.paymentRepo.EXPECT().Create(gomock.Any()).Return(nil)

	payment, err := s.service.GetNextLoanPayment(s.loan)
	s.NoError(err)
	s.True(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC).Equal(payment.DueDate))
}

func (s *LoanAmortizationServiceSuite) TestGetNextLoanPayment_RefreshesExisting() {
	open := &models.LoanPayment{
		ID:      uuid.New(),
		LoanID:  s.loan.ID,
		DueDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	s.paymentRepo.EXPECT().GetOpenByLoanID(s.loan.ID).Return(open, nil)
	s.paymentRepo.EXPECT().
		SetDues(open.ID, decimal.RequireFromString("100.00"), decimal.RequireFromString("12.00")).
		Return(open, nil)

	payment, err := s.service.GetNextLoanPayment(s.loan)
	s.NoError(err)
	s.Equal(open.ID, payment.ID)
}

func (s *LoanAmortizationServiceSuite) TestUpdateLoanPayment_DuesShrinkWithBalance() {
	// Half the principal is gone; the per-period share shrinks with it
	s.loan.Balance = decimal.RequireFromString("600.00")
	s.loan.AccruedInterest = decimal.RequireFromString("6.00")
	paymentID := uuid.New()

	s.paymentRepo.EXPECT().
		SetDues(paymentID, decimal.RequireFromString("50.00"), decimal.RequireFromString("6.00")).
		Return(&models.LoanPayment{ID: paymentID}, nil)

	_, err := s.service.UpdateLoanPayment(s.loan, paymentID)
	s.NoError(err)
}

func (s *LoanAmortizationServiceSuite) TestUpdateLoanPayment_Settled() {
	paymentID := uuid.New()
	s.paymentRepo.EXPECT().SetDues(paymentID, gomock.Any(), gomock.Any()).
		Return(nil, repositories.ErrLoanPaymentSettled)

	_, err := s.service.UpdateLoanPayment(s.loan, paymentID)
	s.ErrorIs(err, repositories.ErrLoanPaymentSettled)
}

func (s *LoanAmortizationServiceSuite) TestAccrue() {
	s.loanRepo.EXPECT().
		SetAccruedInterest(s.loan.ID, decimal.RequireFromString("12.00")).
		DoAndReturn(func(id uuid.UUID, amount decimal.Decimal) (*models.Loan, error) {
			updated := *s.loan
			updated.AccruedInterest = amount
			return &updated, nil
		})

	updated, err := s.service.Accrue(s.loan)
	s.NoError(err)
	s.True(decimal.RequireFromString("12.00").Equal(updated.AccruedInterest))
}

func (s *LoanAmortizationServiceSuite) TestAccrue_ZeroBalance() {
	s.loan.Balance = decimal.Zero
	s.loanRepo.EXPECT().
		SetAccruedInterest(s.loan.ID, gomock.Any()).
		DoAndReturn(func(id uuid.UUID, amount decimal.Decimal) (*models.Loan, error) {
			s.True(amount.IsZero())
			return s.loan, nil
		})

	_, err := s.service.Accrue(s.loan)
	s.NoError(err)
}
