package services

import (
	"errors"
	"fmt"
	"log/slog"

	"vaultbank/internal/models"
	"vaultbank/internal/repositories"

	"github.com/google/uuid"
)

// ErrInvalidDate is returned when a computed due date would fall past the
// loan's maturity date.
var ErrInvalidDate = errors.New("invalid due date")

// loanAmortizationService implements LoanAmortizationServiceInterface.
// It reads loan and schedule state plus the calendar, and writes through the
// loan and loan payment repositories. No multi-entity transaction is needed;
// each write is individually atomic.
type loanAmortizationService struct {
	loanRepo    repositories.LoanRepositoryInterface
	paymentRepo repositories.LoanPaymentRepositoryInterface
	calendar    Calendar
	metrics     MetricsRecorderInterface
	logger      *slog.Logger
}

// NewLoanAmortizationService creates a loan amortization service
func NewLoanAmortizationService(
	loanRepo repositories.LoanRepositoryInterface,
	paymentRepo repositories.LoanPaymentRepositoryInterface,
	calendar Calendar,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) LoanAmortizationServiceInterface {
	return &loanAmortizationService{
		loanRepo:    loanRepo,
		paymentRepo: paymentRepo,
		calendar:    calendar,
		metrics:     metrics,
		logger:      logger,
	}
}

// CreateNextLoanPayment persists the loan's next schedule entry. The due
// date advances from the last settled entry (or the issue date for a fresh
// loan) by the loan's payment frequency; scheduling past maturity fails with
// ErrInvalidDate before anything is written.
func (s *loanAmortizationService) CreateNextLoanPayment(loan *models.Loan) (*models.LoanPayment, error) {
	base := loan.IssueDate
	last, err := s.paymentRepo.GetLastPaid(loan.ID)
	if err == nil {
		base = last.DueDate
	} else if !errors.Is(err, repositories.ErrLoanPaymentNotFound) {
		return nil, mapRepositoryError(err)
	}

	dueDate := models.AdvanceByMonths(base, loan.PaymentFrequency)
	if dueDate.After(loan.MaturityDate) {
		return nil, fmt.Errorf("%w: due date %s exceeds maturity date %s",
			ErrInvalidDate, dueDate.Format("2006-01-02"), loan.MaturityDate.Format("2006-01-02"))
	}

	payment := &models.LoanPayment{
		LoanID:       loan.ID,
		PrincipalDue: loan.PrincipalDue(s.calendar.CurrentDate()),
		InterestDue:  loan.AccruedInterest,
		DueDate:      dueDate,
	}
	if err := s.paymentRepo.Create(payment); err != nil {
		return nil, mapRepositoryError(err)
	}

	s.logger.Info("loan payment scheduled",
		"loan_id", loan.ID, "payment_id", payment.ID, "due_date", payment.DueDate)
	return payment, nil
}

// GetNextLoanPayment returns the loan's next due schedule entry, creating it
// when none exists. An existing entry keeps its due date and only has its
// dues refreshed, so repeated calls are idempotent.
func (s *loanAmortizationService) GetNextLoanPayment(loan *models.Loan) (*models.LoanPayment, error) {
	payment, err := s.paymentRepo.GetOpenByLoanID(loan.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrLoanPaymentNotFound) {
			return s.CreateNextLoanPayment(loan)
		}
		return nil, mapRepositoryError(err)
	}

	return s.UpdateLoanPayment(loan, payment.ID)
}

// UpdateLoanPayment recomputes and persists the dues of an existing schedule
// entry at the current date
func (s *loanAmortizationService) UpdateLoanPayment(loan *models.Loan, paymentID uuid.UUID) (*models.LoanPayment, error) {
	payment, err := s.paymentRepo.SetDues(paymentID,
		loan.PrincipalDue(s.calendar.CurrentDate()), loan.AccruedInterest)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return payment, nil
}

// Accrue computes one flat month of interest on the remaining balance and
// persists it as the loan's accrued interest. Partial periods are not
// prorated.
func (s *loanAmortizationService) Accrue(loan *models.Loan) (*models.Loan, error) {
	updated, err := s.loanRepo.SetAccruedInterest(loan.ID, loan.MonthlyInterest())
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	s.metrics.RecordAccrual()
	s.logger.Info("interest accrued",
		"loan_id", updated.ID, "accrued_interest", updated.AccruedInterest)
	return updated, nil
}
