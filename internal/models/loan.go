package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	LoanStateActive = "active"
	LoanStatePaid   = "paid"
)

var (
	ErrInvalidLoanState = errors.New("invalid loan state")

	twelve = decimal.NewFromInt(12)
)

// Loan represents a disbursed loan backed by a vault. Balance is the
// remaining principal and only decreases after disbursement; AccruedInterest
// is the interest computed for the current period but not yet billed. The
// state moves from active to paid exactly once, when the balance reaches
// zero during repayment.
type Loan struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID           uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	VaultName        string          `gorm:"type:varchar(50);not null;index" json:"vault_name"`
	OrigPrincipal    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"orig_principal"`
	Balance          decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"balance"`
	AccruedInterest  decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"accrued_interest"`
	InterestRate     decimal.Decimal `gorm:"type:decimal(7,4);not null" json:"interest_rate"`
	PaymentFrequency int             `gorm:"not null;default:1" json:"payment_frequency"`
	IssueDate        time.Time       `gorm:"not null" json:"issue_date"`
	MaturityDate     time.Time       `gorm:"not null" json:"maturity_date"`
	State            string          `gorm:"type:varchar(20);not null;default:'active'" json:"state"`
	CreatedAt        time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	User     User          `gorm:"foreignKey:UserID" json:"-"`
	Payments []LoanPayment `gorm:"foreignKey:LoanID" json:"-"`
}

// BeforeCreate hook for Loan
func (l *Loan) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}

	if l.State == "" {
		l.State = LoanStateActive
	}

	if l.Balance.IsZero() && l.OrigPrincipal.GreaterThan(decimal.Zero) {
		l.Balance = l.OrigPrincipal
	}

	if l.PaymentFrequency == 0 {
		l.PaymentFrequency = 1
	}

	now := time.Now()
	if l.CreatedAt.IsZero() {
		l.CreatedAt = now
	}
	if l.UpdatedAt.IsZero() {
		l.UpdatedAt = now
	}

	return l.Validate()
}

// BeforeUpdate hook for Loan
func (l *Loan) BeforeUpdate(tx *gorm.DB) error {
	l.UpdatedAt = time.Now()
	return nil
}

// Validate validates the loan fields
func (l *Loan) Validate() error {
	if l.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if l.VaultName == "" {
		return errors.New("vault name is required")
	}

	if l.OrigPrincipal.LessThanOrEqual(decimal.Zero) {
		return errors.New("original principal must be positive")
	}

	if l.Balance.LessThan(decimal.Zero) {
		return ErrInvalidBalance
	}

	if l.InterestRate.LessThan(decimal.Zero) {
		return errors.New("interest rate cannot be negative")
	}

	if l.PaymentFrequency <= 0 {
		return errors.New("payment frequency must be at least one month")
	}

	if !l.MaturityDate.After(l.IssueDate) {
		return errors.New("maturity date must be after issue date")
	}

	if !IsValidLoanState(l.State) {
		return ErrInvalidLoanState
	}

	return nil
}

// IsPaid returns true once the loan has been fully repaid
func (l *Loan) IsPaid() bool {
	return l.State == LoanStatePaid
}

// PrincipalDue returns the principal component of the next payment,
// evaluated at the given date: remaining principal spread evenly over the
// scheduled periods left until maturity. When one period or less remains the
// whole balance is due.
func (l *Loan) PrincipalDue(asOf time.Time) decimal.Decimal {
	periods := MonthsBetween(asOf, l.MaturityDate) / l.PaymentFrequency
	if periods <= 1 {
		return l.Balance
	}
	return l.Balance.Div(decimal.NewFromInt(int64(periods))).Round(2)
}

// MonthlyInterest returns one month of interest on the remaining balance at
// the annual rate. Flat accrual: partial periods are not prorated.
func (l *Loan) MonthlyInterest() decimal.Decimal {
	return l.Balance.Mul(l.InterestRate).Div(twelve).Round(2)
}

// TableName returns the table name for Loan
func (l *Loan) TableName() string {
	return "loans"
}

// IsValidLoanState checks if the loan state is valid
func IsValidLoanState(state string) bool {
	switch state {
	case LoanStateActive, LoanStatePaid:
		return true
	default:
		return false
	}
}

// MonthsBetween returns the number of whole calendar months from one date to
// a later date. Schedule dates are month-aligned, so day-of-month precision
// is not needed; a non-positive span yields zero.
func MonthsBetween(from, to time.Time) int {
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if months < 0 {
		return 0
	}
	return months
}

// AdvanceByMonths moves a date forward by whole months, clamping the day to
// the last day of the target month. Jan 31 plus one month is Feb 29 (or 28),
// never Mar 2; time.AddDate would normalize past the month boundary.
func AdvanceByMonths(t time.Time, months int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	day := t.Day()
	if last := first.AddDate(0, 1, -1).Day(); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, t.Location())
}
