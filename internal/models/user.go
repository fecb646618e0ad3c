package models

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

	ErrInvalidEmail = errors.New("invalid email address")
)

// User is the account and loan holder. Registration and profile management
// live outside this service; the row exists so accounts and loans have an
// owner to reference.
type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email       string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	FirstName   string    `gorm:"type:varchar(100);not null" json:"first_name"`
	FamilyName  string    `gorm:"type:varchar(100);not null" json:"family_name"`
	PhoneNumber *string   `gorm:"type:varchar(30)" json:"phone_number,omitempty"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`

	// Associations
	Accounts []Account `gorm:"foreignKey:UserID" json:"-"`
	Loans    []Loan    `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate hook for User
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}

	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = now
	}

	return u.Validate()
}

// Validate validates the user fields
func (u *User) Validate() error {
	if !emailRegex.MatchString(u.Email) {
		return ErrInvalidEmail
	}
	if u.FirstName == "" {
		return errors.New("first name is required")
	}
	if u.FamilyName == "" {
		return errors.New("family name is required")
	}
	return nil
}

// TableName returns the table name for User
func (u *User) TableName() string {
	return "users"
}
