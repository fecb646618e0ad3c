package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Vault is a named pool of bank-side funds backing a class of accounts and
// loans. Every deposit, withdrawal and loan movement flows through exactly
// one vault, so the sum of bank transaction deltas for a vault always equals
// its balance change since creation.
type Vault struct {
	Name      string          `gorm:"column:vault_name;type:varchar(50);primaryKey" json:"vault_name"`
	Balance   decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"balance"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`
}

// Validate validates the vault fields
func (v *Vault) Validate() error {
	if v.Name == "" {
		return errors.New("vault name is required")
	}
	return nil
}

// TableName returns the table name for Vault
func (v *Vault) TableName() string {
	return "vaults"
}
