package database

import (
	"fmt"
	"testing"
	"time"

	"vaultbank/internal/config"
	"vaultbank/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"loan_payments",
		"loans",
		"account_transactions",
		"bank_transactions",
		"accounts",
		"vaults",
		"users",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}

func CreateTestUser(t *testing.T, db *DB, email string) *models.User {
	t.Helper()

	user := &models.User{
		Email:      email,
		FirstName:  gofakeit.FirstName(),
		FamilyName: gofakeit.LastName(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

func CreateTestAccount(t *testing.T, db *DB, user *models.User, balance decimal.Decimal) *models.Account {
	t.Helper()

	account := &models.Account{
		UserID:      user.ID,
		AccountType: models.AccountTypeChecking,
		Balance:     balance,
		Open:        true,
	}

	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}

	return account
}

func CreateTestVault(t *testing.T, db *DB, name string, balance decimal.Decimal) *models.Vault {
	t.Helper()

	vault := &models.Vault{
		Name:    name,
		Balance: balance,
	}

	if err := db.Create(vault).Error; err != nil {
		t.Fatalf("failed to create test vault: %v", err)
	}

	return vault
}

func CreateTestLoan(t *testing.T, db *DB, user *models.User, vault *models.Vault, principal decimal.Decimal, rate decimal.Decimal, issued time.Time, maturity time.Time) *models.Loan {
	t.Helper()

	loan := &models.Loan{
		UserID:           user.ID,
		VaultName:        vault.Name,
		OrigPrincipal:    principal,
		InterestRate:     rate,
		PaymentFrequency: 1,
		IssueDate:        issued,
		MaturityDate:     maturity,
	}

	if err := db.Create(loan).Error; err != nil {
		t.Fatalf("failed to create test loan: %v", err)
	}

	return loan
}
