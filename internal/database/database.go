package database

import (
	"fmt"
	"log"
	"time"

	"vaultbank/internal/config"
	"vaultbank/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.User{},
		&models.Vault{},
		&models.Account{},
		&models.BankTransaction{},
		&models.AccountTransaction{},
		&models.Loan{},
		&models.LoanPayment{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (db *DB) Transaction(fn func(*gorm.DB) error) error {
	return db.DB.Transaction(fn)
}

func (db *DB) CreateIndexes() error {
	queries := []string{
		"CREATE INDEX IF NOT EXISTS idx_users_email ON users(email)",
		"CREATE INDEX IF NOT EXISTS idx_users_email_lower ON users(LOWER(email))",
		// Account indexes
		"CREATE INDEX IF NOT EXISTS idx_accounts_user_id ON accounts(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_accounts_account_type ON accounts(account_type)",
		// Ledger entry indexes
		"CREATE INDEX IF NOT EXISTS idx_bank_transactions_account_id ON bank_transactions(account_id)",
		"CREATE INDEX IF NOT EXISTS idx_bank_transactions_vault_name ON bank_transactions(vault_name)",
		"CREATE INDEX IF NOT EXISTS idx_bank_transactions_transaction_type ON bank_transactions(transaction_type)",
		"CREATE INDEX IF NOT EXISTS idx_bank_transactions_created_at ON bank_transactions(created_at)",
		"CREATE INDEX IF NOT EXISTS idx_account_transactions_sender_id ON account_transactions(sender_id)",
		"CREATE INDEX IF NOT EXISTS idx_account_transactions_receiver_id ON account_transactions(receiver_id)",
		"CREATE INDEX IF NOT EXISTS idx_account_transactions_created_at ON account_transactions(created_at)",
		// Loan indexes
		"CREATE INDEX IF NOT EXISTS idx_loans_user_id ON loans(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_loans_vault_name ON loans(vault_name)",
		"CREATE INDEX IF NOT EXISTS idx_loans_state ON loans(state)",
		"CREATE INDEX IF NOT EXISTS idx_loan_payments_loan_id ON loan_payments(loan_id)",
		"CREATE INDEX IF NOT EXISTS idx_loan_payments_due_date ON loan_payments(due_date)",
		"CREATE INDEX IF NOT EXISTS idx_loan_payments_open ON loan_payments(loan_id, due_date) WHERE principal_transaction_id IS NULL AND interest_transaction_id IS NULL",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			log.Printf("Failed to create index: %s, error: %v", query, err)
		}
	}

	return nil
}

// SeedVault ensures a funding vault with the given name exists
func (db *DB) SeedVault(name string) (*models.Vault, error) {
	var existing models.Vault
	if err := db.DB.Where("vault_name = ?", name).First(&existing).Error; err == nil {
		return &existing, nil
	}

	vault := &models.Vault{Name: name}
	if err := db.DB.Create(vault).Error; err != nil {
		return nil, fmt.Errorf("failed to create vault: %w", err)
	}

	return vault, nil
}

// Initialize creates and configures the database connection
func Initialize(cfg *config.Config) (*gorm.DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	// Get the underlying sql.DB for migration runner
	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// Run SQL-based migrations using golang-migrate if enabled
	if err := RunMigrationsIfEnabled(sqlDB); err != nil {
		log.Printf("Warning: migration runner failed: %v", err)
		log.Println("Falling back to GORM AutoMigrate...")

		// Fallback to GORM AutoMigrate
		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	if err := db.CreateIndexes(); err != nil {
		log.Printf("Warning: failed to create some indexes: %v", err)
	}

	log.Println("Database initialized successfully")

	return db.DB, nil
}
