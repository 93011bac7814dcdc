package database

import (
	"fmt"
	"log"
	"time"

	"backoffice-recon/internal/config"
	"backoffice-recon/internal/models"

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
		&models.BankStatement{},
		&models.Aggregate{},
		&models.SettlementGroup{},
		&models.SettlementAllocation{},
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
		"CREATE INDEX IF NOT EXISTS idx_bank_statements_transaction_date ON bank_statements(transaction_date)",
		"CREATE INDEX IF NOT EXISTS idx_bank_statements_is_reconciled ON bank_statements(is_reconciled)",
		"CREATE INDEX IF NOT EXISTS idx_aggregated_transactions_transaction_date ON aggregated_transactions(transaction_date)",
		"CREATE INDEX IF NOT EXISTS idx_aggregated_transactions_is_reconciled ON aggregated_transactions(is_reconciled)",
		"CREATE INDEX IF NOT EXISTS idx_aggregated_transactions_payment_method_id ON aggregated_transactions(payment_method_id)",
		"CREATE INDEX IF NOT EXISTS idx_settlement_groups_company_id ON bank_settlement_groups(company_id)",
		"CREATE INDEX IF NOT EXISTS idx_settlement_groups_settlement_date ON bank_settlement_groups(settlement_date)",
		"CREATE INDEX IF NOT EXISTS idx_settlement_groups_status ON bank_settlement_groups(status)",
		"CREATE INDEX IF NOT EXISTS idx_settlement_groups_deleted_at ON bank_settlement_groups(deleted_at) WHERE deleted_at IS NULL",
		"CREATE INDEX IF NOT EXISTS idx_settlement_aggregates_group_id ON bank_settlement_aggregates(settlement_group_id)",
		"CREATE INDEX IF NOT EXISTS idx_settlement_aggregates_aggregate_id ON bank_settlement_aggregates(aggregate_id)",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			log.Printf("Failed to create index: %s, error: %v", query, err)
		}
	}

	return nil
}

// Initialize creates and configures the database connection
func Initialize(cfg *config.Config) (*gorm.DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// Run SQL-based migrations using golang-migrate if enabled
	if err := RunMigrationsIfEnabled(sqlDB); err != nil {
		log.Printf("Warning: migration runner failed: %v", err)
		log.Println("Falling back to GORM AutoMigrate...")

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
