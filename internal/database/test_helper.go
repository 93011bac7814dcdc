package database

import (
	"fmt"
	"testing"
	"time"

	"backoffice-recon/internal/config"
	"backoffice-recon/internal/models"

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

func CreateTestStatement(t *testing.T, db *DB, amount string, date time.Time) *models.BankStatement {
	t.Helper()

	amt, err := decimal.NewFromString(amount)
	if err != nil {
		t.Fatalf("invalid test amount %q: %v", amount, err)
	}

	statement := &models.BankStatement{
		Description:     "Test settlement credit",
		Amount:          amt,
		TransactionDate: date,
	}

	if err := db.Create(statement).Error; err != nil {
		t.Fatalf("failed to create test bank statement: %v", err)
	}

	return statement
}

func CreateTestAggregate(t *testing.T, db *DB, nettAmount string, date time.Time) *models.Aggregate {
	t.Helper()

	nett, err := decimal.NewFromString(nettAmount)
	if err != nil {
		t.Fatalf("invalid test amount %q: %v", nettAmount, err)
	}

	aggregate := &models.Aggregate{
		GrossAmount:     nett.Add(decimal.NewFromInt(100)),
		NettAmount:      nett,
		TransactionDate: date,
	}

	if err := db.Create(aggregate).Error; err != nil {
		t.Fatalf("failed to create test aggregate: %v", err)
	}

	return aggregate
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"bank_settlement_aggregates",
		"bank_settlement_groups",
		"aggregated_transactions",
		"bank_statements",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
