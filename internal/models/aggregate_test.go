package models

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupModelDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&Aggregate{}, &BankStatement{}))

	return db
}

func TestAggregate_BeforeCreate_GeneratesIDAndTimestamps(t *testing.T) {
	db := setupModelDB(t)

	aggregate := &Aggregate{
		TransactionDate: time.Now().AddDate(0, 0, -1),
		GrossAmount:     decimal.NewFromFloat(1100.00),
		NettAmount:      decimal.NewFromFloat(1050.00),
	}

	err := db.Create(aggregate).Error
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, aggregate.ID)
	assert.False(t, aggregate.CreatedAt.IsZero())
	assert.False(t, aggregate.IsReconciled)
}

func TestAggregate_Validate_RejectsNegativeNettAmount(t *testing.T) {
	db := setupModelDB(t)

	aggregate := &Aggregate{
		TransactionDate: time.Now(),
		GrossAmount:     decimal.NewFromInt(100),
		NettAmount:      decimal.NewFromInt(-1),
	}

	err := db.Create(aggregate).Error
	assert.ErrorIs(t, err, ErrInvalidAggregateAmount)
}

func TestAggregate_Validate_RequiresTransactionDate(t *testing.T) {
	db := setupModelDB(t)

	aggregate := &Aggregate{
		GrossAmount: decimal.NewFromInt(100),
		NettAmount:  decimal.NewFromInt(95),
	}

	err := db.Create(aggregate).Error
	assert.ErrorIs(t, err, ErrInvalidAggregateDate)
}

func TestBankStatement_BeforeCreate_GeneratesID(t *testing.T) {
	db := setupModelDB(t)

	statement := &BankStatement{
		Description:     gofakeit.Sentence(4),
		Amount:          decimal.NewFromFloat(-2500.75),
		TransactionDate: time.Now().AddDate(0, 0, -3),
	}

	err := db.Create(statement).Error
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, statement.ID)
	assert.False(t, statement.IsReconciled)
}

func TestBankStatement_Validate_RequiresTransactionDate(t *testing.T) {
	db := setupModelDB(t)

	statement := &BankStatement{Amount: decimal.NewFromInt(10)}

	err := db.Create(statement).Error
	assert.ErrorIs(t, err, ErrInvalidStatementDate)
}
