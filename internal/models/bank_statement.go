package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrInvalidStatementDate = errors.New("statement transaction date is required")

// BankStatement represents a bank-reported transaction line to be matched
// against transaction aggregates. The amount is signed: credits positive,
// debits negative.
type BankStatement struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	BankAccountID   *uuid.UUID      `gorm:"type:uuid;index:idx_statement_bank_account" json:"bank_account_id,omitempty"`
	Description     string          `gorm:"type:text" json:"description"`
	Amount          decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"amount"`
	TransactionDate time.Time       `gorm:"not null;index:idx_statement_transaction_date" json:"transaction_date"`
	IsReconciled    bool            `gorm:"not null;default:false;index:idx_statement_is_reconciled" json:"is_reconciled"`
	CreatedAt       time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for BankStatement
func (s *BankStatement) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}

	now := time.Now()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = now
	}

	return s.Validate()
}

// BeforeUpdate hook for BankStatement
func (s *BankStatement) BeforeUpdate(tx *gorm.DB) error {
	s.UpdatedAt = time.Now()
	return nil
}

// Validate validates the statement fields
func (s *BankStatement) Validate() error {
	if s.TransactionDate.IsZero() {
		return ErrInvalidStatementDate
	}
	return nil
}

// TableName returns the table name for BankStatement
func (s *BankStatement) TableName() string {
	return "bank_statements"
}
