package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidAggregateAmount = errors.New("aggregate nett amount must not be negative")
	ErrInvalidAggregateDate   = errors.New("aggregate transaction date is required")
)

// Aggregate represents a pre-summarized transaction record (net/gross amounts
// for one payment method and date) eligible for bank reconciliation.
type Aggregate struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	TransactionDate time.Time       `gorm:"not null;index:idx_aggregate_transaction_date" json:"transaction_date"`
	GrossAmount     decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"gross_amount"`
	NettAmount      decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"nett_amount"`
	PaymentMethodID *uuid.UUID      `gorm:"type:uuid;index:idx_aggregate_payment_method" json:"payment_method_id,omitempty"`
	IsReconciled    bool            `gorm:"not null;default:false;index:idx_aggregate_is_reconciled" json:"is_reconciled"`
	CreatedAt       time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Aggregate
func (a *Aggregate) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	return a.Validate()
}

// BeforeUpdate hook for Aggregate
func (a *Aggregate) BeforeUpdate(tx *gorm.DB) error {
	a.UpdatedAt = time.Now()
	return nil
}

// Validate validates the aggregate fields
func (a *Aggregate) Validate() error {
	if a.NettAmount.IsNegative() {
		return ErrInvalidAggregateAmount
	}

	if a.TransactionDate.IsZero() {
		return ErrInvalidAggregateDate
	}

	return nil
}

// TableName returns the table name for Aggregate
func (a *Aggregate) TableName() string {
	return "aggregated_transactions"
}
