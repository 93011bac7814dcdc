package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SettlementAllocation is one row per aggregate included in a settlement
// group. OriginalAmount preserves the aggregate's nett amount as it was when
// the group was created; AllocatedAmount is the portion counted toward the
// group total (currently always equal to OriginalAmount).
type SettlementAllocation struct {
	ID                uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	SettlementGroupID uuid.UUID       `gorm:"type:uuid;not null;index:idx_allocation_group" json:"settlement_group_id"`
	AggregateID       uuid.UUID       `gorm:"type:uuid;not null;index:idx_allocation_aggregate" json:"aggregate_id"`
	AllocatedAmount   decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"allocated_amount"`
	OriginalAmount    decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"original_amount"`
	CreatedAt         time.Time       `gorm:"not null" json:"created_at"`
}

// BeforeCreate hook for SettlementAllocation
func (a *SettlementAllocation) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}

	return a.Validate()
}

// Validate validates the allocation fields
func (a *SettlementAllocation) Validate() error {
	if a.SettlementGroupID == uuid.Nil {
		return errors.New("settlement group ID is required")
	}

	if a.AggregateID == uuid.Nil {
		return errors.New("aggregate ID is required")
	}

	return nil
}

// TableName returns the table name for SettlementAllocation
func (a *SettlementAllocation) TableName() string {
	return "bank_settlement_aggregates"
}
