package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	SettlementStatusReconciled  = "RECONCILED"
	SettlementStatusDiscrepancy = "DISCREPANCY"
)

var (
	ErrInvalidSettlementStatus = errors.New("invalid settlement status")
	ErrInvalidSettlementTotals = errors.New("difference must equal statement amount minus allocated amount")
)

// SettlementGroup records a confirmed or discrepant mapping from one bank
// statement to a set of transaction aggregates. Groups are never hard-deleted:
// undo sets DeletedAt, restore clears it. Status is permanent history and is
// never changed by undo or restore.
type SettlementGroup struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	CompanyID            uuid.UUID       `gorm:"type:uuid;not null;index:idx_settlement_group_company" json:"company_id"`
	BankStatementID      uuid.UUID       `gorm:"type:uuid;not null;index:idx_settlement_group_statement" json:"bank_statement_id"`
	SettlementNumber     string          `gorm:"type:varchar(40);uniqueIndex;not null" json:"settlement_number"`
	SettlementDate       time.Time       `gorm:"not null;index:idx_settlement_group_date" json:"settlement_date"`
	TotalStatementAmount decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"total_statement_amount"`
	TotalAllocatedAmount decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"total_allocated_amount"`
	Difference           decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"difference"`
	Status               string          `gorm:"type:varchar(20);not null;index:idx_settlement_group_status" json:"status"`
	Notes                string          `gorm:"type:text" json:"notes"`
	CreatedBy            *uuid.UUID      `gorm:"type:uuid" json:"created_by,omitempty"`
	CreatedAt            time.Time       `gorm:"not null;index:idx_settlement_group_created_at" json:"created_at"`
	UpdatedAt            time.Time       `gorm:"not null" json:"updated_at"`
	ConfirmedAt          *time.Time      `json:"confirmed_at,omitempty"`
	DeletedAt            *time.Time      `gorm:"index:idx_settlement_group_deleted_at" json:"deleted_at,omitempty"`

	// Associations
	BankStatement *BankStatement         `gorm:"foreignKey:BankStatementID" json:"bank_statement,omitempty"`
	Allocations   []SettlementAllocation `gorm:"foreignKey:SettlementGroupID" json:"allocations,omitempty"`
}

// BeforeCreate hook for SettlementGroup. The settlement number is the display
// identifier and is assigned here, at persistence time.
func (g *SettlementGroup) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}

	if g.SettlementNumber == "" {
		g.SettlementNumber = GenerateSettlementNumber(g.SettlementDate, g.ID)
	}

	now := time.Now()
	if g.CreatedAt.IsZero() {
		g.CreatedAt = now
	}
	if g.UpdatedAt.IsZero() {
		g.UpdatedAt = now
	}

	return g.Validate()
}

// BeforeUpdate hook for SettlementGroup
func (g *SettlementGroup) BeforeUpdate(tx *gorm.DB) error {
	g.UpdatedAt = time.Now()
	return nil
}

// Validate validates the settlement group fields
func (g *SettlementGroup) Validate() error {
	if g.CompanyID == uuid.Nil {
		return errors.New("company ID is required")
	}

	if g.BankStatementID == uuid.Nil {
		return errors.New("bank statement ID is required")
	}

	if g.SettlementDate.IsZero() {
		return errors.New("settlement date is required")
	}

	if !IsValidSettlementStatus(g.Status) {
		return ErrInvalidSettlementStatus
	}

	if !g.Difference.Equal(g.TotalStatementAmount.Sub(g.TotalAllocatedAmount)) {
		return ErrInvalidSettlementTotals
	}

	return nil
}

// IsDeleted returns true if the group has been undone (soft-deleted)
func (g *SettlementGroup) IsDeleted() bool {
	return g.DeletedAt != nil
}

// IsReconciled returns true if the group was confirmed within tolerance
func (g *SettlementGroup) IsReconciled() bool {
	return g.Status == SettlementStatusReconciled
}

// TableName returns the table name for SettlementGroup
func (g *SettlementGroup) TableName() string {
	return "bank_settlement_groups"
}

// Helper functions

// IsValidSettlementStatus checks if the settlement status is valid
func IsValidSettlementStatus(status string) bool {
	switch status {
	case SettlementStatusReconciled, SettlementStatusDiscrepancy:
		return true
	default:
		return false
	}
}

// GenerateSettlementNumber builds the display identifier for a settlement
// group from its settlement date and ID, e.g. SETT-20260214-9F3A1C.
func GenerateSettlementNumber(settlementDate time.Time, id uuid.UUID) string {
	suffix := strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:6])
	return fmt.Sprintf("SETT-%s-%s", settlementDate.Format("20060102"), suffix)
}
