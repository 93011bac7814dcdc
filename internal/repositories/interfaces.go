package repositories

import (
	"time"

	"backoffice-recon/internal/models"

	"github.com/google/uuid"
)

// BankStatementRepositoryInterface defines the contract for bank statement
// repository operations. The mark operations are conditional updates: they
// only flip the flag when it currently holds the opposite value, so a losing
// concurrent writer is rejected instead of silently double-allocating.
type BankStatementRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.BankStatement, error)
	MarkReconciled(id uuid.UUID) error
	MarkUnreconciled(id uuid.UUID) error
}

// AggregateRepositoryInterface defines the contract for aggregate repository
// operations
type AggregateRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.Aggregate, error)
	GetUnreconciled(filters models.AggregateFilters, offset, limit int) ([]models.Aggregate, int64, error)
	MarkReconciled(ids []uuid.UUID) error
	MarkUnreconciled(ids []uuid.UUID) error
}

// SettlementGroupRepositoryInterface defines the contract for settlement
// group repository operations
type SettlementGroupRepositoryInterface interface {
	Create(group *models.SettlementGroup) error
	AddAllocations(groupID uuid.UUID, allocations []models.SettlementAllocation) error
	UpdateStatus(groupID uuid.UUID, status string, confirmedAt time.Time) error
	FindByID(id uuid.UUID, includeDeleted bool) (*models.SettlementGroup, error)
	FindBySettlementNumber(settlementNumber string) (*models.SettlementGroup, error)
	FindAll(filters models.SettlementGroupFilters, offset, limit int) ([]models.SettlementGroup, int64, error)
	GetAllocationsByGroupID(groupID uuid.UUID) ([]models.SettlementAllocation, error)
	SoftDelete(id uuid.UUID) error
	Restore(id uuid.UUID) error
	CheckAggregatesReconciledElsewhere(groupID uuid.UUID) (bool, error)
}
