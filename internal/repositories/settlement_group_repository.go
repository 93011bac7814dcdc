package repositories

import (
	"errors"
	"fmt"
	"time"

	"backoffice-recon/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrSettlementGroupNotFound   = errors.New("settlement group not found")
	ErrSettlementNumberExists    = errors.New("settlement number already exists")
	ErrSettlementGroupNotDeleted = errors.New("settlement group is not deleted")
)

// settlementGroupRepository implements SettlementGroupRepositoryInterface
type settlementGroupRepository struct {
	db *gorm.DB
}

// NewSettlementGroupRepository creates a new settlement group repository
func NewSettlementGroupRepository(db *gorm.DB) SettlementGroupRepositoryInterface {
	return &settlementGroupRepository{
		db: db,
	}
}

// Create creates a new settlement group
func (r *settlementGroupRepository) Create(group *models.SettlementGroup) error {
	if group == nil {
		return errors.New("settlement group cannot be nil")
	}

	if err := r.db.Create(group).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrSettlementNumberExists
		}
		return fmt.Errorf("failed to create settlement group: %w", err)
	}

	return nil
}

// AddAllocations persists one allocation record per aggregate in the group
func (r *settlementGroupRepository) AddAllocations(groupID uuid.UUID, allocations []models.SettlementAllocation) error {
	if len(allocations) == 0 {
		return nil
	}

	for i := range allocations {
		allocations[i].SettlementGroupID = groupID
	}

	if err := r.db.Create(&allocations).Error; err != nil {
		return fmt.Errorf("failed to add allocations to settlement group: %w", err)
	}

	return nil
}

// UpdateStatus updates the settlement group status and confirmation time
func (r *settlementGroupRepository) UpdateStatus(groupID uuid.UUID, status string, confirmedAt time.Time) error {
	result := r.db.Model(&models.SettlementGroup{}).
		Where("id = ?", groupID).
		Updates(map[string]interface{}{
			"status":       status,
			"confirmed_at": confirmedAt,
			"updated_at":   time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update settlement group status: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrSettlementGroupNotFound
	}

	return nil
}

// FindByID retrieves a settlement group by ID with its allocations. Deleted
// groups are excluded unless includeDeleted is set.
func (r *settlementGroupRepository) FindByID(id uuid.UUID, includeDeleted bool) (*models.SettlementGroup, error) {
	var group models.SettlementGroup

	query := r.db.Preload("Allocations").Preload("BankStatement").Where("id = ?", id)
	if !includeDeleted {
		query = query.Where("deleted_at IS NULL")
	}

	if err := query.First(&group).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettlementGroupNotFound
		}
		return nil, fmt.Errorf("failed to find settlement group by ID: %w", err)
	}

	return &group, nil
}

// FindBySettlementNumber retrieves an active settlement group by its display
// identifier
func (r *settlementGroupRepository) FindBySettlementNumber(settlementNumber string) (*models.SettlementGroup, error) {
	var group models.SettlementGroup

	if err := r.db.Preload("Allocations").Preload("BankStatement").
		Where("settlement_number = ? AND deleted_at IS NULL", settlementNumber).
		First(&group).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettlementGroupNotFound
		}
		return nil, fmt.Errorf("failed to find settlement group by number: %w", err)
	}

	return &group, nil
}

// FindAll retrieves settlement groups matching the filters, newest first
func (r *settlementGroupRepository) FindAll(filters models.SettlementGroupFilters, offset, limit int) ([]models.SettlementGroup, int64, error) {
	var groups []models.SettlementGroup
	var total int64

	query := r.db.Model(&models.SettlementGroup{})

	if !filters.IncludeDeleted {
		query = query.Where("deleted_at IS NULL")
	}

	if filters.CompanyID != nil {
		query = query.Where("company_id = ?", *filters.CompanyID)
	}

	if filters.StartDate != nil {
		query = query.Where("settlement_date >= ?", *filters.StartDate)
	}

	if filters.EndDate != nil {
		query = query.Where("settlement_date <= ?", *filters.EndDate)
	}

	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}

	if filters.Search != "" {
		pattern := "%" + filters.Search + "%"
		query = query.Where("settlement_number LIKE ? OR notes LIKE ?", pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count settlement groups: %w", err)
	}

	if err := query.Preload("Allocations").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&groups).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to find settlement groups: %w", err)
	}

	return groups, total, nil
}

// GetAllocationsByGroupID retrieves the allocation records of a group in
// insertion order
func (r *settlementGroupRepository) GetAllocationsByGroupID(groupID uuid.UUID) ([]models.SettlementAllocation, error) {
	var allocations []models.SettlementAllocation

	if err := r.db.Where("settlement_group_id = ?", groupID).
		Order("created_at ASC").
		Find(&allocations).Error; err != nil {
		return nil, fmt.Errorf("failed to find allocations by group ID: %w", err)
	}

	return allocations, nil
}

// SoftDelete marks an active settlement group as deleted
func (r *settlementGroupRepository) SoftDelete(id uuid.UUID) error {
	result := r.db.Model(&models.SettlementGroup{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Updates(map[string]interface{}{
			"deleted_at": time.Now(),
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to soft delete settlement group: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrSettlementGroupNotFound
	}

	return nil
}

// Restore clears the soft-delete marker on a deleted settlement group
func (r *settlementGroupRepository) Restore(id uuid.UUID) error {
	result := r.db.Model(&models.SettlementGroup{}).
		Where("id = ? AND deleted_at IS NOT NULL", id).
		Updates(map[string]interface{}{
			"deleted_at": nil,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to restore settlement group: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrSettlementGroupNotDeleted
	}

	return nil
}

// CheckAggregatesReconciledElsewhere reports whether any aggregate allocated
// to the given group is also allocated to a different, still-active group.
// Used before restore: clearing the soft-delete marker in that situation
// would double-allocate the aggregate.
func (r *settlementGroupRepository) CheckAggregatesReconciledElsewhere(groupID uuid.UUID) (bool, error) {
	var count int64

	subquery := r.db.Model(&models.SettlementAllocation{}).
		Select("aggregate_id").
		Where("settlement_group_id = ?", groupID)

	err := r.db.Model(&models.SettlementAllocation{}).
		Joins("JOIN bank_settlement_groups ON bank_settlement_groups.id = bank_settlement_aggregates.settlement_group_id").
		Where("bank_settlement_aggregates.aggregate_id IN (?)", subquery).
		Where("bank_settlement_aggregates.settlement_group_id != ?", groupID).
		Where("bank_settlement_groups.deleted_at IS NULL").
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check aggregates reconciled elsewhere: %w", err)
	}

	return count > 0, nil
}
