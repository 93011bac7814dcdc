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
	ErrAggregateNotFound          = errors.New("aggregate not found")
	ErrAggregateAlreadyReconciled = errors.New("aggregate already reconciled")
)

// aggregateRepository implements AggregateRepositoryInterface
type aggregateRepository struct {
	db *gorm.DB
}

// NewAggregateRepository creates a new aggregate repository
func NewAggregateRepository(db *gorm.DB) AggregateRepositoryInterface {
	return &aggregateRepository{
		db: db,
	}
}

// GetByID retrieves an aggregate by ID
func (r *aggregateRepository) GetByID(id uuid.UUID) (*models.Aggregate, error) {
	var aggregate models.Aggregate

	if err := r.db.Where("id = ?", id).First(&aggregate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAggregateNotFound
		}
		return nil, fmt.Errorf("failed to find aggregate by ID: %w", err)
	}

	return &aggregate, nil
}

// GetUnreconciled retrieves unreconciled aggregates matching the filters,
// newest and largest first
func (r *aggregateRepository) GetUnreconciled(filters models.AggregateFilters, offset, limit int) ([]models.Aggregate, int64, error) {
	var aggregates []models.Aggregate
	var total int64

	query := r.db.Model(&models.Aggregate{}).Where("is_reconciled = ?", false)

	if filters.StartDate != nil {
		query = query.Where("transaction_date >= ?", *filters.StartDate)
	}

	if filters.EndDate != nil {
		query = query.Where("transaction_date <= ?", *filters.EndDate)
	}

	if filters.PaymentMethodID != nil {
		query = query.Where("payment_method_id = ?", *filters.PaymentMethodID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count unreconciled aggregates: %w", err)
	}

	if err := query.Order("transaction_date DESC").
		Order("nett_amount DESC").
		Offset(offset).
		Limit(limit).
		Find(&aggregates).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to find unreconciled aggregates: %w", err)
	}

	return aggregates, total, nil
}

// MarkReconciled flips the reconciliation flag on for all given aggregates.
// The update is conditional on every flag being off: if fewer rows were
// affected than requested, some aggregate was claimed by a concurrent writer
// and the whole batch is reported as a conflict.
func (r *aggregateRepository) MarkReconciled(ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	result := r.db.Model(&models.Aggregate{}).
		Where("id IN ? AND is_reconciled = ?", ids, false).
		Updates(map[string]interface{}{
			"is_reconciled": true,
			"updated_at":    time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to mark aggregates reconciled: %w", result.Error)
	}

	if result.RowsAffected != int64(len(ids)) {
		return ErrAggregateAlreadyReconciled
	}

	return nil
}

// MarkUnreconciled flips the reconciliation flag off for the given aggregates
func (r *aggregateRepository) MarkUnreconciled(ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	result := r.db.Model(&models.Aggregate{}).
		Where("id IN ?", ids).
		Updates(map[string]interface{}{
			"is_reconciled": false,
			"updated_at":    time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to mark aggregates unreconciled: %w", result.Error)
	}

	return nil
}
