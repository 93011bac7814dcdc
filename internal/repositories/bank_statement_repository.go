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
	ErrStatementNotFound          = errors.New("bank statement not found")
	ErrStatementAlreadyReconciled = errors.New("bank statement already reconciled")
	ErrStatementNotReconciled     = errors.New("bank statement is not reconciled")
)

// bankStatementRepository implements BankStatementRepositoryInterface
type bankStatementRepository struct {
	db *gorm.DB
}

// NewBankStatementRepository creates a new bank statement repository
func NewBankStatementRepository(db *gorm.DB) BankStatementRepositoryInterface {
	return &bankStatementRepository{
		db: db,
	}
}

// GetByID retrieves a bank statement by ID
func (r *bankStatementRepository) GetByID(id uuid.UUID) (*models.BankStatement, error) {
	var statement models.BankStatement

	if err := r.db.Where("id = ?", id).First(&statement).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStatementNotFound
		}
		return nil, fmt.Errorf("failed to find bank statement by ID: %w", err)
	}

	return &statement, nil
}

// MarkReconciled flips the reconciliation flag on. The update is conditional
// on the flag being off: zero rows affected means another settlement group
// already claimed this statement, and the caller loses the race.
func (r *bankStatementRepository) MarkReconciled(id uuid.UUID) error {
	result := r.db.Model(&models.BankStatement{}).
		Where("id = ? AND is_reconciled = ?", id, false).
		Updates(map[string]interface{}{
			"is_reconciled": true,
			"updated_at":    time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to mark bank statement reconciled: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrStatementAlreadyReconciled
	}

	return nil
}

// MarkUnreconciled flips the reconciliation flag off
func (r *bankStatementRepository) MarkUnreconciled(id uuid.UUID) error {
	result := r.db.Model(&models.BankStatement{}).
		Where("id = ? AND is_reconciled = ?", id, true).
		Updates(map[string]interface{}{
			"is_reconciled": false,
			"updated_at":    time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to mark bank statement unreconciled: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrStatementNotReconciled
	}

	return nil
}
