package services

import (
	"time"

	"backoffice-recon/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateSettlementGroupInput carries the caller's request to settle one bank
// statement against a set of transaction aggregates.
type CreateSettlementGroupInput struct {
	CompanyID          uuid.UUID
	BankStatementID    uuid.UUID
	AggregateIDs       []uuid.UUID
	Notes              string
	CreatedBy          *uuid.UUID
	OverrideDifference bool
}

// SettlementGroupResult summarizes a newly created settlement group.
type SettlementGroupResult struct {
	Group                *models.SettlementGroup
	SettlementNumber     string
	TotalStatementAmount decimal.Decimal
	TotalAllocatedAmount decimal.Decimal
	Difference           decimal.Decimal
	DifferencePercent    float64
	AggregateCount       int
	Status               string
}

// SuggestionInput carries the parameters for an aggregate combination search.
type SuggestionInput struct {
	TargetAmount     decimal.Decimal
	TolerancePercent *float64
	MaxResults       *int
	StartDate        *time.Time
	EndDate          *time.Time
	PaymentMethodID  *uuid.UUID
}

// SettlementGroupServiceInterface defines settlement reconciliation operations
type SettlementGroupServiceInterface interface {
	CreateSettlementGroup(input CreateSettlementGroupInput) (*SettlementGroupResult, error)
	GetSettlementGroup(id uuid.UUID) (*models.SettlementGroup, error)
	GetSettlementGroupByNumber(settlementNumber string) (*models.SettlementGroup, error)
	ListSettlementGroups(filters models.SettlementGroupFilters, page, pageSize int) ([]models.SettlementGroup, int64, error)
	UndoSettlementGroup(id uuid.UUID, revertReconciliation bool) error
	RestoreSettlementGroup(id uuid.UUID) (*models.SettlementGroup, error)
	GetAvailableAggregates(filters models.AggregateFilters, page, pageSize int) ([]models.Aggregate, int64, error)
	GetSuggestedAggregates(input SuggestionInput) ([]models.Aggregate, error)
}

// MetricsRecorderInterface defines the metrics recording operations
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
