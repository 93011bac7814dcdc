package dto

import (
	"time"

	"backoffice-recon/internal/models"

	"github.com/shopspring/decimal"
)

// Settlement Request DTOs

// CreateSettlementGroupRequest represents the request payload for settling a
// bank statement against a set of aggregates
type CreateSettlementGroupRequest struct {
	BankStatementID    string   `json:"bank_statement_id" validate:"required,uuid"`
	AggregateIDs       []string `json:"aggregate_ids" validate:"required,min=1,dive,uuid"`
	Notes              string   `json:"notes" validate:"max=1000"`
	OverrideDifference bool     `json:"override_difference"`
}

// ListSettlementGroupsRequest represents list filters bound from query params
type ListSettlementGroupsRequest struct {
	StartDate string `query:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `query:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Status    string `query:"status" validate:"omitempty,oneof=RECONCILED DISCREPANCY"`
	Search    string `query:"search" validate:"omitempty,max=100"`
	Page      int    `query:"page" validate:"omitempty,min=1"`
	PageSize  int    `query:"page_size" validate:"omitempty,min=1,max=100"`
}

// AvailableAggregatesRequest represents query filters for unreconciled
// aggregates
type AvailableAggregatesRequest struct {
	StartDate       string `query:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate         string `query:"end_date" validate:"omitempty,datetime=2006-01-02"`
	PaymentMethodID string `query:"payment_method_id" validate:"omitempty,uuid"`
	Page            int    `query:"page" validate:"omitempty,min=1"`
	PageSize        int    `query:"page_size" validate:"omitempty,min=1,max=100"`
}

// SuggestAggregatesRequest represents query parameters for a combination
// suggestion
type SuggestAggregatesRequest struct {
	TargetAmount     string  `query:"target_amount" validate:"required"`
	TolerancePercent float64 `query:"tolerance_percent" validate:"omitempty,gte=0,lte=1"`
	MaxResults       int     `query:"max_results" validate:"omitempty,min=1,max=100"`
	StartDate        string  `query:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate          string  `query:"end_date" validate:"omitempty,datetime=2006-01-02"`
	PaymentMethodID  string  `query:"payment_method_id" validate:"omitempty,uuid"`
}

// Settlement Response DTOs

// SettlementGroupResponse represents a settlement group in API responses
type SettlementGroupResponse struct {
	*models.SettlementGroup
}

// CreateSettlementGroupResponse summarizes a newly created settlement group
type CreateSettlementGroupResponse struct {
	Group                *models.SettlementGroup `json:"group"`
	SettlementNumber     string                  `json:"settlement_number"`
	TotalStatementAmount decimal.Decimal         `json:"total_statement_amount"`
	TotalAllocatedAmount decimal.Decimal         `json:"total_allocated_amount"`
	Difference           decimal.Decimal         `json:"difference"`
	DifferencePercent    float64                 `json:"difference_percent"`
	AggregateCount       int                     `json:"aggregate_count"`
	Status               string                  `json:"status"`
}

// SettlementGroupListResponse represents a paginated list of settlement groups
type SettlementGroupListResponse struct {
	Groups   []models.SettlementGroup `json:"groups"`
	Total    int64                    `json:"total"`
	Page     int                      `json:"page"`
	PageSize int                      `json:"page_size"`
}

// AggregateListResponse represents a paginated list of aggregates
type AggregateListResponse struct {
	Aggregates []models.Aggregate `json:"aggregates"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
}

// SuggestAggregatesResponse represents the result of a combination suggestion
type SuggestAggregatesResponse struct {
	Aggregates   []models.Aggregate `json:"aggregates"`
	TotalAmount  decimal.Decimal    `json:"total_amount"`
	TargetAmount decimal.Decimal    `json:"target_amount"`
	Difference   decimal.Decimal    `json:"difference"`
	Count        int                `json:"count"`
}

// ThresholdExceededResponse carries the structured data a caller needs to
// decide whether to resubmit with an override
type ThresholdExceededResponse struct {
	Difference        decimal.Decimal `json:"difference"`
	DifferencePercent float64         `json:"difference_percent"`
	TolerancePercent  float64         `json:"tolerance_percent"`
	AbsoluteThreshold float64         `json:"absolute_threshold"`
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}

// RestoreSettlementGroupResponse represents the restored group
type RestoreSettlementGroupResponse struct {
	Group      *models.SettlementGroup `json:"group"`
	RestoredAt time.Time               `json:"restored_at"`
}
