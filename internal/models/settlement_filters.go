package models

import (
	"time"

	"github.com/google/uuid"
)

// SettlementGroupFilters contains filter criteria for settlement group queries.
// Search matches against the settlement number and notes.
type SettlementGroupFilters struct {
	CompanyID      *uuid.UUID
	StartDate      *time.Time
	EndDate        *time.Time
	Status         string
	Search         string
	IncludeDeleted bool
}

// AggregateFilters contains filter criteria for available-aggregate queries
type AggregateFilters struct {
	StartDate       *time.Time
	EndDate         *time.Time
	PaymentMethodID *uuid.UUID
}
