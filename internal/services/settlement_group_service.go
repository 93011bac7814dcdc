package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"backoffice-recon/internal/config"
	"backoffice-recon/internal/matching"
	"backoffice-recon/internal/models"
	"backoffice-recon/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrStatementNotFound          = errors.New("bank statement not found")
	ErrStatementAlreadyReconciled = errors.New("bank statement is already reconciled")
	ErrAggregateNotFound          = errors.New("aggregate not found")
	ErrAggregateAlreadyReconciled = errors.New("aggregate is already reconciled")
	ErrDuplicateAggregates        = errors.New("duplicate aggregate IDs in request")
	ErrNoAggregates               = errors.New("at least one aggregate is required")
	ErrTooManyAggregates          = errors.New("too many aggregates in request")
	ErrGroupNotFound              = errors.New("settlement group not found")
	ErrGroupAlreadyDeleted        = errors.New("settlement group is already deleted")
	ErrGroupNotDeleted            = errors.New("settlement group is not deleted")
	ErrReconciledElsewhere        = errors.New("aggregates reconciled by another active settlement group")
	ErrInvalidTargetAmount        = errors.New("target amount must be positive")
)

// ThresholdExceededError reports a settlement difference outside both the
// percentage and the absolute tolerance caps. It carries the raw numbers so a
// caller can decide whether to resubmit with an override.
type ThresholdExceededError struct {
	Difference        decimal.Decimal
	DifferencePercent float64
	TolerancePercent  float64
	AbsoluteThreshold float64
}

func (e *ThresholdExceededError) Error() string {
	return fmt.Sprintf("settlement difference %s (%.2f%%) exceeds tolerance %.2f%% and absolute threshold %.2f",
		e.Difference.String(), e.DifferencePercent*100, e.TolerancePercent*100, e.AbsoluteThreshold)
}

// SettlementGroupService orchestrates settlement group creation, undo,
// restore, and aggregate suggestions
type SettlementGroupService struct {
	statementRepo repositories.BankStatementRepositoryInterface
	aggregateRepo repositories.AggregateRepositoryInterface
	groupRepo     repositories.SettlementGroupRepositoryInterface
	metrics       MetricsRecorderInterface
	cfg           config.ReconciliationConfig
}

// NewSettlementGroupService creates a new settlement group service
func NewSettlementGroupService(
	statementRepo repositories.BankStatementRepositoryInterface,
	aggregateRepo repositories.AggregateRepositoryInterface,
	groupRepo repositories.SettlementGroupRepositoryInterface,
	metrics MetricsRecorderInterface,
	cfg config.ReconciliationConfig,
) SettlementGroupServiceInterface {
	return &SettlementGroupService{
		statementRepo: statementRepo,
		aggregateRepo: aggregateRepo,
		groupRepo:     groupRepo,
		metrics:       metrics,
		cfg:           cfg,
	}
}

// CreateSettlementGroup settles one bank statement against a set of
// aggregates. The group row, its allocations, and the status are the primary
// write; flipping reconciliation flags on the statement and aggregates is
// guarded by conditional updates, and a lost race soft-deletes the group
// again before reporting the conflict.
func (s *SettlementGroupService) CreateSettlementGroup(input CreateSettlementGroupInput) (*SettlementGroupResult, error) {
	if len(input.AggregateIDs) == 0 {
		return nil, ErrNoAggregates
	}
	if len(input.AggregateIDs) > s.cfg.MaxAggregatesPerGroup {
		return nil, ErrTooManyAggregates
	}

	statement, err := s.statementRepo.GetByID(input.BankStatementID)
	if err != nil {
		if errors.Is(err, repositories.ErrStatementNotFound) {
			return nil, ErrStatementNotFound
		}
		return nil, fmt.Errorf("failed to fetch bank statement: %w", err)
	}
	if statement.IsReconciled {
		return nil, ErrStatementAlreadyReconciled
	}

	// Duplicates in the input signal a client-side bug and are rejected
	// rather than silently dropped.
	seen := make(map[uuid.UUID]struct{}, len(input.AggregateIDs))
	for _, id := range input.AggregateIDs {
		if _, ok := seen[id]; ok {
			return nil, ErrDuplicateAggregates
		}
		seen[id] = struct{}{}
	}

	aggregates := make([]models.Aggregate, 0, len(input.AggregateIDs))
	for _, id := range input.AggregateIDs {
		aggregate, err := s.aggregateRepo.GetByID(id)
		if err != nil {
			if errors.Is(err, repositories.ErrAggregateNotFound) {
				return nil, ErrAggregateNotFound
			}
			return nil, fmt.Errorf("failed to fetch aggregate: %w", err)
		}
		if aggregate.IsReconciled {
			return nil, ErrAggregateAlreadyReconciled
		}
		aggregates = append(aggregates, *aggregate)
	}

	totalAllocated := decimal.Zero
	for _, aggregate := range aggregates {
		totalAllocated = totalAllocated.Add(aggregate.NettAmount)
	}

	difference := statement.Amount.Sub(totalAllocated)
	differencePercent := s.differencePercent(statement.Amount, difference)

	withinTolerance := s.isWithinTolerance(difference, differencePercent)
	if !withinTolerance && !input.OverrideDifference {
		s.metrics.IncrementCounter("settlement_rejected", map[string]string{"reason": "threshold_exceeded"})
		return nil, &ThresholdExceededError{
			Difference:        difference,
			DifferencePercent: differencePercent,
			TolerancePercent:  s.cfg.DefaultTolerancePercent,
			AbsoluteThreshold: s.cfg.DifferenceThreshold,
		}
	}

	status := models.SettlementStatusDiscrepancy
	if difference.IsZero() || withinTolerance || input.OverrideDifference {
		status = models.SettlementStatusReconciled
	}

	group := &models.SettlementGroup{
		CompanyID:            input.CompanyID,
		BankStatementID:      statement.ID,
		SettlementDate:       statement.TransactionDate,
		TotalStatementAmount: statement.Amount,
		TotalAllocatedAmount: totalAllocated,
		Difference:           difference,
		Status:               status,
		Notes:                input.Notes,
		CreatedBy:            input.CreatedBy,
	}

	if err := s.groupRepo.Create(group); err != nil {
		return nil, fmt.Errorf("failed to create settlement group: %w", err)
	}

	allocations := make([]models.SettlementAllocation, 0, len(aggregates))
	for _, aggregate := range aggregates {
		allocations = append(allocations, models.SettlementAllocation{
			AggregateID:     aggregate.ID,
			AllocatedAmount: aggregate.NettAmount,
			OriginalAmount:  aggregate.NettAmount,
		})
	}
	if err := s.groupRepo.AddAllocations(group.ID, allocations); err != nil {
		return nil, fmt.Errorf("failed to persist allocations: %w", err)
	}

	confirmedAt := time.Now()
	if err := s.groupRepo.UpdateStatus(group.ID, status, confirmedAt); err != nil {
		return nil, fmt.Errorf("failed to persist settlement status: %w", err)
	}

	if status == models.SettlementStatusReconciled {
		if err := s.markReconciled(group.ID, statement.ID, input.AggregateIDs); err != nil {
			return nil, err
		}
	}

	created, err := s.groupRepo.FindByID(group.ID, false)
	if err != nil {
		return nil, fmt.Errorf("failed to re-read settlement group: %w", err)
	}

	s.metrics.IncrementCounter("settlement_created", map[string]string{"status": status})
	s.metrics.RecordGauge("settlement_difference", difference.Abs().InexactFloat64(), nil)

	slog.Info("settlement group created",
		"settlement_number", created.SettlementNumber,
		"statement_id", statement.ID.String(),
		"aggregate_count", len(aggregates),
		"difference", difference.String(),
		"status", status,
	)

	return &SettlementGroupResult{
		Group:                created,
		SettlementNumber:     created.SettlementNumber,
		TotalStatementAmount: statement.Amount,
		TotalAllocatedAmount: totalAllocated,
		Difference:           difference,
		DifferencePercent:    differencePercent,
		AggregateCount:       len(aggregates),
		Status:               status,
	}, nil
}

// markReconciled flips the reconciliation flags with conditional updates. A
// conflict means a concurrent settlement claimed the same records first: the
// just-created group is withdrawn and the caller gets the conflict. Other
// write failures are logged and tolerated, the group stands.
func (s *SettlementGroupService) markReconciled(groupID, statementID uuid.UUID, aggregateIDs []uuid.UUID) error {
	if err := s.aggregateRepo.MarkReconciled(aggregateIDs); err != nil {
		if errors.Is(err, repositories.ErrAggregateAlreadyReconciled) {
			s.withdrawGroup(groupID)
			return ErrAggregateAlreadyReconciled
		}
		slog.Warn("failed to mark aggregates reconciled",
			"group_id", groupID.String(),
			"error", err.Error(),
		)
		return nil
	}

	if err := s.statementRepo.MarkReconciled(statementID); err != nil {
		if errors.Is(err, repositories.ErrStatementAlreadyReconciled) {
			if revertErr := s.aggregateRepo.MarkUnreconciled(aggregateIDs); revertErr != nil {
				slog.Warn("failed to revert aggregate flags after statement conflict",
					"group_id", groupID.String(),
					"error", revertErr.Error(),
				)
			}
			s.withdrawGroup(groupID)
			return ErrStatementAlreadyReconciled
		}
		slog.Warn("failed to mark statement reconciled",
			"group_id", groupID.String(),
			"statement_id", statementID.String(),
			"error", err.Error(),
		)
	}

	return nil
}

func (s *SettlementGroupService) withdrawGroup(groupID uuid.UUID) {
	if err := s.groupRepo.SoftDelete(groupID); err != nil {
		slog.Error("failed to withdraw settlement group after conflict",
			"group_id", groupID.String(),
			"error", err.Error(),
		)
	}
}

func (s *SettlementGroupService) differencePercent(statementAmount, difference decimal.Decimal) float64 {
	if statementAmount.IsZero() {
		return 0
	}
	return difference.Abs().Div(statementAmount.Abs()).InexactFloat64()
}

// isWithinTolerance applies two independent caps: a percentage of the
// statement amount and a flat currency amount. Either one accepts the
// difference.
func (s *SettlementGroupService) isWithinTolerance(difference decimal.Decimal, differencePercent float64) bool {
	if differencePercent <= s.cfg.DefaultTolerancePercent {
		return true
	}
	return difference.Abs().Cmp(decimal.NewFromFloat(s.cfg.DifferenceThreshold)) <= 0
}

// GetSettlementGroup retrieves an active settlement group by ID
func (s *SettlementGroupService) GetSettlementGroup(id uuid.UUID) (*models.SettlementGroup, error) {
	group, err := s.groupRepo.FindByID(id, false)
	if err != nil {
		if errors.Is(err, repositories.ErrSettlementGroupNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to fetch settlement group: %w", err)
	}
	return group, nil
}

// GetSettlementGroupByNumber retrieves an active settlement group by its
// display identifier
func (s *SettlementGroupService) GetSettlementGroupByNumber(settlementNumber string) (*models.SettlementGroup, error) {
	group, err := s.groupRepo.FindBySettlementNumber(settlementNumber)
	if err != nil {
		if errors.Is(err, repositories.ErrSettlementGroupNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to fetch settlement group by number: %w", err)
	}
	return group, nil
}

// ListSettlementGroups retrieves settlement groups matching the filters
func (s *SettlementGroupService) ListSettlementGroups(filters models.SettlementGroupFilters, page, pageSize int) ([]models.SettlementGroup, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	groups, total, err := s.groupRepo.FindAll(filters, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list settlement groups: %w", err)
	}
	return groups, total, nil
}

// UndoSettlementGroup soft-deletes a settlement group. With
// revertReconciliation the reconciliation flags on the statement and
// aggregates are cleared as well, best-effort. Status is permanent history
// and is never touched.
func (s *SettlementGroupService) UndoSettlementGroup(id uuid.UUID, revertReconciliation bool) error {
	group, err := s.groupRepo.FindByID(id, true)
	if err != nil {
		if errors.Is(err, repositories.ErrSettlementGroupNotFound) {
			return ErrGroupNotFound
		}
		return fmt.Errorf("failed to fetch settlement group: %w", err)
	}
	if group.IsDeleted() {
		return ErrGroupAlreadyDeleted
	}

	if err := s.groupRepo.SoftDelete(id); err != nil {
		return fmt.Errorf("failed to delete settlement group: %w", err)
	}

	if revertReconciliation {
		s.revertReconciliationFlags(group)
	}

	s.metrics.IncrementCounter("settlement_undone", map[string]string{
		"reverted": fmt.Sprintf("%t", revertReconciliation),
	})

	slog.Info("settlement group undone",
		"settlement_number", group.SettlementNumber,
		"revert_reconciliation", revertReconciliation,
	)

	return nil
}

func (s *SettlementGroupService) revertReconciliationFlags(group *models.SettlementGroup) {
	allocations, err := s.groupRepo.GetAllocationsByGroupID(group.ID)
	if err != nil {
		slog.Warn("failed to fetch allocations for reconciliation revert",
			"group_id", group.ID.String(),
			"error", err.Error(),
		)
		return
	}

	aggregateIDs := make([]uuid.UUID, 0, len(allocations))
	for _, allocation := range allocations {
		aggregateIDs = append(aggregateIDs, allocation.AggregateID)
	}

	if err := s.aggregateRepo.MarkUnreconciled(aggregateIDs); err != nil {
		slog.Warn("failed to revert aggregate reconciliation flags",
			"group_id", group.ID.String(),
			"error", err.Error(),
		)
	}

	if err := s.statementRepo.MarkUnreconciled(group.BankStatementID); err != nil {
		slog.Warn("failed to revert statement reconciliation flag",
			"group_id", group.ID.String(),
			"statement_id", group.BankStatementID.String(),
			"error", err.Error(),
		)
	}
}

// RestoreSettlementGroup clears the soft-delete marker on a deleted group.
// Restore is refused when any of the group's aggregates has since been
// claimed by a different active group. Reconciliation flags reverted by a
// prior undo are not re-applied; re-confirmation is a manual step.
func (s *SettlementGroupService) RestoreSettlementGroup(id uuid.UUID) (*models.SettlementGroup, error) {
	group, err := s.groupRepo.FindByID(id, true)
	if err != nil {
		if errors.Is(err, repositories.ErrSettlementGroupNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to fetch settlement group: %w", err)
	}
	if !group.IsDeleted() {
		return nil, ErrGroupNotDeleted
	}

	reconciledElsewhere, err := s.groupRepo.CheckAggregatesReconciledElsewhere(id)
	if err != nil {
		return nil, fmt.Errorf("failed to check aggregate allocations: %w", err)
	}
	if reconciledElsewhere {
		return nil, ErrReconciledElsewhere
	}

	if err := s.groupRepo.Restore(id); err != nil {
		if errors.Is(err, repositories.ErrSettlementGroupNotDeleted) {
			return nil, ErrGroupNotDeleted
		}
		return nil, fmt.Errorf("failed to restore settlement group: %w", err)
	}

	restored, err := s.groupRepo.FindByID(id, false)
	if err != nil {
		return nil, fmt.Errorf("failed to re-read restored settlement group: %w", err)
	}

	s.metrics.IncrementCounter("settlement_restored", nil)

	slog.Info("settlement group restored",
		"settlement_number", restored.SettlementNumber,
	)

	return restored, nil
}

// GetAvailableAggregates retrieves unreconciled aggregates eligible for
// settlement
func (s *SettlementGroupService) GetAvailableAggregates(filters models.AggregateFilters, page, pageSize int) ([]models.Aggregate, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	aggregates, total, err := s.aggregateRepo.GetUnreconciled(filters, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch available aggregates: %w", err)
	}
	return aggregates, total, nil
}

// GetSuggestedAggregates fetches a bounded pool of unreconciled aggregates
// and delegates to the matching engine to find a combination close to the
// target amount.
func (s *SettlementGroupService) GetSuggestedAggregates(input SuggestionInput) ([]models.Aggregate, error) {
	if !input.TargetAmount.IsPositive() {
		return nil, ErrInvalidTargetAmount
	}

	tolerance := s.cfg.SuggestionDefaultTolerance
	if input.TolerancePercent != nil {
		tolerance = *input.TolerancePercent
	}

	maxResults := s.cfg.SuggestionMaxResults
	if input.MaxResults != nil && *input.MaxResults > 0 {
		maxResults = *input.MaxResults
	}

	poolSize := 3 * maxResults
	if poolSize > s.cfg.SuggestionPoolCap {
		poolSize = s.cfg.SuggestionPoolCap
	}

	filters := models.AggregateFilters{
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		PaymentMethodID: input.PaymentMethodID,
	}
	if filters.StartDate == nil && filters.EndDate == nil {
		end := time.Now()
		start := end.AddDate(0, 0, -s.cfg.SuggestionWindowDays)
		filters.StartDate = &start
		filters.EndDate = &end
	}

	pool, _, err := s.aggregateRepo.GetUnreconciled(filters, 0, poolSize)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch aggregate pool: %w", err)
	}

	candidates := make([]matching.Candidate, 0, len(pool))
	byID := make(map[uuid.UUID]models.Aggregate, len(pool))
	for _, aggregate := range pool {
		candidates = append(candidates, matching.Candidate{
			ID:              aggregate.ID,
			Amount:          aggregate.NettAmount,
			TransactionDate: aggregate.TransactionDate,
			PaymentMethodID: aggregate.PaymentMethodID,
		})
		byID[aggregate.ID] = aggregate
	}

	start := time.Now()
	selected := matching.Suggest(input.TargetAmount, candidates, tolerance, maxResults)
	s.metrics.RecordProcessingTime("suggestion", time.Since(start))

	suggestions := make([]models.Aggregate, 0, len(selected))
	for _, candidate := range selected {
		suggestions = append(suggestions, byID[candidate.ID])
	}

	slog.Info("aggregate suggestions computed",
		"target", input.TargetAmount.String(),
		"pool_size", len(pool),
		"selected", len(suggestions),
	)

	return suggestions, nil
}
