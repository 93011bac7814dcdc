package handlers

import (
	"errors"
	"net/http"

	"backoffice-recon/internal/dto"
	apierrors "backoffice-recon/internal/errors"
	"backoffice-recon/internal/models"
	"backoffice-recon/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// SettlementHandler handles settlement reconciliation HTTP requests
type SettlementHandler struct {
	settlementService services.SettlementGroupServiceInterface
	metrics           services.MetricsRecorderInterface
}

// NewSettlementHandler creates a new settlement handler
func NewSettlementHandler(
	settlementService services.SettlementGroupServiceInterface,
	metrics services.MetricsRecorderInterface,
) *SettlementHandler {
	return &SettlementHandler{
		settlementService: settlementService,
		metrics:           metrics,
	}
}

// RegisterRoutes wires the settlement endpoints onto the given group
func (h *SettlementHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/settlement-groups", h.CreateSettlementGroup)
	g.GET("/settlement-groups", h.ListSettlementGroups)
	g.GET("/settlement-groups/:id", h.GetSettlementGroup)
	g.GET("/settlement-groups/number/:number", h.GetSettlementGroupByNumber)
	g.DELETE("/settlement-groups/:id", h.UndoSettlementGroup)
	g.POST("/settlement-groups/:id/restore", h.RestoreSettlementGroup)
	g.GET("/aggregates/available", h.GetAvailableAggregates)
	g.GET("/aggregates/suggested", h.GetSuggestedAggregates)
}

// CreateSettlementGroup settles a bank statement against a set of aggregates
// @Summary Create settlement group
// @Description Settles one bank statement against a set of transaction aggregates, enforcing the difference tolerance policy
// @Tags Settlements
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateSettlementGroupRequest true "Settlement request"
// @Success 201 {object} dto.CreateSettlementGroupResponse "Created settlement group"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request parameters"
// @Failure 404 {object} errors.ErrorResponse "STATEMENT_001 / AGGREGATE_001 - Missing resource"
// @Failure 409 {object} errors.ErrorResponse "STATEMENT_002 / AGGREGATE_002 / AGGREGATE_003 - Conflict"
// @Failure 422 {object} errors.ErrorResponse "SETTLEMENT_005 - Difference exceeds threshold"
// @Router /settlement-groups [post]
func (h *SettlementHandler) CreateSettlementGroup(c echo.Context) error {
	companyID, err := getCompanyIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingCompanyScope)
	}

	var req dto.CreateSettlementGroupRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	statementID, err := uuid.Parse(req.BankStatementID)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid bank statement ID"))
	}

	aggregateIDs := make([]uuid.UUID, 0, len(req.AggregateIDs))
	for _, raw := range req.AggregateIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid aggregate ID"))
		}
		aggregateIDs = append(aggregateIDs, id)
	}

	input := services.CreateSettlementGroupInput{
		CompanyID:          companyID,
		BankStatementID:    statementID,
		AggregateIDs:       aggregateIDs,
		Notes:              req.Notes,
		OverrideDifference: req.OverrideDifference,
	}
	if userID, err := getUserIDFromContext(c); err == nil {
		input.CreatedBy = &userID
	}

	result, err := h.settlementService.CreateSettlementGroup(input)
	if err != nil {
		return h.sendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.CreateSettlementGroupResponse{
		Group:                result.Group,
		SettlementNumber:     result.SettlementNumber,
		TotalStatementAmount: result.TotalStatementAmount,
		TotalAllocatedAmount: result.TotalAllocatedAmount,
		Difference:           result.Difference,
		DifferencePercent:    result.DifferencePercent,
		AggregateCount:       result.AggregateCount,
		Status:               result.Status,
	})
}

// ListSettlementGroups lists settlement groups with filters
// @Summary List settlement groups
// @Tags Settlements
// @Security BearerAuth
// @Produce json
// @Param start_date query string false "Settlement date lower bound (YYYY-MM-DD)"
// @Param end_date query string false "Settlement date upper bound (YYYY-MM-DD)"
// @Param status query string false "Status filter" Enums(RECONCILED, DISCREPANCY)
// @Param search query string false "Search in settlement number and notes"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size (max 100)" default(20)
// @Success 200 {object} dto.SettlementGroupListResponse "Settlement groups"
// @Router /settlement-groups [get]
func (h *SettlementHandler) ListSettlementGroups(c echo.Context) error {
	companyID, err := getCompanyIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingCompanyScope)
	}

	var req dto.ListSettlementGroupsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	startDate, err := parseDateParam(req.StartDate)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidDate)
	}
	endDate, err := parseDateParam(req.EndDate)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidDate)
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	filters := models.SettlementGroupFilters{
		CompanyID: &companyID,
		StartDate: startDate,
		EndDate:   endDate,
		Status:    req.Status,
		Search:    req.Search,
	}

	groups, total, err := h.settlementService.ListSettlementGroups(filters, page, pageSize)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.SettlementGroupListResponse{
		Groups:   groups,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

// GetSettlementGroup retrieves a settlement group by ID
// @Summary Get settlement group
// @Tags Settlements
// @Security BearerAuth
// @Produce json
// @Param id path string true "Settlement group ID (UUID)"
// @Success 200 {object} dto.SettlementGroupResponse "Settlement group"
// @Failure 404 {object} errors.ErrorResponse "SETTLEMENT_001 - Settlement group not found"
// @Router /settlement-groups/{id} [get]
func (h *SettlementHandler) GetSettlementGroup(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid settlement group ID"))
	}

	group, err := h.settlementService.GetSettlementGroup(id)
	if err != nil {
		return h.sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.SettlementGroupResponse{SettlementGroup: group})
}

// GetSettlementGroupByNumber retrieves a settlement group by its display
// identifier
// @Summary Get settlement group by number
// @Tags Settlements
// @Security BearerAuth
// @Produce json
// @Param number path string true "Settlement number (SETT-YYYYMMDD-XXXXXX)"
// @Success 200 {object} dto.SettlementGroupResponse "Settlement group"
// @Failure 404 {object} errors.ErrorResponse "SETTLEMENT_001 - Settlement group not found"
// @Router /settlement-groups/number/{number} [get]
func (h *SettlementHandler) GetSettlementGroupByNumber(c echo.Context) error {
	number := c.Param("number")
	if number == "" {
		return SendError(c, apierrors.ValidationRequiredField, apierrors.WithDetails("Settlement number is required"))
	}

	group, err := h.settlementService.GetSettlementGroupByNumber(number)
	if err != nil {
		return h.sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.SettlementGroupResponse{SettlementGroup: group})
}

// UndoSettlementGroup soft-deletes a settlement group
// @Summary Undo settlement group
// @Description Soft-deletes a settlement group; optionally reverts the reconciliation flags on its statement and aggregates
// @Tags Settlements
// @Security BearerAuth
// @Produce json
// @Param id path string true "Settlement group ID (UUID)"
// @Param revert_reconciliation query bool false "Also clear reconciliation flags" default(false)
// @Success 200 {object} dto.MessageResponse "Settlement group undone"
// @Failure 404 {object} errors.ErrorResponse "SETTLEMENT_001 - Settlement group not found"
// @Failure 409 {object} errors.ErrorResponse "SETTLEMENT_002 - Already undone"
// @Router /settlement-groups/{id} [delete]
func (h *SettlementHandler) UndoSettlementGroup(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid settlement group ID"))
	}

	revert := c.QueryParam("revert_reconciliation") == "true"

	if err := h.settlementService.UndoSettlementGroup(id, revert); err != nil {
		return h.sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Settlement group undone"})
}

// RestoreSettlementGroup restores a previously undone settlement group
// @Summary Restore settlement group
// @Tags Settlements
// @Security BearerAuth
// @Produce json
// @Param id path string true "Settlement group ID (UUID)"
// @Success 200 {object} dto.SettlementGroupResponse "Restored settlement group"
// @Failure 404 {object} errors.ErrorResponse "SETTLEMENT_001 - Settlement group not found"
// @Failure 409 {object} errors.ErrorResponse "SETTLEMENT_003 / SETTLEMENT_004 - Restore conflict"
// @Router /settlement-groups/{id}/restore [post]
func (h *SettlementHandler) RestoreSettlementGroup(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid settlement group ID"))
	}

	group, err := h.settlementService.RestoreSettlementGroup(id)
	if err != nil {
		return h.sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.SettlementGroupResponse{SettlementGroup: group})
}

// GetAvailableAggregates lists unreconciled aggregates eligible for settlement
// @Summary List available aggregates
// @Tags Aggregates
// @Security BearerAuth
// @Produce json
// @Param start_date query string false "Transaction date lower bound (YYYY-MM-DD)"
// @Param end_date query string false "Transaction date upper bound (YYYY-MM-DD)"
// @Param payment_method_id query string false "Payment method filter (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size (max 100)" default(20)
// @Success 200 {object} dto.AggregateListResponse "Available aggregates"
// @Router /aggregates/available [get]
func (h *SettlementHandler) GetAvailableAggregates(c echo.Context) error {
	var req dto.AvailableAggregatesRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	startDate, err := parseDateParam(req.StartDate)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidDate)
	}
	endDate, err := parseDateParam(req.EndDate)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidDate)
	}

	filters := models.AggregateFilters{
		StartDate: startDate,
		EndDate:   endDate,
	}
	if req.PaymentMethodID != "" {
		paymentMethodID, err := uuid.Parse(req.PaymentMethodID)
		if err != nil {
			return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid payment method ID"))
		}
		filters.PaymentMethodID = &paymentMethodID
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	aggregates, total, err := h.settlementService.GetAvailableAggregates(filters, page, pageSize)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.AggregateListResponse{
		Aggregates: aggregates,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
	})
}

// GetSuggestedAggregates suggests a combination of aggregates close to a
// target amount
// @Summary Suggest aggregate combination
// @Tags Aggregates
// @Security BearerAuth
// @Produce json
// @Param target_amount query string true "Target amount"
// @Param tolerance_percent query number false "Tolerance fraction (0-1)"
// @Param max_results query int false "Maximum aggregates in the combination"
// @Param start_date query string false "Transaction date lower bound (YYYY-MM-DD)"
// @Param end_date query string false "Transaction date upper bound (YYYY-MM-DD)"
// @Param payment_method_id query string false "Payment method filter (UUID)"
// @Success 200 {object} dto.SuggestAggregatesResponse "Suggested combination"
// @Router /aggregates/suggested [get]
func (h *SettlementHandler) GetSuggestedAggregates(c echo.Context) error {
	var req dto.SuggestAggregatesRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	targetAmount, err := decimal.NewFromString(req.TargetAmount)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid target amount"))
	}

	startDate, err := parseDateParam(req.StartDate)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidDate)
	}
	endDate, err := parseDateParam(req.EndDate)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidDate)
	}

	input := services.SuggestionInput{
		TargetAmount: targetAmount,
		StartDate:    startDate,
		EndDate:      endDate,
	}
	if req.TolerancePercent > 0 {
		input.TolerancePercent = &req.TolerancePercent
	}
	if req.MaxResults > 0 {
		input.MaxResults = &req.MaxResults
	}
	if req.PaymentMethodID != "" {
		paymentMethodID, err := uuid.Parse(req.PaymentMethodID)
		if err != nil {
			return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid payment method ID"))
		}
		input.PaymentMethodID = &paymentMethodID
	}

	aggregates, err := h.settlementService.GetSuggestedAggregates(input)
	if err != nil {
		return h.sendServiceError(c, err)
	}

	totalAmount := decimal.Zero
	for _, aggregate := range aggregates {
		totalAmount = totalAmount.Add(aggregate.NettAmount)
	}

	return c.JSON(http.StatusOK, dto.SuggestAggregatesResponse{
		Aggregates:   aggregates,
		TotalAmount:  totalAmount,
		TargetAmount: targetAmount,
		Difference:   targetAmount.Sub(totalAmount),
		Count:        len(aggregates),
	})
}

// sendServiceError maps service errors onto the API error taxonomy
func (h *SettlementHandler) sendServiceError(c echo.Context, err error) error {
	var thresholdErr *services.ThresholdExceededError
	if errors.As(err, &thresholdErr) {
		h.countError(apierrors.SettlementThresholdExceeded)
		errorResponse := apierrors.NewErrorResponse(apierrors.SettlementThresholdExceeded, getTraceID(c))
		return c.JSON(errorResponse.GetHTTPStatus(), struct {
			Error     apierrors.ErrorDetail         `json:"error"`
			Threshold dto.ThresholdExceededResponse `json:"threshold"`
		}{
			Error: errorResponse.Error,
			Threshold: dto.ThresholdExceededResponse{
				Difference:        thresholdErr.Difference,
				DifferencePercent: thresholdErr.DifferencePercent,
				TolerancePercent:  thresholdErr.TolerancePercent,
				AbsoluteThreshold: thresholdErr.AbsoluteThreshold,
			},
		})
	}

	var code apierrors.ErrorCode
	switch {
	case errors.Is(err, services.ErrStatementNotFound):
		code = apierrors.StatementNotFound
	case errors.Is(err, services.ErrStatementAlreadyReconciled):
		code = apierrors.StatementAlreadyReconciled
	case errors.Is(err, services.ErrAggregateNotFound):
		code = apierrors.AggregateNotFound
	case errors.Is(err, services.ErrAggregateAlreadyReconciled):
		code = apierrors.AggregateAlreadyReconciled
	case errors.Is(err, services.ErrDuplicateAggregates):
		code = apierrors.AggregateDuplicateInInput
	case errors.Is(err, services.ErrNoAggregates):
		code = apierrors.SettlementNoAggregatesProvided
	case errors.Is(err, services.ErrTooManyAggregates):
		code = apierrors.SettlementTooManyAggregates
	case errors.Is(err, services.ErrGroupNotFound):
		code = apierrors.SettlementGroupNotFound
	case errors.Is(err, services.ErrGroupAlreadyDeleted):
		code = apierrors.SettlementAlreadyDeleted
	case errors.Is(err, services.ErrGroupNotDeleted):
		code = apierrors.SettlementNotDeleted
	case errors.Is(err, services.ErrReconciledElsewhere):
		code = apierrors.SettlementReconciledElsewhere
	case errors.Is(err, services.ErrInvalidTargetAmount):
		code = apierrors.ValidationOutOfRange
	default:
		return SendSystemError(c, err)
	}

	h.countError(code)
	return SendError(c, code)
}

func (h *SettlementHandler) countError(code apierrors.ErrorCode) {
	if h.metrics != nil {
		h.metrics.IncrementCounter("api_error", map[string]string{"code": string(code)})
	}
}
