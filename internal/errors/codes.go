package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Bank statement error codes (STATEMENT_*)
const (
	StatementNotFound          ErrorCode = "STATEMENT_001"
	StatementAlreadyReconciled ErrorCode = "STATEMENT_002"
)

// Aggregate error codes (AGGREGATE_*)
const (
	AggregateNotFound          ErrorCode = "AGGREGATE_001"
	AggregateAlreadyReconciled ErrorCode = "AGGREGATE_002"
	AggregateDuplicateInInput  ErrorCode = "AGGREGATE_003"
)

// Settlement group error codes (SETTLEMENT_*)
const (
	SettlementGroupNotFound        ErrorCode = "SETTLEMENT_001"
	SettlementAlreadyDeleted       ErrorCode = "SETTLEMENT_002"
	SettlementNotDeleted           ErrorCode = "SETTLEMENT_003"
	SettlementReconciledElsewhere  ErrorCode = "SETTLEMENT_004"
	SettlementThresholdExceeded    ErrorCode = "SETTLEMENT_005"
	SettlementTooManyAggregates    ErrorCode = "SETTLEMENT_006"
	SettlementNoAggregatesProvided ErrorCode = "SETTLEMENT_007"
)

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken        ErrorCode = "AUTH_001"
	AuthInvalidToken        ErrorCode = "AUTH_002"
	AuthExpiredToken        ErrorCode = "AUTH_003"
	AuthMissingCompanyScope ErrorCode = "AUTH_004"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",

	// Bank statement errors
	StatementNotFound:          "Bank statement not found",
	StatementAlreadyReconciled: "Bank statement is already reconciled",

	// Aggregate errors
	AggregateNotFound:          "Transaction aggregate not found",
	AggregateAlreadyReconciled: "Transaction aggregate is already reconciled",
	AggregateDuplicateInInput:  "Duplicate aggregate IDs in request",

	// Settlement group errors
	SettlementGroupNotFound:        "Settlement group not found",
	SettlementAlreadyDeleted:       "Settlement group has already been undone",
	SettlementNotDeleted:           "Settlement group is active and cannot be restored",
	SettlementReconciledElsewhere:  "One or more aggregates were reconciled by another settlement group",
	SettlementThresholdExceeded:    "Difference exceeds the configured tolerance threshold",
	SettlementTooManyAggregates:    "Too many aggregates for a single settlement group",
	SettlementNoAggregatesProvided: "At least one aggregate is required",

	// Authentication errors
	AuthMissingToken:        "Authorization token is required",
	AuthInvalidToken:        "Invalid authorization token",
	AuthExpiredToken:        "Authorization token has expired",
	AuthMissingCompanyScope: "Token does not carry a company scope",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
