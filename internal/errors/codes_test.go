package errors

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// CodesTestSuite defines the test suite for error codes
type CodesTestSuite struct {
	suite.Suite
}

// TestCodesTestSuite runs the test suite
func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

// TestGetErrorMessage_ValidCode tests getting message for valid error codes
func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{
			name:     "Statement Not Found",
			code:     StatementNotFound,
			expected: "Bank statement not found",
		},
		{
			name:     "Statement Already Reconciled",
			code:     StatementAlreadyReconciled,
			expected: "Bank statement is already reconciled",
		},
		{
			name:     "Aggregate Duplicate In Input",
			code:     AggregateDuplicateInInput,
			expected: "Duplicate aggregate IDs in request",
		},
		{
			name:     "Settlement Threshold Exceeded",
			code:     SettlementThresholdExceeded,
			expected: "Difference exceeds the configured tolerance threshold",
		},
		{
			name:     "Settlement Reconciled Elsewhere",
			code:     SettlementReconciledElsewhere,
			expected: "One or more aggregates were reconciled by another settlement group",
		},
		{
			name:     "Validation General",
			code:     ValidationGeneral,
			expected: "Validation failed",
		},
		{
			name:     "System Internal Error",
			code:     SystemInternalError,
			expected: "An unexpected error occurred. Please contact support with trace ID",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			message := GetErrorMessage(tc.code)
			s.Equal(tc.expected, message)
		})
	}
}

// TestGetErrorMessage_UnknownCode tests the fallback message
func (s *CodesTestSuite) TestGetErrorMessage_UnknownCode() {
	message := GetErrorMessage(ErrorCode("BOGUS_999"))
	s.Equal("An error occurred", message)
}

// TestIsValidErrorCode tests error code registration
func (s *CodesTestSuite) TestIsValidErrorCode() {
	s.True(IsValidErrorCode(SettlementGroupNotFound))
	s.True(IsValidErrorCode(AggregateAlreadyReconciled))
	s.False(IsValidErrorCode(ErrorCode("BOGUS_999")))
	s.False(IsValidErrorCode(ErrorCode("")))
}
