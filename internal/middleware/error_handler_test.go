package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"backoffice-recon/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// ErrorHandlerTestSuite defines the test suite for the custom HTTP error handler
type ErrorHandlerTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

// SetupTest runs before each test
func (s *ErrorHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.HTTPErrorHandler = CustomHTTPErrorHandler
}

// TestErrorHandlerTestSuite runs the test suite
func TestErrorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorHandlerTestSuite))
}

func (s *ErrorHandlerTestSuite) handleError(err error) (*httptest.ResponseRecorder, errors.ErrorResponse) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "test-trace-id")

	CustomHTTPErrorHandler(err, c)

	var resp errors.ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func (s *ErrorHandlerTestSuite) TestHandlesEchoHTTPError() {
	rec, resp := s.handleError(echo.NewHTTPError(http.StatusNotFound, "route not found"))

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("SETTLEMENT_001", resp.Error.Code)
	s.Equal("route not found", resp.Error.Message)
	s.Equal("test-trace-id", resp.Error.TraceID)
}

func (s *ErrorHandlerTestSuite) TestHandlesValidationErrors() {
	type payload struct {
		Amount string `validate:"required"`
	}

	err := validator.New().Struct(payload{})
	s.Require().Error(err)

	rec, resp := s.handleError(err)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_001", resp.Error.Code)
	s.NotEmpty(resp.Error.Details)
}

func (s *ErrorHandlerTestSuite) TestHandlesGenericError() {
	rec, resp := s.handleError(fmt.Errorf("db connection reset"))

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("SYSTEM_001", resp.Error.Code)
	// Internal detail must not leak to the client
	s.NotContains(resp.Error.Message, "db connection reset")
}

func (s *ErrorHandlerTestSuite) TestSkipsCommittedResponse() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(c.String(http.StatusOK, "already sent"))
	CustomHTTPErrorHandler(fmt.Errorf("late failure"), c)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("already sent", rec.Body.String())
}

func (s *ErrorHandlerTestSuite) TestMapHTTPStatusToErrorCode() {
	s.Equal(errors.ValidationGeneral, mapHTTPStatusToErrorCode(http.StatusBadRequest))
	s.Equal(errors.AuthMissingToken, mapHTTPStatusToErrorCode(http.StatusUnauthorized))
	s.Equal(errors.SystemRateLimitExceeded, mapHTTPStatusToErrorCode(http.StatusTooManyRequests))
	s.Equal(errors.SystemServiceUnavailable, mapHTTPStatusToErrorCode(http.StatusServiceUnavailable))
	s.Equal(errors.SystemInternalError, mapHTTPStatusToErrorCode(http.StatusTeapot))
}
