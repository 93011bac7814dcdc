package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// SecurityHeadersTestSuite defines the test suite for security headers middleware
type SecurityHeadersTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

// SetupTest runs before each test
func (s *SecurityHeadersTestSuite) SetupTest() {
	s.echo = echo.New()
}

// TestSecurityHeadersTestSuite runs the test suite
func TestSecurityHeadersTestSuite(t *testing.T) {
	suite.Run(t, new(SecurityHeadersTestSuite))
}

func (s *SecurityHeadersTestSuite) TestSecurityHeaders_SetOnResponse() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	handler := SecurityHeaders()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	s.NoError(handler(c))

	s.Equal("nosniff", rec.Header().Get("X-Content-Type-Options"))
	s.Equal("DENY", rec.Header().Get("X-Frame-Options"))
	s.Equal("default-src 'self'", rec.Header().Get("Content-Security-Policy"))
	s.Contains(rec.Header().Get("Cache-Control"), "no-store")
}
