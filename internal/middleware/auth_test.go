package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backoffice-recon/internal/config"
	"backoffice-recon/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// AuthMiddlewareTestSuite defines the test suite for the auth middleware
type AuthMiddlewareTestSuite struct {
	suite.Suite
	echo      *echo.Echo
	cfg       config.JWTConfig
	userID    uuid.UUID
	companyID uuid.UUID
}

// SetupTest runs before each test
func (s *AuthMiddlewareTestSuite) SetupTest() {
	s.echo = echo.New()
	s.cfg = config.JWTConfig{
		Secret: "test-secret-key-for-middleware",
		Issuer: "backoffice-recon",
	}
	s.userID = uuid.New()
	s.companyID = uuid.New()
}

// TestAuthMiddlewareTestSuite runs the test suite
func TestAuthMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) runWithAuthHeader(header string) (*httptest.ResponseRecorder, bool) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	called := false
	handler := RequireAuth(s.cfg)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	err := handler(c)
	s.NoError(err)
	return rec, called
}

func (s *AuthMiddlewareTestSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var resp errors.ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error.Code
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth_ValidToken() {
	token, err := IssueToken(s.cfg, s.userID, s.companyID, time.Hour)
	s.Require().NoError(err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	handler := RequireAuth(s.cfg)(func(c echo.Context) error {
		s.Equal(s.userID, c.Get("user_id"))
		s.Equal(s.companyID, c.Get("company_id"))
		return c.NoContent(http.StatusOK)
	})

	s.NoError(handler(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth_MissingHeader() {
	rec, called := s.runWithAuthHeader("")
	s.False(called)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("AUTH_001", s.errorCode(rec))
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth_MalformedHeader() {
	rec, called := s.runWithAuthHeader("Basic abc123")
	s.False(called)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("AUTH_002", s.errorCode(rec))
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth_InvalidToken() {
	rec, called := s.runWithAuthHeader("Bearer not.a.token")
	s.False(called)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("AUTH_002", s.errorCode(rec))
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth_WrongSecret() {
	otherCfg := config.JWTConfig{Secret: "a-different-secret", Issuer: s.cfg.Issuer}
	token, err := IssueToken(otherCfg, s.userID, s.companyID, time.Hour)
	s.Require().NoError(err)

	rec, called := s.runWithAuthHeader("Bearer " + token)
	s.False(called)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("AUTH_002", s.errorCode(rec))
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth_ExpiredToken() {
	token, err := IssueToken(s.cfg, s.userID, s.companyID, -time.Minute)
	s.Require().NoError(err)

	rec, called := s.runWithAuthHeader("Bearer " + token)
	s.False(called)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("AUTH_003", s.errorCode(rec))
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth_WrongIssuer() {
	otherCfg := config.JWTConfig{Secret: s.cfg.Secret, Issuer: "someone-else"}
	token, err := IssueToken(otherCfg, s.userID, s.companyID, time.Hour)
	s.Require().NoError(err)

	rec, called := s.runWithAuthHeader("Bearer " + token)
	s.False(called)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("AUTH_002", s.errorCode(rec))
}

func (s *AuthMiddlewareTestSuite) TestExtractTokenFromHeader() {
	token, err := extractTokenFromHeader("Bearer abc.def.ghi")
	s.NoError(err)
	s.Equal("abc.def.ghi", token)

	_, err = extractTokenFromHeader("Bearer")
	s.Error(err)

	_, err = extractTokenFromHeader("Bearer ")
	s.Error(err)
}
