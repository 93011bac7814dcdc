package handlers

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ErrUnauthorized is returned when user context is invalid
var ErrUnauthorized = fmt.Errorf("unauthorized")

// getUserIDFromContext extracts the authenticated user ID from context.
// Returns ErrUnauthorized if the user ID is missing or invalid.
func getUserIDFromContext(c echo.Context) (uuid.UUID, error) {
	userIDValue := c.Get("user_id")
	if userIDValue == nil {
		return uuid.UUID{}, ErrUnauthorized
	}

	userID, ok := userIDValue.(uuid.UUID)
	if !ok {
		return uuid.UUID{}, ErrUnauthorized
	}

	return userID, nil
}

// getCompanyIDFromContext extracts the company scope from context.
// Returns ErrUnauthorized if the company ID is missing or invalid.
func getCompanyIDFromContext(c echo.Context) (uuid.UUID, error) {
	companyIDValue := c.Get("company_id")
	if companyIDValue == nil {
		return uuid.UUID{}, ErrUnauthorized
	}

	companyID, ok := companyIDValue.(uuid.UUID)
	if !ok {
		return uuid.UUID{}, ErrUnauthorized
	}

	return companyID, nil
}

// parseDateParam parses a YYYY-MM-DD value, returning nil for an empty string
func parseDateParam(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}

	return &parsed, nil
}
