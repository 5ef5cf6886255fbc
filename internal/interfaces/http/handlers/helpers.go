package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"teamtrack/internal/shared/authorization"
	"teamtrack/internal/shared/constants"
	"teamtrack/internal/shared/errors"
)

// parseIDParam parses a positive integer path parameter.
func parseIDParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid "+name, raw)
	}
	return uint(id), nil
}

// parseOptionalUintQuery parses an optional query parameter, returning
// nil when absent and an error when present but malformed.
func parseOptionalUintQuery(c *gin.Context, name string) (*uint, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, errors.NewValidationError("invalid "+name, raw)
	}
	id := uint(v)
	return &id, nil
}

// currentUserID returns the authenticated caller's ID set by the auth
// middleware.
func currentUserID(c *gin.Context) uint {
	return c.GetUint(constants.ContextKeyUserID)
}

// currentRole returns the authenticated caller's role.
func currentRole(c *gin.Context) authorization.UserRole {
	return authorization.ParseUserRole(c.GetString(constants.ContextKeyUserRole))
}
