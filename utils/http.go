package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ErrEmptyParameter signals a required query parameter was absent, most
// commonly the project_id scoping ticket routes.
var ErrEmptyParameter = errors.New("required query parameter missing")

// ParseIDParam parses a numeric path parameter such as :team_id or :id.
func ParseIDParam(c *gin.Context, param string) (uint, error) {
	raw := c.Param(param)
	id, err := strconv.ParseUint(raw, 10, 64)
	return uint(id), err
}

// ParseQueryUintParam parses a numeric query parameter, distinguishing an
// absent value from a malformed one.
func ParseQueryUintParam(c *gin.Context, param string) (uint, error) {
	raw := c.Query(param)
	if raw == "" {
		return 0, ErrEmptyParameter
	}
	val, err := strconv.ParseUint(raw, 10, 64)
	return uint(val), err
}
