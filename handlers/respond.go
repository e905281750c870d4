package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/ticketdesk/response"
	"github.com/linskybing/ticketdesk/services"
	"gorm.io/gorm"
)

// respondServiceError translates service sentinel errors into HTTP status
// codes. Anything unrecognized is a 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case services.IsNotFound(err) || errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
	case services.IsForbidden(err):
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
	case services.IsBadRequest(err):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: msg})
}

func unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: msg})
}
