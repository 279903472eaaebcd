package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/janm-comcon/stdtext/server/middleware"
)

// SendJSONResponse sends a JSON response through the Gin context.
func SendJSONResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// BindJSONBody decodes the request body into dst. A malformed body is
// answered with 400 through the central error responder; the caller
// returns immediately when false.
func BindJSONBody(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		middleware.HandleGinError(c, NewValidationError("invalid request body", err))
		return false
	}
	return true
}
