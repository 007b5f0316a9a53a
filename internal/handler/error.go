package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/booklend/library-api/internal/validation"
)

func writeError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, validation.ErrorResponse{
		Success: false,
		Message: message,
	})
}
