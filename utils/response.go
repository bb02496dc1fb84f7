// Package utils holds the response envelope, logging, and ID helpers
// shared across the auction engine's HTTP surface and internals.
package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONResponse sends the engine's standard success envelope. Bid
// rejections that carry advisory data (current top, minimum next bid)
// also go through here with a non-2xx status.
func JSONResponse(c *gin.Context, status int, data any, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// JSONError sends the standard error envelope
func JSONError(c *gin.Context, status int, err error, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"error":   err.Error(),
	})
}
