package utils

import (
	"github.com/gin-gonic/gin"
)

// RequestIDKey is the gin context key holding the request id
const RequestIDKey = "request_id"

func envelope(c *gin.Context, status int, message string) gin.H {
	body := gin.H{
		"status":  status,
		"message": message,
	}
	if id := c.GetString(RequestIDKey); id != "" {
		body[RequestIDKey] = id
	}
	return body
}

// JSONResponse sends a structured JSON response
func JSONResponse(c *gin.Context, status int, data any, message string) {
	body := envelope(c, status, message)
	body["data"] = data
	c.JSON(status, body)
}

// JSONError sends a structured error response
func JSONError(c *gin.Context, status int, err error, message string) {
	body := envelope(c, status, message)
	body["error"] = err.Error()
	c.JSON(status, body)
}
