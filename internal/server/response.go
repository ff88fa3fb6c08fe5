package server

import (
	"github.com/gin-gonic/gin"
)

// envelope is the uniform response wrapper for every API endpoint.
type envelope struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	Data      any    `json:"data,omitempty"`
	Error     string `json:"error,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func respondOK(c *gin.Context, status int, message string, data any) {
	c.JSON(status, envelope{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: requestID(c),
	})
}

func respondError(c *gin.Context, status int, message string, err error) {
	body := envelope{
		Success:   false,
		Message:   message,
		RequestID: requestID(c),
	}
	if err != nil {
		body.Error = err.Error()
	}
	c.JSON(status, body)
}
