package response

import (
	"github.com/gin-gonic/gin"
)

// Response standardizes the API JSON envelope
type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message,omitempty"`
	Count     *int        `json:"count,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
	Details   interface{} `json:"details,omitempty"`
	Timestamp string      `json:"timestamp,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

// Success sends a success response
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: requestID(c),
	})
}

// List sends a success response carrying a collection and its size
func List(c *gin.Context, code int, count int, data interface{}) {
	c.JSON(code, Response{
		Success:   true,
		Count:     &count,
		Data:      data,
		RequestID: requestID(c),
	})
}

// Error sends an error response; details carries field violations when present
func Error(c *gin.Context, code int, errMsg string, message string, details interface{}) {
	c.JSON(code, Response{
		Success:   false,
		Error:     errMsg,
		Message:   message,
		Details:   details,
		RequestID: requestID(c),
	})
}

func requestID(c *gin.Context) string {
	reqID, _ := c.Get("RequestID")
	idStr, _ := reqID.(string) // Safe type assertion
	return idStr
}
