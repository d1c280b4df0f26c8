package responses

import "github.com/gin-gonic/gin"

// RequestIDKey is the gin context key the request-ID middleware writes to.
const RequestIDKey = "requestId"

type APIResponse struct {
	Status    string      `json:"status"`
	Message   string      `json:"message,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

func Success(c *gin.Context, statusCode int, data interface{}, message string) {
	c.JSON(statusCode, APIResponse{
		Status:    "success",
		Message:   message,
		Data:      data,
		RequestID: c.GetString(RequestIDKey),
	})
}

func Fail(c *gin.Context, statusCode int, err error, message string) {
	resp := APIResponse{
		Status:    "error",
		Message:   message,
		RequestID: c.GetString(RequestIDKey),
	}
	if err != nil {
		resp.Error = err.Error()
	}
	c.JSON(statusCode, resp)
}
