package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bookstore-report/internal/responses"
)

const RequestIDHeader = "X-Request-ID"

// RequestID keeps a caller-supplied X-Request-ID if it parses as a UUID and
// otherwise assigns a new one.
func RequestID(c *gin.Context) {
	id := c.GetHeader(RequestIDHeader)
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.New().String()
	}

	c.Set(responses.RequestIDKey, id)
	c.Header(RequestIDHeader, id)

	c.Next()
}
