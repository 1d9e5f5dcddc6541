package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	contextKeyRequestID = "request_id"
	headerRequestID     = "X-Request-ID"
)

// WithRequestID assigns each request a UUID for log correlation, honoring an
// id supplied by an upstream proxy.
func WithRequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(contextKeyRequestID, id)
		c.Header(headerRequestID, id)
		c.Next()
	}
}

// RequestID returns the request id assigned by WithRequestID.
func RequestID(c *gin.Context) string {
	v, _ := c.Get(contextKeyRequestID)
	id, _ := v.(string)
	return id
}
