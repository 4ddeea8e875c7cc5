package middleware

import (
	"github.com/gin-gonic/gin"

	"shrt/pkg/util"
)

// RequestIDKey is the context key under which the request id is stored
const RequestIDKey = "request_id"

// requestIDHeader is the response header carrying the request id
const requestIDHeader = "X-Request-ID"

// RequestID returns a gin middleware that tags every request with an id.
// An id supplied by the client is reused so ids stay stable across proxies.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = util.GenerateUUID()
		}

		c.Set(RequestIDKey, id)
		c.Writer.Header().Set(requestIDHeader, id)

		c.Next()
	}
}
