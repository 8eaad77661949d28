package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// requestIDMaxLen caps externally supplied ids to keep log lines sane
const requestIDMaxLen = 64

// RequestID reads X-Request-ID from the request, generating a UUID when the
// header is absent or oversized, and mirrors it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" || len(rid) > requestIDMaxLen {
			rid = uuid.New().String()
		}

		c.Set(requestIDKey, rid)
		// Mirror into the request context so loggers built from
		// c.Request.Context() carry the id too.
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), requestIDKey, rid))
		c.Header("X-Request-ID", rid)

		c.Next()
	}
}
