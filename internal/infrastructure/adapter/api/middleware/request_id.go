package middleware

import (
	coreport "github.com/amirhossein-jamali/user-leveling/internal/domain/port/core"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request ID in both directions
const RequestIDHeader = "X-Request-ID"

// RequestID reuses the caller's X-Request-ID or generates one, echoes it in
// the response and stores it in the request context
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" || len(requestID) > 128 {
			requestID = uuid.NewString()
		}

		c.Header(RequestIDHeader, requestID)
		c.Set(RequestIDHeader, requestID)
		c.Request = c.Request.WithContext(coreport.ContextWithRequestID(c.Request.Context(), requestID))

		c.Next()
	}
}

func requestIDFrom(c *gin.Context) string {
	return coreport.RequestIDFromContext(c.Request.Context())
}
