package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"honesttour/pkg/utils"
)

// TraceIDMiddleware stamps every request with a trace id, exposed both to
// handlers (for the response envelope) and to clients via the response
// header.
func TraceIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := uuid.New().String()
		c.Set(utils.TraceIDKey, traceID)
		c.Writer.Header().Set(utils.TraceIDHeader, traceID)
		c.Next()
	}
}
