package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDKey    = "requestID"
	RequestIDHeader = "X-Request-Id"
)

// RequestID присваивает каждому запросу идентификатор. Переданный клиентом заголовок
// сохраняется, чтобы идентификатор переживал межсервисные вызовы.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}
