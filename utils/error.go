package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// requestLogger returns the per-request logger set by the auth middleware,
// or the global one for unauthenticated routes.
func requestLogger(c *gin.Context) *zap.Logger {
	if l, ok := c.Get(ContextKeyLogger); ok {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return GetLogger()
}

// ErrorHandler turns a panic in a later handler into a 500 reply.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				requestLogger(c).Error("panic while serving request",
					zap.Any("panic", rec),
					zap.String("method", c.Request.Method),
					zap.String("route", c.FullPath()),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
			}
		}()
		c.Next()
	}
}

// JSONError logs and writes an error reply. Server errors are logged at
// error level, client errors at debug.
func JSONError(c *gin.Context, status int, message string, details string) {
	fields := []zap.Field{zap.Int("status", status), zap.String("details", details)}
	if c.Request != nil {
		fields = append(fields, zap.String("route", c.FullPath()))
	}
	if status >= http.StatusInternalServerError {
		requestLogger(c).Error(message, fields...)
	} else {
		requestLogger(c).Debug(message, fields...)
	}
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}
