package report

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/testboard/webapi-backend/internal/api/http/middleware"
)

const genericError = "An error occurred while processing your request"

// Middleware is the process-wide fault handler. It must be installed before
// any other middleware so every unhandled fault funnels through it exactly
// once: panics are recovered, and errors handlers attached without writing a
// response are drained. Either way the fault is reported out-of-band and the
// caller gets a fixed generic 500.
func (r *Reporter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				file, line := faultOrigin(3)
				r.capture(c, rec, file, line, string(debug.Stack()))
			}
		}()

		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			r.capture(c, c.Errors.Last().Err, nil, nil, string(debug.Stack()))
		}
	}
}

func (r *Reporter) capture(c *gin.Context, fault any, file *string, line *int, stack string) {
	exceptionType, message := describe(fault)
	r.log.Error("unhandled fault",
		zap.String("request_id", middleware.GetRequestID(c.Request.Context())),
		zap.String("type", exceptionType),
		zap.String("message", message),
		zap.String("path", c.Request.URL.Path))

	boardID := ResolveBoardID(c, r.cfg)

	if r.Enabled() {
		var userAgent *string
		if ua := c.Request.UserAgent(); ua != "" {
			userAgent = &ua
		}
		rep := Report{
			BoardID:       boardID,
			Timestamp:     nowUTC(),
			File:          file,
			Line:          line,
			StackTrace:    stack,
			Message:       message,
			ExceptionType: exceptionType,
			RequestPath:   c.Request.URL.Path,
			RequestMethod: c.Request.Method,
			UserAgent:     userAgent,
		}
		// Fire and forget; the response below never waits on delivery.
		go r.Send(rep)
	} else {
		r.log.Warn("RUNTIME_ERROR_ENDPOINT_URL is not set - skipping error reporting")
	}

	if !c.Writer.Written() {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":   genericError,
			"message": message,
		})
	} else {
		c.Abort()
	}
}
