package report

import (
	"runtime/debug"

	"go.uber.org/zap"
)

// SendStartupFailure reports a fault raised before the server could start.
// Board id comes solely from the environment config; path, method and user
// agent carry fixed sentinels. The send blocks for at most the delivery
// timeout since there is no request to answer.
func (r *Reporter) SendStartupFailure(err error) {
	if !r.Enabled() {
		r.log.Warn("RUNTIME_ERROR_ENDPOINT_URL is not set - skipping startup error reporting")
		return
	}

	exceptionType, message := describe(err)
	r.log.Error("application failed to start",
		zap.String("type", exceptionType),
		zap.String("message", message))

	userAgent := "STARTUP_ERROR"
	r.Send(Report{
		BoardID:       r.cfg.BoardID,
		Timestamp:     nil, // stamped by the receiver
		StackTrace:    string(debug.Stack()),
		Message:       message,
		ExceptionType: exceptionType,
		RequestPath:   "STARTUP",
		RequestMethod: "STARTUP",
		UserAgent:     &userAgent,
	})
}
