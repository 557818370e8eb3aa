package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"runtime"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/testboard/webapi-backend/config"
)

const deliveryTimeout = 5 * time.Second

// Reporter delivers error reports to the configured endpoint, best effort.
// Delivery failures are logged and swallowed; nothing is retried or queued.
type Reporter struct {
	cfg    config.ReportingConfig
	client *http.Client
	log    *zap.Logger
}

func NewReporter(cfg config.ReportingConfig, log *zap.Logger) *Reporter {
	return &Reporter{
		cfg:    cfg,
		client: &http.Client{Timeout: deliveryTimeout},
		log:    log,
	}
}

// Enabled reports whether a delivery endpoint is configured.
func (r *Reporter) Enabled() bool {
	return r.cfg.EndpointURL != ""
}

// Send posts the report to the endpoint. The response is logged and otherwise
// ignored; errors never propagate to the caller.
func (r *Reporter) Send(rep Report) {
	body, err := json.Marshal(rep)
	if err != nil {
		r.log.Error("failed to marshal error report", zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.EndpointURL, bytes.NewReader(body))
	if err != nil {
		r.log.Error("failed to build error report request", zap.Error(err))
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		r.log.Error("failed to send error report", zap.Error(err))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		r.log.Error("error endpoint rejected report",
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(respBody)))
		return
	}
	r.log.Warn("error report delivered", zap.Int("status", resp.StatusCode))
}

// describe extracts type name and message from a recovered value or error.
func describe(v any) (exceptionType, message string) {
	exceptionType = fmt.Sprintf("%T", v)
	if err, ok := v.(error); ok {
		message = err.Error()
	} else {
		message = fmt.Sprint(v)
	}
	if message == "" {
		message = "Unknown error"
	}
	return exceptionType, message
}

// faultOrigin returns the file and line of the innermost frame that is not
// part of the runtime or this package.
func faultOrigin(skip int) (*string, *int) {
	pcs := make([]uintptr, 64)
	n := runtime.Callers(skip, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		f, more := frames.Next()
		if f.Function != "" &&
			!strings.HasPrefix(f.Function, "runtime.") &&
			!strings.Contains(f.Function, "internal/report.") {
			return &f.File, &f.Line
		}
		if !more {
			break
		}
	}
	return nil, nil
}
