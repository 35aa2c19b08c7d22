package binding

import (
	"log/slog"

	"github.com/nandemo-ya/awscmdlet/internal/logging"
)

// Tracer receives one diagnostic line per invocation, before the request is dispatched.
type Tracer interface {
	Trace(service, operation, endpoint string)
}

// TracerFunc adapts a function to the Tracer interface.
type TracerFunc func(service, operation, endpoint string)

func (f TracerFunc) Trace(service, operation, endpoint string) {
	f(service, operation, endpoint)
}

// LogTracer writes the trace line as a debug record, the equivalent of verbose output.
type LogTracer struct {
	Logger *slog.Logger
}

func (t LogTracer) Trace(service, operation, endpoint string) {
	logger := t.Logger
	if logger == nil {
		logger = logging.GetGlobalLogger()
	}
	logger.Debug("invoking service operation",
		"service", service,
		"operation", operation,
		"endpoint", endpoint)
}
