package oracle

import "log/slog"

// CallEvent records metadata about a single oracle invocation.
type CallEvent struct {
	Task      TaskType
	Model     string
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives events about oracle calls for logging.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// SlogObserver logs oracle call events through slog.
type SlogObserver struct {
	log *slog.Logger
}

// NewSlogObserver creates an Observer logging to the given logger.
func NewSlogObserver(logger *slog.Logger) *SlogObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogObserver{log: logger}
}

func (o *SlogObserver) OnCallComplete(event CallEvent) {
	if event.Success {
		o.log.Debug("oracle call",
			"task", event.Task, "model", event.Model, "latency_ms", event.LatencyMs)
		return
	}
	o.log.Warn("oracle call failed",
		"task", event.Task, "model", event.Model,
		"latency_ms", event.LatencyMs, "error_code", event.ErrorCode)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
