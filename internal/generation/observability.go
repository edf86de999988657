package generation

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/alexanderramin/learnplan/internal/domain"
	"github.com/alexanderramin/learnplan/internal/duration"
)

// EventKind names a state transition of one Generate call.
type EventKind string

const (
	EventAttemptStarted  EventKind = "attempt_started"
	EventAttemptFailed   EventKind = "attempt_failed"
	EventSucceeded       EventKind = "succeeded"
	EventFallbackEntered EventKind = "fallback_entered"
)

// FailureReason explains why an attempt was rejected.
type FailureReason string

const (
	ReasonClientError    FailureReason = "client_error"
	ReasonErrorResponse  FailureReason = "error_response"
	ReasonDecodeFailed   FailureReason = "decode_failed"
	ReasonShapeMismatch  FailureReason = "shape_mismatch"
	ReasonRepetitive     FailureReason = "repetitive"
	ReasonNoClient       FailureReason = "no_client"
	ReasonCallerCanceled FailureReason = "caller_canceled"
)

// Event captures one transition. Reason and Err are set for failures and
// for entering fallback.
type Event struct {
	Kind      EventKind
	RequestID string
	Goal      string
	Category  domain.Category
	Attempt   int
	Expected  duration.Totals
	Reason    FailureReason
	Err       error
	Latency   time.Duration
}

// Observer receives generation state transitions.
type Observer interface {
	OnTransition(ctx context.Context, event Event)
}

// NoopObserver ignores all events.
type NoopObserver struct{}

func (NoopObserver) OnTransition(context.Context, Event) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver writes transitions as text records to w.
func NewLogObserver(w io.Writer) Observer {
	if w == nil {
		return NoopObserver{}
	}
	return NewSlogObserver(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})))
}

// NewSlogObserver writes transitions to logger.
func NewSlogObserver(logger *slog.Logger) Observer {
	if logger == nil {
		return NoopObserver{}
	}
	return &logObserver{logger: logger}
}

func (o *logObserver) OnTransition(ctx context.Context, event Event) {
	attrs := make([]any, 0, 20)
	attrs = append(attrs,
		"event", string(event.Kind),
		"request_id", event.RequestID,
		"goal", event.Goal,
		"category", string(event.Category),
		"attempt", event.Attempt,
		"expected_days", event.Expected.TotalDays,
		"expected_weeks", event.Expected.TotalWeeks,
		"expected_months", event.Expected.TotalMonths,
		"latency_ms", event.Latency.Milliseconds(),
	)
	if event.Reason != "" {
		attrs = append(attrs, "reason", string(event.Reason))
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
	}

	switch event.Kind {
	case EventAttemptFailed, EventFallbackEntered:
		o.logger.WarnContext(ctx, "plan_generation", attrs...)
	default:
		o.logger.InfoContext(ctx, "plan_generation", attrs...)
	}
}
