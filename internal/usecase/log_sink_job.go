package usecase

import (
	"context"

	applogger "VibraPulse/pkg/logger"
	"VibraPulse/pkg/queue"
)

// ErrorLogSinkType is the queue message type carrying aggregated error logs.
const ErrorLogSinkType = "logs.aggregate"

// ErrorLogSinkJob drains aggregated error-log batches from the queue and
// re-emits one summary line per distinct error, with occurrence counts.
type ErrorLogSinkJob struct {
	l *applogger.Logger
}

func NewErrorLogSinkJob(l *applogger.Logger) *ErrorLogSinkJob {
	return &ErrorLogSinkJob{l: l}
}

func (j *ErrorLogSinkJob) Name() string { return "error-log-sink" }

func (j *ErrorLogSinkJob) Type() string { return ErrorLogSinkType }

func (j *ErrorLogSinkJob) Handle(ctx context.Context, payload interface{}) error {
	entries, err := queue.ParsePayload[[]applogger.AggregatedLogEntry](payload)
	if err != nil {
		return err
	}
	for _, e := range *entries {
		j.l.Warn("aggregated error",
			applogger.String("message", e.Message),
			applogger.String("caller", e.Caller),
			applogger.Int("count", e.Count),
			applogger.Any("first_seen", e.FirstSeen),
			applogger.Any("last_seen", e.LastSeen),
		)
	}
	return nil
}

var _ queue.Job = (*ErrorLogSinkJob)(nil)
