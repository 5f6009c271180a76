package run_sweep

import (
	"context"
	"time"
)

type ReservationService interface {
	RunCompletionSweep(ctx context.Context, asOf time.Time) (int64, error)
}

type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
