package list_reservations

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TableReservation/internal/service/reservations/models"
)

type ReservationService interface {
	RunCompletionSweep(ctx context.Context, asOf time.Time) (int64, error)
	List(ctx context.Context, req *models.ListRequest) (*models.ReservationListResponse, error)
}

type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
