package list_halls

import (
	"context"

	"github.com/m04kA/SMC-TableReservation/internal/service/halls/models"
)

type HallService interface {
	ListHalls(ctx context.Context) (*models.HallListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
