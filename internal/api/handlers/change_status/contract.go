package change_status

import (
	"context"

	"github.com/m04kA/SMC-TableReservation/internal/service/reservations/models"
	changeStatus "github.com/m04kA/SMC-TableReservation/internal/usecase/change_status"
)

type ChangeStatusUseCase interface {
	Execute(ctx context.Context, req *changeStatus.Request) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
