package halls

import (
	"context"

	"github.com/m04kA/SMC-TableReservation/internal/domain"
)

// HallRepository интерфейс репозитория залов и столиков
type HallRepository interface {
	GetHall(ctx context.Context, id int64) (*domain.Hall, error)
	ListHalls(ctx context.Context) ([]*domain.Hall, error)
	TablesOf(ctx context.Context, hallID int64) ([]*domain.Table, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
