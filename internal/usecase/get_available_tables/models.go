package get_available_tables

import (
	"time"

	"github.com/m04kA/SMC-TableReservation/internal/domain"
	"github.com/m04kA/SMC-TableReservation/pkg/types"
)

// Request модель запроса свободных столиков
type Request struct {
	HallID    int64            // ID зала
	Date      time.Time        // Дата (нулевая - без проверки занятости)
	StartTime types.TimeString // Время начала (пустое - без проверки занятости)
	PartySize int              // Количество гостей, по умолчанию 1
}

// Response модель ответа со списком свободных столиков
type Response struct {
	HallID int64
	Tables []domain.TableSummary // по номеру столика по возрастанию
}
