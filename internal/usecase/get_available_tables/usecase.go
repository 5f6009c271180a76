package get_available_tables

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TableReservation/internal/domain"
	hallRepo "github.com/m04kA/SMC-TableReservation/internal/infra/storage/hall"
	"github.com/m04kA/SMC-TableReservation/pkg/clock"
)

// UseCase use case подбора свободных столиков зала
type UseCase struct {
	hallRepo        HallRepository
	reservationRepo ReservationRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	hallRepo HallRepository,
	reservationRepo ReservationRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		hallRepo:        hallRepo,
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// Execute возвращает активные столики зала, вмещающие компанию и свободные
// на стандартные 3 часа с указанного времени
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableTables: hall=%d, date=%s, time=%s, guests=%d",
		req.HallID, req.Date.Format(domain.DateFormat), req.StartTime, req.PartySize)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableTables: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование зала
	if _, err := uc.hallRepo.GetHall(ctx, req.HallID); err != nil {
		if errors.Is(err, hallRepo.ErrHallNotFound) {
			uc.logger.Warn("GetAvailableTables: hall id=%d not found", req.HallID)
			return nil, ErrHallNotFound
		}
		uc.logger.Error("GetAvailableTables: failed to get hall id=%d: %v", req.HallID, err)
		return nil, fmt.Errorf("%w: failed to get hall: %v", ErrInternal, err)
	}

	// 3. Активные столики подходящей вместимости
	tables, err := uc.hallRepo.TablesFilteredByCapacity(ctx, req.HallID, req.PartySize)
	if err != nil {
		uc.logger.Error("GetAvailableTables: failed to get tables of hall id=%d: %v", req.HallID, err)
		return nil, fmt.Errorf("%w: failed to get tables: %v", ErrInternal, err)
	}

	// 4. Занятость всех столиков на дату одним запросом
	date := clock.DateOf(req.Date)
	var byTable map[int64][]*domain.Reservation
	if !req.Date.IsZero() && len(tables) > 0 {
		tableIDs := make([]int64, 0, len(tables))
		for _, t := range tables {
			tableIDs = append(tableIDs, t.ID)
		}

		existing, err := uc.reservationRepo.FindByTablesAndDate(ctx, tableIDs, date, domain.BlockingStatuses)
		if err != nil {
			uc.logger.Error("GetAvailableTables: failed to get reservations: %v", err)
			return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}
		byTable = groupByTable(existing)
	}

	// 5. Проверяем каждый столик условной бронью на 3 часа
	available := filterAvailable(tables, byTable, date, req.StartTime)

	uc.logger.Info("GetAvailableTables: %d of %d tables available in hall=%d",
		len(available), len(tables), req.HallID)

	return &Response{
		HallID: req.HallID,
		Tables: available,
	}, nil
}
