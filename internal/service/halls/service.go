package halls

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TableReservation/internal/domain"
	hallRepo "github.com/m04kA/SMC-TableReservation/internal/infra/storage/hall"
	"github.com/m04kA/SMC-TableReservation/internal/service/halls/models"
)

// Service сервис чтения залов и схемы столиков
type Service struct {
	hallRepo HallRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса залов
func NewService(hallRepo HallRepository, logger Logger) *Service {
	return &Service{
		hallRepo: hallRepo,
		logger:   logger,
	}
}

// ListHalls получает все залы с общей вместимостью и числом активных столиков
func (s *Service) ListHalls(ctx context.Context) (*models.HallListResponse, error) {
	halls, err := s.hallRepo.ListHalls(ctx)
	if err != nil {
		s.logger.Error("ListHalls: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListHalls - repository error: %v", ErrInternal, err)
	}

	result := &models.HallListResponse{Halls: make([]models.HallResponse, 0, len(halls))}
	for _, hall := range halls {
		tables, err := s.hallRepo.TablesOf(ctx, hall.ID)
		if err != nil {
			s.logger.Error("ListHalls: failed to get tables of hall id=%d: %v", hall.ID, err)
			return nil, fmt.Errorf("%w: ListHalls - repository error: %v", ErrInternal, err)
		}
		result.Halls = append(result.Halls, *models.FromDomainHall(hall, tables, false))
	}

	return result, nil
}

// GetHall получает зал со схемой столиков
// Столики, стоящие вне сетки зала, пропускаются с предупреждением
func (s *Service) GetHall(ctx context.Context, id int64) (*models.HallResponse, error) {
	hall, err := s.hallRepo.GetHall(ctx, id)
	if err != nil {
		if errors.Is(err, hallRepo.ErrHallNotFound) {
			s.logger.Warn("GetHall: hall id=%d not found", id)
			return nil, ErrHallNotFound
		}
		s.logger.Error("GetHall: repository error for hall id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetHall - repository error: %v", ErrInternal, err)
	}

	tables, err := s.hallRepo.TablesOf(ctx, id)
	if err != nil {
		s.logger.Error("GetHall: failed to get tables of hall id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetHall - repository error: %v", ErrInternal, err)
	}

	placed := make([]*domain.Table, 0, len(tables))
	for _, t := range tables {
		if !t.FitsInto(hall) {
			s.logger.Warn("GetHall: table id=%d at (%d,%d) is outside of hall id=%d grid %dx%d",
				t.ID, t.XPosition, t.YPosition, hall.ID, hall.Width, hall.Height)
			continue
		}
		placed = append(placed, t)
	}

	return models.FromDomainHall(hall, placed, true), nil
}
