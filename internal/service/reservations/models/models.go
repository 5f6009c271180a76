package models

import (
	"time"

	"github.com/m04kA/SMC-TableReservation/internal/domain"
	"github.com/m04kA/SMC-TableReservation/internal/service/lifecycle"
	"github.com/m04kA/SMC-TableReservation/pkg/types"
)

// Request модели

// PrepareRequest черновик нового бронирования
type PrepareRequest struct {
	Actor           domain.Actor
	OnBehalfOf      *int64 // сотрудник оформляет бронь за гостя; nil - за себя
	TableID         int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes *int // nil - длительность по умолчанию
	GuestsCount     int
	Event           *string
}

// EditRequest правка существующего бронирования
type EditRequest struct {
	Actor         domain.Actor
	ReservationID int64
	Patch         lifecycle.Patch
}

// ListRequest запрос списка бронирований
type ListRequest struct {
	Actor    domain.Actor
	UserID   *int64 // только для сотрудника; гость всегда видит свои брони
	TableID  *int64
	Date     *time.Time
	Statuses []domain.ReservationStatus
}

// ToDomainFilter конвертирует запрос в фильтр репозитория
// Гость видит только свои бронирования независимо от UserID в запросе
func (r *ListRequest) ToDomainFilter() domain.ReservationsFilter {
	filter := domain.ReservationsFilter{
		UserID:   r.UserID,
		TableID:  r.TableID,
		Date:     r.Date,
		Statuses: r.Statuses,
	}
	if !r.Actor.IsStaff() {
		userID := r.Actor.UserID
		filter.UserID = &userID
	}
	return filter
}

// Response модели

// ReservationResponse бронирование для внешних слоев
type ReservationResponse struct {
	ID              int64   `json:"id"`
	TableID         int64   `json:"tableId"`
	UserID          int64   `json:"userId"`
	Date            string  `json:"date"`      // "2024-06-01"
	StartTime       string  `json:"startTime"` // "19:00"
	EndTime         string  `json:"endTime"`   // вычисляется, "22:00"
	DurationMinutes int     `json:"durationMinutes"`
	GuestsCount     int     `json:"guestsCount"`
	Status          string  `json:"status"`
	Source          string  `json:"source"`
	Event           *string `json:"event,omitempty"`
	ExtendedByAdmin bool    `json:"extendedByAdmin"`
	StaffUserID     *int64  `json:"staffUserId,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ReservationListResponse список бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Total        int                   `json:"total"`
}

// FromDomainReservation конвертирует domain.Reservation в ответ
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:              r.ID,
		TableID:         r.TableID,
		UserID:          r.UserID,
		Date:            r.Date.Format(domain.DateFormat),
		StartTime:       r.StartTime.String(),
		EndTime:         r.EndTime().String(),
		DurationMinutes: r.DurationMinutes,
		GuestsCount:     r.GuestsCount,
		Status:          string(r.Status),
		Source:          string(r.Source),
		Event:           r.Event,
		ExtendedByAdmin: r.ExtendedByAdmin,
		StaffUserID:     r.StaffUserID,
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       r.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainReservationList конвертирует список бронирований
func FromDomainReservationList(list []*domain.Reservation) *ReservationListResponse {
	result := make([]ReservationResponse, 0, len(list))
	for _, r := range list {
		result = append(result, *FromDomainReservation(r))
	}
	return &ReservationListResponse{
		Reservations: result,
		Total:        len(result),
	}
}
