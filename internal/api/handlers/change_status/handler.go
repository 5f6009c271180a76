package change_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TableReservation/internal/api/handlers"
	"github.com/m04kA/SMC-TableReservation/internal/api/middleware"
	"github.com/m04kA/SMC-TableReservation/internal/service/lifecycle"
	"github.com/m04kA/SMC-TableReservation/internal/service/reservations"
	"github.com/m04kA/SMC-TableReservation/internal/service/rules"
	changeStatus "github.com/m04kA/SMC-TableReservation/internal/usecase/change_status"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgNotFound             = "бронирование не найдено"
	msgForbidden            = "у вас нет доступа к этому бронированию"
)

// Handler один экземпляр на событие: confirm, cancel или complete
type Handler struct {
	useCase ChangeStatusUseCase
	event   lifecycle.Event
	logger  Logger
}

func NewHandler(useCase ChangeStatusUseCase, event lifecycle.Event, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		event:   event,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reservations/{reservationId}/{confirm|cancel|complete}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	reservationID, err := strconv.ParseInt(mux.Vars(r)["reservationId"], 10, 64)
	if err != nil || reservationID <= 0 {
		h.logger.Warn("PATCH /reservations/{id}/%s - Invalid reservation ID: %q", h.event, mux.Vars(r)["reservationId"])
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &changeStatus.Request{
		Actor:         actor,
		ReservationID: reservationID,
		Event:         h.event,
	})
	if err != nil {
		if fieldErr, ok := rules.AsFieldError(err); ok {
			h.logger.Warn("PATCH /reservations/{id}/%s - Slot conflict: reservation_id=%d, error=%v",
				h.event, reservationID, fieldErr.Err)
			handlers.RespondFieldError(w, fieldErr)
			return
		}

		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/%s - Reservation not found: reservation_id=%d", h.event, reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("PATCH /reservations/{id}/%s - Access denied: reservation_id=%d, user_id=%d",
				h.event, reservationID, actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reservations.ErrTransitionRejected):
			h.logger.Warn("PATCH /reservations/{id}/%s - Rejected: reservation_id=%d, error=%v", h.event, reservationID, err)
			handlers.RespondConflict(w, handlers.TransitionErrorMessage(err))

		default:
			h.logger.Error("PATCH /reservations/{id}/%s - Failed: reservation_id=%d, error=%v", h.event, reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/%s - Reservation is %s now: reservation_id=%d, user_id=%d",
		h.event, result.Status, reservationID, actor.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
