package list_reservations

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TableReservation/internal/api/handlers"
	"github.com/m04kA/SMC-TableReservation/internal/api/middleware"
	"github.com/m04kA/SMC-TableReservation/internal/service/reservations"
)

const (
	msgInvalidQuery = "некорректные параметры запроса"
)

type Handler struct {
	service      ReservationService
	timeProvider TimeProvider
	logger       Logger
}

func NewHandler(service ReservationService, timeProvider TimeProvider, logger Logger) *Handler {
	return &Handler{
		service:      service,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Handle GET /api/v1/reservations
// Перед выдачей списка прошедшие подтвержденные брони переводятся в completed.
// Гость видит только свои брони, сотрудник - все.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	req, err := parseQuery(actor, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /reservations - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	// Список все равно полезен, даже если завершить прошедшие брони не удалось
	if _, err := h.service.RunCompletionSweep(r.Context(), h.timeProvider.Now()); err != nil {
		h.logger.Error("GET /reservations - Completion sweep failed: %v", err)
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, reservations.ErrInvalidInput) {
			h.logger.Warn("GET /reservations - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
		h.logger.Error("GET /reservations - Failed to list reservations: user_id=%d, error=%v", actor.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reservations - Reservations retrieved: user_id=%d, count=%d", actor.UserID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
