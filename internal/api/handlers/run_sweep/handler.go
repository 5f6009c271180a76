package run_sweep

import (
	"net/http"

	"github.com/m04kA/SMC-TableReservation/internal/api/handlers"
	"github.com/m04kA/SMC-TableReservation/internal/api/middleware"
)

const (
	msgForbidden = "действие доступно только сотрудникам"
)

// SweepResponse количество завершенных броней
type SweepResponse struct {
	Completed int64 `json:"completed"`
}

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

// Handle POST /api/v1/admin/sweep
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}
	if !actor.IsStaff() {
		h.logger.Warn("POST /admin/sweep - Access denied: user_id=%d", actor.UserID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	count, err := h.service.RunCompletionSweep(r.Context(), h.timeProvider.Now())
	if err != nil {
		h.logger.Error("POST /admin/sweep - Sweep failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/sweep - Completed %d reservations, user_id=%d", count, actor.UserID)
	handlers.RespondJSON(w, http.StatusOK, SweepResponse{Completed: count})
}
