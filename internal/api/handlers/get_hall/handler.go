package get_hall

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TableReservation/internal/api/handlers"
	"github.com/m04kA/SMC-TableReservation/internal/service/halls"
)

const (
	msgInvalidHallID = "некорректный ID зала"
	msgHallNotFound  = "зал не найден"
)

type Handler struct {
	service HallService
	logger  Logger
}

func NewHandler(service HallService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/halls/{hallId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hallID, err := strconv.ParseInt(mux.Vars(r)["hallId"], 10, 64)
	if err != nil || hallID <= 0 {
		h.logger.Warn("GET /halls/{id} - Invalid hall ID: %q", mux.Vars(r)["hallId"])
		handlers.RespondBadRequest(w, msgInvalidHallID)
		return
	}

	result, err := h.service.GetHall(r.Context(), hallID)
	if err != nil {
		if errors.Is(err, halls.ErrHallNotFound) {
			h.logger.Warn("GET /halls/{id} - Hall not found: hall_id=%d", hallID)
			handlers.RespondNotFound(w, msgHallNotFound)
			return
		}
		h.logger.Error("GET /halls/{id} - Failed to get hall: hall_id=%d, error=%v", hallID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
