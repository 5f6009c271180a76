package get_available_tables

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TableReservation/internal/api/handlers"
	getAvailableTables "github.com/m04kA/SMC-TableReservation/internal/usecase/get_available_tables"
)

const (
	msgInvalidHallID = "некорректный ID зала"
	msgInvalidFormat = "неверный формат данных"
	msgHallNotFound  = "зал не найден"
)

type Handler struct {
	useCase GetAvailableTablesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableTablesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/halls/{hallId}/available-tables?date=2024-06-01&time=19:00&guests=4
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hallID, err := strconv.ParseInt(mux.Vars(r)["hallId"], 10, 64)
	if err != nil || hallID <= 0 {
		h.logger.Warn("GET /halls/{id}/available-tables - Invalid hall ID: %q", mux.Vars(r)["hallId"])
		handlers.RespondBadRequest(w, msgInvalidHallID)
		return
	}

	req, err := parseQuery(hallID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /halls/{id}/available-tables - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFormat+": "+err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableTables.ErrHallNotFound):
			h.logger.Warn("GET /halls/{id}/available-tables - Hall not found: hall_id=%d", hallID)
			handlers.RespondNotFound(w, msgHallNotFound)

		case errors.Is(err, getAvailableTables.ErrInvalidInput):
			h.logger.Warn("GET /halls/{id}/available-tables - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFormat)

		default:
			h.logger.Error("GET /halls/{id}/available-tables - Failed: hall_id=%d, error=%v", hallID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /halls/{id}/available-tables - hall_id=%d, available=%d", hallID, len(result.Tables))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
