package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TableReservation/internal/api/handlers"
	"github.com/m04kA/SMC-TableReservation/internal/api/middleware"
	"github.com/m04kA/SMC-TableReservation/internal/service/rules"
	createReservation "github.com/m04kA/SMC-TableReservation/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, parseErr := req.ToUseCaseRequest(actor)
	if parseErr != nil {
		h.logger.Warn("POST /reservations - Failed to parse %s: user_id=%d", parseErr.Field, actor.UserID)
		handlers.RespondJSON(w, http.StatusBadRequest, parseErr)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if fieldErr, ok := rules.AsFieldError(err); ok {
			h.logger.Warn("POST /reservations - Rejected on %s: user_id=%d, table_id=%d, error=%v",
				fieldErr.Field, actor.UserID, req.TableID, fieldErr.Err)
			handlers.RespondFieldError(w, fieldErr)
			return
		}

		switch {
		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: user_id=%d, error=%v", actor.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user_id=%d, table_id=%d, error=%v",
				actor.UserID, req.TableID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: reservation_id=%d, user_id=%d, status=%s",
		result.ID, result.UserID, result.Status)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
