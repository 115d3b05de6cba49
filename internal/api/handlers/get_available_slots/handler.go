package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/LauraGA777/gmsf-backend-sub001/internal/api/handlers"
	getAvailableSlots "github.com/LauraGA777/gmsf-backend-sub001/internal/usecase/get_available_slots"
)

const (
	msgInvalidParams   = "некорректные параметры запроса, ожидается date=YYYY-MM-DD"
	msgTrainerNotFound = "тренер не найден"
	msgTrainerInactive = "тренер недоступен для записи"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-slots
// Query params: date (обязательный), trainerId (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	useCaseReq, err := ToUseCaseRequest(q.Get("date"), q.Get("trainerId"))
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrTrainerNotFound):
			h.logger.Warn("GET /available-slots - Trainer not found")
			handlers.RespondNotFound(w, msgTrainerNotFound)

		case errors.Is(err, getAvailableSlots.ErrTrainerInactive):
			h.logger.Warn("GET /available-slots - Trainer inactive")
			handlers.RespondForbidden(w, msgTrainerInactive)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /available-slots - Failed to get slots: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /available-slots - Slots retrieved successfully: date=%s, slots=%d",
		result.Date, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
