package check_availability

import (
	"errors"
	"net/http"

	"github.com/LauraGA777/gmsf-backend-sub001/internal/api/handlers"
	checkAvailability "github.com/LauraGA777/gmsf-backend-sub001/internal/usecase/check_availability"
)

const (
	msgInvalidParams    = "некорректные параметры запроса"
	msgInvalidTimeRange = "некорректный временной диапазон"
	msgMissingOwner     = "необходимо указать trainerId или clientId"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: startTime, endTime (обязательные), trainerId, clientId,
// excludeSessionId (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	useCaseReq, err := ToUseCaseRequest(
		q.Get("startTime"),
		q.Get("endTime"),
		q.Get("trainerId"),
		q.Get("clientId"),
		q.Get("excludeSessionId"),
	)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingOwner)

		case errors.Is(err, checkAvailability.ErrInvalidTimeRange):
			h.logger.Warn("GET /availability - Invalid time range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		default:
			h.logger.Error("GET /availability - Failed to check availability: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Availability checked: available=%t, conflicts=%d",
		result.Available, len(result.Conflicts))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
