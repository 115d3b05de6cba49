package list_sessions

import (
	"errors"
	"net/http"

	"github.com/LauraGA777/gmsf-backend-sub001/internal/api/handlers"
	"github.com/LauraGA777/gmsf-backend-sub001/internal/service/sessions"
)

const (
	msgMissingCaller = "отсутствует идентификатор пользователя"
	msgInvalidParams = "некорректные параметры запроса"
)

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/sessions
// Query params: page, limit, search, status, trainerId, clientId, dateFrom, dateTo
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	caller, ok := handlers.CallerFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /sessions - Missing caller in context")
		handlers.RespondUnauthorized(w, msgMissingCaller)
		return
	}

	q := r.URL.Query()
	serviceReq, err := ToServiceRequest(
		caller,
		q.Get("page"),
		q.Get("limit"),
		q.Get("search"),
		q.Get("status"),
		q.Get("trainerId"),
		q.Get("clientId"),
		q.Get("dateFrom"),
		q.Get("dateTo"),
	)
	if err != nil {
		h.logger.Warn("GET /sessions - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrInvalidInput):
			h.logger.Warn("GET /sessions - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /sessions - Failed to list sessions: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /sessions - Sessions retrieved successfully: count=%d, total=%d",
		len(result.Sessions), result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
