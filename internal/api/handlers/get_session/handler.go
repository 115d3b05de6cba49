package get_session

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/LauraGA777/gmsf-backend-sub001/internal/api/handlers"
	"github.com/LauraGA777/gmsf-backend-sub001/internal/service/sessions"
)

const (
	msgInvalidSessionID = "некорректный ID тренировки"
	msgMissingCaller    = "отсутствует идентификатор пользователя"
	msgNotFound         = "тренировка не найдена"
	msgForbidden        = "доступ запрещен"
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

// Handle GET /api/v1/sessions/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionIDStr := vars["sessionId"]

	sessionID, err := strconv.ParseInt(sessionIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /sessions/{id} - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	caller, ok := handlers.CallerFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /sessions/{id} - Missing caller in context")
		handlers.RespondUnauthorized(w, msgMissingCaller)
		return
	}

	result, err := h.service.GetByID(r.Context(), sessionID, caller)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("GET /sessions/{id} - Session not found: session_id=%d", sessionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, sessions.ErrAccessDenied):
			h.logger.Warn("GET /sessions/{id} - Access denied: session_id=%d, user_id=%d", sessionID, caller.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /sessions/{id} - Failed to get session: session_id=%d, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /sessions/{id} - Session retrieved successfully: session_id=%d", sessionID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
