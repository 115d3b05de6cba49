package cancel_session

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
	msgPolicyDenied     = "отмена тренировки доступна только через администратора"
	msgNotFound         = "тренировка не найдена"
	msgCannotCancel     = "завершенная тренировка не может быть отменена"
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

// Handle PATCH /api/v1/sessions/{sessionId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionIDStr := vars["sessionId"]

	sessionID, err := strconv.ParseInt(sessionIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /sessions/{id}/cancel - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	caller, ok := handlers.CallerFromContext(r.Context())
	if !ok {
		h.logger.Warn("PATCH /sessions/{id}/cancel - Missing caller in context")
		handlers.RespondUnauthorized(w, msgMissingCaller)
		return
	}

	err = h.service.Cancel(r.Context(), sessionID, caller)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrPolicyDenied):
			h.logger.Warn("PATCH /sessions/{id}/cancel - Policy denied: session_id=%d, user_id=%d",
				sessionID, caller.UserID)
			handlers.RespondForbidden(w, msgPolicyDenied)

		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("PATCH /sessions/{id}/cancel - Session not found: session_id=%d", sessionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, sessions.ErrCannotCancel):
			h.logger.Warn("PATCH /sessions/{id}/cancel - Cannot cancel: session_id=%d", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgCannotCancel)

		default:
			h.logger.Error("PATCH /sessions/{id}/cancel - Failed to cancel session: session_id=%d, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /sessions/{id}/cancel - Session cancelled successfully: session_id=%d, user_id=%d",
		sessionID, caller.UserID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
