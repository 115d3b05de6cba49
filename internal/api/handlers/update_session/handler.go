package update_session

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/LauraGA777/gmsf-backend-sub001/internal/api/handlers"
	updateSession "github.com/LauraGA777/gmsf-backend-sub001/internal/usecase/update_session"
)

const (
	msgInvalidSessionID   = "некорректный ID тренировки"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается ISO 8601"
	msgMissingCaller      = "отсутствует идентификатор пользователя"
	msgPolicyDenied       = "изменение тренировки доступно только через администратора"
	msgNotFound           = "тренировка не найдена"
	msgNotModifiable      = "тренировка завершена или отменена и не может быть изменена"
	msgTrainerNotFound    = "тренер не найден"
	msgTrainerInactive    = "тренер недоступен для записи"
	msgClientNotFound     = "клиент не найден"
	msgNoActiveContract   = "у клиента нет активного контракта"
	msgInvalidTimeRange   = "некорректный временной диапазон"
	msgSchedulingConflict = "выбранное время пересекается с другой тренировкой"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	useCase UpdateSessionUseCase
	logger  Logger
}

func NewHandler(useCase UpdateSessionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/sessions/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionIDStr := vars["sessionId"]

	sessionID, err := strconv.ParseInt(sessionIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /sessions/{id} - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	caller, ok := handlers.CallerFromContext(r.Context())
	if !ok {
		h.logger.Warn("PUT /sessions/{id} - Missing caller in context")
		handlers.RespondUnauthorized(w, msgMissingCaller)
		return
	}

	var req UpdateSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sessions/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(caller, sessionID)
	if err != nil {
		h.logger.Warn("PUT /sessions/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateSession.ErrPolicyDenied):
			h.logger.Warn("PUT /sessions/{id} - Policy denied: session_id=%d, user_id=%d", sessionID, caller.UserID)
			handlers.RespondForbidden(w, msgPolicyDenied)

		case errors.Is(err, updateSession.ErrSessionNotFound):
			h.logger.Warn("PUT /sessions/{id} - Session not found: session_id=%d", sessionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateSession.ErrSessionNotModifiable):
			h.logger.Warn("PUT /sessions/{id} - Session not modifiable: session_id=%d", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgNotModifiable)

		case errors.Is(err, updateSession.ErrSchedulingConflict):
			h.logger.Warn("PUT /sessions/{id} - Scheduling conflict: session_id=%d", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgSchedulingConflict)

		case errors.Is(err, updateSession.ErrTrainerNotFound):
			h.logger.Warn("PUT /sessions/{id} - Trainer not found: session_id=%d", sessionID)
			handlers.RespondNotFound(w, msgTrainerNotFound)

		case errors.Is(err, updateSession.ErrTrainerInactive):
			h.logger.Warn("PUT /sessions/{id} - Trainer inactive: session_id=%d", sessionID)
			handlers.RespondForbidden(w, msgTrainerInactive)

		case errors.Is(err, updateSession.ErrClientNotFound):
			h.logger.Warn("PUT /sessions/{id} - Client not found: session_id=%d", sessionID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, updateSession.ErrNoActiveContract):
			h.logger.Warn("PUT /sessions/{id} - No active contract: session_id=%d", sessionID)
			handlers.RespondForbidden(w, msgNoActiveContract)

		case errors.Is(err, updateSession.ErrInvalidTimeRange):
			h.logger.Warn("PUT /sessions/{id} - Invalid time range: session_id=%d", sessionID)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, updateSession.ErrInvalidInput):
			h.logger.Warn("PUT /sessions/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /sessions/{id} - Failed to update session: session_id=%d, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /sessions/{id} - Session updated successfully: session_id=%d", sessionID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
