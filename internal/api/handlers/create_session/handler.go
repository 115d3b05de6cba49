package create_session

import (
	"errors"
	"net/http"

	"github.com/LauraGA777/gmsf-backend-sub001/internal/api/handlers"
	bookSession "github.com/LauraGA777/gmsf-backend-sub001/internal/usecase/book_session"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается ISO 8601"
	msgMissingCaller      = "отсутствует идентификатор пользователя"
	msgStaffOnly          = "бронирование за другого клиента доступно только персоналу"
	msgTrainerNotFound    = "тренер не найден"
	msgTrainerInactive    = "тренер недоступен для записи"
	msgClientNotFound     = "клиент не найден"
	msgNoActiveContract   = "у клиента нет активного контракта"
	msgInvalidTimeRange   = "некорректный временной диапазон"
	msgSchedulingConflict = "выбранное время пересекается с другой тренировкой"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	useCase BookSessionUseCase
	logger  Logger
}

func NewHandler(useCase BookSessionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	caller, ok := handlers.CallerFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /sessions - Missing caller in context")
		handlers.RespondUnauthorized(w, msgMissingCaller)
		return
	}

	// Клиенты бронируют только через self-service маршрут
	if caller.IsClient() {
		h.logger.Warn("POST /sessions - Client id=%d attempted staff booking", caller.UserID)
		handlers.RespondForbidden(w, msgStaffOnly)
		return
	}

	var req CreateSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(caller)
	if err != nil {
		h.logger.Warn("POST /sessions - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, bookSession.ErrSchedulingConflict):
			h.logger.Warn("POST /sessions - Scheduling conflict: trainer_id=%d, client_id=%d", req.TrainerID, req.ClientID)
			handlers.RespondError(w, http.StatusConflict, msgSchedulingConflict)

		case errors.Is(err, bookSession.ErrTrainerNotFound):
			h.logger.Warn("POST /sessions - Trainer not found: trainer_id=%d", req.TrainerID)
			handlers.RespondNotFound(w, msgTrainerNotFound)

		case errors.Is(err, bookSession.ErrTrainerInactive):
			h.logger.Warn("POST /sessions - Trainer inactive: trainer_id=%d", req.TrainerID)
			handlers.RespondForbidden(w, msgTrainerInactive)

		case errors.Is(err, bookSession.ErrClientNotFound):
			h.logger.Warn("POST /sessions - Client not found: client_id=%d", req.ClientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, bookSession.ErrNoActiveContract):
			h.logger.Warn("POST /sessions - No active contract: client_id=%d", req.ClientID)
			handlers.RespondForbidden(w, msgNoActiveContract)

		case errors.Is(err, bookSession.ErrInvalidTimeRange):
			h.logger.Warn("POST /sessions - Invalid time range: trainer_id=%d, client_id=%d", req.TrainerID, req.ClientID)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, bookSession.ErrInvalidInput):
			h.logger.Warn("POST /sessions - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /sessions - Failed to create session: trainer_id=%d, client_id=%d, error=%v",
				req.TrainerID, req.ClientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions - Session created successfully: session_id=%d, trainer_id=%d, client_id=%d",
		result.ID, result.TrainerID, result.ClientID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
