package self_create_session

import (
	"errors"
	"net/http"

	"github.com/LauraGA777/gmsf-backend-sub001/internal/api/handlers"
	selfBookSession "github.com/LauraGA777/gmsf-backend-sub001/internal/usecase/self_book_session"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается ISO 8601"
	msgMissingCaller      = "отсутствует идентификатор пользователя"
	msgTrainerNotFound    = "тренер не найден"
	msgTrainerInactive    = "тренер недоступен для записи"
	msgClientNotFound     = "клиент не найден"
	msgNoActiveContract   = "у вас нет активного контракта"
	msgInvalidTimeRange   = "слот должен длиться ровно час, начинаться на границе часа в рабочее время, не раньше чем через 2 часа и не дальше чем за 30 дней"
	msgSchedulingConflict = "выбранное время пересекается с другой тренировкой"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	useCase SelfBookSessionUseCase
	logger  Logger
}

func NewHandler(useCase SelfBookSessionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/my/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	caller, ok := handlers.CallerFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /my/sessions - Missing caller in context")
		handlers.RespondUnauthorized(w, msgMissingCaller)
		return
	}

	var req SelfCreateSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /my/sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(caller)
	if err != nil {
		h.logger.Warn("POST /my/sessions - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, selfBookSession.ErrSchedulingConflict):
			h.logger.Warn("POST /my/sessions - Scheduling conflict: client_id=%d, trainer_id=%d",
				caller.UserID, req.TrainerID)
			handlers.RespondError(w, http.StatusConflict, msgSchedulingConflict)

		case errors.Is(err, selfBookSession.ErrTrainerNotFound):
			h.logger.Warn("POST /my/sessions - Trainer not found: trainer_id=%d", req.TrainerID)
			handlers.RespondNotFound(w, msgTrainerNotFound)

		case errors.Is(err, selfBookSession.ErrTrainerInactive):
			h.logger.Warn("POST /my/sessions - Trainer inactive: trainer_id=%d", req.TrainerID)
			handlers.RespondForbidden(w, msgTrainerInactive)

		case errors.Is(err, selfBookSession.ErrClientNotFound):
			h.logger.Warn("POST /my/sessions - Client not found: client_id=%d", caller.UserID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, selfBookSession.ErrNoActiveContract):
			h.logger.Warn("POST /my/sessions - No active contract: client_id=%d", caller.UserID)
			handlers.RespondForbidden(w, msgNoActiveContract)

		case errors.Is(err, selfBookSession.ErrInvalidTimeRange):
			h.logger.Warn("POST /my/sessions - Invalid time range: client_id=%d", caller.UserID)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, selfBookSession.ErrInvalidInput):
			h.logger.Warn("POST /my/sessions - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /my/sessions - Failed to create session: client_id=%d, error=%v",
				caller.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /my/sessions - Session created successfully: session_id=%d, client_id=%d",
		result.ID, result.ClientID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
