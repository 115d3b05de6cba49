package get_client_schedule

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/LauraGA777/gmsf-backend-sub001/internal/api/handlers"
	"github.com/LauraGA777/gmsf-backend-sub001/internal/domain"
	"github.com/LauraGA777/gmsf-backend-sub001/internal/service/sessions"
	"github.com/LauraGA777/gmsf-backend-sub001/internal/service/sessions/models"
)

const (
	msgInvalidClientID = "некорректный ID клиента"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidPeriod   = "некорректный период, ожидается day, week или month"
	msgMissingCaller   = "отсутствует идентификатор пользователя"
	msgForbidden       = "доступ запрещен"
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

// Handle GET /api/v1/clients/{clientId}/schedule
// Query params: period (day/week/month, по умолчанию day), date (по
// умолчанию сегодня)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	clientIDStr := vars["clientId"]

	clientID, err := strconv.ParseInt(clientIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /clients/{id}/schedule - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	caller, ok := handlers.CallerFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /clients/{id}/schedule - Missing caller in context")
		handlers.RespondUnauthorized(w, msgMissingCaller)
		return
	}

	period := models.SchedulePeriod(r.URL.Query().Get("period"))

	date := time.Now()
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		date, err = time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /clients/{id}/schedule - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
	}

	result, err := h.service.GetClientSchedule(r.Context(), clientID, period, date, caller)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrAccessDenied):
			h.logger.Warn("GET /clients/{id}/schedule - Access denied: client_id=%d, user_id=%d",
				clientID, caller.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, sessions.ErrInvalidPeriod):
			h.logger.Warn("GET /clients/{id}/schedule - Invalid period: %q", period)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /clients/{id}/schedule - Failed to get schedule: client_id=%d, error=%v",
				clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /clients/{id}/schedule - Schedule retrieved successfully: client_id=%d, count=%d",
		clientID, len(result.Sessions))
	handlers.RespondJSON(w, http.StatusOK, result)
}
