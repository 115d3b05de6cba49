package get_trainer_schedule

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
	msgInvalidTrainerID = "некорректный ID тренера"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidPeriod    = "некорректный период, ожидается day, week или month"
	msgMissingCaller    = "отсутствует идентификатор пользователя"
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

// Handle GET /api/v1/trainers/{trainerId}/schedule
// Query params: period (day/week/month, по умолчанию day), date (по
// умолчанию сегодня)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	trainerIDStr := vars["trainerId"]

	trainerID, err := strconv.ParseInt(trainerIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /trainers/{id}/schedule - Invalid trainer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTrainerID)
		return
	}

	caller, ok := handlers.CallerFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /trainers/{id}/schedule - Missing caller in context")
		handlers.RespondUnauthorized(w, msgMissingCaller)
		return
	}

	period := models.SchedulePeriod(r.URL.Query().Get("period"))

	date := time.Now()
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		date, err = time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /trainers/{id}/schedule - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
	}

	result, err := h.service.GetTrainerSchedule(r.Context(), trainerID, period, date, caller)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrInvalidPeriod):
			h.logger.Warn("GET /trainers/{id}/schedule - Invalid period: %q", period)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /trainers/{id}/schedule - Failed to get schedule: trainer_id=%d, error=%v",
				trainerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /trainers/{id}/schedule - Schedule retrieved successfully: trainer_id=%d, count=%d",
		trainerID, len(result.Sessions))
	handlers.RespondJSON(w, http.StatusOK, result)
}
