package get_trainer_schedule

import (
	"context"
	"time"

	"github.com/LauraGA777/gmsf-backend-sub001/internal/domain"
	"github.com/LauraGA777/gmsf-backend-sub001/internal/service/sessions/models"
)

type SessionService interface {
	GetTrainerSchedule(ctx context.Context, trainerID int64, period models.SchedulePeriod, date time.Time, caller domain.Caller) (*models.SessionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
