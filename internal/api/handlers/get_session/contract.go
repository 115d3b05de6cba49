package get_session

import (
	"context"

	"github.com/LauraGA777/gmsf-backend-sub001/internal/domain"
	"github.com/LauraGA777/gmsf-backend-sub001/internal/service/sessions/models"
)

type SessionService interface {
	GetByID(ctx context.Context, id int64, caller domain.Caller) (*models.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
