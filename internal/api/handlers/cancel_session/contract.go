package cancel_session

import (
	"context"

	"github.com/LauraGA777/gmsf-backend-sub001/internal/domain"
)

type SessionService interface {
	Cancel(ctx context.Context, id int64, caller domain.Caller) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
