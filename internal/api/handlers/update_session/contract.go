package update_session

import (
	"context"

	updateSession "github.com/LauraGA777/gmsf-backend-sub001/internal/usecase/update_session"
)

type UpdateSessionUseCase interface {
	Execute(ctx context.Context, req *updateSession.Request) (*updateSession.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
