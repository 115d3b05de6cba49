package self_create_session

import (
	"context"

	selfBookSession "github.com/LauraGA777/gmsf-backend-sub001/internal/usecase/self_book_session"
)

type SelfBookSessionUseCase interface {
	Execute(ctx context.Context, req *selfBookSession.Request) (*selfBookSession.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
