package handlers

import (
	"context"

	"github.com/LauraGA777/gmsf-backend-sub001/internal/domain"
)

type callerKey struct{}

// WithCaller кладет capability-объект вызывающего в context
func WithCaller(ctx context.Context, caller domain.Caller) context.Context {
	return context.WithValue(ctx, callerKey{}, caller)
}

// CallerFromContext достает вызывающего из context.
// Второе значение false означает, что запрос не прошел через Auth middleware.
func CallerFromContext(ctx context.Context) (domain.Caller, bool) {
	caller, ok := ctx.Value(callerKey{}).(domain.Caller)
	return caller, ok
}
