package check_availability

import (
	"context"
	"time"

	"github.com/LauraGA777/gmsf-backend-sub001/internal/domain"
)

// SessionRepository интерфейс репозитория тренировок
type SessionRepository interface {
	FindOverlapping(ctx context.Context, q domain.OverlapQuery) ([]*domain.TrainingSession, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
