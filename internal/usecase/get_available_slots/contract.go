package get_available_slots

import (
	"context"
	"time"

	"github.com/LauraGA777/gmsf-backend-sub001/internal/domain"
	"github.com/LauraGA777/gmsf-backend-sub001/internal/integrations/trainerservice"
)

// SessionRepository интерфейс репозитория тренировок
type SessionRepository interface {
	ListByTrainersAndRange(ctx context.Context, trainerIDs []int64, rng domain.TimeRange) ([]*domain.TrainingSession, error)
}

// TrainerServiceClient интерфейс клиента для TrainerService
type TrainerServiceClient interface {
	GetTrainer(ctx context.Context, trainerID int64) (*trainerservice.Trainer, error)
	ListActiveTrainers(ctx context.Context) ([]trainerservice.Trainer, error)
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
