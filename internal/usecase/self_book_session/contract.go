package self_book_session

import (
	"context"
	"time"

	"github.com/LauraGA777/gmsf-backend-sub001/internal/domain"
	"github.com/LauraGA777/gmsf-backend-sub001/internal/integrations/memberservice"
	"github.com/LauraGA777/gmsf-backend-sub001/internal/integrations/notifyservice"
	"github.com/LauraGA777/gmsf-backend-sub001/internal/integrations/trainerservice"
)

// SessionRepository интерфейс репозитория тренировок
type SessionRepository interface {
	Create(ctx context.Context, s *domain.TrainingSession) (*domain.TrainingSession, error)
	FindOverlapping(ctx context.Context, q domain.OverlapQuery) ([]*domain.TrainingSession, error)
}

// TrainerServiceClient интерфейс клиента для TrainerService
type TrainerServiceClient interface {
	GetTrainer(ctx context.Context, trainerID int64) (*trainerservice.Trainer, error)
}

// MemberServiceClient интерфейс клиента для MemberService
type MemberServiceClient interface {
	GetClient(ctx context.Context, clientID int64) (*memberservice.Client, error)
	HasQualifyingContract(ctx context.Context, clientID int64) (bool, error)
}

// Notifier интерфейс клиента для NotifyService
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, confirmation notifyservice.BookingConfirmation) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
