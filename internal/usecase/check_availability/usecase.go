package check_availability

import (
	"context"
	"fmt"

	"github.com/LauraGA777/gmsf-backend-sub001/internal/domain"
)

// UseCase use case для проверки доступности временного интервала.
// Это информационный скан без блокировок: ответ "свободно" не резервирует
// интервал, финальная проверка все равно выполняется при бронировании.
type UseCase struct {
	sessionRepo  SessionRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(sessionRepo SessionRepository, logger Logger) *UseCase {
	return &UseCase{
		sessionRepo:  sessionRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет проверку доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.TrainerID == nil && req.ClientID == nil {
		return nil, fmt.Errorf("%w: trainerID or clientID is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return nil, fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	rng := domain.NewTimeRange(req.StartTime, req.EndTime)
	if err := rng.Validate(); err != nil {
		return nil, fmt.Errorf("%w: end must be after start", ErrInvalidTimeRange)
	}

	// 2. Conflict-скан без транзакции
	sessions, err := uc.sessionRepo.FindOverlapping(ctx, domain.OverlapQuery{
		Range:     rng,
		TrainerID: req.TrainerID,
		ClientID:  req.ClientID,
		ExcludeID: req.ExcludeSessionID,
	})
	if err != nil {
		uc.logger.Error("CheckAvailability: conflict scan failed: %v", err)
		return nil, fmt.Errorf("%w: conflict scan failed: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()

	uc.logger.Info("CheckAvailability: range=[%s, %s), conflicts=%d",
		req.StartTime.Format(domain.TimeFormat), req.EndTime.Format(domain.TimeFormat), len(sessions))

	return fromDomain(sessions, now), nil
}
