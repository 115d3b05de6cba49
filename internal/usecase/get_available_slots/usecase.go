package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/LauraGA777/gmsf-backend-sub001/internal/domain"
	trainerClient "github.com/LauraGA777/gmsf-backend-sub001/internal/integrations/trainerservice"
)

// UseCase use case для получения свободных часовых слотов на день
type UseCase struct {
	sessionRepo   SessionRepository
	trainerClient TrainerServiceClient
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(sessionRepo SessionRepository, trainerClient TrainerServiceClient, logger Logger) *UseCase {
	return &UseCase{
		sessionRepo:   sessionRepo,
		trainerClient: trainerClient,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case получения свободных слотов.
// Ответ - снимок на момент запроса, слот ничем не резервируется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.TrainerID != nil && *req.TrainerID <= 0 {
		return nil, fmt.Errorf("%w: trainerID must be positive", ErrInvalidInput)
	}

	// 2. Определяем тренеров, по которым считаем занятость
	trainerIDs, names, err := uc.resolveTrainers(ctx, req.TrainerID)
	if err != nil {
		return nil, err
	}

	now := uc.timeProvider.Now()

	if len(trainerIDs) == 0 {
		uc.logger.Info("GetAvailableSlots: no bookable trainers, date=%s", req.Date.Format(domain.DateFormat))
		return fromDomain(req.Date, nil, names), nil
	}

	// 3. Забираем тренировки за рабочий день одним запросом
	dayRange := businessDayRange(req.Date)
	sessions, err := uc.sessionRepo.ListByTrainersAndRange(ctx, trainerIDs, dayRange)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list sessions: %v", err)
		return nil, fmt.Errorf("%w: failed to list sessions: %v", ErrInternal, err)
	}

	// 4. Раскладываем занятость по слотам
	slots := buildFreeSlots(req.Date, now, trainerIDs, sessions)

	uc.logger.Info("GetAvailableSlots: date=%s, trainers=%d, slots=%d",
		req.Date.Format(domain.DateFormat), len(trainerIDs), len(slots))

	return fromDomain(req.Date, slots, names), nil
}

// resolveTrainers возвращает список ID тренеров для расчета и их имена.
// Для конкретного тренера он обязан существовать и быть доступным для записи.
func (uc *UseCase) resolveTrainers(ctx context.Context, trainerID *int64) ([]int64, map[int64]string, error) {
	if trainerID != nil {
		trainer, err := uc.trainerClient.GetTrainer(ctx, *trainerID)
		if err != nil {
			if errors.Is(err, trainerClient.ErrTrainerNotFound) {
				uc.logger.Warn("GetAvailableSlots: trainer id=%d not found", *trainerID)
				return nil, nil, ErrTrainerNotFound
			}
			uc.logger.Error("GetAvailableSlots: failed to get trainer id=%d: %v", *trainerID, err)
			return nil, nil, fmt.Errorf("%w: failed to get trainer: %v", ErrInternal, err)
		}

		if !trainer.IsBookable() {
			uc.logger.Warn("GetAvailableSlots: trainer id=%d is inactive", *trainerID)
			return nil, nil, ErrTrainerInactive
		}

		return []int64{trainer.ID}, map[int64]string{trainer.ID: trainer.Name}, nil
	}

	trainers, err := uc.trainerClient.ListActiveTrainers(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list trainers: %v", err)
		return nil, nil, fmt.Errorf("%w: failed to list trainers: %v", ErrInternal, err)
	}

	ids := make([]int64, 0, len(trainers))
	names := make(map[int64]string, len(trainers))
	for _, t := range trainers {
		ids = append(ids, t.ID)
		names[t.ID] = t.Name
	}

	return ids, names, nil
}

// businessDayRange интервал, покрывающий все слоты даты: от открытия до
// конца последнего слота
func businessDayRange(date time.Time) domain.TimeRange {
	open := time.Date(date.Year(), date.Month(), date.Day(), domain.BusinessDayOpenHour, 0, 0, 0, date.Location())
	end := time.Date(date.Year(), date.Month(), date.Day(), domain.BusinessDayLastSlotHour, 0, 0, 0, date.Location()).Add(domain.SlotDuration)
	return domain.TimeRange{Start: open, End: end}
}
