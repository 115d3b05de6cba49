package self_book_session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/LauraGA777/gmsf-backend-sub001/internal/domain"
	memberClient "github.com/LauraGA777/gmsf-backend-sub001/internal/integrations/memberservice"
	"github.com/LauraGA777/gmsf-backend-sub001/internal/integrations/notifyservice"
	trainerClient "github.com/LauraGA777/gmsf-backend-sub001/internal/integrations/trainerservice"
)

// UseCase use case self-service бронирования тренировки клиентом.
// Создание - единственная операция self-service: изменение и отмена всегда
// идут через персонал (см. сервис тренировок).
type UseCase struct {
	sessionRepo   SessionRepository
	trainerClient TrainerServiceClient
	memberClient  MemberServiceClient
	notifier      Notifier
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sessionRepo SessionRepository,
	trainerClient TrainerServiceClient,
	memberClient MemberServiceClient,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessionRepo:   sessionRepo,
		trainerClient: trainerClient,
		memberClient:  memberClient,
		notifier:      notifier,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет self-service бронирование.
// Клиент всегда бронирует на себя: идентификатор клиента берется из
// capability-объекта вызывающего, а не из тела запроса.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	clientID := req.Caller.UserID

	uc.logger.Info("SelfBookSession: client=%d, trainer=%d, start=%s",
		clientID, req.TrainerID, req.StartTime.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SelfBookSession: validation failed: %v", err)
		return nil, err
	}

	// 2. Строгая валидация диапазона
	now := uc.timeProvider.Now()
	rng := domain.NewTimeRange(req.StartTime, req.EndTime)

	if err := validateSelfServiceTimeRange(rng, now); err != nil {
		uc.logger.Warn("SelfBookSession: time range validation failed: %v", err)
		return nil, err
	}

	// 3. Проверяем тренера
	trainer, err := uc.trainerClient.GetTrainer(ctx, req.TrainerID)
	if err != nil {
		if errors.Is(err, trainerClient.ErrTrainerNotFound) {
			uc.logger.Warn("SelfBookSession: trainer id=%d not found", req.TrainerID)
			return nil, ErrTrainerNotFound
		}
		uc.logger.Error("SelfBookSession: failed to get trainer id=%d: %v", req.TrainerID, err)
		return nil, fmt.Errorf("%w: failed to get trainer: %v", ErrInternal, err)
	}

	if !trainer.IsBookable() {
		uc.logger.Warn("SelfBookSession: trainer id=%d is inactive", req.TrainerID)
		return nil, ErrTrainerInactive
	}

	// 4. Проверяем клиента и его контракт
	client, err := uc.memberClient.GetClient(ctx, clientID)
	if err != nil {
		if errors.Is(err, memberClient.ErrClientNotFound) {
			uc.logger.Warn("SelfBookSession: client id=%d not found", clientID)
			return nil, ErrClientNotFound
		}
		uc.logger.Error("SelfBookSession: failed to get client id=%d: %v", clientID, err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}

	qualifies, err := uc.memberClient.HasQualifyingContract(ctx, clientID)
	if err != nil {
		uc.logger.Error("SelfBookSession: failed to check contract for client id=%d: %v", clientID, err)
		return nil, fmt.Errorf("%w: failed to check contract: %v", ErrInternal, err)
	}
	if !qualifies {
		uc.logger.Warn("SelfBookSession: client id=%d has no qualifying contract", clientID)
		return nil, ErrNoActiveContract
	}

	title := defaultTitle
	if req.Title != nil && *req.Title != "" {
		title = *req.Title
	}

	// Переменная для хранения результата
	var result *domain.TrainingSession

	// 5. Conflict-скан и создание в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		conflicts, err := uc.sessionRepo.FindOverlapping(txCtx, domain.OverlapQuery{
			Range:     rng,
			TrainerID: &req.TrainerID,
			ClientID:  &clientID,
		})
		if err != nil {
			uc.logger.Error("SelfBookSession: conflict scan failed: %v", err)
			return fmt.Errorf("%w: conflict scan failed: %v", ErrInternal, err)
		}

		if len(conflicts) > 0 {
			uc.logger.Warn("SelfBookSession: %d conflicting session(s) for trainer=%d/client=%d",
				len(conflicts), req.TrainerID, clientID)
			return ErrSchedulingConflict
		}

		session := &domain.TrainingSession{
			Title:     title,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
			TrainerID: req.TrainerID,
			ClientID:  clientID,
			Status:    domain.StatusScheduled,
			Notes:     req.Notes,
		}

		created, err := uc.sessionRepo.Create(txCtx, session)
		if err != nil {
			uc.logger.Error("SelfBookSession: failed to create session: %v", err)
			return fmt.Errorf("%w: failed to create session: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("SelfBookSession: successfully created session id=%d for client=%d", result.ID, clientID)

	// 6. Письмо-подтверждение best-effort, ошибка не влияет на результат
	if client.Email != "" {
		err := uc.notifier.SendBookingConfirmation(ctx, notifyservice.BookingConfirmation{
			Email:       client.Email,
			SessionID:   result.ID,
			Title:       result.Title,
			TrainerName: trainer.Name,
			StartTime:   result.StartTime.Format(time.RFC3339),
			EndTime:     result.EndTime.Format(time.RFC3339),
		})
		if err != nil {
			uc.logger.Error("SelfBookSession: confirmation email failed for session id=%d: %v", result.ID, err)
		}
	}

	return fromDomain(result, now), nil
}
