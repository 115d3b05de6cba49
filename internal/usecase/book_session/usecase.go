package book_session

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

// UseCase use case для создания тренировки персоналом
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

// Execute выполняет use case создания тренировки.
// Conflict-скан и INSERT выполняются в одной SERIALIZABLE транзакции:
// два конкурентных бронирования с пересекающимся временем не могут оба
// пройти скан и закоммититься - проигравший перечитает данные и получит
// ErrSchedulingConflict.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookSession: by=%d, trainer=%d, client=%d, start=%s",
		req.Caller.UserID, req.TrainerID, req.ClientID, req.StartTime.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookSession: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время и валидируем диапазон по правилам персонала
	now := uc.timeProvider.Now()
	rng := domain.NewTimeRange(req.StartTime, req.EndTime)

	if err := validateStaffTimeRange(rng, now); err != nil {
		uc.logger.Warn("BookSession: time range validation failed: %v", err)
		return nil, err
	}

	// 3. Проверяем тренера: существует, активен, аккаунт активен
	trainer, err := uc.resolveTrainer(ctx, req.TrainerID)
	if err != nil {
		return nil, err
	}

	// 4. Проверяем клиента и его контракт
	client, err := uc.resolveClient(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.TrainingSession

	// 5. Conflict-скан и создание в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		conflicts, err := uc.sessionRepo.FindOverlapping(txCtx, domain.OverlapQuery{
			Range:     rng,
			TrainerID: &req.TrainerID,
			ClientID:  &req.ClientID,
		})
		if err != nil {
			uc.logger.Error("BookSession: conflict scan failed: %v", err)
			return fmt.Errorf("%w: conflict scan failed: %v", ErrInternal, err)
		}

		if len(conflicts) > 0 {
			uc.logger.Warn("BookSession: %d conflicting session(s) for trainer=%d/client=%d",
				len(conflicts), req.TrainerID, req.ClientID)
			return ErrSchedulingConflict
		}

		session := &domain.TrainingSession{
			Title:       req.Title,
			Description: req.Description,
			StartTime:   req.StartTime,
			EndTime:     req.EndTime,
			TrainerID:   req.TrainerID,
			ClientID:    req.ClientID,
			Status:      domain.StatusScheduled,
			Notes:       req.Notes,
		}

		created, err := uc.sessionRepo.Create(txCtx, session)
		if err != nil {
			uc.logger.Error("BookSession: failed to create session: %v", err)
			return fmt.Errorf("%w: failed to create session: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("BookSession: successfully created session id=%d", result.ID)

	// 6. Письмо-подтверждение после коммита: ошибки логируем и глотаем,
	// успешное бронирование из-за почты не проваливается
	uc.sendConfirmation(ctx, result, client.Email, trainer.Name)

	return fromDomain(result, now), nil
}

// resolveTrainer проверяет, что тренер существует и доступен для записи
func (uc *UseCase) resolveTrainer(ctx context.Context, trainerID int64) (*trainerClient.Trainer, error) {
	trainer, err := uc.trainerClient.GetTrainer(ctx, trainerID)
	if err != nil {
		if errors.Is(err, trainerClient.ErrTrainerNotFound) {
			uc.logger.Warn("BookSession: trainer id=%d not found", trainerID)
			return nil, ErrTrainerNotFound
		}
		uc.logger.Error("BookSession: failed to get trainer id=%d: %v", trainerID, err)
		return nil, fmt.Errorf("%w: failed to get trainer: %v", ErrInternal, err)
	}

	if !trainer.IsBookable() {
		uc.logger.Warn("BookSession: trainer id=%d is inactive (active=%t, user_active=%t)",
			trainerID, trainer.Active, trainer.UserActive)
		return nil, ErrTrainerInactive
	}

	return trainer, nil
}

// resolveClient проверяет, что клиент существует и имеет подходящий контракт
func (uc *UseCase) resolveClient(ctx context.Context, clientID int64) (*memberClient.Client, error) {
	client, err := uc.memberClient.GetClient(ctx, clientID)
	if err != nil {
		if errors.Is(err, memberClient.ErrClientNotFound) {
			uc.logger.Warn("BookSession: client id=%d not found", clientID)
			return nil, ErrClientNotFound
		}
		uc.logger.Error("BookSession: failed to get client id=%d: %v", clientID, err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}

	qualifies, err := uc.memberClient.HasQualifyingContract(ctx, clientID)
	if err != nil {
		uc.logger.Error("BookSession: failed to check contract for client id=%d: %v", clientID, err)
		return nil, fmt.Errorf("%w: failed to check contract: %v", ErrInternal, err)
	}

	if !qualifies {
		uc.logger.Warn("BookSession: client id=%d has no qualifying contract", clientID)
		return nil, ErrNoActiveContract
	}

	return client, nil
}

// sendConfirmation отправляет письмо-подтверждение (best-effort)
func (uc *UseCase) sendConfirmation(ctx context.Context, s *domain.TrainingSession, email, trainerName string) {
	if email == "" {
		return
	}

	err := uc.notifier.SendBookingConfirmation(ctx, notifyservice.BookingConfirmation{
		Email:       email,
		SessionID:   s.ID,
		Title:       s.Title,
		TrainerName: trainerName,
		StartTime:   s.StartTime.Format(time.RFC3339),
		EndTime:     s.EndTime.Format(time.RFC3339),
	})
	if err != nil {
		uc.logger.Error("BookSession: confirmation email failed for session id=%d: %v", s.ID, err)
	}
}
