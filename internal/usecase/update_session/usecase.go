package update_session

import (
	"context"
	"errors"
	"fmt"

	"github.com/LauraGA777/gmsf-backend-sub001/internal/domain"
	storage "github.com/LauraGA777/gmsf-backend-sub001/internal/infra/storage/session"
	memberClient "github.com/LauraGA777/gmsf-backend-sub001/internal/integrations/memberservice"
	trainerClient "github.com/LauraGA777/gmsf-backend-sub001/internal/integrations/trainerservice"
)

// UseCase use case для изменения тренировки персоналом
type UseCase struct {
	sessionRepo   SessionRepository
	trainerClient TrainerServiceClient
	memberClient  MemberServiceClient
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sessionRepo SessionRepository,
	trainerClient TrainerServiceClient,
	memberClient MemberServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessionRepo:   sessionRepo,
		trainerClient: trainerClient,
		memberClient:  memberClient,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case изменения тренировки.
// Перенос по времени проходит тот же conflict-скан, что и создание, с
// исключением самой тренировки из скана. Скан и UPDATE выполняются в одной
// SERIALIZABLE транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateSession: by=%d, session=%d", req.Caller.UserID, req.SessionID)

	// 1. Self-service правка запрещена безусловно, до любых проверок
	// существования и владения
	if req.Caller.IsClient() {
		uc.logger.Warn("UpdateSession: client id=%d attempted to modify session id=%d",
			req.Caller.UserID, req.SessionID)
		return nil, ErrPolicyDenied
	}

	// 2. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateSession: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 3. Проверяем нового тренера, если он меняется
	if req.TrainerID != nil {
		if err := uc.checkTrainer(ctx, *req.TrainerID); err != nil {
			return nil, err
		}
	}

	// 4. Проверяем нового клиента, если он меняется
	if req.ClientID != nil {
		if err := uc.checkClient(ctx, *req.ClientID); err != nil {
			return nil, err
		}
	}

	// Переменная для хранения результата
	var result *domain.TrainingSession

	// 5. Чтение, conflict-скан и обновление в одной сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		session, err := uc.sessionRepo.GetByID(txCtx, req.SessionID)
		if err != nil {
			if errors.Is(err, storage.ErrSessionNotFound) {
				return ErrSessionNotFound
			}
			uc.logger.Error("UpdateSession: failed to get session id=%d: %v", req.SessionID, err)
			return fmt.Errorf("%w: failed to get session: %v", ErrInternal, err)
		}

		if !session.CanBeMutated(now) {
			uc.logger.Warn("UpdateSession: session id=%d is not modifiable (status=%s)",
				session.ID, session.EffectiveStatus(now))
			return ErrSessionNotModifiable
		}

		timesChanged := applyChanges(session, req)

		// Новый диапазон проходит правила персонала только при переносе,
		// иначе правка заголовка у идущей тренировки была бы невозможна
		if timesChanged {
			if err := validateStaffTimeRange(session.Range(), now); err != nil {
				uc.logger.Warn("UpdateSession: time range validation failed: %v", err)
				return err
			}
		}

		if timesChanged || req.TrainerID != nil || req.ClientID != nil {
			conflicts, err := uc.sessionRepo.FindOverlapping(txCtx, domain.OverlapQuery{
				Range:     session.Range(),
				TrainerID: &session.TrainerID,
				ClientID:  &session.ClientID,
				ExcludeID: &session.ID,
			})
			if err != nil {
				uc.logger.Error("UpdateSession: conflict scan failed: %v", err)
				return fmt.Errorf("%w: conflict scan failed: %v", ErrInternal, err)
			}

			if len(conflicts) > 0 {
				uc.logger.Warn("UpdateSession: %d conflicting session(s) for session id=%d",
					len(conflicts), session.ID)
				return ErrSchedulingConflict
			}
		}

		if err := uc.sessionRepo.Update(txCtx, session); err != nil {
			if errors.Is(err, storage.ErrSessionNotFound) {
				return ErrSessionNotFound
			}
			uc.logger.Error("UpdateSession: failed to update session id=%d: %v", session.ID, err)
			return fmt.Errorf("%w: failed to update session: %v", ErrInternal, err)
		}

		// Перечитываем строку, чтобы вернуть актуальный updated_at
		updated, err := uc.sessionRepo.GetByID(txCtx, session.ID)
		if err != nil {
			uc.logger.Error("UpdateSession: failed to reload session id=%d: %v", session.ID, err)
			return fmt.Errorf("%w: failed to reload session: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateSession: successfully updated session id=%d", result.ID)

	return fromDomain(result, now), nil
}

// applyChanges переносит непустые поля запроса на тренировку и сообщает,
// изменился ли временной диапазон
func applyChanges(s *domain.TrainingSession, req *Request) bool {
	if req.Title != nil {
		s.Title = *req.Title
	}
	if req.Description != nil {
		s.Description = req.Description
	}
	if req.Notes != nil {
		s.Notes = req.Notes
	}
	if req.TrainerID != nil {
		s.TrainerID = *req.TrainerID
	}
	if req.ClientID != nil {
		s.ClientID = *req.ClientID
	}

	if req.StartTime != nil && req.EndTime != nil {
		changed := !s.StartTime.Equal(*req.StartTime) || !s.EndTime.Equal(*req.EndTime)
		s.StartTime = *req.StartTime
		s.EndTime = *req.EndTime
		return changed
	}

	return false
}

// checkTrainer проверяет, что новый тренер существует и доступен для записи
func (uc *UseCase) checkTrainer(ctx context.Context, trainerID int64) error {
	trainer, err := uc.trainerClient.GetTrainer(ctx, trainerID)
	if err != nil {
		if errors.Is(err, trainerClient.ErrTrainerNotFound) {
			uc.logger.Warn("UpdateSession: trainer id=%d not found", trainerID)
			return ErrTrainerNotFound
		}
		uc.logger.Error("UpdateSession: failed to get trainer id=%d: %v", trainerID, err)
		return fmt.Errorf("%w: failed to get trainer: %v", ErrInternal, err)
	}

	if !trainer.IsBookable() {
		uc.logger.Warn("UpdateSession: trainer id=%d is inactive", trainerID)
		return ErrTrainerInactive
	}

	return nil
}

// checkClient проверяет, что новый клиент существует и имеет подходящий контракт
func (uc *UseCase) checkClient(ctx context.Context, clientID int64) error {
	if _, err := uc.memberClient.GetClient(ctx, clientID); err != nil {
		if errors.Is(err, memberClient.ErrClientNotFound) {
			uc.logger.Warn("UpdateSession: client id=%d not found", clientID)
			return ErrClientNotFound
		}
		uc.logger.Error("UpdateSession: failed to get client id=%d: %v", clientID, err)
		return fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}

	qualifies, err := uc.memberClient.HasQualifyingContract(ctx, clientID)
	if err != nil {
		uc.logger.Error("UpdateSession: failed to check contract for client id=%d: %v", clientID, err)
		return fmt.Errorf("%w: failed to check contract: %v", ErrInternal, err)
	}
	if !qualifies {
		uc.logger.Warn("UpdateSession: client id=%d has no qualifying contract", clientID)
		return ErrNoActiveContract
	}

	return nil
}
