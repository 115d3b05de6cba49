package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/LauraGA777/gmsf-backend-sub001/internal/domain"
	sessionRepo "github.com/LauraGA777/gmsf-backend-sub001/internal/infra/storage/session"
	"github.com/LauraGA777/gmsf-backend-sub001/internal/service/sessions/models"
)

// Service сервис для чтения и отмены тренировок.
// Статус на всех путях чтения - проекция от текущего времени, хранимое
// значение никогда не возвращается напрямую и не перезаписывается чтением.
type Service struct {
	sessionRepo  SessionRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса тренировок
func NewService(sessionRepo SessionRepository, logger Logger) *Service {
	return &Service{
		sessionRepo:  sessionRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает тренировку по ID.
// Клиент может видеть только собственные тренировки, персонал - любые.
func (s *Service) GetByID(ctx context.Context, id int64, caller domain.Caller) (*models.SessionResponse, error) {
	s.logger.Info("GetByID: fetching session id=%d for user=%d role=%s", id, caller.UserID, caller.Role)

	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			s.logger.Warn("GetByID: session id=%d not found", id)
			return nil, ErrSessionNotFound
		}
		s.logger.Error("GetByID: repository error for session id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if caller.IsClient() && session.ClientID != caller.UserID {
		s.logger.Warn("GetByID: access denied for user=%d to session id=%d", caller.UserID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainSession(session, s.timeProvider.Now()), nil
}

// List получает список тренировок с фильтрацией и пагинацией.
// Клиентские вызовы автоматически ограничены их собственными тренировками.
func (s *Service) List(ctx context.Context, req *models.ListSessionsRequest) (*models.SessionListResponse, error) {
	s.logger.Info("List: fetching sessions for user=%d role=%s page=%d", req.Caller.UserID, req.Caller.Role, req.Page)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter for user=%d: %v", req.Caller.UserID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	sessions, total, err := s.sessionRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	page := filter.Page
	if page < 1 {
		page = domain.DefaultPage
	}
	limit := filter.Limit
	if limit < 1 {
		limit = domain.DefaultLimit
	}
	if limit > domain.MaxLimit {
		limit = domain.MaxLimit
	}

	s.logger.Info("List: fetched %d of %d sessions", len(sessions), total)
	return models.FromDomainSessionList(sessions, total, page, limit, s.timeProvider.Now()), nil
}

// Cancel отменяет тренировку (soft delete - статус меняется, строка остается).
//
// Self-service путь запрещен безусловно: клиент получает ErrPolicyDenied
// даже для собственной тренировки в далеком будущем - любые изменения
// расписания проходят через персонал. Проверка стоит ДО проверки владения
// и состояния, чтобы правило нельзя было случайно ослабить.
//
// Повторная отмена уже отмененной тренировки - no-op успех (идемпотентность);
// отмена завершенной тренировки - ошибка.
func (s *Service) Cancel(ctx context.Context, id int64, caller domain.Caller) error {
	s.logger.Info("Cancel: cancelling session id=%d by user=%d role=%s", id, caller.UserID, caller.Role)

	if caller.IsClient() {
		s.logger.Warn("Cancel: self-service cancellation denied for user=%d, session id=%d", caller.UserID, id)
		return ErrPolicyDenied
	}

	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			s.logger.Warn("Cancel: session id=%d not found", id)
			return ErrSessionNotFound
		}
		s.logger.Error("Cancel: repository error for session id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if session.IsCancelled() {
		s.logger.Info("Cancel: session id=%d already cancelled", id)
		return nil
	}

	now := s.timeProvider.Now()
	if !session.CanBeCancelled(now) {
		s.logger.Warn("Cancel: session id=%d cannot be cancelled, effective status=%s",
			id, session.EffectiveStatus(now))
		return ErrCannotCancel
	}

	if err := s.sessionRepo.Cancel(ctx, id); err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return ErrSessionNotFound
		}
		s.logger.Error("Cancel: repository error for session id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled session id=%d", id)
	return nil
}

// GetTrainerSchedule получает расписание тренера за день/неделю/месяц
func (s *Service) GetTrainerSchedule(ctx context.Context, trainerID int64, period models.SchedulePeriod, date time.Time, caller domain.Caller) (*models.SessionListResponse, error) {
	s.logger.Info("GetTrainerSchedule: trainer=%d period=%s date=%s", trainerID, period, date.Format(domain.DateFormat))

	from, to, err := models.ResolvePeriodRange(period, date)
	if err != nil {
		s.logger.Warn("GetTrainerSchedule: invalid period %q", period)
		return nil, ErrInvalidPeriod
	}

	req := &models.ListSessionsRequest{
		Caller:    caller,
		Page:      domain.DefaultPage,
		Limit:     domain.MaxLimit,
		TrainerID: &trainerID,
		DateFrom:  &from,
		DateTo:    &to,
	}

	return s.List(ctx, req)
}

// GetClientSchedule получает расписание клиента за день/неделю/месяц.
// Клиент может запросить только собственное расписание.
func (s *Service) GetClientSchedule(ctx context.Context, clientID int64, period models.SchedulePeriod, date time.Time, caller domain.Caller) (*models.SessionListResponse, error) {
	s.logger.Info("GetClientSchedule: client=%d period=%s date=%s", clientID, period, date.Format(domain.DateFormat))

	if caller.IsClient() && clientID != caller.UserID {
		s.logger.Warn("GetClientSchedule: access denied for user=%d to client=%d schedule", caller.UserID, clientID)
		return nil, ErrAccessDenied
	}

	from, to, err := models.ResolvePeriodRange(period, date)
	if err != nil {
		s.logger.Warn("GetClientSchedule: invalid period %q", period)
		return nil, ErrInvalidPeriod
	}

	req := &models.ListSessionsRequest{
		Caller:   caller,
		Page:     domain.DefaultPage,
		Limit:    domain.MaxLimit,
		ClientID: &clientID,
		DateFrom: &from,
		DateTo:   &to,
	}

	return s.List(ctx, req)
}
