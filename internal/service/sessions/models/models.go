package models

import (
	"errors"
	"time"

	"github.com/LauraGA777/gmsf-backend-sub001/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid session status")

	// ErrInvalidPeriod возвращается при неизвестном периоде расписания
	ErrInvalidPeriod = errors.New("invalid schedule period")
)

// Request модели

// ListSessionsRequest запрос на получение списка тренировок
type ListSessionsRequest struct {
	Caller domain.Caller

	Page      int        `json:"page"`
	Limit     int        `json:"limit"`
	Search    *string    `json:"search,omitempty"`    // Подстрочный поиск по title
	Status    *string    `json:"status,omitempty"`    // Фильтр по статусу (опционально)
	TrainerID *int64     `json:"trainerId,omitempty"` // Фильтр по тренеру (опционально)
	ClientID  *int64     `json:"clientId,omitempty"`  // Фильтр по клиенту (опционально)
	DateFrom  *time.Time `json:"dateFrom,omitempty"`  // Начало периода (опционально)
	DateTo    *time.Time `json:"dateTo,omitempty"`    // Конец периода (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр.
// Клиентские вызовы принудительно ограничиваются их собственными
// тренировками независимо от переданного ClientID.
func (r *ListSessionsRequest) ToDomainFilter() (domain.SessionFilter, error) {
	filter := domain.SessionFilter{
		Page:      r.Page,
		Limit:     r.Limit,
		Search:    r.Search,
		TrainerID: r.TrainerID,
		ClientID:  r.ClientID,
		DateFrom:  r.DateFrom,
		DateTo:    r.DateTo,
	}

	if r.Caller.IsClient() {
		clientID := r.Caller.UserID
		filter.ClientID = &clientID
	}

	if r.Status != nil {
		status, err := ToDomainSessionStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
		// Явный запрос статуса cancelled должен вернуть отмененные
		filter.IncludeCancelled = status == domain.StatusCancelled
	}

	return filter, nil
}

// SchedulePeriod период представления расписания
type SchedulePeriod string

const (
	PeriodDay   SchedulePeriod = "day"
	PeriodWeek  SchedulePeriod = "week"
	PeriodMonth SchedulePeriod = "month"
)

// ResolvePeriodRange разворачивает период расписания в полуоткрытый
// интервал дат [from, to). Неделя начинается с понедельника.
func ResolvePeriodRange(period SchedulePeriod, date time.Time) (time.Time, time.Time, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	switch period {
	case PeriodDay, "":
		return day, day.AddDate(0, 0, 1), nil
	case PeriodWeek:
		// time.Weekday: Sunday=0 ... Saturday=6; сдвигаем к понедельнику
		offset := (int(day.Weekday()) + 6) % 7
		weekStart := day.AddDate(0, 0, -offset)
		return weekStart, weekStart.AddDate(0, 0, 7), nil
	case PeriodMonth:
		monthStart := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
		return monthStart, monthStart.AddDate(0, 1, 0), nil
	default:
		return time.Time{}, time.Time{}, ErrInvalidPeriod
	}
}

// Response модели

// SessionResponse ответ с данными тренировки.
// Status всегда производный от времени (см. domain.DeriveStatus), а не
// последнее сохраненное значение.
type SessionResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	StartTime   string  `json:"startTime"` // ISO 8601
	EndTime     string  `json:"endTime"`   // ISO 8601
	TrainerID   int64   `json:"trainerId"`
	ClientID    int64   `json:"clientId"`
	Status      string  `json:"status"`
	Notes       *string `json:"notes,omitempty"`

	CancelledAt *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SessionListResponse ответ со списком тренировок и пагинацией
type SessionListResponse struct {
	Sessions   []SessionResponse `json:"sessions"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"totalPages"`
}

// Методы конвертации

// FromDomainSession конвертирует domain модель в DTO, подставляя
// производный статус на момент now
func FromDomainSession(s *domain.TrainingSession, now time.Time) *SessionResponse {
	if s == nil {
		return nil
	}

	resp := &SessionResponse{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		StartTime:   s.StartTime.Format(time.RFC3339),
		EndTime:     s.EndTime.Format(time.RFC3339),
		TrainerID:   s.TrainerID,
		ClientID:    s.ClientID,
		Status:      string(s.EffectiveStatus(now)),
		Notes:       s.Notes,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}

	if s.CancelledAt != nil {
		cancelledStr := s.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainSessionList конвертирует список domain моделей в DTO
func FromDomainSessionList(sessions []*domain.TrainingSession, total int64, page, limit int, now time.Time) *SessionListResponse {
	resp := &SessionListResponse{
		Sessions: make([]SessionResponse, 0, len(sessions)),
		Total:    total,
		Page:     page,
		Limit:    limit,
	}

	if limit > 0 {
		resp.TotalPages = int((total + int64(limit) - 1) / int64(limit))
	}

	for _, s := range sessions {
		if sessionResp := FromDomainSession(s, now); sessionResp != nil {
			resp.Sessions = append(resp.Sessions, *sessionResp)
		}
	}

	return resp
}

// ToDomainSessionStatus конвертирует строку в domain.SessionStatus с валидацией
func ToDomainSessionStatus(status string) (domain.SessionStatus, error) {
	s := domain.SessionStatus(status)

	for _, valid := range domain.ValidStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
