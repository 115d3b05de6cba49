package update_session

import (
	"time"

	"github.com/LauraGA777/gmsf-backend-sub001/internal/domain"
)

// Request модель запроса на изменение тренировки.
// nil-поля не меняются; StartTime и EndTime передаются только парой.
type Request struct {
	Caller    domain.Caller // Кто правит (только персонал)
	SessionID int64

	Title       *string
	Description *string
	StartTime   *time.Time
	EndTime     *time.Time
	TrainerID   *int64
	ClientID    *int64
	Notes       *string
}

// Response модель ответа с обновленной тренировкой
type Response struct {
	ID          int64
	Title       string
	Description *string
	StartTime   time.Time
	EndTime     time.Time
	TrainerID   int64
	ClientID    int64
	Status      string // Производный статус на момент обновления
	Notes       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// fromDomain конвертирует обновленную тренировку в response
func fromDomain(s *domain.TrainingSession, now time.Time) *Response {
	return &Response{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		StartTime:   s.StartTime,
		EndTime:     s.EndTime,
		TrainerID:   s.TrainerID,
		ClientID:    s.ClientID,
		Status:      string(s.EffectiveStatus(now)),
		Notes:       s.Notes,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
