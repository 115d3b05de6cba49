package book_session

import (
	"time"

	"github.com/LauraGA777/gmsf-backend-sub001/internal/domain"
)

// Request модель запроса на создание тренировки персоналом
type Request struct {
	Caller domain.Caller // Кто бронирует (персонал)

	Title       string
	Description *string
	StartTime   time.Time
	EndTime     time.Time
	TrainerID   int64
	ClientID    int64
	Notes       *string
}

// Response модель ответа с созданной тренировкой
type Response struct {
	ID          int64
	Title       string
	Description *string
	StartTime   time.Time
	EndTime     time.Time
	TrainerID   int64
	ClientID    int64
	Status      string // Производный статус на момент создания
	Notes       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// fromDomain конвертирует созданную тренировку в response
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
