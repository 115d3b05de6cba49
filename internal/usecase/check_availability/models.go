package check_availability

import (
	"time"

	"github.com/LauraGA777/gmsf-backend-sub001/internal/domain"
)

// Request модель запроса на проверку доступности интервала.
// Хотя бы один из TrainerID/ClientID обязателен; ExcludeSessionID исключает
// тренировку из скана при проверке перед переносом.
type Request struct {
	StartTime time.Time
	EndTime   time.Time

	TrainerID        *int64
	ClientID         *int64
	ExcludeSessionID *int64
}

// Conflict краткое описание пересекающейся тренировки
type Conflict struct {
	ID        int64
	Title     string
	StartTime time.Time
	EndTime   time.Time
	TrainerID int64
	ClientID  int64
	Status    string // Производный статус на момент проверки
}

// Response модель ответа проверки доступности
type Response struct {
	Available bool
	Conflicts []Conflict
}

// fromDomain конвертирует результат скана в response
func fromDomain(sessions []*domain.TrainingSession, now time.Time) *Response {
	conflicts := make([]Conflict, 0, len(sessions))
	for _, s := range sessions {
		conflicts = append(conflicts, Conflict{
			ID:        s.ID,
			Title:     s.Title,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			TrainerID: s.TrainerID,
			ClientID:  s.ClientID,
			Status:    string(s.EffectiveStatus(now)),
		})
	}

	return &Response{
		Available: len(conflicts) == 0,
		Conflicts: conflicts,
	}
}
