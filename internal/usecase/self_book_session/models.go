package self_book_session

import (
	"time"

	"github.com/LauraGA777/gmsf-backend-sub001/internal/domain"
)

// defaultTitle заголовок тренировки, если клиент не указал свой
const defaultTitle = "Personal training"

// Request модель запроса self-service бронирования.
// ClientID всегда берется из Caller - клиент не может бронировать
// от чужого имени.
type Request struct {
	Caller domain.Caller

	TrainerID int64
	StartTime time.Time
	EndTime   time.Time
	Title     *string
	Notes     *string
}

// Response модель ответа с созданной тренировкой
type Response struct {
	ID        int64
	Title     string
	StartTime time.Time
	EndTime   time.Time
	TrainerID int64
	ClientID  int64
	Status    string
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// fromDomain конвертирует созданную тренировку в response
func fromDomain(s *domain.TrainingSession, now time.Time) *Response {
	return &Response{
		ID:        s.ID,
		Title:     s.Title,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		TrainerID: s.TrainerID,
		ClientID:  s.ClientID,
		Status:    string(s.EffectiveStatus(now)),
		Notes:     s.Notes,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
