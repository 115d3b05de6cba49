package self_create_session

import (
	"time"

	"github.com/LauraGA777/gmsf-backend-sub001/internal/domain"
	selfBookSession "github.com/LauraGA777/gmsf-backend-sub001/internal/usecase/self_book_session"
)

// SelfCreateSessionRequest HTTP request model.
// Клиент не передается: тренировка всегда бронируется на вызывающего.
type SelfCreateSessionRequest struct {
	TrainerID int64   `json:"trainerId"`
	StartTime string  `json:"startTime"` // ISO 8601
	EndTime   string  `json:"endTime"`   // ISO 8601
	Title     *string `json:"title,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

// SessionResponse HTTP response model
type SessionResponse struct {
	ID        int64   `json:"id"`
	Title     string  `json:"title"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	TrainerID int64   `json:"trainerId"`
	ClientID  int64   `json:"clientId"`
	Status    string  `json:"status"`
	Notes     *string `json:"notes,omitempty"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SelfCreateSessionRequest) ToUseCaseRequest(caller domain.Caller) (*selfBookSession.Request, error) {
	startTime, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return nil, err
	}

	return &selfBookSession.Request{
		Caller:    caller,
		TrainerID: r.TrainerID,
		StartTime: startTime,
		EndTime:   endTime,
		Title:     r.Title,
		Notes:     r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *selfBookSession.Response) *SessionResponse {
	return &SessionResponse{
		ID:        resp.ID,
		Title:     resp.Title,
		StartTime: resp.StartTime.Format(time.RFC3339),
		EndTime:   resp.EndTime.Format(time.RFC3339),
		TrainerID: resp.TrainerID,
		ClientID:  resp.ClientID,
		Status:    resp.Status,
		Notes:     resp.Notes,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}
}
