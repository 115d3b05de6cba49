package create_session

import (
	"time"

	"github.com/LauraGA777/gmsf-backend-sub001/internal/domain"
	bookSession "github.com/LauraGA777/gmsf-backend-sub001/internal/usecase/book_session"
)

// CreateSessionRequest HTTP request model
type CreateSessionRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	StartTime   string  `json:"startTime"` // ISO 8601
	EndTime     string  `json:"endTime"`   // ISO 8601
	TrainerID   int64   `json:"trainerId"`
	ClientID    int64   `json:"clientId"`
	Notes       *string `json:"notes,omitempty"`
}

// SessionResponse HTTP response model
type SessionResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	TrainerID   int64   `json:"trainerId"`
	ClientID    int64   `json:"clientId"`
	Status      string  `json:"status"`
	Notes       *string `json:"notes,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateSessionRequest) ToUseCaseRequest(caller domain.Caller) (*bookSession.Request, error) {
	startTime, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return nil, err
	}

	return &bookSession.Request{
		Caller:      caller,
		Title:       r.Title,
		Description: r.Description,
		StartTime:   startTime,
		EndTime:     endTime,
		TrainerID:   r.TrainerID,
		ClientID:    r.ClientID,
		Notes:       r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookSession.Response) *SessionResponse {
	return &SessionResponse{
		ID:          resp.ID,
		Title:       resp.Title,
		Description: resp.Description,
		StartTime:   resp.StartTime.Format(time.RFC3339),
		EndTime:     resp.EndTime.Format(time.RFC3339),
		TrainerID:   resp.TrainerID,
		ClientID:    resp.ClientID,
		Status:      resp.Status,
		Notes:       resp.Notes,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
