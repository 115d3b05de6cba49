package update_session

import (
	"time"

	"github.com/LauraGA777/gmsf-backend-sub001/internal/domain"
	updateSession "github.com/LauraGA777/gmsf-backend-sub001/internal/usecase/update_session"
)

// UpdateSessionRequest HTTP request model.
// Отсутствующие поля не меняются; startTime и endTime передаются парой.
type UpdateSessionRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	StartTime   *string `json:"startTime,omitempty"` // ISO 8601
	EndTime     *string `json:"endTime,omitempty"`   // ISO 8601
	TrainerID   *int64  `json:"trainerId,omitempty"`
	ClientID    *int64  `json:"clientId,omitempty"`
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
func (r *UpdateSessionRequest) ToUseCaseRequest(caller domain.Caller, sessionID int64) (*updateSession.Request, error) {
	req := &updateSession.Request{
		Caller:      caller,
		SessionID:   sessionID,
		Title:       r.Title,
		Description: r.Description,
		TrainerID:   r.TrainerID,
		ClientID:    r.ClientID,
		Notes:       r.Notes,
	}

	if r.StartTime != nil {
		startTime, err := time.Parse(time.RFC3339, *r.StartTime)
		if err != nil {
			return nil, err
		}
		req.StartTime = &startTime
	}

	if r.EndTime != nil {
		endTime, err := time.Parse(time.RFC3339, *r.EndTime)
		if err != nil {
			return nil, err
		}
		req.EndTime = &endTime
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateSession.Response) *SessionResponse {
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
