package check_availability

import (
	"strconv"
	"time"

	checkAvailability "github.com/LauraGA777/gmsf-backend-sub001/internal/usecase/check_availability"
)

// ConflictResponse краткое описание пересекающейся тренировки
type ConflictResponse struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	TrainerID int64  `json:"trainerId"`
	ClientID  int64  `json:"clientId"`
	Status    string `json:"status"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Available bool               `json:"available"`
	Conflicts []ConflictResponse `json:"conflicts"`
}

// ToUseCaseRequest собирает запрос к use case из query параметров
func ToUseCaseRequest(startTimeStr, endTimeStr, trainerIDStr, clientIDStr, excludeIDStr string) (*checkAvailability.Request, error) {
	startTime, err := time.Parse(time.RFC3339, startTimeStr)
	if err != nil {
		return nil, err
	}

	endTime, err := time.Parse(time.RFC3339, endTimeStr)
	if err != nil {
		return nil, err
	}

	req := &checkAvailability.Request{
		StartTime: startTime,
		EndTime:   endTime,
	}

	if trainerIDStr != "" {
		trainerID, err := strconv.ParseInt(trainerIDStr, 10, 64)
		if err != nil || trainerID <= 0 {
			return nil, strconv.ErrSyntax
		}
		req.TrainerID = &trainerID
	}

	if clientIDStr != "" {
		clientID, err := strconv.ParseInt(clientIDStr, 10, 64)
		if err != nil || clientID <= 0 {
			return nil, strconv.ErrSyntax
		}
		req.ClientID = &clientID
	}

	if excludeIDStr != "" {
		excludeID, err := strconv.ParseInt(excludeIDStr, 10, 64)
		if err != nil || excludeID <= 0 {
			return nil, strconv.ErrSyntax
		}
		req.ExcludeSessionID = &excludeID
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	conflicts := make([]ConflictResponse, 0, len(resp.Conflicts))
	for _, c := range resp.Conflicts {
		conflicts = append(conflicts, ConflictResponse{
			ID:        c.ID,
			Title:     c.Title,
			StartTime: c.StartTime.Format(time.RFC3339),
			EndTime:   c.EndTime.Format(time.RFC3339),
			TrainerID: c.TrainerID,
			ClientID:  c.ClientID,
			Status:    c.Status,
		})
	}

	return &AvailabilityResponse{
		Available: resp.Available,
		Conflicts: conflicts,
	}
}
