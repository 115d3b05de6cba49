package get_available_slots

import (
	"strconv"
	"time"

	"github.com/LauraGA777/gmsf-backend-sub001/internal/domain"
	getAvailableSlots "github.com/LauraGA777/gmsf-backend-sub001/internal/usecase/get_available_slots"
)

// FreeTrainerResponse тренер, свободный в слоте
type FreeTrainerResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// SlotResponse один свободный часовой слот
type SlotResponse struct {
	Hour         string                `json:"hour"` // "HH:MM"
	StartTime    string                `json:"startTime"`
	EndTime      string                `json:"endTime"`
	FreeTrainers []FreeTrainerResponse `json:"freeTrainers"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date  string         `json:"date"` // "YYYY-MM-DD"
	Slots []SlotResponse `json:"slots"`
}

// ToUseCaseRequest собирает запрос к use case из query параметров
func ToUseCaseRequest(dateStr, trainerIDStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	req := &getAvailableSlots.Request{Date: date}

	if trainerIDStr != "" {
		trainerID, err := strconv.ParseInt(trainerIDStr, 10, 64)
		if err != nil || trainerID <= 0 {
			return nil, strconv.ErrSyntax
		}
		req.TrainerID = &trainerID
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		trainers := make([]FreeTrainerResponse, 0, len(s.FreeTrainers))
		for _, t := range s.FreeTrainers {
			trainers = append(trainers, FreeTrainerResponse{ID: t.ID, Name: t.Name})
		}

		slots = append(slots, SlotResponse{
			Hour:         s.Hour.String(),
			StartTime:    s.StartTime.Format(time.RFC3339),
			EndTime:      s.EndTime.Format(time.RFC3339),
			FreeTrainers: trainers,
		})
	}

	return &AvailableSlotsResponse{
		Date:  resp.Date,
		Slots: slots,
	}
}
