package update_session

import (
	"fmt"
	"time"

	"github.com/LauraGA777/gmsf-backend-sub001/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SessionID <= 0 {
		return fmt.Errorf("%w: sessionID must be positive", ErrInvalidInput)
	}

	if req.Title != nil {
		if *req.Title == "" {
			return fmt.Errorf("%w: title must not be empty", ErrInvalidInput)
		}
		if len(*req.Title) > domain.MaxTitleLength {
			return fmt.Errorf("%w: title exceeds %d characters", ErrInvalidInput, domain.MaxTitleLength)
		}
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	if (req.StartTime == nil) != (req.EndTime == nil) {
		return fmt.Errorf("%w: startTime and endTime must be provided together", ErrInvalidInput)
	}

	if req.TrainerID != nil && *req.TrainerID <= 0 {
		return fmt.Errorf("%w: trainerID must be positive", ErrInvalidInput)
	}

	if req.ClientID != nil && *req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	return nil
}

// validateStaffTimeRange проверяет новый диапазон по тем же правилам, что и
// при создании персоналом: старт не в прошлом, конец позже начала,
// длительность не больше двух часов.
func validateStaffTimeRange(rng domain.TimeRange, now time.Time) error {
	if rng.Start.Before(now) {
		return fmt.Errorf("%w: start time is in the past", ErrInvalidTimeRange)
	}

	if err := rng.Validate(); err != nil {
		return fmt.Errorf("%w: end must be after start", ErrInvalidTimeRange)
	}

	if rng.Duration() > domain.StaffMaxSessionDuration {
		return fmt.Errorf("%w: duration exceeds %s", ErrInvalidTimeRange, domain.StaffMaxSessionDuration)
	}

	return nil
}
