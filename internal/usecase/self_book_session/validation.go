package self_book_session

import (
	"fmt"
	"time"

	"github.com/LauraGA777/gmsf-backend-sub001/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Caller.UserID <= 0 {
		return fmt.Errorf("%w: caller is not resolved", ErrInvalidInput)
	}

	if req.TrainerID <= 0 {
		return fmt.Errorf("%w: trainerID must be positive", ErrInvalidInput)
	}

	if req.Title != nil && len(*req.Title) > domain.MaxTitleLength {
		return fmt.Errorf("%w: title exceeds %d characters", ErrInvalidInput, domain.MaxTitleLength)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	return nil
}

// validateSelfServiceTimeRange проверяет диапазон по строгим правилам
// self-service:
// - длительность ровно один час;
// - старт на точной границе часа (минуты и секунды нулевые);
// - час старта внутри рабочих часов (06:00-20:00, тренировка кончается к 21:00);
// - старт минимум за 2 часа и максимум за 30 дней от текущего момента.
func validateSelfServiceTimeRange(rng domain.TimeRange, now time.Time) error {
	if err := rng.Validate(); err != nil {
		return fmt.Errorf("%w: end must be after start", ErrInvalidTimeRange)
	}

	if rng.Duration() != domain.SelfServiceSessionDuration {
		return fmt.Errorf("%w: duration must be exactly %s", ErrInvalidTimeRange, domain.SelfServiceSessionDuration)
	}

	if rng.Start.Minute() != 0 || rng.Start.Second() != 0 || rng.Start.Nanosecond() != 0 {
		return fmt.Errorf("%w: start must be on an exact hour boundary", ErrInvalidTimeRange)
	}

	hour := rng.Start.Hour()
	if hour < domain.BusinessDayOpenHour || hour > domain.BusinessDayLastSlotHour {
		return fmt.Errorf("%w: start hour must be between %02d:00 and %02d:00",
			ErrInvalidTimeRange, domain.BusinessDayOpenHour, domain.BusinessDayLastSlotHour)
	}

	if rng.Start.Before(now.Add(domain.SelfServiceMinLeadTime)) {
		return fmt.Errorf("%w: must book at least %s in advance", ErrInvalidTimeRange, domain.SelfServiceMinLeadTime)
	}

	if rng.Start.After(now.AddDate(0, 0, domain.SelfServiceMaxAdvanceDays)) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrInvalidTimeRange, domain.SelfServiceMaxAdvanceDays)
	}

	return nil
}
