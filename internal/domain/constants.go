package domain

import (
	"errors"
	"time"
)

// Business hours: hourly slots start at 06:00, the last one at 20:00,
// so every session ends by 21:00.
const (
	BusinessDayOpenHour     = 6
	BusinessDayLastSlotHour = 20
	SlotDuration            = time.Hour
)

// Booking policy limits
const (
	// StaffMaxSessionDuration staff bookings may take up to two hours
	StaffMaxSessionDuration = 2 * time.Hour

	// SelfServiceSessionDuration self-service bookings are exactly one hour
	SelfServiceSessionDuration = time.Hour

	// SelfServiceMinLeadTime self-service bookings must start at least
	// this far in the future
	SelfServiceMinLeadTime = 2 * time.Hour

	// SelfServiceMaxAdvanceDays self-service bookings may be placed at most
	// this many days ahead
	SelfServiceMaxAdvanceDays = 30

	MaxTitleLength = 100
	MaxNotesLength = 500
)

// Pagination defaults for session listings
const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ErrEndNotAfterStart is returned when a range violates Start < End.
var ErrEndNotAfterStart = errors.New("domain: session end must be after start")

// TerminalStatuses statuses that freeze a session: no time derivation,
// no further mutation through normal update paths.
var TerminalStatuses = []SessionStatus{
	StatusCompleted,
	StatusCancelled,
}

// ValidStatuses every status a stored session may carry.
var ValidStatuses = []SessionStatus{
	StatusScheduled,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
}
