package domain

import "time"

// SessionStatus represents the lifecycle state of a training session
type SessionStatus string

const (
	StatusScheduled  SessionStatus = "scheduled"
	StatusInProgress SessionStatus = "in_progress"
	StatusCompleted  SessionStatus = "completed"
	StatusCancelled  SessionStatus = "cancelled"
)

// TrainingSession represents one scheduled trainer/client appointment
type TrainingSession struct {
	ID          int64
	Title       string
	Description *string
	StartTime   time.Time
	EndTime     time.Time
	TrainerID   int64
	ClientID    int64
	Status      SessionStatus
	Notes       *string

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Range returns the session's occupied interval [StartTime, EndTime).
func (s *TrainingSession) Range() TimeRange {
	return TimeRange{Start: s.StartTime, End: s.EndTime}
}

// IsCancelled reports whether the session was explicitly cancelled
func (s *TrainingSession) IsCancelled() bool {
	return s.Status == StatusCancelled
}

// IsTerminal reports whether the stored status is final. Terminal sessions
// are never re-derived from time and reject further mutation.
func (s *TrainingSession) IsTerminal() bool {
	return s.Status == StatusCompleted || s.Status == StatusCancelled
}

// CanBeMutated reports whether the session still accepts updates at the
// given moment. Time is authoritative: a session whose end has already
// passed is effectively completed even if the stored status lags.
func (s *TrainingSession) CanBeMutated(now time.Time) bool {
	if s.IsTerminal() {
		return false
	}
	return s.EffectiveStatus(now) != StatusCompleted
}

// CanBeCancelled reports whether the session may still be cancelled.
// Cancelling an already cancelled session is treated as a no-op by callers,
// so only completion blocks it here.
func (s *TrainingSession) CanBeCancelled(now time.Time) bool {
	if s.Status == StatusCompleted {
		return false
	}
	return s.Status == StatusCancelled || s.EffectiveStatus(now) != StatusCompleted
}

// EffectiveStatus returns the status the session has at the given moment,
// see DeriveStatus.
func (s *TrainingSession) EffectiveStatus(now time.Time) SessionStatus {
	return DeriveStatus(s.Status, s.StartTime, s.EndTime, now)
}

// DeriveStatus maps a stored status plus the session's time range onto the
// status that is actually true at `now`. The stored value is authoritative
// only for the terminal states; for everything else the clock decides:
//
//	now >= end          -> completed
//	start <= now < end  -> in_progress
//	now < start         -> scheduled
//
// The result is a projection and is never persisted by read paths.
func DeriveStatus(stored SessionStatus, start, end, now time.Time) SessionStatus {
	if stored == StatusCancelled || stored == StatusCompleted {
		return stored
	}
	if !now.Before(end) {
		return StatusCompleted
	}
	if !now.Before(start) {
		return StatusInProgress
	}
	return StatusScheduled
}

// SessionFilter describes the list query over sessions.
// Nil fields are not applied.
type SessionFilter struct {
	Page   int
	Limit  int
	Search *string // подстрочный поиск по title

	Status    *SessionStatus
	TrainerID *int64
	ClientID  *int64
	DateFrom  *time.Time
	DateTo    *time.Time

	// IncludeCancelled controls whether cancelled sessions appear when no
	// explicit status filter is set.
	IncludeCancelled bool
}

// OverlapQuery describes a conflict scan: sessions overlapping Range that
// share the trainer and/or the client, excluding ExcludeID when updating
// in place. At least one of TrainerID/ClientID must be set by callers.
type OverlapQuery struct {
	Range     TimeRange
	TrainerID *int64
	ClientID  *int64
	ExcludeID *int64
}
