package domain

import "time"

// TimeRange represents a half-open interval [Start, End).
// A session occupies every instant from Start inclusive to End exclusive,
// so a session ending at 10:00 does not collide with one starting at 10:00.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// NewTimeRange builds a range without validating it; call Validate at write
// boundaries.
func NewTimeRange(start, end time.Time) TimeRange {
	return TimeRange{Start: start, End: end}
}

// Validate checks the basic invariant Start < End.
func (r TimeRange) Validate() error {
	if !r.Start.Before(r.End) {
		return ErrEndNotAfterStart
	}
	return nil
}

// Duration returns End - Start.
func (r TimeRange) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// Overlaps reports whether two half-open ranges share any instant:
// [s1,e1) and [s2,e2) overlap iff s1 < e2 && s2 < e1.
// Ranges that merely touch at a boundary do not overlap.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}

// Contains reports whether t falls inside the range (Start inclusive,
// End exclusive).
func (r TimeRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// IsZero reports whether both endpoints are unset.
func (r TimeRange) IsZero() bool {
	return r.Start.IsZero() && r.End.IsZero()
}
