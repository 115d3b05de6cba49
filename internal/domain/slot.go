package domain

import "github.com/LauraGA777/gmsf-backend-sub001/pkg/types"

// AvailableSlot represents a one-hour candidate appointment window with the
// trainers still free in it. Slots with no free trainers are filtered out
// before they reach callers.
type AvailableSlot struct {
	Hour           types.TimeString
	FreeTrainerIDs []int64
}

// IsAvailable reports whether at least one trainer is free in the slot
func (s *AvailableSlot) IsAvailable() bool {
	return len(s.FreeTrainerIDs) > 0
}

// HasTrainer reports whether the given trainer is free in the slot
func (s *AvailableSlot) HasTrainer(trainerID int64) bool {
	for _, id := range s.FreeTrainerIDs {
		if id == trainerID {
			return true
		}
	}
	return false
}
