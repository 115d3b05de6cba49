package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LauraGA777/gmsf-backend-sub001/internal/domain"
	"github.com/LauraGA777/gmsf-backend-sub001/pkg/types"
)

// Дата в будущем относительно testNow, все слоты дня доступны
var testDate = time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC)

func session(trainerID int64, day time.Time, startHour, startMin, durMin int) *domain.TrainingSession {
	start := time.Date(day.Year(), day.Month(), day.Day(), startHour, startMin, 0, 0, day.Location())
	return &domain.TrainingSession{
		TrainerID: trainerID,
		StartTime: start,
		EndTime:   start.Add(time.Duration(durMin) * time.Minute),
		Status:    domain.StatusScheduled,
	}
}

func hoursOf(slots []domain.AvailableSlot) []types.TimeString {
	hours := make([]types.TimeString, 0, len(slots))
	for _, s := range slots {
		hours = append(hours, s.Hour)
	}
	return hours
}

func TestSlotStarts(t *testing.T) {
	t.Run("full business day for a future date", func(t *testing.T) {
		starts := slotStarts(testDate, testNow)

		require.Len(t, starts, 15)
		assert.Equal(t, 6, starts[0].Hour())
		assert.Equal(t, 20, starts[len(starts)-1].Hour())
	})

	t.Run("past slots of today are dropped", func(t *testing.T) {
		today := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
		// now = 09:00, слот 09:00 уже начался и не предлагается
		starts := slotStarts(today, testNow)

		require.NotEmpty(t, starts)
		assert.Equal(t, 10, starts[0].Hour())
		require.Len(t, starts, 11)
	})

	t.Run("day fully in the past", func(t *testing.T) {
		yesterday := time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC)
		assert.Empty(t, slotStarts(yesterday, testNow))
	})
}

func TestBuildFreeSlots_SingleTrainer(t *testing.T) {
	sessions := []*domain.TrainingSession{
		session(7, testDate, 10, 0, 60),
	}

	slots := buildFreeSlots(testDate, testNow, []int64{7}, sessions)

	hours := hoursOf(slots)
	assert.NotContains(t, hours, types.TimeString("10:00"))
	// Тренировка [10:00, 11:00) не задевает соседние слоты
	assert.Contains(t, hours, types.TimeString("09:00"))
	assert.Contains(t, hours, types.TimeString("11:00"))
	require.Len(t, slots, 14)
}

func TestBuildFreeSlots_PartialOverlapBlocksBothSlots(t *testing.T) {
	sessions := []*domain.TrainingSession{
		session(7, testDate, 10, 30, 60), // 10:30 - 11:30
	}

	slots := buildFreeSlots(testDate, testNow, []int64{7}, sessions)

	hours := hoursOf(slots)
	assert.NotContains(t, hours, types.TimeString("10:00"))
	assert.NotContains(t, hours, types.TimeString("11:00"))
	assert.Contains(t, hours, types.TimeString("12:00"))
}

func TestBuildFreeSlots_HalfOpenBoundary(t *testing.T) {
	// Конец [09:00, 10:00) совпадает с началом слота 10:00 и не занимает его
	sessions := []*domain.TrainingSession{
		session(7, testDate, 9, 0, 60),
	}

	slots := buildFreeSlots(testDate, testNow, []int64{7}, sessions)

	hours := hoursOf(slots)
	assert.NotContains(t, hours, types.TimeString("09:00"))
	assert.Contains(t, hours, types.TimeString("10:00"))
}

func TestBuildFreeSlots_MultipleTrainers(t *testing.T) {
	sessions := []*domain.TrainingSession{
		session(7, testDate, 10, 0, 60),
		session(8, testDate, 10, 0, 60),
		session(8, testDate, 14, 0, 60),
	}

	slots := buildFreeSlots(testDate, testNow, []int64{7, 8}, sessions)

	bySlot := make(map[types.TimeString][]int64, len(slots))
	for _, s := range slots {
		bySlot[s.Hour] = append(bySlot[s.Hour], s.FreeTrainerIDs...)
	}

	// В 10:00 заняты оба, слот выпадает целиком
	assert.NotContains(t, bySlot, types.TimeString("10:00"))
	// В 14:00 занят только второй тренер
	assert.Equal(t, []int64{7}, bySlot["14:00"])
	// В свободный час доступны оба
	assert.Equal(t, []int64{7, 8}, bySlot["09:00"])
}

func TestBuildFreeSlots_NoTrainers(t *testing.T) {
	assert.Empty(t, buildFreeSlots(testDate, testNow, nil, nil))
}
