package get_available_slots

import (
	"time"

	"github.com/LauraGA777/gmsf-backend-sub001/internal/domain"
	"github.com/LauraGA777/gmsf-backend-sub001/pkg/types"
)

// slotStarts возвращает начала часовых слотов на дату в рамках рабочего дня.
// Слоты, начавшиеся в прошлом или начинающиеся прямо сейчас, отбрасываются.
func slotStarts(date, now time.Time) []time.Time {
	starts := make([]time.Time, 0, domain.BusinessDayLastSlotHour-domain.BusinessDayOpenHour+1)

	for h := domain.BusinessDayOpenHour; h <= domain.BusinessDayLastSlotHour; h++ {
		start := time.Date(date.Year(), date.Month(), date.Day(), h, 0, 0, 0, date.Location())
		if !start.After(now) {
			continue
		}
		starts = append(starts, start)
	}

	return starts
}

// buildFreeSlots раскладывает занятость тренеров по часовым слотам.
// Тренер свободен в слоте, если ни одна из его тренировок не пересекается
// со слотом по полуоткрытым интервалам: тренировка, заканчивающаяся ровно в
// начало слота, этот слот не занимает.
// Слоты без единого свободного тренера отбрасываются.
func buildFreeSlots(date, now time.Time, trainerIDs []int64, sessions []*domain.TrainingSession) []domain.AvailableSlot {
	byTrainer := make(map[int64][]domain.TimeRange, len(trainerIDs))
	for _, s := range sessions {
		byTrainer[s.TrainerID] = append(byTrainer[s.TrainerID], s.Range())
	}

	slots := make([]domain.AvailableSlot, 0)

	for _, start := range slotStarts(date, now) {
		slotRange := domain.TimeRange{Start: start, End: start.Add(domain.SlotDuration)}

		free := make([]int64, 0, len(trainerIDs))
		for _, id := range trainerIDs {
			busy := false
			for _, booked := range byTrainer[id] {
				if slotRange.Overlaps(booked) {
					busy = true
					break
				}
			}
			if !busy {
				free = append(free, id)
			}
		}

		if len(free) > 0 {
			slots = append(slots, domain.AvailableSlot{
				Hour:           types.NewTimeString(start),
				FreeTrainerIDs: free,
			})
		}
	}

	return slots
}

// slotStart восстанавливает момент начала слота из его метки "HH:MM"
func slotStart(date time.Time, hour types.TimeString) time.Time {
	h, _ := hour.Hour() // метки генерируются buildFreeSlots и всегда валидны
	return time.Date(date.Year(), date.Month(), date.Day(), h, 0, 0, 0, date.Location())
}
