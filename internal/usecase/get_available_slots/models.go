package get_available_slots

import (
	"time"

	"github.com/LauraGA777/gmsf-backend-sub001/internal/domain"
	"github.com/LauraGA777/gmsf-backend-sub001/pkg/types"
)

// Request модель запроса свободных слотов на день.
// TrainerID nil - слоты по всем активным тренерам.
type Request struct {
	Date      time.Time
	TrainerID *int64
}

// FreeTrainer тренер, свободный в слоте
type FreeTrainer struct {
	ID   int64
	Name string
}

// Slot один свободный часовой слот
type Slot struct {
	Hour         types.TimeString
	StartTime    time.Time
	EndTime      time.Time
	FreeTrainers []FreeTrainer
}

// Response модель ответа со свободными слотами.
// Слоты без единого свободного тренера в ответ не попадают.
type Response struct {
	Date  string
	Slots []Slot
}

// fromDomain конвертирует свободные слоты в response
func fromDomain(date time.Time, slots []domain.AvailableSlot, names map[int64]string) *Response {
	out := make([]Slot, 0, len(slots))
	for _, s := range slots {
		trainers := make([]FreeTrainer, 0, len(s.FreeTrainerIDs))
		for _, id := range s.FreeTrainerIDs {
			trainers = append(trainers, FreeTrainer{ID: id, Name: names[id]})
		}

		start := slotStart(date, s.Hour)
		out = append(out, Slot{
			Hour:         s.Hour,
			StartTime:    start,
			EndTime:      start.Add(domain.SlotDuration),
			FreeTrainers: trainers,
		})
	}

	return &Response{
		Date:  date.Format(domain.DateFormat),
		Slots: out,
	}
}
