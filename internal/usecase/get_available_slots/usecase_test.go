package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LauraGA777/gmsf-backend-sub001/internal/domain"
	"github.com/LauraGA777/gmsf-backend-sub001/internal/integrations/trainerservice"
	"github.com/LauraGA777/gmsf-backend-sub001/pkg/ptr"
	"github.com/LauraGA777/gmsf-backend-sub001/pkg/types"
)

var testNow = time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

type fakeSessionRepo struct {
	sessions []*domain.TrainingSession

	lastTrainerIDs []int64
	lastRange      domain.TimeRange
}

func (f *fakeSessionRepo) ListByTrainersAndRange(_ context.Context, trainerIDs []int64, rng domain.TimeRange) ([]*domain.TrainingSession, error) {
	f.lastTrainerIDs = trainerIDs
	f.lastRange = rng
	return f.sessions, nil
}

type fakeTrainerClient struct {
	trainer    *trainerservice.Trainer
	trainerErr error
	active     []trainerservice.Trainer
}

func (f *fakeTrainerClient) GetTrainer(_ context.Context, _ int64) (*trainerservice.Trainer, error) {
	return f.trainer, f.trainerErr
}

func (f *fakeTrainerClient) ListActiveTrainers(_ context.Context) ([]trainerservice.Trainer, error) {
	return f.active, nil
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newSlotsUseCase(repo *fakeSessionRepo, trainers *fakeTrainerClient) *UseCase {
	uc := NewUseCase(repo, trainers, nopLogger{})
	uc.timeProvider = fixedClock{now: testNow}
	return uc
}

func TestExecute_SingleTrainer(t *testing.T) {
	repo := &fakeSessionRepo{
		sessions: []*domain.TrainingSession{
			session(7, testDate, 10, 0, 60),
		},
	}
	trainers := &fakeTrainerClient{
		trainer: &trainerservice.Trainer{ID: 7, Name: "Anna", Active: true, UserActive: true},
	}
	uc := newSlotsUseCase(repo, trainers)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate, TrainerID: ptr.Ptr(int64(7))})
	require.NoError(t, err)

	assert.Equal(t, "2026-03-12", resp.Date)
	require.Len(t, resp.Slots, 14)

	// Рабочий день покрывается одним запросом к хранилищу
	assert.Equal(t, []int64{7}, repo.lastTrainerIDs)
	assert.Equal(t, 6, repo.lastRange.Start.Hour())
	assert.Equal(t, 21, repo.lastRange.End.Hour())

	first := resp.Slots[0]
	assert.Equal(t, types.TimeString("06:00"), first.Hour)
	assert.Equal(t, time.Hour, first.EndTime.Sub(first.StartTime))
	require.Len(t, first.FreeTrainers, 1)
	assert.Equal(t, "Anna", first.FreeTrainers[0].Name)
}

func TestExecute_AllActiveTrainers(t *testing.T) {
	repo := &fakeSessionRepo{}
	trainers := &fakeTrainerClient{
		active: []trainerservice.Trainer{
			{ID: 7, Name: "Anna", Active: true, UserActive: true},
			{ID: 8, Name: "Boris", Active: true, UserActive: true},
		},
	}
	uc := newSlotsUseCase(repo, trainers)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 15)
	assert.Len(t, resp.Slots[0].FreeTrainers, 2)
	assert.Equal(t, []int64{7, 8}, repo.lastTrainerIDs)
}

func TestExecute_NoBookableTrainers(t *testing.T) {
	repo := &fakeSessionRepo{}
	uc := newSlotsUseCase(repo, &fakeTrainerClient{})

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
	// Без тренеров обращения к хранилищу нет
	assert.Nil(t, repo.lastTrainerIDs)
}

func TestExecute_TrainerChecks(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc := newSlotsUseCase(&fakeSessionRepo{}, &fakeTrainerClient{trainerErr: trainerservice.ErrTrainerNotFound})

		_, err := uc.Execute(context.Background(), &Request{Date: testDate, TrainerID: ptr.Ptr(int64(7))})
		assert.ErrorIs(t, err, ErrTrainerNotFound)
	})

	t.Run("inactive", func(t *testing.T) {
		uc := newSlotsUseCase(&fakeSessionRepo{}, &fakeTrainerClient{
			trainer: &trainerservice.Trainer{ID: 7, Active: false, UserActive: true},
		})

		_, err := uc.Execute(context.Background(), &Request{Date: testDate, TrainerID: ptr.Ptr(int64(7))})
		assert.ErrorIs(t, err, ErrTrainerInactive)
	})
}

func TestExecute_Validation(t *testing.T) {
	uc := newSlotsUseCase(&fakeSessionRepo{}, &fakeTrainerClient{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Date: testDate, TrainerID: ptr.Ptr(int64(0))})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
