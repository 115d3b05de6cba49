package check_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LauraGA777/gmsf-backend-sub001/internal/domain"
	"github.com/LauraGA777/gmsf-backend-sub001/pkg/ptr"
)

type fakeSessionRepo struct {
	sessions  []*domain.TrainingSession
	lastQuery domain.OverlapQuery
}

func (f *fakeSessionRepo) FindOverlapping(_ context.Context, q domain.OverlapQuery) ([]*domain.TrainingSession, error) {
	f.lastQuery = q
	return f.sessions, nil
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

var testNow = time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

func newTestUseCase(repo *fakeSessionRepo) *UseCase {
	uc := NewUseCase(repo, nopLogger{})
	uc.timeProvider = fixedClock{now: testNow}
	return uc
}

func TestExecute_Available(t *testing.T) {
	repo := &fakeSessionRepo{}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		StartTime: testNow.Add(time.Hour),
		EndTime:   testNow.Add(2 * time.Hour),
		TrainerID: ptr.Ptr(int64(7)),
	})
	require.NoError(t, err)

	assert.True(t, resp.Available)
	assert.Empty(t, resp.Conflicts)

	require.NotNil(t, repo.lastQuery.TrainerID)
	assert.Equal(t, int64(7), *repo.lastQuery.TrainerID)
	assert.Nil(t, repo.lastQuery.ClientID)
}

func TestExecute_ConflictsReported(t *testing.T) {
	repo := &fakeSessionRepo{
		sessions: []*domain.TrainingSession{
			{
				ID:        12,
				Title:     "Strength training",
				StartTime: testNow.Add(-30 * time.Minute),
				EndTime:   testNow.Add(30 * time.Minute),
				TrainerID: 7,
				ClientID:  3,
				Status:    domain.StatusScheduled,
			},
			{
				ID:        13,
				Title:     "Stretching",
				StartTime: testNow.Add(time.Hour),
				EndTime:   testNow.Add(2 * time.Hour),
				TrainerID: 7,
				ClientID:  4,
				Status:    domain.StatusScheduled,
			},
		},
	}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		StartTime: testNow.Add(-time.Hour),
		EndTime:   testNow.Add(2 * time.Hour),
		TrainerID: ptr.Ptr(int64(7)),
	})
	require.NoError(t, err)

	assert.False(t, resp.Available)
	require.Len(t, resp.Conflicts, 2)

	// Статусы в ответе производные от текущего момента
	assert.Equal(t, string(domain.StatusInProgress), resp.Conflicts[0].Status)
	assert.Equal(t, string(domain.StatusScheduled), resp.Conflicts[1].Status)
}

func TestExecute_ExcludeSessionPassedThrough(t *testing.T) {
	repo := &fakeSessionRepo{}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		StartTime:        testNow.Add(time.Hour),
		EndTime:          testNow.Add(2 * time.Hour),
		ClientID:         ptr.Ptr(int64(3)),
		ExcludeSessionID: ptr.Ptr(int64(5)),
	})
	require.NoError(t, err)

	require.NotNil(t, repo.lastQuery.ExcludeID)
	assert.Equal(t, int64(5), *repo.lastQuery.ExcludeID)
}

func TestExecute_Validation(t *testing.T) {
	t.Run("owner is required", func(t *testing.T) {
		uc := newTestUseCase(&fakeSessionRepo{})

		_, err := uc.Execute(context.Background(), &Request{
			StartTime: testNow.Add(time.Hour),
			EndTime:   testNow.Add(2 * time.Hour),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("times are required", func(t *testing.T) {
		uc := newTestUseCase(&fakeSessionRepo{})

		_, err := uc.Execute(context.Background(), &Request{
			TrainerID: ptr.Ptr(int64(7)),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("reversed range", func(t *testing.T) {
		uc := newTestUseCase(&fakeSessionRepo{})

		_, err := uc.Execute(context.Background(), &Request{
			StartTime: testNow.Add(2 * time.Hour),
			EndTime:   testNow.Add(time.Hour),
			TrainerID: ptr.Ptr(int64(7)),
		})
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	})
}
