package sessions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LauraGA777/gmsf-backend-sub001/internal/domain"
	sessionRepo "github.com/LauraGA777/gmsf-backend-sub001/internal/infra/storage/session"
	"github.com/LauraGA777/gmsf-backend-sub001/internal/service/sessions/models"
)

type fakeSessionRepo struct {
	session *domain.TrainingSession
	getErr  error

	listSessions []*domain.TrainingSession
	listTotal    int64
	lastFilter   domain.SessionFilter

	cancelledID int64
}

func (f *fakeSessionRepo) GetByID(_ context.Context, _ int64) (*domain.TrainingSession, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	s := *f.session
	return &s, nil
}

func (f *fakeSessionRepo) ListWithFilter(_ context.Context, filter domain.SessionFilter) ([]*domain.TrainingSession, int64, error) {
	f.lastFilter = filter
	return f.listSessions, f.listTotal, nil
}

func (f *fakeSessionRepo) Cancel(_ context.Context, id int64) error {
	f.cancelledID = id
	return nil
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

var (
	staffCaller  = domain.Caller{UserID: 1, Role: domain.RoleStaff}
	clientCaller = domain.Caller{UserID: 3, Role: domain.RoleClient}
)

func scheduledSession() *domain.TrainingSession {
	return &domain.TrainingSession{
		ID:        5,
		Title:     "Strength training",
		StartTime: testNow.Add(2 * time.Hour),
		EndTime:   testNow.Add(3 * time.Hour),
		TrainerID: 7,
		ClientID:  3,
		Status:    domain.StatusScheduled,
	}
}

func newTestService(repo *fakeSessionRepo) *Service {
	svc := NewService(repo, nopLogger{})
	svc.timeProvider = fixedClock{now: testNow}
	return svc
}

func TestGetByID(t *testing.T) {
	t.Run("staff sees any session", func(t *testing.T) {
		svc := newTestService(&fakeSessionRepo{session: scheduledSession()})

		resp, err := svc.GetByID(context.Background(), 5, staffCaller)
		require.NoError(t, err)
		assert.Equal(t, int64(5), resp.ID)
		assert.Equal(t, string(domain.StatusScheduled), resp.Status)
	})

	t.Run("client sees own session", func(t *testing.T) {
		svc := newTestService(&fakeSessionRepo{session: scheduledSession()})

		resp, err := svc.GetByID(context.Background(), 5, clientCaller)
		require.NoError(t, err)
		assert.Equal(t, int64(3), resp.ClientID)
	})

	t.Run("client denied for someone else's session", func(t *testing.T) {
		other := scheduledSession()
		other.ClientID = 4
		svc := newTestService(&fakeSessionRepo{session: other})

		_, err := svc.GetByID(context.Background(), 5, clientCaller)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("not found", func(t *testing.T) {
		svc := newTestService(&fakeSessionRepo{getErr: sessionRepo.ErrSessionNotFound})

		_, err := svc.GetByID(context.Background(), 5, staffCaller)
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("status is derived from clock", func(t *testing.T) {
		// В хранилище scheduled, но по часам тренировка уже идет
		s := scheduledSession()
		s.StartTime = testNow.Add(-30 * time.Minute)
		s.EndTime = testNow.Add(30 * time.Minute)
		svc := newTestService(&fakeSessionRepo{session: s})

		resp, err := svc.GetByID(context.Background(), 5, staffCaller)
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusInProgress), resp.Status)
	})
}

func TestList_ClientScoping(t *testing.T) {
	repo := &fakeSessionRepo{listSessions: []*domain.TrainingSession{scheduledSession()}, listTotal: 1}
	svc := newTestService(repo)

	otherClient := int64(4)
	_, err := svc.List(context.Background(), &models.ListSessionsRequest{
		Caller:   clientCaller,
		Page:     1,
		Limit:    10,
		ClientID: &otherClient,
	})
	require.NoError(t, err)

	// Переданный чужой ClientID перекрыт собственным ID клиента
	require.NotNil(t, repo.lastFilter.ClientID)
	assert.Equal(t, clientCaller.UserID, *repo.lastFilter.ClientID)
}

func TestList_Pagination(t *testing.T) {
	repo := &fakeSessionRepo{listSessions: []*domain.TrainingSession{scheduledSession()}, listTotal: 25}
	svc := newTestService(repo)

	resp, err := svc.List(context.Background(), &models.ListSessionsRequest{
		Caller: staffCaller,
		Page:   2,
		Limit:  10,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(25), resp.Total)
	assert.Equal(t, 2, resp.Page)
	assert.Equal(t, 3, resp.TotalPages)
}

func TestCancel(t *testing.T) {
	t.Run("staff cancels scheduled session", func(t *testing.T) {
		repo := &fakeSessionRepo{session: scheduledSession()}
		svc := newTestService(repo)

		err := svc.Cancel(context.Background(), 5, staffCaller)
		require.NoError(t, err)
		assert.Equal(t, int64(5), repo.cancelledID)
	})

	t.Run("client always denied, even for own future session", func(t *testing.T) {
		repo := &fakeSessionRepo{session: scheduledSession()}
		svc := newTestService(repo)

		err := svc.Cancel(context.Background(), 5, clientCaller)
		assert.ErrorIs(t, err, ErrPolicyDenied)
		assert.Zero(t, repo.cancelledID)
	})

	t.Run("already cancelled is a no-op", func(t *testing.T) {
		s := scheduledSession()
		s.Status = domain.StatusCancelled
		repo := &fakeSessionRepo{session: s}
		svc := newTestService(repo)

		err := svc.Cancel(context.Background(), 5, staffCaller)
		require.NoError(t, err)
		// Повторного UPDATE не было
		assert.Zero(t, repo.cancelledID)
	})

	t.Run("completed by clock cannot be cancelled", func(t *testing.T) {
		s := scheduledSession()
		s.StartTime = testNow.Add(-2 * time.Hour)
		s.EndTime = testNow.Add(-time.Hour)
		svc := newTestService(&fakeSessionRepo{session: s})

		err := svc.Cancel(context.Background(), 5, staffCaller)
		assert.ErrorIs(t, err, ErrCannotCancel)
	})

	t.Run("in progress can be cancelled", func(t *testing.T) {
		s := scheduledSession()
		s.StartTime = testNow.Add(-30 * time.Minute)
		s.EndTime = testNow.Add(30 * time.Minute)
		repo := &fakeSessionRepo{session: s}
		svc := newTestService(repo)

		err := svc.Cancel(context.Background(), 5, staffCaller)
		require.NoError(t, err)
		assert.Equal(t, int64(5), repo.cancelledID)
	})

	t.Run("not found", func(t *testing.T) {
		svc := newTestService(&fakeSessionRepo{getErr: sessionRepo.ErrSessionNotFound})

		err := svc.Cancel(context.Background(), 5, staffCaller)
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}

func TestGetTrainerSchedule(t *testing.T) {
	repo := &fakeSessionRepo{}
	svc := newTestService(repo)

	// 2026-03-10 - вторник
	date := time.Date(2026, time.March, 10, 15, 0, 0, 0, time.UTC)

	_, err := svc.GetTrainerSchedule(context.Background(), 7, models.PeriodWeek, date, staffCaller)
	require.NoError(t, err)

	require.NotNil(t, repo.lastFilter.TrainerID)
	assert.Equal(t, int64(7), *repo.lastFilter.TrainerID)

	// Неделя начинается с понедельника
	require.NotNil(t, repo.lastFilter.DateFrom)
	assert.Equal(t, time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC), *repo.lastFilter.DateFrom)
	assert.Equal(t, time.Date(2026, time.March, 16, 0, 0, 0, 0, time.UTC), *repo.lastFilter.DateTo)
}

func TestGetTrainerSchedule_InvalidPeriod(t *testing.T) {
	svc := newTestService(&fakeSessionRepo{})

	_, err := svc.GetTrainerSchedule(context.Background(), 7, "year", testNow, staffCaller)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestGetClientSchedule(t *testing.T) {
	t.Run("client reads own schedule", func(t *testing.T) {
		repo := &fakeSessionRepo{}
		svc := newTestService(repo)

		_, err := svc.GetClientSchedule(context.Background(), 3, models.PeriodDay, testNow, clientCaller)
		require.NoError(t, err)

		require.NotNil(t, repo.lastFilter.ClientID)
		assert.Equal(t, int64(3), *repo.lastFilter.ClientID)
	})

	t.Run("client denied for someone else's schedule", func(t *testing.T) {
		svc := newTestService(&fakeSessionRepo{})

		_, err := svc.GetClientSchedule(context.Background(), 4, models.PeriodDay, testNow, clientCaller)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}
