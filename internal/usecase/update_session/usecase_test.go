package update_session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LauraGA777/gmsf-backend-sub001/internal/domain"
	storage "github.com/LauraGA777/gmsf-backend-sub001/internal/infra/storage/session"
	"github.com/LauraGA777/gmsf-backend-sub001/internal/integrations/memberservice"
	"github.com/LauraGA777/gmsf-backend-sub001/internal/integrations/trainerservice"
	"github.com/LauraGA777/gmsf-backend-sub001/pkg/ptr"
)

// Фейки contract-интерфейсов

type fakeSessionRepo struct {
	session   *domain.TrainingSession
	getErr    error
	conflicts []*domain.TrainingSession

	updated   *domain.TrainingSession
	lastQuery domain.OverlapQuery
}

func (f *fakeSessionRepo) GetByID(_ context.Context, id int64) (*domain.TrainingSession, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.updated != nil {
		s := *f.updated
		return &s, nil
	}
	s := *f.session
	return &s, nil
}

func (f *fakeSessionRepo) FindOverlapping(_ context.Context, q domain.OverlapQuery) ([]*domain.TrainingSession, error) {
	f.lastQuery = q
	return f.conflicts, nil
}

func (f *fakeSessionRepo) Update(_ context.Context, s *domain.TrainingSession) error {
	f.updated = s
	return nil
}

type fakeTrainerClient struct {
	trainer *trainerservice.Trainer
	err     error
}

func (f *fakeTrainerClient) GetTrainer(_ context.Context, _ int64) (*trainerservice.Trainer, error) {
	return f.trainer, f.err
}

type fakeMemberClient struct {
	client    *memberservice.Client
	qualifies bool
}

func (f *fakeMemberClient) GetClient(_ context.Context, _ int64) (*memberservice.Client, error) {
	return f.client, nil
}

func (f *fakeMemberClient) HasQualifyingContract(_ context.Context, _ int64) (bool, error) {
	return f.qualifies, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

// Хелперы

var testNow = time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

func storedSession() *domain.TrainingSession {
	return &domain.TrainingSession{
		ID:        5,
		Title:     "Strength training",
		StartTime: testNow.Add(3 * time.Hour),
		EndTime:   testNow.Add(4 * time.Hour),
		TrainerID: 7,
		ClientID:  3,
		Status:    domain.StatusScheduled,
	}
}

func newTestUseCase(repo *fakeSessionRepo) *UseCase {
	uc := NewUseCase(repo,
		&fakeTrainerClient{trainer: &trainerservice.Trainer{ID: 8, Name: "Boris", Active: true, UserActive: true}},
		&fakeMemberClient{client: &memberservice.Client{ID: 4, UserActive: true}, qualifies: true},
		fakeTxManager{},
		nopLogger{},
	)
	uc.timeProvider = fixedClock{now: testNow}
	return uc
}

func staffRequest() *Request {
	return &Request{
		Caller:    domain.Caller{UserID: 1, Role: domain.RoleStaff},
		SessionID: 5,
	}
}

func TestExecute_ClientAlwaysDenied(t *testing.T) {
	repo := &fakeSessionRepo{session: storedSession()}
	uc := newTestUseCase(repo)

	req := staffRequest()
	req.Caller = domain.Caller{UserID: 3, Role: domain.RoleClient}
	req.Title = ptr.Ptr("New title")

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPolicyDenied)
	// Отказ происходит до любых обращений к хранилищу
	assert.Nil(t, repo.updated)
}

func TestExecute_TitleOnly(t *testing.T) {
	repo := &fakeSessionRepo{session: storedSession()}
	uc := newTestUseCase(repo)

	req := staffRequest()
	req.Title = ptr.Ptr("Mobility work")

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "Mobility work", resp.Title)
	// Без изменения времени и участников conflict-скан не выполняется
	assert.Nil(t, repo.lastQuery.ExcludeID)
}

func TestExecute_Reschedule(t *testing.T) {
	repo := &fakeSessionRepo{session: storedSession()}
	uc := newTestUseCase(repo)

	newStart := testNow.Add(5 * time.Hour)
	newEnd := testNow.Add(6 * time.Hour)

	req := staffRequest()
	req.StartTime = &newStart
	req.EndTime = &newEnd

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, newStart, resp.StartTime)
	assert.Equal(t, newEnd, resp.EndTime)

	// Сама тренировка исключена из conflict-скана
	require.NotNil(t, repo.lastQuery.ExcludeID)
	assert.Equal(t, int64(5), *repo.lastQuery.ExcludeID)
	assert.Equal(t, newStart, repo.lastQuery.Range.Start)
}

func TestExecute_RescheduleConflict(t *testing.T) {
	repo := &fakeSessionRepo{
		session:   storedSession(),
		conflicts: []*domain.TrainingSession{{ID: 99}},
	}
	uc := newTestUseCase(repo)

	newStart := testNow.Add(5 * time.Hour)
	newEnd := testNow.Add(6 * time.Hour)

	req := staffRequest()
	req.StartTime = &newStart
	req.EndTime = &newEnd

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSchedulingConflict)
	assert.Nil(t, repo.updated)
}

func TestExecute_RescheduleValidation(t *testing.T) {
	t.Run("start in the past", func(t *testing.T) {
		repo := &fakeSessionRepo{session: storedSession()}
		uc := newTestUseCase(repo)

		newStart := testNow.Add(-time.Hour)
		newEnd := testNow

		req := staffRequest()
		req.StartTime = &newStart
		req.EndTime = &newEnd

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	})

	t.Run("times must come in pairs", func(t *testing.T) {
		repo := &fakeSessionRepo{session: storedSession()}
		uc := newTestUseCase(repo)

		newStart := testNow.Add(5 * time.Hour)

		req := staffRequest()
		req.StartTime = &newStart

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestExecute_SessionNotFound(t *testing.T) {
	repo := &fakeSessionRepo{getErr: storage.ErrSessionNotFound}
	uc := newTestUseCase(repo)

	req := staffRequest()
	req.Title = ptr.Ptr("New title")

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestExecute_TerminalSessionNotModifiable(t *testing.T) {
	t.Run("cancelled", func(t *testing.T) {
		s := storedSession()
		s.Status = domain.StatusCancelled

		uc := newTestUseCase(&fakeSessionRepo{session: s})

		req := staffRequest()
		req.Title = ptr.Ptr("New title")

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrSessionNotModifiable)
	})

	t.Run("elapsed by clock", func(t *testing.T) {
		s := storedSession()
		s.StartTime = testNow.Add(-2 * time.Hour)
		s.EndTime = testNow.Add(-time.Hour)

		uc := newTestUseCase(&fakeSessionRepo{session: s})

		req := staffRequest()
		req.Title = ptr.Ptr("New title")

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrSessionNotModifiable)
	})
}

func TestExecute_ChangeTrainerRunsConflictScan(t *testing.T) {
	repo := &fakeSessionRepo{session: storedSession()}
	uc := newTestUseCase(repo)

	req := staffRequest()
	req.TrainerID = ptr.Ptr(int64(8))

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, int64(8), resp.TrainerID)
	require.NotNil(t, repo.lastQuery.TrainerID)
	assert.Equal(t, int64(8), *repo.lastQuery.TrainerID)
}

func TestExecute_NewTrainerInactive(t *testing.T) {
	repo := &fakeSessionRepo{session: storedSession()}
	uc := NewUseCase(repo,
		&fakeTrainerClient{trainer: &trainerservice.Trainer{ID: 8, Active: false, UserActive: true}},
		&fakeMemberClient{client: &memberservice.Client{ID: 4}, qualifies: true},
		fakeTxManager{},
		nopLogger{},
	)
	uc.timeProvider = fixedClock{now: testNow}

	req := staffRequest()
	req.TrainerID = ptr.Ptr(int64(8))

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTrainerInactive)
}
