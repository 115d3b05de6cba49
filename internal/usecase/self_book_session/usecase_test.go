package self_book_session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LauraGA777/gmsf-backend-sub001/internal/domain"
	"github.com/LauraGA777/gmsf-backend-sub001/internal/integrations/memberservice"
	"github.com/LauraGA777/gmsf-backend-sub001/internal/integrations/notifyservice"
	"github.com/LauraGA777/gmsf-backend-sub001/internal/integrations/trainerservice"
	"github.com/LauraGA777/gmsf-backend-sub001/pkg/ptr"
)

// Фейки contract-интерфейсов

type fakeSessionRepo struct {
	conflicts []*domain.TrainingSession

	created   *domain.TrainingSession
	lastQuery domain.OverlapQuery
}

func (f *fakeSessionRepo) Create(_ context.Context, s *domain.TrainingSession) (*domain.TrainingSession, error) {
	s.ID = 77
	s.CreatedAt = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	s.UpdatedAt = s.CreatedAt
	f.created = s
	return s, nil
}

func (f *fakeSessionRepo) FindOverlapping(_ context.Context, q domain.OverlapQuery) ([]*domain.TrainingSession, error) {
	f.lastQuery = q
	return f.conflicts, nil
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
	clientErr error
	qualifies bool
}

func (f *fakeMemberClient) GetClient(_ context.Context, _ int64) (*memberservice.Client, error) {
	return f.client, f.clientErr
}

func (f *fakeMemberClient) HasQualifyingContract(_ context.Context, _ int64) (bool, error) {
	return f.qualifies, nil
}

type fakeNotifier struct {
	sent []notifyservice.BookingConfirmation
}

func (f *fakeNotifier) SendBookingConfirmation(_ context.Context, c notifyservice.BookingConfirmation) error {
	f.sent = append(f.sent, c)
	return nil
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

// 09:00 утра: слот 14:00-15:00 того же дня проходит и lead time, и рабочие часы
var testNow = time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

func newTestUseCase(repo *fakeSessionRepo, notifier *fakeNotifier) *UseCase {
	uc := NewUseCase(repo,
		&fakeTrainerClient{trainer: &trainerservice.Trainer{ID: 7, Name: "Anna", Active: true, UserActive: true}},
		&fakeMemberClient{client: &memberservice.Client{ID: 3, Name: "Ivan", Email: "ivan@example.com", UserActive: true}, qualifies: true},
		notifier,
		fakeTxManager{},
		nopLogger{},
	)
	uc.timeProvider = fixedClock{now: testNow}
	return uc
}

func validRequest() *Request {
	return &Request{
		Caller:    domain.Caller{UserID: 3, Role: domain.RoleClient},
		TrainerID: 7,
		StartTime: time.Date(2026, time.March, 10, 14, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, time.March, 10, 15, 0, 0, 0, time.UTC),
	}
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeSessionRepo{}
	notifier := &fakeNotifier{}
	uc := newTestUseCase(repo, notifier)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(77), resp.ID)
	assert.Equal(t, "Personal training", resp.Title, "default title when none given")
	assert.Equal(t, string(domain.StatusScheduled), resp.Status)

	// Клиент привязан из Caller, а не из тела запроса
	assert.Equal(t, int64(3), resp.ClientID)
	require.NotNil(t, repo.lastQuery.ClientID)
	assert.Equal(t, int64(3), *repo.lastQuery.ClientID)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "ivan@example.com", notifier.sent[0].Email)
}

func TestExecute_CustomTitle(t *testing.T) {
	repo := &fakeSessionRepo{}
	uc := newTestUseCase(repo, &fakeNotifier{})

	req := validRequest()
	req.Title = ptr.Ptr("Boxing basics")

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Boxing basics", resp.Title)
}

func TestExecute_SchedulingConflict(t *testing.T) {
	repo := &fakeSessionRepo{
		conflicts: []*domain.TrainingSession{{ID: 99, TrainerID: 7}},
	}
	notifier := &fakeNotifier{}
	uc := newTestUseCase(repo, notifier)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSchedulingConflict)
	assert.Nil(t, repo.created)
	assert.Empty(t, notifier.sent)
}

func TestExecute_StrictTimeRules(t *testing.T) {
	day := func(d, hour, minute int) time.Time {
		return time.Date(2026, time.March, d, hour, minute, 0, 0, time.UTC)
	}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
	}{
		{
			name:  "ninety minutes is not a slot",
			start: day(10, 14, 0),
			end:   day(10, 15, 30),
		},
		{
			name:  "thirty minutes is not a slot",
			start: day(10, 14, 0),
			end:   day(10, 14, 30),
		},
		{
			name:  "start not on the hour boundary",
			start: day(10, 14, 30),
			end:   day(10, 15, 30),
		},
		{
			name:  "before business hours",
			start: day(11, 5, 0),
			end:   day(11, 6, 0),
		},
		{
			name:  "after last slot",
			start: day(10, 21, 0),
			end:   day(10, 22, 0),
		},
		{
			name:  "lead time under two hours",
			start: day(10, 10, 0),
			end:   day(10, 11, 0),
		},
		{
			name:  "more than thirty days ahead",
			start: day(10, 14, 0).AddDate(0, 0, 31),
			end:   day(10, 15, 0).AddDate(0, 0, 31),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeSessionRepo{}, &fakeNotifier{})
			req := validRequest()
			req.StartTime = tt.start
			req.EndTime = tt.end

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidTimeRange)
		})
	}
}

func TestExecute_BoundarySlots(t *testing.T) {
	t.Run("first slot of the day", func(t *testing.T) {
		uc := newTestUseCase(&fakeSessionRepo{}, &fakeNotifier{})
		req := validRequest()
		// Следующий день, чтобы пройти lead time
		req.StartTime = time.Date(2026, time.March, 11, 6, 0, 0, 0, time.UTC)
		req.EndTime = time.Date(2026, time.March, 11, 7, 0, 0, 0, time.UTC)

		_, err := uc.Execute(context.Background(), req)
		assert.NoError(t, err)
	})

	t.Run("last slot of the day", func(t *testing.T) {
		uc := newTestUseCase(&fakeSessionRepo{}, &fakeNotifier{})
		req := validRequest()
		req.StartTime = time.Date(2026, time.March, 10, 20, 0, 0, 0, time.UTC)
		req.EndTime = time.Date(2026, time.March, 10, 21, 0, 0, 0, time.UTC)

		_, err := uc.Execute(context.Background(), req)
		assert.NoError(t, err)
	})

	t.Run("exactly thirty days ahead", func(t *testing.T) {
		uc := newTestUseCase(&fakeSessionRepo{}, &fakeNotifier{})
		req := validRequest()
		req.StartTime = testNow.AddDate(0, 0, 30).Truncate(time.Hour)
		req.EndTime = req.StartTime.Add(time.Hour)

		_, err := uc.Execute(context.Background(), req)
		assert.NoError(t, err)
	})
}

func TestExecute_NoActiveContract(t *testing.T) {
	uc := NewUseCase(&fakeSessionRepo{},
		&fakeTrainerClient{trainer: &trainerservice.Trainer{ID: 7, Name: "Anna", Active: true, UserActive: true}},
		&fakeMemberClient{client: &memberservice.Client{ID: 3, UserActive: true}, qualifies: false},
		&fakeNotifier{},
		fakeTxManager{},
		nopLogger{},
	)
	uc.timeProvider = fixedClock{now: testNow}

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrNoActiveContract)
}
