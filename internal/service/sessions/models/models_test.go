package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LauraGA777/gmsf-backend-sub001/internal/domain"
)

func TestResolvePeriodRange(t *testing.T) {
	// 2026-03-10 - вторник
	date := time.Date(2026, time.March, 10, 15, 30, 0, 0, time.UTC)

	t.Run("day", func(t *testing.T) {
		from, to, err := ResolvePeriodRange(PeriodDay, date)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC), from)
		assert.Equal(t, time.Date(2026, time.March, 11, 0, 0, 0, 0, time.UTC), to)
	})

	t.Run("empty period defaults to day", func(t *testing.T) {
		from, to, err := ResolvePeriodRange("", date)
		require.NoError(t, err)
		assert.Equal(t, 24*time.Hour, to.Sub(from))
	})

	t.Run("week starts on Monday", func(t *testing.T) {
		from, to, err := ResolvePeriodRange(PeriodWeek, date)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC), from)
		assert.Equal(t, time.Date(2026, time.March, 16, 0, 0, 0, 0, time.UTC), to)
	})

	t.Run("week of a Sunday belongs to the preceding Monday", func(t *testing.T) {
		sunday := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
		from, _, err := ResolvePeriodRange(PeriodWeek, sunday)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC), from)
	})

	t.Run("month", func(t *testing.T) {
		from, to, err := ResolvePeriodRange(PeriodMonth, date)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), from)
		assert.Equal(t, time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), to)
	})

	t.Run("unknown period", func(t *testing.T) {
		_, _, err := ResolvePeriodRange("year", date)
		assert.ErrorIs(t, err, ErrInvalidPeriod)
	})
}

func TestToDomainFilter(t *testing.T) {
	t.Run("client is scoped to own sessions", func(t *testing.T) {
		otherClient := int64(4)
		req := &ListSessionsRequest{
			Caller:   domain.Caller{UserID: 3, Role: domain.RoleClient},
			ClientID: &otherClient,
		}

		filter, err := req.ToDomainFilter()
		require.NoError(t, err)

		require.NotNil(t, filter.ClientID)
		assert.Equal(t, int64(3), *filter.ClientID)
	})

	t.Run("staff filter passes through", func(t *testing.T) {
		trainerID := int64(7)
		req := &ListSessionsRequest{
			Caller:    domain.Caller{UserID: 1, Role: domain.RoleStaff},
			TrainerID: &trainerID,
		}

		filter, err := req.ToDomainFilter()
		require.NoError(t, err)

		assert.Nil(t, filter.ClientID)
		require.NotNil(t, filter.TrainerID)
		assert.Equal(t, int64(7), *filter.TrainerID)
	})

	t.Run("cancelled status includes cancelled rows", func(t *testing.T) {
		status := string(domain.StatusCancelled)
		req := &ListSessionsRequest{
			Caller: domain.Caller{UserID: 1, Role: domain.RoleStaff},
			Status: &status,
		}

		filter, err := req.ToDomainFilter()
		require.NoError(t, err)

		assert.True(t, filter.IncludeCancelled)
		require.NotNil(t, filter.Status)
		assert.Equal(t, domain.StatusCancelled, *filter.Status)
	})

	t.Run("other statuses keep cancelled hidden", func(t *testing.T) {
		status := string(domain.StatusScheduled)
		req := &ListSessionsRequest{
			Caller: domain.Caller{UserID: 1, Role: domain.RoleStaff},
			Status: &status,
		}

		filter, err := req.ToDomainFilter()
		require.NoError(t, err)
		assert.False(t, filter.IncludeCancelled)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		status := "archived"
		req := &ListSessionsRequest{
			Caller: domain.Caller{UserID: 1, Role: domain.RoleStaff},
			Status: &status,
		}

		_, err := req.ToDomainFilter()
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}

func TestFromDomainSession(t *testing.T) {
	now := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	cancelledAt := now.Add(-time.Hour)

	s := &domain.TrainingSession{
		ID:          5,
		Title:       "Strength training",
		StartTime:   now.Add(2 * time.Hour),
		EndTime:     now.Add(3 * time.Hour),
		TrainerID:   7,
		ClientID:    3,
		Status:      domain.StatusCancelled,
		CancelledAt: &cancelledAt,
	}

	resp := FromDomainSession(s, now)
	require.NotNil(t, resp)

	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	require.NotNil(t, resp.CancelledAt)
	assert.Equal(t, cancelledAt.Format(time.RFC3339), *resp.CancelledAt)
	assert.Equal(t, s.StartTime.Format(time.RFC3339), resp.StartTime)

	assert.Nil(t, FromDomainSession(nil, now))
}
