package services

import (
	"context"
	"testing"
	"time"

	"github.com/jojokiddiestv2025-boop/Gracegather/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedule_EventsSortedByStartTime(t *testing.T) {
	fakeClock(t)
	s := NewScheduleService(newTestGateway(t))
	ctx := context.Background()

	later := time.Date(2025, 4, 20, 10, 0, 0, 0, time.UTC)
	sooner := time.Date(2025, 4, 13, 10, 0, 0, 0, time.UTC)

	_, err := s.AddEvent(ctx, "Easter Service", later, "", models.EventBroadcast, "admin")
	require.NoError(t, err)
	_, err = s.AddEvent(ctx, "Palm Sunday", sooner, "", models.EventBroadcast, "admin")
	require.NoError(t, err)

	events, err := s.Events(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "Palm Sunday", events[0].Title)
	assert.Equal(t, "Easter Service", events[1].Title)
}

func TestSchedule_AddDefaultsToBroadcast(t *testing.T) {
	fakeClock(t)
	s := NewScheduleService(newTestGateway(t))

	event, err := s.AddEvent(context.Background(), "Midweek", time.Now(), "", "", "pastor")
	require.NoError(t, err)
	assert.Equal(t, models.EventBroadcast, event.Type)
	assert.False(t, event.IsLive)
}

func TestSchedule_OnlyOneEventLiveAtATime(t *testing.T) {
	fakeClock(t)
	s := NewScheduleService(newTestGateway(t))
	ctx := context.Background()

	first, err := s.AddEvent(ctx, "First", time.Now(), "", models.EventBroadcast, "a")
	require.NoError(t, err)
	second, err := s.AddEvent(ctx, "Second", time.Now().Add(time.Hour), "", models.EventBibleStudy, "b")
	require.NoError(t, err)

	require.NoError(t, s.SetLive(ctx, first.ID, true))
	live, err := s.LiveEvent(ctx)
	require.NoError(t, err)
	require.NotNil(t, live)
	assert.Equal(t, first.ID, live.ID)

	// Going live on the second event clears the first.
	require.NoError(t, s.SetLive(ctx, second.ID, true))
	live, err = s.LiveEvent(ctx)
	require.NoError(t, err)
	require.NotNil(t, live)
	assert.Equal(t, second.ID, live.ID)

	events, err := s.Events(ctx)
	require.NoError(t, err)
	liveCount := 0
	for _, e := range events {
		if e.IsLive {
			liveCount++
		}
	}
	assert.Equal(t, 1, liveCount)
}

func TestSchedule_EndLive(t *testing.T) {
	fakeClock(t)
	s := NewScheduleService(newTestGateway(t))
	ctx := context.Background()

	event, err := s.AddEvent(ctx, "Stream", time.Now(), "", models.EventBroadcast, "a")
	require.NoError(t, err)

	require.NoError(t, s.SetLive(ctx, event.ID, true))
	require.NoError(t, s.SetLive(ctx, event.ID, false))

	live, err := s.LiveEvent(ctx)
	require.NoError(t, err)
	assert.Nil(t, live)
}

func TestSchedule_Delete(t *testing.T) {
	fakeClock(t)
	s := NewScheduleService(newTestGateway(t))
	ctx := context.Background()

	event, err := s.AddEvent(ctx, "Removable", time.Now(), "", models.EventBroadcast, "a")
	require.NoError(t, err)

	require.NoError(t, s.DeleteEvent(ctx, event.ID))

	events, err := s.Events(ctx)
	require.NoError(t, err)
	assert.Empty(t, events)
}
