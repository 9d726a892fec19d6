package services

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/jojokiddiestv2025-boop/Gracegather/internal/gateway"
	"github.com/jojokiddiestv2025-boop/Gracegather/internal/models"
)

const scheduleKey = "gracegather_schedule"

// ScheduleService manages the live-stream schedule. At most one event may be
// live at a time.
type ScheduleService interface {
	Events(ctx context.Context) ([]models.StreamEvent, error)
	AddEvent(ctx context.Context, title string, dateTime time.Time, description, eventType, host string) (*models.StreamEvent, error)
	DeleteEvent(ctx context.Context, id string) error
	SetLive(ctx context.Context, id string, live bool) error
	LiveEvent(ctx context.Context) (*models.StreamEvent, error)
}

type scheduleService struct {
	gw *gateway.Gateway
}

func NewScheduleService(gw *gateway.Gateway) ScheduleService {
	return &scheduleService{gw: gw}
}

// Events returns the schedule sorted by start time, soonest first.
func (s *scheduleService) Events(ctx context.Context) ([]models.StreamEvent, error) {
	events := []models.StreamEvent{}
	s.gw.Load(ctx, scheduleKey, &events)

	sort.Slice(events, func(i, j int) bool {
		return events[i].DateTime.Before(events[j].DateTime)
	})
	return events, nil
}

func (s *scheduleService) AddEvent(ctx context.Context, title string, dateTime time.Time, description, eventType, host string) (*models.StreamEvent, error) {
	events, err := s.Events(ctx)
	if err != nil {
		return nil, err
	}

	if eventType == "" {
		eventType = models.EventBroadcast
	}
	event := models.StreamEvent{
		ID:          strconv.FormatInt(nowFn().UTC().UnixMilli(), 10),
		Title:       title,
		DateTime:    dateTime,
		Description: description,
		IsLive:      false,
		Type:        eventType,
		Host:        host,
	}

	events = append(events, event)
	if _, err := s.gw.Save(ctx, scheduleKey, events); err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *scheduleService) DeleteEvent(ctx context.Context, id string) error {
	events, err := s.Events(ctx)
	if err != nil {
		return err
	}

	kept := events[:0]
	for _, e := range events {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	_, err = s.gw.Save(ctx, scheduleKey, kept)
	return err
}

// SetLive marks one event live (or not). Marking an event live clears the
// flag on every other event so only one stream is ever live.
func (s *scheduleService) SetLive(ctx context.Context, id string, live bool) error {
	events, err := s.Events(ctx)
	if err != nil {
		return err
	}

	for i := range events {
		if events[i].ID == id {
			events[i].IsLive = live
		} else {
			events[i].IsLive = false
		}
	}
	_, err = s.gw.Save(ctx, scheduleKey, events)
	return err
}

// LiveEvent returns the currently live event, or nil when none is live.
func (s *scheduleService) LiveEvent(ctx context.Context) (*models.StreamEvent, error) {
	events, err := s.Events(ctx)
	if err != nil {
		return nil, err
	}
	for i := range events {
		if events[i].IsLive {
			return &events[i], nil
		}
	}
	return nil, nil
}
