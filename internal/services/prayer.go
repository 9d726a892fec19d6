package services

import (
	"context"
	"sort"
	"strconv"

	"github.com/jojokiddiestv2025-boop/Gracegather/internal/gateway"
	"github.com/jojokiddiestv2025-boop/Gracegather/internal/models"
)

const prayersKey = "gracegather_prayers"

// PrayerService manages the prayer wall.
type PrayerService interface {
	Requests(ctx context.Context) ([]models.PrayerRequest, error)
	AddRequest(ctx context.Context, author, content string, anonymous bool) (*models.PrayerRequest, error)
	IncrementPrayerCount(ctx context.Context, id string) error
	DeleteRequest(ctx context.Context, id string) error
}

type prayerService struct {
	gw *gateway.Gateway
}

func NewPrayerService(gw *gateway.Gateway) PrayerService {
	return &prayerService{gw: gw}
}

// Requests returns all prayer requests, newest first.
func (p *prayerService) Requests(ctx context.Context) ([]models.PrayerRequest, error) {
	prayers := []models.PrayerRequest{}
	p.gw.Load(ctx, prayersKey, &prayers)

	sort.Slice(prayers, func(i, j int) bool {
		return prayers[i].Timestamp.After(prayers[j].Timestamp)
	})
	return prayers, nil
}

// AddRequest prepends a new request. When anonymous is set the stored author
// is replaced with "Anonymous".
func (p *prayerService) AddRequest(ctx context.Context, author, content string, anonymous bool) (*models.PrayerRequest, error) {
	prayers, err := p.Requests(ctx)
	if err != nil {
		return nil, err
	}

	if anonymous {
		author = "Anonymous"
	}
	now := nowFn().UTC()
	request := models.PrayerRequest{
		ID:          strconv.FormatInt(now.UnixMilli(), 10),
		Author:      author,
		Content:     content,
		Timestamp:   now,
		PrayerCount: 0,
		IsAnonymous: anonymous,
	}

	prayers = append([]models.PrayerRequest{request}, prayers...)
	if _, err := p.gw.Save(ctx, prayersKey, prayers); err != nil {
		return nil, err
	}
	return &request, nil
}

// IncrementPrayerCount bumps the counter of one request. Unknown ids are a
// no-op.
func (p *prayerService) IncrementPrayerCount(ctx context.Context, id string) error {
	prayers, err := p.Requests(ctx)
	if err != nil {
		return err
	}

	changed := false
	for i := range prayers {
		if prayers[i].ID == id {
			prayers[i].PrayerCount++
			changed = true
			break
		}
	}
	if !changed {
		return nil
	}
	_, err = p.gw.Save(ctx, prayersKey, prayers)
	return err
}

func (p *prayerService) DeleteRequest(ctx context.Context, id string) error {
	prayers, err := p.Requests(ctx)
	if err != nil {
		return err
	}

	kept := prayers[:0]
	for _, req := range prayers {
		if req.ID != id {
			kept = append(kept, req)
		}
	}
	_, err = p.gw.Save(ctx, prayersKey, kept)
	return err
}
