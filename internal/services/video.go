package services

import (
	"context"
	"strconv"

	"github.com/jojokiddiestv2025-boop/Gracegather/internal/gateway"
	"github.com/jojokiddiestv2025-boop/Gracegather/internal/models"
)

const videosKey = "gracegather_videos"

// VideoService manages the shared video gallery.
type VideoService interface {
	Videos(ctx context.Context) ([]models.VideoItem, error)
	AddVideo(ctx context.Context, title, description, url, postedBy string) (*models.VideoItem, error)
	DeleteVideo(ctx context.Context, id string) error
}

type videoService struct {
	gw *gateway.Gateway
}

func NewVideoService(gw *gateway.Gateway) VideoService {
	return &videoService{gw: gw}
}

func (v *videoService) Videos(ctx context.Context) ([]models.VideoItem, error) {
	videos := []models.VideoItem{}
	v.gw.Load(ctx, videosKey, &videos)
	return videos, nil
}

// AddVideo prepends a new item with a generated id and date.
func (v *videoService) AddVideo(ctx context.Context, title, description, url, postedBy string) (*models.VideoItem, error) {
	videos, err := v.Videos(ctx)
	if err != nil {
		return nil, err
	}

	now := nowFn().UTC()
	item := models.VideoItem{
		ID:          strconv.FormatInt(now.UnixMilli(), 10),
		Title:       title,
		Description: description,
		URL:         url,
		PostedBy:    postedBy,
		Date:        now,
	}

	videos = append([]models.VideoItem{item}, videos...)
	if _, err := v.gw.Save(ctx, videosKey, videos); err != nil {
		return nil, err
	}
	return &item, nil
}

func (v *videoService) DeleteVideo(ctx context.Context, id string) error {
	videos, err := v.Videos(ctx)
	if err != nil {
		return err
	}

	kept := videos[:0]
	for _, item := range videos {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	_, err = v.gw.Save(ctx, videosKey, kept)
	return err
}
