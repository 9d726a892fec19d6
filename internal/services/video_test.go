package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVideo_AddPrependsAndGeneratesID(t *testing.T) {
	fakeClock(t)
	v := NewVideoService(newTestGateway(t))
	ctx := context.Background()

	older, err := v.AddVideo(ctx, "Sunday Service", "recap", "https://example.com/embed/1", "pastor")
	require.NoError(t, err)
	newer, err := v.AddVideo(ctx, "Bible Study", "week 3", "https://example.com/embed/2", "pastor")
	require.NoError(t, err)

	require.NotEmpty(t, older.ID)
	require.NotEqual(t, older.ID, newer.ID)

	videos, err := v.Videos(ctx)
	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Equal(t, newer.ID, videos[0].ID)
	assert.Equal(t, older.ID, videos[1].ID)
}

func TestVideo_EmptyGallery(t *testing.T) {
	v := NewVideoService(newTestGateway(t))

	videos, err := v.Videos(context.Background())
	require.NoError(t, err)
	assert.Empty(t, videos)
}

func TestVideo_Delete(t *testing.T) {
	fakeClock(t)
	v := NewVideoService(newTestGateway(t))
	ctx := context.Background()

	item, err := v.AddVideo(ctx, "To remove", "", "https://example.com/embed/3", "admin")
	require.NoError(t, err)

	require.NoError(t, v.DeleteVideo(ctx, item.ID))

	videos, err := v.Videos(ctx)
	require.NoError(t, err)
	assert.Empty(t, videos)
}
