package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storyprint-backend/internal/storage"
)

func TestDataURLStorage_RoundTrip(t *testing.T) {
	s := storage.NewDataURLStorage()
	ctx := context.Background()

	original := []byte("not really a png but close enough")
	url, err := s.Upload(ctx, "bild.png", original, "image/png")
	require.NoError(t, err)
	assert.Contains(t, url, "data:image/png;base64,")

	data, contentType, err := s.Fetch(ctx, url)
	require.NoError(t, err)
	assert.Equal(t, original, data)
	assert.Equal(t, "image/png", contentType)
}

func TestDataURLStorage_DefaultsToJPEG(t *testing.T) {
	s := storage.NewDataURLStorage()

	url, err := s.Upload(context.Background(), "bild", []byte{0x01}, "")
	require.NoError(t, err)
	assert.Contains(t, url, "data:image/jpeg;base64,")
}

func TestDataURLStorage_FetchRejectsNonDataURL(t *testing.T) {
	s := storage.NewDataURLStorage()

	_, _, err := s.Fetch(context.Background(), "https://example.com/bild.jpg")
	assert.Error(t, err)

	_, _, err = s.Fetch(context.Background(), "data:image/png;base64")
	assert.Error(t, err)
}
