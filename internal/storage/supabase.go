package storage

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"path"
	"strings"

	supastorage "github.com/supabase-community/storage-go"

	"storyprint-backend/internal/id"
)

// SupabaseStorage stores photos in a Supabase storage bucket and hands out
// public object URLs.
type SupabaseStorage struct {
	client  *supastorage.Client
	bucket  string
	baseURL string
}

func NewSupabaseStorage(supabaseURL, serviceKey, bucket string) (*SupabaseStorage, error) {
	baseURL := strings.TrimSuffix(supabaseURL, "/")
	client := supastorage.NewClient(baseURL+"/storage/v1", serviceKey, nil)

	return &SupabaseStorage{
		client:  client,
		bucket:  bucket,
		baseURL: baseURL,
	}, nil
}

func (s *SupabaseStorage) Upload(_ context.Context, filename string, data []byte, contentType string) (string, error) {
	// Filenames are user-controlled and collide; the object key does not.
	key, err := id.New("upl")
	if err != nil {
		return "", fmt.Errorf("failed to generate object key: %w", err)
	}
	storagePath := "photos/" + key + "-" + filename

	if contentType == "" {
		contentType = "image/jpeg"
	}
	upsert := true
	_, err = s.client.UploadFile(s.bucket, storagePath, bytes.NewReader(data), supastorage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, storagePath), nil
}

func (s *SupabaseStorage) Fetch(_ context.Context, url string) ([]byte, string, error) {
	prefix := fmt.Sprintf("%s/storage/v1/object/public/%s/", s.baseURL, s.bucket)
	storagePath, ok := strings.CutPrefix(url, prefix)
	if !ok {
		return nil, "", fmt.Errorf("url does not reference bucket %s: %.64q", s.bucket, url)
	}

	data, err := s.client.DownloadFile(s.bucket, storagePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to download file: %w", err)
	}

	contentType := mime.TypeByExtension(path.Ext(storagePath))
	if contentType == "" {
		contentType = "image/jpeg"
	}
	return data, contentType, nil
}
