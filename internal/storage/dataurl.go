package storage

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
)

// DataURLStorage keeps no external state: images are encoded inline as
// base64 data URLs, the same representation a browser FileReader produces.
// It is the zero-configuration default and the implementation used in tests.
type DataURLStorage struct{}

func NewDataURLStorage() *DataURLStorage {
	return &DataURLStorage{}
}

func (d *DataURLStorage) Upload(_ context.Context, _ string, data []byte, contentType string) (string, error) {
	if contentType == "" {
		contentType = "image/jpeg"
	}
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

func (d *DataURLStorage) Fetch(_ context.Context, url string) ([]byte, string, error) {
	rest, ok := strings.CutPrefix(url, "data:")
	if !ok {
		return nil, "", fmt.Errorf("not a data URL: %.32q", url)
	}

	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, "", fmt.Errorf("malformed data URL")
	}

	contentType := strings.TrimSuffix(meta, ";base64")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode data URL payload: %w", err)
	}
	return data, contentType, nil
}
