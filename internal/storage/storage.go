// Package storage provides the photo ingestion boundary: raw image bytes go
// in, an opaque string reference usable as an image source comes out.
package storage

import "context"

// ObjectStorage ingests image bytes and resolves previously ingested
// references back to bytes.
type ObjectStorage interface {
	// Upload stores the image and returns an opaque URL for it.
	Upload(ctx context.Context, filename string, data []byte, contentType string) (string, error)
	// Fetch resolves a URL produced by Upload back to bytes and a mime type.
	Fetch(ctx context.Context, url string) ([]byte, string, error)
}
