// Package storage persists original document blobs. Ingestion works without
// it: when no store is configured the transaction still lands, only the
// document_url stays empty.
package storage

import "context"

// BlobStore saves raw document bytes and returns a stable reference URI.
type BlobStore interface {
	Save(ctx context.Context, objectName string, contentType string, data []byte) (string, error)
	Fetch(ctx context.Context, uri string) ([]byte, error)
}
