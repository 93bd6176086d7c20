package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	gcstorage "cloud.google.com/go/storage"
)

// GCSStore stores blobs in a Google Cloud Storage bucket. Application
// Default Credentials are assumed.
type GCSStore struct {
	client        *gcstorage.Client
	bucket        string
	uploadTimeout time.Duration
	logger        *slog.Logger
}

func NewGCSStore(ctx context.Context, bucket string, uploadTimeout time.Duration, logger *slog.Logger) (*GCSStore, error) {
	if bucket == "" {
		return nil, fmt.Errorf("bucket name is required")
	}
	if uploadTimeout <= 0 {
		uploadTimeout = 2 * time.Minute
	}
	if logger == nil {
		logger = slog.Default()
	}
	client, err := gcstorage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	return &GCSStore{client: client, bucket: bucket, uploadTimeout: uploadTimeout, logger: logger}, nil
}

func (s *GCSStore) Close() error {
	return s.client.Close()
}

// Save writes the blob and returns its gs:// URI.
func (s *GCSStore) Save(ctx context.Context, objectName, contentType string, data []byte) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.uploadTimeout)
	defer cancel()

	start := time.Now()
	w := s.client.Bucket(s.bucket).Object(objectName).NewWriter(ctx)
	if contentType != "" {
		w.ContentType = contentType
	}
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		s.logger.Error("storage.upload_error", "bucket", s.bucket, "object", objectName, "error", err)
		return "", fmt.Errorf("write object: %w", err)
	}
	if err := w.Close(); err != nil {
		s.logger.Error("storage.upload_error", "bucket", s.bucket, "object", objectName, "error", err)
		return "", fmt.Errorf("finalize upload: %w", err)
	}

	uri := fmt.Sprintf("gs://%s/%s", s.bucket, objectName)
	s.logger.Info("storage.uploaded",
		"uri", uri,
		"bytes", len(data),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return uri, nil
}

// Fetch downloads the blob behind a gs:// URI.
func (s *GCSStore) Fetch(ctx context.Context, uri string) ([]byte, error) {
	bucket, object, err := parseURI(uri)
	if err != nil {
		return nil, err
	}
	rc, err := s.client.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("read object %s/%s: %w", bucket, object, err)
	}
	defer func() { _ = rc.Close() }()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read bytes: %w", err)
	}
	return data, nil
}

func parseURI(uri string) (bucket, object string, err error) {
	if !strings.HasPrefix(uri, "gs://") {
		return "", "", fmt.Errorf("invalid GCS URI: %s", uri)
	}
	parts := strings.SplitN(strings.TrimPrefix(uri, "gs://"), "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid GCS URI (no object path): %s", uri)
	}
	return parts[0], parts[1], nil
}
