// Package storage persists uploaded files in a gocloud.dev blob bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"eventhub/config"
	"eventhub/internal/domain/lifecycle"
	"eventhub/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Registered URL schemes: file://, mem:// and gs://.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

const defaultBucketURL = "mem://"

// BlobStorage implements service.ObjectStorage on top of a blob bucket.
type BlobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// NewBlobStorage wraps an opened bucket. Object URLs are publicBaseURL + "/" + key.
func NewBlobStorage(bucket *blob.Bucket, publicBaseURL string) *BlobStorage {
	return &BlobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Put streams r into the bucket under key and returns the object's public URL.
func (s *BlobStorage) Put(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrapf(err, "open writer for %s", key)
	}

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()

		return "", errors.Wrapf(err, "write %s", key)
	}

	if err := w.Close(); err != nil {
		return "", errors.Wrapf(err, "commit %s", key)
	}

	return s.publicBaseURL + "/" + key, nil
}

// Close releases the bucket.
func (s *BlobStorage) Close() error {
	return s.bucket.Close()
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the bucket configured by storage.bucketUrl, defaulting to an in-memory bucket.
func New(params Params) (service.ObjectStorage, error) {
	bucketURL := defaultBucketURL
	publicBaseURL := ""
	if params.Config.Storage != nil {
		if params.Config.Storage.BucketURL != "" {
			bucketURL = params.Config.Storage.BucketURL
		}
		publicBaseURL = params.Config.Storage.PublicBaseURL
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", bucketURL)
	}
	params.Logger.Info("Object storage ready", slog.String("bucket", bucketURL))

	storage := NewBlobStorage(bucket, publicBaseURL)
	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return storage.Close()
		},
	})

	return storage, nil
}

// Module provides the object storage
var Module = fx.Options(
	fx.Provide(New),
)
