package service

import (
	"context"
	"io"
)

// ObjectStorage stores uploaded files and returns their public URL.
type ObjectStorage interface {
	Put(ctx context.Context, key, contentType string, r io.Reader) (string, error)
	Close() error
}
