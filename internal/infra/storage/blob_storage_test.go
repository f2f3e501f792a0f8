package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobStorage_Put(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	storage := NewBlobStorage(bucket, "http://localhost:8080/uploads/")
	defer storage.Close()

	url, err := storage.Put(ctx, "profile-images/u1.png", "image/png", strings.NewReader("png-bytes"))

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/profile-images/u1.png", url)

	data, err := bucket.ReadAll(ctx, "profile-images/u1.png")
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	attrs, err := bucket.Attributes(ctx, "profile-images/u1.png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", attrs.ContentType)
}
