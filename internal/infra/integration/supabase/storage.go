package supabase

import (
	"context"
	"fmt"
	"io"

	storage_go "github.com/supabase-community/storage-go"
)

const cacheControl = "3600"

// MediaBucket uploads portfolio and team images to a public bucket.
type MediaBucket struct {
	client *storage_go.Client
	bucket string
}

func NewMediaBucket(storageURL, serviceKey, bucket string) *MediaBucket {
	return &MediaBucket{
		client: storage_go.NewClient(storageURL, serviceKey, nil),
		bucket: bucket,
	}
}

// Upload never overwrites: object names are unique per call.
func (b *MediaBucket) Upload(ctx context.Context, path, contentType string, data io.Reader) (string, error) {
	upsert := false
	cache := cacheControl
	opts := storage_go.FileOptions{CacheControl: &cache, Upsert: &upsert}
	if contentType != "" {
		opts.ContentType = &contentType
	}

	if _, err := b.client.UploadFile(b.bucket, path, data, opts); err != nil {
		return "", fmt.Errorf("upload %s: %w", path, err)
	}
	return b.client.GetPublicUrl(b.bucket, path).SignedURL, nil
}
