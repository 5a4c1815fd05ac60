// Package storage holds claim artifacts (signature images, damage photos)
// in private buckets and hands out short-lived presigned GET URLs.
package storage

import (
	"context"
	"time"
)

// ObjectStore is the artifact-store boundary. The S3 implementation is the
// real one; tests substitute an in-memory fake.
type ObjectStore interface {
	// SignedURL issues a time-limited access reference to one object.
	SignedURL(ctx context.Context, bucket, key string, ttl time.Duration) (string, error)
	// List returns the object names (without the prefix) under a prefix.
	List(ctx context.Context, bucket, prefix string) ([]string, error)
	// Remove deletes the given objects. Missing objects are not an error.
	Remove(ctx context.Context, bucket string, keys []string) error
	// Download fetches an object's bytes, used for document rendering.
	Download(ctx context.Context, bucket, key string) ([]byte, error)
}
