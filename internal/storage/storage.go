package storage

import (
	"context"
	"strings"
	"time"
)

// DefaultBucket holds uploaded study materials.
const DefaultBucket = "study-materials"

// Signer issues time-limited download URLs for stored objects.
// Upload and deletion are handled by the consumer application, not here.
type Signer interface {
	// SignedURL returns a GET URL for key that expires after expiry.
	SignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// ObjectPath turns a stored file_path into an object key of bucket.
// Paths are stored with a leading "<bucket>/" which the store does not expect.
func ObjectPath(bucket, filePath string) string {
	p := strings.TrimPrefix(filePath, "/")
	return strings.TrimPrefix(p, bucket+"/")
}
