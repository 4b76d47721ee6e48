package storage

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectPath(t *testing.T) {
	tests := []struct {
		name     string
		bucket   string
		filePath string
		want     string
	}{
		{"bucket prefix stripped", DefaultBucket, "study-materials/u1/notes.pdf", "u1/notes.pdf"},
		{"leading slash", DefaultBucket, "/study-materials/u1/notes.pdf", "u1/notes.pdf"},
		{"no prefix", DefaultBucket, "u1/notes.pdf", "u1/notes.pdf"},
		{"other bucket untouched", DefaultBucket, "avatars/u1.png", "avatars/u1.png"},
		{"custom bucket", "docs", "docs/a.txt", "a.txt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ObjectPath(tt.bucket, tt.filePath))
		})
	}
}

func TestNewMinIOStorage_RequiresEndpoint(t *testing.T) {
	_, err := NewMinIOStorage(MinIOConfig{})
	assert.Error(t, err)
}

func TestMinIOStorage_SignedURL(t *testing.T) {
	s, err := NewMinIOStorage(MinIOConfig{
		Endpoint:  "localhost:9000",
		AccessKey: "minio",
		SecretKey: "minio-secret",
		Region:    "us-east-1",
	})
	require.NoError(t, err)

	raw, err := s.SignedURL(context.Background(), "u1/notes.pdf", 60*time.Second)
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "/study-materials/u1/notes.pdf", u.Path)
	assert.Equal(t, "60", u.Query().Get("X-Amz-Expires"))
	assert.NotEmpty(t, u.Query().Get("X-Amz-Signature"))
}

func TestMinIOStorage_SignedURL_ConfiguredBucket(t *testing.T) {
	s, err := NewMinIOStorage(MinIOConfig{
		Endpoint:  "localhost:9000",
		AccessKey: "minio",
		SecretKey: "minio-secret",
		Region:    "us-east-1",
		Bucket:    "archive",
	})
	require.NoError(t, err)

	raw, err := s.SignedURL(context.Background(), "notes.pdf", time.Minute)
	require.NoError(t, err)
	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "/archive/notes.pdf", u.Path)
}
