package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/zodin-dev/symphony/internal/models"
)

// MediaStorage stores uploaded audio and video files in a MinIO bucket.
// Objects are namespaced by kind under audio/ and videos/ prefixes.
type MediaStorage struct {
	client *minio.Client
	bucket string
}

func NewMediaStorage(endpoint, accessKey, secretKey, bucket string, useSSL bool) (*MediaStorage, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MinIO: %w", err)
	}

	return &MediaStorage{
		client: client,
		bucket: bucket,
	}, nil
}

func objectName(kind models.MediaKind, filename string) string {
	if kind == models.MediaVideo {
		return "videos/" + filename
	}
	return "audio/" + filename
}

// Put streams an uploaded file into the bucket
func (s *MediaStorage) Put(ctx context.Context, kind models.MediaKind, filename string, r io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, objectName(kind, filename), r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to store file %s: %w", filename, err)
	}
	return nil
}

// Get returns a data stream for a stored file
func (s *MediaStorage) Get(ctx context.Context, kind models.MediaKind, filename string) (io.ReadCloser, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, objectName(kind, filename), minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get file %s: %w", filename, err)
	}
	return obj, nil
}

// Remove deletes a stored file, called after its database row is gone
func (s *MediaStorage) Remove(ctx context.Context, kind models.MediaKind, filename string) error {
	err := s.client.RemoveObject(ctx, s.bucket, objectName(kind, filename), minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to remove file %s: %w", filename, err)
	}
	return nil
}
