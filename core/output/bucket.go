package output

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"data-exporter/core/storage"

	"github.com/minio/minio-go/v7"
)

// BucketSink uploads documents to an object storage bucket.
type BucketSink struct {
	client storage.Client
	bucket string
	prefix string
}

// NewBucketSink creates a sink uploading to bucket under prefix.
func NewBucketSink(client storage.Client, bucket, prefix string) *BucketSink {
	return &BucketSink{client: client, bucket: bucket, prefix: prefix}
}

// ObjectName returns the object key a document is stored under.
func (s *BucketSink) ObjectName(name string) string {
	if s.prefix == "" {
		return name
	}
	return path.Join(s.prefix, name)
}

func (s *BucketSink) WriteJSON(ctx context.Context, name string, v any) error {
	data, err := EncodeJSON(v)
	if err != nil {
		return err
	}
	return s.WriteFile(ctx, name, data)
}

func (s *BucketSink) WriteFile(ctx context.Context, name string, data []byte) error {
	objectName := s.ObjectName(name)
	_, err := s.client.PutObject(ctx, s.bucket, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType:  ContentType(name),
		UserMetadata: map[string]string{ChecksumMetadata: Checksum(data)},
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", objectName, err)
	}
	return nil
}
