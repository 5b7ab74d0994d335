package output

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/spf13/afero"
)

// ChecksumMetadata is the object metadata key carrying a document checksum.
const ChecksumMetadata = "Checksum"

// Checksum returns the hex encoded SHA-256 of a document.
func Checksum(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func (s *FileSink) Name() string { return TargetFile }

// Index maps every document below the directory to its checksum.
func (s *FileSink) Index(ctx context.Context) (map[string]string, error) {
	index := make(map[string]string)

	exists, err := afero.DirExists(s.fs, s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", s.dir, err)
	}
	if !exists {
		return index, nil
	}

	err = afero.Walk(s.fs, s.dir, func(filename string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		data, err := afero.ReadFile(s.fs, filename)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", filename, err)
		}
		rel, err := filepath.Rel(s.dir, filename)
		if err != nil {
			return err
		}
		index[filepath.ToSlash(rel)] = Checksum(data)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return index, nil
}

// ReadFile returns the content of a document.
func (s *FileSink) ReadFile(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	filename := filepath.Join(s.dir, filepath.FromSlash(name))
	data, err := afero.ReadFile(s.fs, filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	return data, nil
}

// Remove deletes a document.
func (s *FileSink) Remove(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	filename := filepath.Join(s.dir, filepath.FromSlash(name))
	if err := s.fs.Remove(filename); err != nil {
		return fmt.Errorf("failed to remove %s: %w", filename, err)
	}
	return nil
}

func (s *BucketSink) Name() string { return TargetBucket }

// Index maps every object below the prefix to the checksum recorded in its metadata.
// Objects uploaded without the metadata map to an empty checksum.
func (s *BucketSink) Index(ctx context.Context) (map[string]string, error) {
	listPrefix := ""
	if s.prefix != "" {
		listPrefix = strings.TrimSuffix(s.prefix, "/") + "/"
	}

	index := make(map[string]string)
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: listPrefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list bucket %s: %w", s.bucket, obj.Err)
		}
		if strings.HasSuffix(obj.Key, "/") {
			continue
		}

		info, err := s.client.StatObject(ctx, s.bucket, obj.Key, minio.StatObjectOptions{})
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", obj.Key, err)
		}
		index[strings.TrimPrefix(obj.Key, listPrefix)] = info.UserMetadata[ChecksumMetadata]
	}
	return index, nil
}

// Remove deletes the object a document is stored under.
func (s *BucketSink) Remove(ctx context.Context, name string) error {
	objectName := s.ObjectName(name)
	if err := s.client.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove %s: %w", objectName, err)
	}
	return nil
}

func (s *DatabaseSink) Name() string { return TargetDatabase }

// Index maps every stored document to its checksum.
func (s *DatabaseSink) Index(ctx context.Context) (map[string]string, error) {
	files, err := s.Files(ctx)
	if err != nil {
		return nil, err
	}
	index := make(map[string]string, len(files))
	for _, file := range files {
		index[file.Path] = file.Checksum
	}
	return index, nil
}

// Remove deletes the row stored under name.
func (s *DatabaseSink) Remove(ctx context.Context, name string) error {
	err := s.db.WithContext(ctx).Where("path = ?", name).Delete(&ExportedFile{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", name, err)
	}
	return nil
}
