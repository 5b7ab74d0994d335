// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a small Client interface covering what the
// exporter needs to publish documents: checking and creating the target bucket and
// uploading objects. Both AWS S3 and self-hosted MinIO are supported.
//
// The interface keeps storage interactions mockable in unit tests (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	err = storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
package storage
