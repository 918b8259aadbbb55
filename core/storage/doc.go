// Package storage provides an abstraction layer for the object storage holding floor plans.
//
// It wraps the MinIO Go client to provide a small interface for the operations the
// tool needs: checking the bucket, uploading a plan, reading a plan and listing
// plans under a prefix. This abstraction supports both AWS S3 and self-hosted MinIO.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	obj, err := client.GetObject(ctx, cfg.Storage.Bucket, "plans/office.txt", minio.GetObjectOptions{})
//	if storage.IsNotFound(err) {
//	    ...
//	}
package storage
