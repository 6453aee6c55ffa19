// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide a simplified interface for the two
// object-storage consumers in this application: the scan image archive
// (original and annotated frames per batch) and the object-backed pantry
// state persister. This abstraction supports both AWS S3 and self-hosted
// MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it
// easier to mock storage interactions for unit testing (as seen in
// core/storage/mocks).
//
// # Operations
//
//   - BucketExists / MakeBucket: Bucket provisioning at startup (EnsureBucket).
//   - PutObject: Uploads archived frames and pantry state.
//   - GetObject: Retrieves pantry state on startup.
//   - ListObjects: Walks the archive prefix for retention pruning.
//   - RemoveObject / RemoveObjects: Deletes state or expired archive objects.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	err = storage.EnsureBucket(ctx, client, config.Bucket, config.Region)
package storage
