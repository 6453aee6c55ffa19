package scan

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"

	"fridge-manager/core/imaging"
	"fridge-manager/core/storage"
)

// Archive stores processed frames in object storage.
type Archive struct {
	client storage.Client
	bucket string
	prefix string
	logger *zap.Logger
}

// NewArchive creates an archive rooted at prefix inside the bucket.
func NewArchive(client storage.Client, bucket, prefix string, logger *zap.Logger) *Archive {
	return &Archive{client: client, bucket: bucket, prefix: prefix, logger: logger}
}

// Store uploads the original frame and, when provided, an annotated JPEG
// copy. It returns the object key of the original.
func (a *Archive) Store(ctx context.Context, batchID string, frame *imaging.Frame, annotated []byte) (string, error) {
	key := a.objectKey(batchID + frameExt(frame.Format))
	_, err := a.client.PutObject(ctx, a.bucket, key,
		bytes.NewReader(frame.Bytes), int64(len(frame.Bytes)),
		minio.PutObjectOptions{ContentType: "image/" + frame.Format})
	if err != nil {
		return "", fmt.Errorf("failed to archive frame: %w", err)
	}

	if len(annotated) > 0 {
		detectedKey := a.objectKey(batchID + "_detected.jpg")
		_, err := a.client.PutObject(ctx, a.bucket, detectedKey,
			bytes.NewReader(annotated), int64(len(annotated)),
			minio.PutObjectOptions{ContentType: "image/jpeg"})
		if err != nil {
			return "", fmt.Errorf("failed to archive annotated frame: %w", err)
		}
	}

	return key, nil
}

// Prune removes archived frames older than the retention window and
// returns how many were removed. Individual delete failures are logged and
// retried on the next run.
func (a *Archive) Prune(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := time.Now().Add(-olderThan)

	var stale []minio.ObjectInfo
	for object := range a.client.ListObjects(ctx, a.bucket, minio.ListObjectsOptions{
		Prefix:    a.prefix + "/",
		Recursive: true,
	}) {
		if object.Err != nil {
			return 0, fmt.Errorf("failed to list archive: %w", object.Err)
		}
		if object.LastModified.Before(cutoff) {
			stale = append(stale, object)
		}
	}
	if len(stale) == 0 {
		return 0, nil
	}

	objectsCh := make(chan minio.ObjectInfo, len(stale))
	for _, object := range stale {
		objectsCh <- object
	}
	close(objectsCh)

	removed := len(stale)
	for removeErr := range a.client.RemoveObjects(ctx, a.bucket, objectsCh, minio.RemoveObjectsOptions{}) {
		a.logger.Warn("failed to remove archived frame",
			zap.String("object", removeErr.ObjectName),
			zap.Error(removeErr.Err))
		removed--
	}

	a.logger.Info("archive pruned",
		zap.Int("removed", removed),
		zap.Time("cutoff", cutoff))
	return removed, nil
}

func (a *Archive) objectKey(name string) string {
	return a.prefix + "/" + name
}

func frameExt(format string) string {
	switch format {
	case "png":
		return ".png"
	case "gif":
		return ".gif"
	default:
		return ".jpg"
	}
}
