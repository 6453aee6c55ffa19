package scan_test

import (
	"context"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fridge-manager/core/imaging"
	"fridge-manager/core/storage/mocks"
	"fridge-manager/feature/scan"
)

func testFrame(t *testing.T) *imaging.Frame {
	t.Helper()

	frame, err := imaging.Decode(testJPEG(t))
	require.NoError(t, err)
	return frame
}

func listing(objects ...minio.ObjectInfo) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(objects))
	for _, object := range objects {
		ch <- object
	}
	close(ch)
	return ch
}

func removalErrors(errs ...minio.RemoveObjectError) <-chan minio.RemoveObjectError {
	ch := make(chan minio.RemoveObjectError, len(errs))
	for _, err := range errs {
		ch <- err
	}
	close(ch)
	return ch
}

func TestArchive_Store(t *testing.T) {
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "fridge", "scans/b-1.jpg", mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)
	client.On("PutObject", mock.Anything, "fridge", "scans/b-1_detected.jpg", mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	archive := scan.NewArchive(client, "fridge", "scans", zap.NewNop())
	key, err := archive.Store(context.Background(), "b-1", testFrame(t), []byte{0xff, 0xd8})
	require.NoError(t, err)
	assert.Equal(t, "scans/b-1.jpg", key)

	client.AssertExpectations(t)
}

func TestArchive_StoreSkipsEmptyAnnotation(t *testing.T) {
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "fridge", "scans/b-2.jpg", mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	archive := scan.NewArchive(client, "fridge", "scans", zap.NewNop())
	key, err := archive.Store(context.Background(), "b-2", testFrame(t), nil)
	require.NoError(t, err)
	assert.Equal(t, "scans/b-2.jpg", key)

	client.AssertNumberOfCalls(t, "PutObject", 1)
}

func TestArchive_StoreUploadFailure(t *testing.T) {
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, assert.AnError)

	archive := scan.NewArchive(client, "fridge", "scans", zap.NewNop())
	_, err := archive.Store(context.Background(), "b-3", testFrame(t), nil)
	assert.Error(t, err)
}

func TestArchive_PruneRemovesStaleObjects(t *testing.T) {
	now := time.Now()
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "fridge", mock.Anything).Return(listing(
		minio.ObjectInfo{Key: "scans/old.jpg", LastModified: now.Add(-48 * time.Hour)},
		minio.ObjectInfo{Key: "scans/fresh.jpg", LastModified: now.Add(-time.Hour)},
	))
	client.On("RemoveObjects", mock.Anything, "fridge", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			var keys []string
			for object := range args.Get(2).(<-chan minio.ObjectInfo) {
				keys = append(keys, object.Key)
			}
			assert.Equal(t, []string{"scans/old.jpg"}, keys)
		}).
		Return(removalErrors())

	archive := scan.NewArchive(client, "fridge", "scans", zap.NewNop())
	removed, err := archive.Prune(context.Background(), 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	client.AssertExpectations(t)
}

func TestArchive_PruneNothingStale(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "fridge", mock.Anything).Return(listing(
		minio.ObjectInfo{Key: "scans/fresh.jpg", LastModified: time.Now()},
	))

	archive := scan.NewArchive(client, "fridge", "scans", zap.NewNop())
	removed, err := archive.Prune(context.Background(), 24*time.Hour)
	require.NoError(t, err)
	assert.Zero(t, removed)

	client.AssertNumberOfCalls(t, "RemoveObjects", 0)
}

func TestArchive_PruneListFailure(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "fridge", mock.Anything).Return(listing(
		minio.ObjectInfo{Err: assert.AnError},
	))

	archive := scan.NewArchive(client, "fridge", "scans", zap.NewNop())
	_, err := archive.Prune(context.Background(), 24*time.Hour)
	assert.Error(t, err)
}

func TestArchive_PruneCountsDeleteFailures(t *testing.T) {
	old := time.Now().Add(-48 * time.Hour)
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "fridge", mock.Anything).Return(listing(
		minio.ObjectInfo{Key: "scans/a.jpg", LastModified: old},
		minio.ObjectInfo{Key: "scans/b.jpg", LastModified: old},
	))
	client.On("RemoveObjects", mock.Anything, "fridge", mock.Anything, mock.Anything).
		Return(removalErrors(minio.RemoveObjectError{ObjectName: "scans/a.jpg", Err: assert.AnError}))

	archive := scan.NewArchive(client, "fridge", "scans", zap.NewNop())
	removed, err := archive.Prune(context.Background(), 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
}
