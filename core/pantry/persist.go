package pantry

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/minio/minio-go/v7"

	"fridge-manager/core/storage"
)

// Persister stores the complete inventory document.
type Persister interface {
	// Load returns the persisted state, or an empty map when nothing has
	// been written yet.
	Load(ctx context.Context) (map[string]Entry, error)
	// Save replaces the persisted state.
	Save(ctx context.Context, entries map[string]Entry) error
	// Reset deletes the persisted state.
	Reset(ctx context.Context) error
}

// decodeEntries parses a persisted inventory document. Entries keep their
// map key as identity, absent fields keep their zero values and negative
// quantities are clamped, so documents written by older builds still load.
func decodeEntries(data []byte) (map[string]Entry, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]Entry{}, nil
	}

	var raw map[string]Entry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode inventory: %w", err)
	}

	entries := make(map[string]Entry, len(raw))
	for identity, entry := range raw {
		if identity == "" {
			continue
		}
		entry.Identity = identity
		if entry.Quantity < 0 {
			entry.Quantity = 0
		}
		entries[identity] = entry
	}
	return entries, nil
}

func encodeEntries(entries map[string]Entry) ([]byte, error) {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode inventory: %w", err)
	}
	return data, nil
}

// FilePersister keeps the inventory in a local JSON file.
type FilePersister struct {
	path string
}

// NewFilePersister creates a file backed persister.
func NewFilePersister(path string) *FilePersister {
	return &FilePersister{path: path}
}

func (p *FilePersister) Load(_ context.Context) (map[string]Entry, error) {
	data, err := os.ReadFile(p.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory file: %w", err)
	}
	return decodeEntries(data)
}

// Save writes to a temp file and renames it over the target so a crash mid
// write never leaves a half written document.
func (p *FilePersister) Save(_ context.Context, entries map[string]Entry) error {
	data, err := encodeEntries(entries)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(p.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create inventory directory: %w", err)
		}
	}

	tmp := p.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write inventory file: %w", err)
	}
	if err := os.Rename(tmp, p.path); err != nil {
		return fmt.Errorf("failed to replace inventory file: %w", err)
	}
	return nil
}

func (p *FilePersister) Reset(_ context.Context) error {
	err := os.Remove(p.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// ObjectPersister keeps the inventory as a single object in a bucket.
type ObjectPersister struct {
	client     storage.Client
	bucket     string
	objectName string
}

// NewObjectPersister creates a bucket backed persister.
func NewObjectPersister(client storage.Client, bucket, objectName string) *ObjectPersister {
	return &ObjectPersister{client: client, bucket: bucket, objectName: objectName}
}

func (p *ObjectPersister) Load(ctx context.Context) (map[string]Entry, error) {
	object, err := p.client.GetObject(ctx, p.bucket, p.objectName, minio.GetObjectOptions{})
	if err != nil {
		if isMissingObject(err) {
			return map[string]Entry{}, nil
		}
		return nil, fmt.Errorf("failed to fetch inventory object: %w", err)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		// The minio client defers the existence check to the first read.
		if isMissingObject(err) {
			return map[string]Entry{}, nil
		}
		return nil, fmt.Errorf("failed to read inventory object: %w", err)
	}
	return decodeEntries(data)
}

func (p *ObjectPersister) Save(ctx context.Context, entries map[string]Entry) error {
	data, err := encodeEntries(entries)
	if err != nil {
		return err
	}

	_, err = p.client.PutObject(ctx, p.bucket, p.objectName,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return fmt.Errorf("failed to store inventory object: %w", err)
	}
	return nil
}

func (p *ObjectPersister) Reset(ctx context.Context) error {
	err := p.client.RemoveObject(ctx, p.bucket, p.objectName, minio.RemoveObjectOptions{})
	if err != nil && !isMissingObject(err) {
		return fmt.Errorf("failed to remove inventory object: %w", err)
	}
	return nil
}

func isMissingObject(err error) bool {
	return minio.ToErrorResponse(err).Code == "NoSuchKey"
}
