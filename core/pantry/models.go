package pantry

import (
	"errors"
	"time"
)

var (
	// ErrPersistence indicates durable state could not be written. The in
	// memory inventory is unchanged when this is returned.
	ErrPersistence = errors.New("inventory persistence failed")
	// ErrNotFound indicates the identity is not in the inventory.
	ErrNotFound = errors.New("item not found")
)

// Entry is one tracked item.
type Entry struct {
	// Identity is the stable handle the item is filed under.
	Identity string `json:"identity"`
	// Quantity is the current unit count. Never negative.
	Quantity int `json:"quantity"`
	// Category is the storage category, empty when never classified.
	Category string `json:"category,omitempty"`
	// Source names the evidence behind the last update.
	Source string `json:"source,omitempty"`
	// Expires is the estimated use-by time, zero when unknown.
	Expires time.Time `json:"expires_at"`
	// FirstSeen is when the item first entered the inventory.
	FirstSeen time.Time `json:"first_seen"`
	// UpdatedAt is when the entry last changed.
	UpdatedAt time.Time `json:"updated_at"`
	// LastBatch is the batch that produced the current quantity.
	LastBatch string `json:"last_batch,omitempty"`
}

// Snapshot is a point in time copy of the inventory, safe to read while
// batches keep applying.
type Snapshot struct {
	// Items is sorted by identity.
	Items []Entry `json:"items"`
	// Total is the sum of all quantities.
	Total int `json:"total"`
	// TakenAt is when the snapshot was taken.
	TakenAt time.Time `json:"taken_at"`
}
