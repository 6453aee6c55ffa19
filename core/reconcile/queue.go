package reconcile

import (
	"sort"
	"sync"
	"time"
)

// UnresolvedItem is queued evidence for a raw label or payload that has no
// identity binding yet. Count reflects the latest batch that saw the raw
// value; Batches counts how many batches have seen it in total.
type UnresolvedItem struct {
	// Raw is the normalized label or barcode payload.
	Raw string `json:"raw"`

	// Source is the strongest evidence channel that produced the raw value.
	Source Source `json:"source"`

	// Count is the instance count from the most recent batch.
	Count int `json:"count"`

	// Confidence is the highest confidence seen across batches.
	Confidence float64 `json:"confidence"`

	// FirstSeen and LastSeen bound the raw value's sighting window.
	FirstSeen time.Time `json:"first_seen"`
	LastSeen  time.Time `json:"last_seen"`

	// Batches is the number of batches that contained the raw value.
	Batches int `json:"batches"`
}

// UnresolvedQueue holds evidence awaiting manual identity binding.
// It is keyed by raw value and safe for concurrent use.
type UnresolvedQueue struct {
	mu    sync.RWMutex
	items map[string]UnresolvedItem
}

// NewUnresolvedQueue creates an empty queue.
func NewUnresolvedQueue() *UnresolvedQueue {
	return &UnresolvedQueue{items: make(map[string]UnresolvedItem)}
}

// Put records a batch's aggregated sighting of a raw value. An existing entry
// keeps its first-seen time and batch counter; the count is replaced, not
// summed, mirroring replace-by-latest-batch semantics.
func (q *UnresolvedQueue) Put(raw string, source Source, count int, confidence float64, at time.Time) {
	q.mu.Lock()
	defer q.mu.Unlock()

	item, ok := q.items[raw]
	if !ok {
		item = UnresolvedItem{Raw: raw, FirstSeen: at}
	}

	item.Count = count
	item.LastSeen = at
	item.Batches++
	if confidence > item.Confidence {
		item.Confidence = confidence
	}
	if sourceRank(source) >= sourceRank(item.Source) {
		item.Source = source
	}

	q.items[raw] = item
}

// List returns all queued items ordered by raw value.
func (q *UnresolvedQueue) List() []UnresolvedItem {
	q.mu.RLock()
	defer q.mu.RUnlock()

	items := make([]UnresolvedItem, 0, len(q.items))
	for _, item := range q.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Raw < items[j].Raw
	})
	return items
}

// Take removes and returns the item for a raw value, if queued.
// Used when a binding arrives so the parked evidence can be replayed.
func (q *UnresolvedQueue) Take(raw string) (UnresolvedItem, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	item, ok := q.items[raw]
	if ok {
		delete(q.items, raw)
	}
	return item, ok
}

// Len returns the number of queued raw values.
func (q *UnresolvedQueue) Len() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return len(q.items)
}
