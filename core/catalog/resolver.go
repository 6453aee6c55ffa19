package catalog

import (
	"sync"

	"fridge-manager/core/utils"
)

// Binding ties a raw observation to a stable identity.
type Binding struct {
	// Identity is the slug items are filed under in the inventory.
	Identity string `json:"identity"`
	// Name is the display name.
	Name string `json:"name"`
	// Category is one of the storage categories.
	Category string `json:"category"`
}

// Resolver maps raw labels and barcode payloads to bindings. It is safe for
// concurrent use.
type Resolver struct {
	mu     sync.RWMutex
	labels map[string]Binding
	codes  map[string]Binding
}

// NewResolver seeds the resolver with the built in label vocabulary.
func NewResolver() *Resolver {
	r := &Resolver{
		labels: make(map[string]Binding, len(categoryByLabel)),
		codes:  make(map[string]Binding),
	}
	for label, category := range categoryByLabel {
		r.labels[label] = Binding{
			Identity: utils.Slugify(label),
			Name:     label,
			Category: category,
		}
	}
	return r
}

// ResolveLabel looks up a detector label. The input is normalized before the
// lookup so callers can pass raw detector output.
func (r *Resolver) ResolveLabel(raw string) (Binding, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	binding, ok := r.labels[utils.NormalizeLabel(raw)]
	return binding, ok
}

// ResolveCode looks up a barcode payload.
func (r *Resolver) ResolveCode(code string) (Binding, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	binding, ok := r.codes[code]
	return binding, ok
}

// BindLabel registers a label binding and returns it. An empty identity
// falls back to the slug of the label, an empty category to the built in
// vocabulary with Others as the final default.
func (r *Resolver) BindLabel(raw, identity, category string) Binding {
	label := utils.NormalizeLabel(raw)
	binding := Binding{
		Identity: identity,
		Name:     label,
		Category: category,
	}
	if binding.Identity == "" {
		binding.Identity = utils.Slugify(label)
	}
	if binding.Category == "" {
		binding.Category = CategoryForLabel(label)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.labels[label] = binding
	return binding
}

// BindCode registers a barcode binding and returns it.
func (r *Resolver) BindCode(code, identity, name, category string) Binding {
	binding := Binding{
		Identity: identity,
		Name:     name,
		Category: category,
	}
	if binding.Name == "" {
		binding.Name = code
	}
	if binding.Identity == "" {
		binding.Identity = utils.Slugify(binding.Name)
	}
	if binding.Category == "" {
		binding.Category = CategoryOthers
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.codes[code] = binding
	return binding
}
