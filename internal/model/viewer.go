package model

import "sync"

// Viewer - игрок, открывший наковальню.
type Viewer struct {
	objectID uint32
	name     string

	mu       sync.Mutex
	received []*Item
}

// NewViewer creates a viewer.
func NewViewer(objectID uint32, name string) *Viewer {
	return &Viewer{objectID: objectID, name: name}
}

// ObjectID returns the viewer's unique ID.
func (v *Viewer) ObjectID() uint32 {
	return v.objectID
}

// Name returns the viewer's name (permission lookups key on it).
func (v *Viewer) Name() string {
	return v.name
}

// Give hands an item to the viewer's cursor/inventory.
func (v *Viewer) Give(item *Item) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.received = append(v.received, item)
}

// Received returns a snapshot of items handed to the viewer.
func (v *Viewer) Received() []*Item {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]*Item, len(v.received))
	copy(out, v.received)
	return out
}
