// Package render fans carousel frames out to the active presentation surfaces.
package render

import (
	"sync"

	"github.com/genricoloni/promocast/internal/domain"
)

type entry struct {
	id       uint64
	renderer domain.Renderer
}

// Hub forwards every frame to its attached renderers in attach order
type Hub struct {
	mu      sync.RWMutex
	entries []entry
	nextID  uint64
}

// NewHub creates a hub with the given renderers attached
func NewHub(renderers ...domain.Renderer) *Hub {
	h := &Hub{}
	for _, r := range renderers {
		h.Attach(r)
	}
	return h
}

// Attach adds a renderer and returns a function that detaches it.
// Detaching twice is harmless.
func (h *Hub) Attach(r domain.Renderer) (detach func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	id := h.nextID
	h.entries = append(h.entries, entry{id: id, renderer: r})

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		for i, e := range h.entries {
			if e.id == id {
				h.entries = append(h.entries[:i:i], h.entries[i+1:]...)
				return
			}
		}
	}
}

// Len reports how many renderers are attached
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.entries)
}

// Render implements domain.Renderer
func (h *Hub) Render(frame domain.Frame) {
	h.mu.RLock()
	entries := h.entries
	h.mu.RUnlock()

	for _, e := range entries {
		e.renderer.Render(frame)
	}
}
