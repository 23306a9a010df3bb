package interact

import "sync"

// Registry tracks the single object currently held (floating). At most one
// object occupies the slot; only Interactable transitions write it.
type Registry struct {
	mu   sync.Mutex
	held *Interactable
}

func NewRegistry() *Registry {
	return &Registry{}
}

// tryAcquire claims the slot for o. It succeeds when the slot is empty or
// already held by o.
func (r *Registry) tryAcquire(o *Interactable) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.held != nil && r.held != o {
		return false
	}
	r.held = o
	return true
}

// release empties the slot if o holds it.
func (r *Registry) release(o *Interactable) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.held != o || o == nil {
		return false
	}
	r.held = nil
	return true
}

// Held returns the held object, or nil.
func (r *Registry) Held() *Interactable {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.held
}

func (r *Registry) IsAnyHeld() bool {
	return r.Held() != nil
}

// HeldName returns the held object's name, or "" when nothing is held.
func (r *Registry) HeldName() string {
	if h := r.Held(); h != nil {
		return h.Name()
	}
	return ""
}
