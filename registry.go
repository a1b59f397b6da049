package glcontext

import (
	"errors"
	"sort"
	"sync"
)

// SurfaceFactory creates a new Surface instance.
// Implementations should return descriptive errors when the underlying
// window system refuses to initialize.
type SurfaceFactory func() (Surface, error)

// RegistryEntry represents a registered surface backend.
type RegistryEntry struct {
	// Name is the unique identifier for this backend.
	Name string

	// Priority determines selection order (higher = preferred).
	// Standard priorities:
	//   - 100: native window-system backends (GLFW, SDL)
	//   - 10: headless or offscreen backends
	Priority int

	// Factory creates surface instances.
	Factory SurfaceFactory

	// Available reports if the backend is available on this system.
	Available func() bool
}

// globalRegistry is the default registry.
var globalRegistry = &Registry{}

// Registry manages registered surface backends.
//
// Surface implementations register themselves from init(), so hosts
// enable a backend with a blank import and pick it by name or let the
// registry auto-select the best available one:
//
//	import _ "github.com/gogpu/glcontext/glfwsurface"
//
//	surface, err := glcontext.NewSurface()
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*RegistryEntry
}

// NewRegistry creates a new empty registry.
// Most code should use the global registry via Register and NewSurface.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*RegistryEntry),
	}
}

// Register adds a backend to the global registry.
//
// If available is nil, the backend is assumed always available.
// Registering a name that already exists replaces the previous entry.
func Register(name string, priority int, factory SurfaceFactory, available func() bool) {
	globalRegistry.Register(name, priority, factory, available)
}

// Unregister removes a backend from the global registry.
// This is useful for testing.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// List returns all registered backend names sorted by priority (highest first).
func List() []string {
	return globalRegistry.List()
}

// AvailableSurfaces returns names of all available backends sorted by priority.
func AvailableSurfaces() []string {
	return globalRegistry.Available()
}

// Get returns information about a specific backend.
func Get(name string) (*RegistryEntry, bool) {
	return globalRegistry.Get(name)
}

// NewSurface creates a surface using the best available backend.
// Returns an error if no backends are available.
func NewSurface() (Surface, error) {
	return globalRegistry.NewSurface()
}

// NewSurfaceByName creates a surface using a specific named backend.
func NewSurfaceByName(name string) (Surface, error) {
	return globalRegistry.NewSurfaceByName(name)
}

// Register adds a backend to this registry.
func (r *Registry) Register(name string, priority int, factory SurfaceFactory, available func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]*RegistryEntry)
	}
	if available == nil {
		available = func() bool { return true }
	}
	r.entries[name] = &RegistryEntry{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

// Unregister removes a backend from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, name)
}

// List returns all registered backend names sorted by priority.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(false)
}

// Available returns names of all available backends sorted by priority.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(true)
}

// Get returns information about a specific backend.
func (r *Registry) Get(name string) (*RegistryEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[name]
	if !ok {
		return nil, false
	}

	// Return a copy to prevent modification
	entryCopy := *entry
	return &entryCopy, true
}

// NewSurface creates a surface using the best available backend,
// trying each one in priority order.
func (r *Registry) NewSurface() (Surface, error) {
	r.mu.RLock()
	available := r.sortedNames(true)
	r.mu.RUnlock()

	if len(available) == 0 {
		return nil, ErrNoSurfaceAvailable
	}

	var lastErr error
	for _, name := range available {
		s, err := r.NewSurfaceByName(name)
		if err == nil {
			return s, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// NewSurfaceByName creates a surface using a specific backend.
func (r *Registry) NewSurfaceByName(name string) (Surface, error) {
	r.mu.RLock()
	entry, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &SurfaceNotFoundError{Name: name}
	}
	if !entry.Available() {
		return nil, &SurfaceUnavailableError{Name: name}
	}
	return entry.Factory()
}

// sortedNames returns backend names sorted by priority (highest first).
// If onlyAvailable is true, filters to available backends only.
// Must be called with lock held.
func (r *Registry) sortedNames(onlyAvailable bool) []string {
	if len(r.entries) == 0 {
		return nil
	}

	type entry struct {
		name     string
		priority int
	}

	entries := make([]entry, 0, len(r.entries))
	for name, e := range r.entries {
		if onlyAvailable && !e.Available() {
			continue
		}
		entries = append(entries, entry{name: name, priority: e.Priority})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].priority > entries[j].priority
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}

// ErrNoSurfaceAvailable is returned when no surface backends are
// registered or available on the current system.
var ErrNoSurfaceAvailable = errors.New("glcontext: no surface backend available")

// SurfaceNotFoundError indicates a named backend is not registered.
type SurfaceNotFoundError struct {
	Name string
}

func (e *SurfaceNotFoundError) Error() string {
	return "glcontext: surface backend not found: " + e.Name
}

// SurfaceUnavailableError indicates a backend exists but is not
// available on this system.
type SurfaceUnavailableError struct {
	Name string
}

func (e *SurfaceUnavailableError) Error() string {
	return "glcontext: surface backend unavailable: " + e.Name
}
