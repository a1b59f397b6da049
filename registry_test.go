package glcontext

import (
	"errors"
	"testing"
)

func fakeFactory() (Surface, error) {
	return &fakeSurface{}, nil
}

// TestRegistryRegister tests backend registration.
func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()

	r.Register("test", 50, fakeFactory, nil)

	entry, ok := r.Get("test")
	if !ok {
		t.Fatal("registered backend not found")
	}
	if entry.Name != "test" {
		t.Errorf("Name = %s, want test", entry.Name)
	}
	if entry.Priority != 50 {
		t.Errorf("Priority = %d, want 50", entry.Priority)
	}
	if !entry.Available() {
		t.Error("backend should be available (nil Available func)")
	}
}

// TestRegistryUnregister tests backend removal.
func TestRegistryUnregister(t *testing.T) {
	r := NewRegistry()

	r.Register("temp", 10, fakeFactory, nil)
	if _, ok := r.Get("temp"); !ok {
		t.Fatal("backend should exist before unregister")
	}

	r.Unregister("temp")
	if _, ok := r.Get("temp"); ok {
		t.Error("backend should not exist after unregister")
	}
}

// TestRegistryList tests priority-sorted listing.
func TestRegistryList(t *testing.T) {
	r := NewRegistry()

	r.Register("low", 10, fakeFactory, nil)
	r.Register("high", 100, fakeFactory, nil)
	r.Register("mid", 50, fakeFactory, nil)

	list := r.List()
	if len(list) != 3 {
		t.Fatalf("expected 3 backends, got %d", len(list))
	}
	if list[0] != "high" || list[1] != "mid" || list[2] != "low" {
		t.Errorf("List() = %v, want priority order [high mid low]", list)
	}
}

func TestRegistryAvailableFilters(t *testing.T) {
	r := NewRegistry()

	r.Register("present", 10, fakeFactory, nil)
	r.Register("absent", 100, fakeFactory, func() bool { return false })

	available := r.Available()
	if len(available) != 1 || available[0] != "present" {
		t.Errorf("Available() = %v, want [present]", available)
	}
}

func TestRegistryNewSurfacePicksHighestPriority(t *testing.T) {
	r := NewRegistry()

	low := &fakeSurface{}
	high := &fakeSurface{}
	r.Register("low", 10, func() (Surface, error) { return low, nil }, nil)
	r.Register("high", 100, func() (Surface, error) { return high, nil }, nil)

	s, err := r.NewSurface()
	if err != nil {
		t.Fatalf("NewSurface() error = %v", err)
	}
	if s != Surface(high) {
		t.Error("NewSurface() did not pick the highest-priority backend")
	}
}

func TestRegistryNewSurfaceFallsThroughFailures(t *testing.T) {
	r := NewRegistry()

	working := &fakeSurface{}
	r.Register("broken", 100, func() (Surface, error) {
		return nil, errors.New("display unavailable")
	}, nil)
	r.Register("working", 10, func() (Surface, error) { return working, nil }, nil)

	s, err := r.NewSurface()
	if err != nil {
		t.Fatalf("NewSurface() error = %v", err)
	}
	if s != Surface(working) {
		t.Error("NewSurface() did not fall through to the working backend")
	}
}

func TestRegistryNewSurfaceEmpty(t *testing.T) {
	r := NewRegistry()
	if _, err := r.NewSurface(); !errors.Is(err, ErrNoSurfaceAvailable) {
		t.Errorf("NewSurface() error = %v, want ErrNoSurfaceAvailable", err)
	}
}

func TestRegistryNewSurfaceByNameErrors(t *testing.T) {
	r := NewRegistry()
	r.Register("off", 10, fakeFactory, func() bool { return false })

	_, err := r.NewSurfaceByName("missing")
	var notFound *SurfaceNotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("error = %v, want *SurfaceNotFoundError", err)
	}

	_, err = r.NewSurfaceByName("off")
	var unavailable *SurfaceUnavailableError
	if !errors.As(err, &unavailable) {
		t.Errorf("error = %v, want *SurfaceUnavailableError", err)
	}
}

func TestGlobalRegistry(t *testing.T) {
	Register("global-test", 1, fakeFactory, nil)
	t.Cleanup(func() { Unregister("global-test") })

	if _, ok := Get("global-test"); !ok {
		t.Fatal("global registration not visible")
	}
	s, err := NewSurfaceByName("global-test")
	if err != nil {
		t.Fatalf("NewSurfaceByName() error = %v", err)
	}
	if s == nil {
		t.Error("NewSurfaceByName() returned nil surface")
	}

	found := false
	for _, name := range List() {
		if name == "global-test" {
			found = true
		}
	}
	if !found {
		t.Error("List() does not contain the registered backend")
	}
}
