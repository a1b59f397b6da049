// Package glcontext manages the lifecycle of a hardware-accelerated GL
// rendering context on behalf of a renderer.
//
// # Overview
//
// glcontext owns exactly one native rendering context at a time. It
// negotiates a context across the two GL context generations (modern
// first, legacy as fallback), probes the optional hardware capabilities
// that downstream rendering code depends on for correctness, survives
// asynchronous context loss, and notifies subscribers whenever the
// active context changes so they can rebuild GPU-resident state.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/glcontext"
//	    _ "github.com/gogpu/glcontext/glfwsurface" // registers the "glfw" surface
//	)
//
//	surface, err := glcontext.NewSurface()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	bus := glcontext.NewBus()
//	bus.Subscribe(func(gl glcontext.RenderingContext) {
//	    // Discard every texture, buffer and program cached against the
//	    // previous handle, then re-upload.
//	})
//
//	sys := glcontext.New(surface, bus)
//	if err := sys.Init(glcontext.WithPowerPreference(glcontext.PowerHighPerformance)); err != nil {
//	    log.Fatal(err)
//	}
//	defer sys.Teardown()
//
// # Context loss
//
// Loss is an asynchronous external event, not an error return. The
// surface delivers loss and restoration signals to the System, which
// suppresses the surface's default (destructive) handling so recovery
// stays possible. Callers poll [System.IsLost] before issuing GPU work
// and skip rendering while it reports true. On restoration the System
// re-emits the context-changed notification with the same handle;
// subscribers must treat it exactly like a fresh context.
//
// # Capabilities
//
// Capability and extension tables are repopulated wholesale every time
// a context is established. Consumers must never cache them, or the
// native handle, across a context-changed notification.
//
// # Architecture
//
//   - Public API: System, Surface, RenderingContext, Capabilities, Bus
//   - Surfaces: glfwsurface (GLFW-backed), plus any host-provided Surface
//   - Internal: glversion (version-string parsing, extension sets)
package glcontext

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
