package glcontext

// Surface is a drawing target that can produce rendering contexts and
// deliver loss/restoration signals. Window-system backends (see the
// glfwsurface package) implement Surface; hosts embedding a renderer can
// provide their own.
//
// Signals are delivered on the rendering thread; Surface implementations
// must not invoke listeners concurrently with other context operations.
type Surface interface {
	// GetContext requests a rendering context of the given kind with the
	// given creation attributes. It returns nil when the surface cannot
	// produce a context of that kind.
	GetContext(kind ContextKind, attrs ContextAttributes) RenderingContext

	// AddContextListener registers l to receive loss and restoration
	// signals for contexts produced by this surface.
	AddContextListener(l ContextListener)

	// RemoveContextListener detaches a previously registered listener.
	// Removing a listener that is not registered is a no-op.
	RemoveContextListener(l ContextListener)
}

// ContextListener receives loss and restoration signals from a Surface.
// The two methods are the named transition triggers of the context
// lifecycle; the System implements this interface.
type ContextListener interface {
	// ContextLost is invoked when the device context is lost. Handlers
	// that intend to recover must call e.PreventDefault, otherwise the
	// surface permanently abandons the context.
	ContextLost(e *LossEvent)

	// ContextRestored is invoked when a lost context becomes usable
	// again. Restoration reuses the same native handle.
	ContextRestored()
}

// LossEvent carries a context-loss signal. The surface's default
// handling of a loss is destructive; calling PreventDefault suppresses
// it so the context can be restored later.
type LossEvent struct {
	defaultPrevented bool
}

// PreventDefault suppresses the surface's default loss handling.
func (e *LossEvent) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether PreventDefault has been called.
func (e *LossEvent) DefaultPrevented() bool {
	return e.defaultPrevented
}
