package glcontext

import "errors"

// Errors returned by System.Init.
var (
	// ErrUnsupported is returned when the surface cannot produce a
	// context of any generation. There is no fallback path; the host
	// must decide whether to use another rendering backend or abort.
	ErrUnsupported = errors.New("glcontext: surface cannot produce a rendering context")

	// ErrTornDown is returned when Init is called after Teardown.
	ErrTornDown = errors.New("glcontext: system is torn down")
)

// System obtains a valid, capability-probed rendering context and keeps
// the rest of the engine informed of its identity and health.
//
// A System owns at most one native context; creating or adopting a new
// one supersedes the previous handle. All operations run on the
// rendering thread. System is not safe for concurrent use.
type System struct {
	surface  Surface
	notifier Notifier

	cfg config

	gl         RenderingContext
	generation int // 1 or 2; 0 until a context is established
	caps       Capabilities
	exts       Extensions

	state     State
	listening bool
}

// Ensure System receives surface signals as explicit transitions.
var _ ContextListener = (*System)(nil)

// New creates a System drawing from surface and reporting context
// changes to notifier. A nil notifier discards notifications.
func New(surface Surface, notifier Notifier) *System {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &System{
		surface:  surface,
		notifier: notifier,
		cfg:      defaultConfig(),
	}
}

// Init establishes the rendering context. With WithExistingContext the
// supplied handle is adopted directly and no creation call is made;
// otherwise a context is requested from the surface, modern generation
// first. On success the context is validated, capabilities are probed
// and one context-changed notification has been emitted.
//
// If the surface cannot produce a context at all, Init returns
// ErrUnsupported without retrying.
func (s *System) Init(opts ...Option) error {
	if s.state == StateTornDown {
		return ErrTornDown
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.existing != nil {
		// Keep creation-only fields at their defaults; the adopted
		// context was created elsewhere.
		s.cfg.existing = cfg.existing
		s.adoptAndValidate(cfg.existing)
		return nil
	}
	s.cfg = cfg

	attrs := ContextAttributes{
		// An alpha channel is only needed when the configured background
		// is not fully opaque.
		Alpha:                 cfg.backgroundAlpha < 1,
		Stencil:               true, // mask rendering requires a stencil buffer
		PremultipliedAlpha:    cfg.premultipliedAlpha,
		PreserveDrawingBuffer: cfg.preserveDrawingBuffer,
		PowerPreference:       cfg.power,
	}
	if cfg.antialias != nil {
		attrs.Antialias = *cfg.antialias
	}

	gl, err := s.createContext(attrs)
	if err != nil {
		return err
	}
	s.adoptAndValidate(gl)
	return nil
}

// createContext requests the highest available generation from the
// surface, modern first, and records the resulting generation.
func (s *System) createContext(attrs ContextAttributes) (RenderingContext, error) {
	if gl := s.surface.GetContext(KindGL2, attrs); gl != nil {
		s.generation = 2
		return gl, nil
	}
	if gl := s.surface.GetContext(KindGL, attrs); gl != nil {
		s.generation = 1
		return gl, nil
	}
	return nil, ErrUnsupported
}

// adoptAndValidate takes ownership of gl, corrects the recorded
// generation, probes extensions and capabilities, registers for surface
// signals and emits the context-changed notification. Both the creation
// path and externally supplied contexts funnel through here.
func (s *System) adoptAndValidate(gl RenderingContext) {
	s.gl = gl

	// The handle is the truth about its generation, not whatever
	// creation (or the caller) assumed.
	if _, ok := gl.(RenderingContext2); ok {
		s.generation = 2
	} else {
		s.generation = 1
	}

	s.refresh()

	if !s.listening {
		s.surface.AddContextListener(s)
		s.listening = true
	}

	s.state = StateActive
	Logger().Info("glcontext: context established", "generation", s.generation)
	s.notifier.ContextChanged(s.gl)
}

// refresh rebuilds the extension and capability tables from the held
// context. Called on adoption and again on restoration, so the tables
// are never incrementally patched.
func (s *System) refresh() {
	s.exts = probeExtensions(s.gl)

	attrs := s.gl.Attributes()
	s.caps = Capabilities{
		Stencil: attrs.Stencil,
	}
	if !attrs.Stencil {
		Logger().Warn("glcontext: no stencil buffer granted, mask rendering will degrade")
	}

	if s.generation == 2 {
		s.caps.Uint32Indices = true
	} else {
		s.caps.Uint32Indices = s.gl.Extension(ExtElementIndexUint) != nil
	}
	if !s.caps.Uint32Indices {
		Logger().Warn("glcontext: no 32-bit index support, large geometry will render incorrectly")
	}
}

// ContextLost is the loss transition trigger, invoked by the surface
// when the device context is lost mid-frame or between any two
// operations. It suppresses the surface's default (destructive) loss
// handling so restoration stays possible, and emits no notification.
func (s *System) ContextLost(e *LossEvent) {
	if s.state == StateTornDown {
		return
	}
	e.PreventDefault()
	s.state = StateLost
	Logger().Warn("glcontext: context lost")
}

// ContextRestored is the restoration transition trigger. The surface
// hands back the same native handle, so the held context is revalidated
// and the context-changed notification is re-emitted: dependents must
// discard every GPU resource uploaded against the pre-loss context.
//
// A restoration arriving before Teardown has detached the listener is
// still processed; only Teardown disables future transitions.
func (s *System) ContextRestored() {
	if s.state == StateTornDown || s.gl == nil {
		return
	}
	s.refresh()
	s.state = StateActive
	Logger().Info("glcontext: context restored", "generation", s.generation)
	s.notifier.ContextChanged(s.gl)
}

// IsLost reports whether no context is held or the held context reports
// itself lost. The answer is recomputed on every call: loss is an
// asynchronous external event and must never be memoized.
func (s *System) IsLost() bool {
	return s.gl == nil || s.gl.IsContextLost()
}

// Teardown detaches the surface listener, forces the context into the
// lost state when the lose-context extension is available so device
// resources are released deterministically, and drops the handle.
// Teardown is idempotent and never fails; calling it when no context is
// held is a no-op.
func (s *System) Teardown() {
	if s.state == StateTornDown {
		return
	}
	if s.listening {
		s.surface.RemoveContextListener(s)
		s.listening = false
	}
	if s.gl != nil {
		if lose := s.exts.LoseContext; lose != nil {
			lose.LoseContext()
		}
		s.gl = nil
	}
	s.caps = Capabilities{}
	s.exts = Extensions{}
	s.state = StateTornDown
}

// GL returns the active native context handle, or nil before Init and
// after Teardown. Consumers must re-fetch the handle after every
// context-changed notification instead of holding on to it.
func (s *System) GL() RenderingContext {
	return s.gl
}

// Generation returns the active context generation: 2 for modern, 1 for
// legacy, 0 when no context has been established.
func (s *System) Generation() int {
	return s.generation
}

// Capabilities returns the capability table of the active context.
func (s *System) Capabilities() Capabilities {
	return s.caps
}

// Extensions returns the optional-feature extension handles of the
// active context.
func (s *System) Extensions() Extensions {
	return s.exts
}

// State returns the lifecycle state.
func (s *System) State() State {
	return s.state
}
