package glcontext

// Option configures a System during Init.
// Use functional options to customize context creation.
//
// Example:
//
//	// Default creation
//	err := sys.Init()
//
//	// High-performance GPU, buffer preserved across frames
//	err := sys.Init(
//	    glcontext.WithPowerPreference(glcontext.PowerHighPerformance),
//	    glcontext.WithPreserveDrawingBuffer(true),
//	)
type Option func(*config)

// config holds the creation configuration snapshot. It is retained only
// to replay context creation and never mutated after Init.
type config struct {
	existing              RenderingContext
	power                 PowerPreference
	premultipliedAlpha    bool
	preserveDrawingBuffer bool
	antialias             *bool // nil leaves the choice to the surface
	backgroundAlpha       float64
}

// defaultConfig returns the default creation configuration.
func defaultConfig() config {
	return config{
		power:              PowerDefault,
		premultipliedAlpha: true,
		backgroundAlpha:    1,
	}
}

// WithExistingContext adopts a pre-existing native context instead of
// creating one. Creation-only options (power preference, buffer
// preservation, antialiasing) keep their defaults in that case: the
// adopted context was created elsewhere and its attributes are read
// back from the handle itself.
func WithExistingContext(gl RenderingContext) Option {
	return func(c *config) {
		c.existing = gl
	}
}

// WithPowerPreference hints which GPU the context should be placed on.
func WithPowerPreference(p PowerPreference) Option {
	return func(c *config) {
		c.power = p
	}
}

// WithPremultipliedAlpha sets whether the drawing buffer contains
// premultiplied alpha. The default is true.
func WithPremultipliedAlpha(premultiplied bool) Option {
	return func(c *config) {
		c.premultipliedAlpha = premultiplied
	}
}

// WithPreserveDrawingBuffer keeps the drawing buffer contents across
// frames. The default is false; preserving costs performance on tiled
// GPUs.
func WithPreserveDrawingBuffer(preserve bool) Option {
	return func(c *config) {
		c.preserveDrawingBuffer = preserve
	}
}

// WithAntialias explicitly requests or refuses multisampled
// antialiasing. Without this option the surface chooses.
func WithAntialias(antialias bool) Option {
	return func(c *config) {
		c.antialias = &antialias
	}
}

// WithBackgroundAlpha passes the renderer's configured background
// opacity in [0, 1]. An opacity below 1 makes the System request an
// alpha channel so the surface can composite over what is behind it.
// The default is 1 (fully opaque, no alpha channel).
func WithBackgroundAlpha(alpha float64) Option {
	return func(c *config) {
		c.backgroundAlpha = alpha
	}
}
