package glcontext

// ContextKind identifies a GL context generation when requesting a
// context from a Surface.
type ContextKind string

const (
	// KindGL2 is the modern context generation. It folds several legacy
	// extensions into the core API, including 32-bit element indices.
	KindGL2 ContextKind = "gl2"

	// KindGL is the legacy context generation. Optional features must be
	// obtained through extensions.
	KindGL ContextKind = "gl"
)

// PowerPreference hints which GPU the surface should place the context on
// in a multi-GPU system. Surfaces are free to ignore it.
type PowerPreference string

const (
	// PowerDefault lets the surface choose.
	PowerDefault PowerPreference = "default"

	// PowerHighPerformance requests the discrete GPU when one exists.
	PowerHighPerformance PowerPreference = "high-performance"

	// PowerLowPower requests the integrated GPU when one exists.
	PowerLowPower PowerPreference = "low-power"
)

// ContextAttributes describes the attributes requested at context creation,
// and the attributes a context actually granted. Surfaces may grant fewer
// attributes than requested; [RenderingContext.Attributes] reports the truth.
type ContextAttributes struct {
	// Alpha requests an alpha channel in the drawing buffer so the
	// surface can composite over what is behind it.
	Alpha bool

	// Antialias requests multisampled antialiasing of the drawing buffer.
	Antialias bool

	// Stencil requests a stencil buffer of at least 8 bits. Mask
	// rendering degrades without one.
	Stencil bool

	// PremultipliedAlpha indicates the drawing buffer contains colors
	// with premultiplied alpha.
	PremultipliedAlpha bool

	// PreserveDrawingBuffer keeps the drawing buffer contents across
	// frames instead of clearing them after presentation.
	PreserveDrawingBuffer bool

	// PowerPreference selects the GPU to place the context on.
	PowerPreference PowerPreference
}

// Known optional-feature extension names probed by the System.
// The strings follow GL extension naming so surface implementations can
// pass through the native extension list unchanged.
const (
	// ExtElementIndexUint provides 32-bit element indices on legacy
	// contexts. Modern contexts support them unconditionally.
	ExtElementIndexUint = "GL_OES_element_index_uint"

	// ExtTextureFilterAnisotropic provides anisotropic texture filtering.
	ExtTextureFilterAnisotropic = "GL_EXT_texture_filter_anisotropic"

	// ExtTextureFloatLinear provides linear filtering of floating-point
	// textures.
	ExtTextureFloatLinear = "GL_OES_texture_float_linear"

	// ExtColorBufferFloat provides floating-point color buffer rendering.
	ExtColorBufferFloat = "GL_EXT_color_buffer_float"

	// ExtCompressedTextureS3TC provides the S3TC (DXTn) compressed
	// texture formats.
	ExtCompressedTextureS3TC = "GL_EXT_texture_compression_s3tc"

	// ExtCompressedTextureETC1 provides the ETC1 compressed texture
	// format.
	ExtCompressedTextureETC1 = "GL_OES_compressed_ETC1_RGB8_texture"

	// ExtCompressedTexturePVRTC provides the PVRTC compressed texture
	// formats.
	ExtCompressedTexturePVRTC = "GL_IMG_texture_compression_pvrtc"

	// ExtCompressedTextureASTC provides the ASTC LDR compressed texture
	// formats.
	ExtCompressedTextureASTC = "GL_KHR_texture_compression_astc_ldr"

	// ExtLoseContext is a synthetic extension surfaces may expose to
	// force a context into the lost state and release device resources
	// deterministically. Its handle implements [LoseContextExtension].
	ExtLoseContext = "GL_GOGPU_lose_context"
)

// RenderingContext is the opaque handle to a native rendering context of
// the legacy generation. The System owns exactly one RenderingContext at
// a time; no other component may hold one across a context-changed
// notification.
type RenderingContext interface {
	// IsContextLost reports whether the underlying device context is
	// lost. Loss happens asynchronously outside any call sequencing, so
	// the result must be queried fresh from the device, never cached.
	IsContextLost() bool

	// Attributes returns the attributes the context actually granted,
	// which may differ from what was requested at creation.
	Attributes() ContextAttributes

	// Extension returns the named optional-feature extension object, or
	// nil when the context does not support it.
	Extension(name string) any
}

// RenderingContext2 is implemented by modern-generation contexts.
//
// Context2 is a marker method: the modern generation shares the base
// method set with the legacy one, so generation is determined by type
// assertion against this interface rather than by a flag the caller
// could get wrong.
type RenderingContext2 interface {
	RenderingContext

	// Context2 marks the handle as modern generation.
	Context2()
}

// LoseContextExtension is the handle type for [ExtLoseContext]. It
// forces loss and restoration of the owning context, primarily for
// deterministic teardown and for tests.
type LoseContextExtension interface {
	// LoseContext forces the context into the lost state.
	LoseContext()

	// RestoreContext restores a context previously lost through
	// LoseContext.
	RestoreContext()
}
