package glcontext

// Capabilities records the correctness-relevant features of the active
// context. It is repopulated wholesale every time a context is
// established and must be treated as immutable by consumers until the
// next context-changed notification.
type Capabilities struct {
	// Uint32Indices reports 32-bit element index support. Always true on
	// the modern generation; on the legacy generation it tracks the
	// presence of [ExtElementIndexUint]. Geometry exceeding the 16-bit
	// index range renders incorrectly without it.
	Uint32Indices bool

	// Stencil reports whether the context actually granted a stencil
	// buffer. Mask rendering degrades without one.
	Stencil bool
}

// Extensions holds the native handles of the optional-feature extensions
// the System probes for. A nil field means the context does not support
// that extension; absence of any of them is normal. Like Capabilities,
// the table is rebuilt wholesale per context and read-only afterwards.
type Extensions struct {
	// AnisotropicFiltering is the [ExtTextureFilterAnisotropic] handle.
	AnisotropicFiltering any

	// FloatTextureLinear is the [ExtTextureFloatLinear] handle.
	FloatTextureLinear any

	// ColorBufferFloat is the [ExtColorBufferFloat] handle.
	ColorBufferFloat any

	// S3TC, ETC1, PVRTC and ASTC are the compressed-texture family
	// handles.
	S3TC  any
	ETC1  any
	PVRTC any
	ASTC  any

	// LoseContext is the [ExtLoseContext] handle, used to release device
	// resources deterministically at teardown.
	LoseContext LoseContextExtension
}

// probeExtensions queries the fixed list of known optional extensions on
// gl and returns the populated handle table.
func probeExtensions(gl RenderingContext) Extensions {
	exts := Extensions{
		AnisotropicFiltering: gl.Extension(ExtTextureFilterAnisotropic),
		FloatTextureLinear:   gl.Extension(ExtTextureFloatLinear),
		ColorBufferFloat:     gl.Extension(ExtColorBufferFloat),
		S3TC:                 gl.Extension(ExtCompressedTextureS3TC),
		ETC1:                 gl.Extension(ExtCompressedTextureETC1),
		PVRTC:                gl.Extension(ExtCompressedTexturePVRTC),
		ASTC:                 gl.Extension(ExtCompressedTextureASTC),
	}
	if lose, ok := gl.Extension(ExtLoseContext).(LoseContextExtension); ok {
		exts.LoseContext = lose
	}
	return exts
}
