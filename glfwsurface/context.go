// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glfwsurface

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/glcontext"
	"github.com/gogpu/glcontext/internal/glversion"
)

// maxTextureMaxAnisotropyEXT is from GL_EXT_texture_filter_anisotropic,
// which the 4.1 core bindings do not cover.
const maxTextureMaxAnisotropyEXT = 0x84FF

// Context is a native rendering context backed by a GLFW window.
// It belongs to the modern generation.
type Context struct {
	surface *Surface
	win     *glfw.Window
	attrs   glcontext.ContextAttributes
	version glversion.Version
	exts    []string
	lost    bool
}

// Context implements the modern-generation interface.
var _ glcontext.RenderingContext2 = (*Context)(nil)

// newContext loads the GL functions on the current context and reads
// back what the window system actually granted.
func newContext(s *Surface, win *glfw.Window, req glcontext.ContextAttributes) (*Context, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("glfwsurface: load GL functions: %w", err)
	}

	verStr := gl.GoStr(gl.GetString(gl.VERSION))
	version, err := glversion.Parse(verStr)
	if err != nil {
		return nil, err
	}
	if !version.Modern() {
		return nil, fmt.Errorf("glfwsurface: granted context %s is not modern generation", version)
	}

	c := &Context{
		surface: s,
		win:     win,
		version: version,
		exts:    supportedExtensions(),
		attrs:   grantedAttributes(req),
	}
	glcontext.Logger().Debug("glfwsurface: context created",
		"version", version.String(),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)),
		"extensions", len(c.exts))
	return c, nil
}

// supportedExtensions enumerates the extension list of the current
// context. Core profiles require indexed queries.
func supportedExtensions() []string {
	var n int32
	gl.GetIntegerv(gl.NUM_EXTENSIONS, &n)
	exts := make([]string, 0, n)
	for i := int32(0); i < n; i++ {
		exts = append(exts, gl.GoStr(gl.GetStringi(gl.EXTENSIONS, uint32(i))))
	}
	return exts
}

// grantedAttributes reads the actually granted attributes back from the
// default framebuffer. Fields the window system has no say in echo the
// request; GLFW has no equivalent of drawing-buffer preservation, so
// that attribute is never granted.
func grantedAttributes(req glcontext.ContextAttributes) glcontext.ContextAttributes {
	var stencilBits, alphaBits, samples int32
	gl.GetFramebufferAttachmentParameteriv(gl.FRAMEBUFFER, gl.STENCIL,
		gl.FRAMEBUFFER_ATTACHMENT_STENCIL_SIZE, &stencilBits)
	gl.GetFramebufferAttachmentParameteriv(gl.FRAMEBUFFER, gl.BACK_LEFT,
		gl.FRAMEBUFFER_ATTACHMENT_ALPHA_SIZE, &alphaBits)
	gl.GetIntegerv(gl.SAMPLES, &samples)

	return glcontext.ContextAttributes{
		Alpha:              alphaBits > 0,
		Antialias:          samples > 0,
		Stencil:            stencilBits > 0,
		PremultipliedAlpha: req.PremultipliedAlpha,
		PowerPreference:    req.PowerPreference,
	}
}

// IsContextLost implements glcontext.RenderingContext.
func (c *Context) IsContextLost() bool {
	return c.lost || c.win == nil
}

// Attributes implements glcontext.RenderingContext.
func (c *Context) Attributes() glcontext.ContextAttributes {
	return c.attrs
}

// Context2 marks the handle as modern generation.
func (c *Context) Context2() {}

// Extension implements glcontext.RenderingContext.
//
// The lose-context extension is always present: the surface can force
// loss on any of its contexts. Anisotropic filtering reports the
// maximum supported anisotropy in its handle. Every other known
// extension returns an opaque non-nil handle when the driver lists it.
func (c *Context) Extension(name string) any {
	if name == glcontext.ExtLoseContext {
		return &loseContext{ctx: c}
	}
	if !glversion.HasExtension(c.exts, name) {
		return nil
	}
	if name == glcontext.ExtTextureFilterAnisotropic {
		var max float32
		gl.GetFloatv(maxTextureMaxAnisotropyEXT, &max)
		return &AnisotropicFiltering{MaxAnisotropy: max}
	}
	return &extensionHandle{name: name}
}

// AnisotropicFiltering is the handle returned for
// [glcontext.ExtTextureFilterAnisotropic].
type AnisotropicFiltering struct {
	// MaxAnisotropy is the maximum supported degree of anisotropy.
	MaxAnisotropy float32
}

// extensionHandle is the opaque handle for extensions that carry no
// queryable state of their own.
type extensionHandle struct {
	name string
}

func (h *extensionHandle) String() string { return h.name }

// Window returns the underlying GLFW window, for hosts that need to
// drive the swap interval or event loop directly.
func (c *Context) Window() *glfw.Window {
	return c.win
}

// MakeCurrent makes the context current on the calling thread.
func (c *Context) MakeCurrent() {
	if c.win != nil {
		c.win.MakeContextCurrent()
	}
}

// destroy releases the window. The context is lost for good afterwards.
func (c *Context) destroy() {
	c.lost = true
	if c.win != nil {
		c.win.Destroy()
		c.win = nil
	}
}

// loseContext implements [glcontext.LoseContextExtension] by flagging
// the context lost and delivering the surface's loss signal. Without a
// listener preventing the default handling, the window is destroyed and
// RestoreContext cannot bring the context back.
type loseContext struct {
	ctx *Context
}

func (l *loseContext) LoseContext() {
	c := l.ctx
	if c.lost {
		return
	}
	c.lost = true
	c.surface.notifyLost(c)
}

func (l *loseContext) RestoreContext() {
	c := l.ctx
	if !c.lost || c.win == nil {
		return
	}
	c.lost = false
	c.surface.notifyRestored()
}
