// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package glfwsurface provides a GLFW-backed drawing surface for
// glcontext.
//
// The package registers itself as the "glfw" surface backend, so hosts
// enable it with a blank import:
//
//	import _ "github.com/gogpu/glcontext/glfwsurface"
//
// The surface produces modern-generation contexts only: the bundled GL
// bindings target the 4.1 core profile, which belongs to the modern
// generation. Requests for the legacy generation return nil and the
// context system falls through its normal negotiation.
//
// GLFW requires window and context creation to happen on the main
// thread. Call New (directly or through the glcontext registry) from
// the main thread, after runtime.LockOSThread.
package glfwsurface

import (
	"fmt"
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/glcontext"
)

// SurfaceName is the name this backend registers under.
const SurfaceName = "glfw"

func init() {
	glcontext.Register(SurfaceName, 100, func() (glcontext.Surface, error) {
		return New(Config{})
	}, nil)
}

// glfwInit guards the process-wide GLFW initialization.
var glfwInit sync.Once

// Config configures the window backing a Surface.
// The zero value creates a hidden 640x480 window, which is what
// offscreen and probing use cases want.
type Config struct {
	// Width and Height are the window dimensions in screen coordinates.
	// Zero values default to 640x480.
	Width, Height int

	// Title is the window title. Only meaningful with Visible set.
	Title string

	// Visible shows the window. Hidden windows still provide a fully
	// functional context.
	Visible bool
}

// Surface is a GLFW-backed drawing surface. It creates at most one
// context at a time; a new GetContext call supersedes the previous
// window.
type Surface struct {
	cfg       Config
	ctx       *Context
	listeners []glcontext.ContextListener
}

// Surface implements glcontext.Surface.
var _ glcontext.Surface = (*Surface)(nil)

// New creates a Surface. The first call initializes GLFW; an
// initialization failure is returned as an error.
//
// Must be called from the main thread.
func New(cfg Config) (*Surface, error) {
	var initErr error
	glfwInit.Do(func() {
		if err := glfw.Init(); err != nil {
			initErr = fmt.Errorf("glfwsurface: init: %w", err)
		}
	})
	if initErr != nil {
		return nil, initErr
	}
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	return &Surface{cfg: cfg}, nil
}

// GetContext implements glcontext.Surface. Only the modern generation
// is supported; legacy requests return nil.
func (s *Surface) GetContext(kind glcontext.ContextKind, attrs glcontext.ContextAttributes) glcontext.RenderingContext {
	if kind != glcontext.KindGL2 {
		return nil
	}

	glfw.DefaultWindowHints()
	for _, h := range creationHints(s.cfg, attrs) {
		glfw.WindowHint(h.target, h.value)
	}

	win, err := glfw.CreateWindow(s.cfg.Width, s.cfg.Height, s.cfg.Title, nil, nil)
	if err != nil {
		glcontext.Logger().Debug("glfwsurface: window creation failed", "err", err)
		return nil
	}
	win.MakeContextCurrent()

	ctx, err := newContext(s, win, attrs)
	if err != nil {
		glcontext.Logger().Debug("glfwsurface: context setup failed", "err", err)
		win.Destroy()
		return nil
	}

	if s.ctx != nil {
		s.ctx.destroy()
	}
	s.ctx = ctx
	return ctx
}

// hint is a single GLFW window hint.
type hint struct {
	target glfw.Hint
	value  int
}

// creationHints maps context attributes onto GLFW window hints.
func creationHints(cfg Config, attrs glcontext.ContextAttributes) []hint {
	boolHint := func(b bool) int {
		if b {
			return glfw.True
		}
		return glfw.False
	}
	hints := []hint{
		// 4.1 core is the highest version available across the desktop
		// platforms GLFW targets, macOS included.
		{glfw.ContextVersionMajor, 4},
		{glfw.ContextVersionMinor, 1},
		{glfw.OpenGLProfile, glfw.OpenGLCoreProfile},
		{glfw.OpenGLForwardCompatible, glfw.True},
		{glfw.Visible, boolHint(cfg.Visible)},
		{glfw.StencilBits, stencilBits(attrs)},
		{glfw.AlphaBits, alphaBits(attrs)},
		{glfw.TransparentFramebuffer, boolHint(attrs.Alpha)},
		{glfw.Samples, sampleCount(attrs)},
	}
	if attrs.PowerPreference == glcontext.PowerLowPower {
		// On macOS this permits automatic graphics switching to the
		// integrated GPU. Other platforms ignore the hint.
		hints = append(hints, hint{glfw.CocoaGraphicsSwitching, glfw.True})
	}
	return hints
}

func stencilBits(attrs glcontext.ContextAttributes) int {
	if attrs.Stencil {
		return 8
	}
	return 0
}

func alphaBits(attrs glcontext.ContextAttributes) int {
	if attrs.Alpha {
		return 8
	}
	return 0
}

func sampleCount(attrs glcontext.ContextAttributes) int {
	if attrs.Antialias {
		return 4
	}
	return 0
}

// AddContextListener implements glcontext.Surface.
func (s *Surface) AddContextListener(l glcontext.ContextListener) {
	s.listeners = append(s.listeners, l)
}

// RemoveContextListener implements glcontext.Surface.
func (s *Surface) RemoveContextListener(l glcontext.ContextListener) {
	for i, x := range s.listeners {
		if x == l {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			return
		}
	}
}

// notifyLost delivers a loss signal for ctx. When no listener prevents
// the default handling, the context window is destroyed and the context
// cannot be restored.
func (s *Surface) notifyLost(ctx *Context) {
	e := &glcontext.LossEvent{}
	for _, l := range snapshot(s.listeners) {
		l.ContextLost(e)
	}
	if !e.DefaultPrevented() {
		ctx.destroy()
	}
}

// notifyRestored delivers a restoration signal.
func (s *Surface) notifyRestored() {
	for _, l := range snapshot(s.listeners) {
		l.ContextRestored()
	}
}

// snapshot copies the listener slice so removal during delivery cannot
// skip a listener.
func snapshot(ls []glcontext.ContextListener) []glcontext.ContextListener {
	out := make([]glcontext.ContextListener, len(ls))
	copy(out, ls)
	return out
}

// Close destroys the current context window, if any. The surface can
// produce a new context afterwards. GLFW itself stays initialized for
// the life of the process.
func (s *Surface) Close() {
	if s.ctx != nil {
		s.ctx.destroy()
		s.ctx = nil
	}
}
