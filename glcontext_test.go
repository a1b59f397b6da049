package glcontext

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// fakeContext is a legacy-generation context for tests.
type fakeContext struct {
	lost  bool
	attrs ContextAttributes
	exts  map[string]any
}

func (c *fakeContext) IsContextLost() bool           { return c.lost }
func (c *fakeContext) Attributes() ContextAttributes { return c.attrs }
func (c *fakeContext) Extension(name string) any     { return c.exts[name] }

// fakeContext2 is a modern-generation context for tests.
type fakeContext2 struct {
	fakeContext
}

func (c *fakeContext2) Context2() {}

// fakeLoseContext counts forced losses.
type fakeLoseContext struct {
	loseCalls    int
	restoreCalls int
}

func (f *fakeLoseContext) LoseContext()    { f.loseCalls++ }
func (f *fakeLoseContext) RestoreContext() { f.restoreCalls++ }

// fakeSurface produces canned contexts and lets tests fire loss and
// restoration signals.
type fakeSurface struct {
	modern RenderingContext // returned for KindGL2, may be nil
	legacy RenderingContext // returned for KindGL, may be nil

	getCalls    []ContextKind
	lastAttrs   ContextAttributes
	removeCalls int

	listeners []ContextListener
}

func (s *fakeSurface) GetContext(kind ContextKind, attrs ContextAttributes) RenderingContext {
	s.getCalls = append(s.getCalls, kind)
	s.lastAttrs = attrs
	switch kind {
	case KindGL2:
		if s.modern != nil {
			return s.modern
		}
	case KindGL:
		if s.legacy != nil {
			return s.legacy
		}
	}
	return nil
}

func (s *fakeSurface) AddContextListener(l ContextListener) {
	s.listeners = append(s.listeners, l)
}

func (s *fakeSurface) RemoveContextListener(l ContextListener) {
	s.removeCalls++
	for i, x := range s.listeners {
		if x == l {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			return
		}
	}
}

// fireLoss delivers a loss signal and returns the event so tests can
// check suppression.
func (s *fakeSurface) fireLoss() *LossEvent {
	e := &LossEvent{}
	for _, l := range s.listeners {
		l.ContextLost(e)
	}
	return e
}

// fireRestored delivers a restoration signal.
func (s *fakeSurface) fireRestored() {
	for _, l := range s.listeners {
		l.ContextRestored()
	}
}

// recordingNotifier records every context-changed notification.
type recordingNotifier struct {
	changes []RenderingContext
}

func (n *recordingNotifier) ContextChanged(gl RenderingContext) {
	n.changes = append(n.changes, gl)
}

// captureHandler is a slog.Handler that records messages by level.
type captureHandler struct {
	mu       sync.Mutex
	messages []capturedMessage
}

type capturedMessage struct {
	level slog.Level
	msg   string
}

func (h *captureHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *captureHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = append(h.messages, capturedMessage{level: r.Level, msg: r.Message})
	return nil
}

func (h *captureHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *captureHandler) WithGroup(string) slog.Handler      { return h }

func (h *captureHandler) warnings() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	var out []string
	for _, m := range h.messages {
		if m.level == slog.LevelWarn {
			out = append(out, m.msg)
		}
	}
	return out
}

func (h *captureHandler) warningsContaining(substr string) int {
	n := 0
	for _, w := range h.warnings() {
		if strings.Contains(w, substr) {
			n++
		}
	}
	return n
}

// captureLog installs a capturing logger for the duration of the test.
func captureLog(t *testing.T) *captureHandler {
	t.Helper()
	h := &captureHandler{}
	orig := Logger()
	SetLogger(slog.New(h))
	t.Cleanup(func() { SetLogger(orig) })
	return h
}
