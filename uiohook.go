// Package uiohook is a cross-platform global keyboard/mouse hook library:
// Windows (WH_KEYBOARD_LL/WH_MOUSE_LL), macOS (Quartz CGEventTap), and
// Linux (X11 XRecord). It produces a canonical, platform-independent event
// stream via a single registered handler.
//
// Grounded throughout on libuiohook's architecture (see
// _examples/original_source) and on the lifecycle/wiring idioms of
// _examples/serty2005-clipQueue (config load -> logger init -> hook
// install -> run -> signal-driven graceful stop).
package uiohook

import (
	"errors"
	"sync"
	"time"

	"github.com/serty2005/uiohook/internal/dispatch"
	"github.com/serty2005/uiohook/internal/hookrt"
	"github.com/serty2005/uiohook/internal/modmask"
)

// wrapRuntimeErr translates the plain sentinel/wrapped errors returned by
// internal/hookrt into the public Kind taxonomy.
func wrapRuntimeErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, hookrt.ErrAlreadyRunning):
		return ErrAlreadyRunning
	case errors.Is(err, hookrt.ErrNotRunning):
		return ErrNotRunning
	default:
		return newErr(KindPlatformInstallFailed, err)
	}
}

// Hook is the public entry point: construct one with New, register a
// handler with SetEventHandler, then call Run from a dedicated goroutine.
// Exactly one Run may be in flight at a time per Hook.
type Hook struct {
	opts    options
	runtime hookrt.Runtime

	mu      sync.Mutex
	handler func(Event)
}

// New constructs a Hook. It does not install any platform hook; call Run
// to do that.
func New(opts ...Option) *Hook {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Hook{
		opts:    o,
		runtime: newPlatformRuntime(o.logger),
	}
}

// SetEventHandler registers the callback invoked for every dispatched
// event. It must be set before calling Run, and must not itself call Run
// or Stop — the handler always runs on the hook thread.
func (h *Hook) SetEventHandler(fn func(Event)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handler = fn
}

// Run installs the platform hook and blocks until Stop is called or
// installation fails. It must be called from a goroutine the caller is
// willing to dedicate for the duration of the hook's lifetime (the
// implementation locks it to its OS thread, as the underlying platform
// APIs require). Calling Run while a previous call on the same Hook is
// still in flight returns ErrAlreadyRunning.
func (h *Hook) Run() error {
	h.mu.Lock()
	handler := h.handler
	h.mu.Unlock()
	if handler == nil {
		handler = func(Event) {}
	}

	consume := func(e Event) bool {
		handler(e)
		return false
	}

	d := dispatch.New(dispatch.DefaultConfig(), modmask.New(0), dispatch.Consumer(consume))
	return wrapRuntimeErr(h.runtime.Run(d))
}

// AutoRepeatRate returns the platform's key auto-repeat delay and
// interval. This is a fixed, conservative default rather than a live OS
// query — matching enable_key_repeat's role in
// _examples/original_source/src/x11/input_hook.c, which only ever
// enables detectable auto-repeat and never reads the configured rate.
func (h *Hook) AutoRepeatRate() (delay, interval time.Duration) {
	return 500 * time.Millisecond, 30 * time.Millisecond
}

// Stop signals a running Run call to return. It is best-effort and
// asynchronous: a nil return means the stop signal was delivered, not that
// Run has already returned. Calling Stop when no hook is running returns
// ErrNotRunning.
func (h *Hook) Stop() error {
	return wrapRuntimeErr(h.runtime.Stop())
}
