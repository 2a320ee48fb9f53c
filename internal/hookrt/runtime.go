// Package hookrt implements the per-platform hook runtime: the state
// machine and platform primitive that blocks the hook thread in the native
// event loop and feeds raw occurrences to an internal/dispatch.Dispatcher.
// Grounded on hook_run/hook_stop in
// _examples/original_source/src/windows/input_hook.c and
// _examples/original_source/src/x11/input_hook.c, and on the
// message-loop/thread-affinity idiom in
// _examples/serty2005-clipQueue/platform/windows/host.go.
package hookrt

import (
	"sync/atomic"

	"github.com/serty2005/uiohook/internal/dispatch"
)

// State is the outer hook lifecycle state machine:
// Uninitialized -> Installing -> Running -> Stopping -> Teardown -> Uninitialized.
type State int32

const (
	Uninitialized State = iota
	Installing
	Running
	Stopping
	Teardown
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Installing:
		return "installing"
	case Running:
		return "running"
	case Stopping:
		return "stopping"
	case Teardown:
		return "teardown"
	default:
		return "unknown"
	}
}

// Runtime is implemented once per OS (see runtime_windows.go,
// runtime_darwin.go, runtime_linux.go).
type Runtime interface {
	// Run installs the platform hook and blocks the calling goroutine
	// (which must be locked to its OS thread) until Stop succeeds or
	// installation fails. d receives every translated event.
	Run(d *dispatch.Dispatcher) error

	// Stop signals the blocked Run call to return. It is best-effort and
	// asynchronous: a successful return means the stop signal was
	// delivered, not that Run has already returned.
	Stop() error
}

// StateHolder centralizes the atomic state transitions shared by every
// platform's Runtime, so each one only has to implement the platform-
// specific install/pump/teardown calls.
type StateHolder struct {
	state atomic.Int32
}

func (h *StateHolder) Load() State { return State(h.state.Load()) }

// TryBeginRun transitions Uninitialized -> Installing, rejecting a second
// concurrent Run with AlreadyRunning semantics.
func (h *StateHolder) TryBeginRun() bool {
	return h.state.CompareAndSwap(int32(Uninitialized), int32(Installing))
}

func (h *StateHolder) SetRunning() { h.state.Store(int32(Running)) }

// TryBeginStop transitions Running -> Stopping, rejecting Stop calls when
// no hook is running (NotRunning semantics).
func (h *StateHolder) TryBeginStop() bool {
	return h.state.CompareAndSwap(int32(Running), int32(Stopping))
}

func (h *StateHolder) SetTeardown() { h.state.Store(int32(Teardown)) }

func (h *StateHolder) Reset() { h.state.Store(int32(Uninitialized)) }
