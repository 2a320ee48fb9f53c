// Package modmask tracks the process-wide modifier/lock-key bitmask that
// every dispatched event is stamped with. Grounded on libuiohook's
// set_modifier_mask/unset_modifier_mask/get_modifiers (see
// _examples/original_source/src/x11/input_helper.c): a plain bitmask,
// mutated only from the hook thread, no locking required.
package modmask

import "github.com/serty2005/uiohook/internal/event"

// Modifier mask bits, re-exported from internal/event (the single source of
// truth) so callers that only need bit constants don't have to import the
// full event model.
const (
	ShiftL     = event.ModShiftL
	CtrlL      = event.ModCtrlL
	MetaL      = event.ModMetaL
	AltL       = event.ModAltL
	ShiftR     = event.ModShiftR
	CtrlR      = event.ModCtrlR
	MetaR      = event.ModMetaR
	AltR       = event.ModAltR
	Button1    = event.ModButton1
	Button2    = event.ModButton2
	Button3    = event.ModButton3
	Button4    = event.ModButton4
	Button5    = event.ModButton5
	NumLock    = event.ModNumLock
	CapsLock   = event.ModCapsLock
	ScrollLock = event.ModScrollLock

	Shift = event.ModShift
	Ctrl  = event.ModCtrl
	Meta  = event.ModMeta
	Alt   = event.ModAlt
)

// Tracker holds the current modifier/lock/button bitmask. It is owned
// exclusively by the goroutine running the hook loop for the lifetime of a
// single Run call; callers must not share one Tracker across concurrent
// hook runs.
type Tracker struct {
	mask uint16
}

// New returns a Tracker seeded with the given initial mask, typically
// queried from the OS by an internal/helper.Helper at hook install time.
func New(initial uint16) *Tracker {
	return &Tracker{mask: initial}
}

// Set ORs bits into the mask (key/button press).
func (t *Tracker) Set(bits uint16) { t.mask |= bits }

// Clear ANDs bits out of the mask (key/button release).
func (t *Tracker) Clear(bits uint16) { t.mask &^= bits }

// Toggle flips bits, used for the lock keys (CapsLock/NumLock/ScrollLock),
// which latch on press only and are never cleared on release.
func (t *Tracker) Toggle(bits uint16) { t.mask ^= bits }

// Get returns the current mask snapshot.
func (t *Tracker) Get() uint16 { return t.mask }

// Has reports whether all of bits are currently set.
func (t *Tracker) Has(bits uint16) bool { return t.mask&bits == bits }
