// Package helper provides the per-platform "input helper" described in
// libuiohook: on-demand initialization of whatever OS resources the event
// dispatcher needs to resolve a raw event into canonical form (keyboard
// map handles, mouse button remap tables, initial modifier/lock state),
// plus the platform-independent UTF-16 surrogate-pair derivation used by
// EventToUnicode implementations. Grounded on
// _examples/original_source/src/x11/input_helper.c (load_input_helper,
// initialize_modifiers, initialize_locks, button_map_lookup,
// event_to_unicode).
package helper

// ButtonTableMax bounds the mouse-button remap table, matching the
// original's BUTTON_TABLE_MAX.
const ButtonTableMax = 256

// Helper is implemented once per platform (see helper_windows.go,
// helper_darwin.go, helper_linux.go).
type Helper interface {
	// Load performs on-demand initialization: keyboard map handle, mouse
	// button remap table, initial modifier/lock state queried from the OS.
	Load() error

	// Unload releases whatever Load acquired.
	Unload()

	// InitialMask returns the modifier/lock-key mask observed at Load time,
	// used to seed an internal/modmask.Tracker.
	InitialMask() uint16

	// ButtonMap resolves a raw platform button index through the OS's
	// button remap table (e.g. X11's XGetPointerMapping), including the
	// X11 swap of buttons 2 (middle) and 3 (right), so that right is 2 and
	// middle is 3 as on the other platforms.
	ButtonMap(raw uint16) uint16

	// EventToUnicode translates a native key code, under the given live
	// modifier mask, into zero, one, or two UTF-16 code units (lead/trail
	// surrogate pair if n == 2, a single BMP unit if n == 1, untranslatable
	// if n == 0). Grounded on event_to_unicode in
	// _examples/original_source/src/x11/input_helper.c (XLookupString /
	// Xutf8LookupString), translated per-platform to ToUnicodeEx (Windows)
	// and UCKeyTranslate (macOS).
	EventToUnicode(native uint32, mask uint16) (lead, trail uint16, n int)
}
