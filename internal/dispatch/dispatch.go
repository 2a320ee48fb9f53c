// Package dispatch implements the deterministic per-raw-event translation
// that turns a single platform event into zero or more canonical events:
// key press/release/typed derivation, mouse press/release/click/drag/move
// derivation, wheel translation, and hook-enabled/disabled bracketing.
// Grounded on the dispatch_event.h contracts in
// _examples/original_source/src/windows/dispatch_event.h and
// _examples/original_source/src/x11/dispatch_event.h, and on the
// mouse-hook callback shape in
// _examples/serty2005-clipQueue/platform/windows/input_listener.go.
package dispatch

import (
	"time"

	"github.com/serty2005/uiohook/internal/event"
	"github.com/serty2005/uiohook/internal/modmask"
	"github.com/serty2005/uiohook/internal/vcode"
)

// Consumer receives dispatched events on the hook thread. Implementations
// must never block for long and must never call back into the public
// Hook API (Run/Stop) — doing so would deadlock the hook thread.
type Consumer func(event.Event) (consumed bool)

// Config tunes timing-sensitive derivations.
type Config struct {
	// ClickInterval bounds how close in time and space two presses of the
	// same button must be to increment the click count, matching the OS
	// double-click time.
	ClickInterval time.Duration
	// ClickMoveTolerance bounds how far the pointer may have moved between
	// clicks and still count toward the same click-count run.
	ClickMoveTolerance int16
}

// DefaultConfig matches common OS defaults (Windows' 500ms double-click
// time and a small move tolerance).
func DefaultConfig() Config {
	return Config{
		ClickInterval:      500 * time.Millisecond,
		ClickMoveTolerance: 4,
	}
}

// Dispatcher holds all state needed to translate a stream of raw
// per-platform occurrences into canonical events: the modifier tracker, the
// click-count machine, and the currently-held-buttons/last-position state
// used to tell MouseMoved from MouseDragged.
type Dispatcher struct {
	cfg     Config
	mods    *modmask.Tracker
	consume Consumer

	lastClickButton uint16
	lastClickTime   time.Time
	lastClickX      int16
	lastClickY      int16
	clickCount      uint16

	buttonsHeld int
	lastX       int16
	lastY       int16
	havePos     bool

	pressX, pressY int16
	pressSet       bool
}

// New constructs a Dispatcher. mods should be seeded from an
// internal/helper.Helper's InitialMask at hook install time.
func New(cfg Config, mods *modmask.Tracker, consume Consumer) *Dispatcher {
	return &Dispatcher{cfg: cfg, mods: mods, consume: consume}
}

// Mask returns the dispatcher's live modifier mask, for callers that need
// to stamp a synthetic event (e.g. HookEnabled) outside the normal flow.
func (d *Dispatcher) Mask() uint16 { return d.mods.Get() }

// SeedMask ORs the OS-queried initial modifier/lock state (from an
// internal/helper.Helper.InitialMask) into the live mask. Platform runtimes
// call this once, right after loading the input helper and before pumping
// the event loop, since the helper's own OS queries only happen after the
// Dispatcher has already been constructed.
func (d *Dispatcher) SeedMask(initial uint16) { d.mods.Set(initial) }

func (d *Dispatcher) emit(e event.Event) bool {
	e.Mask = d.mods.Get()
	return d.consume(e)
}

// HookEnabled dispatches the synthetic bracketing event fired when the hook
// is installed. Every platform runtime calls it once, right after its hook
// is installed and before it enters the event loop; the macOS run-loop and
// X11 start-of-data callbacks are not used for this.
func (d *Dispatcher) HookEnabled(t time.Time) {
	d.emit(event.Event{Kind: event.EventHookEnabled, Time: t})
}

// HookDisabled dispatches the synthetic bracketing event fired when the
// hook is about to be torn down.
func (d *Dispatcher) HookDisabled(t time.Time) {
	d.emit(event.Event{Kind: event.EventHookDisabled, Time: t})
}

// KeyPress dispatches EventKeyPressed and updates the modifier mask for
// modifier/lock keys. Lock keys (CapsLock/NumLock/ScrollLock) toggle only
// on press and are never cleared on release, matching the original's
// set_modifier_mask semantics.
func (d *Dispatcher) KeyPress(t time.Time, vc, native uint16, raw uint32) bool {
	switch bits, isLock := modifierBits(vc); {
	case isLock:
		d.mods.Toggle(bits)
	case bits != 0:
		d.mods.Set(bits)
	}
	return d.emit(event.Event{
		Kind: event.EventKeyPressed,
		Time: t,
		Key:  event.KeyData{VirtualCode: vc, NativeCode: native, RawCode: raw},
	})
}

// KeyRelease dispatches EventKeyReleased and clears the modifier mask for
// modifier keys (never for lock keys).
func (d *Dispatcher) KeyRelease(t time.Time, vc, native uint16, raw uint32) bool {
	if bits, isLock := modifierBits(vc); !isLock && bits != 0 {
		d.mods.Clear(bits)
	}
	return d.emit(event.Event{
		Kind: event.EventKeyReleased,
		Time: t,
		Key:  event.KeyData{VirtualCode: vc, NativeCode: native, RawCode: raw},
	})
}

// KeyTyped dispatches a derived EventKeyTyped for one UTF-16 code unit of a
// printable key press, carrying that unit in KeyChar and the full code
// point it came from in raw — callers resolve the code point via
// internal/helper.Helper.EventToUnicode and split it into one or two
// surrogate units (internal/helper.EncodeSurrogate) before calling this
// once per unit, matching event_to_unicode's surrogate-pair derivation in
// _examples/original_source/src/x11/input_helper.c.
func (d *Dispatcher) KeyTyped(t time.Time, vc uint16, unit rune, raw uint32) bool {
	return d.emit(event.Event{
		Kind: event.EventKeyTyped,
		Time: t,
		Key:  event.KeyData{VirtualCode: vc, RawCode: raw, KeyChar: unit},
	})
}

// KeyTypedFromUnits is the runtime-facing entry point: given the
// (lead, trail, n) result of an internal/helper.Helper.EventToUnicode call
// for a key-down event, it reconstructs the raw code point and emits one
// KeyTyped per UTF-16 unit (two for an astral-plane surrogate pair), per
// SPEC §4.4's "KeyTyped derived from KeyPressed" rule. n == 0 (untranslatable
// key) emits nothing.
func (d *Dispatcher) KeyTypedFromUnits(t time.Time, vc uint16, lead, trail uint16, n int) bool {
	if n <= 0 {
		return false
	}
	raw := uint32(lead)
	if n == 2 {
		const leadOffset = 0xD800 - (0x10000 >> 10)
		raw = (uint32(lead)-leadOffset)<<10 | (uint32(trail) - 0xDC00)
	}

	consumed := d.KeyTyped(t, vc, rune(lead), raw)
	if n == 2 {
		if c := d.KeyTyped(t, vc, rune(trail), raw); c {
			consumed = true
		}
	}
	return consumed
}

// MousePress dispatches EventMousePressed, sets the corresponding button
// mask bit, and updates click-count tracking for the eventual Clicked
// event fired on release.
func (d *Dispatcher) MousePress(t time.Time, button uint16, x, y int16) bool {
	d.mods.Set(buttonBit(button))
	d.buttonsHeld++
	d.lastX, d.lastY, d.havePos = x, y, true
	d.pressX, d.pressY, d.pressSet = x, y, true

	if d.sameClickRun(button, t, x, y) {
		d.clickCount++
	} else {
		d.clickCount = 1
	}
	d.lastClickButton, d.lastClickTime, d.lastClickX, d.lastClickY = button, t, x, y

	return d.emit(event.Event{
		Kind:  event.EventMousePressed,
		Time:  t,
		Mouse: event.MouseData{Button: button, Clicks: d.clickCount, X: x, Y: y},
	})
}

func (d *Dispatcher) sameClickRun(button uint16, t time.Time, x, y int16) bool {
	if button != d.lastClickButton || d.lastClickTime.IsZero() {
		return false
	}
	if t.Sub(d.lastClickTime) > d.cfg.ClickInterval {
		return false
	}
	return abs16(x-d.lastClickX) <= d.cfg.ClickMoveTolerance &&
		abs16(y-d.lastClickY) <= d.cfg.ClickMoveTolerance
}

// MouseRelease dispatches EventMouseReleased, clears the button's mask bit,
// and — only if the pointer has not moved beyond ClickMoveTolerance since
// the matching press — follows it with EventMouseClicked carrying the same
// click count. If the press-to-release displacement exceeds the tolerance,
// the intervening motion was already reclassified as MouseDragged and no
// MouseClicked is emitted.
func (d *Dispatcher) MouseRelease(t time.Time, button uint16, x, y int16) bool {
	d.mods.Clear(buttonBit(button))
	if d.buttonsHeld > 0 {
		d.buttonsHeld--
	}

	dragged := d.pressSet && (abs16(x-d.pressX) > d.cfg.ClickMoveTolerance || abs16(y-d.pressY) > d.cfg.ClickMoveTolerance)
	d.pressSet = false

	consumed := d.emit(event.Event{
		Kind:  event.EventMouseReleased,
		Time:  t,
		Mouse: event.MouseData{Button: button, Clicks: d.clickCount, X: x, Y: y},
	})
	if !dragged {
		d.emit(event.Event{
			Kind:  event.EventMouseClicked,
			Time:  t,
			Mouse: event.MouseData{Button: button, Clicks: d.clickCount, X: x, Y: y},
		})
	}
	return consumed
}

// MouseMove dispatches EventMouseMoved, or EventMouseDragged if any button
// is currently held, matching the drag-threshold reclassification in the
// original dispatcher.
func (d *Dispatcher) MouseMove(t time.Time, x, y int16) bool {
	kind := event.EventMouseMoved
	if d.buttonsHeld > 0 {
		kind = event.EventMouseDragged
	}
	d.lastX, d.lastY, d.havePos = x, y, true
	return d.emit(event.Event{
		Kind:  kind,
		Time:  t,
		Mouse: event.MouseData{X: x, Y: y},
	})
}

// MouseWheel dispatches EventMouseWheel.
func (d *Dispatcher) MouseWheel(t time.Time, delta, rotation int16) bool {
	return d.emit(event.Event{
		Kind:  event.EventMouseWheel,
		Time:  t,
		Mouse: event.MouseData{WheelDelta: delta, Rotation: rotation},
	})
}

func abs16(v int16) int16 {
	if v < 0 {
		return -v
	}
	return v
}

// buttonBit maps a 1-based button index to its modifier mask bit, always
// via the mask constant rather than the raw button number — this is the
// fix for the documented X11 bug (see _examples/original_source, where one
// branch ORs in the raw button number instead of MASK_BUTTON4/5).
func buttonBit(button uint16) uint16 {
	switch button {
	case 1:
		return modmask.Button1
	case 2:
		return modmask.Button2
	case 3:
		return modmask.Button3
	case 4:
		return modmask.Button4
	case 5:
		return modmask.Button5
	default:
		return 0
	}
}

func modifierBits(vc uint16) (bits uint16, isLock bool) {
	switch vc {
	case vcode.VCShiftL:
		return modmask.ShiftL, false
	case vcode.VCShiftR:
		return modmask.ShiftR, false
	case vcode.VCControlL:
		return modmask.CtrlL, false
	case vcode.VCControlR:
		return modmask.CtrlR, false
	case vcode.VCAltL:
		return modmask.AltL, false
	case vcode.VCAltR:
		return modmask.AltR, false
	case vcode.VCMetaL:
		return modmask.MetaL, false
	case vcode.VCMetaR:
		return modmask.MetaR, false
	case vcode.VCCapsLock:
		return modmask.CapsLock, true
	case vcode.VCNumLock:
		return modmask.NumLock, true
	case vcode.VCScrollLock:
		return modmask.ScrollLock, true
	default:
		return 0, false
	}
}
