//go:build linux

package helper

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"

	"github.com/serty2005/uiohook/internal/modmask"
)

// LinuxHelper implements Helper against an already-open xgb connection
// (the hook runtime's data-display connection). Grounded on
// load_input_helper/initialize_modifiers/initialize_locks/button_map_lookup
// in _examples/original_source/src/x11/input_helper.c.
type LinuxHelper struct {
	conn        *xgb.Conn
	root        xproto.Window
	buttonTable [ButtonTableMax]uint16
	initialMask uint16
}

// NewLinuxHelper wraps conn/root; Load must be called before use.
func NewLinuxHelper(conn *xgb.Conn, root xproto.Window) *LinuxHelper {
	return &LinuxHelper{conn: conn, root: root}
}

func (h *LinuxHelper) Load() error {
	for i := range h.buttonTable {
		h.buttonTable[i] = uint16(i)
	}
	mapping, err := xproto.GetPointerMapping(h.conn).Reply()
	if err == nil {
		for i, b := range mapping.Map {
			if i+1 < len(h.buttonTable) {
				h.buttonTable[i+1] = uint16(b)
			}
		}
	}

	h.initialMask = h.queryInitialMask()
	return nil
}

func (h *LinuxHelper) Unload() {}

func (h *LinuxHelper) InitialMask() uint16 { return h.initialMask }

// ButtonMap resolves a raw X11 button through the pointer-mapping table and
// then applies the deliberate X11 quirk where logical button 2 (middle) and
// button 3 (right) swap back, matching button_map_lookup exactly: X11
// numbers middle/right backwards relative to every other platform.
func (h *LinuxHelper) ButtonMap(raw uint16) uint16 {
	mapped := raw
	if int(raw) < len(h.buttonTable) {
		mapped = h.buttonTable[raw]
	}
	switch mapped {
	case 2:
		return 3
	case 3:
		return 2
	default:
		return mapped
	}
}

// EventToUnicode translates an X11 keycode through the server's keyboard
// mapping, selecting the shifted or unshifted keysym column from mask, then
// maps the keysym to a Unicode code point and splits it into UTF-16 units.
// Grounded on event_to_unicode's XLookupString/Xutf8LookupString call in
// _examples/original_source/src/x11/input_helper.c; the keysym-to-codepoint
// step here covers the Latin-1-identical keysym ranges XLookupString
// resolves for ordinary printable keys, rather than the full keysym table.
func (h *LinuxHelper) EventToUnicode(native uint32, mask uint16) (lead, trail uint16, n int) {
	reply, err := xproto.GetKeyboardMapping(h.conn, xproto.Keycode(native), 1).Reply()
	if err != nil || len(reply.Keysyms) == 0 {
		return 0, 0, 0
	}

	col := 0
	if mask&modmask.Shift != 0 && len(reply.Keysyms) > 1 {
		col = 1
	}
	keysym := uint32(reply.Keysyms[col])

	cp, ok := keysymToUnicode(keysym)
	if !ok {
		return 0, 0, 0
	}
	return EncodeSurrogate(cp)
}

// keysymToUnicode covers the identity-mapped keysym ranges: X11 keysyms
// 0x20-0x7e and 0xa0-0xff are numerically identical to their Unicode code
// points (X11 keysyms were defined against Latin-1 for these ranges).
func keysymToUnicode(keysym uint32) (rune, bool) {
	if keysym >= 0x20 && keysym <= 0x7e {
		return rune(keysym), true
	}
	if keysym >= 0xa0 && keysym <= 0xff {
		return rune(keysym), true
	}
	return 0, false
}

func (h *LinuxHelper) queryInitialMask() uint16 {
	var mask uint16
	reply, err := xproto.QueryPointer(h.conn, h.root).Reply()
	if err != nil {
		return 0
	}
	state := reply.Mask
	const (
		shiftMask   = 1 << 0
		lockMask    = 1 << 1 // CapsLock
		controlMask = 1 << 2
		mod1Mask    = 1 << 3 // Alt
		mod4Mask    = 1 << 6 // Super
		button1Mask = 1 << 8
		button2Mask = 1 << 9
		button3Mask = 1 << 10
		button4Mask = 1 << 11
		button5Mask = 1 << 12
	)
	if state&shiftMask != 0 {
		mask |= modmask.ShiftL | modmask.ShiftR
	}
	if state&lockMask != 0 {
		mask |= modmask.CapsLock
	}
	if state&controlMask != 0 {
		mask |= modmask.CtrlL | modmask.CtrlR
	}
	if state&mod1Mask != 0 {
		mask |= modmask.AltL | modmask.AltR
	}
	if state&mod4Mask != 0 {
		mask |= modmask.MetaL | modmask.MetaR
	}
	if state&button1Mask != 0 {
		mask |= modmask.Button1
	}
	if state&button2Mask != 0 {
		mask |= modmask.Button2
	}
	if state&button3Mask != 0 {
		mask |= modmask.Button3
	}
	if state&button4Mask != 0 {
		mask |= modmask.Button4
	}
	if state&button5Mask != 0 {
		mask |= modmask.Button5
	}
	return mask
}
