//go:build darwin

package helper

/*
#cgo LDFLAGS: -framework CoreGraphics -framework CoreFoundation -framework Carbon
#include <CoreGraphics/CoreGraphics.h>
#include <Carbon/Carbon.h>

static int uiohook_key_down(int keycode) {
	return CGEventSourceKeyState(kCGEventSourceStateHIDSystemState, (CGKeyCode)keycode) ? 1 : 0;
}

static int uiohook_flags() {
	return (int)CGEventSourceFlagsState(kCGEventSourceStateCombinedSessionState);
}

// uiohook_translate_key mirrors UCKeyTranslate as used by libuiohook's
// event_to_unicode equivalent: look up the current keyboard layout's
// Unicode data and translate a virtual key code plus modifier flags into
// up to maxLength UTF-16 units.
static int uiohook_translate_key(UInt16 keycode, UInt32 modifierKeyState, UniChar *out, int maxLength) {
	TISInputSourceRef source = TISCopyCurrentKeyboardLayoutInputSource();
	if (source == NULL) {
		return 0;
	}

	CFDataRef layoutData = (CFDataRef)TISGetInputSourceProperty(source, kTISPropertyUnicodeKeyLayoutData);
	if (layoutData == NULL) {
		CFRelease(source);
		return 0;
	}

	const UCKeyboardLayout *layout = (const UCKeyboardLayout *)CFDataGetBytePtr(layoutData);
	UInt32 deadKeyState = 0;
	UniCharCount actualLength = 0;

	OSStatus status = UCKeyTranslate(layout, keycode, kUCKeyActionDown, modifierKeyState,
		LMGetKbdType(), kUCKeyTranslateNoDeadKeysBit, &deadKeyState,
		(UniCharCount)maxLength, &actualLength, out);

	CFRelease(source);
	if (status != noErr) {
		return 0;
	}
	return (int)actualLength;
}
*/
import "C"

import "github.com/serty2005/uiohook/internal/modmask"

const (
	kVKShiftL   = 0x38
	kVKShiftR   = 0x3C
	kVKControlL = 0x3B
	kVKControlR = 0x3E
	kVKOptionL  = 0x3A
	kVKOptionR  = 0x3D
	kVKCommandL = 0x37
	kVKCommandR = 0x36
	kVKCapsLock = 0x39
)

// kCGEventFlag bits, mirroring CGEventTypes.h.
const (
	cgFlagAlphaShift = 1 << 16
)

// DarwinHelper implements Helper via CGEventSource state queries, grounded
// on the cgo wiring idiom in
// _examples/other_examples/.../hotkey-tap_darwin.go.go.
type DarwinHelper struct {
	initialMask uint16
	buttonTable [ButtonTableMax]uint16
}

func NewDarwinHelper() *DarwinHelper { return &DarwinHelper{} }

func (h *DarwinHelper) Load() error {
	for i := range h.buttonTable {
		h.buttonTable[i] = uint16(i)
	}
	h.initialMask = h.queryInitialMask()
	return nil
}

func (h *DarwinHelper) Unload() {}

func (h *DarwinHelper) InitialMask() uint16 { return h.initialMask }

// ButtonMap is the identity mapping on macOS; CGEventTap already delivers
// consistently-numbered button events.
func (h *DarwinHelper) ButtonMap(raw uint16) uint16 {
	if int(raw) < len(h.buttonTable) {
		return h.buttonTable[raw]
	}
	return raw
}

// EventToUnicode translates a Carbon virtual key code through the active
// keyboard layout via UCKeyTranslate, mirroring event_to_unicode's role in
// _examples/original_source/src/x11/input_helper.c on the platform that
// uses UCKeyTranslate instead of XLookupString.
func (h *DarwinHelper) EventToUnicode(native uint32, mask uint16) (lead, trail uint16, n int) {
	var buf [4]C.UniChar
	count := int(C.uiohook_translate_key(
		C.UInt16(native),
		darwinModifierKeyState(mask),
		&buf[0], C.int(len(buf)),
	))
	if count <= 0 {
		return 0, 0, 0
	}
	if count > 2 {
		count = 2
	}
	if count == 1 {
		return uint16(buf[0]), 0, 1
	}
	return uint16(buf[0]), uint16(buf[1]), 2
}

// darwinModifierKeyState packs our canonical mask into the byte UCKeyTranslate
// expects: the high byte of a classic EventModifiers word, shifted down.
func darwinModifierKeyState(mask uint16) C.UInt32 {
	const (
		cmdKeyBit   = 1 << 0
		shiftKeyBit = 1 << 1
		alphaLock   = 1 << 2
		optionBit   = 1 << 3
		controlBit  = 1 << 4
	)
	var state C.UInt32
	if mask&modmask.Meta != 0 {
		state |= cmdKeyBit
	}
	if mask&modmask.Shift != 0 {
		state |= shiftKeyBit
	}
	if mask&modmask.CapsLock != 0 {
		state |= alphaLock
	}
	if mask&modmask.Alt != 0 {
		state |= optionBit
	}
	if mask&modmask.Ctrl != 0 {
		state |= controlBit
	}
	return state
}

func (h *DarwinHelper) queryInitialMask() uint16 {
	var mask uint16
	if C.uiohook_key_down(kVKShiftL) != 0 {
		mask |= modmask.ShiftL
	}
	if C.uiohook_key_down(kVKShiftR) != 0 {
		mask |= modmask.ShiftR
	}
	if C.uiohook_key_down(kVKControlL) != 0 {
		mask |= modmask.CtrlL
	}
	if C.uiohook_key_down(kVKControlR) != 0 {
		mask |= modmask.CtrlR
	}
	if C.uiohook_key_down(kVKOptionL) != 0 {
		mask |= modmask.AltL
	}
	if C.uiohook_key_down(kVKOptionR) != 0 {
		mask |= modmask.AltR
	}
	if C.uiohook_key_down(kVKCommandL) != 0 {
		mask |= modmask.MetaL
	}
	if C.uiohook_key_down(kVKCommandR) != 0 {
		mask |= modmask.MetaR
	}
	if int(C.uiohook_flags())&cgFlagAlphaShift != 0 {
		mask |= modmask.CapsLock
	}
	return mask
}
