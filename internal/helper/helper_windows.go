//go:build windows

package helper

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/serty2005/uiohook/internal/modmask"
)

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	procGetKeyState      = user32.NewProc("GetKeyState")
	procGetKeyboardState = user32.NewProc("GetKeyboardState")
	procToUnicodeEx      = user32.NewProc("ToUnicodeEx")
	procMapVirtualKeyExW = user32.NewProc("MapVirtualKeyExW")
	procGetKeyboardLayout = user32.NewProc("GetKeyboardLayout")
)

const (
	vkShift   = 0x10
	vkControl = 0x11
	vkMenu    = 0x12
	vkLWin    = 0x5B
	vkRWin    = 0x5C
	vkCapital = 0x14
	vkNumlock = 0x90
	vkScroll  = 0x91
	vkLButton = 0x01
	vkRButton = 0x02
	vkMButton = 0x04
	vkXButton1 = 0x05
	vkXButton2 = 0x06
)

// WindowsHelper implements Helper using GetKeyState,
// grounded on isKeyDown/getCurrentModifiers in
// _examples/serty2005-clipQueue/platform/windows/input_listener.go and
// hook.go, generalized from clipQueue's 4-bit hotkey mask to the full
// canonical modifier mask.
type WindowsHelper struct {
	initialMask uint16
	buttonTable [ButtonTableMax]uint16
}

func NewWindowsHelper() *WindowsHelper { return &WindowsHelper{} }

func (h *WindowsHelper) Load() error {
	for i := range h.buttonTable {
		h.buttonTable[i] = uint16(i)
	}
	h.initialMask = h.queryInitialMask()
	return nil
}

func (h *WindowsHelper) Unload() {}

func (h *WindowsHelper) InitialMask() uint16 { return h.initialMask }

// ButtonMap is the identity mapping on Windows: SetWindowsHookEx delivers
// WM_[LRM]BUTTON*/WM_XBUTTON* already numbered consistently, unlike X11.
func (h *WindowsHelper) ButtonMap(raw uint16) uint16 {
	if int(raw) < len(h.buttonTable) {
		return h.buttonTable[raw]
	}
	return raw
}

// EventToUnicode translates a virtual-key code through the active keyboard
// layout using ToUnicodeEx, the same API libuiohook's Windows backend is
// documented (SPEC) to use for printable-key derivation. mask supplies the
// modifier state ToUnicodeEx needs in lieu of a live GetKeyboardState call,
// since the hook callback runs on its own thread with its own key-state
// view.
func (h *WindowsHelper) EventToUnicode(native uint32, mask uint16) (lead, trail uint16, n int) {
	var keyState [256]byte
	if mask&modmask.Shift != 0 {
		keyState[vkShift] = 0x80
	}
	if mask&modmask.Ctrl != 0 {
		keyState[vkControl] = 0x80
	}
	if mask&modmask.Alt != 0 {
		keyState[vkMenu] = 0x80
	}
	if mask&modmask.CapsLock != 0 {
		keyState[vkCapital] = 0x01
	}

	hkl, _, _ := procGetKeyboardLayout.Call(0)
	const mapvkVKToVSC = 0
	scanCode, _, _ := procMapVirtualKeyExW.Call(uintptr(native), mapvkVKToVSC, hkl)

	var buf [4]uint16
	ret, _, _ := procToUnicodeEx.Call(
		uintptr(native), scanCode,
		uintptr(unsafe.Pointer(&keyState[0])),
		uintptr(unsafe.Pointer(&buf[0])), 4, 0, hkl,
	)
	count := int(int32(ret))
	if count <= 0 {
		return 0, 0, 0
	}
	if count > 2 {
		count = 2
	}
	if count == 1 {
		return buf[0], 0, 1
	}
	return buf[0], buf[1], 2
}

func keyDown(vk uintptr) bool {
	ret, _, _ := procGetKeyState.Call(vk)
	return ret&0x8000 != 0
}

func toggled(vk uintptr) bool {
	ret, _, _ := procGetKeyState.Call(vk)
	return ret&0x0001 != 0
}

func (h *WindowsHelper) queryInitialMask() uint16 {
	var mask uint16
	if keyDown(0xA0) { // VK_LSHIFT
		mask |= modmask.ShiftL
	}
	if keyDown(0xA1) { // VK_RSHIFT
		mask |= modmask.ShiftR
	}
	if keyDown(0xA2) { // VK_LCONTROL
		mask |= modmask.CtrlL
	}
	if keyDown(0xA3) { // VK_RCONTROL
		mask |= modmask.CtrlR
	}
	if keyDown(0xA4) { // VK_LMENU
		mask |= modmask.AltL
	}
	if keyDown(0xA5) { // VK_RMENU
		mask |= modmask.AltR
	}
	if keyDown(vkLWin) {
		mask |= modmask.MetaL
	}
	if keyDown(vkRWin) {
		mask |= modmask.MetaR
	}
	if keyDown(vkLButton) {
		mask |= modmask.Button1
	}
	if keyDown(vkRButton) {
		mask |= modmask.Button2
	}
	if keyDown(vkMButton) {
		mask |= modmask.Button3
	}
	if keyDown(vkXButton1) {
		mask |= modmask.Button4
	}
	if keyDown(vkXButton2) {
		mask |= modmask.Button5
	}
	if toggled(vkCapital) {
		mask |= modmask.CapsLock
	}
	if toggled(vkNumlock) {
		mask |= modmask.NumLock
	}
	if toggled(vkScroll) {
		mask |= modmask.ScrollLock
	}
	return mask
}
