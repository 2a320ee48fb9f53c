//go:build windows

package hookrt

import (
	"runtime"
	"sync"
	"syscall"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"

	"go.uber.org/zap"

	"github.com/serty2005/uiohook/internal/dispatch"
	"github.com/serty2005/uiohook/internal/helper"
	"github.com/serty2005/uiohook/internal/modmask"
	"github.com/serty2005/uiohook/internal/vcode"
)

var (
	user32                    = windows.NewLazySystemDLL("user32.dll")
	procSetWindowsHookEx      = user32.NewProc("SetWindowsHookExW")
	procUnhookWindowsHookEx   = user32.NewProc("UnhookWindowsHookEx")
	procCallNextHookEx        = user32.NewProc("CallNextHookEx")
	procGetMessage            = user32.NewProc("GetMessageW")
	procTranslateMessage      = user32.NewProc("TranslateMessage")
	procDispatchMessage       = user32.NewProc("DispatchMessageW")
	procPostThreadMessage     = user32.NewProc("PostThreadMessageW")
)

const (
	whKeyboardLL = 13
	whMouseLL    = 14
	wmQuit       = 0x0012

	wmKeyDown    = 0x0100
	wmKeyUp      = 0x0101
	wmSysKeyDown = 0x0104
	wmSysKeyUp   = 0x0105

	wmLButtonDown  = 0x0201
	wmLButtonUp    = 0x0202
	wmRButtonDown  = 0x0204
	wmRButtonUp    = 0x0205
	wmMButtonDown  = 0x0207
	wmMButtonUp    = 0x0208
	wmMouseMove    = 0x0200
	wmMouseWheel   = 0x020A
	wmMouseHWheel  = 0x020E
	wmXButtonDown  = 0x020B
	wmXButtonUp    = 0x020C
)

type kbdllhookstruct struct {
	VkCode      uint32
	ScanCode    uint32
	Flags       uint32
	Time        uint32
	DwExtraInfo uintptr
}

type point struct{ X, Y int32 }

type msllhookstruct struct {
	Pt          point
	MouseData   uint32
	Flags       uint32
	Time        uint32
	DwExtraInfo uintptr
}

type msg struct {
	Hwnd    uintptr
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      point
}

// WindowsRuntime implements hookrt.Runtime via WH_KEYBOARD_LL/WH_MOUSE_LL,
// grounded on _examples/serty2005-clipQueue/platform/windows/hook.go and
// input_listener.go for the syscall/callback idiom, and on
// _examples/original_source/src/windows/input_hook.c for the control flow
// (hook-enable/disable bracketing around a GetMessage pump, WM_QUIT stop
// handshake from a separate thread).
type WindowsRuntime struct {
	StateHolder

	log *zap.Logger

	mu            sync.Mutex
	hookThreadID  uint32
	keyboardHook  uintptr
	mouseHook     uintptr
}

func NewWindowsRuntime(log *zap.Logger) *WindowsRuntime {
	return &WindowsRuntime{log: log}
}

func (r *WindowsRuntime) Run(d *dispatch.Dispatcher) error {
	if !r.TryBeginRun() {
		return ErrAlreadyRunning
	}
	defer r.Reset()

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	r.mu.Lock()
	r.hookThreadID = windows.GetCurrentThreadId()
	r.mu.Unlock()

	h := helper.NewWindowsHelper()
	if err := h.Load(); err != nil {
		return err
	}
	defer h.Unload()
	d.SeedMask(h.InitialMask())

	tbl := vcode.NewTable()


	keyCB := func(nCode int, wParam uintptr, lParam uintptr) uintptr {
		if nCode >= 0 {
			kb := (*kbdllhookstruct)(unsafe.Pointer(lParam))
			vc := tbl.NativeToVirtual(kb.VkCode, d.Mask()&modmask.NumLock != 0)
			t := time.Now()
			switch wParam {
			case wmKeyDown, wmSysKeyDown:
				if d.KeyPress(t, vc, uint16(kb.VkCode), kb.ScanCode) {
					return 1
				}
				lead, trail, n := h.EventToUnicode(kb.VkCode, d.Mask())
				d.KeyTypedFromUnits(t, vc, lead, trail, n)
			case wmKeyUp, wmSysKeyUp:
				if d.KeyRelease(t, vc, uint16(kb.VkCode), kb.ScanCode) {
					return 1
				}
			}
		}
		ret, _, _ := procCallNextHookEx.Call(0, uintptr(nCode), wParam, lParam)
		return ret
	}

	mouseCB := func(nCode int, wParam uintptr, lParam uintptr) uintptr {
		if nCode >= 0 {
			m := (*msllhookstruct)(unsafe.Pointer(lParam))
			t := time.Now()
			x, y := int16(m.Pt.X), int16(m.Pt.Y)
			switch wParam {
			case wmLButtonDown:
				d.MousePress(t, h.ButtonMap(1), x, y)
			case wmLButtonUp:
				d.MouseRelease(t, h.ButtonMap(1), x, y)
			case wmRButtonDown:
				d.MousePress(t, h.ButtonMap(2), x, y)
			case wmRButtonUp:
				d.MouseRelease(t, h.ButtonMap(2), x, y)
			case wmMButtonDown:
				d.MousePress(t, h.ButtonMap(3), x, y)
			case wmMButtonUp:
				d.MouseRelease(t, h.ButtonMap(3), x, y)
			case wmXButtonDown:
				// The documented bug being fixed here: use the actual
				// extra-button index (4 or 5) from MouseData, not a
				// hardcoded button.
				d.MousePress(t, h.ButtonMap(xButtonIndex(m.MouseData)), x, y)
			case wmXButtonUp:
				d.MouseRelease(t, h.ButtonMap(xButtonIndex(m.MouseData)), x, y)
			case wmMouseMove:
				d.MouseMove(t, x, y)
			case wmMouseWheel:
				delta := int16(int32(m.MouseData) >> 16)
				d.MouseWheel(t, delta, 0)
			case wmMouseHWheel:
				delta := int16(int32(m.MouseData) >> 16)
				d.MouseWheel(t, 0, delta)
			}
		}
		ret, _, _ := procCallNextHookEx.Call(0, uintptr(nCode), wParam, lParam)
		return ret
	}

	keyHandle, _, err := procSetWindowsHookEx.Call(whKeyboardLL, syscall.NewCallback(keyCB), 0, 0)
	if keyHandle == 0 {
		r.log.Error("SetWindowsHookEx WH_KEYBOARD_LL failed", zap.Error(err))
		return errInstall(err)
	}
	r.keyboardHook = keyHandle

	mouseHandle, _, err := procSetWindowsHookEx.Call(whMouseLL, syscall.NewCallback(mouseCB), 0, 0)
	if mouseHandle == 0 {
		r.log.Error("SetWindowsHookEx WH_MOUSE_LL failed, unwinding keyboard hook", zap.Error(err))
		procUnhookWindowsHookEx.Call(keyHandle)
		return errInstall(err)
	}
	r.mouseHook = mouseHandle

	r.log.Debug("hooks installed", zap.Uint32("thread_id", r.hookThreadID))
	d.HookEnabled(time.Now())
	r.SetRunning()

	r.pumpMessages()

	d.HookDisabled(time.Now())
	r.SetTeardown()

	procUnhookWindowsHookEx.Call(r.keyboardHook)
	procUnhookWindowsHookEx.Call(r.mouseHook)
	r.keyboardHook, r.mouseHook = 0, 0

	return nil
}

func (r *WindowsRuntime) pumpMessages() {
	var m msg
	for {
		ret, _, _ := procGetMessage.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
		if int32(ret) <= 0 {
			return
		}
		procTranslateMessage.Call(uintptr(unsafe.Pointer(&m)))
		procDispatchMessage.Call(uintptr(unsafe.Pointer(&m)))
	}
}

func (r *WindowsRuntime) Stop() error {
	if !r.TryBeginStop() {
		return ErrNotRunning
	}
	r.mu.Lock()
	tid := r.hookThreadID
	r.mu.Unlock()
	r.log.Debug("posting WM_QUIT to hook thread", zap.Uint32("thread_id", tid))
	procPostThreadMessage.Call(uintptr(tid), wmQuit, 0, 0)
	return nil
}

// xButtonIndex resolves the logical button (4 or 5, or higher for vendor
// extra buttons) from a WM_XBUTTON* message's high word, used consistently
// in both the press and release handlers above — unlike the original C
// code's WM_XBUTTONUP path, which hardcodes MOUSE_BUTTON5 regardless of
// which extra button actually went up.
func xButtonIndex(mouseData uint32) uint16 {
	hi := uint16(mouseData >> 16)
	switch hi {
	case 1:
		return 4
	case 2:
		return 5
	default:
		return 3 + hi
	}
}

