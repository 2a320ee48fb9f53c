//go:build darwin

package hookrt

/*
#cgo LDFLAGS: -framework CoreGraphics -framework CoreFoundation
#include <CoreGraphics/CoreGraphics.h>
#include <CoreFoundation/CoreFoundation.h>

extern CGEventRef uiohookEventCallback(CGEventTapProxy proxy, CGEventType type, CGEventRef event, void *refcon);

static CFMachPortRef uiohook_create_tap(void *refcon) {
	CGEventMask mask =
		CGEventMaskBit(kCGEventKeyDown) | CGEventMaskBit(kCGEventKeyUp) |
		CGEventMaskBit(kCGEventFlagsChanged) |
		CGEventMaskBit(kCGEventLeftMouseDown) | CGEventMaskBit(kCGEventLeftMouseUp) |
		CGEventMaskBit(kCGEventRightMouseDown) | CGEventMaskBit(kCGEventRightMouseUp) |
		CGEventMaskBit(kCGEventOtherMouseDown) | CGEventMaskBit(kCGEventOtherMouseUp) |
		CGEventMaskBit(kCGEventMouseMoved) |
		CGEventMaskBit(kCGEventLeftMouseDragged) | CGEventMaskBit(kCGEventRightMouseDragged) |
		CGEventMaskBit(kCGEventOtherMouseDragged) |
		CGEventMaskBit(kCGEventScrollWheel);

	return CGEventTapCreate(kCGSessionEventTap, kCGHeadInsertEventTap,
		kCGEventTapOptionDefault, mask, uiohookEventCallback, refcon);
}
*/
import "C"

import (
	"runtime"
	"runtime/cgo"
	"sync"
	"time"
	"unsafe"

	"go.uber.org/zap"

	"github.com/serty2005/uiohook/internal/dispatch"
	"github.com/serty2005/uiohook/internal/helper"
	"github.com/serty2005/uiohook/internal/vcode"
)

// DarwinRuntime implements hookrt.Runtime via a Quartz CGEventTap on a
// CFRunLoop, grounded on the cgo/event-tap wiring idiom in
// _examples/other_examples/.../hotkey-tap_darwin.go.go and on the
// observer/cancellation shape of
// _examples/original_source/src/darwin/hook_callback.h.
type DarwinRuntime struct {
	StateHolder

	log *zap.Logger

	mu         sync.Mutex
	tap        C.CFMachPortRef
	source     C.CFRunLoopSourceRef
	runLoop    C.CFRunLoopRef
	dispatcher *dispatch.Dispatcher
	helper     *helper.DarwinHelper
}

func NewDarwinRuntime(log *zap.Logger) *DarwinRuntime {
	return &DarwinRuntime{log: log}
}

//export uiohookEventCallback
func uiohookEventCallback(proxy C.CGEventTapProxy, etype C.CGEventType, cgEvent C.CGEventRef, refcon unsafe.Pointer) C.CGEventRef {
	h := cgo.Handle(refcon)
	r, ok := h.Value().(*DarwinRuntime)
	if !ok || r.dispatcher == nil {
		return cgEvent
	}
	r.handleEvent(etype, cgEvent)
	return cgEvent
}

func (r *DarwinRuntime) handleEvent(etype C.CGEventType, cgEvent C.CGEventRef) {
	t := time.Now()
	tbl := vcode.NewTable()
	const kCGKeyboardEventKeycode = 9
	pt := C.CGEventGetLocation(cgEvent)
	x, y := int16(pt.x), int16(pt.y)

	switch etype {
	case C.kCGEventKeyDown:
		native := uint32(C.CGEventGetIntegerValueField(cgEvent, kCGKeyboardEventKeycode))
		vc := tbl.NativeToVirtual(native, true)
		r.dispatcher.KeyPress(t, vc, uint16(native), native)
		if r.helper != nil {
			lead, trail, n := r.helper.EventToUnicode(native, r.dispatcher.Mask())
			r.dispatcher.KeyTypedFromUnits(t, vc, lead, trail, n)
		}
	case C.kCGEventKeyUp:
		native := uint32(C.CGEventGetIntegerValueField(cgEvent, kCGKeyboardEventKeycode))
		vc := tbl.NativeToVirtual(native, true)
		r.dispatcher.KeyRelease(t, vc, uint16(native), native)
	case C.kCGEventLeftMouseDown:
		r.dispatcher.MousePress(t, 1, x, y)
	case C.kCGEventLeftMouseUp:
		r.dispatcher.MouseRelease(t, 1, x, y)
	case C.kCGEventRightMouseDown:
		r.dispatcher.MousePress(t, 2, x, y)
	case C.kCGEventRightMouseUp:
		r.dispatcher.MouseRelease(t, 2, x, y)
	case C.kCGEventOtherMouseDown:
		r.dispatcher.MousePress(t, 3, x, y)
	case C.kCGEventOtherMouseUp:
		r.dispatcher.MouseRelease(t, 3, x, y)
	case C.kCGEventMouseMoved, C.kCGEventLeftMouseDragged,
		C.kCGEventRightMouseDragged, C.kCGEventOtherMouseDragged:
		r.dispatcher.MouseMove(t, x, y)
	case C.kCGEventScrollWheel:
		delta := int16(C.CGEventGetIntegerValueField(cgEvent, 11)) // kCGScrollWheelEventDeltaAxis1
		r.dispatcher.MouseWheel(t, delta, 0)
	}
}

func (r *DarwinRuntime) Run(d *dispatch.Dispatcher) error {
	if !r.TryBeginRun() {
		return ErrAlreadyRunning
	}
	defer r.Reset()

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	r.dispatcher = d

	h := helper.NewDarwinHelper()
	if err := h.Load(); err != nil {
		return err
	}
	defer h.Unload()
	d.SeedMask(h.InitialMask())
	r.helper = h

	handle := cgo.NewHandle(r)
	defer handle.Delete()

	tap := C.uiohook_create_tap(unsafe.Pointer(handle))
	if tap == 0 {
		r.log.Error("CGEventTapCreate failed; accessibility permission likely missing")
		return errInstall(nil)
	}
	r.mu.Lock()
	r.tap = tap
	r.mu.Unlock()

	source := C.CFMachPortCreateRunLoopSource(0, tap, 0)
	r.source = source
	runLoop := C.CFRunLoopGetCurrent()
	r.runLoop = runLoop
	C.CFRunLoopAddSource(runLoop, source, C.kCFRunLoopCommonModes)
	C.CGEventTapEnable(tap, true)

	d.HookEnabled(time.Now())
	r.SetRunning()

	C.CFRunLoopRun()

	d.HookDisabled(time.Now())
	r.SetTeardown()

	C.CFRunLoopRemoveSource(runLoop, source, C.kCFRunLoopCommonModes)
	C.CFMachPortInvalidate(tap)
	C.CFRelease(C.CFTypeRef(source))
	C.CFRelease(C.CFTypeRef(tap))

	return nil
}

func (r *DarwinRuntime) Stop() error {
	if !r.TryBeginStop() {
		return ErrNotRunning
	}
	r.mu.Lock()
	rl := r.runLoop
	r.mu.Unlock()
	if rl != 0 {
		C.CFRunLoopStop(rl)
	}
	return nil
}
