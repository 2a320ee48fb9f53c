//go:build darwin

package uiohook

/*
#cgo LDFLAGS: -framework CoreGraphics
#include <CoreGraphics/CoreGraphics.h>
*/
import "C"

// ScreenSize returns the main display's resolution in pixels.
func (h *Hook) ScreenSize() (w, ht int) {
	id := C.CGMainDisplayID()
	return int(C.CGDisplayPixelsWide(id)), int(C.CGDisplayPixelsHigh(id))
}
