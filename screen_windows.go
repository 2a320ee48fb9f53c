//go:build windows

package uiohook

import "golang.org/x/sys/windows"

var (
	user32gm            = windows.NewLazySystemDLL("user32.dll")
	procGetSystemMetrics = user32gm.NewProc("GetSystemMetrics")
)

const (
	smCXScreen = 0
	smCYScreen = 1
)

// ScreenSize returns the primary display's resolution in pixels.
func (h *Hook) ScreenSize() (w, h2 int) {
	cx, _, _ := procGetSystemMetrics.Call(smCXScreen)
	cy, _, _ := procGetSystemMetrics.Call(smCYScreen)
	return int(cx), int(cy)
}
