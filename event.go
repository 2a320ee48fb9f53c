package uiohook

import "github.com/serty2005/uiohook/internal/event"

// The canonical event model lives in internal/event; these aliases keep it
// reachable from internal/dispatch and internal/hookrt without importing
// back up into this package.
type (
	EventKind = event.EventKind
	KeyData   = event.KeyData
	MouseData = event.MouseData
	Event     = event.Event
	Record    = event.Record
)

const (
	EventHookEnabled   = event.EventHookEnabled
	EventHookDisabled  = event.EventHookDisabled
	EventKeyPressed    = event.EventKeyPressed
	EventKeyReleased   = event.EventKeyReleased
	EventKeyTyped      = event.EventKeyTyped
	EventMousePressed  = event.EventMousePressed
	EventMouseReleased = event.EventMouseReleased
	EventMouseClicked  = event.EventMouseClicked
	EventMouseMoved    = event.EventMouseMoved
	EventMouseDragged  = event.EventMouseDragged
	EventMouseWheel    = event.EventMouseWheel
)

const (
	ModShiftL     = event.ModShiftL
	ModCtrlL      = event.ModCtrlL
	ModMetaL      = event.ModMetaL
	ModAltL       = event.ModAltL
	ModShiftR     = event.ModShiftR
	ModCtrlR      = event.ModCtrlR
	ModMetaR      = event.ModMetaR
	ModAltR       = event.ModAltR
	ModButton1    = event.ModButton1
	ModButton2    = event.ModButton2
	ModButton3    = event.ModButton3
	ModButton4    = event.ModButton4
	ModButton5    = event.ModButton5
	ModNumLock    = event.ModNumLock
	ModCapsLock   = event.ModCapsLock
	ModScrollLock = event.ModScrollLock

	ModShift = event.ModShift
	ModCtrl  = event.ModCtrl
	ModMeta  = event.ModMeta
	ModAlt   = event.ModAlt
)
