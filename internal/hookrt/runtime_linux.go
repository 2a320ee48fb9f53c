//go:build linux

package hookrt

import (
	"runtime"
	"sync"
	"time"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgb/xrecord"
	"go.uber.org/zap"

	"github.com/serty2005/uiohook/internal/dispatch"
	"github.com/serty2005/uiohook/internal/helper"
	"github.com/serty2005/uiohook/internal/modmask"
	"github.com/serty2005/uiohook/internal/vcode"
)

// LinuxRuntime implements hookrt.Runtime via the X11 XRecord extension on
// a pure-Go xgb connection (no cgo), grounded on the control+data display
// handshake in _examples/original_source/src/x11/input_hook.c
// (xrecord_start/xrecord_alloc/xrecord_block/hook_stop) and on the
// jezek/xgb client idiom in
// _examples/other_examples/.../keyboard_x11.go.go.
type LinuxRuntime struct {
	StateHolder

	log *zap.Logger

	mu        sync.Mutex
	ctrlConn  *xgb.Conn
	dataConn  *xgb.Conn
	recordCtx xrecord.Context
	helper    *helper.LinuxHelper
}

func NewLinuxRuntime(log *zap.Logger) *LinuxRuntime {
	return &LinuxRuntime{log: log}
}

func (r *LinuxRuntime) Run(d *dispatch.Dispatcher) error {
	if !r.TryBeginRun() {
		return ErrAlreadyRunning
	}
	defer r.Reset()

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	// Mirrors xrecord_start opening two independent display connections on
	// the hook thread: one to issue control commands (enable/disable the
	// record context), one to receive the intercepted wire events.
	ctrlConn, err := xgb.NewConn()
	if err != nil {
		return errInstall(err)
	}
	r.mu.Lock()
	r.ctrlConn = ctrlConn
	r.mu.Unlock()
	defer ctrlConn.Close()

	dataConn, err := xgb.NewConn()
	if err != nil {
		return errInstall(err)
	}
	r.mu.Lock()
	r.dataConn = dataConn
	r.mu.Unlock()
	defer dataConn.Close()

	if err := xrecord.Init(ctrlConn); err != nil {
		r.log.Error("XRecord extension unavailable", zap.Error(err))
		return errInstall(err)
	}

	setup := xproto.Setup(dataConn)
	root := setup.DefaultScreen(dataConn).Root

	h := helper.NewLinuxHelper(dataConn, root)
	if err := h.Load(); err != nil {
		return errInstall(err)
	}
	defer h.Unload()
	r.helper = h
	d.SeedMask(h.InitialMask())

	contextID, err := xrecord.NewContextId(ctrlConn)
	if err != nil {
		return errInstall(err)
	}
	r.recordCtx = contextID

	rng := xrecord.Range{
		DeviceEvents: xrecord.Range8{
			First: xproto.KeyPress,
			Last:  xproto.MappingNotify,
		},
	}
	if err := xrecord.CreateContextChecked(ctrlConn, contextID, xrecord.ElementHeaderFromServerTime,
		[]xrecord.CS{xrecord.CSCurrentClients}, []xrecord.Range{rng}).Check(); err != nil {
		return errInstall(err)
	}

	tbl := vcode.NewTable()

	enableCookie := xrecord.EnableContext(dataConn, r.recordCtx)

	d.HookEnabled(time.Now())
	r.SetRunning()

	for {
		reply, err := enableCookie.Reply()
		if err != nil || reply == nil {
			break
		}
		if reply.ClientSwapped {
			continue
		}
		switch reply.Category {
		case xrecord.ElementHeaderFromServer:
			r.handleWireEvent(d, tbl, h, reply.Data)
		case xrecord.ElementHeaderStartOfData:
			// already dispatched HookEnabled above
		case xrecord.ElementHeaderEndOfData:
			goto stopped
		}
	}
stopped:

	d.HookDisabled(time.Now())
	r.SetTeardown()

	xrecord.DisableContext(ctrlConn, r.recordCtx)
	xrecord.FreeContext(ctrlConn, r.recordCtx)

	return nil
}

// handleWireEvent reconstructs canonical dispatch calls from the raw wire
// bytes XRecord hands back, matching wire_data_to_event in
// _examples/original_source/src/x11/input_helper.c ("Based on mappings
// from _XWireToEvent in Xlibinit.c").
func (r *LinuxRuntime) handleWireEvent(d *dispatch.Dispatcher, tbl vcode.Table, h *helper.LinuxHelper, data []byte) {
	if len(data) < 32 {
		return
	}
	eventType := data[0] & 0x7f
	t := time.Now()

	switch eventType {
	case xproto.KeyPress, xproto.KeyRelease:
		keycode := uint32(data[1])
		// The table is keyed by keysym: resolve the keycode through the
		// server's current mapping, preferring the numeric keypad keysym
		// (second column) so the table's NumLock rule can apply.
		var keysym uint32
		if km, err := xproto.GetKeyboardMapping(r.dataConn, xproto.Keycode(keycode), 1).Reply(); err == nil && len(km.Keysyms) > 0 {
			keysym = uint32(km.Keysyms[0])
			if len(km.Keysyms) > 1 {
				if ks := uint32(km.Keysyms[1]); (ks >= 0xffb0 && ks <= 0xffb9) || ks == 0xffac {
					keysym = ks
				}
			}
		}
		vc := tbl.NativeToVirtual(keysym, d.Mask()&modmask.NumLock != 0)
		if eventType == xproto.KeyPress {
			d.KeyPress(t, vc, uint16(keycode), uint32(keycode))
			lead, trail, n := h.EventToUnicode(keycode, d.Mask())
			d.KeyTypedFromUnits(t, vc, lead, trail, n)
		} else {
			d.KeyRelease(t, vc, uint16(keycode), uint32(keycode))
		}
	case xproto.ButtonPress, xproto.ButtonRelease:
		button := h.ButtonMap(uint16(data[1]))
		x := int16(le16(data[24:26]))
		y := int16(le16(data[26:28]))
		if eventType == xproto.ButtonPress {
			d.MousePress(t, button, x, y)
		} else {
			d.MouseRelease(t, button, x, y)
		}
	case xproto.MotionNotify:
		x := int16(le16(data[24:26]))
		y := int16(le16(data[26:28]))
		d.MouseMove(t, x, y)
	case xproto.MappingNotify:
		// Supplemented behavior: the original's hook_event_proc leaves a
		// TODO here and never refreshes the keyboard mapping. We
		// re-resolve native<->virtual lazily on next lookup instead, since
		// this table implementation has no cached XkbDescPtr to refresh.
	}
}

func le16(b []byte) uint16 {
	return uint16(b[0]) | uint16(b[1])<<8
}

func (r *LinuxRuntime) Stop() error {
	if !r.TryBeginStop() {
		return ErrNotRunning
	}
	r.mu.Lock()
	ctx := r.recordCtx
	conn := r.ctrlConn
	r.mu.Unlock()
	if conn != nil && ctx != 0 {
		xrecord.DisableContext(conn, ctx)
		conn.Sync()
	}
	return nil
}
