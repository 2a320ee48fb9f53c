//go:build linux

package uiohook

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/randr"
	"github.com/jezek/xgb/xinerama"
	"github.com/jezek/xgb/xproto"
)

// ScreenSize returns the screen resolution in pixels, using the geometry
// backend selected by WithXinerama/WithXRandR (default: the root window of
// the default screen).
func (h *Hook) ScreenSize() (w, ht int) {
	conn, err := xgb.NewConn()
	if err != nil {
		return 0, 0
	}
	defer conn.Close()

	setup := xproto.Setup(conn)
	screen := setup.DefaultScreen(conn)

	switch h.opts.x11HeadMode {
	case X11HeadXinerama:
		if err := xinerama.Init(conn); err == nil {
			if reply, err := xinerama.QueryScreens(conn).Reply(); err == nil && len(reply.ScreenInfo) > 0 {
				return int(reply.ScreenInfo[0].Width), int(reply.ScreenInfo[0].Height)
			}
		}
	case X11HeadXRandR:
		if err := randr.Init(conn); err == nil {
			if res, err := randr.GetScreenResources(conn, screen.Root).Reply(); err == nil && len(res.Crtcs) > 0 {
				if info, err := randr.GetCrtcInfo(conn, res.Crtcs[0], 0).Reply(); err == nil {
					return int(info.Width), int(info.Height)
				}
			}
		}
	}

	return int(screen.WidthInPixels), int(screen.HeightInPixels)
}
