package uiohook

import "go.uber.org/zap"

// X11HeadMode selects which multi-head geometry backend the X11 runtime
// consults for ScreenSize, the Go-idiomatic stand-in for the original's
// USE_XINERAMA/USE_XRANDR build-time defines.
type X11HeadMode int

const (
	// X11HeadSingle uses the default screen's root geometry only.
	X11HeadSingle X11HeadMode = iota
	X11HeadXinerama
	X11HeadXRandR
)

type options struct {
	logger          *zap.Logger
	epochTimestamps bool
	x11HeadMode     X11HeadMode
}

func defaultOptions() options {
	return options{logger: zap.NewNop(), x11HeadMode: X11HeadSingle}
}

// Option configures a Hook at construction time, the functional-options
// equivalent of libuiohook's build-time USE_* defines.
type Option func(*options)

// WithLogger attaches a structured logger. The default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithEpochTimestamps records a preference for epoch-millisecond
// timestamps (USE_EPOCH_TIME). Run does not read it: every Event.Time is
// the wall-clock time at which the hook observed the event, whether or not
// this option is set.
func WithEpochTimestamps() Option {
	return func(o *options) { o.epochTimestamps = true }
}

// WithXinerama selects the Xinerama multi-head geometry backend on Linux
// (USE_XINERAMA). Mutually exclusive with WithXRandR; the later option in
// the argument list wins.
func WithXinerama() Option {
	return func(o *options) { o.x11HeadMode = X11HeadXinerama }
}

// WithXRandR selects the XRandR multi-head geometry backend on Linux
// (USE_XRANDR). Mutually exclusive with WithXinerama; the later option in
// the argument list wins.
func WithXRandR() Option {
	return func(o *options) { o.x11HeadMode = X11HeadXRandR }
}
