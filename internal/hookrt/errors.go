package hookrt

import "errors"

var (
	ErrAlreadyRunning = errors.New("hook already running")
	ErrNotRunning     = errors.New("hook not running")
)

// errInstall wraps a platform syscall failure from hook installation. The
// public facade classifies it into the appropriate uiohook.Kind.
func errInstall(cause error) error {
	return &installError{cause: cause}
}

type installError struct{ cause error }

func (e *installError) Error() string {
	if e.cause == nil {
		return "hook install failed"
	}
	return "hook install failed: " + e.cause.Error()
}

func (e *installError) Unwrap() error { return e.cause }
