//go:build darwin

package uiohook

import (
	"go.uber.org/zap"

	"github.com/serty2005/uiohook/internal/hookrt"
)

func newPlatformRuntime(log *zap.Logger) hookrt.Runtime {
	return hookrt.NewDarwinRuntime(log)
}
