// Command uiohook-tap runs the hook and logs every canonical event until
// interrupted. It is the Go-idiomatic stand-in for a test-harness runner:
// a thin consumer exercising the library end to end.
//
// Wiring grounded on
// _examples/serty2005-clipQueue/main.go (config load -> logger init ->
// callback registration -> signal.Notify -> graceful stop).
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/serty2005/uiohook"
	"github.com/serty2005/uiohook/internal/config"
	"github.com/serty2005/uiohook/internal/logging"
)

func main() {
	var (
		configPath string
		epoch      bool
		xinerama   bool
		xrandr     bool
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   "uiohook-tap",
		Short: "Log global keyboard/mouse events until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if epoch {
				cfg.EpochTimestamps = true
			}
			if xinerama {
				cfg.X11HeadMode = "xinerama"
			}
			if xrandr {
				cfg.X11HeadMode = "xrandr"
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}

			log := buildLogger(cfg.LogLevel)
			defer log.Sync()

			opts := []uiohook.Option{uiohook.WithLogger(log)}
			if cfg.EpochTimestamps {
				opts = append(opts, uiohook.WithEpochTimestamps())
			}
			switch cfg.X11HeadMode {
			case "xinerama":
				opts = append(opts, uiohook.WithXinerama())
			case "xrandr":
				opts = append(opts, uiohook.WithXRandR())
			}

			hook := uiohook.New(opts...)
			hook.SetEventHandler(func(e uiohook.Event) {
				log.Info("event",
					zap.Stringer("kind", e.Kind),
					zap.Uint16("virtual_code", e.Key.VirtualCode),
					zap.Uint16("button", e.Mouse.Button),
					zap.Int16("x", e.Mouse.X),
					zap.Int16("y", e.Mouse.Y),
				)
			})

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
			go func() {
				<-sig
				log.Info("shutting down")
				if err := hook.Stop(); err != nil {
					log.Warn("stop returned an error", zap.Error(err))
				}
			}()

			return hook.Run()
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "uiohook-tap.yaml", "path to config file")
	cmd.Flags().BoolVar(&epoch, "epoch", false, "use epoch-millisecond timestamps")
	cmd.Flags().BoolVar(&xinerama, "xinerama", false, "use Xinerama for screen geometry (Linux)")
	cmd.Flags().BoolVar(&xrandr, "xrandr", false, "use XRandR for screen geometry (Linux)")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "override configured log level")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildLogger(level string) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	switch level {
	case "debug":
		cfg.Level.SetLevel(zap.DebugLevel)
	case "warn":
		cfg.Level.SetLevel(zap.WarnLevel)
	case "error":
		cfg.Level.SetLevel(zap.ErrorLevel)
	default:
		cfg.Level.SetLevel(zap.InfoLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		return logging.Nop()
	}
	return l
}
