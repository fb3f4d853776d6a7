package cmd

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/viant/paramconv/param"
	"github.com/viant/paramconv/param/config"
	"github.com/viant/paramconv/param/monitor"
)

var (
	cfgPath string

	registryOnce sync.Once
	registryInst *param.Registry
	registryErr  error
)

// setConfigPath remembers the CLI-level -f/--config parameter so that the
// registry singleton can be created lazily by whichever sub-command is
// executed first.
func setConfigPath(p string) { cfgPath = p }

// registrySingleton initialises a param.Registry only once and reuses the
// instance across sub-commands within the same CLI invocation.
func registrySingleton() (*param.Registry, error) {
	registryOnce.Do(func() {
		ctx := context.Background()
		cfg := config.Default()
		if cfgPath != "" {
			cfg, registryErr = config.Load(ctx, cfgPath)
			if registryErr != nil {
				return
			}
		}
		mon := monitor.NewMulti(monitor.NewSignals())
		// Dump the effective config and log conversions when debugging.
		if debug := os.Getenv("PARAMCONV_DEBUG"); debug == "1" {
			_ = json.NewEncoder(os.Stderr).Encode(cfg)
			mon = monitor.NewMulti(mon, monitor.NewLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)), slog.LevelInfo))
		}
		registryInst, registryErr = param.NewWithConfig(cfg, param.WithMonitor(mon))
	})
	return registryInst, registryErr
}

// output returns w or stdout when w is nil.
func output(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
