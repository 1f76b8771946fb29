// Package main is the Trefoil terrain editor.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/sqweek/dialog"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/trefoil/internal/app"
	"github.com/Faultbox/trefoil/internal/config"
	"github.com/Faultbox/trefoil/internal/logger"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fatal(nil, fmt.Errorf("config: %w", err))
	}
	if err := cfg.Validate(); err != nil {
		fatal(cfg, fmt.Errorf("invalid config: %w", err))
	}
	if path := config.SaveConfigPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			fatal(cfg, fmt.Errorf("save config: %w", err))
		}
		fmt.Printf("config written to %s\n", path)
		return
	}

	lc := cfg.Logging
	fileCfg := logger.FileConfig{}
	if lc.LogFile != "" {
		fileCfg = logger.FileConfig{
			Path:       lc.LogFile,
			MaxSizeMB:  lc.MaxSizeMB,
			MaxBackups: lc.MaxBackups,
			MaxAgeDays: lc.MaxAgeDays,
			Compress:   lc.Compress,
		}
	}
	if err := logger.InitWithFileConfig(lc.Level, fileCfg, true); err != nil {
		fatal(cfg, fmt.Errorf("logger: %w", err))
	}
	defer logger.Sync()

	logger.Info("=== Trefoil terrain editor ===")
	if src := cfg.Source(); src != "" {
		logger.Info("config loaded", zap.String("path", src))
	} else {
		logger.Info("no config file found, using defaults")
	}

	a, err := app.New(cfg)
	if err != nil {
		fatal(cfg, err)
	}

	runErr := a.Run()
	if err := multierr.Append(runErr, a.Close()); err != nil {
		fatal(cfg, err)
	}
}

// fatal reports err on stderr, in the log and, when enabled, in a dialog,
// then exits with status 1.
func fatal(cfg *config.Config, err error) {
	fmt.Fprintf(os.Stderr, "trefoil: %v\n", err)
	for _, e := range multierr.Errors(err) {
		logger.Error("fatal error", zap.Error(e))
	}
	logger.Sync()

	if cfg != nil && cfg.Editor.ErrorDialog {
		dialog.Message("%v", err).Title(app.Title).Error()
	}
	os.Exit(1)
}
