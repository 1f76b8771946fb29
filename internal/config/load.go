package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// EnvConfig names a config file when no -config flag is given.
const EnvConfig = "TREFOIL_CONFIG"

// localNames are looked up in the working directory, in order.
var localNames = []string{"trefoil.yaml", "config.yaml"}

// Load builds the configuration from defaults, then a config file, then
// flags. The file is the -config flag, else $TREFOIL_CONFIG, else the first
// of trefoil.yaml, config.yaml and <ConfigDir>/config.yaml that exists.
// An explicitly named file must exist. Source reports the file used.
func Load() (*Config, error) {
	cfg := Default()

	path, explicit := explicitPath()
	if !explicit {
		path = findConfigFile()
	}
	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
		cfg.source = path
	}

	applyFlags(cfg)
	return cfg, nil
}

// Source returns the file the config was read from, or "" for defaults only.
func (c *Config) Source() string {
	return c.source
}

// explicitPath returns the file named by the flag or the environment.
func explicitPath() (string, bool) {
	if p := ConfigPath(); p != "" {
		return p, true
	}
	if p := os.Getenv(EnvConfig); p != "" {
		return p, true
	}
	return "", false
}

func findConfigFile() string {
	candidates := append([]string(nil), localNames...)
	candidates = append(candidates, filepath.Join(ConfigDir(), "config.yaml"))

	for _, path := range candidates {
		if fi, err := os.Stat(path); err == nil && !fi.IsDir() {
			return path
		}
	}
	return ""
}

// ConfigDir returns the per-user config directory.
func ConfigDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, appDirName())
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "trefoil")
}

// appDirName follows each platform's capitalization habit.
func appDirName() string {
	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		return "Trefoil"
	}
	return "trefoil"
}

// loadFromFile merges a YAML file into cfg. Keys missing from the file keep
// their current values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
