// Package config handles editor configuration loading and management.
package config

import (
	"fmt"
	"math"

	"go.uber.org/multierr"
)

// Config holds all editor settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Terrain  TerrainConfig  `yaml:"terrain"`
	Brush    BrushConfig    `yaml:"brush"`
	Picking  PickingConfig  `yaml:"picking"`
	Sun      SunConfig      `yaml:"sun"`
	Editor   EditorConfig   `yaml:"editor"`
	Logging  LoggingConfig  `yaml:"logging"`

	source string `yaml:"-"`
}

// Vec3 is a 3D vector in config files.
type Vec3 struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	MSAA       int  `yaml:"msaa"`
}

// CameraConfig holds the fly camera settings.
type CameraConfig struct {
	FovDegrees      float32 `yaml:"fov_degrees"`
	Near            float32 `yaml:"near"`
	Far             float32 `yaml:"far"`
	Speed           float32 `yaml:"speed"`
	BoostMultiplier float32 `yaml:"boost_multiplier"`
	Sensitivity     float32 `yaml:"sensitivity"`
	PitchMargin     float32 `yaml:"pitch_margin"`
	StartPosition   Vec3    `yaml:"start_position,flow"`
	StartTarget     Vec3    `yaml:"start_target,flow"`
}

// TerrainConfig holds the height-field dimensions.
type TerrainConfig struct {
	SamplesX int     `yaml:"samples_x"`
	SamplesZ int     `yaml:"samples_z"`
	Spacing  float32 `yaml:"spacing"`
	OriginX  float32 `yaml:"origin_x"`
	OriginZ  float32 `yaml:"origin_z"`
}

// BrushConfig holds sculpting brush settings.
type BrushConfig struct {
	Size       float32 `yaml:"size"`
	MinSize    float32 `yaml:"min_size"`
	MaxSize    float32 `yaml:"max_size"`
	Rate       float32 `yaml:"rate"`
	ScrollStep float32 `yaml:"scroll_step"`
}

// PickingConfig holds ray marching settings.
type PickingConfig struct {
	Step             float32 `yaml:"step"` // 0 means half a terrain cell
	Tolerance        float32 `yaml:"tolerance"`
	MaxSteps         int     `yaml:"max_steps"`
	RefineIterations int     `yaml:"refine_iterations"`
}

// SunConfig holds the sun light-space camera.
type SunConfig struct {
	Position     Vec3    `yaml:"position,flow"`
	Target       Vec3    `yaml:"target,flow"`
	HalfExtent   float32 `yaml:"half_extent"`
	Near         float32 `yaml:"near"`
	Far          float32 `yaml:"far"`
	FitToTerrain bool    `yaml:"fit_to_terrain"`
}

// EditorConfig holds editor behavior settings.
type EditorConfig struct {
	StartMode        string  `yaml:"start_mode"` // editor, game or menu
	FPSReportSeconds float64 `yaml:"fps_report_seconds"`
	ErrorDialog      bool    `yaml:"error_dialog"`
	ScreenshotDir    string  `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	LogFile    string `yaml:"log_file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			MSAA:       4,
		},
		Camera: CameraConfig{
			FovDegrees:      60,
			Near:            0.1,
			Far:             5000,
			Speed:           120,
			BoostMultiplier: 2,
			Sensitivity:     0.003,
			PitchMargin:     0.01,
			StartPosition:   Vec3{520, 250, 100},
			StartTarget:     Vec3{0, 130, 0},
		},
		Terrain: TerrainConfig{
			SamplesX: 512,
			SamplesZ: 512,
			Spacing:  2,
			OriginX:  -512,
			OriginZ:  -512,
		},
		Brush: BrushConfig{
			Size:       20,
			MinSize:    0.1,
			MaxSize:    200,
			Rate:       40,
			ScrollStep: 1.5,
		},
		Picking: PickingConfig{
			Step:             0,
			Tolerance:        1e-3,
			MaxSteps:         4096,
			RefineIterations: 32,
		},
		Sun: SunConfig{
			Position:   Vec3{0, 200, 500},
			Target:     Vec3{0, 0, 0},
			HalfExtent: 600,
			Near:       1,
			Far:        1200,
		},
		Editor: EditorConfig{
			StartMode:        "editor",
			FPSReportSeconds: 5,
			ErrorDialog:      true,
			ScreenshotDir:    "screenshots",
		},
		Logging: LoggingConfig{
			Level:      "info",
			LogFile:    "",
			MaxSizeMB:  50,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
	}
}

// Validate reports every setting that cannot produce a working editor.
func (c *Config) Validate() error {
	var err error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			err = multierr.Append(err, fmt.Errorf(format, args...))
		}
	}

	check(c.Graphics.Width > 0 && c.Graphics.Height > 0,
		"graphics: invalid window size %dx%d", c.Graphics.Width, c.Graphics.Height)

	check(c.Camera.FovDegrees > 0 && c.Camera.FovDegrees < 180,
		"camera: fov_degrees %v outside (0, 180)", c.Camera.FovDegrees)
	check(c.Camera.Near > 0 && c.Camera.Near < c.Camera.Far,
		"camera: need 0 < near < far, got near=%v far=%v", c.Camera.Near, c.Camera.Far)
	check(c.Camera.PitchMargin > 0 && c.Camera.PitchMargin < math.Pi/4,
		"camera: pitch_margin %v outside (0, pi/4)", c.Camera.PitchMargin)

	check(c.Terrain.SamplesX >= 2 && c.Terrain.SamplesZ >= 2,
		"terrain: need at least 2x2 samples, got %dx%d", c.Terrain.SamplesX, c.Terrain.SamplesZ)
	check(c.Terrain.Spacing > 0, "terrain: spacing must be positive, got %v", c.Terrain.Spacing)

	check(c.Brush.MinSize > 0, "brush: min_size must be positive, got %v", c.Brush.MinSize)
	check(c.Brush.MinSize <= c.Brush.MaxSize,
		"brush: min_size %v greater than max_size %v", c.Brush.MinSize, c.Brush.MaxSize)

	check(c.Picking.Step >= 0, "picking: step must not be negative, got %v", c.Picking.Step)
	check(c.Picking.MaxSteps > 0, "picking: max_steps must be positive, got %d", c.Picking.MaxSteps)

	check(c.Sun.Near < c.Sun.Far, "sun: need near < far, got near=%v far=%v", c.Sun.Near, c.Sun.Far)

	switch c.Editor.StartMode {
	case "editor", "game", "menu":
	default:
		check(false, "editor: unknown start_mode %q", c.Editor.StartMode)
	}
	return err
}
