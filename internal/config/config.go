// Package config handles application configuration loading and management.
package config

import "time"

// Config holds all application settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics" envPrefix:"GRAPHICS_"`
	Die      DieConfig      `yaml:"die" envPrefix:"DIE_"`
	Logging  LoggingConfig  `yaml:"logging" envPrefix:"LOG_"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width" env:"WIDTH"`
	Height     int  `yaml:"height" env:"HEIGHT"`
	Fullscreen bool `yaml:"fullscreen" env:"FULLSCREEN"`
	VSync      bool `yaml:"vsync" env:"VSYNC"`

	// RenderScale divides the drawable size to pick the CPU frame
	// resolution. Values below 1 supersample; the effective sampling
	// factor is capped at 2.
	RenderScale float64 `yaml:"render_scale" env:"RENDER_SCALE"`
}

// DieConfig holds die shape and roll settings.
type DieConfig struct {
	// Faces is the face count. 0 means the mode default (13 for the
	// polyhedron, 37 for the sphere); out-of-range values are clamped.
	Faces int `yaml:"faces" env:"FACES"`

	// Mode selects the surface: "poly" or "sphere".
	Mode string `yaml:"mode" env:"MODE"`

	// Offset is the shared face-plane distance from the center.
	Offset float64 `yaml:"offset" env:"OFFSET"`

	// RollDuration is how long a roll animates before settling.
	// YAML takes integer nanoseconds; the env override accepts "1.2s".
	RollDuration time.Duration `yaml:"roll_duration" env:"ROLL_DURATION"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" env:"LEVEL"`
	LogFile string `yaml:"log_file" env:"FILE"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:       900,
			Height:      900,
			Fullscreen:  false,
			VSync:       true,
			RenderScale: 1,
		},
		Die: DieConfig{
			Faces:        0, // mode default
			Mode:         "poly",
			Offset:       0.9,
			RollDuration: 1200 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
