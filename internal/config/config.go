// Package config loads runtime settings from the environment and the subject
// catalog from TOML.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings of one hologlobe run.
type Config struct {
	LogLevel string `env:"HOLOGLOBE_LOG_LEVEL" envDefault:"info"`

	CameraID      int     `env:"HOLOGLOBE_CAMERA_ID" envDefault:"0"`
	CaptureWidth  int     `env:"HOLOGLOBE_CAPTURE_WIDTH" envDefault:"1280"`
	CaptureHeight int     `env:"HOLOGLOBE_CAPTURE_HEIGHT" envDefault:"720"`
	CaptureFPS    int     `env:"HOLOGLOBE_CAPTURE_FPS" envDefault:"30"`
	MotionThresh  float64 `env:"HOLOGLOBE_MOTION_THRESHOLD" envDefault:"0.5"`

	// TickRate is the display refresh rate driving the interaction engine.
	TickRate     int     `env:"HOLOGLOBE_TICK_RATE" envDefault:"60"`
	ScreenWidth  float32 `env:"HOLOGLOBE_SCREEN_WIDTH" envDefault:"1920"`
	ScreenHeight float32 `env:"HOLOGLOBE_SCREEN_HEIGHT" envDefault:"1080"`

	// Pinch thresholds in normalized landmark units.
	GlobePinch float64 `env:"HOLOGLOBE_GLOBE_PINCH" envDefault:"0.04"`
	PanelPinch float64 `env:"HOLOGLOBE_PANEL_PINCH" envDefault:"0.05"`

	CatalogPath string `env:"HOLOGLOBE_CATALOG"`
	Subject     string `env:"HOLOGLOBE_SUBJECT"`
	Tray        bool   `env:"HOLOGLOBE_TRAY" envDefault:"true"`
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate rejects settings the engine cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick rate must be positive, got %d", c.TickRate))
	}
	if c.CaptureFPS <= 0 {
		errs = append(errs, fmt.Errorf("capture fps must be positive, got %d", c.CaptureFPS))
	}
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		errs = append(errs, fmt.Errorf("screen size must be positive, got %vx%v", c.ScreenWidth, c.ScreenHeight))
	}
	if c.GlobePinch <= 0 || c.PanelPinch <= 0 {
		errs = append(errs, errors.New("pinch thresholds must be positive"))
	}
	return errors.Join(errs...)
}
