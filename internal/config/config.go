// Package config defines the process configuration for the treadscope
// server. Values come from the environment (optionally seeded from a .env
// file by main); configuration is loaded once at startup and immutable
// thereafter.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds every tunable the server reads.
type Config struct {
	Port     string `envconfig:"PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// MaxImageDim is the longest photo side after downscale. The
	// deterioration pipeline runs per slider move, so this bounds frame
	// render time.
	MaxImageDim int `envconfig:"MAX_IMAGE_DIM" default:"400"`

	// MaxUploadBytes bounds the multipart photo upload size.
	MaxUploadBytes int64 `envconfig:"MAX_UPLOAD_BYTES" default:"10485760"`

	// JPEGQuality is the encode quality for rendered frames.
	JPEGQuality int `envconfig:"JPEG_QUALITY" default:"85"`
}

// Load resolves the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config: processing environment: %w", err)
	}
	if cfg.MaxImageDim <= 0 {
		return Config{}, fmt.Errorf("config: MAX_IMAGE_DIM must be positive, got %d", cfg.MaxImageDim)
	}
	return cfg, nil
}
