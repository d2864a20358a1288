package config

import (
	"os"
	"strconv"
	"time"
)

// Environment variables recognized by applyEnv.
const (
	// EnvStepTime overrides step_time; any time.ParseDuration format.
	EnvStepTime = "TM_STEP_TIME"

	// EnvLive overrides live; strconv.ParseBool values.
	EnvLive = "TM_LIVE"

	// EnvHistory overrides history; strconv.ParseBool values.
	EnvHistory = "TM_HISTORY"
)

// applyEnv overlays TM_* environment variables onto cfg. Unset or malformed
// values leave the existing setting in place.
func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvStepTime); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.StepTime = Duration{d}
		}
	}
	if v := os.Getenv(EnvLive); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Live = b
		}
	}
	if v := os.Getenv(EnvHistory); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.History = b
		}
	}
}
