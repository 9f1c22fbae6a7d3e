// SPDX-License-Identifier: MIT
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	applog "github.com/nikhiloz/generic/internal/log"
	"github.com/nikhiloz/generic/pkg/bitops"
)

// LoadConfig loads configuration from a YAML file specified by path.
// If path is empty, it searches default locations ("config.yaml"). If
// no file is found, it uses built-in defaults. After loading, it
// applies environment variable overrides, normalizes derived fields
// and validates the final configuration.
func LoadConfig(path string) (*Config, error) {
	cfg := New()

	if path == "" {
		candidates := []string{
			"config.yaml",
			// TODO: Add platform-specific paths (XDG config dir).
		}
		found := false
		for _, candidate := range candidates {
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				found = true
				break
			}
		}
		if !found {
			cfg.applyEnvOverrides()
			cfg.Normalize()
			if err := cfg.Validate(); err != nil {
				return nil, fmt.Errorf("invalid default configuration: %w", err)
			}
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Environment overrides apply AFTER the file so deployments can
	// retarget the trace sinks without editing it.
	cfg.applyEnvOverrides()
	cfg.Normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Normalize rounds derived fields into the shapes the runtime
// assumes. The tally progress stride must be a power of 2 because the
// hot loop masks with stride-1 instead of dividing; anything else is
// rounded up. A missing stride falls back to the default.
func (c *Config) Normalize() {
	if c.Demo.Stride <= 0 {
		c.Demo.Stride = DefaultStride
		return
	}
	c.Demo.Stride = int64(bitops.NextPowerOfTwo(int(c.Demo.Stride)))
}

// Validate checks the assembled configuration against the documented
// limits. Called once after all sources are applied.
func (c *Config) Validate() error {
	if c.Demo.Iterations < 1 || c.Demo.Iterations > MaxIterations {
		return fmt.Errorf("demo.iterations must be between 1 and %d, got %d", int64(MaxIterations), c.Demo.Iterations)
	}
	if c.Demo.SampleSize < 1 || c.Demo.SampleSize > MaxSampleSize {
		return fmt.Errorf("demo.sample_size must be between 1 and %d, got %d", MaxSampleSize, c.Demo.SampleSize)
	}
	if c.Demo.SeriesTerms < 1 {
		return fmt.Errorf("demo.series_terms must be at least 1, got %d", c.Demo.SeriesTerms)
	}
	if c.Demo.Workers < 1 {
		return fmt.Errorf("demo.workers must be at least 1, got %d", c.Demo.Workers)
	}
	if c.Demo.Spins < 0 {
		return fmt.Errorf("demo.spins must not be negative, got %d", c.Demo.Spins)
	}

	if c.Trace.WSEnabled {
		if c.Trace.WSPort < 1 || c.Trace.WSPort > 65535 {
			return fmt.Errorf("trace.ws_port %d is outside the valid port range", c.Trace.WSPort)
		}
	}
	if c.Trace.UDPEnabled {
		if c.Trace.UDPTargetAddress == "" {
			return fmt.Errorf("trace.udp_target_address must be set when UDP is enabled")
		}
		if !strings.Contains(c.Trace.UDPTargetAddress, ":") {
			return fmt.Errorf("trace.udp_target_address %q appears invalid (missing port?)", c.Trace.UDPTargetAddress)
		}
		if c.Trace.UDPSendInterval <= 0 {
			return fmt.Errorf("trace.udp_send_interval must be positive when UDP is enabled")
		}
	}

	return nil
}

// applyEnvOverrides overlays ENV_ variables onto the configuration.
// Only the fields a deployment plausibly retargets are exposed.
func (cfg *Config) applyEnvOverrides() {
	// ENV_DEBUG
	if val, ok := os.LookupEnv("ENV_DEBUG"); ok {
		if bVal, err := strconv.ParseBool(val); err == nil {
			cfg.Debug = bVal
			applog.Debugf("configuration: overriding debug from env: %v", bVal)
		}
	}

	// ENV_TRACE_{...} retarget the trace sinks.

	// ENV_TRACE_UDP_ENABLED
	if val, ok := os.LookupEnv("ENV_TRACE_UDP_ENABLED"); ok {
		if bVal, err := strconv.ParseBool(val); err == nil {
			cfg.Trace.UDPEnabled = bVal
			applog.Debugf("configuration: overriding trace.udp_enabled from env: %v", bVal)
		}
	}
	// ENV_TRACE_UDP_TARGET_ADDRESS
	if val, ok := os.LookupEnv("ENV_TRACE_UDP_TARGET_ADDRESS"); ok {
		cfg.Trace.UDPTargetAddress = val
		applog.Debugf("configuration: overriding trace.udp_target_address from env: %s", val)
	}
	// ENV_TRACE_UDP_SEND_INTERVAL
	if val, ok := os.LookupEnv("ENV_TRACE_UDP_SEND_INTERVAL"); ok {
		if dur, err := time.ParseDuration(val); err == nil {
			cfg.Trace.UDPSendInterval = dur
			applog.Debugf("configuration: overriding trace.udp_send_interval from env: %s", dur)
		}
	}
	// ENV_TRACE_WS_ENABLED
	if val, ok := os.LookupEnv("ENV_TRACE_WS_ENABLED"); ok {
		if bVal, err := strconv.ParseBool(val); err == nil {
			cfg.Trace.WSEnabled = bVal
			applog.Debugf("configuration: overriding trace.ws_enabled from env: %v", bVal)
		}
	}
}
