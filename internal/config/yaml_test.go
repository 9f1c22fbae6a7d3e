// SPDX-License-Identifier: MIT
package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	tmp := t.TempDir()
	path := filepath.Join(tmp, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
	if cfg == nil {
		t.Fatal("expected default config, got nil")
	}
	if cfg.Demo.OperandA != DefaultOperandA || cfg.Demo.OperandB != DefaultOperandB {
		t.Errorf("expected default operands %d/%d, got %d/%d",
			DefaultOperandA, DefaultOperandB, cfg.Demo.OperandA, cfg.Demo.OperandB)
	}
	if cfg.Demo.Iterations != DefaultIterations {
		t.Errorf("expected default iterations %d, got %d", int64(DefaultIterations), cfg.Demo.Iterations)
	}
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	t.Parallel()
	cfg, err := LoadConfig("nonexistent.yaml")
	if err == nil {
		t.Errorf("expected error for missing file, got nil")
	}
	if cfg != nil {
		t.Errorf("expected nil config on error, got %+v", cfg)
	}
}

func TestLoadConfig_UnmarshalError(t *testing.T) {
	t.Parallel()
	path := writeTempConfig(t, ":\n:bad")
	_, err := LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "failed to parse config file") {
		t.Error("expected unmarshal error, got nil or wrong error")
	}
}

func TestLoadConfig_ValidFile(t *testing.T) {
	t.Parallel()
	path := writeTempConfig(t, `
debug: true
log_level: debug
demo:
  operand_a: -20
  operand_b: 3
  series_terms: 5
  series_start: 20
  iterations: 1024
  stride: 256
trace:
  udp_enabled: true
  udp_target_address: "127.0.0.1:9191"
  udp_send_interval: 50ms
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
	if !cfg.Debug || cfg.LogLevel != "debug" {
		t.Errorf("top-level fields not applied: %+v", cfg)
	}
	if cfg.Demo.OperandA != -20 || cfg.Demo.OperandB != 3 {
		t.Errorf("operands not applied: %+v", cfg.Demo)
	}
	if cfg.Demo.SeriesTerms != 5 || cfg.Demo.SeriesStart != 20 {
		t.Errorf("series settings not applied: %+v", cfg.Demo)
	}
	if !cfg.Trace.UDPEnabled || cfg.Trace.UDPTargetAddress != "127.0.0.1:9191" {
		t.Errorf("trace settings not applied: %+v", cfg.Trace)
	}
	if cfg.Trace.UDPSendInterval != 50*time.Millisecond {
		t.Errorf("udp_send_interval = %s, expected 50ms", cfg.Trace.UDPSendInterval)
	}
	// Defaults survive for fields the file does not mention.
	if cfg.Demo.SampleSize != DefaultSampleSize {
		t.Errorf("sample_size default lost: %d", cfg.Demo.SampleSize)
	}
}

func TestLoadConfig_ValidationFailure(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"zero iterations", "demo:\n  iterations: 0\n", "demo.iterations"},
		{"negative sample", "demo:\n  sample_size: -1\n", "demo.sample_size"},
		{"zero series terms", "demo:\n  series_terms: 0\n", "demo.series_terms"},
		{"udp without port", "trace:\n  udp_enabled: true\n  udp_target_address: localhost\n", "missing port"},
		{"ws port range", "trace:\n  ws_enabled: true\n  ws_port: 70000\n", "ws_port"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempConfig(t, tt.yaml)
			_, err := LoadConfig(path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadConfig_StrideNormalized(t *testing.T) {
	t.Parallel()
	path := writeTempConfig(t, "demo:\n  stride: 1000\n")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Demo.Stride != 1024 {
		t.Errorf("stride = %d, expected rounding up to 1024", cfg.Demo.Stride)
	}

	path = writeTempConfig(t, "demo:\n  stride: -5\n")
	cfg, err = LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Demo.Stride != DefaultStride {
		t.Errorf("stride = %d, expected default %d for non-positive input", cfg.Demo.Stride, int64(DefaultStride))
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("ENV_DEBUG", "true")
	t.Setenv("ENV_TRACE_UDP_ENABLED", "true")
	t.Setenv("ENV_TRACE_UDP_TARGET_ADDRESS", "10.0.0.5:7000")
	t.Setenv("ENV_TRACE_UDP_SEND_INTERVAL", "2s")

	cfg, err := LoadConfig(writeTempConfig(t, "debug: false\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Debug {
		t.Error("ENV_DEBUG override not applied")
	}
	if !cfg.Trace.UDPEnabled || cfg.Trace.UDPTargetAddress != "10.0.0.5:7000" {
		t.Errorf("UDP env overrides not applied: %+v", cfg.Trace)
	}
	if cfg.Trace.UDPSendInterval != 2*time.Second {
		t.Errorf("udp_send_interval = %s, expected 2s", cfg.Trace.UDPSendInterval)
	}
}
