package config

import "time"

// Core configuration constants that define the boundaries and
// defaults for the demo runner.
const (
	// Default values for the demo configuration
	DefaultOperandA    = 25      // First worked-example operand
	DefaultOperandB    = 17      // Second worked-example operand
	DefaultSeriesTerms = 7       // Alternating series length
	DefaultSeriesStart = 55      // Alternating series first term
	DefaultSeed        = 42      // Seed for the random word sample
	DefaultSampleSize  = 4096    // Words in the popcount sample
	DefaultWorkers     = 2       // Serialized job workers
	DefaultSpins       = 1 << 16 // Busy work per job
	DefaultIterations  = 1 << 20 // Tally steps per worker
	DefaultStride      = 1 << 18 // Tally progress interval (power of 2)
	DefaultCommand     = ""      // No one-off command by default
	DefaultVerbosity   = false

	// Processing limits
	MaxSampleSize = 1 << 24 // Keeps the stats buffer bounded
	MaxIterations = 1 << 30 // Keeps a tally run finite

	// Trace defaults
	DefaultWSPort           = 8080
	DefaultUDPTargetAddress = "127.0.0.1:9090"
	DefaultUDPSendInterval  = 100 * time.Millisecond
)

// Config is the main application configuration, loaded from YAML and
// overlaid by environment variables and command line flags.
type Config struct {
	Debug    bool   `yaml:"debug"`             // Enable debug logging
	LogLevel string `yaml:"log_level"`         // Logging level ("debug", "info", "warn", "error")
	Command  string `yaml:"command,omitempty"` // One-off command instead of the menu (e.g. "list", "run")

	Demo  DemoConfig  `yaml:"demo"`  // Worked-example inputs
	Trace TraceConfig `yaml:"trace"` // Live trace outputs

	// CLI-only state, never read from a file.
	TUIMode    bool     `yaml:"-"` // Interactive menu mode
	RunTargets []string `yaml:"-"` // Demo names selected on the command line
}

// DemoConfig holds the inputs the demos work through.
type DemoConfig struct {
	OperandA    int32 `yaml:"operand_a"`    // First operand for the arithmetic walkthroughs
	OperandB    int32 `yaml:"operand_b"`    // Second operand
	SeriesTerms int   `yaml:"series_terms"` // Terms in the alternating series
	SeriesStart int32 `yaml:"series_start"` // First term of the series
	Seed        int64 `yaml:"seed"`         // Seed for the popcount sample words
	SampleSize  int   `yaml:"sample_size"`  // Number of sample words
	Workers     int   `yaml:"workers"`      // Serialized job workers
	Spins       int   `yaml:"spins"`        // Busy work inside each job
	Iterations  int64 `yaml:"iterations"`   // Tally steps per counter worker
	Stride      int64 `yaml:"stride"`       // Tally progress interval, rounded up to a power of 2
}

// TraceConfig holds settings for streaming demo steps while they run.
type TraceConfig struct {
	WSEnabled        bool          `yaml:"ws_enabled"`         // Broadcast steps to WebSocket clients
	WSPort           int           `yaml:"ws_port"`            // WebSocket listen port
	UDPEnabled       bool          `yaml:"udp_enabled"`        // Publish counter snapshots over UDP
	UDPTargetAddress string        `yaml:"udp_target_address"` // Target address and port (e.g. "127.0.0.1:9090")
	UDPSendInterval  time.Duration `yaml:"udp_send_interval"`  // Interval between snapshot packets
}

// New returns a Config populated with defaults, the base every other
// source (file, environment, flags) overlays.
func New() *Config {
	return &Config{
		Debug:    DefaultVerbosity,
		LogLevel: "info",
		Command:  DefaultCommand,
		Demo: DemoConfig{
			OperandA:    DefaultOperandA,
			OperandB:    DefaultOperandB,
			SeriesTerms: DefaultSeriesTerms,
			SeriesStart: DefaultSeriesStart,
			Seed:        DefaultSeed,
			SampleSize:  DefaultSampleSize,
			Workers:     DefaultWorkers,
			Spins:       DefaultSpins,
			Iterations:  DefaultIterations,
			Stride:      DefaultStride,
		},
		Trace: TraceConfig{
			WSEnabled:        false,
			WSPort:           DefaultWSPort,
			UDPEnabled:       false,
			UDPTargetAddress: DefaultUDPTargetAddress,
			UDPSendInterval:  DefaultUDPSendInterval,
		},
	}
}
