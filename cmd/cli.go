package cmd

import (
	"os"

	"github.com/nikhiloz/generic/internal/config"
	"github.com/nikhiloz/generic/internal/demo"
	"github.com/nikhiloz/generic/pkg/build"

	"github.com/spf13/cobra"
)

// ParseArgs turns the command line into a Config. The bare command
// selects the interactive menu; "list" and "run" set the one-off
// command fields instead. Flag values overlay whatever the YAML file
// and environment already put into the config.
func ParseArgs() (*config.Config, error) {
	buildInfo := build.GetBuildFlags()

	options, err := config.LoadConfig(configPathFromEnv())
	if err != nil {
		return nil, err
	}

	rootCmd := &cobra.Command{
		Use:           buildInfo.Name,
		Short:         buildInfo.Description,
		Version:       buildInfo.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd:   true,
			DisableDescriptions: true,
			DisableNoDescFlag:   true,
			HiddenDefaultCmd:    true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			options.TUIMode = true
			return nil
		},
	}

	// Display help message
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the available demos",
		Run: func(cmd *cobra.Command, args []string) {
			options.Command = "list"
			options.TUIMode = false
		},
	}
	rootCmd.AddCommand(listCmd)

	// Run command: selected demos, or the whole catalog with no args
	runCmd := &cobra.Command{
		Use:       "run [demo ...]",
		Short:     "Run demos by name, or all of them with no arguments",
		ValidArgs: demo.Names(),
		Args:      cobra.OnlyValidArgs,
		Run: func(cmd *cobra.Command, args []string) {
			options.Command = "run"
			options.TUIMode = false
			options.RunTargets = args
		},
	}
	rootCmd.AddCommand(runCmd)

	// Demo inputs
	rootCmd.PersistentFlags().Int32VarP(&options.Demo.OperandA, "a", "a", options.Demo.OperandA,
		"First operand for the comparison walkthroughs")
	rootCmd.PersistentFlags().Int32VarP(&options.Demo.OperandB, "b", "b", options.Demo.OperandB,
		"Second operand for the comparison walkthroughs")
	rootCmd.PersistentFlags().IntVarP(&options.Demo.SeriesTerms, "terms", "t", options.Demo.SeriesTerms,
		"Number of terms in the alternating series")
	rootCmd.PersistentFlags().Int32VarP(&options.Demo.SeriesStart, "start", "s", options.Demo.SeriesStart,
		"First term of the alternating series")
	rootCmd.PersistentFlags().Int64Var(&options.Demo.Iterations, "iterations", options.Demo.Iterations,
		"Steps per worker in the guarded counter run")
	rootCmd.PersistentFlags().Int64Var(&options.Demo.Seed, "seed", options.Demo.Seed,
		"Seed for the popcount sample words")
	rootCmd.PersistentFlags().IntVar(&options.Demo.SampleSize, "sample", options.Demo.SampleSize,
		"Number of random words in the popcount sample")
	rootCmd.PersistentFlags().IntVar(&options.Demo.Workers, "workers", options.Demo.Workers,
		"Workers in the serialized jobs demo")

	// Trace Configuration
	rootCmd.PersistentFlags().BoolVar(&options.Trace.WSEnabled, "trace-ws", options.Trace.WSEnabled,
		"Broadcast trace events to WebSocket clients on /trace")
	rootCmd.PersistentFlags().BoolVar(&options.Trace.UDPEnabled, "trace-udp", options.Trace.UDPEnabled,
		"Publish counter snapshots over UDP while the guarded counter runs")
	rootCmd.PersistentFlags().StringVar(&options.Trace.UDPTargetAddress, "trace-udp-target", options.Trace.UDPTargetAddress,
		"Target address for UDP counter snapshots")

	// Debug Configuration
	rootCmd.PersistentFlags().BoolVarP(&options.Debug, "verbose", "v", options.Debug,
		"Show verbose output")

	// Execute the CLI
	rootCmd.SetArgs(os.Args[1:])
	if err := rootCmd.Execute(); err != nil {
		return nil, err
	}

	if err := options.Validate(); err != nil {
		return nil, err
	}

	return options, nil
}

// configPathFromEnv lets ENV_CONFIG_FILE point at an explicit config
// file; otherwise LoadConfig searches its default candidates.
func configPathFromEnv() string {
	return os.Getenv("ENV_CONFIG_FILE")
}
