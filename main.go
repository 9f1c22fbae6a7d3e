package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/nikhiloz/generic/cmd"
	"github.com/nikhiloz/generic/internal/config"
	"github.com/nikhiloz/generic/internal/demo"
	applog "github.com/nikhiloz/generic/internal/log"
	"github.com/nikhiloz/generic/internal/transport"
	"github.com/nikhiloz/generic/internal/tui"
	"github.com/nikhiloz/generic/pkg/build"
)

// main is the entry point for the demo runner. The program flow is
// divided into three distinct phases:
//
// 1. Startup Phase:
//   - Initialize build information
//   - Parse command line arguments and load configuration
//   - Apply the configured log level
//   - Execute one-off commands if requested
//
// 2. Run Phase:
//   - Wire the trace transports when enabled
//   - Run the selected demos, or the interactive menu
//   - Handle termination signals during long counter runs
//
// 3. Shutdown Phase:
//   - Close the trace transports
//   - Report completion
func main() {
	// ==================== STARTUP PHASE ====================

	build.Initialize()

	cfg, err := cmd.ParseArgs()
	if err != nil {
		applog.Fatalf("%v", err)
	}

	applyLogLevel(cfg)
	applog.Debugf("%s", build.Summary())

	// One-off commands that need no trace plumbing
	if cfg.Command == "list" {
		printCatalog()
		return
	}

	if cfg.Command == "" && !cfg.TUIMode {
		return
	}

	// ==================== RUN PHASE ====================

	tr := openTransport(cfg)

	// Termination signals interrupt a long counter run instead of
	// killing the process mid-write.
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	var runErr error
	switch {
	case cfg.Command == "run":
		finished := make(chan error, 1)
		go func() {
			ctx := demo.NewContext(os.Stdout, cfg, tr)
			finished <- demo.Run(ctx, cfg.RunTargets)
		}()

		select {
		case runErr = <-finished:
		case sig := <-done:
			applog.Warnf("Received %s, shutting down.", sig)
		}

	case cfg.TUIMode:
		runErr = tui.StartMenuUI(cfg, tr)
	}

	// ==================== SHUTDOWN PHASE ====================

	if tr != nil {
		if err := tr.Close(); err != nil {
			applog.Errorf("Error closing trace transport: %v", err)
		}
	}

	if runErr != nil {
		applog.Fatalf("%v", runErr)
	}
	applog.Debugf("Shutdown complete.")
}

// applyLogLevel maps the configuration onto the logger. --verbose
// wins over the configured level.
func applyLogLevel(cfg *config.Config) {
	if cfg.Debug {
		applog.SetLevel(applog.LevelDebug)
		return
	}
	if level, ok := applog.ParseLevel(cfg.LogLevel); ok {
		applog.SetLevel(level)
	}
}

// openTransport wires the trace sink the configuration asks for: the
// WebSocket broadcaster when enabled, otherwise a debug-level logging
// transport. A broken WebSocket setup degrades to logging rather
// than refusing to run demos.
func openTransport(cfg *config.Config) transport.Transport {
	if cfg.Trace.WSEnabled {
		addr := fmt.Sprintf(":%d", cfg.Trace.WSPort)
		wst, err := transport.NewWebSocketTransport(addr)
		if err != nil {
			applog.Errorf("WebSocket transport unavailable, falling back to logging: %v", err)
			return transport.NewLoggingTransport()
		}
		applog.Infof("Broadcasting trace events on ws://%s/trace", wst.Addr())
		return wst
	}
	return transport.NewLoggingTransport()
}

// printCatalog writes the demo catalog as a two-column table.
func printCatalog() {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDESCRIPTION")
	for _, d := range demo.All() {
		fmt.Fprintf(w, "%s\t%s\n", d.Name, d.Summary)
	}
	w.Flush()
}
