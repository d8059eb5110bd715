// =============================================================================
// main.go - mcsh Entry Point
// =============================================================================
//
// mcsh is an interactive shell for an ELCI server. It connects to the
// server's TCP port using the mcprotocol client and provides a REPL for
// reading and editing the world from the terminal.
//
// Usage:
//
//	mcsh                              Connect to 127.0.0.1:4711
//	mcsh --address host:port          Connect to a specific server
//	mcsh --config mcsh.yaml           Load settings from a file
//	mcsh --metrics :9100              Serve Prometheus metrics
//	mcsh --help                       Show help
//
// =============================================================================

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mcrs/mcrs-go/internal/config"
	"github.com/mcrs/mcrs-go/internal/logging"
	"github.com/mcrs/mcrs-go/mcprotocol"
)

// =============================================================================
// Version Information
// =============================================================================

const (
	// version is the current version of mcsh.
	version = "0.3.0"

	// appName is the application name.
	appName = "mcsh"

	// copyright is the copyright notice.
	copyright = "Copyright (c) 2026"
)

// fullTitle returns the application name with version.
func fullTitle() string {
	return fmt.Sprintf("%s v%s", appName, version)
}

// welcomeBanner returns the banner displayed when the REPL starts.
func welcomeBanner() string {
	return fmt.Sprintf(`%s - Minecraft world shell
%s

Type '.help' for available commands.
Type '.quit' to exit.
`, fullTitle(), copyright)
}

// =============================================================================
// Command-Line Arguments
// =============================================================================

// arguments holds the parsed command-line arguments. Empty strings mean
// "not given"; the config file or its defaults apply instead.
type arguments struct {
	// address is the server's "host:port".
	address string

	// configPath is the YAML config file to load.
	configPath string

	// metricsListen is the address to serve /metrics on.
	metricsListen string

	// verbose enables debug logging.
	verbose bool

	showHelp    bool
	showVersion bool
}

// errUnknownArgument is returned for flags parseArguments does not know.
var errUnknownArgument = errors.New("unknown argument")

// parseArguments parses command-line arguments (without the program name).
//
// This is a simple hand-written parser. There are only a handful of flags
// and no subcommands, so a framework like cobra would be over-engineering.
func parseArguments(argv []string) (arguments, error) {
	var args arguments
	remaining := argv

	// value consumes the argument following flag.
	value := func(flag string) (string, error) {
		if len(remaining) == 0 {
			return "", fmt.Errorf("%s requires a value", flag)
		}
		v := remaining[0]
		remaining = remaining[1:]
		return v, nil
	}

	for len(remaining) > 0 {
		arg := remaining[0]
		remaining = remaining[1:]

		var err error
		switch arg {
		case "--address", "-a":
			args.address, err = value(arg)

		case "--config", "-c":
			args.configPath, err = value(arg)

		case "--metrics":
			args.metricsListen, err = value(arg)

		case "--verbose":
			args.verbose = true

		case "--help", "-h":
			args.showHelp = true

		case "--version", "-v":
			args.showVersion = true

		default:
			err = fmt.Errorf("%w: %s", errUnknownArgument, arg)
		}
		if err != nil {
			return arguments{}, err
		}
	}

	return args, nil
}

// apply overrides cfg with any flags that were given.
func (a arguments) apply(cfg *config.Config) {
	if a.address != "" {
		cfg.Server.Address = a.address
	}
	if a.metricsListen != "" {
		cfg.Metrics.Listen = a.metricsListen
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}
}

// =============================================================================
// Help and Usage
// =============================================================================

// printUsage prints usage information to stdout.
func printUsage() {
	fmt.Print(`USAGE: mcsh [options]

OPTIONS:
  --address, -a <host:port>  Server to connect to (default: 127.0.0.1:4711)
  --config, -c <path>        YAML config file (default: $MCSH_CONFIG)
  --metrics <addr>           Serve Prometheus metrics on addr (e.g. :9100)
  --verbose                  Log every command sent to the server
  --help, -h                 Show this help
  --version, -v              Show version

ENVIRONMENT:
  MCSH_CONFIG    Config file used when --config is not given
  MCSH_ADDRESS   Overrides server.address from the config file

EXAMPLES:
  mcsh                                Connect to a local server
  mcsh --address 192.168.1.20:4711    Connect to a remote server
  mcsh --metrics :9100 --verbose      Debug logging and metrics
`)
}

// printVersion prints version information to stdout.
func printVersion() {
	fmt.Println(fullTitle())
}

// printError prints an error message to stderr.
func printError(message string) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
}

// =============================================================================
// Metrics
// =============================================================================

// newRegistry returns a registry holding the client collectors along with
// the Go runtime and process collectors.
func newRegistry() (*prometheus.Registry, *mcprotocol.Metrics) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg, mcprotocol.NewMetrics(reg)
}

// startMetricsServer serves reg on listen in the background. Serve errors
// are logged; the shell keeps running without metrics.
func startMetricsServer(listen string, reg *prometheus.Registry, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Addr: listen, Handler: mux}

	go func() {
		logger.Info("serving metrics", "address", listen)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "error", err)
		}
	}()
	return srv
}

// =============================================================================
// Signal Handling
// =============================================================================

// setupSignalHandler installs handlers for SIGINT and SIGTERM so the shell
// can clean up (save history, disconnect) on exit.
func setupSignalHandler(cleanup func()) {
	// signal.Notify requires a buffered channel so delivery never blocks.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Println()
		cleanup()
		os.Exit(0)
	}()
}

// =============================================================================
// Main
// =============================================================================

func main() {
	args, err := parseArguments(os.Args[1:])
	if err != nil {
		printError(err.Error())
		if errors.Is(err, errUnknownArgument) {
			printUsage()
		}
		os.Exit(1)
	}

	if args.showHelp {
		printUsage()
		return
	}
	if args.showVersion {
		printVersion()
		return
	}

	cfg, err := config.Load(args.configPath)
	if err != nil {
		printError(err.Error())
		os.Exit(1)
	}
	args.apply(cfg)

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	if err != nil {
		printError(err.Error())
		os.Exit(1)
	}
	slog.SetDefault(logger)

	reg, metrics := newRegistry()
	var metricsServer *http.Server
	if cfg.Metrics.Listen != "" {
		metricsServer = startMetricsServer(cfg.Metrics.Listen, reg, logger)
	}

	client := mcprotocol.NewClient(
		mcprotocol.WithLogger(logger),
		mcprotocol.WithMetrics(metrics),
		mcprotocol.WithDialTimeout(cfg.Server.DialTimeout),
	)

	fmt.Printf("Connecting to %s...\n", cfg.Server.Address)
	if err := client.Connect(cfg.Server.Address); err != nil {
		printError(fmt.Sprintf("Failed to connect to ELCI server: %v", err))
		os.Exit(1)
	}

	editor := NewLineEditor(cfg.REPL)

	cleanup := func() {
		editor.Close()
		client.Disconnect()
		if metricsServer != nil {
			metricsServer.Close()
		}
	}
	setupSignalHandler(cleanup)

	fmt.Print(welcomeBanner())
	fmt.Println()

	// Blocks until the user types .quit or Ctrl-D.
	runREPL(client, editor, os.Stdout, os.Stderr)

	cleanup()
}
