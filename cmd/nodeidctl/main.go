// Package main implements nodeidctl, a command-line tool for parsing,
// encoding, decoding, allocating and resolving OPC UA node ids.
package main

import (
	"context"
	stderrors "errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/c360/semstreams-opcua/codec"
	"github.com/c360/semstreams-opcua/config"
	"github.com/c360/semstreams-opcua/errors"
	"github.com/c360/semstreams-opcua/metric"
	"github.com/c360/semstreams-opcua/nodeid"
	"github.com/c360/semstreams-opcua/pkg/cache"
)

// Build information constants
const (
	Version = "0.1.0"
	appName = "nodeidctl"
)

// Exit codes
const (
	exitOK        = 0
	exitInvalid   = 1
	exitUsage     = 2
	exitTransient = 3
	exitFatal     = 4
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// app carries what every command needs.
type app struct {
	logger   *slog.Logger
	settings *config.Settings
	codecCtx *codec.Context
	metrics  *metric.MetricsRegistry
	aliases  cache.Cache[string]
	in       io.Reader
	out      io.Writer
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cliCfg, err := parseFlags(args, stderr)
	if err != nil {
		if stderrors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if err := validateFlags(cliCfg); err != nil {
		_, _ = fmt.Fprintf(stderr, "invalid flags: %v\n", err)
		return exitUsage
	}

	if cliCfg.ShowVersion {
		_, _ = fmt.Fprintf(stdout, "%s version %s\n", appName, Version)
		return exitOK
	}
	if cliCfg.ShowHelp {
		cliCfg.usage()
		return exitOK
	}

	a, err := newApp(ctx, cliCfg, stdin, stdout, stderr)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "%s: %v\n", appName, err)
		return exitCode(err)
	}
	defer a.aliases.Close()

	if cliCfg.Metrics {
		defer func() {
			if err := dumpMetrics(stderr, a.metrics); err != nil {
				a.logger.Error("Failed to write metrics", "error", err)
			}
		}()
	}

	if err := commands[cliCfg.Command](a, cliCfg.Args); err != nil {
		class := errors.Classify(err)
		level := slog.LevelDebug
		if class == errors.ErrorFatal {
			level = slog.LevelError
		}
		a.logger.Log(ctx, level, "Command failed", "command", cliCfg.Command, "class", class.String(), "error", err)
		_, _ = fmt.Fprintf(stderr, "%s %s: %v\n", appName, cliCfg.Command, err)
		return exitCode(err)
	}
	return exitOK
}

// exitCode maps an error onto the exit code of its class.
func exitCode(err error) int {
	switch errors.Classify(err) {
	case errors.ErrorInvalid:
		return exitInvalid
	case errors.ErrorFatal:
		return exitFatal
	default:
		return exitTransient
	}
}

// newApp loads settings, sets up logging and builds the alias cache.
func newApp(ctx context.Context, cliCfg *CLIConfig, stdin io.Reader, stdout, stderr io.Writer) (*app, error) {
	// Bootstrap logger for settings loading
	logger := setupLogger(stderr, cliCfg.LogLevel, cliCfg.LogFormat)

	settings := config.DefaultSettings()
	if cliCfg.ConfigPath != "" {
		loader := config.NewLoader(logger)
		loader.EnableEnvExpansion(!cliCfg.NoEnv)
		loaded, err := loader.LoadFile(cliCfg.ConfigPath)
		if err != nil {
			return nil, err
		}
		settings = loaded
		logger = setupLogger(stderr,
			firstNonEmpty(cliCfg.LogLevel, settings.Logging.Level),
			firstNonEmpty(cliCfg.LogFormat, settings.Logging.Format))
	}
	slog.SetDefault(logger)

	registry := metric.NewMetricsRegistry()
	aliases, err := cache.NewFromConfig[string](ctx, settings.Cache,
		cache.WithMetrics[string](registry, "aliases"))
	if err != nil {
		return nil, err
	}
	for _, name := range settings.Aliases() {
		if _, err := aliases.Set(settings.Nodes[name], name); err != nil {
			_ = aliases.Close()
			return nil, err
		}
	}

	logger.Debug("Initialized",
		"config_path", cliCfg.ConfigPath,
		"aliases", len(settings.Nodes),
		"cache_strategy", settings.Cache.Strategy)

	return &app{
		logger:   logger,
		settings: settings,
		codecCtx: settings.Context(),
		metrics:  registry,
		aliases:  aliases,
		in:       stdin,
		out:      stdout,
	}, nil
}

// resolve turns an alias or textual node id into a node id.
func (a *app) resolve(ref string) (nodeid.NodeID, error) {
	id, err := a.settings.Resolve(ref)
	a.metrics.Metrics.RecordParse(err)
	return id, err
}

// aliasOf returns the configured alias for id, if any.
func (a *app) aliasOf(k nodeid.Key) string {
	name, _ := a.aliases.Get(k)
	return name
}
