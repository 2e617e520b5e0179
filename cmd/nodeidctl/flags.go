package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
)

// CLIConfig holds command-line configuration
type CLIConfig struct {
	ConfigPath  string
	LogLevel    string
	LogFormat   string
	NoEnv       bool
	Metrics     bool
	ShowVersion bool
	ShowHelp    bool

	Command string
	Args    []string

	usage func()
}

func parseFlags(args []string, stderr io.Writer) (*CLIConfig, error) {
	cfg := &CLIConfig{}
	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.SetOutput(stderr)

	// Define flags with environment variable fallback
	fs.StringVar(&cfg.ConfigPath, "config",
		getEnv("NODEIDCTL_CONFIG", ""),
		"Path to YAML settings file (env: NODEIDCTL_CONFIG)")

	fs.StringVar(&cfg.ConfigPath, "c",
		getEnv("NODEIDCTL_CONFIG", ""),
		"Path to YAML settings file (env: NODEIDCTL_CONFIG)")

	fs.StringVar(&cfg.LogLevel, "log-level",
		getEnv("NODEIDCTL_LOG_LEVEL", ""),
		"Log level: debug, info, warn, error; defaults to the settings file, then warn (env: NODEIDCTL_LOG_LEVEL)")

	fs.StringVar(&cfg.LogFormat, "log-format",
		getEnv("NODEIDCTL_LOG_FORMAT", ""),
		"Log format: json, text; defaults to the settings file, then text (env: NODEIDCTL_LOG_FORMAT)")

	fs.BoolVar(&cfg.NoEnv, "no-env",
		getEnvBool("NODEIDCTL_NO_ENV", false),
		"Disable environment expansion in the settings file (env: NODEIDCTL_NO_ENV)")

	fs.BoolVar(&cfg.Metrics, "metrics",
		getEnvBool("NODEIDCTL_METRICS", false),
		"Print codec and cache metrics to stderr on exit (env: NODEIDCTL_METRICS)")

	fs.BoolVar(&cfg.ShowVersion, "version", false, "Show version information")
	fs.BoolVar(&cfg.ShowVersion, "v", false, "Show version information")
	fs.BoolVar(&cfg.ShowHelp, "help", false, "Show help information")
	fs.BoolVar(&cfg.ShowHelp, "h", false, "Show help information")

	fs.Usage = func() {
		printDetailedHelp(stderr, fs)
	}
	cfg.usage = fs.Usage

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if rest := fs.Args(); len(rest) > 0 {
		cfg.Command = rest[0]
		cfg.Args = rest[1:]
	}
	return cfg, nil
}

func validateFlags(cfg *CLIConfig) error {
	// Skip validation for special flags
	if cfg.ShowVersion || cfg.ShowHelp {
		return nil
	}

	if cfg.Command == "" {
		return fmt.Errorf("missing command")
	}
	if _, ok := commands[cfg.Command]; !ok {
		return fmt.Errorf("unknown command: %s", cfg.Command)
	}

	if cfg.LogLevel != "" && !slices.Contains([]string{"debug", "info", "warn", "error"}, cfg.LogLevel) {
		return fmt.Errorf("invalid log level: %s", cfg.LogLevel)
	}

	if cfg.LogFormat != "" && !slices.Contains([]string{"json", "text"}, cfg.LogFormat) {
		return fmt.Errorf("invalid log format: %s", cfg.LogFormat)
	}

	return nil
}

func printDetailedHelp(w io.Writer, fs *flag.FlagSet) {
	_, _ = fmt.Fprintf(w, `%s - OPC UA node id toolkit

Usage: %s [options] <command> [arguments]

Commands:
  parse <id|alias>...        Print the canonical form and wire layout
  encode <id|alias>...       Print the binary encoding as hex
  decode <hex>... | -        Decode binary node ids (from stdin with -)
  next [-start N] [-count N] <namespace>
                             Allocate numeric node ids
  lookup <id|name>...        Resolve well-known ids and names
  config [validate|describe|aliases|schema]
                             Inspect the settings file

Options:
`, appName, appName)
	fs.SetOutput(w)
	fs.PrintDefaults()
	_, _ = fmt.Fprintf(w, `
Examples:
  %s parse "ns=2;s=Boiler.Temperature"
  %s encode i=2253
  echo 0102cd07 | %s decode -
  %s -config settings.yaml lookup i=2253 Server_ServerStatus

Version: %s
`, appName, appName, appName, appName, Version)
}

// Environment variable helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
