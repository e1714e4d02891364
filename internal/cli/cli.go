package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/daysbetween/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated AppConfig,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.AppConfig, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("daysbetween", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
daysbetween - counts the whole days between two dates.

Usage:
  daysbetween [options] [DATE [to|and|-] DATE]

Arguments:
  DATE
    A date in D/M/Y format, e.g. 21/8/2021. With two dates the result is
    printed once; without dates an interactive prompt is started.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to a .hcl, .yaml or .yml configuration file.")
	cFlag := flagSet.String("c", "", "Path to a configuration file (shorthand).")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	minYearFlag := flagSet.Int("min-year", 0, "First supported year (default 1900, or the config file value).")
	maxYearFlag := flagSet.Int("max-year", 0, "Last supported year (default 2999, or the config file value).")
	httpPortFlag := flagSet.Int("http-port", 0, "Serve the JSON API on this port instead of prompting. 0 is disabled.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	configPath := *configFlag
	if configPath == "" {
		configPath = *cFlag
	}

	cfg := &app.AppConfig{
		ConfigPath: configPath,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
		Dates:      flagSet.Args(),
	}

	// Only flags given explicitly override the config file.
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "min-year":
			cfg.MinYear = minYearFlag
		case "max-year":
			cfg.MaxYear = maxYearFlag
		case "http-port":
			cfg.HTTPPort = httpPortFlag
		}
	})

	if cfg.HTTPPort != nil && *cfg.HTTPPort > 0 && len(cfg.Dates) > 0 {
		return nil, false, &ExitError{Code: 2, Message: "dates cannot be combined with -http-port"}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}
