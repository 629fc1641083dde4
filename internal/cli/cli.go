package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/neuratlas/internal/app"
	"github.com/vk/neuratlas/internal/config"
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

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("neuratlas", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
Neuratlas - a declarative anatomical hierarchy with toy signal propagation.

Usage:
  neuratlas [options] [ATLAS_PATH]

Arguments:
  ATLAS_PATH
    Path to a single .hcl atlas file or a directory containing .hcl files.
    When omitted, the built-in human nervous system atlas is used.

Options:
`)
		flagSet.PrintDefaults()
	}

	atlasFlag := flagSet.String("atlas", "", "Path to the atlas file or directory.")
	aFlag := flagSet.String("a", "", "Path to the atlas file or directory (shorthand).")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	skipTreeFlag := flagSet.Bool("no-tree", false, "Skip printing the component hierarchy.")
	targetFlag := flagSet.String("target", "", "Component name to stimulate.")
	kindFlag := flagSet.String("kind", "", "Signal kind for the stimulus.")
	strengthFlag := flagSet.Float64("strength", 1.0, "Signal strength for the stimulus.")
	payloadFlag := flagSet.String("payload", "", "Opaque signal payload for the stimulus.")
	propagateFlag := flagSet.Bool("propagate", false, "Broadcast stimulus outputs along lateral connections.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *atlasFlag != "" {
		path = *atlasFlag
	} else if *aFlag != "" {
		path = *aFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Atlas path determined.", "path", path)

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

	var stimulus *config.StimulusDef
	if *targetFlag != "" || *kindFlag != "" {
		if *targetFlag == "" {
			return nil, false, &ExitError{Code: 2, Message: "-kind requires -target"}
		}
		if *kindFlag == "" {
			return nil, false, &ExitError{Code: 2, Message: "-target requires -kind"}
		}
		if *strengthFlag < 0 {
			return nil, false, &ExitError{Code: 2, Message: "invalid strength: must be non-negative"}
		}
		var payload any
		if *payloadFlag != "" {
			payload = *payloadFlag
		}
		stimulus = &config.StimulusDef{
			Name:      "cli",
			Target:    *targetFlag,
			Kind:      *kindFlag,
			Strength:  *strengthFlag,
			Payload:   payload,
			Propagate: *propagateFlag,
		}
	}
	slog.Debug("CLI parameter validation complete.")

	cfg, err := app.NewConfig(app.Config{
		AtlasPath: path,
		LogFormat: logFormat,
		LogLevel:  logLevel,
		SkipTree:  *skipTreeFlag,
		Stimulus:  stimulus,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.")
	return cfg, false, nil
}
