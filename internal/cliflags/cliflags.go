// Package cliflags parses bpmncli's command-line arguments, adapted from
// the teacher's internal/cli package: a flag.FlagSet with ContinueOnError,
// a custom Usage, and a typed ExitError carrying an exit code.
package cliflags

import (
	"flag"
	"fmt"
	"io"
	"strings"
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

// Config holds the fully validated set of options bpmncli runs with.
type Config struct {
	XMLPath  string
	YAMLPath string
	OutPath  string
	LogLevel string
}

// Parse processes command-line arguments. It returns a populated Config, a
// boolean indicating if the program should exit cleanly (e.g. -h was
// given), or an ExitError.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	flagSet := flag.NewFlagSet("bpmncli", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
bpmncli - reads a BPMN 2.0 XML or YAML workflow document, validates it, and
optionally writes it back out as BPMN 2.0 XML.

Usage:
  bpmncli -xml FILE | -yaml FILE [options]

Options:
`)
		flagSet.PrintDefaults()
	}

	xmlFlag := flagSet.String("xml", "", "Path to a BPMN 2.0 XML document to read.")
	yamlFlag := flagSet.String("yaml", "", "Path to a YAML workflow document to read.")
	outFlag := flagSet.String("out", "", "Path to write the validated document back out as BPMN 2.0 XML. Prints to stdout if omitted.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if *xmlFlag == "" && *yamlFlag == "" {
		flagSet.Usage()
		return nil, true, nil
	}
	if *xmlFlag != "" && *yamlFlag != "" {
		return nil, false, &ExitError{Code: 2, Message: "only one of -xml or -yaml may be given"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	return &Config{
		XMLPath:  *xmlFlag,
		YAMLPath: *yamlFlag,
		OutPath:  *outFlag,
		LogLevel: logLevel,
	}, false, nil
}
