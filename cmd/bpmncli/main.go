package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gookit/color"
	"github.com/lmittmann/tint"
	"github.com/mitchellh/go-wordwrap"

	"github.com/vk/bpmncore/internal/cliflags"
	"github.com/vk/bpmncore/internal/ctxlog"
	"github.com/vk/bpmncore/internal/facade"
	"github.com/vk/bpmncore/internal/model"
	"github.com/vk/bpmncore/internal/parserxml"
)

const diagnosticWrapWidth = 100

// main is the entrypoint for the bpmncli application.
func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		var exitErr *cliflags.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW io.Writer, args []string) error {
	cfg, shouldExit, err := cliflags.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	ctx := ctxlog.WithLogger(context.Background(), newLogger(cfg.LogLevel))

	def, readErr := readDocument(ctx, cfg)
	if readErr != nil {
		return reportReadError(outW, readErr)
	}

	out, writeErr := facade.WriteXML(def)
	if writeErr != nil {
		return &cliflags.ExitError{Code: 1, Message: writeErr.Error()}
	}

	if cfg.OutPath != "" {
		if err := os.WriteFile(cfg.OutPath, out, 0o644); err != nil {
			return &cliflags.ExitError{Code: 1, Message: err.Error()}
		}
		fmt.Fprintf(outW, "%s wrote %s\n", color.Green.Text("OK"), cfg.OutPath)
		return nil
	}

	fmt.Fprintln(outW, string(out))
	return nil
}

func readDocument(ctx context.Context, cfg *cliflags.Config) (*model.WorkflowDefinition, error) {
	if cfg.XMLPath != "" {
		f, err := os.Open(cfg.XMLPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return facade.ReadXMLContext(ctx, f, parserxml.Options{Strict: true})
	}

	f, err := os.Open(cfg.YAMLPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return facade.ReadYAMLContext(ctx, f)
}

// reportReadError prints a ParseError directly and a ValidationError as a
// colored, word-wrapped diagnostic listing, per spec.md §6's documented
// "[severity] [line:N] (element-qname) message" format.
func reportReadError(outW io.Writer, err error) error {
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		for _, d := range verr.Diagnostics() {
			fmt.Fprintln(outW, wordwrap.WrapString(colorDiagnostic(d), diagnosticWrapWidth))
		}
		return &cliflags.ExitError{Code: 1, Message: "validation failed"}
	}

	var perr *model.ParseError
	if errors.As(err, &perr) {
		return &cliflags.ExitError{Code: 1, Message: perr.Error()}
	}

	return &cliflags.ExitError{Code: 1, Message: err.Error()}
}

func colorDiagnostic(d model.Diagnostic) string {
	if d.Severity == model.SeverityWarning {
		return color.Yellow.Text(d.String())
	}
	return color.Red.Text(d.String())
}

func newLogger(level string) *slog.Logger {
	var slogLevel slog.Level
	switch level {
	case "debug":
		slogLevel = slog.LevelDebug
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slogLevel}))
}
