// toon - convert JSON documents to TOON
//
// Usage:
//
//	toon [source] [--indent N] [--delimiter comma|tab|pipe] [--length-marker] [--output path]
//
// The source is a JSON file path, an http(s) URL, or literal JSON text. Without a
// source the document is read from stdin.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/paularlott/cli"

	"github.com/paularlott/toon/pool"
	"github.com/paularlott/toon/source"
	"github.com/paularlott/toon/toon"
)

const version = "0.1.0"

// config is the parsed command line.
type config struct {
	source       string
	indent       int
	delimiter    string
	lengthMarker bool
	output       string
	token        string
	logLevel     string
	logFormat    string
}

var (
	errorColor   = color.New(color.FgRed)
	successColor = color.New(color.FgGreen)
)

func main() {
	cmd := newCommand(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Execute(context.Background()); err != nil {
		errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newCommand(stdin io.Reader, stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:        "toon",
		Version:     version,
		Usage:       "Convert JSON to TOON",
		Description: "Reads a JSON document from a file, URL, literal argument or stdin and writes its TOON encoding.",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:         "indent",
				Aliases:      []string{"i"},
				Usage:        "Number of spaces per indentation level",
				DefaultValue: toon.DefaultIndent,
				EnvVars:      []string{"TOON_INDENT"},
			},
			&cli.StringFlag{
				Name:         "delimiter",
				Aliases:      []string{"d"},
				Usage:        "Delimiter for arrays: comma, tab, or pipe",
				DefaultValue: "comma",
				EnvVars:      []string{"TOON_DELIMITER"},
			},
			&cli.BoolFlag{
				Name:    "length-marker",
				Aliases: []string{"l"},
				Usage:   "Add '#' prefix to array lengths",
				EnvVars: []string{"TOON_LENGTH_MARKER"},
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file path (default: stdout)",
			},
			&cli.StringFlag{
				Name:    "token",
				Usage:   "Bearer token sent when the source is a URL",
				EnvVars: []string{"TOON_TOKEN"},
			},
			&cli.StringFlag{
				Name:         "log-level",
				Usage:        "Log level: debug, info, warn, error",
				DefaultValue: "warn",
				EnvVars:      []string{"TOON_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:         "log-format",
				Usage:        "Log format: text or json",
				DefaultValue: "text",
			},
		},
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:     "source",
				Usage:    "JSON file path, URL, or JSON string; read from stdin if not provided",
				Required: false,
			},
		},
		Run: func(ctx context.Context, cmd *cli.Command) error {
			cfg := config{
				source:       cmd.GetStringArg("source"),
				indent:       cmd.GetInt("indent"),
				delimiter:    cmd.GetString("delimiter"),
				lengthMarker: cmd.GetBool("length-marker"),
				output:       cmd.GetString("output"),
				token:        cmd.GetString("token"),
				logLevel:     cmd.GetString("log-level"),
				logFormat:    cmd.GetString("log-format"),
			}

			logger, err := newLogger(cfg.logLevel, cfg.logFormat, stderr)
			if err != nil {
				return err
			}
			return run(ctx, cfg, stdin, stdout, logger)
		},
	}
}

// newLogger builds the diagnostic logger. Every record carries the run id so
// that the lines of one invocation can be grouped.
func newLogger(level, format string, w io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: use debug, info, warn, or error", level)
	}

	handlerOpts := &slog.HandlerOptions{Level: lvl}
	var handler slog.Handler
	switch strings.ToLower(format) {
	case "text", "":
		handler = slog.NewTextHandler(w, handlerOpts)
	case "json":
		handler = slog.NewJSONHandler(w, handlerOpts)
	default:
		return nil, fmt.Errorf("invalid log format %q: use text or json", format)
	}

	runID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate run id: %w", err)
	}
	return slog.New(handler).With("run", runID.String()), nil
}

// run converts one document. Options are checked before any input is read.
func run(ctx context.Context, cfg config, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	delimiter, err := toon.ParseDelimiter(cfg.delimiter)
	if err != nil {
		return fmt.Errorf("invalid delimiter '%s'. Use: comma, tab, or pipe", cfg.delimiter)
	}

	opts := &toon.EncodeOptions{
		Indent:       cfg.indent,
		Delimiter:    delimiter,
		LengthMarker: cfg.lengthMarker,
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	poolConfig := pool.DefaultPoolConfig()
	poolConfig.Token = cfg.token

	doc, err := source.Resolve(ctx, cfg.source, &source.Options{
		Stdin: stdin,
		Pool:  pool.New(poolConfig),
	})
	if err != nil {
		return err
	}
	logger.Debug("source resolved", "kind", doc.Kind, "name", doc.Name, "bytes", len(doc.Data))

	result, err := toon.EncodeJSON(doc.Data, opts)
	if err != nil {
		var inputErr *toon.InputError
		if errors.As(err, &inputErr) {
			return fmt.Errorf("invalid JSON - %w", err)
		}
		return err
	}
	logger.Debug("document encoded", "input_bytes", len(doc.Data), "output_bytes", len(result))

	if cfg.output == "" {
		return source.WriteStream(stdout, result)
	}

	if err := source.WriteFile(cfg.output, result); err != nil {
		return err
	}
	logger.Info("output written", "path", cfg.output)
	successColor.Fprintf(stdout, "TOON output written to %s\n", cfg.output)
	return nil
}
