package main

import (
	"fmt"
	"io"
	"os"

	"github.com/osuushi/earclip"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Triangulate a polygon read from a file or stdin, and print the diagonals.
//
// The default input is the classic interactive format: a vertex count, then
// that many "x y" pairs, all whitespace separated. The polygon should be
// simple and wind counterclockwise. Neither is validated.

const version = "0.1.0"

// Exit statuses
const (
	exitOK = iota
	// No ear could be found. Diagonals found before that are still printed.
	exitNoEar
	// Bad flags, unreadable input, or fewer than three vertices
	exitInput
	// Any other triangulation error, or the result couldn't be written
	exitFailure
)

type config struct {
	file         string
	inputFormat  string
	outputFormat string
	logLevel     string
	logFormat    string
}

func newApp(cfg *config) *kingpin.Application {
	app := kingpin.New("earclip", "Triangulate a simple polygon by ear clipping, and print the diagonals.")
	app.Version(version)

	app.Flag("input-format", "Input format. auto picks one from the file extension.").
		Short('i').
		Default("auto").
		Envar("EARCLIP_INPUT_FORMAT").
		EnumVar(&cfg.inputFormat, "auto", "text", "yaml", "svg", "geojson")
	app.Flag("output-format", "Output format.").
		Short('o').
		Default("text").
		Envar("EARCLIP_OUTPUT_FORMAT").
		EnumVar(&cfg.outputFormat, "text", "json", "yaml", "pretty")
	app.Flag("log-level", "Log level. debug logs every clipped ear, trace dumps the ring too.").
		Default("warn").
		Envar("EARCLIP_LOG_LEVEL").
		EnumVar(&cfg.logLevel, "panic", "fatal", "error", "warn", "info", "debug", "trace")
	app.Flag("log-format", "Log format.").
		Default("text").
		Envar("EARCLIP_LOG_FORMAT").
		EnumVar(&cfg.logFormat, "text", "json")

	app.Arg("file", "Polygon file, or - for stdin.").
		Default("-").
		StringVar(&cfg.file)

	return app
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cfg config
	if _, err := newApp(&cfg).Parse(args); err != nil {
		fmt.Fprintf(stderr, "earclip: %v\n", err)
		return exitInput
	}

	logger, err := newLogger(cfg.logLevel, cfg.logFormat, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "earclip: %v\n", err)
		return exitInput
	}

	polygon, err := readInput(cfg.file, cfg.inputFormat, stdin)
	if errors.Is(err, earclip.ErrInvalidInputSize) {
		fmt.Fprintln(stderr, "n must be >= 3")
		return exitInput
	}
	if err != nil {
		logger.WithError(err).Error("Could not read polygon")
		return exitInput
	}

	diagonals, triangulateErr := earclip.Triangulate(polygon.Points, earclip.WithLogger(logger))

	// Whatever was found gets printed, even if triangulation failed partway
	if err := writeReport(stdout, cfg.outputFormat, newReport(polygon, diagonals, triangulateErr)); err != nil {
		logger.WithError(err).Error("Could not write result")
		return exitFailure
	}

	return reportTriangulateError(logger, triangulateErr)
}

func reportTriangulateError(logger logrus.FieldLogger, err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, earclip.ErrInvariantViolated):
		logger.WithError(err).Error("Error in Triangulate: No ear found.")
		return exitNoEar
	default:
		logger.WithError(err).Error("Error in Triangulate")
		return exitFailure
	}
}

func newLogger(level, format string, out io.Writer) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(out)

	parsedLevel, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrap(err, "log level")
	}
	logger.SetLevel(parsedLevel)

	switch format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	return logger, nil
}
