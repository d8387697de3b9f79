package main

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"github.com/kr/pretty"
	"github.com/osuushi/earclip"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type report struct {
	Vertices  int                `json:"vertices" yaml:"vertices"`
	Diagonals []earclip.Diagonal `json:"diagonals" yaml:"diagonals"`
	Error     string             `json:"error,omitempty" yaml:"error,omitempty"`
}

func newReport(polygon earclip.Polygon, diagonals []earclip.Diagonal, err error) report {
	r := report{
		Vertices:  len(polygon.Points),
		Diagonals: diagonals,
	}
	// Always a list in the structured formats, never null
	if r.Diagonals == nil {
		r.Diagonals = []earclip.Diagonal{}
	}
	if err != nil {
		r.Error = err.Error()
	}
	return r
}

type reportWriter func(out io.Writer, r report) error

var writers = map[string]reportWriter{
	"text":   writeText,
	"json":   writeJSON,
	"yaml":   writeYAML,
	"pretty": writePretty,
}

func writeReport(out io.Writer, format string, r report) error {
	write, ok := writers[format]
	if !ok {
		return errors.Errorf("unknown output format %q", format)
	}
	return write(out, r)
}

// One "( i,j )" line per diagonal. A triangle gets a note instead, but a
// failed run with no diagonals prints nothing, since the error says it all.
func writeText(out io.Writer, r report) error {
	for _, d := range r.Diagonals {
		if _, err := fmt.Fprintf(out, "( %d,%d )\n", d.From, d.To); err != nil {
			return err
		}
	}
	if len(r.Diagonals) == 0 && r.Error == "" {
		_, err := fmt.Fprintln(out, "No diagonal could be added")
		return err
	}
	return nil
}

func writeJSON(out io.Writer, r report) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(r), "encoding json")
}

func writeYAML(out io.Writer, r report) error {
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(r); err != nil {
		return errors.Wrap(err, "encoding yaml")
	}
	return encoder.Close()
}

func writePretty(out io.Writer, r report) error {
	_, err := fmt.Fprintf(out, "%# v\n", pretty.Formatter(r))
	return err
}
