package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ericlevine/printsymbol"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// result is the printed outcome of one request.
type result struct {
	Type   printsymbol.Symbology `json:"type" yaml:"type"`
	Data   string                `json:"data" yaml:"data"`
	Form   *printsymbol.Form     `json:"form,omitempty" yaml:"form,omitempty"`
	Matrix *matrixOutput         `json:"matrix,omitempty" yaml:"matrix,omitempty"`
	Error  string                `json:"error,omitempty" yaml:"error,omitempty"`
}

// matrixOutput is a Matrix with its modules rendered as rows of '#' (dark)
// and '.' (light).
type matrixOutput struct {
	Version  int                    `json:"version" yaml:"version"`
	Level    printsymbol.ErrorLevel `json:"level" yaml:"level"`
	Mask     int                    `json:"mask" yaml:"mask"`
	CellSize int                    `json:"cell" yaml:"cell"`
	Size     int                    `json:"size" yaml:"size"`
	Rows     []string               `json:"rows" yaml:"rows"`

	modules *printsymbol.Matrix
}

func newMatrixOutput(m *printsymbol.Matrix) *matrixOutput {
	rows := strings.Split(strings.TrimSuffix(m.Modules.StringWithChars("#", "."), "\n"), "\n")
	return &matrixOutput{
		Version:  m.Version,
		Level:    m.Level,
		Mask:     m.Mask,
		CellSize: m.CellSize,
		Size:     m.Size(),
		Rows:     rows,
		modules:  m,
	}
}

// emit writes results in the configured format. Structured formats print a
// list when list is set and the single result otherwise.
func (a *app) emit(results []result, list bool) error {
	var v any = results
	if !list && len(results) == 1 {
		v = results[0]
	}
	switch a.cfg.Format {
	case formatJSON:
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(a.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	for i, res := range results {
		if i > 0 {
			fmt.Fprintln(a.out)
		}
		if err := writeText(a.out, res); err != nil {
			return err
		}
	}
	return nil
}

func writeText(w io.Writer, res result) error {
	var err error
	switch {
	case res.Form != nil:
		f := res.Form
		runs := make([]string, len(f.Runs))
		for i, r := range f.Runs {
			runs[i] = strconv.Itoa(r)
		}
		_, err = fmt.Fprintf(w, "%s %q\nwidth %d height %d hri %t\nruns %s\n",
			res.Type, f.Text, f.Width, f.Height, f.HRI, strings.Join(runs, " "))
	case res.Matrix != nil:
		m := res.Matrix
		_, err = fmt.Fprintf(w, "%s version %d level %s mask %d size %d cell %d\n%s",
			res.Type, m.Version, m.Level, m.Mask, m.Size, m.CellSize,
			m.modules.Modules.StringWithChars("##", "  "))
	default:
		_, err = fmt.Fprintf(w, "%s %q: %s\n", res.Type, res.Data, res.Error)
	}
	return err
}
