// Package printsymbol converts receipt symbol requests into the geometry a
// printer command layer needs: bar/space run lengths for linear barcodes and
// a module matrix for QR Code.
package printsymbol

import (
	"fmt"
	"strings"

	"github.com/ericlevine/printsymbol/bitutil"
)

// Symbology identifies a symbol type.
// The zero value is Code128, the default of receipt markup.
type Symbology int

const (
	Code128 Symbology = iota
	UPC
	EAN
	JAN
	Code39
	ITF
	Codabar
	Code93
	QRCode
)

var symbologyNames = [...]string{
	Code128: "code128",
	UPC:     "upc",
	EAN:     "ean",
	JAN:     "jan",
	Code39:  "code39",
	ITF:     "itf",
	Codabar: "codabar",
	Code93:  "code93",
	QRCode:  "qrcode",
}

// String returns the markup name of the symbology.
func (s Symbology) String() string {
	if s < 0 || int(s) >= len(symbologyNames) {
		return "unknown"
	}
	return symbologyNames[s]
}

// IsLinear reports whether s is a one-dimensional barcode.
func (s Symbology) IsLinear() bool {
	return s >= Code128 && s < QRCode
}

// ParseSymbology returns the symbology for a markup name. Matching is case
// insensitive and "nw7" is accepted as Codabar.
func ParseSymbology(name string) (Symbology, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "nw7" {
		return Codabar, true
	}
	for i, n := range symbologyNames {
		if n == name {
			return Symbology(i), true
		}
	}
	return 0, false
}

// MarshalText implements encoding.TextMarshaler.
func (s Symbology) MarshalText() ([]byte, error) {
	if s < 0 || int(s) >= len(symbologyNames) {
		return nil, fmt.Errorf("%w: symbology %d", ErrUnsupported, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Symbology) UnmarshalText(text []byte) error {
	v, ok := ParseSymbology(string(text))
	if !ok {
		return fmt.Errorf("%w: symbology %q", ErrUnsupported, text)
	}
	*s = v
	return nil
}

// ErrorLevel is a QR Code error correction level.
type ErrorLevel int

const (
	LevelL ErrorLevel = iota
	LevelM
	LevelQ
	LevelH
)

// String returns the level letter.
func (l ErrorLevel) String() string {
	switch l {
	case LevelL:
		return "L"
	case LevelM:
		return "M"
	case LevelQ:
		return "Q"
	case LevelH:
		return "H"
	default:
		return "UNKNOWN"
	}
}

// ParseErrorLevel parses "l", "m", "q" or "h" in either case.
func ParseErrorLevel(name string) (ErrorLevel, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "l":
		return LevelL, true
	case "m":
		return LevelM, true
	case "q":
		return LevelQ, true
	case "h":
		return LevelH, true
	}
	return 0, false
}

// MarshalText implements encoding.TextMarshaler.
func (l ErrorLevel) MarshalText() ([]byte, error) {
	if l < LevelL || l > LevelH {
		return nil, fmt.Errorf("%w: error level %d", ErrUnsupported, int(l))
	}
	return []byte(strings.ToLower(l.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *ErrorLevel) UnmarshalText(text []byte) error {
	v, ok := ParseErrorLevel(string(text))
	if !ok {
		return fmt.Errorf("%w: error level %q", ErrUnsupported, text)
	}
	*l = v
	return nil
}

// Form is the geometry of an encoded linear barcode.
//
// Runs alternate space, bar, space, ... and always start and end with a
// space run: Runs[0] is the leading quiet zone (zero when none was requested)
// and the last element is the trailing quiet zone. Widths are device units.
//
// A Form with Width == 0 is the null object returned for data the symbology
// cannot encode.
type Form struct {
	Text   string `json:"text" yaml:"text"`
	HRI    bool   `json:"hri" yaml:"hri"`
	Runs   []int  `json:"runs" yaml:"runs,flow"`
	Width  int    `json:"width" yaml:"width"`
	Height int    `json:"height" yaml:"height"`
}

// Valid reports whether the form holds an encoded symbol.
func (f *Form) Valid() bool {
	return f != nil && f.Width > 0
}

// Bars returns the bar widths only, in order.
func (f *Form) Bars() []int {
	if !f.Valid() {
		return nil
	}
	bars := make([]int, 0, len(f.Runs)/2)
	for i := 1; i < len(f.Runs); i += 2 {
		bars = append(bars, f.Runs[i])
	}
	return bars
}

// Matrix is an encoded QR Code symbol. Set modules are dark.
type Matrix struct {
	Version  int               `json:"version" yaml:"version"`
	Level    ErrorLevel        `json:"level" yaml:"level"`
	Mask     int               `json:"mask" yaml:"mask"`
	CellSize int               `json:"cell" yaml:"cell"`
	Modules  *bitutil.BitMatrix `json:"-" yaml:"-"`
}

// Size returns the side length of the matrix in modules, including the quiet
// zone border when one was requested.
func (m *Matrix) Size() int {
	if m == nil || m.Modules == nil {
		return 0
	}
	return m.Modules.Width()
}

// Dark reports whether the module at column x, row y is dark.
func (m *Matrix) Dark(x, y int) bool {
	return m.Modules.Get(x, y)
}
