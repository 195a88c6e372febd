// Package oned encodes one-dimensional barcodes into bar/space run lengths.
//
// Writers register themselves with the printsymbol registry on import:
//
//	import _ "github.com/ericlevine/printsymbol/oned"
package oned

import (
	"github.com/ericlevine/printsymbol"
)

// Quiet zones in modules.
const (
	defaultQuietZone = 10
	ean13LeftQuiet   = 11
	upceanQuietZone  = 7
)

// Narrow and wide elements of the two-width symbologies are measured in half
// modules so that a wide element is 2.5 narrow ones.
const (
	narrowHalf = 2
	wideHalf   = 5
)

// unitScale converts pattern units to device units for a module width.
type unitScale func(units, moduleWidth int) int

func moduleScale(units, moduleWidth int) int {
	return units * moduleWidth
}

// halfModuleScale rounds half modules up: at widths 2, 3 and 4 a wide
// element is 5, 8 and 10 units wide.
func halfModuleScale(units, moduleWidth int) int {
	return (units*moduleWidth + 1) >> 1
}

// appendWideNarrow appends a pattern given as 1 (narrow) / 2 (wide) in half
// module units. Like every pattern appended to a run list it starts with the
// opposite color of the element before it.
func appendWideNarrow(runs []int, pattern []int) []int {
	for _, p := range pattern {
		if p == 2 {
			runs = append(runs, wideHalf)
		} else {
			runs = append(runs, narrowHalf)
		}
	}
	return runs
}

// newForm scales pattern units into a form. units must start and end with a
// space run.
func newForm(req printsymbol.Request, text string, units []int, scale unitScale) *printsymbol.Form {
	runs := make([]int, len(units))
	width := 0
	for i, u := range units {
		runs[i] = scale(u, req.ModuleWidth)
		width += runs[i]
	}
	return &printsymbol.Form{
		Text:   text,
		HRI:    req.HRI,
		Runs:   runs,
		Width:  width,
		Height: req.BarHeight,
	}
}

// nullForm is returned for data a symbology cannot encode.
func nullForm() *printsymbol.Form {
	return &printsymbol.Form{Runs: []int{}}
}

func quietZone(on bool, modules int) int {
	if on {
		return modules
	}
	return 0
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// CheckNumeric reports whether s is non-empty and contains only digits.
func CheckNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// isASCII reports whether s only holds 7-bit characters.
func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// hriText shows control characters, space and DEL as spaces.
func hriText(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c <= 0x20 || c == 0x7F {
			b[i] = ' '
		}
	}
	return string(b)
}
