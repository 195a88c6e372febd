package printsymbol

import (
	"strconv"
	"strings"
)

// Defaults applied by ParseOptions.
const (
	DefaultModuleWidth = 2
	DefaultBarHeight   = 72
	DefaultCellSize    = 3
)

// ParseOptions parses a receipt markup option string such as
// "code39 3 96 hri" or "qrcode,5,m" into a Request with no data.
//
// Tokens are separated by spaces, tabs or commas and matched case
// insensitively. The first symbology name wins, as does the first integer
// inside each parameter's range, so a single token can set both the module
// width and the cell size.
func ParseOptions(s string) Request {
	req := Request{
		Symbology:   Code128,
		ModuleWidth: DefaultModuleWidth,
		BarHeight:   DefaultBarHeight,
		CellSize:    DefaultCellSize,
		Level:       LevelL,
	}
	tokens := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	})

	var haveType, haveWidth, haveHeight, haveCell, haveLevel bool
	for _, t := range tokens {
		if t == "hri" {
			req.HRI = true
			continue
		}
		if !haveType {
			if sym, ok := ParseSymbology(t); ok {
				req.Symbology = sym
				haveType = true
				continue
			}
		}
		if !haveLevel && len(t) == 1 {
			if level, ok := ParseErrorLevel(t); ok {
				req.Level = level
				haveLevel = true
				continue
			}
		}
		n, ok := parseDecimal(t)
		if !ok {
			continue
		}
		if !haveWidth && n >= 2 && n <= 4 {
			req.ModuleWidth = n
			haveWidth = true
		}
		if !haveHeight && n >= 24 && n <= 240 {
			req.BarHeight = n
			haveHeight = true
		}
		if !haveCell && n >= 3 && n <= 8 {
			req.CellSize = n
			haveCell = true
		}
	}
	return req
}

// parseDecimal accepts only unsigned ASCII digit strings.
func parseDecimal(t string) (int, bool) {
	if t == "" {
		return 0, false
	}
	for i := 0; i < len(t); i++ {
		if t[i] < '0' || t[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(t)
	if err != nil {
		return 0, false
	}
	return n, true
}
