package oned

import (
	"strings"

	"github.com/ericlevine/printsymbol"
)

const (
	codabarAlphabet       = "0123456789-$:/.+ABCD"
	codabarStartEndChars  = "ABCD"
	codabarDataCharacters = "0123456789-$:/.+"
)

// Seven elements per character (4 bars, 3 spaces), 1 narrow, 2 wide.
var codabarCharacterEncodings = [20][7]int{
	{1, 1, 1, 1, 1, 2, 2}, // 0
	{1, 1, 1, 1, 2, 2, 1}, // 1
	{1, 1, 1, 2, 1, 1, 2}, // 2
	{2, 2, 1, 1, 1, 1, 1}, // 3
	{1, 1, 2, 1, 1, 2, 1}, // 4
	{2, 1, 1, 1, 1, 2, 1}, // 5
	{1, 2, 1, 1, 1, 1, 2}, // 6
	{1, 2, 1, 1, 2, 1, 1}, // 7
	{1, 2, 2, 1, 1, 1, 1}, // 8
	{2, 1, 1, 2, 1, 1, 1}, // 9
	{1, 1, 1, 2, 2, 1, 1}, // -
	{1, 1, 2, 2, 1, 1, 1}, // $
	{2, 1, 1, 1, 2, 1, 2}, // :
	{2, 1, 2, 1, 1, 1, 2}, // /
	{2, 1, 2, 1, 2, 1, 1}, // .
	{1, 1, 2, 1, 2, 1, 2}, // +
	{1, 1, 2, 2, 1, 2, 1}, // A
	{1, 2, 1, 2, 1, 1, 2}, // B
	{1, 1, 1, 2, 1, 2, 2}, // C
	{1, 1, 1, 2, 2, 2, 1}, // D
}

// CodabarWriter encodes Codabar (NW-7) barcodes.
type CodabarWriter struct{}

// NewCodabarWriter creates a new Codabar writer.
func NewCodabarWriter() *CodabarWriter {
	return &CodabarWriter{}
}

// Encode encodes a start character A-D, at least one of "0-9-$:/.+", and a
// stop character A-D. Start and stop may be lower case; the HRI text keeps
// the input as given.
func (w *CodabarWriter) Encode(req printsymbol.Request) *printsymbol.Form {
	if !validCodabar(req.Data) {
		return nullForm()
	}

	contents := strings.ToUpper(req.Data)
	qz := quietZone(req.QuietZone, 2*defaultQuietZone)
	units := []int{qz}
	for i := 0; i < len(contents); i++ {
		if i > 0 {
			units = append(units, narrowHalf)
		}
		idx := strings.IndexByte(codabarAlphabet, contents[i])
		units = appendWideNarrow(units, codabarCharacterEncodings[idx][:])
	}
	units = append(units, qz)
	return newForm(req, req.Data, units, halfModuleScale)
}

func validCodabar(s string) bool {
	if len(s) < 3 {
		return false
	}
	upper := strings.ToUpper(s)
	if strings.IndexByte(codabarStartEndChars, upper[0]) < 0 ||
		strings.IndexByte(codabarStartEndChars, upper[len(upper)-1]) < 0 {
		return false
	}
	for i := 1; i < len(s)-1; i++ {
		if strings.IndexByte(codabarDataCharacters, s[i]) < 0 {
			return false
		}
	}
	return true
}
