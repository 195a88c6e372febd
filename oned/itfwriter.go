package oned

import (
	"github.com/ericlevine/printsymbol"
)

// Five elements per digit, 1 narrow, 2 wide.
var itfPatterns = [10][5]int{
	{1, 1, 2, 2, 1}, // 0
	{2, 1, 1, 1, 2}, // 1
	{1, 2, 1, 1, 2}, // 2
	{2, 2, 1, 1, 1}, // 3
	{1, 1, 2, 1, 2}, // 4
	{2, 1, 2, 1, 1}, // 5
	{1, 2, 2, 1, 1}, // 6
	{1, 1, 1, 2, 2}, // 7
	{2, 1, 1, 2, 1}, // 8
	{1, 2, 1, 2, 1}, // 9
}

var (
	itfStartPattern = []int{1, 1, 1, 1}
	itfEndPattern   = []int{2, 1, 1}
)

// ITFWriter encodes Interleaved 2 of 5 barcodes without a check digit.
type ITFWriter struct{}

// NewITFWriter creates a new ITF writer.
func NewITFWriter() *ITFWriter {
	return &ITFWriter{}
}

// Encode encodes a non-empty, even number of digits.
func (w *ITFWriter) Encode(req printsymbol.Request) *printsymbol.Form {
	contents := req.Data
	if len(contents)%2 != 0 || !CheckNumeric(contents) {
		return nullForm()
	}

	qz := quietZone(req.QuietZone, 2*defaultQuietZone)
	units := []int{qz}
	units = appendWideNarrow(units, itfStartPattern)
	encoding := make([]int, 10)
	for i := 0; i < len(contents); i += 2 {
		one := itfPatterns[contents[i]-'0']
		two := itfPatterns[contents[i+1]-'0']
		for j := 0; j < 5; j++ {
			encoding[2*j] = one[j]
			encoding[2*j+1] = two[j]
		}
		units = appendWideNarrow(units, encoding)
	}
	units = appendWideNarrow(units, itfEndPattern)
	units = append(units, qz)
	return newForm(req, contents, units, halfModuleScale)
}
