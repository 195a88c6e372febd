package oned

import (
	"github.com/ericlevine/printsymbol"
)

const ean13CodeWidth = 3 + (7 * 6) + 5 + (7 * 6) + 3 // = 95

// EAN13Writer encodes EAN-13 (JAN-13) barcodes.
type EAN13Writer struct{}

// NewEAN13Writer creates a new EAN-13 writer.
func NewEAN13Writer() *EAN13Writer {
	return &EAN13Writer{}
}

// Encode encodes 12 or 13 digits. The check digit is always recomputed from
// the first 12.
func (w *EAN13Writer) Encode(req printsymbol.Request) *printsymbol.Form {
	text, units, ok := encodeEAN13(req.Data, req.QuietZone)
	if !ok {
		return nullForm()
	}
	return newForm(req, text, units, moduleScale)
}

func encodeEAN13(data string, quiet bool) (string, []int, bool) {
	contents, ok := withCheckDigit(data, 12)
	if !ok {
		return "", nil, false
	}

	parities := ean13FirstDigitEncodings[contents[0]-'0']
	units := make([]int, 0, 62)
	units = append(units, quietZone(quiet, ean13LeftQuiet))
	units = append(units, upceanStartEndPattern...)
	for i := 1; i <= 6; i++ {
		digit := int(contents[i] - '0')
		if (parities>>(6-i))&1 == 1 {
			digit += 10
		}
		units = append(units, lAndGPatterns[digit]...)
	}
	units = append(units, upceanMiddlePattern...)
	for i := 7; i <= 12; i++ {
		units = append(units, lPatterns[contents[i]-'0']...)
	}
	units = append(units, upceanStartEndPattern...)
	units = append(units, quietZone(quiet, upceanQuietZone))
	return contents, units, true
}
