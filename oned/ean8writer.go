package oned

import (
	"github.com/ericlevine/printsymbol"
)

const ean8CodeWidth = 3 + (7 * 4) + 5 + (7 * 4) + 3 // = 67

// EAN8Writer encodes EAN-8 (JAN-8) barcodes.
type EAN8Writer struct{}

// NewEAN8Writer creates a new EAN-8 writer.
func NewEAN8Writer() *EAN8Writer {
	return &EAN8Writer{}
}

// Encode encodes 7 or 8 digits. The check digit is always recomputed from
// the first 7.
func (w *EAN8Writer) Encode(req printsymbol.Request) *printsymbol.Form {
	contents, ok := withCheckDigit(req.Data, 7)
	if !ok {
		return nullForm()
	}

	units := make([]int, 0, 42)
	units = append(units, quietZone(req.QuietZone, upceanQuietZone))
	units = append(units, upceanStartEndPattern...)
	for i := 0; i <= 3; i++ {
		units = append(units, lPatterns[contents[i]-'0']...)
	}
	units = append(units, upceanMiddlePattern...)
	for i := 4; i <= 7; i++ {
		units = append(units, lPatterns[contents[i]-'0']...)
	}
	units = append(units, upceanStartEndPattern...)
	units = append(units, quietZone(req.QuietZone, upceanQuietZone))
	return newForm(req, contents, units, moduleScale)
}
