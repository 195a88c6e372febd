package oned

import (
	"github.com/ericlevine/printsymbol"
)

const upceCodeWidth = 3 + (7 * 6) + 6 // = 51

// UPCEWriter encodes UPC-E barcodes, number system 0 only.
type UPCEWriter struct{}

// NewUPCEWriter creates a new UPC-E writer.
func NewUPCEWriter() *UPCEWriter {
	return &UPCEWriter{}
}

// Encode encodes "0" followed by six or seven digits. The check digit is
// computed from the expanded UPC-A code.
func (w *UPCEWriter) Encode(req printsymbol.Request) *printsymbol.Form {
	upca, ok := ExpandUPCE(req.Data)
	if !ok {
		return nullForm()
	}
	check := upca[11]
	contents := req.Data[:7] + string(check)

	parities := upceCheckDigitEncodings[check-'0']
	units := make([]int, 0, 36)
	units = append(units, quietZone(req.QuietZone, upceanQuietZone))
	units = append(units, upceanStartEndPattern...)
	for i := 1; i <= 6; i++ {
		digit := int(contents[i] - '0')
		if (parities>>(6-i))&1 == 1 {
			digit += 10
		}
		units = append(units, lAndGPatterns[digit]...)
	}
	units = append(units, upceEndPattern...)
	units = append(units, quietZone(req.QuietZone, upceanQuietZone))
	return newForm(req, contents, units, moduleScale)
}
