package oned

import (
	"github.com/ericlevine/printsymbol"
)

// UPCAWriter encodes UPC-A barcodes as EAN-13 with a leading zero.
type UPCAWriter struct{}

// NewUPCAWriter creates a new UPC-A writer.
func NewUPCAWriter() *UPCAWriter {
	return &UPCAWriter{}
}

// Encode encodes 11 or 12 digits. The HRI text is the 12 digit UPC-A code.
func (w *UPCAWriter) Encode(req printsymbol.Request) *printsymbol.Form {
	text, units, ok := encodeEAN13("0"+req.Data, req.QuietZone)
	if !ok {
		return nullForm()
	}
	return newForm(req, text[1:], units, moduleScale)
}
