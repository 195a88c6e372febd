package qrcode

import (
	"github.com/ericlevine/printsymbol"
)

const quietZoneSize = 4

// Writer encodes QR Code requests.
type Writer struct{}

// NewWriter creates a new QR code Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Encode encodes req.Data at req.Level. A quiet zone of four light modules
// is added on every side when req.QuietZone is set.
func (w *Writer) Encode(req printsymbol.Request) *printsymbol.Matrix {
	code := Encode(req.Data, req.Level)
	modules := code.Matrix
	if req.QuietZone {
		modules = modules.Pad(quietZoneSize)
	}
	return &printsymbol.Matrix{
		Version:  code.Version,
		Level:    code.Level,
		Mask:     code.Mask,
		CellSize: req.CellSize,
		Modules:  modules,
	}
}
