package printsymbol

// Request describes one symbol to encode. Fields that do not apply to the
// chosen symbology are ignored.
type Request struct {
	// Data is the raw payload.
	Data string `json:"data" yaml:"data"`

	// Symbology selects the encoder.
	Symbology Symbology `json:"type" yaml:"type"`

	// ModuleWidth is the width of a narrow module in device units (2-4).
	ModuleWidth int `json:"width" yaml:"width"`

	// BarHeight is the bar height of a linear barcode in device units.
	BarHeight int `json:"height" yaml:"height"`

	// HRI requests human readable text under a linear barcode.
	HRI bool `json:"hri" yaml:"hri"`

	// CellSize is the QR module size in device units (3-8).
	CellSize int `json:"cell" yaml:"cell"`

	// Level is the QR error correction level.
	Level ErrorLevel `json:"level" yaml:"level"`

	// QuietZone adds the margin mandated by the symbology.
	QuietZone bool `json:"quietZone" yaml:"quietZone"`
}

// BarcodeWriter encodes linear barcodes. Invalid data produces the null
// object Form rather than an error.
type BarcodeWriter interface {
	Encode(req Request) *Form
}

// MatrixWriter encodes two-dimensional symbols. Every input produces a
// matrix; payloads over capacity are truncated.
type MatrixWriter interface {
	Encode(req Request) *Matrix
}
