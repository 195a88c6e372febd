package printsymbol

import "fmt"

type (
	barcodeWriterFactory func() BarcodeWriter
	matrixWriterFactory  func() MatrixWriter
)

var (
	barcodeWriterFactories = map[Symbology]barcodeWriterFactory{}
	matrixWriterFactories  = map[Symbology]matrixWriterFactory{}
)

// RegisterBarcodeWriter registers a linear barcode writer for the given
// symbology. It is meant to be called from package init functions.
func RegisterBarcodeWriter(s Symbology, factory func() BarcodeWriter) {
	barcodeWriterFactories[s] = factory
}

// RegisterMatrixWriter registers a matrix writer for the given symbology. It
// is meant to be called from package init functions.
func RegisterMatrixWriter(s Symbology, factory func() MatrixWriter) {
	matrixWriterFactories[s] = factory
}

// EncodeBarcode encodes a linear barcode with the registered writer. The
// returned error only reports a missing writer; data the symbology cannot
// encode yields a Form whose Valid method returns false.
func EncodeBarcode(req Request) (*Form, error) {
	factory, ok := barcodeWriterFactories[req.Symbology]
	if !ok {
		return &Form{}, fmt.Errorf("%s: %w", req.Symbology, ErrUnsupported)
	}
	return factory().Encode(req), nil
}

// EncodeMatrix encodes a two-dimensional symbol with the registered writer.
func EncodeMatrix(req Request) (*Matrix, error) {
	factory, ok := matrixWriterFactories[req.Symbology]
	if !ok {
		return nil, fmt.Errorf("%s: %w", req.Symbology, ErrUnsupported)
	}
	return factory().Encode(req), nil
}
