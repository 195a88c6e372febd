package oned

import "github.com/ericlevine/printsymbol"

func init() {
	printsymbol.RegisterBarcodeWriter(printsymbol.UPC, func() printsymbol.BarcodeWriter { return NewUPCWriter() })
	printsymbol.RegisterBarcodeWriter(printsymbol.EAN, func() printsymbol.BarcodeWriter { return NewEANWriter() })
	printsymbol.RegisterBarcodeWriter(printsymbol.JAN, func() printsymbol.BarcodeWriter { return NewEANWriter() })
	printsymbol.RegisterBarcodeWriter(printsymbol.Code39, func() printsymbol.BarcodeWriter { return NewCode39Writer() })
	printsymbol.RegisterBarcodeWriter(printsymbol.ITF, func() printsymbol.BarcodeWriter { return NewITFWriter() })
	printsymbol.RegisterBarcodeWriter(printsymbol.Codabar, func() printsymbol.BarcodeWriter { return NewCodabarWriter() })
	printsymbol.RegisterBarcodeWriter(printsymbol.Code93, func() printsymbol.BarcodeWriter { return NewCode93Writer() })
	printsymbol.RegisterBarcodeWriter(printsymbol.Code128, func() printsymbol.BarcodeWriter { return NewCode128Writer() })
}
