package qrcode

import "github.com/ericlevine/printsymbol"

func init() {
	printsymbol.RegisterMatrixWriter(printsymbol.QRCode, func() printsymbol.MatrixWriter {
		return NewWriter()
	})
}
