package oned

import (
	"github.com/ericlevine/printsymbol"
)

// UPC/EAN guard patterns.
var (
	upceanStartEndPattern = []int{1, 1, 1}
	upceanMiddlePattern   = []int{1, 1, 1, 1, 1}
	upceEndPattern        = []int{1, 1, 1, 1, 1, 1}
)

// lPatterns are the odd parity (code A) digit patterns, space first. Read bar
// first they are also the right hand (code C) patterns.
var lPatterns = [10][]int{
	{3, 2, 1, 1}, // 0
	{2, 2, 2, 1}, // 1
	{2, 1, 2, 2}, // 2
	{1, 4, 1, 1}, // 3
	{1, 1, 3, 2}, // 4
	{1, 2, 3, 1}, // 5
	{1, 1, 1, 4}, // 6
	{1, 3, 1, 2}, // 7
	{1, 2, 1, 3}, // 8
	{3, 1, 1, 2}, // 9
}

// lAndGPatterns holds code A at 0-9 and the even parity code B, the
// reversed A patterns, at 10-19.
var lAndGPatterns [20][]int

func init() {
	for i := 0; i < 10; i++ {
		lAndGPatterns[i] = lPatterns[i]
		widths := lPatterns[i]
		reversed := make([]int, len(widths))
		for j := range widths {
			reversed[j] = widths[len(widths)-j-1]
		}
		lAndGPatterns[i+10] = reversed
	}
}

// Parity of the six left hand EAN-13 digits by leading digit, most
// significant bit first; a set bit selects code B.
var ean13FirstDigitEncodings = [10]int{
	0x00, 0x0B, 0x0D, 0x0E, 0x13, 0x19, 0x1C, 0x15, 0x16, 0x1A,
}

// Parity of the six UPC-E digits by check digit, number system 0.
var upceCheckDigitEncodings = [10]int{
	0x38, 0x34, 0x32, 0x31, 0x2C, 0x26, 0x23, 0x2A, 0x29, 0x25,
}

// CheckDigit returns the UPC/EAN modulo 10 check digit for a digit string
// without its check digit. The rightmost digit carries weight 3.
func CheckDigit(digits string) int {
	sum := 0
	for i := len(digits) - 1; i >= 0; i -= 2 {
		sum += 3 * int(digits[i]-'0')
	}
	for i := len(digits) - 2; i >= 0; i -= 2 {
		sum += int(digits[i] - '0')
	}
	return (10 - sum%10) % 10
}

// ExpandUPCE expands a zero-suppressed UPC-E code to the 12 digit UPC-A code
// it stands for, check digit included. upce must be "0" followed by six or
// seven digits; a seventh digit is taken as a check digit and ignored.
func ExpandUPCE(upce string) (string, bool) {
	if (len(upce) != 7 && len(upce) != 8) || upce[0] != '0' || !CheckNumeric(upce) {
		return "", false
	}
	a := expandUPCE(upce[:7])
	return a + string(rune('0'+CheckDigit(a))), true
}

// expandUPCE maps seven UPC-E digits to eleven UPC-A digits by the last one.
func expandUPCE(e string) string {
	b := make([]byte, 0, 11)
	b = append(b, e[:3]...)
	switch e[6] {
	case '0', '1', '2':
		b = append(b, e[6], '0', '0', '0', '0', e[3], e[4], e[5])
	case '3':
		b = append(b, e[3], '0', '0', '0', '0', '0', e[4], e[5])
	case '4':
		b = append(b, e[3], e[4], '0', '0', '0', '0', '0', e[5])
	default:
		b = append(b, e[3], e[4], e[5], '0', '0', '0', '0', e[6])
	}
	return string(b)
}

// withCheckDigit keeps the first n digits of s and appends their check digit.
// s must hold n or n+1 digits.
func withCheckDigit(s string, n int) (string, bool) {
	if (len(s) != n && len(s) != n+1) || !CheckNumeric(s) {
		return "", false
	}
	return s[:n] + string(rune('0'+CheckDigit(s[:n]))), true
}

// UPCWriter encodes "upc" requests: UPC-E for data shorter than 9
// characters, UPC-A otherwise.
type UPCWriter struct {
	upca *UPCAWriter
	upce *UPCEWriter
}

// NewUPCWriter creates a new UPC writer.
func NewUPCWriter() *UPCWriter {
	return &UPCWriter{upca: NewUPCAWriter(), upce: NewUPCEWriter()}
}

// Encode encodes req.Data as UPC-E or UPC-A.
func (w *UPCWriter) Encode(req printsymbol.Request) *printsymbol.Form {
	if len(req.Data) < 9 {
		return w.upce.Encode(req)
	}
	return w.upca.Encode(req)
}

// EANWriter encodes "ean" and "jan" requests: EAN-8 for data shorter than 9
// characters, EAN-13 otherwise.
type EANWriter struct {
	ean8  *EAN8Writer
	ean13 *EAN13Writer
}

// NewEANWriter creates a new EAN writer.
func NewEANWriter() *EANWriter {
	return &EANWriter{ean8: NewEAN8Writer(), ean13: NewEAN13Writer()}
}

// Encode encodes req.Data as EAN-8 or EAN-13.
func (w *EANWriter) Encode(req printsymbol.Request) *printsymbol.Form {
	if len(req.Data) < 9 {
		return w.ean8.Encode(req)
	}
	return w.ean13.Encode(req)
}
