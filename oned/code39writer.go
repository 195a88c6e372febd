package oned

import (
	"strings"

	"github.com/ericlevine/printsymbol"
)

const code39Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ-. $/+%*"

// Nine elements per character, bar first; a set bit marks a wide element.
var code39CharacterEncodings = [44]int{
	0x034, 0x121, 0x061, 0x160, 0x031, 0x130, 0x070, 0x025, 0x124, 0x064, // 0-9
	0x109, 0x049, 0x148, 0x019, 0x118, 0x058, 0x00D, 0x10C, 0x04C, 0x01C, // A-J
	0x103, 0x043, 0x142, 0x013, 0x112, 0x052, 0x007, 0x106, 0x046, 0x016, // K-T
	0x181, 0x0C1, 0x1C0, 0x091, 0x190, 0x0D0, 0x085, 0x184, 0x0C4, 0x0A8, // U-$
	0x0A2, 0x08A, 0x02A, // /-%
	0x094, // *
}

// Code39Writer encodes Code 39 barcodes.
type Code39Writer struct{}

// NewCode39Writer creates a new Code 39 writer.
func NewCode39Writer() *Code39Writer {
	return &Code39Writer{}
}

// Encode encodes upper case letters, digits and "-. $/+%". A missing leading
// or trailing "*" start/stop character is added.
func (w *Code39Writer) Encode(req printsymbol.Request) *printsymbol.Form {
	contents, ok := code39Contents(req.Data)
	if !ok {
		return nullForm()
	}

	qz := quietZone(req.QuietZone, 2*defaultQuietZone)
	units := []int{qz}
	widths := make([]int, 9)
	for i := 0; i < len(contents); i++ {
		if i > 0 {
			units = append(units, narrowHalf)
		}
		code39ToIntArray(code39CharacterEncodings[strings.IndexByte(code39Alphabet, contents[i])], widths)
		units = appendWideNarrow(units, widths)
	}
	units = append(units, qz)
	return newForm(req, contents, units, halfModuleScale)
}

// code39Contents validates data and wraps it in start/stop characters.
func code39Contents(data string) (string, bool) {
	body := strings.TrimSuffix(strings.TrimPrefix(data, "*"), "*")
	if body == "" {
		return "", false
	}
	for i := 0; i < len(body); i++ {
		if idx := strings.IndexByte(code39Alphabet, body[i]); idx < 0 || body[i] == '*' {
			return "", false
		}
	}
	return "*" + body + "*", true
}

func code39ToIntArray(a int, toReturn []int) {
	for i := 0; i < 9; i++ {
		if a&(1<<uint(8-i)) != 0 {
			toReturn[i] = 2
		} else {
			toReturn[i] = 1
		}
	}
}
