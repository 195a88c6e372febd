package oned

import (
	"github.com/ericlevine/printsymbol"
)

// Symbol values 43-46 are the shift characters ($) (%) (/) (+); 47 is the
// start/stop character.
const code93Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ-. $/+%"

const (
	code93ShiftDollar  = 43 // ($)
	code93ShiftPercent = 44 // (%)
	code93ShiftSlash   = 45 // (/)
	code93ShiftPlus    = 46 // (+)
	code93StartStop    = 47
)

// Nine modules per symbol, bar first; a set bit marks a dark module.
var code93CharacterEncodings = [48]int{
	0x114, 0x148, 0x144, 0x142, 0x128, 0x124, 0x122, 0x150, 0x112, 0x10A, // 0-9
	0x1A8, 0x1A4, 0x1A2, 0x194, 0x192, 0x18A, 0x168, 0x164, 0x162, 0x134, // A-J
	0x11A, 0x158, 0x14C, 0x146, 0x12C, 0x116, 0x1B4, 0x1B2, 0x1AC, 0x1A6, // K-T
	0x196, 0x19A, 0x16C, 0x166, 0x136, 0x13A, // U-Z
	0x12E, 0x1D4, 0x1D2, 0x1CA, 0x16E, 0x176, 0x1AE, // - . space $ / + %
	0x126, 0x1DA, 0x1D6, 0x132, 0x15E, // ($) (%) (/) (+) start/stop
}

// code93Extended spells every 7-bit character in the 47 symbol alphabet.
// Lower case shift letters stand for the shift characters: d ($), c (%),
// s (/), p (+).
var code93Extended = [128]string{
	"cU", "dA", "dB", "dC", "dD", "dE", "dF", "dG", "dH", "dI", "dJ", "dK", "dL", "dM", "dN", "dO",
	"dP", "dQ", "dR", "dS", "dT", "dU", "dV", "dW", "dX", "dY", "dZ", "cA", "cB", "cC", "cD", "cE",
	" ", "sA", "sB", "sC", "$", "%", "sF", "sG", "sH", "sI", "sJ", "+", "sL", "-", ".", "/",
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "sZ", "cF", "cG", "cH", "cI", "cJ",
	"cV", "A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M", "N", "O",
	"P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z", "cK", "cL", "cM", "cN", "cO",
	"cW", "pA", "pB", "pC", "pD", "pE", "pF", "pG", "pH", "pI", "pJ", "pK", "pL", "pM", "pN", "pO",
	"pP", "pQ", "pR", "pS", "pT", "pU", "pV", "pW", "pX", "pY", "pZ", "cP", "cQ", "cR", "cS", "cT",
}

// Code93Writer encodes full ASCII Code 93 barcodes.
type Code93Writer struct{}

// NewCode93Writer creates a new Code 93 writer.
func NewCode93Writer() *Code93Writer {
	return &Code93Writer{}
}

// Encode encodes any non-empty 7-bit string.
func (w *Code93Writer) Encode(req printsymbol.Request) *printsymbol.Form {
	values, ok := code93Values(req.Data)
	if !ok {
		return nullForm()
	}

	qz := quietZone(req.QuietZone, defaultQuietZone)
	units := []int{qz}
	units = appendCode93Symbol(units, code93StartStop)
	for _, v := range values {
		units = appendCode93Symbol(units, v)
	}
	units = appendCode93Symbol(units, code93StartStop)
	// termination bar; the stop symbol ends with a space
	units = append(units, 1, qz)
	return newForm(req, hriText(req.Data), units, moduleScale)
}

// code93Values returns the symbol values of data followed by the C and K
// check symbols.
func code93Values(data string) ([]int, bool) {
	if data == "" || !isASCII(data) {
		return nil, false
	}
	values := make([]int, 0, 2*len(data)+2)
	for i := 0; i < len(data); i++ {
		for _, c := range []byte(code93Extended[data[i]]) {
			values = append(values, code93Value(c))
		}
	}
	values = append(values, code93Checksum(values, 20))
	values = append(values, code93Checksum(values, 15))
	return values, true
}

func code93Value(c byte) int {
	switch c {
	case 'd':
		return code93ShiftDollar
	case 'c':
		return code93ShiftPercent
	case 's':
		return code93ShiftSlash
	case 'p':
		return code93ShiftPlus
	}
	for i := 0; i < len(code93Alphabet); i++ {
		if code93Alphabet[i] == c {
			return i
		}
	}
	panic("oned: character outside the code 93 alphabet")
}

// code93Checksum weights values 1, 2, ... maxWeight from the right, cycling.
func code93Checksum(values []int, maxWeight int) int {
	total := 0
	weight := 1
	for i := len(values) - 1; i >= 0; i-- {
		total += values[i] * weight
		if weight++; weight > maxWeight {
			weight = 1
		}
	}
	return total % 47
}

// appendCode93Symbol appends the six runs of a symbol.
func appendCode93Symbol(units []int, value int) []int {
	a := code93CharacterEncodings[value]
	run := 0
	dark := true
	for i := 8; i >= 0; i-- {
		if bit := (a>>uint(i))&1 == 1; bit == dark {
			run++
			continue
		}
		units = append(units, run)
		run = 1
		dark = !dark
	}
	return append(units, run)
}
