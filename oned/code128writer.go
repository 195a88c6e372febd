package oned

import (
	"github.com/ericlevine/printsymbol"
)

const (
	code128Shift  = 98
	code128CodeC  = 99
	code128CodeB  = 100
	code128CodeA  = 101
	code128StartA = 103
	code128StartB = 104
	code128StartC = 105
	code128Stop   = 106
)

const (
	code128SetA = iota
	code128SetB
	code128SetC
)

// code128Patterns are the element widths of each symbol value, bar first.
var code128Patterns = [107][]int{
	{2, 1, 2, 2, 2, 2}, // 0
	{2, 2, 2, 1, 2, 2},
	{2, 2, 2, 2, 2, 1},
	{1, 2, 1, 2, 2, 3},
	{1, 2, 1, 3, 2, 2},
	{1, 3, 1, 2, 2, 2}, // 5
	{1, 2, 2, 2, 1, 3},
	{1, 2, 2, 3, 1, 2},
	{1, 3, 2, 2, 1, 2},
	{2, 2, 1, 2, 1, 3},
	{2, 2, 1, 3, 1, 2}, // 10
	{2, 3, 1, 2, 1, 2},
	{1, 1, 2, 2, 3, 2},
	{1, 2, 2, 1, 3, 2},
	{1, 2, 2, 2, 3, 1},
	{1, 1, 3, 2, 2, 2}, // 15
	{1, 2, 3, 1, 2, 2},
	{1, 2, 3, 2, 2, 1},
	{2, 2, 3, 2, 1, 1},
	{2, 2, 1, 1, 3, 2},
	{2, 2, 1, 2, 3, 1}, // 20
	{2, 1, 3, 2, 1, 2},
	{2, 2, 3, 1, 1, 2},
	{3, 1, 2, 1, 3, 1},
	{3, 1, 1, 2, 2, 2},
	{3, 2, 1, 1, 2, 2}, // 25
	{3, 2, 1, 2, 2, 1},
	{3, 1, 2, 2, 1, 2},
	{3, 2, 2, 1, 1, 2},
	{3, 2, 2, 2, 1, 1},
	{2, 1, 2, 1, 2, 3}, // 30
	{2, 1, 2, 3, 2, 1},
	{2, 3, 2, 1, 2, 1},
	{1, 1, 1, 3, 2, 3},
	{1, 3, 1, 1, 2, 3},
	{1, 3, 1, 3, 2, 1}, // 35
	{1, 1, 2, 3, 1, 3},
	{1, 3, 2, 1, 1, 3},
	{1, 3, 2, 3, 1, 1},
	{2, 1, 1, 3, 1, 3},
	{2, 3, 1, 1, 1, 3}, // 40
	{2, 3, 1, 3, 1, 1},
	{1, 1, 2, 1, 3, 3},
	{1, 1, 2, 3, 3, 1},
	{1, 3, 2, 1, 3, 1},
	{1, 1, 3, 1, 2, 3}, // 45
	{1, 1, 3, 3, 2, 1},
	{1, 3, 3, 1, 2, 1},
	{3, 1, 3, 1, 2, 1},
	{2, 1, 1, 3, 3, 1},
	{2, 3, 1, 1, 3, 1}, // 50
	{2, 1, 3, 1, 1, 3},
	{2, 1, 3, 3, 1, 1},
	{2, 1, 3, 1, 3, 1},
	{3, 1, 1, 1, 2, 3},
	{3, 1, 1, 3, 2, 1}, // 55
	{3, 3, 1, 1, 2, 1},
	{3, 1, 2, 1, 1, 3},
	{3, 1, 2, 3, 1, 1},
	{3, 3, 2, 1, 1, 1},
	{3, 1, 4, 1, 1, 1}, // 60
	{2, 2, 1, 4, 1, 1},
	{4, 3, 1, 1, 1, 1},
	{1, 1, 1, 2, 2, 4},
	{1, 1, 1, 4, 2, 2},
	{1, 2, 1, 1, 2, 4}, // 65
	{1, 2, 1, 4, 2, 1},
	{1, 4, 1, 1, 2, 2},
	{1, 4, 1, 2, 2, 1},
	{1, 1, 2, 2, 1, 4},
	{1, 1, 2, 4, 1, 2}, // 70
	{1, 2, 2, 1, 1, 4},
	{1, 2, 2, 4, 1, 1},
	{1, 4, 2, 1, 1, 2},
	{1, 4, 2, 2, 1, 1},
	{2, 4, 1, 2, 1, 1}, // 75
	{2, 2, 1, 1, 1, 4},
	{4, 1, 3, 1, 1, 1},
	{2, 4, 1, 1, 1, 2},
	{1, 3, 4, 1, 1, 1},
	{1, 1, 1, 2, 4, 2}, // 80
	{1, 2, 1, 1, 4, 2},
	{1, 2, 1, 2, 4, 1},
	{1, 1, 4, 2, 1, 2},
	{1, 2, 4, 1, 1, 2},
	{1, 2, 4, 2, 1, 1}, // 85
	{4, 1, 1, 2, 1, 2},
	{4, 2, 1, 1, 1, 2},
	{4, 2, 1, 2, 1, 1},
	{2, 1, 2, 1, 4, 1},
	{2, 1, 4, 1, 2, 1}, // 90
	{4, 1, 2, 1, 2, 1},
	{1, 1, 1, 1, 4, 3},
	{1, 1, 1, 3, 4, 1},
	{1, 3, 1, 1, 4, 1},
	{1, 1, 4, 1, 1, 3}, // 95
	{1, 1, 4, 3, 1, 1},
	{4, 1, 1, 1, 1, 3},
	{4, 1, 1, 3, 1, 1},
	{1, 1, 3, 1, 4, 1},
	{1, 1, 4, 1, 3, 1}, // 100
	{3, 1, 1, 1, 4, 1},
	{4, 1, 1, 1, 3, 1},
	{2, 1, 1, 4, 1, 2}, // START_A
	{2, 1, 1, 2, 1, 4}, // START_B
	{2, 1, 1, 2, 3, 2}, // START_C
	{2, 3, 3, 1, 1, 1, 2}, // STOP
}

// Code128Writer encodes Code 128 barcodes, switching code sets to keep the
// symbol short.
type Code128Writer struct{}

// NewCode128Writer creates a new Code 128 writer.
func NewCode128Writer() *Code128Writer {
	return &Code128Writer{}
}

// Encode encodes any non-empty 7-bit string.
func (w *Code128Writer) Encode(req printsymbol.Request) *printsymbol.Form {
	values, ok := code128Values(req.Data)
	if !ok {
		return nullForm()
	}

	qz := quietZone(req.QuietZone, defaultQuietZone)
	units := make([]int, 0, 6*len(values)+3)
	units = append(units, qz)
	for _, v := range values {
		units = append(units, code128Patterns[v]...)
	}
	units = append(units, qz)
	return newForm(req, hriText(req.Data), units, moduleScale)
}

// code128Values returns the symbol values for s, start character through
// stop character.
func code128Values(s string) ([]int, bool) {
	if s == "" || !isASCII(s) {
		return nil, false
	}
	e := &code128Encoder{s: s}
	e.encode()
	check := e.values[0]
	for i := 1; i < len(e.values); i++ {
		check += i * e.values[i]
	}
	e.values = append(e.values, check%103, code128Stop)
	return e.values, true
}

type code128Encoder struct {
	s      string
	pos    int
	values []int
}

func (e *code128Encoder) emit(v ...int) {
	e.values = append(e.values, v...)
}

func (e *code128Encoder) encode() {
	s := e.s
	var set int
	switch {
	case len(s) == 2 && isDigit(s[0]) && isDigit(s[1]):
		e.emit(code128StartC, int(s[0]-'0')*10+int(s[1]-'0'))
		return
	case digitRun(s, 0) >= 4:
		e.emit(code128StartC)
		set = code128SetC
	case isControl(s, nextSpecial(s, 0)):
		e.emit(code128StartA)
		set = code128SetA
	default:
		e.emit(code128StartB)
		set = code128SetB
	}

	for e.pos < len(s) {
		switch set {
		case code128SetA:
			set = e.encodeA()
		case code128SetB:
			set = e.encodeB()
		default:
			set = e.encodeC()
		}
	}
}

// encodeA consumes characters in code set A and returns the next code set,
// emitting the code change if any.
func (e *code128Encoder) encodeA() int {
	s := e.s
	for e.pos < len(s) && s[e.pos] <= 0x5F && digitRun(s, e.pos) < 4 {
		e.emit(valueA(s[e.pos]))
		e.pos++
	}
	if oddDigitRun(s, e.pos) {
		e.emit(valueA(s[e.pos]))
		e.pos++
	}
	switch {
	case e.pos == len(s):
		return code128SetA
	case digitRun(s, e.pos) >= 4:
		e.emit(code128CodeC)
		return code128SetC
	case isControl(s, nextSpecial(s, e.pos+1)):
		e.emit(code128Shift, valueB(s[e.pos]))
		e.pos++
		return code128SetA
	default:
		e.emit(code128CodeB)
		return code128SetB
	}
}

// encodeB consumes characters in code set B and returns the next code set.
func (e *code128Encoder) encodeB() int {
	s := e.s
	for e.pos < len(s) && s[e.pos] >= 0x20 && digitRun(s, e.pos) < 4 {
		e.emit(valueB(s[e.pos]))
		e.pos++
	}
	if oddDigitRun(s, e.pos) {
		e.emit(valueB(s[e.pos]))
		e.pos++
	}
	switch {
	case e.pos == len(s):
		return code128SetB
	case digitRun(s, e.pos) >= 4:
		e.emit(code128CodeC)
		return code128SetC
	case isLower(s, nextSpecial(s, e.pos+1)):
		e.emit(code128Shift, valueA(s[e.pos]))
		e.pos++
		return code128SetB
	default:
		e.emit(code128CodeA)
		return code128SetA
	}
}

// encodeC consumes digit pairs of the current run; an odd trailing digit is
// left for the next code set.
func (e *code128Encoder) encodeC() int {
	s := e.s
	n := digitRun(s, e.pos)
	for end := e.pos + n - n%2; e.pos < end; e.pos += 2 {
		e.emit(int(s[e.pos]-'0')*10 + int(s[e.pos+1]-'0'))
	}
	switch {
	case e.pos == len(s):
		return code128SetC
	case isControl(s, nextSpecial(s, e.pos)):
		e.emit(code128CodeA)
		return code128SetA
	default:
		e.emit(code128CodeB)
		return code128SetB
	}
}

func valueA(c byte) int { return (int(c) + 64) % 96 }

func valueB(c byte) int { return int(c) - 32 }

// digitRun returns the number of consecutive digits starting at i.
func digitRun(s string, i int) int {
	n := 0
	for i+n < len(s) && isDigit(s[i+n]) {
		n++
	}
	return n
}

// oddDigitRun reports whether an odd run of at least five digits starts at i.
func oddDigitRun(s string, i int) bool {
	n := digitRun(s, i)
	return n >= 5 && n%2 == 1
}

// nextSpecial returns the index of the first character at or after i that
// is shared by neither code set A and B in full, that is a control code or a
// lower case character, or -1.
func nextSpecial(s string, i int) int {
	for ; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x5F {
			return i
		}
	}
	return -1
}

func isControl(s string, i int) bool {
	return i >= 0 && s[i] < 0x20
}

func isLower(s string, i int) bool {
	return i >= 0 && s[i] > 0x5F
}
