package reedsolomon

// Encoder computes Reed-Solomon error correction codewords. It caches the
// generator polynomials it has built and is not safe for concurrent use.
type Encoder struct {
	field            *Field
	cachedGenerators []*Poly
}

// NewEncoder creates a new Encoder for the given field.
func NewEncoder(field *Field) *Encoder {
	return &Encoder{
		field:            field,
		cachedGenerators: []*Poly{field.One()},
	}
}

// Generator returns the generator polynomial (x - a^b)(x - a^(b+1))...
// of the given degree, where b is the field's generator base.
func (e *Encoder) Generator(degree int) *Poly {
	if degree < len(e.cachedGenerators) {
		return e.cachedGenerators[degree]
	}
	last := e.cachedGenerators[len(e.cachedGenerators)-1]
	for d := len(e.cachedGenerators); d <= degree; d++ {
		next := last.Multiply(newPoly(e.field, []int{1, e.field.Exp(d - 1 + e.field.GeneratorBase())}))
		e.cachedGenerators = append(e.cachedGenerators, next)
		last = next
	}
	return e.cachedGenerators[degree]
}

// Encode fills the last ecCount values of toEncode with error correction
// codewords computed over the values before them.
func (e *Encoder) Encode(toEncode []int, ecCount int) {
	if ecCount == 0 {
		panic("reedsolomon: no error correction codewords")
	}
	dataCount := len(toEncode) - ecCount
	if dataCount <= 0 {
		panic("reedsolomon: no data codewords provided")
	}
	info := newPoly(e.field, append([]int(nil), toEncode[:dataCount]...))
	info = info.MultiplyByMonomial(ecCount, 1)
	_, remainder := info.Divide(e.Generator(ecCount))
	coefficients := remainder.Coefficients()
	numZero := ecCount - len(coefficients)
	for i := 0; i < numZero; i++ {
		toEncode[dataCount+i] = 0
	}
	copy(toEncode[dataCount+numZero:], coefficients)
}

// EncodeBytes returns the ecCount error correction bytes for data.
func (e *Encoder) EncodeBytes(data []byte, ecCount int) []byte {
	block := make([]int, len(data)+ecCount)
	for i, b := range data {
		block[i] = int(b)
	}
	e.Encode(block, ecCount)
	ec := make([]byte, ecCount)
	for i := range ec {
		ec[i] = byte(block[len(data)+i])
	}
	return ec
}
