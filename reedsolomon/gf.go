// Package reedsolomon implements Reed-Solomon coding over GF(256) as used by
// QR Code.
package reedsolomon

import "fmt"

// Field is a Galois field GF(2^n) with precomputed exponent and logarithm
// tables.
type Field struct {
	expTable      []int
	logTable      []int
	zero          *Poly
	one           *Poly
	size          int
	primitive     int
	generatorBase int
}

// QRCodeField256 is GF(256) with primitive x^8 + x^4 + x^3 + x^2 + 1 and
// generator roots starting at alpha^0.
var QRCodeField256 = NewField(0x011D, 256, 0)

// NewField creates a GF(size) using the given primitive polynomial.
func NewField(primitive, size, generatorBase int) *Field {
	gf := &Field{
		primitive:     primitive,
		size:          size,
		generatorBase: generatorBase,
		expTable:      make([]int, size),
		logTable:      make([]int, size),
	}

	x := 1
	for i := 0; i < size; i++ {
		gf.expTable[i] = x
		x *= 2
		if x >= size {
			x ^= primitive
			x &= size - 1
		}
	}
	for i := 0; i < size-1; i++ {
		gf.logTable[gf.expTable[i]] = i
	}

	gf.zero = newPoly(gf, []int{0})
	gf.one = newPoly(gf, []int{1})

	return gf
}

// Zero returns the zero polynomial.
func (gf *Field) Zero() *Poly { return gf.zero }

// One returns the one polynomial.
func (gf *Field) One() *Poly { return gf.one }

// BuildMonomial returns coefficient * x^degree.
func (gf *Field) BuildMonomial(degree, coefficient int) *Poly {
	if degree < 0 {
		panic("reedsolomon: negative degree")
	}
	if coefficient == 0 {
		return gf.zero
	}
	coefficients := make([]int, degree+1)
	coefficients[0] = coefficient
	return newPoly(gf, coefficients)
}

// AddOrSubtract computes a XOR b; addition and subtraction coincide in GF(2^n).
func AddOrSubtract(a, b int) int {
	return a ^ b
}

// Exp returns alpha^a.
func (gf *Field) Exp(a int) int {
	return gf.expTable[a]
}

// Log returns the discrete logarithm of a.
func (gf *Field) Log(a int) int {
	if a == 0 {
		panic("reedsolomon: log(0)")
	}
	return gf.logTable[a]
}

// Inverse returns the multiplicative inverse of a.
func (gf *Field) Inverse(a int) int {
	if a == 0 {
		panic("reedsolomon: inverse(0)")
	}
	return gf.expTable[gf.size-gf.logTable[a]-1]
}

// Multiply returns a * b in this field.
func (gf *Field) Multiply(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return gf.expTable[(gf.logTable[a]+gf.logTable[b])%(gf.size-1)]
}

// Size returns the size of the field.
func (gf *Field) Size() int { return gf.size }

// GeneratorBase returns the exponent of the first generator root.
func (gf *Field) GeneratorBase() int { return gf.generatorBase }

func (gf *Field) String() string {
	return fmt.Sprintf("GF(0x%x,%d)", gf.primitive, gf.size)
}
