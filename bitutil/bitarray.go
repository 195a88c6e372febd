// Package bitutil provides the bit containers used while building symbols:
// an append-only bit stream for QR codewords, a module grid, and a reader for
// walking codeword bits.
package bitutil

import (
	"math/bits"
	"strings"
)

const loadFactor = 0.75

// BitArray is a growable array of bits packed into uint32 words. Appended
// values are stored most significant bit first, which is the order QR Code
// writes its data stream.
type BitArray struct {
	bits []uint32
	size int
}

// NewBitArray creates a new BitArray with the given size, all bits unset.
func NewBitArray(size int) *BitArray {
	if size <= 0 {
		return &BitArray{}
	}
	return &BitArray{
		bits: makeArray(size),
		size: size,
	}
}

// Size returns the number of bits in the array.
func (ba *BitArray) Size() int {
	return ba.size
}

// SizeInBytes returns the number of bytes needed to hold the bits.
func (ba *BitArray) SizeInBytes() int {
	return (ba.size + 7) / 8
}

func (ba *BitArray) ensureCapacity(newSize int) {
	if newSize > len(ba.bits)*32 {
		newBits := makeArray(int(float64(newSize) / loadFactor))
		copy(newBits, ba.bits)
		ba.bits = newBits
	}
}

// Get returns true if bit i is set.
func (ba *BitArray) Get(i int) bool {
	return (ba.bits[i/32] & (1 << uint(i&0x1F))) != 0
}

// Set sets bit i.
func (ba *BitArray) Set(i int) {
	ba.bits[i/32] |= 1 << uint(i&0x1F)
}

// GetNextSet returns the index of the first set bit at or after from, or
// Size if there is none.
func (ba *BitArray) GetNextSet(from int) int {
	if from >= ba.size {
		return ba.size
	}
	bitsOffset := from / 32
	currentBits := ba.bits[bitsOffset]
	// mask off lesser bits
	currentBits &= ^uint32(0) << uint(from&0x1F)
	for currentBits == 0 {
		bitsOffset++
		if bitsOffset == len(ba.bits) {
			return ba.size
		}
		currentBits = ba.bits[bitsOffset]
	}
	return min(bitsOffset*32+bits.TrailingZeros32(currentBits), ba.size)
}

// GetNextUnset returns the index of the first unset bit at or after from, or
// Size if there is none.
func (ba *BitArray) GetNextUnset(from int) int {
	if from >= ba.size {
		return ba.size
	}
	bitsOffset := from / 32
	currentBits := ^ba.bits[bitsOffset]
	currentBits &= ^uint32(0) << uint(from&0x1F)
	for currentBits == 0 {
		bitsOffset++
		if bitsOffset == len(ba.bits) {
			return ba.size
		}
		currentBits = ^ba.bits[bitsOffset]
	}
	return min(bitsOffset*32+bits.TrailingZeros32(currentBits), ba.size)
}

// AppendBit appends a single bit.
func (ba *BitArray) AppendBit(bit bool) {
	ba.ensureCapacity(ba.size + 1)
	if bit {
		ba.bits[ba.size/32] |= 1 << uint(ba.size&0x1F)
	}
	ba.size++
}

// AppendBits appends the least-significant numBits bits of value, from most
// significant to least significant.
func (ba *BitArray) AppendBits(value uint32, numBits int) {
	if numBits < 0 || numBits > 32 {
		panic("bitarray: numBits must be between 0 and 32")
	}
	nextSize := ba.size
	ba.ensureCapacity(nextSize + numBits)
	for numBitsLeft := numBits - 1; numBitsLeft >= 0; numBitsLeft-- {
		if (value & (1 << uint(numBitsLeft))) != 0 {
			ba.bits[nextSize/32] |= 1 << uint(nextSize&0x1F)
		}
		nextSize++
	}
	ba.size = nextSize
}

// AppendBytes appends each byte as 8 bits.
func (ba *BitArray) AppendBytes(b []byte) {
	ba.ensureCapacity(ba.size + 8*len(b))
	for _, v := range b {
		ba.AppendBits(uint32(v), 8)
	}
}

// AppendRun appends length copies of bit.
func (ba *BitArray) AppendRun(length int, bit bool) {
	ba.ensureCapacity(ba.size + length)
	for i := 0; i < length; i++ {
		ba.AppendBit(bit)
	}
}

// Bytes packs the array into bytes, most significant bit first. A trailing
// partial byte is padded with zero bits.
func (ba *BitArray) Bytes() []byte {
	out := make([]byte, ba.SizeInBytes())
	for i := 0; i < ba.size; i++ {
		if ba.Get(i) {
			out[i/8] |= 1 << uint(7-i&0x07)
		}
	}
	return out
}

// RunLengths returns the lengths of alternating unset and set runs, starting
// with an unset run (zero when bit 0 is set) and ending with an unset run
// (zero when the last bit is set).
func (ba *BitArray) RunLengths() []int {
	var runs []int
	pos := 0
	for pos < ba.size {
		next := ba.GetNextSet(pos)
		runs = append(runs, next-pos)
		if next == ba.size {
			return runs
		}
		pos = ba.GetNextUnset(next)
		runs = append(runs, pos-next)
	}
	return append(runs, 0)
}

// String returns a representation using 'X' for set and '.' for unset, with
// a space before every eighth bit.
func (ba *BitArray) String() string {
	var sb strings.Builder
	sb.Grow(ba.size + ba.size/8 + 1)
	for i := 0; i < ba.size; i++ {
		if i&0x07 == 0 {
			sb.WriteByte(' ')
		}
		if ba.Get(i) {
			sb.WriteByte('X')
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}

func makeArray(size int) []uint32 {
	return make([]uint32, (size+31)/32)
}
