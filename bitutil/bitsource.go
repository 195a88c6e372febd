package bitutil

import "fmt"

// BitSource reads bits from a byte sequence where the number of bits read
// is not necessarily a multiple of 8. Bits are read from the first byte
// first, most significant bit first.
type BitSource struct {
	bytes      []byte
	byteOffset int
	bitOffset  int
}

// NewBitSource creates a new BitSource from a byte slice.
func NewBitSource(bytes []byte) *BitSource {
	return &BitSource{bytes: bytes}
}

// ReadBits reads numBits bits and returns them as the least-significant bits
// of an int.
func (bs *BitSource) ReadBits(numBits int) (int, error) {
	if numBits < 1 || numBits > 32 || numBits > bs.Available() {
		return 0, &BitSourceError{NumBits: numBits, Available: bs.Available()}
	}

	result := 0
	for numBits > 0 {
		bitsLeft := 8 - bs.bitOffset
		toRead := min(numBits, bitsLeft)
		shift := bitsLeft - toRead
		mask := (1<<uint(toRead) - 1) << uint(shift)
		result = result<<uint(toRead) | (int(bs.bytes[bs.byteOffset])&mask)>>uint(shift)
		numBits -= toRead
		bs.bitOffset += toRead
		if bs.bitOffset == 8 {
			bs.bitOffset = 0
			bs.byteOffset++
		}
	}
	return result, nil
}

// Available returns the number of bits that can still be read.
func (bs *BitSource) Available() int {
	return 8*(len(bs.bytes)-bs.byteOffset) - bs.bitOffset
}

// BitSourceError is returned when an invalid number of bits is requested.
type BitSourceError struct {
	NumBits   int
	Available int
}

func (e *BitSourceError) Error() string {
	return fmt.Sprintf("bitsource: cannot read %d bits, %d available", e.NumBits, e.Available)
}
