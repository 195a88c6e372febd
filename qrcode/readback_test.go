package qrcode

import (
	"errors"
	"fmt"

	"github.com/ericlevine/printsymbol"
	"github.com/ericlevine/printsymbol/bitutil"
	"github.com/ericlevine/printsymbol/reedsolomon"
)

// readback is a minimal byte mode reader for symbols produced by Encode. It
// locates nothing: the matrix must be the bare symbol without quiet zone.
type readback struct {
	level     printsymbol.ErrorLevel
	version   int
	mask      int
	codewords []byte
	corrected int
}

var errUnreadable = errors.New("unreadable symbol")

// readFormat reads the format word from column 8 and row 8 and returns its
// table index, or an error if the copies disagree.
func readFormat(m *bitutil.BitMatrix) (int, error) {
	size := m.Height()
	first, second := 0, 0
	for i := 0; i < 15; i++ {
		y := i
		switch {
		case i >= 8:
			y = size - 15 + i
		case i >= 6:
			y = i + 1
		}
		if m.Get(8, y) {
			first |= 1 << uint(i)
		}
		x := size - 1 - i
		switch {
		case i >= 9:
			x = 14 - i
		case i == 8:
			x = 7
		}
		if m.Get(x, 8) {
			second |= 1 << uint(i)
		}
	}
	if first != second {
		return 0, fmt.Errorf("%w: format copies %#x and %#x differ", errUnreadable, first, second)
	}
	for i, f := range formatInfo {
		if f == first {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown format word %#x", errUnreadable, first)
}

func readVersion(m *bitutil.BitMatrix) (int, error) {
	size := m.Height()
	version := (size - 17) / 4
	if size != Dimension(version) || version < 1 || version > maxVersion {
		return 0, fmt.Errorf("%w: size %d", errUnreadable, size)
	}
	if version < 7 {
		return version, nil
	}
	bits := 0
	i := 0
	for a := 0; a < 6; a++ {
		for b := size - 11; b < size-8; b++ {
			if m.Get(b, a) {
				bits |= 1 << uint(i)
			}
			i++
		}
	}
	if bits != versionInfo[version] {
		return 0, fmt.Errorf("%w: version word %#x for size %d", errUnreadable, bits, size)
	}
	return version, nil
}

// read recovers the codewords of a symbol.
func read(m *bitutil.BitMatrix) (*readback, error) {
	version, err := readVersion(m)
	if err != nil {
		return nil, err
	}
	format, err := readFormat(m)
	if err != nil {
		return nil, err
	}
	r := &readback{version: version, mask: format & 7}
	for level, bits := range levelBits {
		if bits == format>>3 {
			r.level = printsymbol.ErrorLevel(level)
		}
	}

	// Rebuild the function patterns to find the data modules.
	function := newByteMatrix(m.Height())
	embedFinderPatterns(function)
	embedAlignmentPatterns(function, version)
	embedTimingPatterns(function)
	embedFormatInfo(function, formatInfo[format])
	embedVersionInfo(function, version)

	bits := bitutil.NewBitArray(0)
	invert := maskFuncs[r.mask]
	for right := m.Width() - 1; right > 0; right -= 2 {
		if right == 6 {
			right--
		}
		upward := ((m.Width()-1-right)/2)%2 == 0
		for count := 0; count < m.Height(); count++ {
			y := count
			if upward {
				y = m.Height() - 1 - count
			}
			for x := right; x > right-2; x-- {
				if function.isEmpty(x, y) {
					bits.AppendBit(m.Get(x, y) != invert(y, x))
				}
			}
		}
	}
	r.codewords = bits.Bytes()
	return r, nil
}

// deinterleave splits raw codewords back into blocks.
func deinterleave(raw []byte, blocks ecBlocks) [][]byte {
	out := make([][]byte, blocks.numBlocks())
	for i := range out {
		n := blocks.total
		if i >= blocks.short {
			n++
		}
		out[i] = make([]byte, 0, n)
	}
	pos := 0
	for i := 0; i < blocks.total; i++ {
		if i == blocks.data {
			for j := blocks.short; j < len(out); j++ {
				out[j] = append(out[j], raw[pos])
				pos++
			}
		}
		for j := range out {
			out[j] = append(out[j], raw[pos])
			pos++
		}
	}
	return out
}

// payload corrects each block and parses the byte mode segment.
func (r *readback) payload() ([]byte, error) {
	blocks := ecTable[r.level][r.version]
	decoder := reedsolomon.NewDecoder(reedsolomon.QRCodeField256)
	var data []byte
	for i, block := range deinterleave(r.codewords, blocks) {
		n, err := decoder.DecodeBytes(block, blocks.ecLen())
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
		r.corrected += n
		data = append(data, block[:len(block)-blocks.ecLen()]...)
	}

	src := bitutil.NewBitSource(data)
	mode, err := src.ReadBits(4)
	if err != nil {
		return nil, err
	}
	if mode != modeByte {
		return nil, fmt.Errorf("%w: mode %#x", errUnreadable, mode)
	}
	count, err := src.ReadBits(8 * countBytes(r.version))
	if err != nil {
		return nil, err
	}
	out := make([]byte, count)
	for i := range out {
		b, err := src.ReadBits(8)
		if err != nil {
			return nil, err
		}
		out[i] = byte(b)
	}
	if terminator, err := src.ReadBits(4); err != nil || terminator != 0 {
		return nil, fmt.Errorf("%w: missing terminator", errUnreadable)
	}
	return out, nil
}
