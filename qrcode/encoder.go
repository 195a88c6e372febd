// Package qrcode encodes byte mode QR Code symbols.
//
// The writer registers itself with the printsymbol registry on import:
//
//	import _ "github.com/ericlevine/printsymbol/qrcode"
package qrcode

import (
	"math"

	"golang.org/x/text/encoding/unicode"

	"github.com/ericlevine/printsymbol"
	"github.com/ericlevine/printsymbol/bitutil"
)

// QRCode is an encoded symbol without quiet zone.
type QRCode struct {
	Level   printsymbol.ErrorLevel
	Version int
	Mask    int
	Payload []byte
	Matrix  *bitutil.BitMatrix
}

// Encode encodes data in byte mode at the given level. Ill-formed UTF-8 is
// replaced with U+FFFD and payloads longer than a version 40 symbol holds
// are truncated.
func Encode(data string, level printsymbol.ErrorLevel) *QRCode {
	payload := Payload(data, level)
	version := ChooseVersion(len(payload), level)
	blocks := ecTable[level][version]
	codewords := interleave(dataCodewords(payload, blocks, version), blocks)

	bestMask := 0
	bestPenalty := math.MaxInt
	var best *bitutil.BitMatrix
	for mask := 0; mask < numMaskPatterns; mask++ {
		m := buildMatrix(codewords, level, version, mask)
		if penalty := maskPenalty(m); penalty < bestPenalty {
			bestMask, bestPenalty, best = mask, penalty, m
		}
	}
	return &QRCode{
		Level:   level,
		Version: version,
		Mask:    bestMask,
		Payload: payload,
		Matrix:  best,
	}
}

// Payload returns the bytes a symbol for data carries: its UTF-8 form cut to
// the version 40 capacity of level.
func Payload(data string, level printsymbol.ErrorLevel) []byte {
	b, err := unicode.UTF8.NewEncoder().Bytes([]byte(data))
	if err != nil {
		b = []byte(data)
	}
	if limit := Capacity(level, maxVersion); len(b) > limit {
		b = b[:limit]
	}
	return b
}

// buildMatrix lays out a complete symbol. Every module is assigned exactly
// once, fixed patterns first.
func buildMatrix(codewords []byte, level printsymbol.ErrorLevel, version, mask int) *bitutil.BitMatrix {
	m := newByteMatrix(Dimension(version))
	embedFinderPatterns(m)
	embedAlignmentPatterns(m, version)
	embedTimingPatterns(m)
	embedFormatInfo(m, formatInfo[levelBits[level]<<3|mask])
	embedVersionInfo(m, version)
	embedDataBits(m, codewords, mask)
	return m.toBitMatrix()
}

// embedDataBits fills the empty modules two columns at a time from the
// bottom right, moving up and down alternately and skipping the timing
// column. Modules left over once the codewords run out are light before
// masking.
func embedDataBits(m *byteMatrix, codewords []byte, mask int) {
	bits := bitutil.NewBitArray(0)
	bits.AppendBytes(codewords)
	index := 0
	invert := maskFuncs[mask]

	for right := m.size - 1; right > 0; right -= 2 {
		if right == 6 {
			right--
		}
		upward := ((m.size-1-right)/2)%2 == 0
		for count := 0; count < m.size; count++ {
			y := count
			if upward {
				y = m.size - 1 - count
			}
			for x := right; x > right-2; x-- {
				if !m.isEmpty(x, y) {
					continue
				}
				bit := index < bits.Size() && bits.Get(index)
				index++
				if invert(y, x) {
					bit = !bit
				}
				if bit {
					m.set(x, y, 1)
				} else {
					m.set(x, y, 0)
				}
			}
		}
	}
}
