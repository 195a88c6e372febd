package qrcode

import (
	"github.com/ericlevine/printsymbol/bitutil"
	"github.com/ericlevine/printsymbol/reedsolomon"
)

const modeByte = 0x4

// Pad codewords fill unused data capacity alternately.
var padCodewords = [2]byte{0xEC, 0x11}

// dataCodewords builds the data codewords of a byte mode segment: mode
// indicator, character count, payload, terminator and padding.
func dataCodewords(payload []byte, blocks ecBlocks, version int) []byte {
	bits := bitutil.NewBitArray(0)
	bits.AppendBits(modeByte, 4)
	bits.AppendBits(uint32(len(payload)), 8*countBytes(version))
	bits.AppendBytes(payload)
	bits.AppendBits(0, 4)

	data := bits.Bytes()
	for i := 0; len(data) < blocks.dataBytes(); i++ {
		data = append(data, padCodewords[i%2])
	}
	return data
}

// interleave splits data into blocks, appends the error correction bytes of
// each and interleaves them column by column. The extra data byte of the
// long blocks is emitted after the last column shared by all blocks.
func interleave(data []byte, blocks ecBlocks) []byte {
	encoder := reedsolomon.NewEncoder(reedsolomon.QRCodeField256)
	codewords := make([][]byte, blocks.numBlocks())
	offset := 0
	for i := range codewords {
		n := blocks.data
		if i >= blocks.short {
			n++
		}
		block := make([]byte, 0, n+blocks.ecLen())
		block = append(block, data[offset:offset+n]...)
		codewords[i] = append(block, encoder.EncodeBytes(block, blocks.ecLen())...)
		offset += n
	}

	result := make([]byte, 0, blocks.totalBytes())
	for i := 0; i < blocks.total; i++ {
		if i == blocks.data {
			for _, block := range codewords[blocks.short:] {
				result = append(result, block[blocks.data])
			}
		}
		for j, block := range codewords {
			if i < blocks.data || j < blocks.short {
				result = append(result, block[i])
			} else {
				result = append(result, block[i+1])
			}
		}
	}
	return result
}
