package qrcode

import "github.com/ericlevine/printsymbol/bitutil"

// empty marks a module no pass has assigned yet.
const empty = 0xFF

// byteMatrix is the tri-state module grid a symbol is built in: 0 light,
// 1 dark, empty unassigned.
type byteMatrix struct {
	data [][]byte
	size int
}

func newByteMatrix(size int) *byteMatrix {
	data := make([][]byte, size)
	for i := range data {
		data[i] = make([]byte, size)
		for j := range data[i] {
			data[i][j] = empty
		}
	}
	return &byteMatrix{data: data, size: size}
}

func (m *byteMatrix) get(x, y int) byte { return m.data[y][x] }

func (m *byteMatrix) set(x, y int, v byte) { m.data[y][x] = v }

func (m *byteMatrix) isEmpty(x, y int) bool { return m.data[y][x] == empty }

// toBitMatrix converts a fully assigned grid; set bits are dark modules.
func (m *byteMatrix) toBitMatrix() *bitutil.BitMatrix {
	bm := bitutil.NewBitMatrix(m.size)
	for y, row := range m.data {
		for x, v := range row {
			if v == 1 {
				bm.Set(x, y)
			}
		}
	}
	return bm
}
