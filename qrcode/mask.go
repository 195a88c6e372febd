package qrcode

import (
	"github.com/ericlevine/printsymbol/bitutil"
)

const numMaskPatterns = 8

// maskFuncs report whether the data module at row i, column j is inverted.
var maskFuncs = [numMaskPatterns]func(i, j int) bool{
	func(i, j int) bool { return (i+j)%2 == 0 },
	func(i, j int) bool { return i%2 == 0 },
	func(i, j int) bool { return j%3 == 0 },
	func(i, j int) bool { return (i+j)%3 == 0 },
	func(i, j int) bool { return (i/2+j/3)%2 == 0 },
	func(i, j int) bool { return (i*j)%2+(i*j)%3 == 0 },
	func(i, j int) bool { return ((i*j)%2+(i*j)%3)%2 == 0 },
	func(i, j int) bool { return ((i*j)%3+(i+j)%2)%2 == 0 },
}

// finderRuns is the 1:1:3:1:1 dark/light/dark/light/dark sequence.
var finderRuns = [5]int{1, 1, 3, 1, 1}

// maskPenalty scores a finished symbol; lower is better.
func maskPenalty(m *bitutil.BitMatrix) int {
	penalty := 0
	for i := 0; i < m.Height(); i++ {
		for _, runs := range [2][]int{m.Row(i).RunLengths(), column(m, i).RunLengths()} {
			penalty += penaltyRule1(runs) + penaltyRule3(runs)
		}
	}
	return penalty + penaltyRule2(m) + penaltyRule4(m)
}

func column(m *bitutil.BitMatrix, x int) *bitutil.BitArray {
	col := bitutil.NewBitArray(m.Height())
	for y := 0; y < m.Height(); y++ {
		if m.Get(x, y) {
			col.Set(y)
		}
	}
	return col
}

// penaltyRule1 charges len-2 for every run of five or more modules of one
// color. runs alternates light and dark starting with light.
func penaltyRule1(runs []int) int {
	penalty := 0
	for _, r := range runs {
		if r >= 5 {
			penalty += r - 2
		}
	}
	return penalty
}

// penaltyRule2 charges 3 for every 2x2 block of one color.
func penaltyRule2(m *bitutil.BitMatrix) int {
	penalty := 0
	for y := 1; y < m.Height(); y++ {
		for x := 1; x < m.Width(); x++ {
			v := m.Get(x, y)
			if v == m.Get(x-1, y) && v == m.Get(x, y-1) && v == m.Get(x-1, y-1) {
				penalty += 3
			}
		}
	}
	return penalty
}

// penaltyRule3 charges 40 for every finder-like 1:1:3:1:1 dark run sequence
// with four light modules or the symbol edge on either side.
func penaltyRule3(runs []int) int {
	penalty := 0
	for i := 1; i < len(runs)-5; i += 2 {
		if [5]int(runs[i:i+5]) != finderRuns {
			continue
		}
		if i == 1 || runs[i-1] >= 4 || i == len(runs)-6 || runs[i+5] >= 4 {
			penalty += 40
		}
	}
	return penalty
}

// penaltyRule4 charges 10 for every started 5% step the dark share deviates
// from one half, less 10.
func penaltyRule4(m *bitutil.BitMatrix) int {
	total := m.Width() * m.Height()
	deviation := 100*m.CountSet() - 50*total
	if deviation < 0 {
		deviation = -deviation
	}
	steps := (deviation + 5*total - 1) / (5 * total)
	return steps*10 - 10
}
