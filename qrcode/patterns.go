package qrcode

// finderPattern is the 7x7 finder pattern with its one module separator on
// the right and bottom. It is mirrored for the other corners.
var finderPattern = [8][8]byte{
	{1, 1, 1, 1, 1, 1, 1, 0},
	{1, 0, 0, 0, 0, 0, 1, 0},
	{1, 0, 1, 1, 1, 0, 1, 0},
	{1, 0, 1, 1, 1, 0, 1, 0},
	{1, 0, 1, 1, 1, 0, 1, 0},
	{1, 0, 0, 0, 0, 0, 1, 0},
	{1, 1, 1, 1, 1, 1, 1, 0},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

var alignmentPattern = [5][5]byte{
	{1, 1, 1, 1, 1},
	{1, 0, 0, 0, 1},
	{1, 0, 1, 0, 1},
	{1, 0, 0, 0, 1},
	{1, 1, 1, 1, 1},
}

// embedFinderPatterns draws the three finder patterns and separators.
func embedFinderPatterns(m *byteMatrix) {
	last := m.size - 1
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			v := finderPattern[y][x]
			m.set(x, y, v)
			m.set(last-x, y, v)
			m.set(x, last-y, v)
		}
	}
}

// embedAlignmentPatterns draws every alignment pattern whose centre is still
// free, which leaves out the three that would overlap finder patterns.
func embedAlignmentPatterns(m *byteMatrix, version int) {
	centers := alignmentCenters[version]
	for _, cy := range centers {
		for _, cx := range centers {
			if !m.isEmpty(cx, cy) {
				continue
			}
			for y := 0; y < 5; y++ {
				for x := 0; x < 5; x++ {
					m.set(cx-2+x, cy-2+y, alignmentPattern[y][x])
				}
			}
		}
	}
}

// embedTimingPatterns draws row and column 6. Alignment patterns crossing
// them agree on every module.
func embedTimingPatterns(m *byteMatrix) {
	for i := 8; i < m.size-8; i++ {
		bit := byte(1 - i%2)
		m.set(i, 6, bit)
		m.set(6, i, bit)
	}
}

// embedFormatInfo writes both copies of the format word, least significant
// bit first, and the dark module.
func embedFormatInfo(m *byteMatrix, bits int) {
	for i := 0; i < 15; i++ {
		bit := byte(bits >> uint(i) & 1)

		// column 8 from the top, skipping the timing row, then the
		// bottom left
		y := i
		switch {
		case i >= 8:
			y = m.size - 15 + i
		case i >= 6:
			y = i + 1
		}
		m.set(8, y, bit)

		// row 8 from the right, then the top left skipping the timing
		// column
		x := m.size - 1 - i
		switch {
		case i >= 9:
			x = 14 - i
		case i == 8:
			x = 7
		}
		m.set(x, 8, bit)
	}
	m.set(8, m.size-8, 1)
}

// embedVersionInfo writes both 6x3 copies of the version word for versions
// 7 and up.
func embedVersionInfo(m *byteMatrix, version int) {
	if version < 7 {
		return
	}
	bits := versionInfo[version]
	i := 0
	for a := 0; a < 6; a++ {
		for b := m.size - 11; b < m.size-8; b++ {
			bit := byte(bits >> uint(i) & 1)
			i++
			m.set(b, a, bit)
			m.set(a, b, bit)
		}
	}
}
