package qrcode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericlevine/printsymbol"
	"github.com/ericlevine/printsymbol/bitutil"
	"github.com/ericlevine/printsymbol/reedsolomon"
)

var levels = []printsymbol.ErrorLevel{
	printsymbol.LevelL, printsymbol.LevelM, printsymbol.LevelQ, printsymbol.LevelH,
}

func TestCapacity(t *testing.T) {
	tests := []struct {
		level   printsymbol.ErrorLevel
		version int
		want    int
	}{
		{printsymbol.LevelL, 1, 17},
		{printsymbol.LevelM, 1, 14},
		{printsymbol.LevelQ, 1, 11},
		{printsymbol.LevelH, 1, 7},
		{printsymbol.LevelL, 9, 230},
		{printsymbol.LevelL, 10, 271},
		{printsymbol.LevelL, 40, 2953},
		{printsymbol.LevelM, 40, 2331},
		{printsymbol.LevelQ, 40, 1663},
		{printsymbol.LevelH, 40, 1273},
	}
	for _, tc := range tests {
		if got := Capacity(tc.level, tc.version); got != tc.want {
			t.Errorf("Capacity(%v, %d) = %d, want %d", tc.level, tc.version, got, tc.want)
		}
	}
}

func TestCapacityIncreases(t *testing.T) {
	for _, level := range levels {
		for v := 2; v <= maxVersion; v++ {
			if Capacity(level, v) <= Capacity(level, v-1) {
				t.Errorf("level %v: capacity of version %d does not exceed version %d", level, v, v-1)
			}
		}
	}
}

func TestECTableConsistent(t *testing.T) {
	// Total codewords depend on the version only.
	for v := 1; v <= maxVersion; v++ {
		want := ecTable[printsymbol.LevelL][v].totalBytes()
		for _, level := range levels {
			if got := ecTable[level][v].totalBytes(); got != want {
				t.Errorf("version %d level %v: %d codewords, want %d", v, level, got, want)
			}
		}
	}
	assert.Equal(t, 26, ecTable[printsymbol.LevelM][1].totalBytes())
	assert.Equal(t, 196, ecTable[printsymbol.LevelQ][7].totalBytes())
	assert.Equal(t, 3706, ecTable[printsymbol.LevelH][40].totalBytes())
}

func TestChooseVersion(t *testing.T) {
	assert.Equal(t, 1, ChooseVersion(0, printsymbol.LevelL))
	assert.Equal(t, 1, ChooseVersion(17, printsymbol.LevelL))
	assert.Equal(t, 2, ChooseVersion(18, printsymbol.LevelL))
	assert.Equal(t, 40, ChooseVersion(2953, printsymbol.LevelL))
	assert.Equal(t, 40, ChooseVersion(5000, printsymbol.LevelL))

	for _, level := range levels {
		for v := 1; v <= maxVersion; v++ {
			c := Capacity(level, v)
			if got := ChooseVersion(c, level); got != v {
				t.Errorf("ChooseVersion(%d, %v) = %d, want %d", c, level, got, v)
			}
			if v < maxVersion {
				if got := ChooseVersion(c+1, level); got != v+1 {
					t.Errorf("ChooseVersion(%d, %v) = %d, want %d", c+1, level, got, v+1)
				}
			}
		}
	}
}

func TestDataCodewords(t *testing.T) {
	blocks := ecTable[printsymbol.LevelL][1]
	got := dataCodewords([]byte("AB"), blocks, 1)
	want := []byte{0x40, 0x24, 0x14, 0x20}
	for i := 0; len(want) < blocks.dataBytes(); i++ {
		want = append(want, padCodewords[i%2])
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("dataCodewords mismatch (-want +got):\n%s", diff)
	}

	// Version 10 and up use a 16 bit character count.
	blocks = ecTable[printsymbol.LevelL][10]
	got = dataCodewords([]byte("A"), blocks, 10)
	assert.Equal(t, []byte{0x40, 0x00, 0x14, 0x10, 0xEC}, got[:5])
	assert.Len(t, got, blocks.dataBytes())
}

func TestInterleave(t *testing.T) {
	blocks := ecTable[printsymbol.LevelQ][5] // 2 x 15 and 2 x 16 data bytes
	require.Equal(t, ecBlocks{2, 2, 33, 15}, blocks)
	data := make([]byte, blocks.dataBytes())
	for i := range data {
		data[i] = byte(i)
	}
	got := interleave(data, blocks)
	require.Len(t, got, blocks.totalBytes())

	assert.Equal(t, []byte{0, 15, 30, 46, 1, 16, 31, 47}, got[:8])
	// the extra byte of each long block follows the shared columns
	assert.Equal(t, []byte{45, 61}, got[60:62])

	enc := reedsolomon.NewEncoder(reedsolomon.QRCodeField256)
	ec0 := enc.EncodeBytes(data[:15], blocks.ecLen())
	ec3 := enc.EncodeBytes(data[46:62], blocks.ecLen())
	assert.Equal(t, ec0[0], got[62])
	assert.Equal(t, ec3[0], got[65])
	assert.Equal(t, ec3[blocks.ecLen()-1], got[len(got)-1])
}

func TestFunctionPatterns(t *testing.T) {
	code := Encode("function patterns", printsymbol.LevelM)
	m := code.Matrix
	size := Dimension(code.Version)
	require.Equal(t, size, m.Width())

	finder := bitutil.ParseStringMatrix(strings.Join([]string{
		"#######.",
		"#.....#.",
		"#.###.#.",
		"#.###.#.",
		"#.###.#.",
		"#.....#.",
		"#######.",
		"........",
	}, "\n")+"\n", "#", ".")
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			want := finder.Get(x, y)
			assert.Equal(t, want, m.Get(x, y), "top left (%d,%d)", x, y)
			assert.Equal(t, want, m.Get(size-1-x, y), "top right (%d,%d)", x, y)
			assert.Equal(t, want, m.Get(x, size-1-y), "bottom left (%d,%d)", x, y)
		}
	}
	for i := 8; i < size-8; i++ {
		assert.Equal(t, i%2 == 0, m.Get(i, 6), "timing row at %d", i)
		assert.Equal(t, i%2 == 0, m.Get(6, i), "timing column at %d", i)
	}
	assert.True(t, m.Get(8, size-8), "dark module")

	format, err := readFormat(m)
	require.NoError(t, err)
	assert.Equal(t, levelBits[printsymbol.LevelM]<<3|code.Mask, format)
}

func TestAlignmentPatterns(t *testing.T) {
	payload := strings.Repeat("a", Capacity(printsymbol.LevelL, 7))
	code := Encode(payload, printsymbol.LevelL)
	require.Equal(t, 7, code.Version)
	m := code.Matrix

	// (22,22) is a plain alignment pattern; (6,22) sits on the timing row.
	for _, c := range [][2]int{{22, 22}, {22, 6}, {6, 22}, {38, 22}} {
		cx, cy := c[0], c[1]
		assert.True(t, m.Get(cx, cy), "centre %v", c)
		for d := -1; d <= 1; d++ {
			assert.False(t, m.Get(cx+d, cy-1), "inner ring %v", c)
			assert.False(t, m.Get(cx+d, cy+1), "inner ring %v", c)
		}
		assert.False(t, m.Get(cx-1, cy), "inner ring %v", c)
		assert.False(t, m.Get(cx+1, cy), "inner ring %v", c)
		for d := -2; d <= 2; d++ {
			assert.True(t, m.Get(cx+d, cy-2), "outer ring %v", c)
			assert.True(t, m.Get(cx+d, cy+2), "outer ring %v", c)
			assert.True(t, m.Get(cx-2, cy+d), "outer ring %v", c)
			assert.True(t, m.Get(cx+2, cy+d), "outer ring %v", c)
		}
	}

	version, err := readVersion(m)
	require.NoError(t, err)
	assert.Equal(t, 7, version)
}

func TestEveryModuleAssignedOnce(t *testing.T) {
	for _, version := range []int{1, 2, 7, 14, 40} {
		m := newByteMatrix(Dimension(version))
		embedFinderPatterns(m)
		embedAlignmentPatterns(m, version)
		embedTimingPatterns(m)
		embedFormatInfo(m, formatInfo[0])
		embedVersionInfo(m, version)

		free := 0
		for y := 0; y < m.size; y++ {
			for x := 0; x < m.size; x++ {
				if m.isEmpty(x, y) {
					free++
				}
			}
		}
		blocks := ecTable[printsymbol.LevelL][version]
		remainder := free - 8*blocks.totalBytes()
		if remainder < 0 || remainder > 7 {
			t.Errorf("version %d: %d free modules for %d codewords", version, free, blocks.totalBytes())
		}

		embedDataBits(m, make([]byte, blocks.totalBytes()), 0)
		for y := 0; y < m.size; y++ {
			for x := 0; x < m.size; x++ {
				if m.isEmpty(x, y) {
					t.Fatalf("version %d: module (%d,%d) left empty", version, x, y)
				}
			}
		}
	}
}

func TestReadBack(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		level printsymbol.ErrorLevel
	}{
		{"short", "Hello", printsymbol.LevelL},
		{"empty", "", printsymbol.LevelH},
		{"url", "https://example.com/receipt?id=0042&total=12.80", printsymbol.LevelM},
		{"multibyte", "領収書 ¥1,280 ありがとうございました", printsymbol.LevelQ},
		{"long blocks", strings.Repeat("0123456789", 12), printsymbol.LevelQ},
		{"two byte count", strings.Repeat("x", 300), printsymbol.LevelL},
		{"large", strings.Repeat("receipt line\n", 100), printsymbol.LevelH},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code := Encode(tc.data, tc.level)
			r, err := read(code.Matrix)
			require.NoError(t, err)
			assert.Equal(t, tc.level, r.level)
			assert.Equal(t, code.Version, r.version)
			assert.Equal(t, code.Mask, r.mask)

			got, err := r.payload()
			require.NoError(t, err)
			assert.Zero(t, r.corrected)
			assert.Equal(t, tc.data, string(got))
		})
	}
}

func TestReadBackCorrectsErrors(t *testing.T) {
	data := "The quick brown fox jumps over the lazy dog"
	for _, level := range levels {
		code := Encode(data, level)
		blocks := ecTable[level][code.Version]
		r, err := read(code.Matrix)
		require.NoError(t, err)

		// Corrupt the first codewords; each lands in a different block and
		// each block tolerates ecLen/2 errors.
		n := min(blocks.numBlocks(), blocks.ecLen()/2)
		for i := 0; i < n; i++ {
			r.codewords[i] ^= 0x5A
		}
		got, err := r.payload()
		require.NoError(t, err, "level %v", level)
		assert.Equal(t, n, r.corrected)
		assert.Equal(t, data, string(got))
	}
}

func TestChosenMaskHasLowestPenalty(t *testing.T) {
	for _, level := range levels {
		code := Encode("mask selection", level)
		blocks := ecTable[level][code.Version]
		codewords := interleave(dataCodewords(code.Payload, blocks, code.Version), blocks)

		penalties := make([]int, numMaskPatterns)
		for mask := range penalties {
			penalties[mask] = maskPenalty(buildMatrix(codewords, level, code.Version, mask))
		}
		for mask, p := range penalties {
			if p < penalties[code.Mask] || (p == penalties[code.Mask] && mask < code.Mask) {
				t.Errorf("level %v: mask %d (%d) beats chosen mask %d (%d)",
					level, mask, p, code.Mask, penalties[code.Mask])
			}
		}
		assert.True(t, buildMatrix(codewords, level, code.Version, code.Mask).Equals(code.Matrix))
	}
}

func TestPenaltyRules(t *testing.T) {
	assert.Equal(t, 0, penaltyRule1([]int{4, 4, 4}))
	assert.Equal(t, 7, penaltyRule1([]int{0, 5, 6}))

	assert.Equal(t, 40, penaltyRule3([]int{4, 1, 1, 3, 1, 1, 0}))
	assert.Equal(t, 40, penaltyRule3([]int{0, 1, 1, 3, 1, 1, 2}))
	assert.Equal(t, 40, penaltyRule3([]int{2, 2, 3, 1, 1, 3, 1, 1, 4}))
	assert.Equal(t, 0, penaltyRule3([]int{2, 2, 3, 1, 1, 3, 1, 1, 3, 2, 2}))
	assert.Equal(t, 0, penaltyRule3([]int{4, 1, 1, 2, 1, 1, 4}))

	blank := bitutil.NewBitMatrix(21)
	assert.Equal(t, 20*20*3, penaltyRule2(blank))
	assert.Equal(t, 90, penaltyRule4(blank))

	half := bitutil.NewBitMatrixWithSize(10, 10)
	half.SetRegion(0, 0, 5, 10)
	assert.Equal(t, -10, penaltyRule4(half))
	half.Set(9, 9)
	assert.Equal(t, 0, penaltyRule4(half))
}

func TestPayload(t *testing.T) {
	assert.Equal(t, []byte("a\uFFFDb"), Payload("a\xffb", printsymbol.LevelL))
	assert.Equal(t, []byte("¥"), Payload("¥", printsymbol.LevelL))

	long := strings.Repeat("x", 3000)
	for _, level := range levels {
		got := Payload(long, level)
		assert.Len(t, got, Capacity(level, maxVersion))
	}

	code := Encode(long, printsymbol.LevelH)
	assert.Equal(t, maxVersion, code.Version)
	r, err := read(code.Matrix)
	require.NoError(t, err)
	got, err := r.payload()
	require.NoError(t, err)
	assert.True(t, bytes.Equal(got, []byte(long[:Capacity(printsymbol.LevelH, maxVersion)])))
}

func TestWriter(t *testing.T) {
	req := printsymbol.Request{
		Data:      "https://example.com",
		Symbology: printsymbol.QRCode,
		CellSize:  5,
		Level:     printsymbol.LevelQ,
	}
	bare, err := printsymbol.EncodeMatrix(req)
	require.NoError(t, err)
	assert.Equal(t, Dimension(bare.Version), bare.Size())
	assert.Equal(t, 5, bare.CellSize)
	assert.Equal(t, printsymbol.LevelQ, bare.Level)

	req.QuietZone = true
	padded, err := printsymbol.EncodeMatrix(req)
	require.NoError(t, err)
	assert.Equal(t, bare.Size()+2*quietZoneSize, padded.Size())
	assert.Equal(t, bare.Mask, padded.Mask)
	assert.Equal(t, bare.Modules.CountSet(), padded.Modules.CountSet())
	for i := 0; i < padded.Size(); i++ {
		for d := 0; d < quietZoneSize; d++ {
			assert.False(t, padded.Dark(i, d))
			assert.False(t, padded.Dark(d, i))
			assert.False(t, padded.Dark(i, padded.Size()-1-d))
			assert.False(t, padded.Dark(padded.Size()-1-d, i))
		}
	}
	for y := 0; y < bare.Size(); y++ {
		for x := 0; x < bare.Size(); x++ {
			if bare.Dark(x, y) != padded.Dark(x+quietZoneSize, y+quietZoneSize) {
				t.Fatalf("module (%d,%d) moved", x, y)
			}
		}
	}
}
