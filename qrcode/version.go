package qrcode

import (
	"sort"

	"github.com/ericlevine/printsymbol"
)

const maxVersion = 40

// ecBlocks describes the Reed-Solomon blocks of one version at one level:
// short blocks of data bytes each, then long blocks of data+1 bytes. Every
// block carries total-data error correction bytes.
type ecBlocks struct {
	short, long int
	total, data int
}

func (b ecBlocks) ecLen() int { return b.total - b.data }

func (b ecBlocks) numBlocks() int { return b.short + b.long }

// dataBytes is the number of data codewords in the symbol.
func (b ecBlocks) dataBytes() int { return b.short*b.data + b.long*(b.data+1) }

// totalBytes is the number of codewords in the symbol.
func (b ecBlocks) totalBytes() int { return b.short*b.total + b.long*(b.total+1) }

// ecTable is indexed by level (L, M, Q, H) and version.
var ecTable = [4][maxVersion + 1]ecBlocks{
	{ // L
		{}, {1, 0, 26, 19}, {1, 0, 44, 34}, {1, 0, 70, 55}, {1, 0, 100, 80},
		{1, 0, 134, 108}, {2, 0, 86, 68}, {2, 0, 98, 78}, {2, 0, 121, 97},
		{2, 0, 146, 116}, {2, 2, 86, 68}, {4, 0, 101, 81}, {2, 2, 116, 92},
		{4, 0, 133, 107}, {3, 1, 145, 115}, {5, 1, 109, 87}, {5, 1, 122, 98},
		{1, 5, 135, 107}, {5, 1, 150, 120}, {3, 4, 141, 113}, {3, 5, 135, 107},
		{4, 4, 144, 116}, {2, 7, 139, 111}, {4, 5, 151, 121}, {6, 4, 147, 117},
		{8, 4, 132, 106}, {10, 2, 142, 114}, {8, 4, 152, 122}, {3, 10, 147, 117},
		{7, 7, 146, 116}, {5, 10, 145, 115}, {13, 3, 145, 115}, {17, 0, 145, 115},
		{17, 1, 145, 115}, {13, 6, 145, 115}, {12, 7, 151, 121}, {6, 14, 151, 121},
		{17, 4, 152, 122}, {4, 18, 152, 122}, {20, 4, 147, 117}, {19, 6, 148, 118},
	},
	{ // M
		{}, {1, 0, 26, 16}, {1, 0, 44, 28}, {1, 0, 70, 44}, {2, 0, 50, 32},
		{2, 0, 67, 43}, {4, 0, 43, 27}, {4, 0, 49, 31}, {2, 2, 60, 38},
		{3, 2, 58, 36}, {4, 1, 69, 43}, {1, 4, 80, 50}, {6, 2, 58, 36},
		{8, 1, 59, 37}, {4, 5, 64, 40}, {5, 5, 65, 41}, {7, 3, 73, 45},
		{10, 1, 74, 46}, {9, 4, 69, 43}, {3, 11, 70, 44}, {3, 13, 67, 41},
		{17, 0, 68, 42}, {17, 0, 74, 46}, {4, 14, 75, 47}, {6, 14, 73, 45},
		{8, 13, 75, 47}, {19, 4, 74, 46}, {22, 3, 73, 45}, {3, 23, 73, 45},
		{21, 7, 73, 45}, {19, 10, 75, 47}, {2, 29, 74, 46}, {10, 23, 74, 46},
		{14, 21, 74, 46}, {14, 23, 74, 46}, {12, 26, 75, 47}, {6, 34, 75, 47},
		{29, 14, 74, 46}, {13, 32, 74, 46}, {40, 7, 75, 47}, {18, 31, 75, 47},
	},
	{ // Q
		{}, {1, 0, 26, 13}, {1, 0, 44, 22}, {2, 0, 35, 17}, {2, 0, 50, 24},
		{2, 2, 33, 15}, {4, 0, 43, 19}, {2, 4, 32, 14}, {4, 2, 40, 18},
		{4, 4, 36, 16}, {6, 2, 43, 19}, {4, 4, 50, 22}, {4, 6, 46, 20},
		{8, 4, 44, 20}, {11, 5, 36, 16}, {5, 7, 54, 24}, {15, 2, 43, 19},
		{1, 15, 50, 22}, {17, 1, 50, 22}, {17, 4, 47, 21}, {15, 5, 54, 24},
		{17, 6, 50, 22}, {7, 16, 54, 24}, {11, 14, 54, 24}, {11, 16, 54, 24},
		{7, 22, 54, 24}, {28, 6, 50, 22}, {8, 26, 53, 23}, {4, 31, 54, 24},
		{1, 37, 53, 23}, {15, 25, 54, 24}, {42, 1, 54, 24}, {10, 35, 54, 24},
		{29, 19, 54, 24}, {44, 7, 54, 24}, {39, 14, 54, 24}, {46, 10, 54, 24},
		{49, 10, 54, 24}, {48, 14, 54, 24}, {43, 22, 54, 24}, {34, 34, 54, 24},
	},
	{ // H
		{}, {1, 0, 26, 9}, {1, 0, 44, 16}, {2, 0, 35, 13}, {4, 0, 25, 9},
		{2, 2, 33, 11}, {4, 0, 43, 15}, {4, 1, 39, 13}, {4, 2, 40, 14},
		{4, 4, 36, 12}, {6, 2, 43, 15}, {3, 8, 36, 12}, {7, 4, 42, 14},
		{12, 4, 33, 11}, {11, 5, 36, 12}, {11, 7, 36, 12}, {3, 13, 45, 15},
		{2, 17, 42, 14}, {2, 19, 42, 14}, {9, 16, 39, 13}, {15, 10, 43, 15},
		{19, 6, 46, 16}, {34, 0, 37, 13}, {16, 14, 45, 15}, {30, 2, 46, 16},
		{22, 13, 45, 15}, {33, 4, 46, 16}, {12, 28, 45, 15}, {11, 31, 45, 15},
		{19, 26, 45, 15}, {23, 25, 45, 15}, {23, 28, 45, 15}, {19, 35, 45, 15},
		{11, 46, 45, 15}, {59, 1, 46, 16}, {22, 41, 45, 15}, {2, 64, 45, 15},
		{24, 46, 45, 15}, {42, 32, 45, 15}, {10, 67, 45, 15}, {20, 61, 45, 15},
	},
}

// alignmentCenters lists the alignment pattern row/column coordinates.
var alignmentCenters = [maxVersion + 1][]int{
	{}, {}, {6, 18}, {6, 22}, {6, 26}, {6, 30}, {6, 34},
	{6, 22, 38}, {6, 24, 42}, {6, 26, 46}, {6, 28, 50}, {6, 30, 54}, {6, 32, 58}, {6, 34, 62},
	{6, 26, 46, 66}, {6, 26, 48, 70}, {6, 26, 50, 74}, {6, 30, 54, 78}, {6, 30, 56, 82},
	{6, 30, 58, 86}, {6, 34, 62, 90},
	{6, 28, 50, 72, 94}, {6, 26, 50, 74, 98}, {6, 30, 54, 78, 102}, {6, 28, 54, 80, 106},
	{6, 32, 58, 84, 110}, {6, 30, 58, 86, 114}, {6, 34, 62, 90, 118},
	{6, 26, 50, 74, 98, 122}, {6, 30, 54, 78, 102, 126}, {6, 26, 52, 78, 104, 130},
	{6, 30, 56, 82, 108, 134}, {6, 34, 60, 86, 112, 138}, {6, 30, 58, 86, 114, 142},
	{6, 34, 62, 90, 118, 146},
	{6, 30, 54, 78, 102, 126, 150}, {6, 24, 50, 76, 102, 128, 154}, {6, 28, 54, 80, 106, 132, 158},
	{6, 32, 58, 84, 110, 136, 162}, {6, 26, 54, 82, 110, 138, 166}, {6, 30, 58, 86, 114, 142, 170},
}

// formatInfo holds the masked BCH(15,5) format words indexed by
// levelBits<<3 | mask.
var formatInfo = [32]int{
	0x5412, 0x5125, 0x5E7C, 0x5B4B, 0x45F9, 0x40CE, 0x4F97, 0x4AA0,
	0x77C4, 0x72F3, 0x7DAA, 0x789D, 0x662F, 0x6318, 0x6C41, 0x6976,
	0x1689, 0x13BE, 0x1CE7, 0x19D0, 0x0762, 0x0255, 0x0D0C, 0x083B,
	0x355F, 0x3068, 0x3F31, 0x3A06, 0x24B4, 0x2183, 0x2EDA, 0x2BED,
}

// levelBits are the two format bits of each level.
var levelBits = [4]int{
	printsymbol.LevelL: 1,
	printsymbol.LevelM: 0,
	printsymbol.LevelQ: 3,
	printsymbol.LevelH: 2,
}

// versionInfo holds the 18 bit version words for versions 7 and up.
var versionInfo = [maxVersion + 1]int{
	0, 0, 0, 0, 0, 0, 0, 0x07C94, 0x085BC, 0x09A99, 0x0A4D3,
	0x0BBF6, 0x0C762, 0x0D847, 0x0E60D, 0x0F928,
	0x10B78, 0x1145D, 0x12A17, 0x13532, 0x149A6,
	0x15683, 0x168C9, 0x177EC, 0x18EC4, 0x191E1,
	0x1AFAB, 0x1B08E, 0x1CC1A, 0x1D33F, 0x1ED75,
	0x1F250, 0x209D5, 0x216F0, 0x228BA, 0x2379F,
	0x24B0B, 0x2542E, 0x26A64, 0x27541, 0x28C69,
}

// Dimension returns the side length of a symbol in modules.
func Dimension(version int) int {
	return 4*version + 17
}

// countBytes is the size of the byte mode character count.
func countBytes(version int) int {
	if version < 10 {
		return 1
	}
	return 2
}

// Capacity returns the number of payload bytes a byte mode symbol of the
// given level and version holds. The mode indicator, character count and
// terminator take the remaining data codewords.
func Capacity(level printsymbol.ErrorLevel, version int) int {
	return ecTable[level][version].dataBytes() - countBytes(version) - 1
}

// ChooseVersion returns the smallest version whose capacity at level holds
// n payload bytes, or 40 when none does.
func ChooseVersion(n int, level printsymbol.ErrorLevel) int {
	v := sort.Search(maxVersion, func(i int) bool {
		return Capacity(level, i+1) >= n
	}) + 1
	return min(v, maxVersion)
}
