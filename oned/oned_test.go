package oned

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericlevine/printsymbol"
)

func request(sym printsymbol.Symbology, data string, width int, qz bool) printsymbol.Request {
	return printsymbol.Request{
		Data:        data,
		Symbology:   sym,
		ModuleWidth: width,
		BarHeight:   40,
		QuietZone:   qz,
	}
}

func encode(t *testing.T, req printsymbol.Request) *printsymbol.Form {
	t.Helper()
	form, err := printsymbol.EncodeBarcode(req)
	require.NoError(t, err)
	return form
}

func sum(runs []int) int {
	total := 0
	for _, r := range runs {
		total += r
	}
	return total
}

// checkRuns verifies the run list shape shared by every symbology.
func checkRuns(t *testing.T, form *printsymbol.Form, qz bool) {
	t.Helper()
	require.True(t, form.Valid())
	require.Equal(t, 1, len(form.Runs)%2, "runs must start and end with a space")
	assert.Equal(t, form.Width, sum(form.Runs))
	if !qz {
		assert.Zero(t, form.Runs[0])
		assert.Zero(t, form.Runs[len(form.Runs)-1])
	}
	for i := 1; i < len(form.Runs)-1; i++ {
		if form.Runs[i] <= 0 {
			t.Fatalf("run %d is empty: %v", i, form.Runs)
		}
	}
}

func TestClosedFormWidths(t *testing.T) {
	code39Char := [3]int{29, 45, 58}
	itfDigit := [3]int{16, 25, 32}
	itfFixed := [3]int{17, 26, 34}
	codabarChar := [3]int{25, 39, 50}
	codabarNarrow := [3]int{3, 5, 6}

	tests := []struct {
		name string
		sym  printsymbol.Symbology
		data string
		want func(w int, qz bool) int
	}{
		{"ean13", printsymbol.EAN, "400638133393", func(w int, qz bool) int {
			return w * pick(qz, 113, ean13CodeWidth)
		}},
		{"jan13", printsymbol.JAN, "4912345678904", func(w int, qz bool) int {
			return w * pick(qz, 113, ean13CodeWidth)
		}},
		{"ean8", printsymbol.EAN, "9638507", func(w int, qz bool) int {
			return w * pick(qz, 81, ean8CodeWidth)
		}},
		{"upca", printsymbol.UPC, "03600029145", func(w int, qz bool) int {
			return w * pick(qz, 113, ean13CodeWidth)
		}},
		{"upce", printsymbol.UPC, "0123456", func(w int, qz bool) int {
			return w * pick(qz, 65, upceCodeWidth)
		}},
		{"code39", printsymbol.Code39, "CODE-39", func(w int, qz bool) int {
			return len("*CODE-39*")*code39Char[w-2] + w*pick(qz, 19, -1)
		}},
		{"itf", printsymbol.ITF, "0123456789", func(w int, qz bool) int {
			return 10*itfDigit[w-2] + itfFixed[w-2] + w*pick(qz, 20, 0)
		}},
		{"codabar", printsymbol.Codabar, "a40156:+b", func(w int, qz bool) int {
			return 9*codabarChar[w-2] - 5*codabarNarrow[w-2] + w*pick(qz, 19, -1)
		}},
		{"code93", printsymbol.Code93, "Code 93", func(w int, qz bool) int {
			values, _ := code93Values("Code 93")
			return w * (9*(len(values)+2) + pick(qz, 21, 1))
		}},
		{"code128", printsymbol.Code128, "PO-2024/0001\tx", func(w int, qz bool) int {
			values, _ := code128Values("PO-2024/0001\tx")
			return w * (11*len(values) + pick(qz, 22, 2))
		}},
	}
	for _, tc := range tests {
		for w := 2; w <= 4; w++ {
			for _, qz := range []bool{false, true} {
				form := encode(t, request(tc.sym, tc.data, w, qz))
				checkRuns(t, form, qz)
				if got, want := form.Width, tc.want(w, qz); got != want {
					t.Errorf("%s w=%d qz=%v: width %d, want %d", tc.name, w, qz, got, want)
				}
			}
		}
	}
}

func pick(qz bool, on, off int) int {
	if qz {
		return on
	}
	return off
}

func TestQuietZoneRuns(t *testing.T) {
	tests := []struct {
		sym         printsymbol.Symbology
		data        string
		left, right int
	}{
		{printsymbol.EAN, "400638133393", 11, 7},
		{printsymbol.EAN, "9638507", 7, 7},
		{printsymbol.UPC, "0123456", 7, 7},
		{printsymbol.Code39, "A", 10, 10},
		{printsymbol.ITF, "12", 10, 10},
		{printsymbol.Codabar, "A1B", 10, 10},
		{printsymbol.Code93, "A", 10, 10},
		{printsymbol.Code128, "A", 10, 10},
	}
	for _, tc := range tests {
		t.Run(tc.sym.String()+"/"+tc.data, func(t *testing.T) {
			form := encode(t, request(tc.sym, tc.data, 3, true))
			assert.Equal(t, 3*tc.left, form.Runs[0])
			assert.Equal(t, 3*tc.right, form.Runs[len(form.Runs)-1])
		})
	}
}

func TestFormText(t *testing.T) {
	tests := []struct {
		sym  printsymbol.Symbology
		data string
		want string
	}{
		{printsymbol.EAN, "400638133393", "4006381333931"},
		{printsymbol.EAN, "4006381333930", "4006381333931"},
		{printsymbol.JAN, "9638507", "96385074"},
		{printsymbol.UPC, "03600029145", "036000291452"},
		{printsymbol.UPC, "0123456", "01234565"},
		{printsymbol.UPC, "01234569", "01234565"},
		{printsymbol.Code39, "ABC", "*ABC*"},
		{printsymbol.Code39, "*ABC*", "*ABC*"},
		{printsymbol.ITF, "1234", "1234"},
		{printsymbol.Codabar, "a123d", "a123d"},
		{printsymbol.Code93, "A\tb", "A b"},
		{printsymbol.Code128, "x\x7fy", "x y"},
	}
	for _, tc := range tests {
		t.Run(tc.data, func(t *testing.T) {
			form := encode(t, request(tc.sym, tc.data, 2, false))
			assert.Equal(t, tc.want, form.Text)
		})
	}
}

func TestFormCarriesRequest(t *testing.T) {
	req := request(printsymbol.Code128, "ABC", 2, false)
	req.HRI = true
	req.BarHeight = 96
	form := encode(t, req)
	assert.True(t, form.HRI)
	assert.Equal(t, 96, form.Height)
}

func TestInvalidDataYieldsNullForm(t *testing.T) {
	tests := []struct {
		sym  printsymbol.Symbology
		data string
	}{
		{printsymbol.EAN, ""},
		{printsymbol.EAN, "12345"},
		{printsymbol.EAN, "40063813339A"},
		{printsymbol.EAN, "12345678901234"},
		{printsymbol.JAN, "1234567890"},
		{printsymbol.UPC, "123456"},
		{printsymbol.UPC, "1234567"},
		{printsymbol.UPC, "0123456789"},
		{printsymbol.UPC, "0360002914X"},
		{printsymbol.Code39, ""},
		{printsymbol.Code39, "**"},
		{printsymbol.Code39, "abc"},
		{printsymbol.Code39, "A*B"},
		{printsymbol.ITF, "123"},
		{printsymbol.ITF, ""},
		{printsymbol.ITF, "12a4"},
		{printsymbol.Codabar, "AB"},
		{printsymbol.Codabar, "A12"},
		{printsymbol.Codabar, "E12B"},
		{printsymbol.Codabar, "A1A2B"},
		{printsymbol.Code93, ""},
		{printsymbol.Code93, "caf\xc3\xa9"},
		{printsymbol.Code128, ""},
		{printsymbol.Code128, "\x80"},
	}
	for _, tc := range tests {
		t.Run(tc.sym.String()+"/"+tc.data, func(t *testing.T) {
			form := encode(t, request(tc.sym, tc.data, 2, true))
			assert.False(t, form.Valid())
			assert.Zero(t, form.Width)
			assert.Empty(t, form.Runs)
			assert.Empty(t, form.Text)
		})
	}
}

func TestCheckDigit(t *testing.T) {
	tests := []struct {
		digits string
		want   int
	}{
		{"400638133393", 1},
		{"9638507", 4},
		{"03600029145", 2},
		{"01234500006", 5},
		{"490123456789", 4},
		{"0000000", 0},
	}
	for _, tc := range tests {
		if got := CheckDigit(tc.digits); got != tc.want {
			t.Errorf("CheckDigit(%q) = %d, want %d", tc.digits, got, tc.want)
		}
	}
}

func TestExpandUPCE(t *testing.T) {
	tests := []struct {
		upce string
		want string
	}{
		{"0123450", "012000003455"},
		{"0123451", "012100003454"},
		{"0123452", "012200003453"},
		{"0123453", "012300000451"},
		{"0123454", "012340000053"},
		{"0123456", "012345000065"},
		{"01234565", "012345000065"},
		{"0654321", "065100004327"},
	}
	for _, tc := range tests {
		got, ok := ExpandUPCE(tc.upce)
		if !ok || got != tc.want {
			t.Errorf("ExpandUPCE(%q) = %q, %v; want %q", tc.upce, got, ok, tc.want)
		}
	}

	for _, bad := range []string{"", "123456", "1123456", "012345", "012345678", "01234a6"} {
		if _, ok := ExpandUPCE(bad); ok {
			t.Errorf("ExpandUPCE(%q) succeeded", bad)
		}
	}
}

func TestCheckNumeric(t *testing.T) {
	assert.True(t, CheckNumeric("0123456789"))
	assert.False(t, CheckNumeric(""))
	assert.False(t, CheckNumeric("12 3"))
	assert.False(t, CheckNumeric("١٢٣"))
}

func TestDispatchByLength(t *testing.T) {
	ean8 := encode(t, request(printsymbol.EAN, "96385074", 2, false))
	ean13 := encode(t, request(printsymbol.EAN, "400638133393", 2, false))
	assert.Equal(t, 2*ean8CodeWidth, ean8.Width)
	assert.Equal(t, 2*ean13CodeWidth, ean13.Width)

	upce := encode(t, request(printsymbol.UPC, "01234565", 2, false))
	upca := encode(t, request(printsymbol.UPC, "036000291452", 2, false))
	assert.Equal(t, 2*upceCodeWidth, upce.Width)
	assert.Equal(t, 2*ean13CodeWidth, upca.Width)
}

func TestCode128Values(t *testing.T) {
	tests := []struct {
		name string
		data string
		want []int
	}{
		{"two digits", "12", []int{code128StartC, 12, 14, code128Stop}},
		{"code B", "Hello", []int{code128StartB, 40, 69, 76, 76, 79, 76, code128Stop}},
		{"code C", "123456", []int{code128StartC, 12, 34, 56, 44, code128Stop}},
		{"ten digits stay in C", "1234567890", []int{code128StartC, 12, 34, 56, 78, 90, 85, code128Stop}},
		{"odd digits end in B", "12345", []int{code128StartC, 12, 34, code128CodeB, 21, 54, code128Stop}},
		{"code A", "\tA\nB", []int{code128StartA, 73, 33, 74, 34, 85, code128Stop}},
		{"shift to A", "a\tb", []int{code128StartB, 65, code128Shift, 73, 66, 24, code128Stop}},
		{"shift to B", "\ta\n", []int{code128StartA, 73, code128Shift, 65, 74, 39, code128Stop}},
		{"odd run gives a digit to B", "A12345", []int{code128StartB, 33, 17, code128CodeC, 23, 45, 64, code128Stop}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := code128Values(tc.data)
			require.True(t, ok)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("code128Values(%q) mismatch (-want +got):\n%s", tc.data, diff)
			}
		})
	}
}

func TestCode128SwitchesSets(t *testing.T) {
	got, ok := code128Values("ab\x01\x02cd")
	require.True(t, ok)
	// B a b, A \x01 \x02, B c d
	want := []int{code128StartB, 65, 66, code128CodeA, 65, 66, code128CodeB, 67, 68}
	if diff := cmp.Diff(want, got[:len(want)]); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	got, ok = code128Values("AB1234cd")
	require.True(t, ok)
	want = []int{code128StartB, 33, 34, code128CodeC, 12, 34, code128CodeB, 67, 68}
	if diff := cmp.Diff(want, got[:len(want)]); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestCode128PatternsAreElevenModules(t *testing.T) {
	for v, p := range code128Patterns {
		want := 11
		if v == code128Stop {
			want = 13
		}
		if got := sum(p); got != want {
			t.Errorf("pattern %d is %d modules, want %d", v, got, want)
		}
	}
}

func TestCode93Values(t *testing.T) {
	got, ok := code93Values("ABC")
	require.True(t, ok)
	assert.Equal(t, []int{10, 11, 12, 17, 20}, got)

	got, ok = code93Values("a")
	require.True(t, ok)
	assert.Equal(t, []int{code93ShiftPlus, 10, 8, 25}, got)
}

func TestCode93ExtendedCoversASCII(t *testing.T) {
	for c := 0; c < 128; c++ {
		e := code93Extended[c]
		if len(e) == 0 || len(e) > 2 {
			t.Fatalf("entry %#x is %q", c, e)
		}
		for i := 0; i < len(e); i++ {
			if !strings.ContainsRune(code93Alphabet+"dcsp", rune(e[i])) {
				t.Fatalf("entry %#x holds %q", c, e[i])
			}
		}
	}
}

func TestCode93SymbolsAreNineModules(t *testing.T) {
	for v := range code93CharacterEncodings {
		units := appendCode93Symbol(nil, v)
		assert.Len(t, units, 6, "symbol %d", v)
		assert.Equal(t, 9, sum(units), "symbol %d", v)
	}
}

func TestCode39EncodingsHaveThreeWide(t *testing.T) {
	widths := make([]int, 9)
	for i, e := range code39CharacterEncodings {
		code39ToIntArray(e, widths)
		wide := 0
		for _, w := range widths {
			if w == 2 {
				wide++
			}
		}
		assert.Equal(t, 3, wide, "character %q", code39Alphabet[i])
	}
}

func TestHalfModuleScale(t *testing.T) {
	tests := []struct{ units, width, want int }{
		{narrowHalf, 2, 2},
		{narrowHalf, 3, 3},
		{narrowHalf, 4, 4},
		{wideHalf, 2, 5},
		{wideHalf, 3, 8},
		{wideHalf, 4, 10},
		{2 * defaultQuietZone, 3, 30},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, halfModuleScale(tc.units, tc.width))
	}
}
