package format

import (
	"testing"

	"github.com/cdfkit/cdfkit/pkg/types"
)

func TestSizeNamed(t *testing.T) {
	cases := []struct {
		name string
		want int
	}{
		{"x", 8},       // 4 + 1 -> pad to 8
		{"units", 12},  // 4 + 5 -> pad to 12
		{"abcd", 8},    // 4 + 4 -> already multiple of 4
		{"", 4},        // 4 + 0
	}
	for _, c := range cases {
		if got := SizeNamed(c.name); got != c.want {
			t.Errorf("SizeNamed(%q) = %d, want %d", c.name, got, c.want)
		}
	}
}

func TestSizeDimArrayEmpty(t *testing.T) {
	if got := SizeDimArray(nil); got != TaggedArrayHeaderSize {
		t.Errorf("empty dim array size = %d, want %d", got, TaggedArrayHeaderSize)
	}
}

func TestSizeDimArrayScenarioS2(t *testing.T) {
	dims := []types.Dimension{{Name: "x", Length: 3}}
	// name("x") padded = 8, + 4 length = 12; + 8-byte prefix = 20
	if got := SizeDimArray(dims); got != 20 {
		t.Errorf("SizeDimArray = %d, want 20", got)
	}
}

func TestSizeAttrScenarioS3(t *testing.T) {
	a := types.Attribute{Name: "units", Type: types.Char, Values: []types.Value{types.TextValue("m")}}
	// name("units") padded = 12; +4 type +4 nelems; value "m" padded = 4
	if got := SizeAttr(a); got != 24 {
		t.Errorf("SizeAttr = %d, want 24", got)
	}
}

func TestHeaderSizeEmptyDatasetScenarioS1(t *testing.T) {
	ds := types.NewDataset(types.Classic)
	// magic(4) + numrecs(4) + 3x empty tagged-array prefixes (8 each) = 32
	if got := HeaderSize(ds); got != 32 {
		t.Errorf("HeaderSize(empty classic) = %d, want 32", got)
	}
}

func TestSizeVarHeaderWidthByVersion(t *testing.T) {
	v := types.Variable{Name: "v", Type: types.Double}
	classic := SizeVarHeader(v, BeginSize(types.Classic))
	x64 := SizeVarHeader(v, BeginSize(types.X64))
	if x64-classic != 4 {
		t.Errorf("x64 header should be 4 bytes larger than classic, got diff %d", x64-classic)
	}
}
