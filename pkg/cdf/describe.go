package cdf

import (
	"fmt"
	"strings"

	"github.com/cdfkit/cdfkit/internal/textenc"
)

// Describe renders ds as a human-readable summary: version, dims (marking
// the record dimension), global attrs, and each variable's shape and attrs.
// Attribute and name text is decoded via internal/textenc so non-UTF-8
// legacy octets still render instead of producing replacement characters.
//
// Example:
//
//	ds, _ := cdf.Read(f)
//	fmt.Println(cdf.Describe(ds))
func Describe(ds *Dataset) string {
	var b strings.Builder
	fmt.Fprintf(&b, "version: %s\n", ds.Version)
	fmt.Fprintf(&b, "numrecs: %d\n", ds.NumRecs)

	fmt.Fprintf(&b, "dimensions (%d):\n", len(ds.Dims))
	for _, d := range ds.Dims {
		if d.IsRecord() {
			fmt.Fprintf(&b, "  %s = UNLIMITED\n", displayText(d.Name))
		} else {
			fmt.Fprintf(&b, "  %s = %d\n", displayText(d.Name), d.Length)
		}
	}

	fmt.Fprintf(&b, "global attributes (%d):\n", len(ds.Attrs))
	for _, a := range ds.Attrs {
		fmt.Fprintf(&b, "  %s\n", describeAttr(a))
	}

	fmt.Fprintf(&b, "variables (%d):\n", len(ds.Vars))
	for _, v := range ds.Vars {
		fmt.Fprintf(&b, "  %s %s(%s)\n", v.Type, displayText(v.Name), dimNames(ds, v.DimIDs))
		for _, a := range v.Attrs {
			fmt.Fprintf(&b, "    %s\n", describeAttr(a))
		}
	}
	return b.String()
}

func dimNames(ds *Dataset, dimids []int32) string {
	names := make([]string, len(dimids))
	for i, id := range dimids {
		if int(id) >= 0 && int(id) < len(ds.Dims) {
			names[i] = displayText(ds.Dims[id].Name)
		} else {
			names[i] = "?"
		}
	}
	return strings.Join(names, ", ")
}

func describeAttr(a Attribute) string {
	if a.Type == Char && len(a.Values) > 0 {
		return fmt.Sprintf("%s = %q", displayText(a.Name), displayText(string(a.Values[0].Text())))
	}
	return fmt.Sprintf("%s = %s (%d values)", displayText(a.Name), a.Type, len(a.Values))
}

// displayText decodes s's bytes for display, falling back to the raw string
// if it isn't valid Windows-1252 (which in practice means never, since that
// charmap maps every byte value).
func displayText(s string) string {
	decoded, err := textenc.Display([]byte(s))
	if err != nil {
		return s
	}
	return decoded
}
