package writer

import (
	"bytes"
	"errors"
	"testing"

	"github.com/cdfkit/cdfkit/internal/reader"
	"github.com/cdfkit/cdfkit/pkg/types"
)

func TestWriteReadRoundTripScalarScenarioS4(t *testing.T) {
	ds := types.NewDataset(types.Classic)
	ds.Vars = []types.Variable{
		{Name: "v", Type: types.Double, Data: []types.Value{types.DoubleValue(1.0)}},
	}

	var buf bytes.Buffer
	if err := Write(&buf, ds); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := reader.Read(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(got.Vars) != 1 || got.Vars[0].Name != "v" {
		t.Fatalf("vars = %+v", got.Vars)
	}
	if len(got.Vars[0].Data) != 1 || got.Vars[0].Data[0].Double() != 1.0 {
		t.Errorf("data = %+v, want [1.0]", got.Vars[0].Data)
	}
}

func TestWriteReadRoundTripRecordVarScenarioS5(t *testing.T) {
	ds := types.NewDataset(types.Classic)
	ds.Dims = []types.Dimension{
		{Name: "time", Length: 0},
		{Name: "x", Length: 2},
	}
	ds.Vars = []types.Variable{
		{Name: "r", Type: types.Int, DimIDs: []int32{0, 1},
			Data: []types.Value{
				types.IntValue(1), types.IntValue(2),
				types.IntValue(3), types.IntValue(4),
			}},
	}
	ds.NumRecs = 2

	var buf bytes.Buffer
	if err := Write(&buf, ds); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := reader.Read(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	want := []int32{1, 2, 3, 4}
	if len(got.Vars[0].Data) != len(want) {
		t.Fatalf("data len = %d, want %d", len(got.Vars[0].Data), len(want))
	}
	for i, w := range want {
		if got.Vars[0].Data[i].Int() != w {
			t.Errorf("data[%d] = %d, want %d", i, got.Vars[0].Data[i].Int(), w)
		}
	}
}

func TestWriteReadRoundTripInterleavedRecordVars(t *testing.T) {
	ds := types.NewDataset(types.X64)
	ds.Dims = []types.Dimension{{Name: "time", Length: 0}}
	ds.Vars = []types.Variable{
		{Name: "a", Type: types.Short, DimIDs: []int32{0},
			Data: []types.Value{types.ShortValue(10), types.ShortValue(20)}},
		{Name: "b", Type: types.Double, DimIDs: []int32{0},
			Data: []types.Value{types.DoubleValue(1.5), types.DoubleValue(2.5)}},
	}
	ds.NumRecs = 2

	var buf bytes.Buffer
	if err := Write(&buf, ds); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := reader.Read(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	a, ok := got.FindVar("a")
	if !ok {
		t.Fatalf("var a not found")
	}
	b, ok := got.FindVar("b")
	if !ok {
		t.Fatalf("var b not found")
	}
	av := got.Var(a)
	bv := got.Var(b)
	if av.Data[0].Short() != 10 || av.Data[1].Short() != 20 {
		t.Errorf("a data = %+v", av.Data)
	}
	if bv.Data[0].Double() != 1.5 || bv.Data[1].Double() != 2.5 {
		t.Errorf("b data = %+v", bv.Data)
	}
}

func TestWriteEmptyDatasetScenarioS1(t *testing.T) {
	ds := types.NewDataset(types.Classic)
	var buf bytes.Buffer
	if err := Write(&buf, ds); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if buf.Len() != 32 {
		t.Errorf("empty dataset size = %d, want 32", buf.Len())
	}
	got, err := reader.Read(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(got.Dims) != 0 || len(got.Attrs) != 0 || len(got.Vars) != 0 {
		t.Errorf("expected all-empty round trip, got %+v", got)
	}
}

func TestWriteRejectsAttrValueTypeMismatch(t *testing.T) {
	ds := types.NewDataset(types.Classic)
	ds.Attrs = []types.Attribute{
		{Name: "scale", Type: types.Int, Values: []types.Value{types.FloatValue(1.0)}},
	}

	var buf bytes.Buffer
	err := Write(&buf, ds)
	if !errors.Is(err, types.ErrValueTypeMismatch) {
		t.Fatalf("Write err = %v, want ErrValueTypeMismatch", err)
	}
}

func TestWriteRejectsVarDataTypeMismatch(t *testing.T) {
	ds := types.NewDataset(types.Classic)
	ds.Vars = []types.Variable{
		{Name: "v", Type: types.Double, Data: []types.Value{types.IntValue(1)}},
	}

	var buf bytes.Buffer
	err := Write(&buf, ds)
	if !errors.Is(err, types.ErrValueTypeMismatch) {
		t.Fatalf("Write err = %v, want ErrValueTypeMismatch", err)
	}
}

func TestWriteRejectsUnderpopulatedVarData(t *testing.T) {
	ds := types.NewDataset(types.Classic)
	ds.Dims = []types.Dimension{{Name: "x", Length: 2}}
	ds.Vars = []types.Variable{
		{Name: "v", Type: types.Int, DimIDs: []int32{0}, Data: []types.Value{types.IntValue(1)}},
	}

	var buf bytes.Buffer
	err := Write(&buf, ds)
	if !errors.Is(err, types.ErrValueTypeMismatch) {
		t.Fatalf("Write err = %v, want ErrValueTypeMismatch", err)
	}
}

func TestWriteRejectsUnderpopulatedCharVarData(t *testing.T) {
	ds := types.NewDataset(types.Classic)
	ds.Dims = []types.Dimension{{Name: "time", Length: 0}}
	ds.Vars = []types.Variable{
		{Name: "label", Type: types.Char, DimIDs: []int32{0}, Data: []types.Value{types.TextValue("a")}},
	}
	ds.NumRecs = 2

	var buf bytes.Buffer
	err := Write(&buf, ds)
	if !errors.Is(err, types.ErrValueTypeMismatch) {
		t.Fatalf("Write err = %v, want ErrValueTypeMismatch", err)
	}
}

func TestWriteRejectsCharAttrWithNonCharValue(t *testing.T) {
	ds := types.NewDataset(types.Classic)
	ds.Attrs = []types.Attribute{
		{Name: "units", Type: types.Char, Values: []types.Value{types.IntValue(5)}},
	}

	var buf bytes.Buffer
	err := Write(&buf, ds)
	if !errors.Is(err, types.ErrValueTypeMismatch) {
		t.Fatalf("Write err = %v, want ErrValueTypeMismatch", err)
	}
}

func TestWriteCharAttributeRoundTrip(t *testing.T) {
	ds := types.NewDataset(types.Classic)
	ds.Attrs = []types.Attribute{
		{Name: "units", Type: types.Char, Values: []types.Value{types.TextValue("m")}},
	}

	var buf bytes.Buffer
	if err := Write(&buf, ds); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := reader.Read(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(got.Attrs) != 1 || got.Attrs[0].Values[0].String() != "m" {
		t.Errorf("attrs = %+v", got.Attrs)
	}
}
