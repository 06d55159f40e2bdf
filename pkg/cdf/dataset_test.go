package cdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddDimDemotesPriorRecordDim(t *testing.T) {
	ds := New(Classic)

	time1, err := AddDim(ds, "time1", 0, 0)
	require.NoError(t, err)

	_, err = AddDim(ds, "time2", 0, 7)
	require.NoError(t, err)

	assert.Equal(t, int32(7), ds.Dims[time1].Length, "prior record dim should be demoted")
	assert.True(t, ds.Dims[1].IsRecord())
}

func TestSetUnlimitedDemotesPrior(t *testing.T) {
	ds := New(Classic)
	a, _ := AddDim(ds, "a", 0, 0)
	b, _ := AddDim(ds, "b", 10, 0)

	require.NoError(t, SetUnlimited(ds, b, 4))

	assert.Equal(t, int32(4), ds.Dims[a].Length)
	assert.True(t, ds.Dims[b].IsRecord())
}

func TestAddVarAndRedim(t *testing.T) {
	ds := New(Classic)
	x, _ := AddDim(ds, "x", 5, 0)
	v, err := AddVar(ds, "temp", Float)
	require.NoError(t, err)

	require.NoError(t, RedimVar(ds, v, []DimHandle{x}))
	assert.Equal(t, []int32{int32(x)}, ds.Vars[v].DimIDs)
}

func TestAddVarRejectsNonPrimitiveType(t *testing.T) {
	ds := New(Classic)
	_, err := AddVar(ds, "bad", Dimension)
	assert.Error(t, err)
}

func TestAddAttrGlobalAndVariable(t *testing.T) {
	ds := New(Classic)
	v, _ := AddVar(ds, "temp", Double)

	require.NoError(t, AddTextAttr(ds, Global, "title", "demo"))
	require.NoError(t, AddTextAttr(ds, VarTarget(v), "units", "K"))

	require.Len(t, ds.Attrs, 1)
	assert.Equal(t, "title", ds.Attrs[0].Name)
	require.Len(t, ds.Vars[v].Attrs, 1)
	assert.Equal(t, "units", ds.Vars[v].Attrs[0].Name)
}

func TestGetDimByNameAndIndex(t *testing.T) {
	ds := New(Classic)
	want, _ := AddDim(ds, "x", 2, 0)

	got, ok := GetDimByName(ds, "x")
	require.True(t, ok)
	assert.Equal(t, want, got)

	got2, ok := GetDimByIndex(ds, 0)
	require.True(t, ok)
	assert.Equal(t, want, got2)

	_, ok = GetDimByIndex(ds, 5)
	assert.False(t, ok)
}
