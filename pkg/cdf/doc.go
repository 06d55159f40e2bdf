/*
Package cdf provides a high-level, ergonomic API for reading and writing
NetCDF classic (CDF-1) and 64-bit-offset (CDF-2) files.

# Quick Start

Read a file's structure:

	f, _ := os.Open("sample.nc")
	defer f.Close()
	ds, err := cdf.Read(f)
	if err != nil {
	    log.Fatal(err)
	}
	fmt.Println(cdf.Describe(ds))

# Building a dataset from scratch

	ds := cdf.New(cdf.Classic)
	x, _ := cdf.AddDim(ds, "x", 4, 0)
	v, _ := cdf.AddVar(ds, "temperature", cdf.Double)
	cdf.RedimVar(ds, v, []cdf.DimHandle{x})
	cdf.AddTextAttr(ds, cdf.VarTarget(v), "units", "K")
	ds.Vars[v].Data = []cdf.Value{
	    types.DoubleValue(1), types.DoubleValue(2),
	    types.DoubleValue(3), types.DoubleValue(4),
	}

	f, _ := os.Create("out.nc")
	defer f.Close()
	err := cdf.Write(f, ds)

# Record (unlimited) dimensions

Declaring a dimension with length 0 makes it the record dimension; any
previously unlimited dimension is demoted to a fixed length:

	time, _ := cdf.AddDim(ds, "time", 0, 0)
	rec, _ := cdf.AddVar(ds, "pressure", cdf.Float)
	cdf.RedimVar(ds, rec, []cdf.DimHandle{time, x})
	ds.NumRecs = 10

# Advanced usage

This package has no separate planning entry point: Write and WriteFile always
run the planning pass before emitting bytes. Inside this module,
internal/planner.Plan assigns vsize/begin without writing anything, and
internal/reader.Read / internal/writer.Write operate on a types.Source /
types.Sink directly; as internal packages they cannot be imported from
outside the module.
*/
package cdf
