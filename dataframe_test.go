// Copyright 2023 myval Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package myval

import (
	"testing"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addFloat64Series(t *testing.T, df *DataFrame, name string, values []float64) {
	t.Helper()
	b := array.NewFloat64Builder(df.mem)
	defer b.Release()
	b.AppendValues(values, nil)
	col := b.NewArray()
	defer col.Release()
	require.NoError(t, df.AddSeries(name, col))
}

func addStringSeries(t *testing.T, df *DataFrame, name string, values []string) {
	t.Helper()
	b := array.NewStringBuilder(df.mem)
	defer b.Release()
	b.AppendValues(values, nil)
	col := b.NewArray()
	defer col.Release()
	require.NoError(t, df.AddSeries(name, col))
}

func TestDataFrameBasics(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	df := New(mem)
	defer df.Release()
	assert.True(t, df.IsEmpty())
	assert.Equal(t, 0, df.NumRows())

	addFloat64Series(t, df, "temp", []float64{1, 2, 3})
	addFloat64Series(t, df, "hum", []float64{4, 5, 6})

	assert.False(t, df.IsEmpty())
	assert.Equal(t, 2, df.NumCols())
	assert.Equal(t, 3, df.NumRows())
	assert.Equal(t, []string{"temp", "hum"}, df.Names())

	pos, ok := df.ColumnIndex("hum")
	assert.True(t, ok)
	assert.Equal(t, 1, pos)
	_, ok = df.ColumnIndex("pressure")
	assert.False(t, ok)
}

func TestDataFrameAddSeriesRowsMismatch(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	df := New(mem)
	defer df.Release()
	addFloat64Series(t, df, "temp", []float64{1, 2, 3})

	b := array.NewFloat64Builder(mem)
	b.AppendValues([]float64{1}, nil)
	col := b.NewArray()
	b.Release()
	defer col.Release()

	assert.ErrorIs(t, df.AddSeries("hum", col), ErrRowsNotMatch)
	assert.Equal(t, 1, df.NumCols())
}

func TestDataFramePopRename(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	df := New(mem)
	defer df.Release()
	addFloat64Series(t, df, "temp", []float64{1, 2})
	addFloat64Series(t, df, "hum", []float64{3, 4})

	col, _, err := df.PopSeries("temp")
	require.NoError(t, err)
	assert.Equal(t, 2, col.Len())
	col.Release()
	assert.Equal(t, []string{"hum"}, df.Names())

	_, _, err = df.PopSeries("temp")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, df.Rename("hum", "humidity"))
	assert.Equal(t, []string{"humidity"}, df.Names())
	assert.ErrorIs(t, df.Rename("hum", "x"), ErrNotFound)

	addFloat64Series(t, df, "hum", []float64{5, 6})
	assert.ErrorIs(t, df.Rename("hum", "humidity"), ErrAlreadyExists)
	assert.ErrorIs(t, df.SetNameAt(1, "humidity"), ErrAlreadyExists)
}

func TestDataFrameOrdering(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	df := New(mem)
	defer df.Release()
	addFloat64Series(t, df, "c", []float64{1})
	addFloat64Series(t, df, "a", []float64{2})
	addFloat64Series(t, df, "b", []float64{3})

	df.SetOrdering([]string{"b", "c"})
	assert.Equal(t, []string{"b", "c", "a"}, df.Names())

	df.SortColumns()
	assert.Equal(t, []string{"a", "b", "c"}, df.Names())

	// ordering moves the data with the name
	pos, _ := df.ColumnIndex("c")
	assert.Equal(t, 1.0, df.cols[pos].(*array.Float64).Value(0))
}

func TestDataFrameSliced(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	df := New(mem)
	defer df.Release()
	addFloat64Series(t, df, "temp", []float64{1, 2, 3, 4, 5})

	part, err := df.Sliced(1, 3)
	require.NoError(t, err)
	defer part.Release()
	assert.Equal(t, 3, part.NumRows())
	assert.Equal(t, 2.0, part.cols[0].(*array.Float64).Value(0))

	_, err = df.Sliced(4, 5)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = df.Sliced(-1, 2)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = df.Sliced(0, -1)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestDataFrameInsertSeries(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	df := New(mem)
	defer df.Release()
	addFloat64Series(t, df, "b", []float64{1, 2})

	b := array.NewFloat64Builder(mem)
	b.AppendValues([]float64{3, 4}, nil)
	col := b.NewArray()
	b.Release()
	defer col.Release()

	assert.ErrorIs(t, df.InsertSeries("a", col, -1), ErrOutOfBounds)
	assert.ErrorIs(t, df.InsertSeries("a", col, 2), ErrOutOfBounds)

	require.NoError(t, df.InsertSeries("a", col, 0))
	assert.Equal(t, []string{"a", "b"}, df.Names())
}

func TestDataFrameMetadata(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	df := New(mem)
	defer df.Release()
	addFloat64Series(t, df, "temp", []float64{1})

	df.SetMetadataField("source", "sensor1")
	assert.Equal(t, "sensor1", df.Metadata()["source"])

	require.NoError(t, df.SetColMetadataField("temp", "unit", "C"))
	md, err := df.ColMetadata("temp")
	require.NoError(t, err)
	idx := md.FindKey("unit")
	require.GreaterOrEqual(t, idx, 0)
	assert.Equal(t, "C", md.Values()[idx])

	assert.ErrorIs(t, df.SetColMetadataField("hum", "unit", "%"), ErrNotFound)
}

func TestDataFrameIPCRoundTrip(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	df := New(mem)
	defer df.Release()
	addFloat64Series(t, df, "temp", []float64{1.5, 2.5})
	addStringSeries(t, df, "status", []string{"ok", "warn"})
	df.SetMetadataField("origin", "test")

	block, err := df.ToIPC()
	require.NoError(t, err)
	require.NotEmpty(t, block)

	back, err := FromIPC(mem, block)
	require.NoError(t, err)
	defer back.Release()

	assert.Equal(t, df.Names(), back.Names())
	assert.Equal(t, df.NumRows(), back.NumRows())
	assert.Equal(t, "test", back.Metadata()["origin"])
	assert.Equal(t, 2.5, back.cols[0].(*array.Float64).Value(1))
	assert.Equal(t, "warn", back.cols[1].(*array.String).Value(1))
}

func TestDataFrameFromIPCGarbage(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	_, err := FromIPC(mem, []byte("not an ipc block"))
	assert.Error(t, err)
}

func TestDataFrameParse(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	df := New(mem)
	defer df.Release()
	addStringSeries(t, df, "reading", []string{"42", "oops", "-7"})

	require.NoError(t, Parse[int32](df, "reading"))
	col, ok := df.cols[0].(*array.Int32)
	require.True(t, ok)
	assert.Equal(t, int32(42), col.Value(0))
	assert.True(t, col.IsNull(1))
	assert.Equal(t, int32(-7), col.Value(2))
	assert.True(t, arrow.TypeEqual(arrow.PrimitiveTypes.Int32, df.fields[0].Type))

	assert.ErrorIs(t, Parse[float64](df, "missing"), ErrNotFound)
	// already numeric, nothing string-like to parse
	assert.ErrorIs(t, ParseAt[float64](df, 0), ErrTypeMismatch)
}

func TestDataFrameTimeseries(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	df := NewTimeseries(mem, []float64{1.5, 2.0}, arrow.Millisecond, "UTC")
	defer df.Release()

	require.Equal(t, 1, df.NumCols())
	assert.Equal(t, []string{"time"}, df.Names())
	col, ok := df.cols[0].(*array.Timestamp)
	require.True(t, ok)
	assert.Equal(t, arrow.Timestamp(1500), col.Value(0))
	assert.Equal(t, arrow.Timestamp(2000), col.Value(1))
}

func TestDataFrameSize(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	df := New(mem)
	defer df.Release()
	addFloat64Series(t, df, "a", []float64{1, 2, 3})
	addFloat64Series(t, df, "b", []float64{4, 5, 6})

	assert.Equal(t, 48, df.Size())
}

func TestConcat(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	a := New(mem)
	defer a.Release()
	addFloat64Series(t, a, "temp", []float64{1, 2})
	a.SetMetadataField("k", "first")

	b := New(mem)
	defer b.Release()
	addFloat64Series(t, b, "temp", []float64{3})
	addFloat64Series(t, b, "hum", []float64{50})
	b.SetMetadataField("k", "second")

	out, err := Concat(mem, a, b)
	require.NoError(t, err)
	defer out.Release()

	assert.Equal(t, []string{"temp", "hum"}, out.Names())
	assert.Equal(t, 3, out.NumRows())
	assert.Equal(t, "second", out.Metadata()["k"])

	temp := out.cols[0].(*array.Float64)
	assert.Equal(t, 3.0, temp.Value(2))

	// rows from the frame lacking the column are null-filled
	hum := out.cols[1].(*array.Float64)
	assert.True(t, hum.IsNull(0))
	assert.True(t, hum.IsNull(1))
	assert.Equal(t, 50.0, hum.Value(2))
}

func TestConcatEmpty(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	out, err := Concat(mem)
	require.NoError(t, err)
	defer out.Release()
	assert.True(t, out.IsEmpty())

	a := New(mem)
	defer a.Release()
	addFloat64Series(t, a, "x", []float64{9})

	empty := New(mem)
	defer empty.Release()

	out2, err := Concat(mem, empty, a)
	require.NoError(t, err)
	defer out2.Release()
	assert.Equal(t, 1, out2.NumRows())
	assert.Equal(t, []string{"x"}, out2.Names())
}
