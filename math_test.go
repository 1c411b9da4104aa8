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
	"math"
	"testing"

	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/decimal128"
	"github.com/apache/arrow/go/v17/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInt8Frame(t *testing.T, mem memory.Allocator, name string, values []int8, valid []bool) *DataFrame {
	t.Helper()
	b := array.NewInt8Builder(mem)
	defer b.Release()
	b.AppendValues(values, valid)
	col := b.NewArray()
	defer col.Release()

	df := New(mem)
	require.NoError(t, df.AddSeries(name, col))
	return df
}

func int8Values(t *testing.T, df *DataFrame, index int) *array.Int8 {
	t.Helper()
	col, ok := df.cols[index].(*array.Int8)
	require.True(t, ok)
	return col
}

func TestMathAdd(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	df := newInt8Frame(t, mem, "voltage", []int8{1, 2, 3}, nil)
	defer df.Release()

	require.NoError(t, df.I8Add("voltage", 10))
	col := int8Values(t, df, 0)
	assert.Equal(t, []int8{11, 12, 13}, []int8{col.Value(0), col.Value(1), col.Value(2)})
}

func TestMathNamedDelegatesToIndexed(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	byName := newInt8Frame(t, mem, "x", []int8{5, 7}, nil)
	defer byName.Release()
	byIndex := newInt8Frame(t, mem, "x", []int8{5, 7}, nil)
	defer byIndex.Release()

	require.NoError(t, byName.I8Mul("x", 3))
	require.NoError(t, byIndex.I8MulAt(0, 3))

	a := int8Values(t, byName, 0)
	b := int8Values(t, byIndex, 0)
	for i := 0; i < a.Len(); i++ {
		assert.Equal(t, a.Value(i), b.Value(i))
	}
}

func TestMathColumnNotFound(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	df := newInt8Frame(t, mem, "x", []int8{1, 2}, nil)
	defer df.Release()

	err := df.I8Add("y", 1)
	assert.ErrorIs(t, err, ErrNotFound)

	// frame is untouched on failure
	col := int8Values(t, df, 0)
	assert.Equal(t, int8(1), col.Value(0))
	assert.Equal(t, int8(2), col.Value(1))
}

func TestMathIndexOutOfBounds(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	df := newInt8Frame(t, mem, "x", []int8{1}, nil)
	defer df.Release()

	assert.ErrorIs(t, df.I8AddAt(5, 1), ErrOutOfBounds)
	assert.ErrorIs(t, df.I8AddAt(-1, 1), ErrOutOfBounds)
}

func TestMathTypeMismatch(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	df := newInt8Frame(t, mem, "x", []int8{1}, nil)
	defer df.Release()

	assert.ErrorIs(t, df.F64AddAt(0, 1.0), ErrTypeMismatch)
	assert.ErrorIs(t, df.U8Add("x", 1), ErrTypeMismatch)
}

func TestMathNullPreserved(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	df := newInt8Frame(t, mem, "x", []int8{1, 0, 3}, []bool{true, false, true})
	defer df.Release()

	require.NoError(t, df.I8Sub("x", 1))
	col := int8Values(t, df, 0)
	assert.Equal(t, int8(0), col.Value(0))
	assert.True(t, col.IsNull(1))
	assert.Equal(t, int8(2), col.Value(2))
}

func TestMathIntegerDivisionByZero(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	df := newInt8Frame(t, mem, "x", []int8{4, 8}, nil)
	defer df.Release()

	assert.ErrorIs(t, df.I8Div("x", 0), ErrDivisionByZero)

	// the column keeps its previous values after a failed pass
	col := int8Values(t, df, 0)
	assert.Equal(t, int8(4), col.Value(0))
}

func TestMathFloatDivisionByZero(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	b := array.NewFloat64Builder(mem)
	b.AppendValues([]float64{1, -1}, nil)
	col := b.NewArray()
	b.Release()

	df := New(mem)
	require.NoError(t, df.AddSeries("x", col))
	col.Release()
	defer df.Release()

	require.NoError(t, df.F64Div("x", 0))
	out := df.cols[0].(*array.Float64)
	assert.True(t, math.IsInf(out.Value(0), 1))
	assert.True(t, math.IsInf(out.Value(1), -1))
}

func TestMathSignedOverflow(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	df := newInt8Frame(t, mem, "x", []int8{127}, nil)
	defer df.Release()

	assert.ErrorIs(t, df.I8Add("x", 1), ErrOverflow)
	assert.ErrorIs(t, df.I8Mul("x", 2), ErrOverflow)
}

func TestMathUnsignedUnderflow(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	b := array.NewUint16Builder(mem)
	b.AppendValues([]uint16{3, 65535}, nil)
	col := b.NewArray()
	b.Release()

	df := New(mem)
	require.NoError(t, df.AddSeries("x", col))
	col.Release()
	defer df.Release()

	assert.ErrorIs(t, df.U16Sub("x", 10), ErrOverflow)
	assert.ErrorIs(t, df.U16Add("x", 1), ErrOverflow)
	require.NoError(t, df.U16Div("x", 3))
	out := df.cols[0].(*array.Uint16)
	assert.Equal(t, uint16(1), out.Value(0))
}

func TestMathInt128(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	b := array.NewDecimal128Builder(mem, Int128Type)
	b.Append(decimal128.New(0, 40))
	b.Append(decimal128.FromI64(-3))
	col := b.NewArray()
	b.Release()

	df := New(mem)
	require.NoError(t, df.AddSeries("x", col))
	col.Release()
	defer df.Release()

	require.NoError(t, df.I128Add("x", decimal128.FromI64(2)))
	out := df.cols[0].(*array.Decimal128)
	assert.Equal(t, decimal128.New(0, 42), out.Value(0))
	assert.Equal(t, decimal128.FromI64(-1), out.Value(1))

	require.NoError(t, df.I128Div("x", decimal128.FromI64(2)))
	out = df.cols[0].(*array.Decimal128)
	assert.Equal(t, decimal128.FromI64(21), out.Value(0))

	assert.ErrorIs(t, df.I128Div("x", decimal128.FromI64(0)), ErrDivisionByZero)
}

func TestMathInt128Overflow(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	b := array.NewDecimal128Builder(mem, Int128Type)
	b.Append(decimal128.MaxDecimal128)
	col := b.NewArray()
	b.Release()

	df := New(mem)
	require.NoError(t, df.AddSeries("x", col))
	col.Release()
	defer df.Release()

	assert.ErrorIs(t, df.I128Mul("x", decimal128.FromI64(1000)), ErrOverflow)
}

func TestMathFloat32(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	b := array.NewFloat32Builder(mem)
	b.AppendValues([]float32{1.5, 2.5}, nil)
	col := b.NewArray()
	b.Release()

	df := New(mem)
	require.NoError(t, df.AddSeries("x", col))
	col.Release()
	defer df.Release()

	require.NoError(t, df.F32Mul("x", 2))
	out := df.cols[0].(*array.Float32)
	assert.Equal(t, float32(3), out.Value(0))
	assert.Equal(t, float32(5), out.Value(1))
}
