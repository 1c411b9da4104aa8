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

//go:generate go run ./cmd/genmath

package myval

import (
	"math/big"

	"github.com/JohnCGriffin/overflow"
	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/decimal128"
	"golang.org/x/exp/constraints"
)

// Int128Type is the storage type of i128 columns: a 128-bit integer
// held in arrow decimal128 storage with scale zero.
var Int128Type = &arrow.Decimal128Type{Precision: 38, Scale: 0}

// scalarValue is the set of column element types the generated
// arithmetic mutators operate on.
type scalarValue interface {
	Native | decimal128.Num
}

// scalarColumn is the read surface the typed arrow arrays share.
type scalarColumn[T scalarValue] interface {
	arrow.Array
	Value(int) T
}

// applyScalar replaces the column at index with the result of running
// routine against every non-null element and the scalar value. The
// column's storage must match dtype; nulls are preserved. The first
// routine error aborts the operation leaving the column untouched.
//
// This is the delegation target of every generated position-addressed
// mutator: bounds and storage are validated here, never by the
// generated callers.
func applyScalar[T scalarValue](df *DataFrame, index int, dtype arrow.DataType, value T, routine func(T, T) (T, error)) error {
	if index < 0 || index >= len(df.cols) {
		return ErrOutOfBounds
	}
	col, ok := df.cols[index].(scalarColumn[T])
	if !ok || !arrow.TypeEqual(col.DataType(), dtype) {
		return ErrTypeMismatch
	}
	bldr := array.NewBuilder(df.mem, dtype)
	defer bldr.Release()
	ap := bldr.(interface{ Append(T) })
	bldr.Reserve(col.Len())
	for i := 0; i < col.Len(); i++ {
		if col.IsNull(i) {
			bldr.AppendNull()
			continue
		}
		v, err := routine(col.Value(i), value)
		if err != nil {
			return err
		}
		ap.Append(v)
	}
	out := bldr.NewArray()
	df.cols[index].Release()
	df.cols[index] = out
	return nil
}

// Typed arithmetic routines backing the generated mutators, one per
// (kind, operation) pair. Signed integer arithmetic is checked through
// the overflow package, unsigned and 128-bit checks are local, floats
// follow IEEE 754 (division by zero yields an infinity or NaN).

func checked[T constraints.Integer](v T, ok bool) (T, error) {
	if !ok {
		var zero T
		return zero, ErrOverflow
	}
	return v, nil
}

func addInt8(a, b int8) (int8, error) { return checked(overflow.Add8(a, b)) }
func subInt8(a, b int8) (int8, error) { return checked(overflow.Sub8(a, b)) }
func mulInt8(a, b int8) (int8, error) { return checked(overflow.Mul8(a, b)) }
func divInt8(a, b int8) (int8, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return checked(overflow.Div8(a, b))
}

func addInt16(a, b int16) (int16, error) { return checked(overflow.Add16(a, b)) }
func subInt16(a, b int16) (int16, error) { return checked(overflow.Sub16(a, b)) }
func mulInt16(a, b int16) (int16, error) { return checked(overflow.Mul16(a, b)) }
func divInt16(a, b int16) (int16, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return checked(overflow.Div16(a, b))
}

func addInt32(a, b int32) (int32, error) { return checked(overflow.Add32(a, b)) }
func subInt32(a, b int32) (int32, error) { return checked(overflow.Sub32(a, b)) }
func mulInt32(a, b int32) (int32, error) { return checked(overflow.Mul32(a, b)) }
func divInt32(a, b int32) (int32, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return checked(overflow.Div32(a, b))
}

func addInt64(a, b int64) (int64, error) { return checked(overflow.Add64(a, b)) }
func subInt64(a, b int64) (int64, error) { return checked(overflow.Sub64(a, b)) }
func mulInt64(a, b int64) (int64, error) { return checked(overflow.Mul64(a, b)) }
func divInt64(a, b int64) (int64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return checked(overflow.Div64(a, b))
}

func addU[T constraints.Unsigned](a, b T) (T, error) {
	c := a + b
	if c < a {
		return 0, ErrOverflow
	}
	return c, nil
}

func subU[T constraints.Unsigned](a, b T) (T, error) {
	if b > a {
		return 0, ErrOverflow
	}
	return a - b, nil
}

func mulU[T constraints.Unsigned](a, b T) (T, error) {
	c := a * b
	if a != 0 && c/a != b {
		return 0, ErrOverflow
	}
	return c, nil
}

func divU[T constraints.Unsigned](a, b T) (T, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

func addUint8(a, b uint8) (uint8, error) { return addU(a, b) }
func subUint8(a, b uint8) (uint8, error) { return subU(a, b) }
func mulUint8(a, b uint8) (uint8, error) { return mulU(a, b) }
func divUint8(a, b uint8) (uint8, error) { return divU(a, b) }

func addUint16(a, b uint16) (uint16, error) { return addU(a, b) }
func subUint16(a, b uint16) (uint16, error) { return subU(a, b) }
func mulUint16(a, b uint16) (uint16, error) { return mulU(a, b) }
func divUint16(a, b uint16) (uint16, error) { return divU(a, b) }

func addUint32(a, b uint32) (uint32, error) { return addU(a, b) }
func subUint32(a, b uint32) (uint32, error) { return subU(a, b) }
func mulUint32(a, b uint32) (uint32, error) { return mulU(a, b) }
func divUint32(a, b uint32) (uint32, error) { return divU(a, b) }

func addUint64(a, b uint64) (uint64, error) { return addU(a, b) }
func subUint64(a, b uint64) (uint64, error) { return subU(a, b) }
func mulUint64(a, b uint64) (uint64, error) { return mulU(a, b) }
func divUint64(a, b uint64) (uint64, error) { return divU(a, b) }

func addFloat32(a, b float32) (float32, error) { return a + b, nil }
func subFloat32(a, b float32) (float32, error) { return a - b, nil }
func mulFloat32(a, b float32) (float32, error) { return a * b, nil }
func divFloat32(a, b float32) (float32, error) { return a / b, nil }

func addFloat64(a, b float64) (float64, error) { return a + b, nil }
func subFloat64(a, b float64) (float64, error) { return a - b, nil }
func mulFloat64(a, b float64) (float64, error) { return a * b, nil }
func divFloat64(a, b float64) (float64, error) { return a / b, nil }

// 128-bit signed bounds: [-2^127, 2^127-1].
var (
	minInt128 = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	maxInt128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
)

func int128Checked(v *big.Int) (decimal128.Num, error) {
	if v.Cmp(minInt128) < 0 || v.Cmp(maxInt128) > 0 {
		return decimal128.Num{}, ErrOverflow
	}
	return decimal128.FromBigInt(v), nil
}

func addDec128(a, b decimal128.Num) (decimal128.Num, error) {
	return int128Checked(new(big.Int).Add(a.BigInt(), b.BigInt()))
}

func subDec128(a, b decimal128.Num) (decimal128.Num, error) {
	return int128Checked(new(big.Int).Sub(a.BigInt(), b.BigInt()))
}

func mulDec128(a, b decimal128.Num) (decimal128.Num, error) {
	return int128Checked(new(big.Int).Mul(a.BigInt(), b.BigInt()))
}

func divDec128(a, b decimal128.Num) (decimal128.Num, error) {
	bb := b.BigInt()
	if bb.Sign() == 0 {
		return decimal128.Num{}, ErrDivisionByZero
	}
	return int128Checked(new(big.Int).Quo(a.BigInt(), bb))
}
