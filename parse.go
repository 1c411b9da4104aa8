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
	"fmt"
	"strconv"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
)

// Native is the set of Go scalar types storable in primitive columns
// without a dedicated storage representation.
type Native interface {
	int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 | float32 | float64
}

// Parse converts the named string column into a numeric column of type
// T in place. Unparseable and null elements become nulls.
func Parse[T Native](df *DataFrame, name string) error {
	pos, ok := df.ColumnIndex(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return ParseAt[T](df, pos)
}

// ParseAt converts the string column at the given position into a
// numeric column of type T in place.
func ParseAt[T Native](df *DataFrame, index int) error {
	if index < 0 || index >= len(df.cols) {
		return ErrOutOfBounds
	}
	var (
		length int
		isNull func(int) bool
		value  func(int) string
	)
	switch col := df.cols[index].(type) {
	case *array.String:
		length, isNull, value = col.Len(), col.IsNull, col.Value
	case *array.LargeString:
		length, isNull, value = col.Len(), col.IsNull, col.Value
	default:
		return ErrTypeMismatch
	}
	dtype := dataTypeOf[T]()
	bldr := array.NewBuilder(df.mem, dtype)
	defer bldr.Release()
	ap := bldr.(interface{ Append(T) })
	bldr.Reserve(length)
	for i := 0; i < length; i++ {
		if isNull(i) {
			bldr.AppendNull()
			continue
		}
		if v, ok := parseScalar[T](value(i)); ok {
			ap.Append(v)
		} else {
			bldr.AppendNull()
		}
	}
	out := bldr.NewArray()
	df.cols[index].Release()
	df.cols[index] = out
	df.fields[index].Type = dtype
	return nil
}

func parseScalar[T Native](s string) (T, bool) {
	var out T
	switch p := any(&out).(type) {
	case *int8:
		v, err := strconv.ParseInt(s, 10, 8)
		if err != nil {
			return out, false
		}
		*p = int8(v)
	case *int16:
		v, err := strconv.ParseInt(s, 10, 16)
		if err != nil {
			return out, false
		}
		*p = int16(v)
	case *int32:
		v, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return out, false
		}
		*p = int32(v)
	case *int64:
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return out, false
		}
		*p = v
	case *uint8:
		v, err := strconv.ParseUint(s, 10, 8)
		if err != nil {
			return out, false
		}
		*p = uint8(v)
	case *uint16:
		v, err := strconv.ParseUint(s, 10, 16)
		if err != nil {
			return out, false
		}
		*p = uint16(v)
	case *uint32:
		v, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return out, false
		}
		*p = uint32(v)
	case *uint64:
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return out, false
		}
		*p = v
	case *float32:
		v, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return out, false
		}
		*p = float32(v)
	case *float64:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return out, false
		}
		*p = v
	default:
		return out, false
	}
	return out, true
}

func dataTypeOf[T Native]() arrow.DataType {
	var v T
	switch any(v).(type) {
	case int8:
		return arrow.PrimitiveTypes.Int8
	case int16:
		return arrow.PrimitiveTypes.Int16
	case int32:
		return arrow.PrimitiveTypes.Int32
	case int64:
		return arrow.PrimitiveTypes.Int64
	case uint8:
		return arrow.PrimitiveTypes.Uint8
	case uint16:
		return arrow.PrimitiveTypes.Uint16
	case uint32:
		return arrow.PrimitiveTypes.Uint32
	case uint64:
		return arrow.PrimitiveTypes.Uint64
	case float32:
		return arrow.PrimitiveTypes.Float32
	default:
		return arrow.PrimitiveTypes.Float64
	}
}
