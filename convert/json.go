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

// Package convert translates data frames to and from columnar JSON
// payloads: a JSON object mapping column names to value arrays, with
// null for missing elements.
package convert

import (
	"bytes"
	"fmt"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"
	"github.com/goccy/go-json"

	"github.com/alttch/myval"
)

type typeMapping struct {
	name  string
	dtype arrow.DataType
}

// Parser builds data frames out of columnar JSON objects. Columns are
// declared up front with WithTypeMapping; declaration order becomes
// column order. Keys of the payload not covered by a mapping are
// ignored, mapped keys absent from the payload come out null-filled.
type Parser struct {
	mem      memory.Allocator
	mappings []typeMapping
}

func NewParser(mem memory.Allocator) *Parser {
	return &Parser{mem: mem}
}

// WithTypeMapping declares a column and its arrow storage type. The
// receiver is returned for chaining.
func (p *Parser) WithTypeMapping(name string, dtype arrow.DataType) *Parser {
	p.mappings = append(p.mappings, typeMapping{name: name, dtype: dtype})
	return p
}

// Parse decodes a columnar JSON object into a data frame. Payloads
// that are not JSON objects are rejected.
func (p *Parser) Parse(data []byte) (*myval.DataFrame, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("%w: non-object json payload", myval.ErrUnimplemented)
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return nil, err
	}
	return p.ParseObject(obj)
}

// ParseObject builds a data frame from pre-split raw column payloads.
// Present mappings are decoded first so that absent ones can be
// null-filled to the payload's row count regardless of declaration
// order; the frame still comes out in declaration order.
func (p *Parser) ParseObject(obj map[string]json.RawMessage) (*myval.DataFrame, error) {
	cols := make([]arrow.Array, len(p.mappings))
	defer func() {
		for _, col := range cols {
			if col != nil {
				col.Release()
			}
		}
	}()
	rows := 0
	for i, m := range p.mappings {
		raw, ok := obj[m.name]
		if !ok {
			continue
		}
		col, err := decodeColumn(p.mem, m.dtype, raw)
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", m.name, err)
		}
		cols[i] = col
		rows = col.Len()
	}
	df := myval.New(p.mem)
	for i, m := range p.mappings {
		col := cols[i]
		if col == nil {
			col = array.MakeArrayOfNull(p.mem, m.dtype, rows)
			cols[i] = col
		}
		if err := df.AddSeriesWithType(m.name, col, m.dtype, arrow.Metadata{}); err != nil {
			df.Release()
			return nil, fmt.Errorf("column %s: %w", m.name, err)
		}
	}
	return df, nil
}

type jsonScalar interface {
	int8 | int16 | int32 | int64 |
		uint8 | uint16 | uint32 | uint64 |
		float32 | float64 | string | bool
}

func decodePrimitive[T jsonScalar](mem memory.Allocator, dtype arrow.DataType, raw json.RawMessage) (arrow.Array, error) {
	var vals []*T
	if err := json.Unmarshal(raw, &vals); err != nil {
		return nil, err
	}
	bldr := array.NewBuilder(mem, dtype)
	defer bldr.Release()
	ap := bldr.(interface{ Append(T) })
	bldr.Reserve(len(vals))
	for _, v := range vals {
		if v == nil {
			bldr.AppendNull()
		} else {
			ap.Append(*v)
		}
	}
	return bldr.NewArray(), nil
}

func decodeTimestamps(mem memory.Allocator, dtype arrow.DataType, raw json.RawMessage) (arrow.Array, error) {
	var vals []*int64
	if err := json.Unmarshal(raw, &vals); err != nil {
		return nil, err
	}
	bldr := array.NewTimestampBuilder(mem, dtype.(*arrow.TimestampType))
	defer bldr.Release()
	bldr.Reserve(len(vals))
	for _, v := range vals {
		if v == nil {
			bldr.AppendNull()
		} else {
			bldr.Append(arrow.Timestamp(*v))
		}
	}
	return bldr.NewArray(), nil
}

func decodeColumn(mem memory.Allocator, dtype arrow.DataType, raw json.RawMessage) (arrow.Array, error) {
	switch dtype.ID() {
	case arrow.INT8:
		return decodePrimitive[int8](mem, dtype, raw)
	case arrow.INT16:
		return decodePrimitive[int16](mem, dtype, raw)
	case arrow.INT32:
		return decodePrimitive[int32](mem, dtype, raw)
	case arrow.INT64:
		return decodePrimitive[int64](mem, dtype, raw)
	case arrow.UINT8:
		return decodePrimitive[uint8](mem, dtype, raw)
	case arrow.UINT16:
		return decodePrimitive[uint16](mem, dtype, raw)
	case arrow.UINT32:
		return decodePrimitive[uint32](mem, dtype, raw)
	case arrow.UINT64:
		return decodePrimitive[uint64](mem, dtype, raw)
	case arrow.FLOAT32:
		return decodePrimitive[float32](mem, dtype, raw)
	case arrow.FLOAT64:
		return decodePrimitive[float64](mem, dtype, raw)
	case arrow.STRING:
		return decodePrimitive[string](mem, dtype, raw)
	case arrow.BOOL:
		return decodePrimitive[bool](mem, dtype, raw)
	case arrow.TIMESTAMP:
		return decodeTimestamps(mem, dtype, raw)
	default:
		return nil, fmt.Errorf("%w: json decoding for %s", myval.ErrUnimplemented, dtype)
	}
}

// ToJSON encodes a data frame as a columnar JSON object, keeping the
// frame's column order. Timestamps come out as integers in the
// column's time unit.
func ToJSON(df *myval.DataFrame) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range df.Names() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		vals, err := columnValues(df.Columns()[i])
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", name, err)
		}
		body, err := json.Marshal(vals)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(body)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func columnValues(col arrow.Array) ([]any, error) {
	out := make([]any, col.Len())
	assign := func(value func(int) any) {
		for i := range out {
			if !col.IsNull(i) {
				out[i] = value(i)
			}
		}
	}
	switch c := col.(type) {
	case *array.Int8:
		assign(func(i int) any { return c.Value(i) })
	case *array.Int16:
		assign(func(i int) any { return c.Value(i) })
	case *array.Int32:
		assign(func(i int) any { return c.Value(i) })
	case *array.Int64:
		assign(func(i int) any { return c.Value(i) })
	case *array.Uint8:
		assign(func(i int) any { return c.Value(i) })
	case *array.Uint16:
		assign(func(i int) any { return c.Value(i) })
	case *array.Uint32:
		assign(func(i int) any { return c.Value(i) })
	case *array.Uint64:
		assign(func(i int) any { return c.Value(i) })
	case *array.Float32:
		assign(func(i int) any { return c.Value(i) })
	case *array.Float64:
		assign(func(i int) any { return c.Value(i) })
	case *array.String:
		assign(func(i int) any { return c.Value(i) })
	case *array.LargeString:
		assign(func(i int) any { return c.Value(i) })
	case *array.Boolean:
		assign(func(i int) any { return c.Value(i) })
	case *array.Timestamp:
		assign(func(i int) any { return int64(c.Value(i)) })
	default:
		return nil, fmt.Errorf("%w: json encoding for %s", myval.ErrUnimplemented, col.DataType())
	}
	return out, nil
}
