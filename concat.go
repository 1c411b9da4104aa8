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
	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"
)

// Concat concatenates data frames row-wise into a new frame. The
// result carries the union of all columns in first-appearance order;
// frames missing a column contribute null runs of their own row count.
// Frame metadata is merged with later frames overriding earlier keys.
// Empty frames are skipped.
func Concat(mem memory.Allocator, dfs ...*DataFrame) (*DataFrame, error) {
	out := New(mem)
	if len(dfs) == 0 {
		return out, nil
	}
	var fields []arrow.Field
	for _, df := range dfs {
		for k, v := range df.meta {
			out.meta[k] = v
		}
		if df.IsEmpty() {
			continue
		}
		for _, field := range df.fields {
			known := false
			for _, f := range fields {
				if f.Name == field.Name {
					known = true
					break
				}
			}
			if !known {
				fields = append(fields, field)
			}
		}
	}
	for _, field := range fields {
		if err := concatColumn(out, field, dfs); err != nil {
			out.Release()
			return nil, err
		}
	}
	return out, nil
}

// concatColumn appends the merged column for one field of the union.
// The storage type comes from the first frame actually holding the
// column; null fills match it regardless of the declared field type.
func concatColumn(out *DataFrame, field arrow.Field, dfs []*DataFrame) error {
	var parts []arrow.Array
	var fills []arrow.Array
	defer func() {
		for _, f := range fills {
			f.Release()
		}
	}()
	var storage arrow.DataType
	for _, df := range dfs {
		if df.IsEmpty() {
			continue
		}
		if pos, ok := df.ColumnIndex(field.Name); ok {
			if storage == nil {
				storage = df.cols[pos].DataType()
			}
			parts = append(parts, df.cols[pos])
		} else {
			parts = append(parts, nil)
		}
	}
	rowIdx := 0
	for _, df := range dfs {
		if df.IsEmpty() {
			continue
		}
		if parts[rowIdx] == nil {
			fill := array.MakeArrayOfNull(out.mem, storage, df.NumRows())
			fills = append(fills, fill)
			parts[rowIdx] = fill
		}
		rowIdx++
	}
	merged, err := array.Concatenate(parts, out.mem)
	if err != nil {
		return err
	}
	err = out.AddSeriesWithType(field.Name, merged, field.Type, field.Metadata)
	merged.Release()
	return err
}
