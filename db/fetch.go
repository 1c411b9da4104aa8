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

// Package db moves data frames in and out of SQL databases through
// database/sql, with type mappings for PostgreSQL and SQLite.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"

	"github.com/alttch/myval"
)

type kind int

const (
	kindBool kind = iota
	kindInt16
	kindInt32
	kindInt64
	kindFloat32
	kindFloat64
	kindTimestamp
	kindText
	kindJSON
)

// typeKinds maps upper-cased database type names to column kinds.
// Covers the PostgreSQL wire names and the SQLite declared types.
var typeKinds = map[string]kind{
	"BOOL":      kindBool,
	"BOOLEAN":   kindBool,
	"INT2":      kindInt16,
	"SMALLINT":  kindInt16,
	"INT4":      kindInt32,
	"INT":       kindInt32,
	"INT8":      kindInt64,
	"BIGINT":    kindInt64,
	"INTEGER":   kindInt64,
	"FLOAT4":    kindFloat32,
	"FLOAT8":    kindFloat64,
	"REAL":      kindFloat64,
	"DOUBLE":    kindFloat64,
	"NUMERIC":   kindFloat64,
	"TIMESTAMP": kindTimestamp,
	"DATETIME":  kindTimestamp,
	"VARCHAR":   kindText,
	"CHAR":      kindText,
	"NVARCHAR":  kindText,
	"TEXT":      kindText,
	"NAME":      kindText,
	"JSON":      kindJSON,
	"JSONB":     kindJSON,
}

func kindOf(dbType string) (kind, error) {
	name := strings.ToUpper(dbType)
	// strip length suffixes as in VARCHAR(80)
	if i := strings.IndexByte(name, '('); i >= 0 {
		name = name[:i]
	}
	if strings.HasSuffix(name, "TZ") {
		name = strings.TrimSuffix(name, "TZ")
	}
	k, ok := typeKinds[name]
	if !ok {
		return 0, fmt.Errorf("%w: database type %s", myval.ErrUnimplemented, dbType)
	}
	return k, nil
}

// column accumulates scanned values for one result column until the
// chunk is flushed into an arrow array.
type column struct {
	name  string
	kind  kind
	bools []sql.NullBool
	ints  []sql.NullInt64
	flts  []sql.NullFloat64
	times []sql.NullTime
	texts []sql.NullString
}

func (c *column) scanTarget() any {
	switch c.kind {
	case kindBool:
		c.bools = append(c.bools, sql.NullBool{})
		return &c.bools[len(c.bools)-1]
	case kindInt16, kindInt32, kindInt64:
		c.ints = append(c.ints, sql.NullInt64{})
		return &c.ints[len(c.ints)-1]
	case kindFloat32, kindFloat64:
		c.flts = append(c.flts, sql.NullFloat64{})
		return &c.flts[len(c.flts)-1]
	case kindTimestamp:
		c.times = append(c.times, sql.NullTime{})
		return &c.times[len(c.times)-1]
	default:
		c.texts = append(c.texts, sql.NullString{})
		return &c.texts[len(c.texts)-1]
	}
}

// size returns the approximate byte size of the last scanned value,
// used for chunk accounting.
func (c *column) size() int {
	switch c.kind {
	case kindBool:
		return 1
	case kindInt16:
		return 2
	case kindInt32, kindFloat32:
		return 4
	case kindText, kindJSON:
		return len(c.texts[len(c.texts)-1].String)
	default:
		return 8
	}
}

func (c *column) reset() {
	c.bools = c.bools[:0]
	c.ints = c.ints[:0]
	c.flts = c.flts[:0]
	c.times = c.times[:0]
	c.texts = c.texts[:0]
}

// build converts the accumulated values into an arrow array. The
// caller owns the result.
func (c *column) build(mem memory.Allocator) arrow.Array {
	switch c.kind {
	case kindBool:
		b := array.NewBooleanBuilder(mem)
		defer b.Release()
		for _, v := range c.bools {
			if v.Valid {
				b.Append(v.Bool)
			} else {
				b.AppendNull()
			}
		}
		return b.NewArray()
	case kindInt16:
		b := array.NewInt16Builder(mem)
		defer b.Release()
		for _, v := range c.ints {
			if v.Valid {
				b.Append(int16(v.Int64))
			} else {
				b.AppendNull()
			}
		}
		return b.NewArray()
	case kindInt32:
		b := array.NewInt32Builder(mem)
		defer b.Release()
		for _, v := range c.ints {
			if v.Valid {
				b.Append(int32(v.Int64))
			} else {
				b.AppendNull()
			}
		}
		return b.NewArray()
	case kindInt64:
		b := array.NewInt64Builder(mem)
		defer b.Release()
		for _, v := range c.ints {
			if v.Valid {
				b.Append(v.Int64)
			} else {
				b.AppendNull()
			}
		}
		return b.NewArray()
	case kindFloat32:
		b := array.NewFloat32Builder(mem)
		defer b.Release()
		for _, v := range c.flts {
			if v.Valid {
				b.Append(float32(v.Float64))
			} else {
				b.AppendNull()
			}
		}
		return b.NewArray()
	case kindFloat64:
		b := array.NewFloat64Builder(mem)
		defer b.Release()
		for _, v := range c.flts {
			if v.Valid {
				b.Append(v.Float64)
			} else {
				b.AppendNull()
			}
		}
		return b.NewArray()
	case kindTimestamp:
		b := array.NewTimestampBuilder(mem, timestampType)
		defer b.Release()
		for _, v := range c.times {
			if v.Valid {
				b.Append(arrow.Timestamp(v.Time.UnixNano()))
			} else {
				b.AppendNull()
			}
		}
		return b.NewArray()
	default:
		b := array.NewStringBuilder(mem)
		defer b.Release()
		for _, v := range c.texts {
			if v.Valid {
				b.Append(v.String)
			} else {
				b.AppendNull()
			}
		}
		return b.NewArray()
	}
}

var timestampType = &arrow.TimestampType{Unit: arrow.Nanosecond, TimeZone: "UTC"}

// FetchOptions tunes Fetch. A zero value fetches the whole result as
// one frame with the default allocator.
type FetchOptions struct {
	// Mem is the allocator for the produced frames.
	Mem memory.Allocator
	// ChunkSize caps the approximate data size in bytes of each
	// emitted frame. Zero means a single frame.
	ChunkSize int
}

// Fetch runs a query and streams the result as data frames through
// emit. Frames are cut at approximately ChunkSize bytes of column
// data; the callback owns each frame. Column types are derived from
// the driver's reported database types.
func Fetch(ctx context.Context, dbc *sql.DB, query string, opts FetchOptions, emit func(*myval.DataFrame) error) error {
	mem := opts.Mem
	if mem == nil {
		mem = memory.DefaultAllocator
	}
	rows, err := dbc.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	types, err := rows.ColumnTypes()
	if err != nil {
		return err
	}
	cols := make([]*column, len(types))
	for i, ct := range types {
		k, err := kindOf(ct.DatabaseTypeName())
		if err != nil {
			return fmt.Errorf("column %s: %w", ct.Name(), err)
		}
		cols[i] = &column{name: ct.Name(), kind: k}
	}

	flush := func() error {
		df := myval.New(mem)
		for _, c := range cols {
			arr := c.build(mem)
			err := df.AddSeries(c.name, arr)
			arr.Release()
			if err != nil {
				df.Release()
				return err
			}
			c.reset()
		}
		return emit(df)
	}

	size := 0
	pending := false
	targets := make([]any, len(cols))
	for rows.Next() {
		for i, c := range cols {
			targets[i] = c.scanTarget()
		}
		if err := rows.Scan(targets...); err != nil {
			return err
		}
		pending = true
		for _, c := range cols {
			size += c.size()
		}
		if opts.ChunkSize > 0 && size >= opts.ChunkSize {
			if err := flush(); err != nil {
				return err
			}
			size = 0
			pending = false
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if pending {
		return flush()
	}
	return nil
}

// FetchAll runs a query and returns the whole result as one frame.
// The frame is empty when the query matched no rows.
func FetchAll(ctx context.Context, dbc *sql.DB, query string, mem memory.Allocator) (*myval.DataFrame, error) {
	out := myval.New(mem)
	err := Fetch(ctx, dbc, query, FetchOptions{Mem: mem}, func(df *myval.DataFrame) error {
		out.Release()
		out = df
		return nil
	})
	if err != nil {
		out.Release()
		return nil, err
	}
	return out, nil
}
