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

package db

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/goccy/go-json"

	"github.com/alttch/myval"
)

// FieldParams tunes how one data frame column is pushed.
type FieldParams struct {
	// Key marks the column as part of the conflict target: rows
	// matching on all key columns are updated instead of inserted.
	Key bool
	// JSON validates the column's string values as JSON before
	// binding, for json/jsonb target columns.
	JSON bool
}

// Params describes the target table for Push.
type Params struct {
	Table  string
	Schema string
	// Fields maps column names to per-column parameters. Columns
	// without an entry are pushed with defaults.
	Fields map[string]FieldParams
	// Placeholder formats the 1-based positional bind marker.
	// Defaults to PostgreSQL-style "$n".
	Placeholder func(pos int) string
}

const forbiddenSymbols = "\"'`"

func quoteIdent(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, forbiddenSymbols) {
		return "", fmt.Errorf("invalid identifier: %q", name)
	}
	return `"` + name + `"`, nil
}

// Push inserts the frame's rows into a table, upserting on the key
// columns when any are marked. Returns the number of rows pushed. The
// whole push runs in one transaction.
func Push(ctx context.Context, dbc *sql.DB, df *myval.DataFrame, params Params) (int, error) {
	if df.IsEmpty() {
		return 0, nil
	}
	table, err := quoteIdent(params.Table)
	if err != nil {
		return 0, err
	}
	if params.Schema != "" {
		schema, err := quoteIdent(params.Schema)
		if err != nil {
			return 0, err
		}
		table = schema + "." + table
	}
	placeholder := params.Placeholder
	if placeholder == nil {
		placeholder = func(pos int) string { return fmt.Sprintf("$%d", pos) }
	}

	names := df.Names()
	quoted := make([]string, len(names))
	marks := make([]string, len(names))
	var keys, updates []string
	for i, name := range names {
		q, err := quoteIdent(name)
		if err != nil {
			return 0, err
		}
		quoted[i] = q
		marks[i] = placeholder(i + 1)
		if params.Fields[name].Key {
			keys = append(keys, q)
		} else {
			updates = append(updates, q+" = excluded."+q)
		}
	}
	sort.Strings(keys)

	var sb strings.Builder
	fmt.Fprintf(&sb, "INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(quoted, ", "), strings.Join(marks, ", "))
	if len(keys) > 0 {
		fmt.Fprintf(&sb, " ON CONFLICT (%s)", strings.Join(keys, ", "))
		if len(updates) > 0 {
			fmt.Fprintf(&sb, " DO UPDATE SET %s", strings.Join(updates, ", "))
		} else {
			sb.WriteString(" DO NOTHING")
		}
	}

	tx, err := dbc.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()
	stmt, err := tx.PrepareContext(ctx, sb.String())
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	cols := df.Columns()
	pushed := 0
	args := make([]any, len(cols))
	for row := 0; row < df.NumRows(); row++ {
		for i, col := range cols {
			v, err := bindValue(col, row, params.Fields[names[i]])
			if err != nil {
				return pushed, fmt.Errorf("column %s row %d: %w", names[i], row, err)
			}
			args[i] = v
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return pushed, err
		}
		pushed++
	}
	if err := tx.Commit(); err != nil {
		return pushed, err
	}
	return pushed, nil
}

// bindValue converts one cell into a driver-bindable value. Nulls bind
// as nil, timestamps as time.Time in the column's unit.
func bindValue(col arrow.Array, row int, fp FieldParams) (any, error) {
	if col.IsNull(row) {
		return nil, nil
	}
	switch c := col.(type) {
	case *array.Boolean:
		return c.Value(row), nil
	case *array.Int8:
		return c.Value(row), nil
	case *array.Int16:
		return c.Value(row), nil
	case *array.Int32:
		return c.Value(row), nil
	case *array.Int64:
		return c.Value(row), nil
	case *array.Uint8:
		return c.Value(row), nil
	case *array.Uint16:
		return c.Value(row), nil
	case *array.Uint32:
		return c.Value(row), nil
	case *array.Uint64:
		return c.Value(row), nil
	case *array.Float32:
		return c.Value(row), nil
	case *array.Float64:
		return c.Value(row), nil
	case *array.String:
		s := c.Value(row)
		if fp.JSON && !json.Valid([]byte(s)) {
			return nil, fmt.Errorf("invalid json value")
		}
		return s, nil
	case *array.LargeString:
		s := c.Value(row)
		if fp.JSON && !json.Valid([]byte(s)) {
			return nil, fmt.Errorf("invalid json value")
		}
		return s, nil
	case *array.Timestamp:
		dt := c.DataType().(*arrow.TimestampType)
		return timestampTime(c.Value(row), dt.Unit), nil
	default:
		return nil, fmt.Errorf("%w: binding for %s", myval.ErrUnimplemented, col.DataType())
	}
}

func timestampTime(v arrow.Timestamp, unit arrow.TimeUnit) time.Time {
	switch unit {
	case arrow.Second:
		return time.Unix(int64(v), 0).UTC()
	case arrow.Millisecond:
		return time.UnixMilli(int64(v)).UTC()
	case arrow.Microsecond:
		return time.UnixMicro(int64(v)).UTC()
	default:
		return time.Unix(0, int64(v)).UTC()
	}
}
