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
	"bytes"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/ipc"
	"github.com/apache/arrow/go/v17/arrow/memory"
)

// DataFrame is an ordered set of named, equally sized columns backed by
// arrow arrays. Each column holds a single array; if more chunks are
// required, consider creating a new data frame per chunk.
//
// A DataFrame retains a reference to every column it holds. Release
// must be called once the frame is no longer needed.
type DataFrame struct {
	mem    memory.Allocator
	fields []arrow.Field
	cols   []arrow.Array
	meta   map[string]string
}

// New creates an empty data frame. If mem is nil, memory.DefaultAllocator
// is used for all columns the frame builds internally.
func New(mem memory.Allocator) *DataFrame {
	if mem == nil {
		mem = memory.DefaultAllocator
	}
	return &DataFrame{mem: mem, meta: make(map[string]string)}
}

// NewWithCapacity creates an empty data frame preallocated for the
// given number of columns.
func NewWithCapacity(mem memory.Allocator, cols int) *DataFrame {
	df := New(mem)
	df.fields = make([]arrow.Field, 0, cols)
	df.cols = make([]arrow.Array, 0, cols)
	return df
}

// LocalTimeZone returns the abbreviated name of the local time zone,
// suitable for the tz argument of NewTimeseries.
func LocalTimeZone() string {
	name, _ := time.Now().Zone()
	return name
}

// NewTimeseries creates a data frame with a single "time" column built
// from float64 second timestamps, stored as an arrow timestamp column
// with the given unit. tz is recorded in the column type; pass an empty
// string for a zone-less timestamp.
func NewTimeseries(mem memory.Allocator, timestamps []float64, unit arrow.TimeUnit, tz string) *DataFrame {
	df := New(mem)
	dtype := &arrow.TimestampType{Unit: unit, TimeZone: tz}
	bldr := array.NewTimestampBuilder(df.mem, dtype)
	defer bldr.Release()
	bldr.Reserve(len(timestamps))
	for _, v := range timestamps {
		bldr.Append(arrow.Timestamp(floatTimestamp(v, unit)))
	}
	ts := bldr.NewArray()
	defer ts.Release()
	if err := df.AddSeries("time", ts); err != nil {
		// the first column of an empty frame cannot mismatch
		panic(err)
	}
	return df
}

// NewTimeseriesRFC3339 creates a data frame with a single "time" column
// of RFC 3339 strings in the local time zone, built from float64 second
// timestamps.
func NewTimeseriesRFC3339(mem memory.Allocator, timestamps []float64) *DataFrame {
	df := New(mem)
	bldr := array.NewStringBuilder(df.mem)
	defer bldr.Release()
	bldr.Reserve(len(timestamps))
	for _, v := range timestamps {
		sec, frac := math.Modf(v)
		t := time.Unix(int64(sec), int64(frac*1e9)).Local()
		bldr.Append(t.Format(time.RFC3339))
	}
	ts := bldr.NewArray()
	defer ts.Release()
	if err := df.AddSeries("time", ts); err != nil {
		panic(err)
	}
	return df
}

// floatTimestamp converts a float64 second timestamp to an integer
// timestamp in the given unit.
func floatTimestamp(v float64, unit arrow.TimeUnit) int64 {
	sec, frac := math.Modf(v)
	s := int64(sec)
	nsec := int64(frac * 1e9)
	switch unit {
	case arrow.Second:
		return s
	case arrow.Millisecond:
		return s*1_000 + nsec/1_000_000
	case arrow.Microsecond:
		return s*1_000_000 + nsec/1_000
	default:
		return s*1_000_000_000 + nsec
	}
}

// FromRecord creates a data frame from an arrow record, retaining its
// columns. The record remains owned by the caller.
func FromRecord(mem memory.Allocator, rec arrow.Record) *DataFrame {
	df := New(mem)
	df.fields = append(df.fields, rec.Schema().Fields()...)
	for _, col := range rec.Columns() {
		col.Retain()
		df.cols = append(df.cols, col)
	}
	df.meta = metadataToMap(rec.Schema().Metadata())
	return df
}

// FromParts assembles a data frame from parallel field and column
// slices. All columns must hold the same number of rows. The frame
// retains the columns; the caller keeps its own references.
func FromParts(mem memory.Allocator, fields []arrow.Field, cols []arrow.Array, metadata map[string]string) (*DataFrame, error) {
	if len(fields) != len(cols) {
		return nil, ErrColsNotMatch
	}
	if len(cols) > 0 {
		rows := cols[0].Len()
		for _, col := range cols[1:] {
			if col.Len() != rows {
				return nil, ErrRowsNotMatch
			}
		}
	}
	df := New(mem)
	df.fields = append(df.fields, fields...)
	for _, col := range cols {
		col.Retain()
		df.cols = append(df.cols, col)
	}
	for k, v := range metadata {
		df.meta[k] = v
	}
	return df, nil
}

// Release releases all columns and empties the frame. The frame may be
// reused afterwards.
func (df *DataFrame) Release() {
	for _, col := range df.cols {
		col.Release()
	}
	df.cols = df.cols[:0]
	df.fields = df.fields[:0]
}

// IsEmpty reports whether the frame has no columns.
func (df *DataFrame) IsEmpty() bool { return len(df.cols) == 0 }

// NumCols returns the number of columns.
func (df *DataFrame) NumCols() int { return len(df.cols) }

// NumRows returns the number of rows, zero for an empty frame.
func (df *DataFrame) NumRows() int {
	if len(df.cols) == 0 {
		return 0
	}
	return df.cols[0].Len()
}

// Names returns the column names in order.
func (df *DataFrame) Names() []string {
	names := make([]string, len(df.fields))
	for i, f := range df.fields {
		names[i] = f.Name
	}
	return names
}

// Fields returns the column field descriptors. The returned slice is
// owned by the frame and must not be modified.
func (df *DataFrame) Fields() []arrow.Field { return df.fields }

// Columns returns the column arrays. The returned slice and arrays are
// owned by the frame; retain any array kept past the frame's lifetime.
func (df *DataFrame) Columns() []arrow.Array { return df.cols }

// Metadata returns the frame metadata. The returned map is live: edits
// are reflected in the frame.
func (df *DataFrame) Metadata() map[string]string { return df.meta }

// SetMetadata replaces the frame metadata.
func (df *DataFrame) SetMetadata(metadata map[string]string) {
	df.meta = make(map[string]string, len(metadata))
	for k, v := range metadata {
		df.meta[k] = v
	}
}

// SetMetadataField sets a single frame metadata field.
func (df *DataFrame) SetMetadataField(name, value string) { df.meta[name] = value }

// Size returns the approximate in-memory size of the column data in
// bytes. Variable-width columns (strings) are estimated by element
// count only.
func (df *DataFrame) Size() int {
	size := 0
	for _, col := range df.cols {
		var w int
		switch col.DataType().ID() {
		case arrow.BOOL, arrow.INT8, arrow.UINT8:
			w = 1
		case arrow.INT16, arrow.UINT16:
			w = 2
		case arrow.INT32, arrow.UINT32, arrow.FLOAT32:
			w = 4
		default:
			w = 8
		}
		size += col.Len() * w
	}
	return size
}

// ColumnIndex returns the position of the named column.
func (df *DataFrame) ColumnIndex(name string) (int, bool) {
	for i, f := range df.fields {
		if f.Name == name {
			return i, true
		}
	}
	return 0, false
}

// AddSeries appends a column, using the array's own data type for the
// field. The frame retains the array.
func (df *DataFrame) AddSeries(name string, col arrow.Array) error {
	return df.AddSeriesWithType(name, col, nil, arrow.Metadata{})
}

// AddSeriesWithType appends a column with an explicit field data type
// and metadata. A nil data type falls back to the array's own type. The
// frame retains the array.
func (df *DataFrame) AddSeriesWithType(name string, col arrow.Array, dtype arrow.DataType, metadata arrow.Metadata) error {
	if len(df.cols) > 0 && col.Len() != df.cols[0].Len() {
		return ErrRowsNotMatch
	}
	if dtype == nil {
		dtype = col.DataType()
	}
	col.Retain()
	df.fields = append(df.fields, arrow.Field{Name: name, Type: dtype, Nullable: true, Metadata: metadata})
	df.cols = append(df.cols, col)
	return nil
}

// InsertSeries inserts a column at the given position, using the
// array's own data type for the field. The frame retains the array.
func (df *DataFrame) InsertSeries(name string, col arrow.Array, index int) error {
	return df.InsertSeriesWithType(name, col, index, nil, arrow.Metadata{})
}

// InsertSeriesWithType inserts a column at the given position with an
// explicit field data type and metadata.
func (df *DataFrame) InsertSeriesWithType(name string, col arrow.Array, index int, dtype arrow.DataType, metadata arrow.Metadata) error {
	if index < 0 || index > len(df.cols) {
		return ErrOutOfBounds
	}
	if len(df.cols) > 0 && col.Len() != df.cols[0].Len() {
		return ErrRowsNotMatch
	}
	if dtype == nil {
		dtype = col.DataType()
	}
	col.Retain()
	df.fields = append(df.fields, arrow.Field{})
	copy(df.fields[index+1:], df.fields[index:])
	df.fields[index] = arrow.Field{Name: name, Type: dtype, Nullable: true, Metadata: metadata}
	df.cols = append(df.cols, nil)
	copy(df.cols[index+1:], df.cols[index:])
	df.cols[index] = col
	return nil
}

// PopSeries removes the named column and transfers ownership of its
// array to the caller.
func (df *DataFrame) PopSeries(name string) (arrow.Array, arrow.DataType, error) {
	pos, ok := df.ColumnIndex(name)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	col, _, dtype, err := df.PopSeriesAt(pos)
	return col, dtype, err
}

// PopSeriesAt removes the column at the given position and transfers
// ownership of its array to the caller.
func (df *DataFrame) PopSeriesAt(index int) (arrow.Array, string, arrow.DataType, error) {
	if index < 0 || index >= len(df.cols) {
		return nil, "", nil, ErrOutOfBounds
	}
	field := df.fields[index]
	col := df.cols[index]
	df.fields = append(df.fields[:index], df.fields[index+1:]...)
	df.cols = append(df.cols[:index], df.cols[index+1:]...)
	return col, field.Name, field.Type, nil
}

// Rename renames a column. The new name must not collide with another
// column.
func (df *DataFrame) Rename(name, newName string) error {
	pos, ok := df.ColumnIndex(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if other, ok := df.ColumnIndex(newName); ok && other != pos {
		return fmt.Errorf("%w: %s", ErrAlreadyExists, newName)
	}
	df.fields[pos].Name = newName
	return nil
}

// SetNameAt sets the column name at the given position. The new name
// must not collide with another column.
func (df *DataFrame) SetNameAt(index int, newName string) error {
	if index < 0 || index >= len(df.fields) {
		return ErrOutOfBounds
	}
	if other, ok := df.ColumnIndex(newName); ok && other != index {
		return fmt.Errorf("%w: %s", ErrAlreadyExists, newName)
	}
	df.fields[index].Name = newName
	return nil
}

// SetDataType overrides the field data type of the named column. The
// stored array is not converted.
func (df *DataFrame) SetDataType(name string, dtype arrow.DataType) error {
	pos, ok := df.ColumnIndex(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	df.fields[pos].Type = dtype
	return nil
}

// SetDataTypeAt overrides the field data type at the given position.
func (df *DataFrame) SetDataTypeAt(index int, dtype arrow.DataType) error {
	if index < 0 || index >= len(df.fields) {
		return ErrOutOfBounds
	}
	df.fields[index].Type = dtype
	return nil
}

// ColMetadata returns the field metadata of the named column.
func (df *DataFrame) ColMetadata(name string) (arrow.Metadata, error) {
	pos, ok := df.ColumnIndex(name)
	if !ok {
		return arrow.Metadata{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return df.fields[pos].Metadata, nil
}

// ColMetadataAt returns the field metadata at the given position.
func (df *DataFrame) ColMetadataAt(index int) (arrow.Metadata, error) {
	if index < 0 || index >= len(df.fields) {
		return arrow.Metadata{}, ErrOutOfBounds
	}
	return df.fields[index].Metadata, nil
}

// SetColMetadata replaces the field metadata of the named column.
func (df *DataFrame) SetColMetadata(name string, metadata arrow.Metadata) error {
	pos, ok := df.ColumnIndex(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	df.fields[pos].Metadata = metadata
	return nil
}

// SetColMetadataAt replaces the field metadata at the given position.
func (df *DataFrame) SetColMetadataAt(index int, metadata arrow.Metadata) error {
	if index < 0 || index >= len(df.fields) {
		return ErrOutOfBounds
	}
	df.fields[index].Metadata = metadata
	return nil
}

// SetColMetadataField sets a single metadata field on the named column.
func (df *DataFrame) SetColMetadataField(name, metadataField, value string) error {
	pos, ok := df.ColumnIndex(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return df.SetColMetadataFieldAt(pos, metadataField, value)
}

// SetColMetadataFieldAt sets a single metadata field on the column at
// the given position.
func (df *DataFrame) SetColMetadataFieldAt(index int, metadataField, value string) error {
	if index < 0 || index >= len(df.fields) {
		return ErrOutOfBounds
	}
	m := metadataToMap(df.fields[index].Metadata)
	m[metadataField] = value
	df.fields[index].Metadata = arrow.MetadataFrom(m)
	return nil
}

// SetOrdering reorders columns to match names. Unknown names are
// skipped; columns not listed keep their relative positions at the end.
func (df *DataFrame) SetOrdering(names []string) {
	for i, name := range names {
		if pos, ok := df.ColumnIndex(name); ok && pos != i {
			df.fields[i], df.fields[pos] = df.fields[pos], df.fields[i]
			df.cols[i], df.cols[pos] = df.cols[pos], df.cols[i]
		}
	}
}

// SortColumns reorders columns alphabetically by name.
func (df *DataFrame) SortColumns() {
	names := df.Names()
	sort.Strings(names)
	df.SetOrdering(names)
}

// SeriesSliced returns zero-copy slices of all columns. The caller owns
// the returned arrays.
func (df *DataFrame) SeriesSliced(offset, length int) ([]arrow.Array, error) {
	if len(df.cols) == 0 {
		return nil, nil
	}
	if offset < 0 || length < 0 || offset+length > df.cols[0].Len() {
		return nil, ErrOutOfBounds
	}
	out := make([]arrow.Array, len(df.cols))
	for i, col := range df.cols {
		out[i] = array.NewSlice(col, int64(offset), int64(offset+length))
	}
	return out, nil
}

// RecordSliced returns an arrow record over zero-copy slices of all
// columns. The caller owns the record.
func (df *DataFrame) RecordSliced(offset, length int) (arrow.Record, error) {
	cols, err := df.SeriesSliced(offset, length)
	if err != nil {
		return nil, err
	}
	rec := array.NewRecord(df.Schema(), cols, int64(length))
	for _, col := range cols {
		col.Release()
	}
	return rec, nil
}

// Sliced returns a new data frame over zero-copy slices of all columns.
func (df *DataFrame) Sliced(offset, length int) (*DataFrame, error) {
	if len(df.cols) == 0 {
		return New(df.mem), nil
	}
	cols, err := df.SeriesSliced(offset, length)
	if err != nil {
		return nil, err
	}
	out := New(df.mem)
	out.fields = append(out.fields, df.fields...)
	out.cols = cols
	for k, v := range df.meta {
		out.meta[k] = v
	}
	return out, nil
}

// Schema builds the arrow schema of the frame.
func (df *DataFrame) Schema() *arrow.Schema {
	md := arrow.MetadataFrom(df.meta)
	return arrow.NewSchema(df.fields, &md)
}

// Record returns the frame as an arrow record. The caller owns the
// record; the frame keeps its column references.
func (df *DataFrame) Record() arrow.Record {
	return array.NewRecord(df.Schema(), df.cols, int64(df.NumRows()))
}

// ToIPC serializes the frame into a ready-to-send arrow IPC stream
// block.
func (df *DataFrame) ToIPC() ([]byte, error) {
	var buf bytes.Buffer
	w := ipc.NewWriter(&buf, ipc.WithSchema(df.Schema()), ipc.WithAllocator(df.mem))
	rec := df.Record()
	err := w.Write(rec)
	rec.Release()
	if err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FromIPC creates a data frame from a complete arrow IPC stream block.
// Only the first record of the stream is consumed; an empty stream
// yields an empty frame carrying the stream's schema metadata.
func FromIPC(mem memory.Allocator, block []byte) (*DataFrame, error) {
	if mem == nil {
		mem = memory.DefaultAllocator
	}
	rdr, err := ipc.NewReader(bytes.NewReader(block), ipc.WithAllocator(mem))
	if err != nil {
		return nil, err
	}
	defer rdr.Release()
	df := New(mem)
	df.meta = metadataToMap(rdr.Schema().Metadata())
	if rdr.Next() {
		rec := rdr.Record()
		df.fields = append(df.fields, rec.Schema().Fields()...)
		for _, col := range rec.Columns() {
			col.Retain()
			df.cols = append(df.cols, col)
		}
	}
	if err := rdr.Err(); err != nil {
		df.Release()
		return nil, err
	}
	return df, nil
}

func metadataToMap(md arrow.Metadata) map[string]string {
	m := make(map[string]string, md.Len())
	keys, values := md.Keys(), md.Values()
	for i, k := range keys {
		m[k] = values[i]
	}
	return m
}
