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

package main

import (
	"bytes"
	"io"
	"text/template"

	"golang.org/x/tools/imports"
)

const fileHeader = `// Copyright 2023 myval Authors
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

// Code generated by "go run ./cmd/genmath"; DO NOT EDIT.

package myval

import (
	"fmt"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/decimal128"
)
`

// pairTemplate renders one generated function pair: the name-addressed
// mutator resolving the column position, and the position-addressed
// mutator delegating to applyScalar with the column's storage type and
// the (kind, operation) arithmetic routine.
const pairTemplate = `
// {{.NameFn}} applies x {{.Op.Symbol}} value to each element of the named {{.Entry.Kind}} column.
func (df *DataFrame) {{.NameFn}}(name string, value {{.Entry.Value}}) error {
	pos, ok := df.ColumnIndex(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return df.{{.IndexFn}}(pos, value)
}

// {{.IndexFn}} applies x {{.Op.Symbol}} value to each element of the {{.Entry.Kind}} column at index.
func (df *DataFrame) {{.IndexFn}}(index int, value {{.Entry.Value}}) error {
	return applyScalar(df, index, {{.Entry.Storage}}, value, {{.Kernel}})
}
`

// pairData is the template payload for one (TypeEntry, Operation) pair.
type pairData struct {
	Entry   TypeEntry
	Op      Operation
	NameFn  string // name-addressed function: I8Add
	IndexFn string // position-addressed function: I8AddAt
	Kernel  string // arithmetic routine: addInt8
}

// Emitter expands the type matrix against the operation set into
// function pairs, written as source text in emission order.
type Emitter struct {
	Matrix []TypeEntry
	Ops    []Operation
}

// emit writes the generated file to w: header first, then one pair per
// (entry, operation), entries outer, operations inner. The first write
// error aborts the emission.
func (e *Emitter) emit(w io.Writer) error {
	if _, err := io.WriteString(w, fileHeader); err != nil {
		return err
	}
	tmpl := template.Must(template.New("pair").Parse(pairTemplate))
	for _, entry := range e.Matrix {
		for _, op := range e.Ops {
			data := pairData{
				Entry:   entry,
				Op:      op,
				NameFn:  entry.Method + op.Method,
				IndexFn: entry.Method + op.Method + "At",
				Kernel:  op.Name + entry.Kernel,
			}
			if err := tmpl.Execute(w, data); err != nil {
				return err
			}
		}
	}
	return nil
}

// Generate renders the complete generated file and gofmt-formats it.
func (e *Emitter) Generate() ([]byte, error) {
	var buf bytes.Buffer
	if err := e.emit(&buf); err != nil {
		return nil, err
	}
	return imports.Process(outputPath, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
}
