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
	"fmt"
	"strings"
)

// Bit widths eligible for generation, ascending. The inclusion rules in
// BuildMatrix decide which numeric categories exist per width.
var widths = [...]int{8, 16, 32, 64, 128}

// TypeEntry describes one numeric representation eligible for generated
// arithmetic mutators. Kind is globally unique across the matrix and
// every other field is derived from it.
type TypeEntry struct {
	Kind    string // short kind identifier: i8 .. i128, u8 .. u64, f32, f64
	Method  string // exported method-name prefix: I8 .. F64
	Value   string // Go type of the scalar value argument
	Storage string // expression of the arrow storage data type
	Kernel  string // suffix of the arithmetic routine names: Int8 .. Dec128
}

// Operation is one scalar arithmetic operation. The operation set is
// fixed and ordered; operations carry no parameters.
type Operation struct {
	Name   string // add, sub, mul, div
	Method string // method-name fragment: Add, Sub, Mul, Div
	Symbol string // arithmetic symbol, used in doc comments
}

// Operations returns the fixed operation set, always in the order add,
// sub, mul, div.
func Operations() []Operation {
	return []Operation{
		{Name: "add", Method: "Add", Symbol: "+"},
		{Name: "sub", Method: "Sub", Symbol: "-"},
		{Name: "mul", Method: "Mul", Symbol: "*"},
		{Name: "div", Method: "Div", Symbol: "/"},
	}
}

// BuildMatrix returns the ordered type entries. Widths are walked in
// ascending order; per width the inclusion rules apply in a fixed
// order: a signed entry for every width, an unsigned entry up to 64
// bits, a float entry at 32 and 64 bits only.
func BuildMatrix() []TypeEntry {
	var entries []TypeEntry
	for _, w := range widths {
		entries = append(entries, signedEntry(w))
		if w <= 64 {
			entries = append(entries, unsignedEntry(w))
		}
		if w >= 32 && w <= 64 {
			entries = append(entries, floatEntry(w))
		}
	}
	return entries
}

func signedEntry(w int) TypeEntry {
	kind := fmt.Sprintf("i%d", w)
	if w == 128 {
		// no native 128-bit integer in Go: values travel as
		// decimal128.Num and columns use Int128Type storage
		return TypeEntry{
			Kind:    kind,
			Method:  exportKind(kind),
			Value:   "decimal128.Num",
			Storage: "Int128Type",
			Kernel:  "Dec128",
		}
	}
	return TypeEntry{
		Kind:    kind,
		Method:  exportKind(kind),
		Value:   fmt.Sprintf("int%d", w),
		Storage: fmt.Sprintf("arrow.PrimitiveTypes.Int%d", w),
		Kernel:  fmt.Sprintf("Int%d", w),
	}
}

func unsignedEntry(w int) TypeEntry {
	kind := fmt.Sprintf("u%d", w)
	return TypeEntry{
		Kind:    kind,
		Method:  exportKind(kind),
		Value:   fmt.Sprintf("uint%d", w),
		Storage: fmt.Sprintf("arrow.PrimitiveTypes.Uint%d", w),
		Kernel:  fmt.Sprintf("Uint%d", w),
	}
}

func floatEntry(w int) TypeEntry {
	kind := fmt.Sprintf("f%d", w)
	return TypeEntry{
		Kind:    kind,
		Method:  exportKind(kind),
		Value:   fmt.Sprintf("float%d", w),
		Storage: fmt.Sprintf("arrow.PrimitiveTypes.Float%d", w),
		Kernel:  fmt.Sprintf("Float%d", w),
	}
}

// exportKind derives the exported method-name prefix from a kind
// identifier: "i8" becomes "I8".
func exportKind(kind string) string {
	return strings.ToUpper(kind[:1]) + kind[1:]
}
