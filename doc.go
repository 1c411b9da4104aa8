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

// Package myval is a lightweight columnar data frame library built on
// Apache Arrow.
//
// A DataFrame is an ordered set of named columns, each backed by an
// arrow array. The package provides column management, slicing, IPC
// stream serialization, string-column parsing, and a generated family
// of in-place scalar arithmetic mutators (see math.gen.go, produced by
// cmd/genmath). JSON and SQL conversions live in the convert and db
// subpackages.
//
// DataFrames hold references to refcounted arrow arrays: call Release
// when a frame is no longer needed.
package myval
