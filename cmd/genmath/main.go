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

// Command genmath regenerates math.gen.go, the scalar arithmetic
// mutators of DataFrame. For every entry of the type matrix and every
// operation of the fixed set it emits a pair of methods: one addressing
// the column by name, one by position. The matrix, the operation set
// and the destination path are fixed at build time; the command takes
// no arguments and is meant to be run from the repository root via
// go generate.
package main

import (
	"log"
	"os"
)

// outputPath is the single, fixed destination, overwritten per run.
const outputPath = "math.gen.go"

func main() {
	log.SetFlags(0)
	log.SetPrefix("genmath: ")

	e := &Emitter{Matrix: BuildMatrix(), Ops: Operations()}
	src, err := e.Generate()
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(outputPath, src, 0o644); err != nil {
		log.Fatal(err)
	}
}
