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

import "errors"

// Error kinds returned by DataFrame operations. Errors carrying extra
// detail (such as a column name) wrap these sentinels, so callers
// should match with errors.Is.
var (
	ErrOutOfBounds    = errors.New("index out of bounds")
	ErrRowsNotMatch   = errors.New("row count does not match")
	ErrColsNotMatch   = errors.New("column count does not match")
	ErrTypeMismatch   = errors.New("type does not match")
	ErrAlreadyExists  = errors.New("already exists")
	ErrNotFound       = errors.New("not found")
	ErrUnimplemented  = errors.New("feature/type not implemented")
	ErrOverflow       = errors.New("arithmetic overflow")
	ErrDivisionByZero = errors.New("division by zero")
)
