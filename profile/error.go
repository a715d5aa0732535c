/*
 * Copyright 2025 modularity-tools
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *    http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package profile

import "fmt"

// StructureError signals a document that is not a mapping or is missing a
// required key.
type StructureError struct {
	msg string
	err error
}

func NewStructureError(msg string, err error) *StructureError {
	return &StructureError{msg: msg, err: err}
}

func (e *StructureError) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

func (e *StructureError) Unwrap() error {
	return e.err
}

// FormatError signals a version or release field that can't be coerced to its
// numeric shape.
type FormatError struct {
	field string
	err   error
}

func NewFormatError(field string, err error) *FormatError {
	return &FormatError{field: field, err: err}
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed %s: %s", e.field, e.err)
}

func (e *FormatError) Unwrap() error {
	return e.err
}

// NameMismatchError signals an attempt to order profiles of different release
// families.
type NameMismatchError struct {
	A string
	B string
}

func NewNameMismatchError(a, b string) *NameMismatchError {
	return &NameMismatchError{A: a, B: b}
}

func (e *NameMismatchError) Error() string {
	return fmt.Sprintf("can't compare installation profiles with different names ('%s' != '%s')", e.A, e.B)
}

// ConsistencyError signals a module selection whose default stream is empty or
// not among its available streams.
type ConsistencyError struct {
	Module string
	Stream string
}

func NewConsistencyError(module, stream string) *ConsistencyError {
	return &ConsistencyError{Module: module, Stream: stream}
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("default stream '%s' of module '%s' not in available streams", e.Stream, e.Module)
}
