/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package status

import (
	"bytes"
	"encoding"
	"errors"
	"strings"
)

// Status is the canonical, validated representation of an envelope status.
//
// It is defined as a separate type (not just string) so that callers have to
// go through Parse before raw input is treated as a discriminator.
type Status string

// The three envelope variants.
const (
	// Success marks a response whose "data" key carries the result of the
	// call. The data itself may be null.
	Success Status = "success"

	// Fail marks a response rejected for an expected, handled reason. "data"
	// carries the details (usually per-field validation messages).
	Fail Status = "fail"

	// Error marks a response that failed while processing. "message" is
	// required; "code" and "data" are optional.
	Error Status = "error"
)

// Empty is the zero-value status. It is considered "not provided".
var Empty Status = ""

var (
	// ErrStatusInvalid is returned when a value cannot be parsed or validated
	// as an envelope status.
	ErrStatusInvalid = errors.New("jsend: invalid status")
)

var (
	_ encoding.TextMarshaler   = (*Status)(nil)
	_ encoding.TextUnmarshaler = (*Status)(nil)
)

// All returns the valid statuses in declaration order.
func All() []Status {
	return []Status{Success, Fail, Error}
}

// Parse takes a user-provided string, normalizes it and validates it.
// On success it returns a canonical Status value.
func Parse(s string) (Status, error) {
	s = Normalize(s)
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Status(s), nil
}

// MustParse is the panic-on-error variant of Parse.
func MustParse(s string) Status {
	st, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return st
}

// Normalize trims surrounding spaces and lowercases the value.
//
// It does NOT guarantee that the result is valid. Wire decoding does not
// normalize at all: a status of "Success" on the wire is not a valid envelope.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return s
}

// Validate checks whether the provided Status is one of the three variants.
func Validate(st Status) error {
	return validate(string(st))
}

// Valid reports whether st is one of the three variants.
func (st Status) Valid() bool {
	return validate(string(st)) == nil
}

// RequiresData reports whether the variant requires the "data" key.
func (st Status) RequiresData() bool {
	return st == Success || st == Fail
}

// String returns the canonical string representation of the status.
func (st Status) String() string {
	return string(st)
}

// MarshalText implements encoding.TextMarshaler.
func (st Status) MarshalText() ([]byte, error) {
	if err := Validate(st); err != nil {
		return nil, err
	}
	return []byte(st), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning.
func (st *Status) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*st = parsed
	return nil
}

func validate(s string) error {
	switch Status(s) {
	case Success, Fail, Error:
		return nil
	default:
		return ErrStatusInvalid
	}
}
