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

package jsend

import (
	"fmt"

	"dirpx.dev/jsend/status"
)

// Validator checks whether object-like values conform to one of the three
// envelope variants.
//
// A Validator is immutable and safe for concurrent use.
type Validator struct {
	strict bool
}

var defaultValidator = NewValidator()

// NewValidator builds a Validator with the given options.
func NewValidator(opts ...Option) *Validator {
	s := newSettings(opts)
	return &Validator{strict: s.strict}
}

// Strict reports whether the strict validation policy is in effect.
func (v *Validator) Strict() bool { return v.strict }

// IsValid reports whether candidate is a valid envelope. It never panics:
// values that are not mappings, or mappings with no recognised status, are
// simply invalid.
//
// Rules:
//   - "success" and "fail" require the "data" key; its value may be nil;
//   - "error" requires the "message" key; under the strict policy the
//     message must also be a string;
//   - any other status is invalid.
func (v *Validator) IsValid(candidate any) bool {
	m, ok := fieldsOf(candidate)
	if !ok {
		return false
	}
	return v.check(m) == nil
}

// Parse validates candidate and converts it into an Envelope.
//
// Under the default policy a non-string message is rendered with fmt.
func (v *Validator) Parse(candidate any) (Envelope, error) {
	if e, ok := candidate.(Envelope); ok && !e.IsZero() {
		return e, nil
	}
	m, ok := fieldsOf(candidate)
	if !ok {
		return Envelope{}, fmt.Errorf("%w: not an object", ErrInvalidEnvelope)
	}
	if err := v.check(m); err != nil {
		return Envelope{}, err
	}
	return fromFields(m), nil
}

func (v *Validator) check(m map[string]any) error {
	raw, ok := m["status"]
	if !ok {
		return fmt.Errorf("%w: missing status", ErrInvalidEnvelope)
	}
	st := statusOf(m)
	switch st {
	case status.Success, status.Fail:
		if _, ok := m["data"]; !ok {
			return fmt.Errorf("%w: %s requires data", ErrInvalidEnvelope, st)
		}
		return nil
	case status.Error:
		msg, ok := m["message"]
		if !ok {
			return fmt.Errorf("%w: error requires message", ErrInvalidEnvelope)
		}
		if _, isString := msg.(string); v.strict && !isString {
			return fmt.Errorf("%w: message must be a string, got %T", ErrInvalidEnvelope, msg)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown status %v", ErrInvalidEnvelope, raw)
	}
}

// IsValid reports whether candidate is a valid envelope under the default
// (non-strict) policy.
func IsValid(candidate any) bool {
	return defaultValidator.IsValid(candidate)
}

// Parse validates candidate under the default policy and converts it into an
// Envelope.
func Parse(candidate any) (Envelope, error) {
	return defaultValidator.Parse(candidate)
}
