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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"dirpx.dev/jsend/status"
)

// UnknownErrorMessage is the message used for "error" envelopes built from
// inputs that carry no usable message of their own.
const UnknownErrorMessage = "Unknown error. (jsend)"

var (
	// ErrInvalidEnvelope is returned when a value does not conform to any of
	// the three envelope variants.
	ErrInvalidEnvelope = errors.New("jsend: invalid envelope")
)

// Envelope is the canonical jsend response.
//
// Envelope is an immutable value: constructors and With* helpers always
// return a fresh copy, so envelopes can be shared freely. The zero Envelope
// is not valid; use Success, Fail or Error to build one.
//
// Key presence is tracked separately from values: a "success" envelope built
// with nil data still has a "data" key (serialized as null), while an "error"
// envelope without WithData has none.
type Envelope struct {
	status status.Status

	data    any
	hasData bool

	message string

	code    any
	hasCode bool
}

// ErrorOption configures optional fields of an "error" envelope.
type ErrorOption func(*Envelope)

// WithCode sets the optional "code" field of an "error" envelope.
func WithCode(c any) ErrorOption {
	return func(e *Envelope) {
		e.code = c
		e.hasCode = true
	}
}

// WithData sets the optional "data" field of an "error" envelope.
func WithData(d any) ErrorOption {
	return func(e *Envelope) {
		e.data = d
		e.hasData = true
	}
}

// Success builds a "success" envelope. data may be nil.
func Success(data any) Envelope {
	return Envelope{status: status.Success, data: data, hasData: true}
}

// Fail builds a "fail" envelope. data may be nil.
func Fail(data any) Envelope {
	return Envelope{status: status.Fail, data: data, hasData: true}
}

// Error builds an "error" envelope.
//
// An empty message is replaced by UnknownErrorMessage, so the result is
// always valid.
func Error(message string, opts ...ErrorOption) Envelope {
	if message == "" {
		message = UnknownErrorMessage
	}
	e := Envelope{status: status.Error, message: message}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// Status returns the envelope variant. It is status.Empty for the zero value.
func (e Envelope) Status() status.Status { return e.status }

// Data returns the payload and whether the "data" key is present.
func (e Envelope) Data() (any, bool) { return e.data, e.hasData }

// Message returns the error message. It is empty unless Status is
// status.Error.
func (e Envelope) Message() string { return e.message }

// Code returns the optional error code and whether it was supplied.
func (e Envelope) Code() (any, bool) { return e.code, e.hasCode }

// IsZero reports whether e is the zero Envelope.
func (e Envelope) IsZero() bool { return e.status == status.Empty }

// WithData returns a copy of e with the "data" field replaced.
// The original envelope is not modified.
func (e Envelope) WithData(d any) Envelope {
	if e.IsZero() {
		return e
	}
	cp := e
	cp.data = d
	cp.hasData = true
	return cp
}

// WithCode returns a copy of e with the "code" field set. Only "error"
// envelopes carry a code; other variants are returned unchanged.
func (e Envelope) WithCode(c any) Envelope {
	if e.status != status.Error {
		return e
	}
	cp := e
	cp.code = c
	cp.hasCode = true
	return cp
}

// Map returns the wire shape of the envelope as a freshly allocated map.
//
// The zero Envelope maps to an empty map, which does not validate.
func (e Envelope) Map() map[string]any {
	if e.IsZero() {
		return map[string]any{}
	}
	m := make(map[string]any, 4)
	m["status"] = string(e.status)
	if e.hasData {
		m["data"] = e.data
	}
	if e.status == status.Error {
		m["message"] = e.message
		if e.hasCode {
			m["code"] = e.code
		}
	}
	return m
}

// Fields implements apis.FieldsProvider.
func (e Envelope) Fields() map[string]any { return e.Map() }

// String returns a compact, log-friendly representation of the envelope.
func (e Envelope) String() string {
	switch e.status {
	case status.Error:
		if e.hasCode {
			return fmt.Sprintf("error(%v): %s", e.code, e.message)
		}
		return "error: " + e.message
	case status.Empty:
		return "<invalid>"
	default:
		return string(e.status)
	}
}

// MarshalJSON implements json.Marshaler. The zero Envelope cannot be
// marshaled.
func (e Envelope) MarshalJSON() ([]byte, error) {
	if e.IsZero() {
		return nil, ErrInvalidEnvelope
	}
	return json.Marshal(e.Map())
}

// UnmarshalJSON implements json.Unmarshaler.
//
// The document must be a JSON object that validates as an envelope under
// the default (non-strict) policy. A JSON null leaves e unchanged.
func (e *Envelope) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEnvelope, err)
	}
	parsed, err := defaultValidator.Parse(m)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// fromFields builds an Envelope from a mapping that has already been
// validated. Non-string messages are rendered with fmt.
func fromFields(m map[string]any) Envelope {
	st := statusOf(m)
	if st != status.Error {
		return Envelope{status: st, data: m["data"], hasData: true}
	}

	var opts []ErrorOption
	if c, ok := m["code"]; ok {
		opts = append(opts, WithCode(c))
	}
	if d, ok := m["data"]; ok {
		opts = append(opts, WithData(d))
	}
	return Error(messageOf(m["message"]), opts...)
}

func messageOf(v any) string {
	switch msg := v.(type) {
	case nil:
		return ""
	case string:
		return msg
	default:
		return fmt.Sprint(msg)
	}
}
