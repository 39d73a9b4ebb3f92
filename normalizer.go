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
	"errors"
	"fmt"

	"dirpx.dev/jsend/apis"
	"dirpx.dev/jsend/status"
)

// Normalizer converts a heterogeneous (error, data) argument pair into a
// canonical Envelope.
//
// A Normalizer is immutable and safe for concurrent use. Its policy (see
// WithStrict) only affects how pre-built "error" mappings are recognised.
type Normalizer struct {
	validator *Validator
}

var defaultNormalizer = NewNormalizer()

// NewNormalizer builds a Normalizer with the given options.
func NewNormalizer(opts ...Option) *Normalizer {
	return &Normalizer{validator: NewValidator(opts...)}
}

// Validator returns the validator sharing this normalizer's policy.
func (n *Normalizer) Validator() *Validator { return n.validator }

// FromArguments builds an Envelope from an error-ish and a data-ish argument.
// It is total: every input produces a valid envelope.
//
// The first matching rule wins:
//
//  1. errArg is nil, a typed nil, false, "" or the zero Envelope:
//     "success" with data (nil data included);
//  2. errArg is a string: "error" with that message;
//  3. errArg is an error carrying a stack trace (as printed by %+v):
//     "error" with err.Error() and data {"stack": ...};
//  4. errArg is a mapping that validates as an "error" envelope: passed
//     through with its message, code and data;
//  5. errArg is any other mapping, including "success" and "fail"
//     envelopes: "error" keeping only a non-empty string "message" field;
//  6. errArg is any other error: "error" with err.Error();
//  7. anything else: "error" with UnknownErrorMessage.
//
// Errors implementing apis.CodedError contribute their code in rules 3 and 6.
// The data argument is only used by rule 1.
//
// Only errors that record a stack, such as those built with
// github.com/cockroachdb/errors, produce data.stack. A plain errors.New
// value falls under rule 6 and carries its message only.
func (n *Normalizer) FromArguments(errArg, data any) Envelope {
	if isFalsy(errArg) {
		return Success(data)
	}

	switch v := errArg.(type) {
	case string:
		return Error(v)
	case Envelope:
		return degrade(v)
	case *Envelope:
		return degrade(*v)
	}

	err, isErr := errArg.(error)
	if isErr {
		if stack, ok := stackOf(err); ok {
			return Error(err.Error(), append(codeOf(err), WithData(map[string]any{"stack": stack}))...)
		}
	}

	if m, ok := fieldsOf(errArg); ok {
		if statusOf(m) == status.Error && n.validator.check(m) == nil {
			return fromFields(m)
		}
		msg, _ := m["message"].(string)
		return Error(msg)
	}

	if isErr {
		return Error(err.Error(), codeOf(err)...)
	}
	return Error(UnknownErrorMessage)
}

// Forward normalizes the argument pair and forwards the result to sink.
func (n *Normalizer) Forward(errArg, data any, sink apis.Sink) {
	Forward(n.FromArguments(errArg, data), sink)
}

// FromArguments normalizes the argument pair under the default policy.
func FromArguments(errArg, data any) Envelope {
	return defaultNormalizer.FromArguments(errArg, data)
}

// degrade keeps "error" envelopes and turns the other variants into a
// generic "error", dropping their payload.
func degrade(e Envelope) Envelope {
	if e.status == status.Error {
		return e
	}
	return Error(UnknownErrorMessage)
}

func isFalsy(v any) bool {
	switch x := v.(type) {
	case bool:
		return !x
	case string:
		return x == ""
	case Envelope:
		return x.IsZero()
	case *Envelope:
		return x == nil || x.IsZero()
	}
	return isNil(v)
}

// stackOf walks the error chain and returns the first verbose (%+v)
// rendering that differs from the plain message, which is how stack-carrying
// error packages expose their traces.
func stackOf(err error) (string, bool) {
	for e := err; e != nil; e = errors.Unwrap(e) {
		if _, ok := e.(fmt.Formatter); !ok {
			continue
		}
		if s := fmt.Sprintf("%+v", e); s != "" && s != e.Error() {
			return s, true
		}
	}
	return "", false
}

func codeOf(err error) []ErrorOption {
	var ce apis.CodedError
	if errors.As(err, &ce) {
		if c := ce.ErrorCode(); c != nil {
			return []ErrorOption{WithCode(c)}
		}
	}
	return nil
}
