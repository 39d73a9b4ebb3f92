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

package apis

// FieldsProvider is implemented by values that can present themselves as an
// object-like mapping.
//
// The jsend validator and normalizer treat any FieldsProvider exactly like a
// map[string]any: key presence matters, so implementations MUST include a key
// (possibly with a nil value) whenever the field was supplied, and omit it
// otherwise.
//
// Returning nil means "not a mapping".
type FieldsProvider interface {
	Fields() map[string]any
}

// CodedError represents an error that carries an application-level code.
//
// When such an error is normalized into an "error" envelope, the code is
// copied into the envelope's optional "code" field. Codes are opaque to
// jsend: numbers and strings are both common.
type CodedError interface {
	error

	// ErrorCode returns the application-level code. A nil code is treated
	// as "not provided".
	ErrorCode() any
}

// Sink receives a decomposed envelope, following the callback convention of
// a single error argument followed by the payload.
//
// err is nil only for "success" envelopes. data is nil when the envelope did
// not carry a "data" key.
type Sink func(err error, data any)
