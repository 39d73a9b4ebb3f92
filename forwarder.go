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

	"dirpx.dev/jsend/apis"
	"dirpx.dev/jsend/status"
)

var (
	// ErrFail is wrapped by the error that Forward delivers for "fail"
	// envelopes, so consumers can tell an expected rejection from a failure:
	//
	//	if errors.Is(err, jsend.ErrFail) { ... }
	ErrFail = errors.New("fail")
)

// ForwardError is the error Forward delivers to a sink for "fail" and "error"
// envelopes.
type ForwardError struct {
	// Status is the variant of the forwarded envelope.
	Status status.Status

	// Message is the envelope message for "error" envelopes, or "fail".
	Message string

	// Code is the envelope code, when HasCode is set.
	Code    any
	HasCode bool
}

// Error implements the built-in error interface. It returns the message
// alone so that normalizing a ForwardError yields the original envelope.
func (e *ForwardError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}

// Unwrap returns ErrFail for forwarded "fail" envelopes.
func (e *ForwardError) Unwrap() error {
	if e.Status == status.Fail {
		return ErrFail
	}
	return nil
}

// ErrorCode implements apis.CodedError, so a ForwardError normalizes back
// into an "error" envelope with the same code.
func (e *ForwardError) ErrorCode() any {
	if !e.HasCode {
		return nil
	}
	return e.Code
}

// Forward decomposes env into an (error, data) pair and calls sink exactly
// once:
//
//   - "success": sink(nil, data);
//   - "fail":    sink(*ForwardError wrapping ErrFail, data);
//   - "error":   sink(*ForwardError{Message, Code}, data or nil).
//
// The zero Envelope is forwarded as an "error" with UnknownErrorMessage.
// A nil sink is a no-op.
func Forward(env Envelope, sink apis.Sink) {
	if sink == nil {
		return
	}
	switch env.status {
	case status.Success:
		sink(nil, env.data)
	case status.Fail:
		sink(&ForwardError{Status: status.Fail, Message: string(status.Fail)}, env.data)
	case status.Error:
		sink(&ForwardError{
			Status:  status.Error,
			Message: env.message,
			Code:    env.code,
			HasCode: env.hasCode,
		}, env.data)
	default:
		sink(&ForwardError{Status: status.Error, Message: UnknownErrorMessage}, nil)
	}
}
