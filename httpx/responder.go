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

package httpx

import (
	"context"
	"net/http"

	"dirpx.dev/jsend"
	"dirpx.dev/jsend/status"
	logging "github.com/ipfs/go-log/v2"
)

var log = logging.Logger("jsend/httpx")

// Responder writes jsend envelopes for a single request.
//
// A Responder is bound to one http.ResponseWriter and, like it, must not be
// used from several goroutines at once. Each request should be answered
// exactly once; a second transmission is logged and still attempted.
type Responder struct {
	w    http.ResponseWriter
	n    *jsend.Normalizer
	opts options
	sent bool
}

// NewResponder binds a Responder to w. A nil normalizer selects the default
// (non-strict) policy.
func NewResponder(w http.ResponseWriter, n *jsend.Normalizer, opts ...Option) *Responder {
	if n == nil {
		n = jsend.NewNormalizer()
	}
	return &Responder{w: w, n: n, opts: newOptions(opts)}
}

// Send normalizes the (error, data) pair and transmits the envelope. When
// errArg is falsy and data already validates as an envelope, data is sent as
// is instead of being wrapped in a "success" envelope. Send never panics; the
// returned error only reports transmission failures.
func (r *Responder) Send(errArg, data any) error {
	env := r.n.FromArguments(errArg, data)
	if env.Status() == status.Success && data != nil {
		if parsed, err := r.n.Validator().Parse(data); err == nil {
			env = parsed
		}
	}
	return r.Envelope(env)
}

// Success transmits a "success" envelope. Exactly one argument is required;
// nil is a valid payload. A value that is already a valid "success" envelope
// is sent as is.
//
// Calling Success with no argument, or more than one, panics with a jsend
// usage error.
func (r *Responder) Success(data ...any) error {
	return r.Envelope(r.shortcut("Success", status.Success, jsend.Success, data))
}

// Fail transmits a "fail" envelope. Exactly one argument is required; nil is
// a valid payload. A value that is already a valid "fail" envelope is sent as
// is.
//
// Calling Fail with no argument, or more than one, panics with a jsend usage
// error.
func (r *Responder) Fail(data ...any) error {
	return r.Envelope(r.shortcut("Fail", status.Fail, jsend.Fail, data))
}

// Error transmits an "error" envelope built from errArg, which accepts the
// same shapes as the error argument of Send. opts override the code and data
// of the resulting envelope.
//
// Error panics with a jsend usage error when errArg is absent (nil, false,
// "") or is a mapping without a "message" key.
func (r *Responder) Error(errArg any, opts ...jsend.ErrorOption) error {
	env := r.n.FromArguments(errArg, nil)
	if env.Status() != status.Error {
		panic(jsend.MissingArgument("Error", "an error"))
	}
	if m, ok := jsend.AsMap(errArg); ok {
		if _, ok := m["message"]; !ok {
			panic(jsend.MissingArgument("Error", "a message"))
		}
	}
	if len(opts) > 0 {
		code, hasCode := env.Code()
		data, hasData := env.Data()
		base := make([]jsend.ErrorOption, 0, 2+len(opts))
		if hasCode {
			base = append(base, jsend.WithCode(code))
		}
		if hasData {
			base = append(base, jsend.WithData(data))
		}
		env = jsend.Error(env.Message(), append(base, opts...)...)
	}
	return r.Envelope(env)
}

// Envelope transmits a pre-built envelope. An invalid (zero) envelope is
// replaced by a generic "error", and so is an envelope whose payload cannot
// be encoded.
func (r *Responder) Envelope(env jsend.Envelope) error {
	if env.IsZero() {
		env = jsend.Error(jsend.UnknownErrorMessage)
	}
	if r.sent {
		log.Warnw("jsend envelope already sent for this request", "status", env.Status().String())
	}
	r.sent = true

	b, err := r.opts.writer.Encode(env)
	if err != nil {
		log.Errorw("cannot encode jsend envelope, sending generic error", "status", env.Status().String(), "error", err)
		env = jsend.Error(jsend.UnknownErrorMessage)
		if b, err = r.opts.writer.Encode(env); err != nil {
			return err
		}
	}
	if err := writeBody(r.w, b); err != nil {
		log.Debugw("jsend envelope transmission failed", "error", err)
		return err
	}
	r.opts.metrics.observe(env.Status())
	return nil
}

// Sent reports whether an envelope has been transmitted.
func (r *Responder) Sent() bool { return r.sent }

func (r *Responder) shortcut(op string, st status.Status, build func(any) jsend.Envelope, data []any) jsend.Envelope {
	if len(data) != 1 {
		panic(jsend.MissingArgument(op, "exactly one data argument"))
	}
	arg := data[0]
	if env, err := r.n.Validator().Parse(arg); err == nil && env.Status() == st {
		return env
	}
	return build(arg)
}

type ctxKey struct{}

// WithResponder returns a copy of ctx carrying rs.
func WithResponder(ctx context.Context, rs *Responder) context.Context {
	return context.WithValue(ctx, ctxKey{}, rs)
}

// FromContext returns the Responder installed by Middleware, or nil.
func FromContext(ctx context.Context) *Responder {
	rs, _ := ctx.Value(ctxKey{}).(*Responder)
	return rs
}
