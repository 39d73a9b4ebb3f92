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
	"net/http"

	"dirpx.dev/jsend"
)

// Middleware returns net/http middleware that installs a Responder, bound to
// n and opts, in every request context. A nil normalizer selects the default
// policy.
func Middleware(n *jsend.Normalizer, opts ...Option) func(http.Handler) http.Handler {
	if n == nil {
		n = jsend.NewNormalizer()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rs := NewResponder(w, n, opts...)
			next.ServeHTTP(w, r.WithContext(WithResponder(r.Context(), rs)))
		})
	}
}

// HandlerFunc is a handler that returns its outcome as an (error, data) pair
// instead of writing the response itself.
type HandlerFunc func(r *http.Request) (any, error)

// Handle adapts h into an http.Handler that sends the normalized envelope of
// its result. The (err, data) pair is passed to Responder.Send, so a nil or
// typed-nil error produces "success" with data, and a jsend.Envelope
// returned as data with a nil error is sent as is.
func Handle(n *jsend.Normalizer, h HandlerFunc, opts ...Option) http.Handler {
	if n == nil {
		n = jsend.NewNormalizer()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rs := NewResponder(w, n, opts...)
		data, err := h(r.WithContext(WithResponder(r.Context(), rs)))
		if rs.Sent() {
			return
		}
		if env, ok := data.(jsend.Envelope); ok && err == nil {
			_ = rs.Envelope(env)
			return
		}
		_ = rs.Send(err, data)
	})
}
