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

// Option configures a Responder or the Middleware.
type Option func(*options)

type options struct {
	writer  Writer
	metrics *Metrics
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithProtoJSON encodes bodies with protojson instead of encoding/json.
func WithProtoJSON() Option {
	return func(o *options) { o.writer.ProtoJSON = true }
}

// WithMetrics counts every transmitted envelope in m.
func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}
