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

// Option configures a Validator or Normalizer at construction time.
// Options are applied in order; the resulting component is immutable.
type Option func(*settings)

type settings struct {
	strict bool
}

func newSettings(opts []Option) settings {
	var s settings
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}

// WithStrict selects the strict validation policy. Under the strict policy an
// "error" envelope is valid only when its "message" is a string; by default
// any present message is accepted.
func WithStrict(strict bool) Option {
	return func(s *settings) { s.strict = strict }
}

// WithConfig applies every setting of c.
func WithConfig(c Config) Option {
	return func(s *settings) { s.strict = c.Strict }
}
